package services

import (
	"net/http"

	"github.com/jscott1989/push-notifications-service/models"
	"github.com/rs/zerolog"
)

// BroadcastNotificationService pushes one notification to the union of the
// members of the named groups. A user belonging to several of the groups is
// notified exactly once; the recipient set is built before any delivery is
// attempted. Unknown groups and per-recipient delivery failures are both
// reported in the response's error list without failing the request.
func BroadcastNotificationService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var payload models.BroadcastRequest
	if err := DecodeJSONRequest(r, &payload, "groupIds", "title", "body"); err != nil {
		logger.Warn().Err(err).Msg("Invalid notification payload")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{ErrorDetails: err.Error()})
		return
	}

	usernames, errs := resolveGroups(svc.Registry, logger, payload.GroupIDs)

	logger.Info().Int("groups", len(payload.GroupIDs)).Int("recipients", len(usernames)).Msg("Broadcasting notification")
	errs = append(errs, fanOut(svc.Registry, svc.Push, logger, usernames, payload.Title, payload.Body)...)

	WriteResponse(w, http.StatusCreated, models.NotificationErrors{Errors: errs})
}
