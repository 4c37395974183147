package handlers

import (
	"net/http"

	"github.com/jscott1989/push-notifications-service/api/services"
)

// BroadcastNotification godoc
// @Summary Push a notification to the members of several groups
// @Description Each user in the union of the named groups is notified exactly
// @Description once, even when listed in more than one group. Unknown groups
// @Description and per-recipient delivery failures are reported in the errors
// @Description list without failing the request.
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body models.BroadcastRequest true "Broadcast to send"
// @Success 201 {object} models.NotificationErrors
// @Failure 400 {object} models.ErrorResponse
// @Router /notifications [post]
func BroadcastNotification(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.BroadcastNotificationService(svc, w, r)
	}
}
