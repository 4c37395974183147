package services

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jscott1989/push-notifications-service/internal/metrics"
	"github.com/jscott1989/push-notifications-service/models"
	"github.com/rs/zerolog"
)

// RegisterGroupService registers a new group. Every listed member must
// already be registered; a request naming an unknown user is rejected
// without creating the group.
func RegisterGroupService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var payload models.GroupRegistration
	if err := DecodeJSONRequest(r, &payload, "groupId", "users"); err != nil {
		logger.Warn().Err(err).Msg("Invalid group payload")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{ErrorDetails: err.Error()})
		return
	}

	if err := svc.Registry.RegisterGroup(payload.GroupID, payload.Users); err != nil {
		logger.Info().Err(err).Str("group_id", payload.GroupID).Msg("Refused group registration")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{ErrorDetails: err.Error()})
		return
	}

	metrics.IncGroupRegistered()
	logger.Info().Str("group_id", payload.GroupID).Msg("Group registered")

	members, err := svc.Registry.GetGroup(payload.GroupID)
	if err != nil {
		WriteResponse(w, http.StatusInternalServerError, models.ErrorResponse{ErrorDetails: err.Error()})
		return
	}

	location := fmt.Sprintf("%s/%s", r.URL.Path, payload.GroupID)
	WriteResponse(w, http.StatusCreated, members, location)
}

// ListGroupsService lists the membership of every registered group.
func ListGroupsService(svc *Service, w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, http.StatusOK, svc.Registry.ListGroups())
}

// GetGroupService retrieves the member list of a single group.
func GetGroupService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())
	groupID := mux.Vars(r)["group-id"]

	members, err := svc.Registry.GetGroup(groupID)
	if err != nil {
		logger.Info().Str("group_id", groupID).Msg("Group not found")
		WriteResponse(w, http.StatusNotFound, models.ErrorResponse{ErrorDetails: err.Error()})
		return
	}

	WriteResponse(w, http.StatusOK, members)
}

// SendGroupNotificationService pushes a notification to every member of one
// group. Per-recipient failures are collected into the response body; an
// unknown group is the request's own failure (404).
func SendGroupNotificationService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())
	groupID := mux.Vars(r)["group-id"]

	var payload models.Notification
	if err := DecodeJSONRequest(r, &payload, "title", "body"); err != nil {
		logger.Warn().Err(err).Msg("Invalid notification payload")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{ErrorDetails: err.Error()})
		return
	}

	members, err := svc.Registry.GetGroup(groupID)
	if err != nil {
		logger.Info().Str("group_id", groupID).Msg("Group not found")
		WriteResponse(w, http.StatusNotFound, models.ErrorResponse{ErrorDetails: err.Error()})
		return
	}

	logger.Info().Str("group_id", groupID).Int("members", len(members)).Msg("Posting notification to group")
	errs := fanOut(svc.Registry, svc.Push, logger, members, payload.Title, payload.Body)

	WriteResponse(w, http.StatusCreated, models.NotificationErrors{Errors: errs})
}
