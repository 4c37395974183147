package handlers

import (
	"net/http"

	"github.com/jscott1989/push-notifications-service/api/services"
)

// RegisterGroup godoc
// @Summary Register a new group
// @Tags groups
// @Accept json
// @Produce json
// @Param group body models.GroupRegistration true "Group to register"
// @Success 201 {array} string
// @Failure 400 {object} models.ErrorResponse
// @Router /groups [post]
func RegisterGroup(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.RegisterGroupService(svc, w, r)
	}
}

// ListGroups godoc
// @Summary List the membership of every group
// @Tags groups
// @Produce json
// @Success 200 {array} []string
// @Router /groups [get]
func ListGroups(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.ListGroupsService(svc, w, r)
	}
}

// GetGroup godoc
// @Summary Get the member list of a group
// @Tags groups
// @Produce json
// @Param group-id path string true "Group ID"
// @Success 200 {array} string
// @Failure 404 {object} models.ErrorResponse
// @Router /groups/{group-id} [get]
func GetGroup(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetGroupService(svc, w, r)
	}
}

// SendGroupNotification godoc
// @Summary Push a notification to every member of a group
// @Tags groups
// @Accept json
// @Produce json
// @Param group-id path string true "Group ID"
// @Param notification body models.Notification true "Notification to push"
// @Success 201 {object} models.NotificationErrors
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /groups/{group-id}/notifications [post]
func SendGroupNotification(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.SendGroupNotificationService(svc, w, r)
	}
}
