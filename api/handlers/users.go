package handlers

import (
	"net/http"

	"github.com/jscott1989/push-notifications-service/api/services"
)

// RegisterUser godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserRegistration true "User to register"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Router /users [post]
func RegisterUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.RegisterUserService(svc, w, r)
	}
}

// ListUsers godoc
// @Summary List all registered users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func ListUsers(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.ListUsersService(svc, w, r)
	}
}

// GetUser godoc
// @Summary Get a user by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{username} [get]
func GetUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetUserService(svc, w, r)
	}
}

// GetUserNotifications godoc
// @Summary Get the number of notifications pushed to a user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.NotificationCount
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{username}/notifications [get]
func GetUserNotifications(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetUserNotificationsService(svc, w, r)
	}
}

// SendUserNotification godoc
// @Summary Push a notification to a single user
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param notification body models.Notification true "Notification to push"
// @Success 201 {object} models.NotificationCount
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/{username}/notifications [post]
func SendUserNotification(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.SendUserNotificationService(svc, w, r)
	}
}
