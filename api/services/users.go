package services

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jscott1989/push-notifications-service/internal/metrics"
	"github.com/jscott1989/push-notifications-service/models"
	"github.com/rs/zerolog"
)

// RegisterUserService registers a new user from the request payload.
func RegisterUserService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var payload models.UserRegistration
	if err := DecodeJSONRequest(r, &payload, "username", "accessToken"); err != nil {
		logger.Warn().Err(err).Msg("Invalid registration payload")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{ErrorDetails: err.Error()})
		return
	}

	user, err := svc.Registry.RegisterUser(payload.Username, payload.AccessToken)
	if err != nil {
		logger.Info().Str("username", payload.Username).Msg("Refused duplicate registration")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{ErrorDetails: err.Error()})
		return
	}

	metrics.IncUserRegistered()
	logger.Info().Str("username", user.Username).Msg("Registration completed")

	location := fmt.Sprintf("%s/%s", r.URL.Path, user.Username)
	WriteResponse(w, http.StatusCreated, *user, location)
}

// ListUsersService lists all registered users.
func ListUsersService(svc *Service, w http.ResponseWriter, r *http.Request) {
	WriteResponse(w, http.StatusOK, svc.Registry.ListUsers())
}

// GetUserService retrieves a single user by username.
func GetUserService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())
	username := mux.Vars(r)["username"]

	user, err := svc.Registry.GetUser(username)
	if err != nil {
		logger.Error().Str("username", username).Msg("User not found")
		WriteResponse(w, http.StatusNotFound, models.ErrorResponse{ErrorDetails: err.Error()})
		return
	}

	WriteResponse(w, http.StatusOK, *user)
}

// GetUserNotificationsService reports how many notifications have been pushed
// to a user.
func GetUserNotificationsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())
	username := mux.Vars(r)["username"]

	user, err := svc.Registry.GetUser(username)
	if err != nil {
		logger.Error().Str("username", username).Msg("User not found")
		WriteResponse(w, http.StatusNotFound, models.ErrorResponse{ErrorDetails: err.Error()})
		return
	}

	WriteResponse(w, http.StatusOK, models.NotificationCount{NotificationsPushed: user.NotificationsPushed})
}

// SendUserNotificationService pushes a notification to a single user. Unlike
// the group fan-out endpoints there is exactly one recipient, so a delivery
// failure is the request's own failure: 404 for an unknown user, 403 for a
// rejected access token and 500 for any other Pushbullet error.
func SendUserNotificationService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())
	username := mux.Vars(r)["username"]

	var payload models.Notification
	if err := DecodeJSONRequest(r, &payload, "title", "body"); err != nil {
		logger.Warn().Err(err).Msg("Invalid notification payload")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{ErrorDetails: err.Error()})
		return
	}

	user, err := svc.Registry.GetUser(username)
	if err != nil {
		logger.Error().Str("username", username).Msg("User not found")
		WriteResponse(w, http.StatusNotFound, models.ErrorResponse{ErrorDetails: err.Error()})
		return
	}

	if err := svc.Push.CreatePush(user.AccessToken, payload.Title, payload.Body); err != nil {
		metrics.IncPushFailed()
		status := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidAccessToken) {
			status = http.StatusForbidden
		}
		logger.Error().Err(err).Str("username", username).Msg("push delivery failed")
		WriteResponse(w, status, models.ErrorResponse{ErrorDetails: err.Error()})
		return
	}

	count, err := svc.Registry.IncrementNotificationsPushed(username)
	if err != nil {
		logger.Error().Err(err).Str("username", username).Msg("failed to update notification count")
	}
	metrics.IncPushDelivered()
	logger.Info().Str("username", username).Msg("notification pushed")

	WriteResponse(w, http.StatusCreated, models.NotificationCount{NotificationsPushed: count})
}
