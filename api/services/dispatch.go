package services

import (
	"errors"
	"fmt"

	"github.com/jscott1989/push-notifications-service/internal/metrics"
	"github.com/jscott1989/push-notifications-service/registry"
	"github.com/rs/zerolog"
)

// sendNotificationToUser delivers one notification to one user. It returns
// whether delivery succeeded and, on failure, a message identifying the user
// and the error class. The counter is only incremented after the push service
// accepted the notification; the push call itself runs outside any registry
// lock.
func sendNotificationToUser(reg *registry.Registry, push PushClient, logger *zerolog.Logger, username, title, body string) (bool, string) {
	user, err := reg.GetUser(username)
	if err != nil {
		logger.Error().Str("username", username).Msg("user not found")
		metrics.IncPushFailed()
		return false, fmt.Sprintf("%s: User not found", username)
	}

	if err := push.CreatePush(user.AccessToken, title, body); err != nil {
		metrics.IncPushFailed()
		if errors.Is(err, ErrInvalidAccessToken) {
			logger.Error().Str("username", username).Msg("invalid pushbullet access token")
			return false, fmt.Sprintf("%s: Incorrect access token", username)
		}
		logger.Error().Err(err).Str("username", username).Msg("pushbullet error")
		return false, fmt.Sprintf("%s: Pushbullet error", username)
	}

	if _, err := reg.IncrementNotificationsPushed(username); err != nil {
		// Users cannot be deleted, so the user we just looked up must still exist.
		logger.Error().Err(err).Str("username", username).Msg("failed to update notification count")
	}
	metrics.IncPushDelivered()
	logger.Info().Str("username", username).Msg("notification pushed")
	return true, ""
}

// fanOut dispatches the notification to every named user and collects the
// failure messages. One recipient's failure never blocks delivery to the
// others.
func fanOut(reg *registry.Registry, push PushClient, logger *zerolog.Logger, usernames []string, title, body string) []string {
	errs := []string{}
	for _, username := range usernames {
		if ok, msg := sendNotificationToUser(reg, push, logger, username, title, body); !ok {
			errs = append(errs, msg)
		}
	}
	return errs
}

// resolveGroups computes the union of member usernames across the named
// groups. Duplicate group IDs and users shared between groups are counted
// once, so no recipient is notified twice. Unknown groups are reported as
// error messages rather than aborting the resolution.
func resolveGroups(reg *registry.Registry, logger *zerolog.Logger, groupIDs []string) ([]string, []string) {
	seen := make(map[string]struct{})
	var usernames []string
	errs := []string{}

	for _, groupID := range groupIDs {
		members, err := reg.GetGroup(groupID)
		if err != nil {
			logger.Info().Str("group_id", groupID).Msg("group not found")
			errs = append(errs, fmt.Sprintf("%s: Group Not Found", groupID))
			continue
		}
		for _, member := range members {
			if _, ok := seen[member]; ok {
				continue
			}
			seen[member] = struct{}{}
			usernames = append(usernames, member)
		}
	}

	return usernames, errs
}
