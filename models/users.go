package models

import "time"

// User represents a registered notification recipient.
type User struct {
	Username            string    `json:"username"`
	AccessToken         string    `json:"accessToken"`
	CreationTime        time.Time `json:"creationTime"`
	NotificationsPushed int       `json:"numOfNotificationsPushed"`
}

// UserRegistration is the payload for registering a new user.
type UserRegistration struct {
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
}

// GroupRegistration is the payload for registering a new group.
type GroupRegistration struct {
	GroupID string   `json:"groupId"`
	Users   []string `json:"users"`
}
