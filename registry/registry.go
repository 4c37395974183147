// Package registry holds all user and group state for the service. State is
// process-lifetime only; a restart clears every user, group and counter.
package registry

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jscott1989/push-notifications-service/models"
)

var (
	// ErrDuplicateUser is returned when registering a username that is taken.
	ErrDuplicateUser = errors.New("already registered")

	// ErrUserNotFound is returned when a username is not registered.
	ErrUserNotFound = errors.New("user does not exist")

	// ErrDuplicateGroup is returned when registering a group ID that is taken.
	ErrDuplicateGroup = errors.New("group already registered")

	// ErrGroupNotFound is returned when a group ID is not registered.
	ErrGroupNotFound = errors.New("group does not exist")
)

// Registry is the in-memory store of users and groups. A single instance is
// shared by all request handlers; the mutex serializes registration and
// counter updates so concurrent requests cannot race on the same username.
type Registry struct {
	mu     sync.RWMutex
	users  map[string]*models.User
	groups map[string][]string
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		users:  make(map[string]*models.User),
		groups: make(map[string][]string),
	}
}

// RegisterUser creates a new user with a zero notification counter. The
// existence check and the insert happen under one critical section so two
// concurrent registrations of the same username cannot both succeed.
func (r *Registry) RegisterUser(username, accessToken string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; ok {
		return nil, fmt.Errorf("%s: %w", username, ErrDuplicateUser)
	}

	user := &models.User{
		Username:     username,
		AccessToken:  accessToken,
		CreationTime: time.Now().UTC(),
	}
	r.users[username] = user

	u := *user
	return &u, nil
}

// GetUser returns a copy of the user with the given username.
func (r *Registry) GetUser(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, fmt.Errorf("%s: %w", username, ErrUserNotFound)
	}

	u := *user
	return &u, nil
}

// ListUsers returns a snapshot of all registered users. Ordering is
// unspecified.
func (r *Registry) ListUsers() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users
}

// IncrementNotificationsPushed adds one to the user's delivery counter and
// returns the new value. The read-modify-write runs under the exclusive lock
// so concurrent increments are never lost.
func (r *Registry) IncrementNotificationsPushed(username string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return 0, fmt.Errorf("%s: %w", username, ErrUserNotFound)
	}

	user.NotificationsPushed++
	return user.NotificationsPushed, nil
}

// RegisterGroup creates a new group. Every member must already be registered;
// validation happens before the group is stored, so a failed registration
// leaves no partial group behind.
func (r *Registry) RegisterGroup(groupID string, members []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.groups[groupID]; ok {
		return fmt.Errorf("%s: %w", groupID, ErrDuplicateGroup)
	}

	for _, member := range members {
		if _, ok := r.users[member]; !ok {
			return fmt.Errorf("%s: %w", member, ErrUserNotFound)
		}
	}

	r.groups[groupID] = append([]string(nil), members...)
	return nil
}

// GetGroup returns the member usernames of the group with the given ID.
func (r *Registry) GetGroup(groupID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.groups[groupID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", groupID, ErrGroupNotFound)
	}

	return append([]string(nil), members...), nil
}

// ListGroups returns a snapshot of every group's membership list. Ordering is
// unspecified.
func (r *Registry) ListGroups() [][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	groups := make([][]string, 0, len(r.groups))
	for _, members := range r.groups {
		groups = append(groups, append([]string(nil), members...))
	}
	return groups
}
