package services

import (
	"github.com/jscott1989/push-notifications-service/internal/appconfig"
	"github.com/jscott1989/push-notifications-service/registry"
)

// Service contains all shared dependencies for handlers.
type Service struct {
	Config   *appconfig.Config
	Registry *registry.Registry
	Push     PushClient
}
