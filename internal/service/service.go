package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-web/internal/storage"
)

// Service holds the authentication flows and the live view sessions.
type Service struct {
	Auth  *AuthService
	Views *Registry
}

// NewService creates a new Service backed by store and the remote API client.
func NewService(store *storage.Storage, client IClient, policy RacePolicy, idleTimeout time.Duration, logger *logrus.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(client, logger),
		Views: NewRegistry(store, client, policy, idleTimeout, logger),
	}
}
