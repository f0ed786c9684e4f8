package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// AuthService runs the login, logout and registration flows against the remote API.
type AuthService struct {
	client IAuthClient
	logger *logrus.Logger
}

func NewAuthService(client IAuthClient, logger *logrus.Logger) *AuthService {
	return &AuthService{client: client, logger: logger}
}

// SignIn exchanges username and password for a session and hands it to manager.
func (s *AuthService) SignIn(ctx context.Context, manager *AuthManager, username, password string) error {
	cred, err := s.client.Login(ctx, username, password)
	if err != nil {
		s.logger.WithError(err).WithField("username", username).Info("AuthService.SignIn.rejected")
		return err
	}
	if err := manager.Login(ctx, cred.Session); err != nil {
		s.logger.WithError(err).Error("AuthService.SignIn.persist")
		return err
	}
	s.logger.WithField("username", username).Info("AuthService.SignIn.success")
	return nil
}

// SignOut ends the remote session. The local token is cleared only when the remote
// API accepted the logout, so a failed call leaves the user signed in.
func (s *AuthService) SignOut(ctx context.Context, manager *AuthManager) error {
	if !manager.IsAuthenticated() {
		return nil
	}
	if err := s.client.Logout(ctx, manager.Credential()); err != nil {
		s.logger.WithError(err).Warn("AuthService.SignOut.remote")
		return err
	}
	return manager.Logout(ctx)
}

// Register creates an account. It does not sign the user in.
func (s *AuthService) Register(ctx context.Context, username, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	if err := s.client.Register(ctx, username, password); err != nil {
		s.logger.WithError(err).WithField("username", username).Info("AuthService.Register.rejected")
		return fmt.Errorf("register %q: %w", username, err)
	}
	s.logger.WithField("username", username).Info("AuthService.Register.success")
	return nil
}
