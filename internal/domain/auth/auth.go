// Package auth implements login and logout against the backend's
// /auth endpoints and keeps the local session store in sync.
package auth

import (
	"context"
	"strings"

	"github.com/clinica/clinica/internal/platform/api"
	"github.com/clinica/clinica/internal/platform/notify"
	"github.com/clinica/clinica/internal/platform/session"
	"github.com/clinica/clinica/internal/validate"
)

// Credentials carries the login form.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the credentials before any network call.
func (c Credentials) Validate() error {
	var errs validate.Errors
	errs.Email("email", c.Email)
	if strings.TrimSpace(c.Password) == "" {
		errs.Add("password", "password is required")
	} else if len([]rune(c.Password)) < 4 {
		errs.Add("password", "password must be at least 4 characters")
	}
	return errs.ErrOrNil()
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	Usuario session.User `json:"usuario"`
}

// Service authenticates the operator and owns the session lifecycle.
type Service struct {
	api     *api.Client
	session *session.Store
	notify  *notify.Notifier
}

func NewService(client *api.Client, sess *session.Store, n *notify.Notifier) *Service {
	return &Service{api: client, session: sess, notify: n}
}

// Login exchanges credentials for a token and persists the session.
func (s *Service) Login(ctx context.Context, creds Credentials) (*session.User, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	var resp LoginResponse
	if err := s.api.Post(ctx, "/auth/login", creds, &resp); err != nil {
		s.notify.Error(api.Message(err, "login failed"))
		return nil, err
	}
	if err := s.session.SetSession(resp.Usuario, resp.Token); err != nil {
		return nil, err
	}
	s.notify.Success("welcome, " + resp.Usuario.Nombre)
	user := resp.Usuario
	return &user, nil
}

// Logout discards the persisted session. It never calls the backend.
func (s *Service) Logout() error {
	had, err := s.session.Clear()
	if err != nil {
		return err
	}
	if had {
		s.notify.Success("session closed")
	}
	return nil
}
