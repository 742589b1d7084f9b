package gateway

import (
	"context"
	"net/http"
	"strings"

	"catalogadmin/internal/domain/entity"
	"catalogadmin/pkg/errors"
	"catalogadmin/pkg/logger"
)

type AuthService struct {
	client *Client
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session token and stores it. The token
// may arrive at the top level or nested in the data payload.
func (s *AuthService) Login(ctx context.Context, creds Credentials) error {
	if strings.TrimSpace(creds.Username) == "" || creds.Password == "" {
		return errors.BadRequest("Username and password are required", nil)
	}
	body, err := marshalJSON(creds)
	if err != nil {
		return err
	}
	env, err := s.client.do(ctx, request{
		method:   http.MethodPost,
		path:     "/login",
		body:     body,
		fallback: "Login failed",
	})
	if err != nil {
		return err
	}

	token := env.Token
	if token == "" {
		var nested struct {
			Token string `json:"token"`
		}
		if raw := env.payload(); raw != nil {
			_ = jsonCodec.Unmarshal(raw, &nested)
		}
		token = nested.Token
	}
	if token == "" {
		return errors.InvalidResponse("Login response carried no token", nil)
	}
	return s.client.tokens.Set(token)
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entity.Admin, error) {
	body, err := marshalJSON(input)
	if err != nil {
		return nil, err
	}
	env, err := s.client.do(ctx, request{
		method:   http.MethodPost,
		path:     "/admin/register",
		body:     body,
		authed:   true,
		fallback: "Registration failed",
	})
	if err != nil {
		return nil, err
	}
	admin := &entity.Admin{}
	if err := decodePayload(env, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AuthService) Profile(ctx context.Context) (*entity.Admin, error) {
	admin := &entity.Admin{}
	err := s.client.getJSON(ctx, "/admin/profile", true, "Failed to fetch profile", admin)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Logout invalidates the session server-side and always clears the stored
// token, even when the server call fails. An expired or missing token just
// means there is nothing to invalidate.
func (s *AuthService) Logout(ctx context.Context) error {
	_, err := s.client.do(ctx, request{
		method:   http.MethodPost,
		path:     "/admin/logout",
		authed:   true,
		fallback: "Logout failed",
	})
	if err != nil && !errors.Is(err, errors.CodeAuthenticationRequired) {
		logger.Warn("server logout failed, clearing local session anyway: %v", err)
	}
	return s.client.tokens.Clear()
}

func (s *AuthService) AllAdmins(ctx context.Context) ([]entity.Admin, error) {
	var admins []entity.Admin
	err := s.client.getJSON(ctx, "/admin/all", true, "Failed to fetch admins", &admins)
	return admins, err
}
