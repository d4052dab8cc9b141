package vodapi

import (
	"context"
	"io"
	"net/http"

	"github.com/dmitrymomot/vodclient/pkg/apiclient"
	"github.com/dmitrymomot/vodclient/pkg/session"
)

// SMSCodeRequest asks the backend to send a verification code. Username is
// sent as both phone and email; the backend picks whichever matches.
type SMSCodeRequest struct {
	Username string
	Type     string
	UUID     string
	Dots     any
	Enum     any
}

// Captcha requests an image captcha of the given kind.
func (s *Service) Captcha(ctx context.Context, kind any) (*Envelope, error) {
	return s.send(ctx, http.MethodPost, "users/captcha", map[string]any{"type": kind})
}

// SendSMSCode requests a verification code for registration or login.
func (s *Service) SendSMSCode(ctx context.Context, r SMSCodeRequest) (*Envelope, error) {
	return s.send(ctx, http.MethodPost, "users/smscode", map[string]any{
		"phone": r.Username,
		"email": r.Username,
		"type":  r.Type,
		"uuid":  r.UUID,
		"dots":  r.Dots,
		"enum":  r.Enum,
	})
}

func (s *Service) Register(ctx context.Context, body any) (*Envelope, error) {
	return s.send(ctx, http.MethodPost, "users/register", body)
}

// Login authenticates and, on success, stores data.token in the session.
func (s *Service) Login(ctx context.Context, body any) (*Envelope, error) {
	env, err := s.send(ctx, http.MethodPost, "users/login", body)
	if err != nil || !env.OK() {
		return env, err
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := env.Into(&data); err != nil || data.Token == "" {
		return env, ErrNoToken
	}
	if s.session != nil {
		s.session.SetToken(ctx, data.Token)
	}
	return env, nil
}

// Logout ends the server session and clears local login state, whatever the
// server replied.
func (s *Service) Logout(ctx context.Context) (*Envelope, error) {
	env, err := s.send(ctx, http.MethodPost, "users/logout", nil)
	if s.session != nil {
		s.session.SetLoginState(ctx, false)
	}
	return env, err
}

// UserInfo fetches the profile and caches it in the session on success.
func (s *Service) UserInfo(ctx context.Context) (*Envelope, error) {
	env, err := s.get(ctx, "users/info", nil)
	if err != nil || !env.OK() || s.session == nil {
		return env, err
	}

	var info session.UserInfo
	if err := env.Into(&info); err != nil {
		return env, err
	}
	if info != nil {
		s.session.SetUserInfo(ctx, info)
	}
	return env, nil
}

// UpdateUserInfo replaces editable profile fields. The cached profile is
// not refreshed; call UserInfo afterwards.
func (s *Service) UpdateUserInfo(ctx context.Context, body any) (*Envelope, error) {
	return s.send(ctx, http.MethodPut, "users/info", body)
}

// UpdateAvatar uploads a new avatar image as multipart field "file".
func (s *Service) UpdateAvatar(ctx context.Context, filename, contentType string, content io.Reader) (*Envelope, error) {
	return s.call(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   "users/avatar",
		Form: &apiclient.Form{
			Files: []apiclient.File{{
				Field:       "file",
				Filename:    filename,
				ContentType: contentType,
				Content:     content,
			}},
		},
	})
}
