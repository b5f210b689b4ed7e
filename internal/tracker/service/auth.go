package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"vendortrack/internal/audit"
	"vendortrack/internal/tracker/models"
	dErrors "vendortrack/pkg/domainerrors"
	"vendortrack/pkg/requestcontext"
)

// Session is the outcome of a successful login.
type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Login matches the credentials against the stored users collection and, on
// success, returns the user with a signed session token. Every failure mode
// collapses into the same generic error so accounts cannot be enumerated.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	invalid := dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		s.noteLoginFailure(ctx, email)
		return nil, invalid
	}

	users, err := s.store.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}
	var matched *models.User
	for i := range users {
		if users[i].Email == email {
			matched = &users[i]
			break
		}
	}
	// Compare against an empty secret when the email is unknown so both
	// failure modes cost the same.
	stored := ""
	if matched != nil {
		stored = matched.Password
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 || matched == nil {
		s.noteLoginFailure(ctx, email)
		return nil, invalid
	}

	token := ""
	if s.tokens != nil {
		token, err = s.tokens.Issue(*matched)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue session token")
		}
	}

	// The actor is not on the context yet during login; attribute the entry
	// to the user who just authenticated.
	actorCtx := requestcontext.WithActor(ctx, requestcontext.Actor{
		UserID: matched.ID,
		Email:  matched.Email,
		Name:   matched.Name,
		Role:   string(matched.Role),
	})
	s.recordAudit(actorCtx, audit.ActionLogin, "user", matched.ID, map[string]string{"email": matched.Email})

	return &Session{User: *matched, Token: token}, nil
}

// Logout records the end of a session. Tokens are stateless, so there is
// nothing to revoke; the audit entry is the whole effect.
func (s *Service) Logout(ctx context.Context) {
	actor := requestcontext.ActorFrom(ctx)
	s.recordAudit(ctx, audit.ActionLogout, "user", actor.UserID, map[string]string{"email": actor.Email})
}

func (s *Service) noteLoginFailure(ctx context.Context, email string) {
	s.logger.WarnContext(ctx, "login rejected", "email", email)
	if s.metrics != nil {
		s.metrics.IncrementLoginFailures()
	}
}
