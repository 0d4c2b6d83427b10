package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"
)

// serviceUser is who every request carrying the service token authenticates as
const serviceUser = "court-report-client"

// TokenAuth guards routes with a bearer token shared with the callers of this
// service, e.g. the case management web app.
type TokenAuth struct {
	authenticator auth.Authenticator
}

// NewTokenAuth sets up go-guardian with a cached bearer strategy that only
// knows the given token
func NewTokenAuth(token string) (*TokenAuth, error) {
	if token == "" {
		return nil, errors.New("api token is not set")
	}

	authenticator := auth.New()
	cache := store.NewFIFO(context.Background(), time.Hour*24*365*100) // 100 years ttl
	tokenStrategy := bearer.New(bearer.NoOpAuthenticate, cache)
	authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)

	err := auth.Append(tokenStrategy, token, auth.NewDefaultUser(serviceUser, "1", nil, nil), nil)
	if err != nil {
		return nil, err
	}
	return &TokenAuth{authenticator: authenticator}, nil
}

// Middleware rejects requests without the service token
func (t *TokenAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := t.authenticator.Authenticate(r)
		if err != nil {
			zap.S().Errorw("unauthorized",
				"url", r.URL)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		zap.S().Debugw("request authenticated", "user", user.UserName())
		next.ServeHTTP(w, r)
	})
}
