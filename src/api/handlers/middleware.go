package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth"
	"github.com/sirupsen/logrus"
	"github.com/venoajie/trading-web-project/src/models"
	"github.com/venoajie/trading-web-project/src/utils"
)

const invalidTokenMessage = "Could not validate credentials"

type userContextKey struct{}

// UserFromContext returns the user stored by RequireUser.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey{}).(*models.User)
	return user
}

// RequireUser rejects requests without a valid bearer token and loads the
// active user named by the token's subject.
func (h *Handler) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := jwtauth.TokenFromHeader(r)
		if token == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			h.HandleErrors(w, utils.Unauthorized("Not authenticated"))
			return
		}
		email, err := h.Tokens.Subject(token)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			h.HandleErrors(w, utils.Unauthorized(invalidTokenMessage))
			return
		}

		user, err := h.AuthController.CurrentUser(h.requestContext(r), email)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			h.HandleErrors(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger logs one line per request with its outcome.
func (h *Handler) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			h.Logger.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
				"request_id": middleware.GetReqID(r.Context()),
			}).Info("request handled")
		}()
		next.ServeHTTP(ww, r)
	})
}
