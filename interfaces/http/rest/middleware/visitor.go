package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"bfd-backend/pkg/auth"
)

// VisitorCookie is the cookie carrying the signed visitor token
const VisitorCookie = "bfd_visitor"

// visitorHeader lets non-browser clients (agents, API callers) pass the token
// directly
const visitorHeader = "X-Visitor-Token"

type contextKey string

const visitorIDKey contextKey = "visitorID"

// Visitor resolves the caller's visitor identity. A valid token is accepted
// from the cookie or header; anything else gets a freshly minted identity
// with the cookie set on the response. Every request downstream of this
// middleware has a visitor ID.
func Visitor(tokens *auth.VisitorTokens, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			visitorID := resolveVisitor(r, tokens)
			if visitorID == "" {
				visitorID = auth.NewVisitorID()
				signed, err := tokens.Issue(visitorID)
				if err != nil {
					logger.Error("failed to issue visitor token", zap.Error(err))
				} else {
					http.SetCookie(w, &http.Cookie{
						Name:     VisitorCookie,
						Value:    signed,
						Path:     "/",
						MaxAge:   365 * 24 * 60 * 60,
						HttpOnly: true,
						SameSite: http.SameSiteLaxMode,
					})
				}
			}

			ctx := context.WithValue(r.Context(), visitorIDKey, visitorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveVisitor(r *http.Request, tokens *auth.VisitorTokens) string {
	if raw := r.Header.Get(visitorHeader); raw != "" {
		if id, err := tokens.Parse(raw); err == nil {
			return id
		}
	}
	if cookie, err := r.Cookie(VisitorCookie); err == nil && cookie.Value != "" {
		if id, err := tokens.Parse(cookie.Value); err == nil {
			return id
		}
	}
	return ""
}

// GetVisitorID returns the visitor ID placed in the context by Visitor
func GetVisitorID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(visitorIDKey).(string)
	return id, ok && id != ""
}
