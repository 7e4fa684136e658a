package auth

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/calebmorton/storefront/internal/models"
)

// contextKey is a custom type for context keys
type contextKey string

// SessionContextKey is the key for storing session claims in context
const SessionContextKey contextKey = "session"

// GateConfig holds the access gate's route classification settings. The
// public allow-list is fixed at startup, not user-configurable at runtime.
type GateConfig struct {
	LoginPath      string
	PublicPrefixes []string
	Cookie         CookieConfig
}

// DefaultGateConfig returns the storefront's public route allow-list. The
// login and auth endpoints must stay public or login traffic would gate
// itself out.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		LoginPath: "/login",
		PublicPrefixes: []string{
			"/login",
			"/register",
			"/api/auth",
			"/static",
			"/health",
		},
	}
}

// GateDecision is the outcome of authorizing one request. Exactly one of
// Allow or RedirectTo applies. Reissue signals that a fresh token should be
// written alongside the response (sliding expiry); it is an explicit
// side-effect signal, not hidden mutation.
type GateDecision struct {
	Allow      bool
	Claims     *models.SessionClaims // nil for public routes
	Reissue    bool
	RedirectTo string
}

// SessionGate intercepts every request, classifies it as public or
// protected, and for protected requests verifies the session token.
type SessionGate struct {
	sessions *SessionManager
	config   GateConfig
}

func NewSessionGate(sessions *SessionManager, config GateConfig) *SessionGate {
	if config.LoginPath == "" {
		config.LoginPath = "/login"
	}
	return &SessionGate{sessions: sessions, config: config}
}

// IsPublicPath reports whether a request path is reachable without a session.
// The root path matches exactly; allow-list entries match as prefixes; any
// path whose final segment carries a file extension is treated as a static
// asset.
func (g *SessionGate) IsPublicPath(requestPath string) bool {
	if requestPath == "/" {
		return true
	}

	for _, prefix := range g.config.PublicPrefixes {
		if strings.HasPrefix(requestPath, prefix) {
			return true
		}
	}

	return path.Ext(requestPath) != ""
}

// Authorize decides whether a request may continue. It never fails: a
// missing, malformed, or expired token is the redirect branch, not an error.
func (g *SessionGate) Authorize(requestPath, token string, now time.Time) GateDecision {
	if g.IsPublicPath(requestPath) {
		return GateDecision{Allow: true}
	}

	claims, err := g.sessions.Validate(token)
	if err != nil {
		redirect := g.config.LoginPath + "?callbackUrl=" + url.QueryEscape(requestPath)
		return GateDecision{RedirectTo: redirect}
	}

	return GateDecision{
		Allow:   true,
		Claims:  claims,
		Reissue: g.sessions.NeedsRefresh(claims, now),
	}
}

// Middleware applies the gate to every request before any handler runs.
func (g *SessionGate) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := g.Authorize(r.URL.Path, GetSessionCookie(r), time.Now())

			if !decision.Allow {
				http.Redirect(w, r, decision.RedirectTo, http.StatusFound)
				return
			}

			if decision.Claims != nil {
				if decision.Reissue {
					// Renew the sliding session before the handler writes
					// anything; the old token stays valid until its own expiry
					if fresh, err := g.sessions.Refresh(decision.Claims); err == nil {
						SetSessionCookie(w, fresh, g.sessions.MaxAge(), g.config.Cookie)
					}
				}

				ctx := context.WithValue(r.Context(), SessionContextKey, decision.Claims)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionFromContext extracts session claims from the request context.
// Returns nil when the request carried no valid session.
func GetSessionFromContext(r *http.Request) *models.SessionClaims {
	claims, ok := r.Context().Value(SessionContextKey).(*models.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}
