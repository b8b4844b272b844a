package middleware

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var bearerRegex = regexp.MustCompile(`^Bearer (\S+)$`)

type contextKey string

const sessionContextKey contextKey = "session"

// Session identifies the authenticated caller for the lifetime of one
// request.
type Session struct {
	UserID   uuid.UUID
	FullName string
}

// SessionFromContext returns the session placed by the authenticator, or
// nil when the request was not authenticated.
func SessionFromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(sessionContextKey).(*Session)
	return session
}

// ContextWithSession attaches a session to a context. Exposed for
// handlers under test.
func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

type sessionClaims struct {
	FullName string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// SessionAuthenticator is middleware that validates bearer session tokens
type SessionAuthenticator struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionAuthenticator creates a session authenticator signing and
// verifying with the given HMAC secret
func NewSessionAuthenticator(secret []byte, ttl time.Duration) *SessionAuthenticator {
	return &SessionAuthenticator{secret: secret, ttl: ttl}
}

// IssueToken signs a session token for a user. The token carries the user
// ID as subject and expires after the authenticator's TTL.
func (s *SessionAuthenticator) IssueToken(userID uuid.UUID, fullName string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Middleware returns an HTTP middleware that validates bearer tokens and
// attaches the caller's session to the request context
func (s *SessionAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		tokenMatches := bearerRegex.FindStringSubmatch(authHeader)

		if len(tokenMatches) != 2 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		claims := &sessionClaims{}
		token, err := jwt.ParseWithClaims(
			tokenMatches[1],
			claims,
			func(token *jwt.Token) (interface{}, error) {
				return s.secret, nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !token.Valid {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid session token"))
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid session token"))
			return
		}

		session := &Session{UserID: userID, FullName: claims.FullName}
		r = r.WithContext(ContextWithSession(r.Context(), session))

		next.ServeHTTP(w, r)
	})
}
