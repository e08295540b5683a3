package middleware

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/panelgate-dev/panelgate/internal/cookies"
	"github.com/panelgate-dev/panelgate/internal/logger"
)

const flashCookieError = "flash_error"

// Session guards gateway routes behind the admin session cookie issued by
// the panel backend. An absent, malformed or expired session is bounced to
// the backend login page with a flash message, the same way the panel itself
// handles it.
type Session struct {
	secret        string
	cookieName    string
	loginURL      string
	secureCookies bool
}

func NewSession(secret, cookieName, loginURL string, secureCookies bool) *Session {
	return &Session{
		secret:        secret,
		cookieName:    cookieName,
		loginURL:      loginURL,
		secureCookies: secureCookies,
	}
}

// Guard returns middleware enforcing a valid session.
func (s *Session) Guard() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(s.cookieName)
			if err != nil {
				s.redirectToLogin(w, r, "Please log in to continue")
				return
			}
			if err := s.validate(cookie.Value); err != nil {
				logger.Log.Warn("rejected session token", "path", r.URL.Path, "error", err)
				s.redirectToLogin(w, r, "Session expired, please log in again")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Session) validate(tokenStr string) error {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("invalid session token")
	}
	return nil
}

func (s *Session) redirectToLogin(w http.ResponseWriter, r *http.Request, errorMsg string) {
	// Flash message is base64 encoded so special characters survive the
	// cookie round trip.
	encoded := base64.StdEncoding.EncodeToString([]byte(errorMsg))
	w.Header().Add("Set-Cookie", cookies.Serialize(flashCookieError, encoded, cookies.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   s.secureCookies,
	}))

	http.Redirect(w, r, s.loginURL, http.StatusSeeOther)
}
