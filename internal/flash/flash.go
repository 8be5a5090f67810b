// Package flash carries one-shot confirmation messages across a redirect in a
// signed cookie.
package flash

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	cookieName = "flash"
	lifetime   = 5 * time.Minute
)

type claims struct {
	Message string `json:"msg"`
	jwt.RegisteredClaims
}

type Flasher struct {
	secret []byte
	now    func() time.Time
}

func New(secret string) *Flasher {
	return &Flasher{secret: []byte(secret), now: time.Now}
}

// Set stores msg for the next request made by the same client.
func (f *Flasher) Set(w http.ResponseWriter, msg string) error {
	if msg == "" {
		return errors.New("flash: empty message")
	}

	now := f.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Message: msg,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	})
	signed, err := token.SignedString(f.secret)
	if err != nil {
		return fmt.Errorf("flash: sign message: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(lifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the pending message, if any, and clears it. Expired or tampered
// cookies are discarded silently.
func (f *Flasher) Pop(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c := &claims{}
	_, err = jwt.ParseWithClaims(cookie.Value, c, func(*jwt.Token) (any, error) {
		return f.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(f.now))
	if err != nil {
		return ""
	}
	return c.Message
}
