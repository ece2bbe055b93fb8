package tokens

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload of the authToken cookie issued at login.
type SessionClaims struct {
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

// TicketClaims carries the whole verification-flow state. The token is the
// only storage: nothing about a pending code exists server-side.
type TicketClaims struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Kind     string `json:"kind"`
	Verified bool   `json:"verified"`
	jwt.RegisteredClaims
}

func SignSession(principalID, kind string, secret []byte, exp time.Time) (string, error) {
	claims := SessionClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func SessionFromToken(raw string, secret []byte) (*SessionClaims, error) {
	claims := &SessionClaims{}
	t, err := jwt.ParseWithClaims(raw, claims, keyFunc(secret))
	if err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}

func SignTicket(email, code, kind string, verified bool, secret []byte, exp time.Time) (string, error) {
	claims := TicketClaims{
		Email:    email,
		Code:     code,
		Kind:     kind,
		Verified: verified,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func TicketFromToken(raw string, secret []byte) (*TicketClaims, error) {
	claims := &TicketClaims{}
	t, err := jwt.ParseWithClaims(raw, claims, keyFunc(secret))
	if err != nil {
		return nil, err
	}
	if !t.Valid {
		return nil, fmt.Errorf("invalid ticket token")
	}
	return claims, nil
}

func keyFunc(secret []byte) jwt.Keyfunc {
	return func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}
}

func CreateCookie(name, value, path string, exp time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  exp,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func DeleteCookie(name, path string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
