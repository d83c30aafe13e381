package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken is a signed HS256 JWT plus its expiry, issued to staff on
// login and presented as a Bearer token on every API call.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// StaffClaims are the claims extracted from a verified access token.
type StaffClaims struct {
	StaffID  uint
	Username string
	Role     string
}

// NewAccessToken signs an HS256 JWT for a staff member. Claims: subject
// (staff id), username, role, expiry and issued-at.
func NewAccessToken(secret string, staffID uint, username, role string, ttl time.Duration) (AccessToken, error) {
	exp := time.Now().UTC().Add(ttl)
	claims := jwt.MapClaims{
		"sub":      fmt.Sprintf("%d", staffID),
		"username": username,
		"role":     role,
		"exp":      exp.Unix(),
		"iat":      time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies the signature and expiry of a raw token and
// returns its staff claims. Only HMAC-signed tokens are accepted.
func ParseAccessToken(secret, raw string) (StaffClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return StaffClaims{}, err
	}
	if !tok.Valid {
		return StaffClaims{}, errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return StaffClaims{}, errors.New("invalid claims")
	}

	out := StaffClaims{}
	if sub, ok := claims["sub"].(string); ok {
		var id uint
		if _, err := fmt.Sscanf(sub, "%d", &id); err == nil {
			out.StaffID = id
		}
	}
	if username, ok := claims["username"].(string); ok {
		out.Username = username
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if out.StaffID == 0 {
		return StaffClaims{}, errors.New("missing subject claim")
	}
	return out, nil
}
