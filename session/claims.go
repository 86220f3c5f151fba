package session

import (
	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the exp claim from a JWT-shaped credential without
// verifying its signature. Signature validation belongs to the auth
// service; the client only surfaces expiry metadata to its UI callers.
// Opaque non-JWT tokens return (0, false).
func TokenExpiry(token string) (int64, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, false
	}

	return exp.Unix(), true
}
