package middleware

import (
	"os"
	"strconv"
	"time"

	"toolbase/globals"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL reads TOKEN_TTL_HOURS (default 1h; deployments have used 1-5h).
func TokenTTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("TOKEN_TTL_HOURS"))
	if err != nil || hours < 1 {
		hours = 1
	}
	return time.Duration(hours) * time.Hour
}

// CreateToken issues a signed HS256 token carrying the email claim.
func CreateToken(email string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
