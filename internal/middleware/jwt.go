package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"CARRENTAL_BACK-END/internal/config"
	"CARRENTAL_BACK-END/internal/dto"
	"CARRENTAL_BACK-END/internal/utils"
)

// JWTClaims represents the claims in the JWT token. The user id rides in
// the standard subject claim.
type JWTClaims struct {
	jwt.RegisteredClaims
}

// GenerateToken signs a token bound to the given user. With a zero
// AccessTokenTTL no expiry claim is set, matching the tokens the existing
// clients hold.
func GenerateToken(userID uuid.UUID, cfg *config.JWTConfig) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID.String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if cfg.AccessTokenTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(cfg.AccessTokenTTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken verifies a token's signature and returns the user id it is
// bound to
func ValidateToken(tokenString string, cfg *config.JWTConfig) (uuid.UUID, error) {
	var claims JWTClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, jwt.ErrTokenMalformed
	}

	return uuid.Parse(claims.Subject)
}

// AuthMiddleware validates the token in the Authorization header and
// attaches the user id to the request context. The existing clients send
// the bare token, so the Bearer prefix is optional.
func AuthMiddleware(next http.HandlerFunc, cfg *config.JWTConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteFailure(w, dto.ErrKindAuth, "Authorization header required")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		userID, err := ValidateToken(tokenString, cfg)
		if err != nil {
			utils.WriteFailure(w, dto.ErrKindAuth, "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	}
}
