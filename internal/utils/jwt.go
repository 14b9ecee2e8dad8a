package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/khaild19/10AI/internal/consts"
	"github.com/khaild19/10AI/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const loginTokenType = "login"

// LoginClaims identifies the owner of a session token.
type LoginClaims struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

func getSecret() []byte {
	return []byte(config.Get().JWT.Secret)
}

// LoginTokenTTL returns the configured token lifetime, 24h when unset.
func LoginTokenTTL() time.Duration {
	hours := config.Get().JWT.ExpirationHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func GenerateLoginToken(id uint, username string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := LoginClaims{
		ID:       id,
		Username: username,
		Type:     loginTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			Issuer:    consts.ApplicationName,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSecret())
}

func ParseLoginToken(tokenString string) (*LoginClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &LoginClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*LoginClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Type != loginTokenType {
		return nil, errors.New("invalid token type")
	}
	return claims, nil
}
