package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestLoginToken_RoundTrip(t *testing.T) {
	token, err := GenerateLoginToken(123, "alice", time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}
	claims, err := ParseLoginToken(token)
	if err != nil {
		t.Fatalf("ParseLoginToken error: %v", err)
	}
	if claims.ID != 123 || claims.Username != "alice" || claims.Type != "login" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseLoginToken_Expired(t *testing.T) {
	token, err := GenerateLoginToken(1, "alice", -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}
	if _, err := ParseLoginToken(token); err == nil {
		t.Fatalf("expected expired token error")
	}
}

func TestParseLoginToken_RejectsWrongType(t *testing.T) {
	claims := LoginClaims{ID: 1, Username: "alice", Type: "refresh"}
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(getSecret())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseLoginToken(token); err == nil {
		t.Fatalf("expected error for wrong token type")
	}
}

func TestParseLoginToken_RejectsOtherSecret(t *testing.T) {
	claims := LoginClaims{ID: 1, Username: "alice", Type: "login"}
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("someone-else"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseLoginToken(token); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestParseLoginToken_Garbage(t *testing.T) {
	if _, err := ParseLoginToken("not-a-token"); err == nil {
		t.Fatalf("expected parse error")
	}
}
