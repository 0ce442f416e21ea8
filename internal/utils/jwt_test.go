package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewSessionTokenClaims(t *testing.T) {
	tok, err := NewSessionToken("unit-secret", 42, "alice@test.com", "customer", 7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("unit-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse token: %v", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if got := claims["sub"].(float64); uint64(got) != 42 {
		t.Fatalf("sub=%v want 42", got)
	}
	if claims["email"] != "alice@test.com" {
		t.Fatalf("email=%v want alice@test.com", claims["email"])
	}
	if claims["role"] != "customer" {
		t.Fatalf("role=%v want customer", claims["role"])
	}

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	want := time.Now().Add(7 * 24 * time.Hour)
	if diff := exp.Sub(want); diff > time.Minute || diff < -time.Minute {
		t.Fatalf("exp=%v not ~7 days out", exp)
	}
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	tok, err := NewSessionToken("unit-secret", 42, "alice@test.com", "customer", 7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("different-secret"), nil
	})
	if err == nil && parsed != nil && parsed.Valid {
		t.Fatal("token validated under the wrong secret")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("pw123456", 4) // min cost keeps the test fast
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pw123456" {
		t.Fatal("hash equals plaintext")
	}
	if !VerifyPassword(hash, "pw123456") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "pw1234567") {
		t.Fatal("wrong password accepted")
	}
}
