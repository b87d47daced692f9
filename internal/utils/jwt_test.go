package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testSecret   = "test-secret"
	testIssuer   = "inventory-api"
	testAudience = "inventory-client"
)

func TestNewAccessTokenClaims(t *testing.T) {
	at, err := NewAccessToken(testSecret, testIssuer, testAudience, "alice", 30)
	if err != nil {
		t.Fatalf("NewAccessToken returned error: %v", err)
	}
	if at.Token == "" {
		t.Fatal("NewAccessToken returned an empty token")
	}
	if !at.Exp.After(time.Now().UTC()) {
		t.Errorf("expiry %v is not in the future", at.Exp)
	}

	tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithIssuer(testIssuer), jwt.WithAudience(testAudience))
	if err != nil {
		t.Fatalf("issued token does not parse back: %v", err)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if claims["sub"] != "alice" {
		t.Errorf("sub = %v, want alice", claims["sub"])
	}
}

func TestNewAccessTokenWrongAudienceRejected(t *testing.T) {
	at, err := NewAccessToken(testSecret, testIssuer, testAudience, "alice", 30)
	if err != nil {
		t.Fatalf("NewAccessToken returned error: %v", err)
	}
	_, err = jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithIssuer(testIssuer), jwt.WithAudience("someone-else"))
	if err == nil {
		t.Fatal("token validated against a different audience")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Abc123!", 4)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if !VerifyPassword(hash, "Abc123!") {
		t.Error("correct password did not verify")
	}
	if VerifyPassword(hash, "abc123!") {
		t.Error("wrong password verified")
	}
}
