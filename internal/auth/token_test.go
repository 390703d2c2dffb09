package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestTokenService() *TokenService {
	return NewTokenService([]byte("test-secret-key-32bytes-long!!"), 15*time.Minute)
}

func TestIssueAndValidateAccessToken(t *testing.T) {
	ts := newTestTokenService()

	token, err := ts.IssueAccessToken("profile-123", "alice")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ts.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}

	if claims.Profile() != "profile-123" {
		t.Errorf("Profile = %q, want %q", claims.Profile(), "profile-123")
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want %q", claims.Username, "alice")
	}
	if claims.Issuer != Issuer {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, Issuer)
	}
}

func TestIssueAccessToken_EmptyProfile(t *testing.T) {
	ts := newTestTokenService()
	if _, err := ts.IssueAccessToken("", "alice"); !errors.Is(err, ErrNoProfile) {
		t.Errorf("err = %v, want ErrNoProfile", err)
	}
}

func TestValidateAccessToken_NoSubject(t *testing.T) {
	ts := newTestTokenService()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err := token.SignedString([]byte("test-secret-key-32bytes-long!!"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	if _, err := ts.ValidateAccessToken(signed); !errors.Is(err, ErrNoProfile) {
		t.Errorf("err = %v, want ErrNoProfile", err)
	}
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	ts1 := NewTokenService([]byte("secret-one-is-32-bytes-long!!!!"), 15*time.Minute)
	ts2 := NewTokenService([]byte("secret-two-is-32-bytes-long!!!!"), 15*time.Minute)

	token, err := ts1.IssueAccessToken("profile-123", "alice")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	_, err = ts2.ValidateAccessToken(token)
	if err == nil {
		t.Error("expected error validating token with wrong secret")
	}
}

func TestValidateAccessToken_Expired(t *testing.T) {
	ts := NewTokenService([]byte("test-secret-key-32bytes-long!!"), -1*time.Second)
	token, err := ts.IssueAccessToken("profile-123", "alice")
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	_, err = ts.ValidateAccessToken(token)
	if err == nil {
		t.Error("expected error for expired token")
	}
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	ts := newTestTokenService()
	_, err := ts.ValidateAccessToken("not.a.jwt")
	if err == nil {
		t.Error("expected error for garbage token")
	}
}

func TestValidateAccessToken_RejectsNoneAlgorithm(t *testing.T) {
	ts := newTestTokenService()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "profile-123"},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	if _, err := ts.ValidateAccessToken(signed); err == nil {
		t.Error("expected error for unsigned token")
	}
}

func TestTokenServiceTTL(t *testing.T) {
	ts := newTestTokenService()
	if ts.AccessTokenTTL() != 15*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want 15m", ts.AccessTokenTTL())
	}
}
