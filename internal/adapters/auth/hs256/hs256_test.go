package hs256

import (
	"context"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc, err := New("test-secret")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	claims, err := svc.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("expected user-123, got %q", claims.UserID)
	}
}

func TestVerify_RejectsBadTokens(t *testing.T) {
	svc, _ := New("test-secret")
	other, _ := New("other-secret")

	good, _ := svc.Issue("user-123")

	// firmado con otro secreto
	foreign, _ := other.Issue("user-123")

	// token sin claim user_id
	noClaim := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{})
	noClaimStr, _ := noClaim.SignedString([]byte("test-secret"))

	// mismo payload pero método none
	noneTok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "user-123"})
	noneStr, _ := noneTok.SignedString(jwt.UnsafeAllowNoneSignatureType)

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "not.a.jwt"},
		{"tampered", good[:len(good)-2] + "xx"},
		{"wrong secret", foreign},
		{"missing claim", noClaimStr},
		{"alg none", noneStr},
	}

	for _, tc := range cases {
		if _, err := svc.Verify(context.Background(), tc.token); err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestNew_RequiresSecret(t *testing.T) {
	for _, s := range []string{"", "   "} {
		if _, err := New(s); err != ErrEmptySecret {
			t.Fatalf("secret %q: expected ErrEmptySecret, got %v", strings.TrimSpace(s), err)
		}
	}
}
