package utils

import "testing"

func TestTokenPairRoundTrip(t *testing.T) {
	pair, err := GenerateTokenPair(42, "guest@example.com", "guest")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	if pair.TokenType != "bearer" {
		t.Errorf("TokenType = %q, want %q", pair.TokenType, "bearer")
	}

	claims, err := ParseToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken(access) error = %v", err)
	}
	if claims.UserID != 42 || claims.Email != "guest@example.com" || claims.Role != "guest" {
		t.Errorf("access claims = %+v", claims)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("access TokenType = %q", claims.TokenType)
	}

	refreshClaims, err := ParseToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("ParseToken(refresh) error = %v", err)
	}
	if refreshClaims.TokenType != TokenTypeRefresh {
		t.Errorf("refresh TokenType = %q", refreshClaims.TokenType)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseToken(raw); err != ErrInvalidToken {
			t.Errorf("ParseToken(%q) error = %v, want ErrInvalidToken", raw, err)
		}
	}
}

func TestParseTokenRejectsTamperedSignature(t *testing.T) {
	pair, err := GenerateTokenPair(1, "a@example.com", "guest")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	last := pair.AccessToken[len(pair.AccessToken)-1]
	flip := byte('A')
	if last == 'A' {
		flip = 'B'
	}
	tampered := pair.AccessToken[:len(pair.AccessToken)-1] + string(flip)
	if _, err := ParseToken(tampered); err != ErrInvalidToken {
		t.Errorf("ParseToken(tampered) error = %v, want ErrInvalidToken", err)
	}
}
