package jwt

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "admin@vaqmas.com", "Admin VAQ+", true)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id: got %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "admin@vaqmas.com" || claims.Name != "Admin VAQ+" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if !claims.IsAdmin {
		t.Fatal("admin flag lost in round trip")
	}
	if claims.Issuer != "vaq-admin-api" {
		t.Fatalf("issuer: got %q", claims.Issuer)
	}
}

func TestValidateToken_RejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "admin@vaqmas.com", "Admin", true)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d segments", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := ValidateToken(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
