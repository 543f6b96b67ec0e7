package token

import (
	"errors"
	"testing"
	"time"

	"github.com/nsavelyev/viewtube/internal/common"
)

func TestMintAndVerify_Success(t *testing.T) {
	t.Parallel()

	c := NewCodec(0)
	secret := []byte("super-secret")

	tok, err := c.Mint("user-123", "user", secret, time.Hour)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	claims, err := c.Verify(tok, secret)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("UserID mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.Role != "user" {
		t.Fatalf("Role mismatch: got %q want %q", claims.Role, "user")
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	c := NewCodec(0)
	secret := []byte("secret")

	tok, err := c.Mint("u1", "", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	_, err = c.Verify(tok, secret)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestVerify_LeewayAcceptsRecentlyExpired(t *testing.T) {
	t.Parallel()

	c := NewCodec(2 * time.Minute)
	secret := []byte("secret")

	tok, err := c.Mint("u1", "", secret, -30*time.Second)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	if _, err := c.Verify(tok, secret); err != nil {
		t.Fatalf("expected token inside leeway window to verify, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	c := NewCodec(0)

	tok, err := c.Mint("u2", "user", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	_, err = c.Verify(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrTokenSignatureInvalid) {
		t.Fatalf("expected common.ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestVerify_CrossSecretRejected(t *testing.T) {
	t.Parallel()

	// Access and refresh secrets are independent; a token minted with one
	// must never verify with the other.
	c := NewCodec(0)
	access := []byte("access-secret")
	refresh := []byte("refresh-secret")

	tok, err := c.Mint("u3", "user", access, time.Hour)
	if err != nil {
		t.Fatalf("Mint error: %v", err)
	}

	if _, err := c.Verify(tok, refresh); !errors.Is(err, common.ErrTokenSignatureInvalid) {
		t.Fatalf("expected common.ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	c := NewCodec(0)
	_, err := c.Verify("not.a.jwt", []byte("k"))
	if !errors.Is(err, common.ErrTokenMalformed) {
		t.Fatalf("expected common.ErrTokenMalformed, got %v", err)
	}
}
