package auth

import (
	"errors"
	"testing"

	"github.com/alumnihub/alumnihub/internal/common"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify_Success(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify("pw123", hash)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatalf("expected hash to verify against its own secret")
	}
}

func TestHasher_Verify_WrongSecret(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify("wrong", hash)
	if err != nil {
		t.Fatalf("a mismatch must not be an error, got: %v", err)
	}
	if ok {
		t.Fatalf("wrong secret must not verify")
	}
}

func TestHasher_Hash_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	h1, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := h.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("two hashes of the same secret must differ (distinct salts)")
	}

	for _, hash := range []string{h1, h2} {
		ok, err := h.Verify("pw123", hash)
		if err != nil || !ok {
			t.Fatalf("both hashes must verify: ok=%v err=%v", ok, err)
		}
	}
}

func TestHasher_Verify_CorruptStoredHash(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "garbage", stored: "not-a-bcrypt-hash"},
		{name: "wrong prefix", stored: "$1$abcdefghijklmnopqrstuv"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.Verify("pw123", tc.stored)
			if err == nil {
				t.Fatalf("expected corrupt-credential error, got nil")
			}
			if !errors.Is(err, common.ErrCorruptCredential) {
				t.Fatalf("expected common.ErrCorruptCredential, got %v", err)
			}
		})
	}
}

func TestNewHasher_OutOfRangeCostFallsBack(t *testing.T) {
	t.Parallel()

	h := NewHasher(100)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to default cost, got %d", h.cost)
	}
}
