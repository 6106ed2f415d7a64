package tabular

import (
	"strings"
	"testing"
)

func TestArgon2_Hash(t *testing.T) {
	h := Argon2WithParams(Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 16, SaltLen: 8})

	hash, err := h.Hash([]byte("password123"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("Hash() = %q, want prefix $argon2id$", hash)
	}
	if strings.Contains(hash, ",") {
		t.Errorf("Hash() = %q, should not contain a separator", hash)
	}

	again, _ := h.Hash([]byte("password123"))
	if hash == again {
		t.Error("same plaintext should produce different hashes (random salt)")
	}
}

func TestDefaultArgon2Params(t *testing.T) {
	params := DefaultArgon2Params()

	if params.Time != 1 {
		t.Errorf("Time = %d, want 1", params.Time)
	}
	if params.Memory != 64*1024 {
		t.Errorf("Memory = %d, want %d", params.Memory, 64*1024)
	}
	if params.Threads != 4 {
		t.Errorf("Threads = %d, want 4", params.Threads)
	}
	if params.KeyLen != 32 {
		t.Errorf("KeyLen = %d, want 32", params.KeyLen)
	}
	if params.SaltLen != 16 {
		t.Errorf("SaltLen = %d, want 16", params.SaltLen)
	}
}

func TestBcrypt_Hash(t *testing.T) {
	h := BcryptWithCost(BcryptMinCost)

	hash, err := h.Hash([]byte("password123"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("Hash() = %q, want prefix $2", hash)
	}
}

func TestSHA256Hasher_Hash(t *testing.T) {
	h := SHA256Hasher()

	hash, err := h.Hash([]byte("hello"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if hash != want {
		t.Errorf("Hash() = %q, want %q", hash, want)
	}
}

func TestSHA512Hasher_Hash(t *testing.T) {
	h := SHA512Hasher()

	hash, err := h.Hash([]byte("hello"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	if len(hash) != 128 {
		t.Errorf("Hash() length = %d, want 128", len(hash))
	}

	again, _ := h.Hash([]byte("hello"))
	if hash != again {
		t.Error("SHA512 should be deterministic")
	}
}

func TestBuiltinHashers(t *testing.T) {
	hashers := builtinHashers()

	for algo := range validHashAlgos {
		if _, ok := hashers[algo]; !ok {
			t.Errorf("builtinHashers() missing %q", algo)
		}
	}
}
