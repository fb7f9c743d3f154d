package auth

import "testing"

// Vectors produced by the storefront's own hashing routine; any change
// to HashPassword breaks login for every existing account.
func TestHashPasswordKnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		password string
		salt     string
		want     string
	}{
		{"customer", "password123", "a1b2c3d4e", "0c2e884a18971fc1bfc196469cd1250e36cf16ca"},
		{"short password", "letmein", "9f8e7d6c5", "7263ef126ff293157f251037e89342b1a0e02495"},
		{"admin default", "admin", "QX4dR2pzb", "b01cd410b31c323a87f426fd6912f64aad7f2277"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HashPassword(tt.password, tt.salt)
			if got != tt.want {
				t.Errorf("HashPassword(%q, %q) = %q, want %q", tt.password, tt.salt, got, tt.want)
			}
		})
	}
}

func TestVerifyPassword(t *testing.T) {
	const salt = "a1b2c3d4e"
	stored := HashPassword("password123", salt)

	if !VerifyPassword("password123", stored, salt) {
		t.Error("expected correct password to verify")
	}
	if VerifyPassword("password124", stored, salt) {
		t.Error("wrong password must not verify")
	}
	if VerifyPassword("password123", stored, "x1b2c3d4e") {
		t.Error("wrong salt must not verify")
	}
	if VerifyPassword("", stored, salt) {
		t.Error("empty password must not verify")
	}

	mutated := "f" + stored[1:]
	if mutated == stored {
		mutated = "0" + stored[1:]
	}
	if VerifyPassword("password123", mutated, salt) {
		t.Error("mutated hash must not verify")
	}
}

func TestGenerateSalt(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		salt, err := GenerateSalt()
		if err != nil {
			t.Fatalf("GenerateSalt: %v", err)
		}
		if len(salt) != 9 {
			t.Fatalf("salt %q has length %d, want 9", salt, len(salt))
		}
		if seen[salt] {
			t.Fatalf("duplicate salt %q", salt)
		}
		seen[salt] = true
	}
}
