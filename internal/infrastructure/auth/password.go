package auth

import (
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"math/big"
)

// HashPassword reproduces the OpenCart 1.5/2.x password scheme:
// sha1(salt + sha1(salt + sha1(password))), lowercase hex at every step.
// The scheme is weak by modern standards but stored credentials in
// oc_customer/oc_user were written with it, so it must match byte for
// byte. New credential schemes go behind this same function signature.
func HashPassword(plain, salt string) string {
	inner := sha1Hex(plain)
	middle := sha1Hex(salt + inner)
	return sha1Hex(salt + middle)
}

// VerifyPassword checks a plaintext password against a stored hash/salt
// pair using exact string equality, matching the legacy storefront.
func VerifyPassword(plain, storedHash, salt string) bool {
	return HashPassword(plain, salt) == storedHash
}

const saltChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateSalt produz um salt de 9 caracteres, mesmo tamanho usado pelo
// OpenCart ao criar contas.
func GenerateSalt() (string, error) {
	b := make([]byte, 9)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(saltChars))))
		if err != nil {
			return "", err
		}
		b[i] = saltChars[n.Int64()]
	}
	return string(b), nil
}

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
