// Package cryptox is the password-keyed encryption helper for note content.
// Output is self-contained: the version, salt and nonce travel with the
// ciphertext, so decryption needs only the blob and the password.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// ErrDecryption covers wrong password, corrupted data and version
// mismatch. Callers must be able to tell this apart from an empty
// plaintext; a wrong password never silently yields garbage.
var ErrDecryption = errors.New("cryptox: decryption failed")

const (
	formatVersion = 0x01
	saltSize      = 16
	nonceSize     = 12
	keySize       = 32
)

func deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, keySize)
}

// Encrypt seals plaintext with AES-GCM under an argon2id key derived from
// the password. A fresh random salt and nonce are generated per call and
// embedded in the base64 output.
func Encrypt(plaintext, password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("error generating nonce: %w", err)
	}

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return "", fmt.Errorf("error creating cipher: %w", err)
	}
	aesgcm, err := cipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return "", fmt.Errorf("error creating GCM: %w", err)
	}

	sealed := aesgcm.Seal(nil, nonce, []byte(plaintext), nil)

	blob := make([]byte, 0, 1+saltSize+nonceSize+len(sealed))
	blob = append(blob, formatVersion)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, sealed...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt reverses Encrypt. Any failure mode surfaces as ErrDecryption.
func Decrypt(ciphertext, password string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: malformed encoding", ErrDecryption)
	}
	if len(blob) < 1+saltSize+nonceSize {
		return "", fmt.Errorf("%w: blob too short", ErrDecryption)
	}
	if blob[0] != formatVersion {
		return "", fmt.Errorf("%w: unsupported version %d", ErrDecryption, blob[0])
	}

	salt := blob[1 : 1+saltSize]
	nonce := blob[1+saltSize : 1+saltSize+nonceSize]
	sealed := blob[1+saltSize+nonceSize:]

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	aesgcm, err := cipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	plaintext, err := aesgcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: wrong password or corrupted data", ErrDecryption)
	}
	return string(plaintext), nil
}
