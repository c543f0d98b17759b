package security

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
)

// Signer produces RSA PKCS#1 v1.5 signatures encoded as base64.
type Signer struct {
	Hash crypto.Hash
}

// NewSigner returns a signer for the named hash: "sha1" or "sha256".
func NewSigner(hash string) (Signer, error) {
	switch strings.ToLower(hash) {
	case "", "sha1":
		return Signer{Hash: crypto.SHA1}, nil
	case "sha256":
		return Signer{Hash: crypto.SHA256}, nil
	default:
		return Signer{}, fmt.Errorf("unsupported signature hash %q", hash)
	}
}

// SignString loads the private key from keyFile and signs message with it.
func (s Signer) SignString(message, keyFile, passphrase string) (string, error) {
	key, err := ParsePrivateKeyFromFile(keyFile, passphrase)
	if err != nil {
		return "", err
	}

	return s.Sign(key, message)
}

func (s Signer) Sign(key *rsa.PrivateKey, message string) (string, error) {
	digest, err := s.digest(message)
	if err != nil {
		return "", err
	}

	sig, err := rsa.SignPKCS1v15(rand.Reader, key, s.hash(), digest)
	if err != nil {
		return "", fmt.Errorf("sign: %w", err)
	}

	return base64.StdEncoding.EncodeToString(sig), nil
}

// Verify checks a base64 signature of message made by Sign.
func (s Signer) Verify(pub *rsa.PublicKey, message, signature string) error {
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}

	digest, err := s.digest(message)
	if err != nil {
		return err
	}

	err = rsa.VerifyPKCS1v15(pub, s.hash(), digest, sig)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	return nil
}

func (s Signer) hash() crypto.Hash {
	if s.Hash == 0 {
		return crypto.SHA1
	}

	return s.Hash
}

func (s Signer) digest(message string) ([]byte, error) {
	switch s.hash() {
	case crypto.SHA1:
		sum := sha1.Sum([]byte(message)) //nolint:gosec
		return sum[:], nil
	case crypto.SHA256:
		sum := sha256.Sum256([]byte(message))
		return sum[:], nil
	default:
		return nil, fmt.Errorf("unsupported hash %s", s.hash())
	}
}
