package security

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

// ParsePublicKey parses a PEM encoded RSA public key in PKIX form, the format
// the gateway publishes its verification key in.
func ParsePublicKey(pkey []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pkey)
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, ErrNoPEMBlock
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPub, nil
}

func ParsePublicKeyFromFile(filename string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return ParsePublicKey(data)
}
