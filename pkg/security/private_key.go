package security

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/youmark/pkcs8"
)

const (
	blockRSAPrivateKey       = "RSA PRIVATE KEY"
	blockPrivateKey          = "PRIVATE KEY"
	blockEncryptedPrivateKey = "ENCRYPTED PRIVATE KEY"
)

var ErrNoPEMBlock = errors.New("no pem block found")

// ParsePrivateKey parses a PEM encoded RSA private key. PKCS#1 and PKCS#8 keys
// are accepted, encrypted ones are decrypted with passphrase.
func ParsePrivateKey(data []byte, passphrase string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrNoPEMBlock
	}

	switch block.Type {
	case blockRSAPrivateKey:
		der := block.Bytes

		//nolint:staticcheck
		if x509.IsEncryptedPEMBlock(block) {
			if passphrase == "" {
				return nil, errors.New("key is encrypted but no passphrase given")
			}

			var err error

			//nolint:staticcheck
			der, err = x509.DecryptPEMBlock(block, []byte(passphrase))
			if err != nil {
				return nil, fmt.Errorf("decrypt private key: %w", err)
			}
		}

		key, err := x509.ParsePKCS1PrivateKey(der)
		if err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}

		return key, nil
	case blockPrivateKey:
		key, err := pkcs8.ParsePKCS8PrivateKeyRSA(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}

		return key, nil
	case blockEncryptedPrivateKey:
		if passphrase == "" {
			return nil, errors.New("key is encrypted but no passphrase given")
		}

		key, err := pkcs8.ParsePKCS8PrivateKeyRSA(block.Bytes, []byte(passphrase))
		if err != nil {
			return nil, fmt.Errorf("parse encrypted private key: %w", err)
		}

		return key, nil
	default:
		return nil, fmt.Errorf("unsupported pem block %q", block.Type)
	}
}

func ParsePrivateKeyFromFile(filename, passphrase string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return ParsePrivateKey(data, passphrase)
}
