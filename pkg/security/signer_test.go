package security_test

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/csob/pkg/security"
)

func TestNewSigner(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		hash    string
		want    crypto.Hash
		wantErr bool
	}{
		{hash: "", want: crypto.SHA1},
		{hash: "sha1", want: crypto.SHA1},
		{hash: "SHA256", want: crypto.SHA256},
		{hash: "md5", wantErr: true},
	} {
		tt := tt
		t.Run(tt.hash, func(t *testing.T) {
			t.Parallel()

			s, err := security.NewSigner(tt.hash)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, s.Hash)
		})
	}
}

func TestSigner_SignString(t *testing.T) {
	t.Parallel()

	key := generateKey(t)
	filename := writePEM(t, &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})

	const message = "M1MIPS0000|12345|20240307090503|payment|card|100|CZK|true"

	for _, hash := range []crypto.Hash{crypto.SHA1, crypto.SHA256} {
		hash := hash
		t.Run(hash.String(), func(t *testing.T) {
			t.Parallel()

			s := security.Signer{Hash: hash}

			sig, err := s.SignString(message, filename, "")
			require.NoError(t, err)
			require.NotEmpty(t, sig)

			require.NoError(t, s.Verify(&key.PublicKey, message, sig))
			require.Error(t, s.Verify(&key.PublicKey, message+"|", sig))
		})
	}
}

func TestSigner_SignString_MissingKey(t *testing.T) {
	t.Parallel()

	_, err := security.Signer{}.SignString("message", "/nonexistent/merchant.key", "")
	require.Error(t, err)
}

func TestSigner_Verify_BadEncoding(t *testing.T) {
	t.Parallel()

	key := generateKey(t)

	err := security.Signer{}.Verify(&key.PublicKey, "message", "%%%")
	require.Error(t, err)
}
