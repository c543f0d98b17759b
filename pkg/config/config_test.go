package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/csob/pkg/config"
)

//nolint:paralleltest
func TestNew(t *testing.T) {
	t.Setenv("MERCHANT_ID", "M1MIPS0000")
	t.Setenv("MERCHANT_SHOP_NAME", "Shop")
	t.Setenv("MERCHANT_RETURN_URL", "https://shop.example/return")
	t.Setenv("MERCHANT_PRIVATE_KEY_FILE", "/keys/merchant.key")
	t.Setenv("GATEWAY_TIMEOUT", "5s")

	c, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, 8080, c.HTTP.Port)
	require.Equal(t, "info", c.Logger.Level)
	require.Equal(t, "POST", c.Merchant.ReturnMethod)
	require.Equal(t, "sha1", c.Merchant.SignatureHash)
	require.Equal(t, 5*time.Second, c.Gateway.Timeout)
	require.False(t, c.Gateway.Enabled)
	require.False(t, c.Kafka.Enabled)

	m := c.Merchant.Entity()
	require.Equal(t, "M1MIPS0000", m.ID)
	require.Equal(t, "Shop", m.ShopName)
	require.Equal(t, "https://shop.example/return", m.ReturnURL)
	require.Equal(t, "/keys/merchant.key", m.PrivateKeyFile)
}

//nolint:paralleltest
func TestNew_EnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(
		"MERCHANT_ID=M2\nMERCHANT_SHOP_NAME=Other\nMERCHANT_PRIVATE_KEY_FILE=/k\nKAFKA_BROKERS=a:9092,b:9092\n",
	), 0o600))

	t.Cleanup(func() {
		for _, k := range []string{"MERCHANT_ID", "MERCHANT_SHOP_NAME", "MERCHANT_PRIVATE_KEY_FILE", "KAFKA_BROKERS"} {
			_ = os.Unsetenv(k)
		}
	})

	c, err := config.New(envPath)
	require.NoError(t, err)
	require.Equal(t, "M2", c.Merchant.ID)
	require.Equal(t, []string{"a:9092", "b:9092"}, c.Kafka.Brokers)
}

//nolint:paralleltest
func TestNew_MissingRequired(t *testing.T) {
	t.Setenv("MERCHANT_ID", "")
	_ = os.Unsetenv("MERCHANT_ID")

	_, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
