package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/samandr77/microservices/csob/internal/entity"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Merchant Merchant
	Gateway  Gateway
	Kafka    Kafka
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Merchant struct {
	ID                 string        `env:"MERCHANT_ID"`
	ShopName           string        `env:"MERCHANT_SHOP_NAME"`
	ReturnURL          string        `env:"MERCHANT_RETURN_URL" envDefault:""`
	ReturnMethod       string        `env:"MERCHANT_RETURN_METHOD" envDefault:"POST"`
	PrivateKeyFile     string        `env:"MERCHANT_PRIVATE_KEY_FILE"`
	PrivateKeyPassword string        `env:"MERCHANT_PRIVATE_KEY_PASSWORD" envDefault:""`
	SignatureHash      string        `env:"MERCHANT_SIGNATURE_HASH" envDefault:"sha1"`
	KeyCheckEnabled    bool          `env:"MERCHANT_KEY_CHECK_ENABLED" envDefault:"true"`
	KeyCheckInterval   time.Duration `env:"MERCHANT_KEY_CHECK_INTERVAL" envDefault:"1h"`
}

type Gateway struct {
	Enabled bool          `env:"GATEWAY_ENABLED" envDefault:"false"`
	BaseURL string        `env:"GATEWAY_BASE_URL" envDefault:"https://iapi.iplatebnibrana.csob.cz/api/v1.7"`
	Timeout time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"30s"`
}

type Kafka struct {
	Enabled            bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers            []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PaymentSignedTopic string   `env:"KAFKA_PAYMENT_SIGNED_TOPIC" envDefault:"payment.signed"`
}

// Entity returns the merchant configuration consumed by payment preparation and signing.
func (m Merchant) Entity() entity.Merchant {
	return entity.Merchant{
		ID:                 m.ID,
		ShopName:           m.ShopName,
		ReturnURL:          m.ReturnURL,
		ReturnMethod:       m.ReturnMethod,
		PrivateKeyFile:     m.PrivateKeyFile,
		PrivateKeyPassword: m.PrivateKeyPassword,
	}
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
