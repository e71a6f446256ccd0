package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

func Config(key string) string {
	loadEnv.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})

	return os.Getenv(key)
}

// MomoConfig carries the MoMo partner credentials and endpoints. It is built
// once at startup and handed to the signature codec and gateway client so
// business logic never reads process state directly.
type MomoConfig struct {
	PartnerCode string
	AccessKey   string
	SecretKey   string
	Endpoint    string
	RedirectURL string
	IPNURL      string
}

func LoadMomo() MomoConfig {
	cfg := MomoConfig{
		PartnerCode: Config("MOMO_PARTNER_CODE"),
		AccessKey:   Config("MOMO_ACCESS_KEY"),
		SecretKey:   Config("MOMO_SECRET_KEY"),
		Endpoint:    Config("MOMO_ENDPOINT"),
		RedirectURL: Config("MOMO_REDIRECT_URL"),
		IPNURL:      Config("MOMO_IPN_URL"),
	}

	if cfg.PartnerCode == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Endpoint == "" {
		log.Println("⚠️ MoMo gateway is not fully configured. Payment initiation will fail until MOMO_* variables are set.")
	}

	return cfg
}
