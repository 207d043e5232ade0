package config

import (
	"os"
	"strconv"
)

// Server captures process-level configuration for the credential gateway.
type Server struct {
	Addr              string
	StatusRegistryURL string
	AdminTokenHash    string
	JWTSigningKey     string
	DefaultExpiryDays int
	BatchConcurrency  int
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("ATTESTA_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	registryURL := os.Getenv("ATTESTA_STATUS_REGISTRY_URL")
	if registryURL == "" {
		registryURL = "https://registry.attesta.io"
	}

	expiryDays := 365
	if v := os.Getenv("ATTESTA_DEFAULT_EXPIRY_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			expiryDays = n
		}
	}

	concurrency := 8
	if v := os.Getenv("ATTESTA_BATCH_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			concurrency = n
		}
	}

	jwtSigningKey := os.Getenv("ATTESTA_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:              addr,
		StatusRegistryURL: registryURL,
		AdminTokenHash:    os.Getenv("ATTESTA_ADMIN_TOKEN_HASH"),
		JWTSigningKey:     jwtSigningKey,
		DefaultExpiryDays: expiryDays,
		BatchConcurrency:  concurrency,
	}
}
