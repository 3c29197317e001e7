package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=wallet_backend_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultHTTPAddr = ":8080"
const defaultJWTIssuer = "payza-wallet-backend"
const defaultTokenTTL = 24 * time.Hour

type Config struct {
	DatabaseDSN   string
	MigrationsDir string
	HTTPAddr      string
	JWTSecret     string
	JWTIssuer     string
	TokenTTL      time.Duration
}

func Load() (Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	addr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if addr == "" {
		addr = defaultHTTPAddr
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	issuer := strings.TrimSpace(os.Getenv("JWT_ISSUER"))
	if issuer == "" {
		issuer = defaultJWTIssuer
	}

	ttl := defaultTokenTTL
	if raw := strings.TrimSpace(os.Getenv("TOKEN_TTL_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return Config{}, fmt.Errorf("TOKEN_TTL_MINUTES must be a positive integer")
		}
		ttl = time.Duration(minutes) * time.Minute
	}

	return Config{
		DatabaseDSN:   normalizeConnectionString(conn),
		MigrationsDir: filepath.Join("src", "migrations"),
		HTTPAddr:      addr,
		JWTSecret:     secret,
		JWTIssuer:     issuer,
		TokenTTL:      ttl,
	}, nil
}

func normalizeConnectionString(raw string) string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
