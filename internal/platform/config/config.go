package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DatabaseDSN string
	Role        string
	PayslipDir  string
	RunSeed     bool
}

func Load() Config {
	return Config{
		DatabaseDSN: getEnv("HRDESK_DB", "hrdesk.db"),
		Role:        getEnv("HRDESK_ROLE", "admin"),
		PayslipDir:  getEnv("HRDESK_PAYSLIP_DIR", "storage/payslips"),
		RunSeed:     getEnvBool("HRDESK_SEED", false),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseDSN) == "" {
		return fmt.Errorf("HRDESK_DB is required")
	}
	if strings.TrimSpace(c.Role) == "" {
		return fmt.Errorf("HRDESK_ROLE must not be blank")
	}
	if strings.TrimSpace(c.PayslipDir) == "" {
		return fmt.Errorf("HRDESK_PAYSLIP_DIR must not be blank")
	}
	return nil
}
