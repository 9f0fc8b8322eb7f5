package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppName           string
	AppVersion        string
	AppPort           string
	DbDriver          string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	DatabaseURL       string
	DbMigrate         bool
	JWTSecret         string
	JWTIssuer         string
	JWTTTL            time.Duration
	PageSize          int
	TranslationFolder string
	TrustedProxies    []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_NAME", "tasklist")
	v.SetDefault("APP_VERSION", "dev")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("MYSQL_HOST", "db")
	v.SetDefault("MYSQL_PORT", "3306")
	v.SetDefault("MYSQL_USER", "tasklist")
	v.SetDefault("MYSQL_PASSWORD", "tasklist")
	v.SetDefault("MYSQL_DATABASE", "tasklist")
	v.SetDefault("MYSQL_PARAMS", "parseTime=true&multiStatements=true")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MIGRATE", true)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "tasklist")
	v.SetDefault("JWT_TTL", 24*time.Hour)
	v.SetDefault("PAGE_SIZE", 20)
	v.SetDefault("TRANSLATION_FOLDER", "pkg/translator/translation")
	v.SetDefault("TRUSTED_PROXIES", "")

	return &Config{
		AppName:           v.GetString("APP_NAME"),
		AppVersion:        v.GetString("APP_VERSION"),
		AppPort:           v.GetString("APP_PORT"),
		DbDriver:          strings.ToLower(v.GetString("DB_DRIVER")),
		DbHost:            v.GetString("MYSQL_HOST"),
		DbPort:            v.GetString("MYSQL_PORT"),
		DbUser:            v.GetString("MYSQL_USER"),
		DbPassword:        v.GetString("MYSQL_PASSWORD"),
		DbName:            v.GetString("MYSQL_DATABASE"),
		DbParams:          v.GetString("MYSQL_PARAMS"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		DbMigrate:         v.GetBool("DB_MIGRATE"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTIssuer:         v.GetString("JWT_ISSUER"),
		JWTTTL:            v.GetDuration("JWT_TTL"),
		PageSize:          v.GetInt("PAGE_SIZE"),
		TranslationFolder: v.GetString("TRANSLATION_FOLDER"),
		TrustedProxies:    parseTrustedProxies(v.GetString("TRUSTED_PROXIES")),
	}
}

// DSN returns the data source name for the configured driver. DATABASE_URL
// wins when set; otherwise the MYSQL_* settings are assembled.
func (c *Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		return c.DatabaseURL, nil
	}

	switch c.DbDriver {
	case DriverMySQL:
		params := c.DbParams
		if params == "" {
			params = "parseTime=true&multiStatements=true"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", c.DbUser, c.DbPassword, c.DbHost, c.DbPort, c.DbName, params), nil
	case DriverSQLite:
		return "file:tasklist.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", nil
	default:
		return "", fmt.Errorf("DATABASE_URL is required for driver %q", c.DbDriver)
	}
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
