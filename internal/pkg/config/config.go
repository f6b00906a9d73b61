package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - Notification provider keys are intentionally NOT required: a missing key
//   degrades that channel to a failed outcome instead of refusing to boot.
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	SMS    SMSConfig
	Email  EmailConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/New_York"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/New_York"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

type JWTConfig struct {
	Secret          string        `envconfig:"JWT_SECRET" required:"true"`
	AccessDuration  time.Duration `envconfig:"JWT_ACCESS_DURATION" default:"15m"`
	RefreshDuration time.Duration `envconfig:"JWT_REFRESH_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// SMSConfig holds the SlickText provider settings. BusinessPhone is the fixed
// destination for internal lead notifications.
type SMSConfig struct {
	APIKey        string `envconfig:"SMS_API_KEY" default:""`
	BrandID       string `envconfig:"SMS_BRAND_ID" default:""`
	APIURL        string `envconfig:"SMS_API_URL" default:"https://dev.slicktext.com/v1/brands"`
	BusinessPhone string `envconfig:"SMS_BUSINESS_PHONE" default:""`
}

type EmailConfig struct {
	APIKey      string `envconfig:"EMAIL_API_KEY" default:""`
	APIURL      string `envconfig:"EMAIL_API_URL" default:"https://api.resend.com/emails"`
	From        string `envconfig:"EMAIL_FROM" default:"Pupperazi Pet Spa <notifications@pupperazipetspa.com>"`
	AdminNotify string `envconfig:"ADMIN_NOTIFY_EMAIL" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/New_York",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/New_York",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
		JWT: JWTConfig{
			Secret:          "test-secret",
			AccessDuration:  15 * time.Minute,
			RefreshDuration: 168 * time.Hour,
		},
	}
}
