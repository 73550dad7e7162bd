package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, credentials, file paths), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Admin     AdminConfig
	Graph     GraphConfig
	Files     FilesConfig
	Slots     SlotConfig
	Lock      LockConfig
	RateLimit RateLimitConfig
	Mail      MailConfig
	Frontend  FrontendConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Chicago"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-21600"` // -6*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type AdminConfig struct {
	Password string `envconfig:"ADMIN_PASSWORD" required:"true"`
}

// GraphConfig holds the app registration used for both SharePoint file access and mail delivery.
type GraphConfig struct {
	TenantID       string        `envconfig:"TENANT_ID" required:"true"`
	ClientID       string        `envconfig:"CLIENT_ID" required:"true"`
	ClientSecret   string        `envconfig:"CLIENT_SECRET" required:"true"`
	SiteURL        string        `envconfig:"SHAREPOINT_SITE_URL" default:""`
	SiteID         string        `envconfig:"SHAREPOINT_SITE_ID" default:""`
	BaseURL        string        `envconfig:"GRAPH_BASE_URL" default:"https://graph.microsoft.com/v1.0"`
	AuthorityURL   string        `envconfig:"GRAPH_AUTHORITY_URL" default:"https://login.microsoftonline.com"`
	Scope          string        `envconfig:"GRAPH_SCOPE" default:"https://graph.microsoft.com/.default"`
	Timeout        time.Duration `envconfig:"GRAPH_TIMEOUT" default:"30s"`
	UploadAttempts int           `envconfig:"GRAPH_UPLOAD_ATTEMPTS" default:"5"`
	UploadBackoff  time.Duration `envconfig:"GRAPH_UPLOAD_BACKOFF" default:"1s"`
}

type FilesConfig struct {
	OrdersPath       string `envconfig:"ORDERS_FILE_PATH" required:"true"`
	AppointmentsPath string `envconfig:"APPOINTMENTS_FILE_PATH" default:"/Sunique Wiki/appointments.csv"`
}

type SlotConfig struct {
	Granularity time.Duration `envconfig:"SLOT_GRANULARITY" default:"30m"`
	StartHour   int           `envconfig:"SLOT_START_HOUR" default:"9"`
	EndHour     int           `envconfig:"SLOT_END_HOUR" default:"17"`
	DaysAhead   int           `envconfig:"SLOT_DAYS_AHEAD" default:"8"`
	TimeZone    string        `envconfig:"SLOT_TIMEZONE" default:"UTC"`
}

type LockConfig struct {
	Timeout time.Duration `envconfig:"LOCK_TIMEOUT" default:"60s"`
}

// FrontendConfig points at the booking and staff pages; an empty Dir serves no pages.
type FrontendConfig struct {
	Dir string `envconfig:"FRONTEND_DIR" default:"public"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"30"`
	Burst             int `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

type MailConfig struct {
	Provider         string   `envconfig:"MAIL_PROVIDER" default:"graph"` // graph | mailersend | none
	Sender           string   `envconfig:"OUTLOOK_SENDER_EMAIL" default:""`
	SenderName       string   `envconfig:"MAIL_SENDER_NAME" default:"Sunique Cabinetry"`
	CC               []string `envconfig:"MAIL_CC" default:""`
	DisplayTimeZone  string   `envconfig:"MAIL_DISPLAY_TIMEZONE" default:"America/Chicago"`
	CompanyName      string   `envconfig:"MAIL_COMPANY_NAME" default:"Sunique Cabinetry"`
	ContactPhone     string   `envconfig:"MAIL_CONTACT_PHONE" default:"(972) 245-3309"`
	MailerSendAPIKey string   `envconfig:"MAILERSEND_API_KEY" default:""`
}

// SlotLocation resolves SLOT_TIMEZONE, falling back to UTC.
func (c SlotConfig) SlotLocation() *time.Location {
	if c.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LoadConfig reads an optional .env file before processing the environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Graph.SiteID == "" && cfg.Graph.SiteURL == "" {
		return Config{}, fmt.Errorf("either SHAREPOINT_SITE_ID or SHAREPOINT_SITE_URL must be set")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Admin: AdminConfig{
			Password: "test-admin",
		},
		Graph: GraphConfig{
			TenantID:       "tenant",
			ClientID:       "client",
			ClientSecret:   "secret",
			SiteID:         "site-id",
			Scope:          "https://graph.microsoft.com/.default",
			Timeout:        5 * time.Second,
			UploadAttempts: 5,
			UploadBackoff:  time.Millisecond,
		},
		Files: FilesConfig{
			OrdersPath:       "/Orders/ready.xlsx",
			AppointmentsPath: "/Sunique Wiki/appointments.csv",
		},
		Slots: SlotConfig{
			Granularity: 30 * time.Minute,
			StartHour:   9,
			EndHour:     17,
			DaysAhead:   8,
			TimeZone:    "UTC",
		},
		Lock: LockConfig{
			Timeout: 60 * time.Second,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 600,
			Burst:             100,
		},
		Mail: MailConfig{
			Provider:        "none",
			SenderName:      "Sunique Cabinetry",
			DisplayTimeZone: "America/Chicago",
			CompanyName:     "Sunique Cabinetry",
			ContactPhone:    "(972) 245-3309",
		},
	}
}
