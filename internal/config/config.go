package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Database    Database    `mapstructure:",squash"`
	Ebay        Ebay        `mapstructure:",squash"`
	Facebook    Facebook    `mapstructure:",squash"`
	GenAI       GenAI       `mapstructure:",squash"`
	Storage     Storage     `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	RepriceSync RepriceSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Ebay struct {
	FindingURL string `mapstructure:"ebay_finding_url"`
	OAuthURL   string `mapstructure:"ebay_oauth_url"`
	AppID      string `mapstructure:"ebay_app_id"`
	CertID     string `mapstructure:"ebay_cert_id"`
	Sandbox    bool   `mapstructure:"ebay_sandbox"`
	MaxResults int    `mapstructure:"ebay_max_results"`
}

type Facebook struct {
	BaseURL     string `mapstructure:"facebook_base_url"`
	Version     string `mapstructure:"facebook_version"`
	URL         string `mapstructure:"-"`
	AccessToken string `mapstructure:"facebook_access_token"`
	PageID      string `mapstructure:"facebook_page_id"`
}

type GenAI struct {
	APIKey      string `mapstructure:"genai_api_key"`
	VisionModel string `mapstructure:"genai_vision_model"`
	TextModel   string `mapstructure:"genai_text_model"`
}

type Storage struct {
	UploadDir      string `mapstructure:"storage_upload_dir"`
	MaxUploadFiles int    `mapstructure:"storage_max_upload_files"`
}

type Auth struct {
	Secret        string `mapstructure:"auth_secret"`
	TokenTTLHours int    `mapstructure:"auth_token_ttl_hours"`
}

type RepriceSync struct {
	CronSchedule        string `mapstructure:"reprice_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"reprice_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"reprice_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/listings")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("EBAY_FINDING_URL", "https://svcs.ebay.com/services/search/FindingService/v1")
	viper.SetDefault("EBAY_OAUTH_URL", "https://api.ebay.com/identity/v1/oauth2/token")
	viper.SetDefault("EBAY_APP_ID", "")
	viper.SetDefault("EBAY_CERT_ID", "")
	viper.SetDefault("EBAY_SANDBOX", false)
	viper.SetDefault("EBAY_MAX_RESULTS", 50)

	viper.SetDefault("FACEBOOK_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("FACEBOOK_VERSION", "v18.0")
	viper.SetDefault("FACEBOOK_ACCESS_TOKEN", "")
	viper.SetDefault("FACEBOOK_PAGE_ID", "")

	viper.SetDefault("GENAI_API_KEY", "")
	viper.SetDefault("GENAI_VISION_MODEL", "gemini-2.0-flash")
	viper.SetDefault("GENAI_TEXT_MODEL", "gemini-2.0-flash")

	viper.SetDefault("STORAGE_UPLOAD_DIR", "storage/uploads")
	viper.SetDefault("STORAGE_MAX_UPLOAD_FILES", 10)

	viper.SetDefault("AUTH_SECRET", "change_me")
	viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)

	viper.SetDefault("REPRICE_SYNC_CRON", "0 5 * * *") // every day at 5am
	viper.SetDefault("REPRICE_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("REPRICE_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using environment variables loaded by godotenv (viper could not read .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Ebay.Sandbox {
		config.Ebay.FindingURL = "https://svcs.sandbox.ebay.com/services/search/FindingService/v1"
		config.Ebay.OAuthURL = "https://api.sandbox.ebay.com/identity/v1/oauth2/token"
	}

	config.Facebook.URL = fmt.Sprintf("%s/%s", config.Facebook.BaseURL, config.Facebook.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("loaded .env from ", location)
			return
		}
	}

	logrus.Warn("no .env file found, relying on process environment")
}
