// Package config contains utilities for loading configs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

const (
	defaultConfigPath = "/data/cooks.yaml"
	appSecretBytes    = 32
	defaultPort       = 8080
)

// DefaultPageSize is the fixed page size for paginated listings.
const DefaultPageSize = 20

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

type AppSecret string

func (a AppSecret) Validate() error {
	if len([]byte(a)) < appSecretBytes {
		return errors.New("app secret should be at least 32 bytes")
	}
	return nil
}

type App struct {
	Environment string    `yaml:"environment" validate:"omitempty,oneof=PROD DEV"`
	Port        int       `yaml:"port" validate:"omitempty,min=1,max=65535"`
	BaseURL     string    `yaml:"base_url" validate:"omitempty,url"`
	Secret      AppSecret `yaml:"secret" validate:"required"`
}

type Database struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password" validate:"required"`
	Name     string `yaml:"name" validate:"required"`
}

// URL builds the postgres connection string.
func (d Database) URL() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// SMTP configures the email notifier. TLS usage is inferred from the port:
// 587 and 465 enable TLS, anything else is plaintext.
type SMTP struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from" validate:"omitempty,email"`
}

func (s SMTP) Enabled() bool {
	return s.Host != ""
}

// BlobStore configures the S3-compatible image store.
type BlobStore struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	PublicURL string `yaml:"public_url" validate:"omitempty,url"`
	UseSSL    bool   `yaml:"use_ssl"`
}

func (b BlobStore) Enabled() bool {
	return b.Endpoint != ""
}

// Webhook configures the HTTP notifier used instead of SMTP when set.
type Webhook struct {
	URL string `yaml:"url" validate:"omitempty,url"`
}

type Config struct {
	App       App       `yaml:"app"`
	Database  Database  `yaml:"database"`
	SMTP      SMTP      `yaml:"smtp"`
	BlobStore BlobStore `yaml:"blobstore"`
	Webhook   Webhook   `yaml:"webhook"`
}

// LoadConfig reads the YAML config file if one exists, overlays environment
// variables, applies defaults, and validates the result.
func LoadConfig() (*Config, error) {
	path := os.Getenv("COOKS_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}

	var conf Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &conf); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	applyEnv(&conf)
	applyDefaults(&conf)

	if err := Validate(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func applyEnv(conf *Config) {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setInt := func(dst *int, key string) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	if v := os.Getenv("APP_SECRET"); v != "" {
		conf.App.Secret = AppSecret(v)
	}
	setString(&conf.App.Environment, "ENV")
	setString(&conf.App.BaseURL, "BASE_URL")
	setInt(&conf.App.Port, "PORT")

	setString(&conf.Database.Host, "DATABASE_HOST")
	setInt(&conf.Database.Port, "DATABASE_PORT")
	setString(&conf.Database.User, "DATABASE_USER")
	setString(&conf.Database.Password, "DATABASE_PASSWORD")
	setString(&conf.Database.Name, "DATABASE")

	setString(&conf.SMTP.Host, "SMTP_HOST")
	setInt(&conf.SMTP.Port, "SMTP_PORT")
	setString(&conf.SMTP.Username, "SMTP_USERNAME")
	setString(&conf.SMTP.Password, "SMTP_PASSWORD")
	setString(&conf.SMTP.From, "SMTP_FROM")

	setString(&conf.BlobStore.Endpoint, "BLOBSTORE_ENDPOINT")
	setString(&conf.BlobStore.AccessKey, "BLOBSTORE_ACCESS_KEY")
	setString(&conf.BlobStore.SecretKey, "BLOBSTORE_SECRET_KEY")
	setString(&conf.BlobStore.Bucket, "BLOBSTORE_BUCKET")
	setString(&conf.BlobStore.PublicURL, "BLOBSTORE_PUBLIC_URL")
	if v := os.Getenv("BLOBSTORE_USE_SSL"); v != "" {
		conf.BlobStore.UseSSL = v == "true" || v == "1"
	}

	setString(&conf.Webhook.URL, "NOTIFY_WEBHOOK_URL")
}

func applyDefaults(conf *Config) {
	if conf.App.Environment == "" {
		conf.App.Environment = EnvDev
	}
	if conf.App.Port == 0 {
		conf.App.Port = defaultPort
	}
	if conf.BlobStore.Bucket == "" {
		conf.BlobStore.Bucket = "cooks-images"
	}
}

// Validate checks a config beyond struct tags.
func Validate(conf *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(conf); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if err := conf.App.Secret.Validate(); err != nil {
		return err
	}
	if conf.SMTP.Enabled() {
		if conf.SMTP.Port == 0 || conf.SMTP.From == "" {
			return errors.New("smtp configuration is incomplete: host, port and from must all be set")
		}
	}
	if conf.BlobStore.Enabled() {
		if conf.BlobStore.AccessKey == "" || conf.BlobStore.SecretKey == "" || conf.BlobStore.PublicURL == "" {
			return errors.New("blobstore configuration is incomplete: endpoint, keys and public_url must all be set")
		}
	}
	return nil
}
