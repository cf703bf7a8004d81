package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/venoajie/trading-web-project/src/utils/secrets"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	Databases       DatabasesConfig      `mapstructure:"databases"`
	Security        SecurityConfig       `mapstructure:"security"`
	Secrets         SecretsConfig        `mapstructure:"secrets"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`

	secretReader secrets.Reader
}

type ServiceConfig struct {
	Name               string   `mapstructure:"name"`
	Port               string   `mapstructure:"port"`
	LogLevel           string   `mapstructure:"logLevel"`
	CORSAllowedOrigins []string `mapstructure:"corsAllowedOrigins"`
}

type DatabasesConfig struct {
	SQL SQLConfig `mapstructure:"sql"`
}

type SQLConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	PasswordFile   string `mapstructure:"passwordFile"`
	Database       string `mapstructure:"database"`
	SSLMode        string `mapstructure:"sslMode"`
	MaxConns       int32  `mapstructure:"maxConns"`
	MinConns       int32  `mapstructure:"minConns"`
	MigrateOnStart bool   `mapstructure:"migrateOnStart"`
}

type SecurityConfig struct {
	SecretKey                string `mapstructure:"secretKey"`
	Algorithm                string `mapstructure:"algorithm"`
	AccessTokenExpireMinutes int    `mapstructure:"accessTokenExpireMinutes"`
}

// AccessTokenTTL is the lifetime of tokens issued on login.
func (s SecurityConfig) AccessTokenTTL() time.Duration {
	return time.Duration(s.AccessTokenExpireMinutes) * time.Minute
}

type SecretsSource string

const (
	FileSecrets SecretsSource = "file"
	AWSSecrets  SecretsSource = "aws"
)

type SecretsConfig struct {
	Source    SecretsSource `mapstructure:"source"`
	AWSRegion string        `mapstructure:"awsRegion"`
}

type ExternalClientConfig struct {
	Librarian LibrarianConfig `mapstructure:"librarian"`
}

type LibrarianConfig struct {
	URL            string `mapstructure:"url"`
	APIKeyFile     string `mapstructure:"apiKeyFile"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`
}

// DefaultLibrarianTimeout applies when no timeout is configured.
const DefaultLibrarianTimeout = 30 * time.Second

func (l LibrarianConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// envBindings maps config keys to the variable names used by the deployment.
var envBindings = map[string]string{
	"service.port":                             "PORT",
	"service.logLevel":                         "LOG_LEVEL",
	"service.corsAllowedOrigins":               "CORS_ALLOWED_ORIGINS",
	"databases.sql.host":                       "DATABASE_HOST",
	"databases.sql.port":                       "DATABASE_PORT",
	"databases.sql.username":                   "DATABASE_USER",
	"databases.sql.passwordFile":               "DATABASE_PASSWORD_FILE",
	"databases.sql.database":                   "DATABASE_DB",
	"databases.sql.sslMode":                    "DATABASE_SSLMODE",
	"databases.sql.migrateOnStart":             "DATABASE_MIGRATE_ON_START",
	"security.secretKey":                       "SECRET_KEY",
	"security.algorithm":                       "ALGORITHM",
	"security.accessTokenExpireMinutes":        "ACCESS_TOKEN_EXPIRE_MINUTES",
	"secrets.source":                           "SECRETS_SOURCE",
	"secrets.awsRegion":                        "AWS_REGION",
	"externalClients.librarian.url":            "LIBRARIAN_API_URL",
	"externalClients.librarian.apiKeyFile":     "LIBRARIAN_API_KEY_FILE",
	"externalClients.librarian.timeoutSeconds": "LIBRARIAN_TIMEOUT_SECONDS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.name", "Trading App")
	v.SetDefault("service.port", "8000")
	v.SetDefault("service.logLevel", "info")
	v.SetDefault("service.corsAllowedOrigins", []string{"*"})
	v.SetDefault("databases.sql.host", "pgbouncer")
	v.SetDefault("databases.sql.port", 6432)
	v.SetDefault("databases.sql.username", "trading_web_project_user")
	v.SetDefault("databases.sql.passwordFile", "/run/secrets/db_password")
	v.SetDefault("databases.sql.database", "central_db")
	v.SetDefault("databases.sql.sslMode", "disable")
	v.SetDefault("databases.sql.maxConns", 10)
	v.SetDefault("databases.sql.minConns", 1)
	v.SetDefault("databases.sql.migrateOnStart", false)
	v.SetDefault("security.secretKey", "")
	v.SetDefault("security.algorithm", "HS256")
	v.SetDefault("security.accessTokenExpireMinutes", 60)
	v.SetDefault("secrets.source", string(FileSecrets))
	v.SetDefault("secrets.awsRegion", "")
	v.SetDefault("externalClients.librarian.url", "http://librarian:8000/api/v1/chat")
	v.SetDefault("externalClients.librarian.apiKeyFile", "/run/secrets/librarian_api_key")
	v.SetDefault("externalClients.librarian.timeoutSeconds", 30)
}

// LoadConfig reads appsettings.yaml from path (if present) and overlays the
// environment. A missing settings file is not an error.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("appsettings")
	v.SetConfigType("yaml")
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	// Comma separated origins from the environment arrive as one element.
	if len(cfg.Service.CORSAllowedOrigins) == 1 && strings.Contains(cfg.Service.CORSAllowedOrigins[0], ",") {
		cfg.Service.CORSAllowedOrigins = strings.Split(cfg.Service.CORSAllowedOrigins[0], ",")
	}

	if cfg.Security.SecretKey == "" {
		return nil, fmt.Errorf("security.secretKey (SECRET_KEY) must be set")
	}

	reader, err := newSecretReader(cfg.Secrets)
	if err != nil {
		return nil, err
	}
	cfg.secretReader = reader
	return &cfg, nil
}

func newSecretReader(sc SecretsConfig) (secrets.Reader, error) {
	switch sc.Source {
	case FileSecrets, "":
		return secrets.NewFileReader(), nil
	case AWSSecrets:
		return secrets.NewAWSReader(sc.AWSRegion)
	default:
		return nil, fmt.Errorf("unknown secrets source %q", sc.Source)
	}
}

// SetSecretReader replaces the reader used for DatabaseURL and LibrarianAPIKey.
func (c *Config) SetSecretReader(r secrets.Reader) {
	c.secretReader = r
}

func (c *Config) readSecret(name string) (string, error) {
	if c.secretReader == nil {
		c.secretReader = secrets.NewFileReader()
	}
	return c.secretReader.Read(name)
}

// DatabaseURL assembles the Postgres connection string, reading the password
// from its secret on every call.
func (c *Config) DatabaseURL() (string, error) {
	sql := c.Databases.SQL
	password, err := c.readSecret(sql.PasswordFile)
	if err != nil {
		logrus.WithError(err).Errorf("database password not found at %s", sql.PasswordFile)
		return "", err
	}

	// Only parameters pgx consumes itself go in the query; anything else
	// becomes a startup parameter, which pgbouncer refuses.
	query := url.Values{}
	if sql.SSLMode != "" {
		query.Set("sslmode", sql.SSLMode)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(sql.Username, password),
		Host:     fmt.Sprintf("%s:%d", sql.Host, sql.Port),
		Path:     "/" + sql.Database,
		RawQuery: query.Encode(),
	}
	return u.String(), nil
}

// LibrarianAPIKey reads the Librarian API key from its secret.
func (c *Config) LibrarianAPIKey() (string, error) {
	file := c.ExternalClients.Librarian.APIKeyFile
	key, err := c.readSecret(file)
	if err != nil {
		logrus.WithError(err).Errorf("librarian API key not found at %s", file)
		return "", err
	}
	return key, nil
}
