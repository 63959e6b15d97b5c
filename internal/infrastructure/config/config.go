package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	SecretsBackendEnv      = "env"
	SecretsBackendDynamoDB = "dynamodb"
)

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

// Config holds the non-secret settings of the bridge. Credentials are read
// per run from the secret store, never from here.
type Config struct {
	AppEnv string `yaml:"app_env"`
	Port   string `yaml:"port"`

	Zoho       ZohoConfig       `yaml:"zoho"`
	Secrets    SecretsConfig    `yaml:"secrets"`
	AWS        AWSConfig        `yaml:"aws"`
	TokenCache TokenCacheConfig `yaml:"token_cache"`

	OrgTimezone string         `yaml:"org_timezone"`
	Location    *time.Location `yaml:"-"`
}

type ZohoConfig struct {
	Zone             string `yaml:"zone"`
	DefaultCurrency  string `yaml:"default_currency"`
	TaxName          string `yaml:"tax_name"`
	TaxInclusive     bool   `yaml:"tax_inclusive"`
	DepositTo        string `yaml:"deposit_to"`
	PaymentMode      string `yaml:"payment_mode"`
	ClearingItemName string `yaml:"clearing_item_name"`
	RedirectURI      string `yaml:"redirect_uri"`
}

type SecretsConfig struct {
	Backend string `yaml:"backend"`
	Table   string `yaml:"table"`
}

type AWSConfig struct {
	Region           string `yaml:"region"`
	DynamoDBEndpoint string `yaml:"dynamodb_endpoint"`
	AccessKeyID      string `yaml:"-"`
	SecretAccessKey  string `yaml:"-"`
}

type TokenCacheConfig struct {
	RedisAddr string `yaml:"redis_addr"`
}

// DevMode enables the interactive OAuth consent routes.
func (c Config) DevMode() bool {
	return strings.EqualFold(c.AppEnv, "dev")
}

func Default() Config {
	return Config{
		AppEnv: "production",
		Port:   "8080",
		Zoho: ZohoConfig{
			Zone:             ".com",
			DefaultCurrency:  "NZD",
			DepositTo:        "Stripe Clearing",
			PaymentMode:      "Stripe",
			ClearingItemName: "Stripe Sale",
			RedirectURI:      "http://127.0.0.1:8080/callback",
		},
		Secrets: SecretsConfig{
			Backend: SecretsBackendEnv,
			Table:   "bridge_secrets",
		},
		AWS: AWSConfig{
			Region: "us-east-1",
		},
		OrgTimezone: "Pacific/Auckland",
	}
}

// Load applies defaults, then the YAML file named by BRIDGE_CONFIG_FILE (if
// any), then environment variables, and validates the result.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("BRIDGE_CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.AppEnv, "APP_ENV")
	setString(&cfg.Port, "PORT")

	setString(&cfg.Zoho.Zone, "ZOHO_ZONE")
	setString(&cfg.Zoho.DefaultCurrency, "DEFAULT_CURRENCY")
	setString(&cfg.Zoho.TaxName, "ZOHO_TAX_NAME")
	setString(&cfg.Zoho.DepositTo, "DEPOSIT_TO")
	setString(&cfg.Zoho.PaymentMode, "MODE")
	setString(&cfg.Zoho.ClearingItemName, "CLEARING_ITEM_NAME")
	setString(&cfg.Zoho.RedirectURI, "ZOHO_REDIRECT_URI")
	if v := os.Getenv("TAX_INCLUSIVE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TAX_INCLUSIVE: %w", err)
		}
		cfg.Zoho.TaxInclusive = b
	}

	setString(&cfg.OrgTimezone, "ORG_TIMEZONE")

	setString(&cfg.Secrets.Backend, "SECRETS_BACKEND")
	setString(&cfg.Secrets.Table, "SECRETS_TABLE")

	setString(&cfg.AWS.Region, "AWS_REGION")
	setString(&cfg.AWS.DynamoDBEndpoint, "DYNAMODB_ENDPOINT")
	setString(&cfg.AWS.AccessKeyID, "AWS_ACCESS_KEY_ID")
	setString(&cfg.AWS.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")

	setString(&cfg.TokenCache.RedisAddr, "TOKEN_CACHE_REDIS_ADDR")
	return nil
}

func (c *Config) validate() error {
	var errs []error

	c.Zoho.DefaultCurrency = strings.ToUpper(strings.TrimSpace(c.Zoho.DefaultCurrency))
	if !currencyCode.MatchString(c.Zoho.DefaultCurrency) {
		errs = append(errs, fmt.Errorf("default currency %q is not an ISO 4217 code", c.Zoho.DefaultCurrency))
	}
	if !strings.HasPrefix(c.Zoho.Zone, ".") {
		errs = append(errs, fmt.Errorf("zoho zone %q must start with a dot", c.Zoho.Zone))
	}
	if strings.TrimSpace(c.Zoho.DepositTo) == "" {
		errs = append(errs, errors.New("deposit account name is empty"))
	}
	if strings.TrimSpace(c.Zoho.ClearingItemName) == "" {
		errs = append(errs, errors.New("clearing item name is empty"))
	}

	switch c.Secrets.Backend {
	case SecretsBackendEnv, SecretsBackendDynamoDB:
	default:
		errs = append(errs, fmt.Errorf("unknown secrets backend %q", c.Secrets.Backend))
	}

	loc, err := time.LoadLocation(c.OrgTimezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("org timezone: %w", err))
	} else {
		c.Location = loc
	}

	return errors.Join(errs...)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
