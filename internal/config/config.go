package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	CheckoutProviderStripe      = "stripe"
	CheckoutProviderMercadoPago = "mercadopago"

	StoreDriverDynamoDB = "dynamodb"
	StoreDriverPostgres = "postgres"

	MailTransportSMTP = "smtp"
	MailTransportLog  = "log"
)

var (
	ErrUnknownCheckoutProvider = errors.New("unknown CHECKOUT_PROVIDER")
	ErrUnknownStoreDriver      = errors.New("unknown STORE_DRIVER")
	ErrUnknownMailTransport    = errors.New("unknown MAIL_TRANSPORT")
	ErrInvalidUnitAmount       = errors.New("CHECKOUT_UNIT_AMOUNT must be positive")
	ErrInvalidMaxInputChars    = errors.New("ANALYZER_MAX_INPUT_CHARS must be positive")
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Report   ReportConfig
	Checkout CheckoutConfig
	Analyzer AnalyzerConfig
	Store    StoreConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Port           int
	LogLevel       string
	PublicBaseURL  string
	UploadMaxBytes int64
}

type ReportConfig struct {
	PreparedBy string
}

type CheckoutConfig struct {
	Provider           string
	StripeSecretKey    string
	MercadoPagoToken   string
	MockMode           bool
	RequirePaidSession bool
	UnitAmount         int64
	Currency           string
	ProductName        string
	ProductDescription string
}

// AnalyzerConfig configures the LLM call.
//
// MaxInputChars is a cost/latency policy: text past the limit is dropped before the
// request, so trailing inspection items of very long reports are not analyzed.
type AnalyzerConfig struct {
	APIKey        string
	BaseURL       string
	Model         string
	Temperature   float32
	Timeout       time.Duration
	MaxInputChars int
}

type StoreConfig struct {
	Driver           string
	TableName        string
	AWSRegion        string
	AWSAccessKeyID   string
	AWSSecretKey     string
	DynamoDBEndpoint string
	DatabaseURL      string
}

type MailConfig struct {
	Transport  string
	SMTPHost   string
	SMTPPort   int
	Username   string
	Password   string
	From       string
	AdminEmail string
	LeadEmail  string
	Timeout    time.Duration
}

// Load reads configuration from the environment. A .env file, when present, is
// loaded into the environment by godotenv/autoload in main before this runs.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		Server: ServerConfig{
			Port:           v.GetInt("port"),
			LogLevel:       strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
			PublicBaseURL:  strings.TrimRight(strings.TrimSpace(v.GetString("public_base_url")), "/"),
			UploadMaxBytes: v.GetInt64("upload_max_bytes"),
		},
		Report: ReportConfig{
			PreparedBy: strings.TrimSpace(v.GetString("report_prepared_by")),
		},
		Checkout: CheckoutConfig{
			Provider:           strings.ToLower(strings.TrimSpace(v.GetString("checkout_provider"))),
			StripeSecretKey:    strings.TrimSpace(v.GetString("stripe_secret_key")),
			MercadoPagoToken:   strings.TrimSpace(v.GetString("mercadopago_access_token")),
			MockMode:           isTruthy(v.GetString("payment_gateway_mock")) || isTruthy(v.GetString("mercadopago_mock")),
			RequirePaidSession: isTruthy(v.GetString("payment_require_paid")),
			UnitAmount:         v.GetInt64("checkout_unit_amount"),
			Currency:           strings.ToLower(strings.TrimSpace(v.GetString("checkout_currency"))),
			ProductName:        v.GetString("checkout_product_name"),
			ProductDescription: v.GetString("checkout_product_description"),
		},
		Analyzer: AnalyzerConfig{
			APIKey:        strings.TrimSpace(v.GetString("openai_api_key")),
			BaseURL:       strings.TrimRight(strings.TrimSpace(v.GetString("openai_base_url")), "/"),
			Model:         v.GetString("openai_model"),
			Temperature:   float32(v.GetFloat64("openai_temperature")),
			Timeout:       v.GetDuration("analyzer_timeout"),
			MaxInputChars: v.GetInt("analyzer_max_input_chars"),
		},
		Store: StoreConfig{
			Driver:           strings.ToLower(strings.TrimSpace(v.GetString("store_driver"))),
			TableName:        v.GetString("reports_table"),
			AWSRegion:        v.GetString("aws_region"),
			AWSAccessKeyID:   v.GetString("aws_access_key_id"),
			AWSSecretKey:     v.GetString("aws_secret_access_key"),
			DynamoDBEndpoint: strings.TrimSpace(v.GetString("dynamodb_endpoint")),
			DatabaseURL:      strings.TrimSpace(v.GetString("database_url")),
		},
		Mail: MailConfig{
			Transport:  strings.ToLower(strings.TrimSpace(v.GetString("mail_transport"))),
			SMTPHost:   strings.TrimSpace(v.GetString("smtp_host")),
			SMTPPort:   v.GetInt("smtp_port"),
			Username:   v.GetString("smtp_username"),
			Password:   v.GetString("smtp_password"),
			From:       strings.TrimSpace(v.GetString("mail_from")),
			AdminEmail: strings.TrimSpace(v.GetString("admin_email")),
			LeadEmail:  strings.TrimSpace(v.GetString("lead_email")),
			Timeout:    v.GetDuration("mail_timeout"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("public_base_url", "")
	v.SetDefault("upload_max_bytes", 20<<20)

	v.SetDefault("report_prepared_by", "Inspection Cost Estimator")

	v.SetDefault("checkout_provider", CheckoutProviderStripe)
	v.SetDefault("stripe_secret_key", "")
	v.SetDefault("mercadopago_access_token", "")
	v.SetDefault("payment_gateway_mock", "")
	v.SetDefault("mercadopago_mock", "")
	v.SetDefault("payment_require_paid", "")
	v.SetDefault("checkout_unit_amount", 4999)
	v.SetDefault("checkout_currency", "usd")
	v.SetDefault("checkout_product_name", "Home Inspection Cost Estimate")
	v.SetDefault("checkout_product_description", "Itemized repair cost estimate generated from your home inspection report")

	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_base_url", "https://api.openai.com/v1")
	v.SetDefault("openai_model", "gpt-4o-mini")
	v.SetDefault("openai_temperature", 0.2)
	v.SetDefault("analyzer_timeout", 90*time.Second)
	v.SetDefault("analyzer_max_input_chars", 40000)

	v.SetDefault("store_driver", StoreDriverDynamoDB)
	v.SetDefault("reports_table", "inspection_reports")
	v.SetDefault("aws_region", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("aws_access_key_id", "local")
	v.SetDefault("aws_secret_access_key", "local")
	v.SetDefault("dynamodb_endpoint", "")
	v.SetDefault("database_url", "")

	v.SetDefault("mail_transport", MailTransportSMTP)
	v.SetDefault("smtp_host", "")
	v.SetDefault("smtp_port", 587)
	v.SetDefault("smtp_username", "")
	v.SetDefault("smtp_password", "")
	v.SetDefault("mail_from", "")
	v.SetDefault("admin_email", "")
	v.SetDefault("lead_email", "")
	v.SetDefault("mail_timeout", 30*time.Second)
}

func (c Config) Validate() error {
	switch c.Checkout.Provider {
	case CheckoutProviderStripe, CheckoutProviderMercadoPago:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCheckoutProvider, c.Checkout.Provider)
	}
	switch c.Store.Driver {
	case StoreDriverDynamoDB, StoreDriverPostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStoreDriver, c.Store.Driver)
	}
	switch c.Mail.Transport {
	case MailTransportSMTP, MailTransportLog:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMailTransport, c.Mail.Transport)
	}
	if c.Checkout.UnitAmount <= 0 {
		return ErrInvalidUnitAmount
	}
	if c.Analyzer.MaxInputChars <= 0 {
		return ErrInvalidMaxInputChars
	}
	return nil
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
