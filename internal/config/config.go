package config

import (
	"log"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/sangkips/investify-pos/pkg/apperror"
)

type Config struct {
	App  AppConfig
	Log  LogConfig
	Tax  TaxConfig
	Sale SaleConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Debug bool
}

type LogConfig struct {
	Level  string
	Format string
}

type TaxConfig struct {
	VATEnabled     bool
	VATRatePercent string
}

type SaleConfig struct {
	InvoicePrefix string
	Currency      string
}

// Load reads configuration from .env and the environment
func Load() *Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	// Set defaults
	v.SetDefault("APP_NAME", "investify-pos")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("VAT_ENABLED", true)
	v.SetDefault("VAT_RATE_PERCENT", "12")
	v.SetDefault("INVOICE_PREFIX", "INV-")
	v.SetDefault("CURRENCY", "PHP")

	return &Config{
		App: AppConfig{
			Name:  v.GetString("APP_NAME"),
			Env:   v.GetString("APP_ENV"),
			Debug: v.GetBool("APP_DEBUG"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Tax: TaxConfig{
			VATEnabled:     v.GetBool("VAT_ENABLED"),
			VATRatePercent: v.GetString("VAT_RATE_PERCENT"),
		},
		Sale: SaleConfig{
			InvoicePrefix: v.GetString("INVOICE_PREFIX"),
			Currency:      v.GetString("CURRENCY"),
		},
	}
}

// VATRate parses the configured VAT rate
func (c *TaxConfig) VATRate() (decimal.Decimal, error) {
	return decimal.NewFromString(c.VATRatePercent)
}

// Validate checks values that cannot be defaulted silently
func (c *Config) Validate() error {
	var fieldErrors []apperror.FieldError

	rate, err := c.Tax.VATRate()
	switch {
	case err != nil:
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "VAT_RATE_PERCENT", Message: "must be a number"})
	case rate.IsNegative():
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "VAT_RATE_PERCENT", Message: "must be non-negative"})
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "LOG_FORMAT", Message: "must be text or json"})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
