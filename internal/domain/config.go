package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LogFormat selects the logger encoding.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config holds application configuration loaded from .truestock.yaml.
type Config struct {
	Currency string        `yaml:"currency" json:"currency"           validate:"max=8"`
	Log      LogConfig     `yaml:"log"      json:"log"`
	HTTP     HTTPConfig    `yaml:"http"     json:"http"`
	Seed     []SeedProduct `yaml:"seed"     json:"seed,omitempty"     validate:"dive"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string    `yaml:"level"  json:"level"  validate:"omitempty,oneof=debug info warn error"`
	Format LogFormat `yaml:"format" json:"format" validate:"omitempty,oneof=console json"`
	// File, when set, also writes JSON logs to a rotating file.
	File       string `yaml:"file"         json:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb"  json:"max_size_mb,omitempty"  validate:"min=0"`
	MaxBackups int    `yaml:"max_backups"  json:"max_backups,omitempty"  validate:"min=0"`
}

// HTTPConfig configures the HTTP shell.
type HTTPConfig struct {
	Addr string `yaml:"addr" json:"addr" validate:"omitempty,hostname_port|startswith=:"`
}

// SeedProduct is a catalog entry in the config file. Numeric fields stay
// textual and are parsed by the engine exactly like interactive input.
type SeedProduct struct {
	ID       string `yaml:"id"       json:"id"       validate:"required"`
	Category string `yaml:"category" json:"category" validate:"required"`
	Name     string `yaml:"name"     json:"name"     validate:"required"`
	Price    string `yaml:"price"    json:"price"    validate:"required"`
	Quantity string `yaml:"quantity" json:"quantity" validate:"required"`
}

// DefaultSeed is the sample catalog loaded at startup.
func DefaultSeed() []SeedProduct {
	return []SeedProduct{
		{ID: "L001", Category: "Laptop", Name: "Apple MacBook Pro M4", Price: "479900.00", Quantity: "5"},
		{ID: "L002", Category: "Laptop", Name: "Lenovo Yoga Slim 7", Price: "579000.00", Quantity: "10"},
		{ID: "C001", Category: "Console", Name: "Sony PlayStation 5 (Slim)", Price: "185000.00", Quantity: "15"},
		{ID: "M001", Category: "Monitor", Name: "LG ULTRAGEAR 27' 4K IPS", Price: "349000.00", Quantity: "10"},
		{ID: "K001", Category: "Keyboard", Name: "Logitech G512 CARBON", Price: "34500.00", Quantity: "10"},
	}
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Currency: "Rs.",
		Log:      LogConfig{Level: "warn", Format: LogFormatConsole},
		HTTP:     HTTPConfig{Addr: ":8080"},
	}
}

// SeedOrDefault returns the configured seed, or DefaultSeed when none is set.
func (c Config) SeedOrDefault() []SeedProduct {
	if len(c.Seed) == 0 {
		return DefaultSeed()
	}
	return c.Seed
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fieldPath(fe.Namespace()), fe.Tag(), fe.Value()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// fieldPath strips the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
