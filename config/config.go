package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Limits  LimitsConfig  `yaml:"limits"`
	Admin   AdminConfig   `yaml:"admin"`
	Booking BookingConfig `yaml:"booking"`
}

type StorageConfig struct {
	Path        string `yaml:"path"`
	JournalPath string `yaml:"journal_path"`
}

type LimitsConfig struct {
	MaxFlights    int `yaml:"max_flights"`
	MaxPassengers int `yaml:"max_passengers"`
	MaxBookings   int `yaml:"max_bookings"`
}

type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type BookingConfig struct {
	RefundRate float64 `yaml:"refund_rate"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:        "airport.db",
			JournalPath: "events.log",
		},
		Limits: LimitsConfig{
			MaxFlights:    100,
			MaxPassengers: 500,
			MaxBookings:   500,
		},
		Admin: AdminConfig{
			Username: "admin",
			Password: "airport123",
		},
		Booking: BookingConfig{
			RefundRate: 0.80,
		},
	}
}

// LoadConfig reads a YAML config file. A missing file is not an error; the
// defaults apply. Values absent from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
