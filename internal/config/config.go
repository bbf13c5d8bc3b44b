package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// Config holds all configuration for the food ordering system
type Config struct {
	Order   OrderConfig   `yaml:"order"`
	Payment PaymentConfig `yaml:"payment"`
}

// OrderConfig holds cart and order confirmation settings
type OrderConfig struct {
	TaxRate           decimal.Decimal `yaml:"tax_rate"`
	DeliveryFee       decimal.Decimal `yaml:"delivery_fee"`
	EstimatedDelivery string          `yaml:"estimated_delivery"`
}

// PaymentConfig holds payment method settings
type PaymentConfig struct {
	Methods     []string `yaml:"methods"`
	DeclineCard string   `yaml:"decline_card"`
}

// Default returns the configuration used when no file is supplied:
// 10% tax, a flat 5.00 delivery fee, credit_card and paypal methods,
// and the sentinel card number the mock gateway declines.
func Default() *Config {
	return &Config{
		Order: OrderConfig{
			TaxRate:           decimal.NewFromFloat(0.10),
			DeliveryFee:       decimal.NewFromFloat(5.00),
			EstimatedDelivery: "45 minutes",
		},
		Payment: PaymentConfig{
			Methods:     []string{"credit_card", "paypal"},
			DeclineCard: "1111222233334444",
		},
	}
}

// Load reads configuration from a YAML file, starting from defaults
func Load(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	config := Default()
	scanner := bufio.NewScanner(file)

	var currentSection string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Check for section headers
		if strings.HasSuffix(line, ":") && !strings.Contains(line, " ") {
			currentSection = strings.TrimSuffix(line, ":")
			continue
		}

		// Parse key-value pairs
		if strings.Contains(line, ":") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.Trim(strings.TrimSpace(parts[1]), `"`)

			if err := config.setValue(currentSection, key, value); err != nil {
				return nil, fmt.Errorf("failed to set config value %s.%s: %w", currentSection, key, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return config, nil
}

// setValue sets a configuration value based on section and key
func (c *Config) setValue(section, key, value string) error {
	switch section {
	case "order":
		return c.setOrderValue(key, value)
	case "payment":
		return c.setPaymentValue(key, value)
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
}

// setOrderValue sets order configuration values
func (c *Config) setOrderValue(key, value string) error {
	switch key {
	case "tax_rate":
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("invalid tax_rate value: %w", err)
		}
		c.Order.TaxRate = rate
	case "delivery_fee":
		fee, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("invalid delivery_fee value: %w", err)
		}
		c.Order.DeliveryFee = fee
	case "estimated_delivery":
		c.Order.EstimatedDelivery = value
	default:
		return fmt.Errorf("unknown order key: %s", key)
	}
	return nil
}

// setPaymentValue sets payment configuration values
func (c *Config) setPaymentValue(key, value string) error {
	switch key {
	case "methods":
		var methods []string
		for _, m := range strings.Split(value, ",") {
			if m = strings.TrimSpace(m); m != "" {
				methods = append(methods, m)
			}
		}
		if len(methods) == 0 {
			return fmt.Errorf("methods list cannot be empty")
		}
		c.Payment.Methods = methods
	case "decline_card":
		c.Payment.DeclineCard = value
	default:
		return fmt.Errorf("unknown payment key: %s", key)
	}
	return nil
}
