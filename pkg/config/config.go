package config

import (
	"os"
	"strconv"
	"strings"

	checkoutapp "github.com/dwikikusuma/checkout-sim/internal/checkout/app"
	"github.com/shopspring/decimal"
)

type Config struct {
	AppEnv    string
	LogLevel  string
	LogFormat string

	ShippingFee          decimal.Decimal
	AllowNegativeBalance bool
	ReceiptItems         []string

	// ScenarioFile is a YAML scenario; empty means the built-in demo.
	ScenarioFile     string
	QuoteConcurrency int
}

// Load reads settings from the environment. Checkout rules default to
// checkoutapp.DefaultPolicy.
func Load() Config {
	policy := checkoutapp.DefaultPolicy()

	return Config{
		AppEnv:               getEnv("APP_ENV", "dev"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "json"),
		ShippingFee:          getEnvDecimal("SHIPPING_FEE", policy.ShippingFee),
		AllowNegativeBalance: getEnvBool("ALLOW_NEGATIVE_BALANCE", policy.AllowNegativeBalance),
		ReceiptItems:         getEnvList("RECEIPT_ITEMS", policy.ReceiptItems),
		ScenarioFile:         getEnv("SCENARIO_FILE", ""),
		QuoteConcurrency:     getEnvInt("QUOTE_CONCURRENCY", 10),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvDecimal(key string, def decimal.Decimal) decimal.Decimal {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}

	d, err := decimal.NewFromString(v)
	if err != nil || d.IsNegative() {
		return def
	}
	return d
}

// getEnvList splits a comma separated value. Blank entries are dropped.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}

	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
