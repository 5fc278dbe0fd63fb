package app

import (
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the store configuration, loadable from environment variables
// (STORE_ prefix), flags, or YAML config files.
type Config struct {
	ProductsFile   string `default:"data/products.csv" usage:"Path to the product definitions file" flag:"products-file"`
	PromotionsFile string `default:"data/promotions.csv" usage:"Path to the promotion definitions file" flag:"promotions-file"`
	ReceiptLog     string `default:"" usage:"Append completed receipts as JSON lines to this file" flag:"receipt-log"`
	OrderDate      string `default:"" usage:"Fixed order date in 2006-01-02 form; empty uses the current date" flag:"order-date"`
}

// LoadConfig loads configuration from flags, environment variables, and YAML
// config files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STORE",
		Files:     []string{"config.yaml", "/etc/minimart/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}

// clock returns the order-date source: the real clock, or a fixed date when
// one is configured (useful for reproducing promotion windows).
func (c *Config) clock() (func() time.Time, error) {
	if c.OrderDate == "" {
		return time.Now, nil
	}
	fixed, err := time.Parse("2006-01-02", c.OrderDate)
	if err != nil {
		return nil, errors.Wrap(err, "parse order date")
	}
	return func() time.Time { return fixed }, nil
}
