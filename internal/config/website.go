package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// WebsiteConfig holds the public website configuration.
type WebsiteConfig struct {
	Port string `env:"WEBSITE_PORT" envDefault:"4002"`
	// APIBaseURL is where the contact form posts; empty means same origin.
	APIBaseURL string `env:"WEBSITE_API_BASE_URL" envDefault:"http://localhost:5000"`
	SiteName   string `env:"WEBSITE_SITE_NAME" envDefault:"Swiper Venture"`
}

// Addr is the listen address, always with a leading colon when only a port is set.
func (c *WebsiteConfig) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// LoadWebsite parses the website configuration from the environment.
func LoadWebsite() (*WebsiteConfig, error) {
	cfg := &WebsiteConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse website config: %w", err)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return cfg, nil
}
