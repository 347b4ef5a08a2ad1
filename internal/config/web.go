package config

import "fmt"

// WebConfig holds locations of templates and assets.
type WebConfig struct {
	// TemplatesDir contains the page templates (index.html, teams.html, player_page.html).
	TemplatesDir string
	// ResourcesDir contains stylesheet sources compiled at startup.
	ResourcesDir string
	// StaticDir is served under /static.
	StaticDir string
	// CompileStyles enables the stylesheet pipeline at startup.
	CompileStyles bool
	// SSL adds HSTS and SSL redirect headers.
	SSL bool
}

// LoadWebConfigFromEnv loads web configuration from environment variables.
func LoadWebConfigFromEnv() WebConfig {
	return WebConfig{
		TemplatesDir:  GetEnv("WEB_TEMPLATES_DIR", "web/templates"),
		ResourcesDir:  GetEnv("WEB_RESOURCES_DIR", "web/resources"),
		StaticDir:     GetEnv("WEB_STATIC_DIR", "web/static"),
		CompileStyles: GetEnvBool("WEB_COMPILE_STYLES", true),
		SSL:           GetEnvBool("WEB_SSL", false),
	}
}

// Validate validates web configuration.
func (c WebConfig) Validate() error {
	if c.TemplatesDir == "" {
		return fmt.Errorf("TemplatesDir must not be empty")
	}
	if c.StaticDir == "" {
		return fmt.Errorf("StaticDir must not be empty")
	}
	if c.CompileStyles && c.ResourcesDir == "" {
		return fmt.Errorf("ResourcesDir must not be empty when style compilation is enabled")
	}
	return nil
}
