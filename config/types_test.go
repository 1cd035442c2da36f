package config

import "testing"

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			Environment: "development",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"valid", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"unknown environment", func(c *Config) { c.Server.Environment = "qa" }, true},
		{"empty environment ok", func(c *Config) { c.Server.Environment = "" }, false},
		{"unknown log level", func(c *Config) { c.Logging.Level = "trace" }, true},
		{"email enabled without host", func(c *Config) { c.Email.Enabled = true }, true},
		{"email enabled with host", func(c *Config) {
			c.Email.Enabled = true
			c.Email.SMTP.Host = "smtp.example.com"
		}, false},
		{"loki enabled without endpoint", func(c *Config) { c.Logging.Output.Loki.Enabled = true }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
