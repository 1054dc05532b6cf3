package config

import (
	"testing"
)

func validConfig() *Config {
	return &Config{
		Racetime: RacetimeConfig{
			ClientID:     "bot-id",
			ClientSecret: "bot-secret",
			Categories:   []string{"zelda64"},
		},
		Race: RaceConfig{
			Goal:      "Beat the game",
			TimeLimit: 24,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "missing client id",
			mutate:  func(cfg *Config) { cfg.Racetime.ClientID = "" },
			wantErr: true,
		},
		{
			name:    "missing client secret",
			mutate:  func(cfg *Config) { cfg.Racetime.ClientSecret = "" },
			wantErr: true,
		},
		{
			name:    "placeholder client secret",
			mutate:  func(cfg *Config) { cfg.Racetime.ClientSecret = "your-client-secret-here" },
			wantErr: true,
		},
		{
			name:    "no categories",
			mutate:  func(cfg *Config) { cfg.Racetime.Categories = nil },
			wantErr: true,
		},
		{
			name:    "missing goal",
			mutate:  func(cfg *Config) { cfg.Race.Goal = "" },
			wantErr: true,
		},
		{
			name:    "negative start delay",
			mutate:  func(cfg *Config) { cfg.Race.StartDelay = -1 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
