package config

// Config represents the complete configuration structure
type Config struct {
	Racetime RacetimeConfig `mapstructure:"racetime"`
	Race     RaceConfig     `mapstructure:"race"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// RacetimeConfig holds the bot's OAuth2 credentials and the categories
// it operates in
type RacetimeConfig struct {
	ClientID     string   `mapstructure:"client_id"`
	ClientSecret string   `mapstructure:"client_secret"`
	Categories   []string `mapstructure:"categories"`
}

// RaceConfig holds the default settings for race rooms the bot opens
type RaceConfig struct {
	Goal                  string `mapstructure:"goal"`
	GoalIsCustom          bool   `mapstructure:"goal_is_custom"`
	TeamRace              bool   `mapstructure:"team_race"`
	Invitational          bool   `mapstructure:"invitational"`
	Unlisted              bool   `mapstructure:"unlisted"`
	InfoUser              string `mapstructure:"info_user"`
	InfoBot               string `mapstructure:"info_bot"`
	RequireEvenTeams      bool   `mapstructure:"require_even_teams"`
	StartDelay            int    `mapstructure:"start_delay"`
	TimeLimit             int    `mapstructure:"time_limit"`
	TimeLimitAutoComplete bool   `mapstructure:"time_limit_auto_complete"`
	// StreamingRequired left unset defers to the category default.
	StreamingRequired   *bool `mapstructure:"streaming_required"`
	AutoStart           bool  `mapstructure:"auto_start"`
	AllowComments       bool  `mapstructure:"allow_comments"`
	HideComments        bool  `mapstructure:"hide_comments"`
	AllowPreraceChat    bool  `mapstructure:"allow_prerace_chat"`
	AllowMidraceChat    bool  `mapstructure:"allow_midrace_chat"`
	AllowNonEntrantChat bool  `mapstructure:"allow_non_entrant_chat"`
	ChatMessageDelay    int   `mapstructure:"chat_message_delay"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
