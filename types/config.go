package types

// AppConfig represents the complete application configuration.
type AppConfig struct {
	Verbose bool       `mapstructure:"verbose"`
	Config  string     `mapstructure:"config"`
	Data    DataConfig `mapstructure:"data" validate:"required"`
}

// DataConfig holds task storage configuration.
type DataConfig struct {
	// File is the task file name, resolved relative to the user's home
	// directory unless it is an absolute path.
	File    string `mapstructure:"file" validate:"required"`
	Format  string `mapstructure:"format" validate:"required,oneof=json yaml toml"`
	Backend string `mapstructure:"backend" validate:"required,oneof=file sqlite"`
}
