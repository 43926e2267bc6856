package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Export ExportConfig `mapstructure:"export" validate:"required"`
	Seed   SeedConfig   `mapstructure:"seed"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// ExportConfig controls where collection snapshots are written.
// Every export overwrites Dir/FileName.
type ExportConfig struct {
	Dir      string `mapstructure:"dir" validate:"required"`
	FileName string `mapstructure:"file_name" validate:"required,excludesall=/\\"`
}

// SeedConfig holds the titles a fresh collection starts with.
type SeedConfig struct {
	Titles []string `mapstructure:"titles" validate:"dive,required"`
}
