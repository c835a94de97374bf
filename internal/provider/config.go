package provider

import (
	"github.com/Naveen2070/Hive-Movie/internal/config"
)

// ProvideConfig loads and returns the application configuration
func ProvideConfig(configPath string) (*config.Config, error) {
	return config.Load(configPath)
}
