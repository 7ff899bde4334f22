//go:build !windows && !darwin

package config

// GetPlatformDefaultConfig gets the defaults for the platform
func GetPlatformDefaultConfig() OSConfig {
	return OSConfig{
		OpenCommand: `sh -c "xdg-open {{filename}} >/dev/null"`,
	}
}
