package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/OpenPeeDeeP/xdg"
	"github.com/imdario/mergo"
	yaml "github.com/jesseduffield/yaml"
	"github.com/spkg/bom"
)

// AppConfig contains the base configuration fields required for lazydialog.
type AppConfig struct {
	Debug       bool   `long:"debug" env:"DEBUG" default:"false"`
	Version     string `long:"version" env:"VERSION" default:"unversioned"`
	Commit      string `long:"commit" env:"COMMIT"`
	BuildDate   string `long:"build-date" env:"BUILD_DATE"`
	Name        string `long:"name" env:"NAME" default:"lazydialog"`
	BuildSource string `long:"build-source" env:"BUILD_SOURCE" default:""`
	UserConfig  *UserConfig
	ConfigDir   string
}

// UserConfig holds all of the user-configurable options. The fields here are all in PascalCase but in your actual config.yml they'll be in camelCase. You can view the default config with `lazydialog --config`. Anything left out of config.yml keeps its default.
type UserConfig struct {
	// Gui is for configuring how dialogs are presented
	Gui GuiConfig `yaml:"gui,omitempty"`

	// Dialog holds the defaults applied to every file dialog
	Dialog DialogConfig `yaml:"dialog,omitempty"`

	// Message holds the defaults applied to every message box
	Message MessageConfig `yaml:"message,omitempty"`

	// OS determines how picked files are opened
	OS OSConfig `yaml:"oS,omitempty"`
}

// GuiConfig is for configuring how dialogs are presented
type GuiConfig struct {
	// Language of the button captions and of the messages printed by lazydialog. One of "auto", "en" or "pl". "auto" picks the language of your locale
	Language string `yaml:"language,omitempty"`
}

// DialogConfig holds the defaults applied to every file dialog. Flags given on the command line win over these.
type DialogConfig struct {
	// Backend renders the dialogs. "zenity" works everywhere zenity (or the platform's own dialogs on macOS and windows) is available. "sqweek" is only there when lazydialog was built with the sqweek tag. "scripted" never shows anything and treats every dialog as cancelled, which is handy for scripting dry runs
	Backend string `yaml:"backend,omitempty"`

	// Title is the window title used when none is given
	Title string `yaml:"title,omitempty"`

	// Directory is where file dialogs start when no directory is given
	Directory string `yaml:"directory,omitempty"`

	// Filters are offered by every file dialog, after any given on the command line
	Filters []FilterConfig `yaml:"filters,omitempty"`

	// CloseTimeout is how long lazydialog waits on exit for background dialogs to be dismissed. Defaults to 10s
	CloseTimeout time.Duration `yaml:"closeTimeout,omitempty"`
}

// FilterConfig restricts a file dialog to files with the given extensions
type FilterConfig struct {
	Name string `yaml:"name"`

	// Extensions are given without the leading dot, e.g. [txt, md]
	Extensions []string `yaml:"extensions"`
}

// MessageConfig holds the defaults applied to every message box
type MessageConfig struct {
	// Level is one of "Info", "Warning" or "Error"
	Level string `yaml:"level,omitempty"`

	// Buttons is one of "Ok", "OkCancel" or "YesNo"
	Buttons string `yaml:"buttons,omitempty"`

	// Title is the window title used when none is given
	Title string `yaml:"title,omitempty"`
}

// OSConfig contains config on the level of the os
type OSConfig struct {
	// OpenCommand is the command `--open` runs for every picked path. {{filename}} is replaced with the quoted path
	OpenCommand string `yaml:"openCommand,omitempty"`
}

// GetDefaultConfig returns the application default configuration
// NOTE (to contributors, not users): do not default a boolean to true, because false is the boolean zero value and this will be ignored when parsing the user's config
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Gui: GuiConfig{
			Language: "auto",
		},
		Dialog: DialogConfig{
			Backend:      "zenity",
			CloseTimeout: 10 * time.Second,
		},
		Message: MessageConfig{
			Level:   "Info",
			Buttons: "Ok",
		},
		OS: GetPlatformDefaultConfig(),
	}
}

// NewAppConfig makes a new app config. An empty configDir means the
// platform's config dir for lazydialog.
func NewAppConfig(name, version, commit, date string, buildSource string, debuggingFlag bool, configDir string) (*AppConfig, error) {
	if configDir == "" {
		configDir = os.Getenv("CONFIG_DIR")
	}
	if configDir == "" {
		configDir = xdg.New("christophe-duc", name).ConfigHome()
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, err
	}

	userConfig, err := loadUserConfigWithDefaults(configDir)
	if err != nil {
		return nil, err
	}

	appConfig := &AppConfig{
		Name:        name,
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Debug:       debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		BuildSource: buildSource,
		UserConfig:  userConfig,
		ConfigDir:   configDir,
	}

	return appConfig, nil
}

func loadUserConfigWithDefaults(configDir string) (*UserConfig, error) {
	config, err := loadUserConfig(configDir, &UserConfig{})
	if err != nil {
		return nil, err
	}

	if err := mergo.Merge(config, GetDefaultConfig()); err != nil {
		return nil, err
	}

	return config, nil
}

func loadUserConfig(configDir string, base *UserConfig) (*UserConfig, error) {
	fileName := filepath.Join(configDir, "config.yml")

	if _, err := os.Stat(fileName); err != nil {
		if os.IsNotExist(err) {
			file, err := os.Create(fileName)
			if err != nil {
				return nil, err
			}
			file.Close()
		} else {
			return nil, err
		}
	}

	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(bom.Clean(content), base); err != nil {
		return nil, err
	}

	return base, nil
}

// WriteToUserConfig allows you to set a value on the user config to be saved
// note that if you set a zero-value, it may be ignored e.g. a false or 0 or empty string
// this is because we are using the omitempty yaml directive so that we don't write a heap
// of zero values to the user's config.yml
func (c *AppConfig) WriteToUserConfig(updateConfig func(*UserConfig) error) error {
	userConfig, err := loadUserConfig(c.ConfigDir, &UserConfig{})
	if err != nil {
		return err
	}

	if err := updateConfig(userConfig); err != nil {
		return err
	}

	out, err := yaml.Marshal(userConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(c.ConfigFilename(), out, 0o666)
}

// ConfigFilename returns the filename of the current config file
func (c *AppConfig) ConfigFilename() string {
	return filepath.Join(c.ConfigDir, "config.yml")
}
