package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jesseduffield/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppConfigUsesDefaults(t *testing.T) {
	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false, t.TempDir())
	require.NoError(t, err)

	assert.EqualValues(t, GetDefaultConfig(), *conf.UserConfig)
	assert.NoError(t, conf.UserConfig.Validate())
	assert.FileExists(t, conf.ConfigFilename())
}

func TestNewAppConfigMergesUserConfig(t *testing.T) {
	type scenario struct {
		name    string
		content string
		test    func(*UserConfig, error)
	}

	scenarios := []scenario{
		{
			"partial config keeps the other defaults",
			"dialog:\n  title: Pick one\n  filters:\n    - name: Text\n      extensions: [txt, md]\nmessage:\n  buttons: YesNo\n",
			func(config *UserConfig, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "Pick one", config.Dialog.Title)
				assert.EqualValues(t, "zenity", config.Dialog.Backend)
				assert.EqualValues(t, 10*time.Second, config.Dialog.CloseTimeout)
				assert.EqualValues(t, []FilterConfig{{Name: "Text", Extensions: []string{"txt", "md"}}}, config.Dialog.Filters)
				assert.EqualValues(t, "YesNo", config.Message.Buttons)
				assert.EqualValues(t, "Info", config.Message.Level)
				assert.EqualValues(t, "auto", config.Gui.Language)
			},
		},
		{
			"byte order mark is ignored",
			"\xef\xbb\xbfgui:\n  language: pl\ndialog:\n  closeTimeout: 2s\n",
			func(config *UserConfig, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "pl", config.Gui.Language)
				assert.EqualValues(t, 2*time.Second, config.Dialog.CloseTimeout)
			},
		},
		{
			"invalid yaml",
			"dialog: [",
			func(config *UserConfig, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(s.content), 0o600))

			s.test(loadUserConfigWithDefaults(dir))
		})
	}
}

func TestWritingToConfigFile(t *testing.T) {
	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false, t.TempDir())
	require.NoError(t, err)

	testFn := func(t *testing.T, ac *AppConfig, newValue string) {
		t.Helper()
		updateFn := func(uc *UserConfig) error {
			uc.Dialog.Title = newValue
			return nil
		}

		require.NoError(t, ac.WriteToUserConfig(updateFn))

		file, err := os.OpenFile(ac.ConfigFilename(), os.O_RDONLY, 0o660)
		require.NoError(t, err)
		defer file.Close()

		sampleUC := UserConfig{}
		require.NoError(t, yaml.NewDecoder(file).Decode(&sampleUC))
		assert.EqualValues(t, newValue, sampleUC.Dialog.Title)
		assert.Empty(t, sampleUC.Dialog.Backend)
	}

	// insert value into an empty file
	testFn(t, conf, "first")

	// modifying an existing file that already has a title
	testFn(t, conf, "second")
}

func TestValidate(t *testing.T) {
	type scenario struct {
		name   string
		update func(*UserConfig)
		errMsg string
	}

	scenarios := []scenario{
		{"defaults", func(*UserConfig) {}, ""},
		{"scripted backend", func(c *UserConfig) { c.Dialog.Backend = "scripted" }, ""},
		{"unknown backend", func(c *UserConfig) { c.Dialog.Backend = "kdialog" }, "Unrecognized dialog backend 'kdialog'"},
		{"unknown level", func(c *UserConfig) { c.Message.Level = "Fatal" }, "message.level"},
		{"unknown buttons", func(c *UserConfig) { c.Message.Buttons = "OK" }, "message.buttons"},
		{"negative timeout", func(c *UserConfig) { c.Dialog.CloseTimeout = -time.Second }, "closeTimeout"},
		{
			"filter without name",
			func(c *UserConfig) { c.Dialog.Filters = []FilterConfig{{Extensions: []string{"txt"}}} },
			"dialog.filters[0] has no name",
		},
		{
			"filter without extensions",
			func(c *UserConfig) { c.Dialog.Filters = []FilterConfig{{Name: "Text"}} },
			"has no extensions",
		},
		{
			"extension with dot",
			func(c *UserConfig) {
				c.Dialog.Filters = []FilterConfig{{Name: "Text", Extensions: []string{"txt"}}, {Name: "Go", Extensions: []string{".go"}}}
			},
			"Unrecognized extension '.go' in dialog.filters[1]",
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			config := GetDefaultConfig()
			s.update(&config)

			err := config.Validate()
			if s.errMsg == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), s.errMsg)
			}
		})
	}
}
