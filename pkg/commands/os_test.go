package commands

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestOSCommandRunCommandWithOutput is a function.
func TestOSCommandRunCommandWithOutput(t *testing.T) {
	type scenario struct {
		command string
		test    func(string, error)
	}

	scenarios := []scenario{
		{
			"echo -n '123'",
			func(output string, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, "123", output)
			},
		},
		{
			"rmdir unexisting-folder",
			func(output string, err error) {
				assert.Regexp(t, "rmdir.*unexisting-folder.*", err.Error())
			},
		},
	}

	for _, s := range scenarios {
		s.test(NewDummyOSCommand().RunCommandWithOutput(s.command))
	}
}

// TestOSCommandRunCommand is a function.
func TestOSCommandRunCommand(t *testing.T) {
	type scenario struct {
		command string
		test    func(error)
	}

	scenarios := []scenario{
		{
			"rmdir unexisting-folder",
			func(err error) {
				assert.Regexp(t, "rmdir.*unexisting-folder.*", err.Error())
			},
		},
	}

	for _, s := range scenarios {
		s.test(NewDummyOSCommand().RunCommand(s.command))
	}
}

func TestOSCommandOpenFile(t *testing.T) {
	type scenario struct {
		name     string
		template string
		filename string
		expected []string
	}

	scenarios := []scenario{
		{
			"plain file",
			"open {{filename}}",
			"/home/user/notes.txt",
			[]string{"open", "/home/user/notes.txt"},
		},
		{
			"file with spaces",
			"xdg-open {{filename}}",
			"/home/user/my notes.txt",
			[]string{"xdg-open", "/home/user/my notes.txt"},
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			osCommand := NewDummyOSCommand()
			osCommand.Platform.os = "linux"
			osCommand.Config.UserConfig.OS.OpenCommand = s.template

			var called []string
			osCommand.SetCommand(func(name string, args ...string) *exec.Cmd {
				called = append([]string{name}, args...)
				return exec.Command("echo")
			})

			assert.NoError(t, osCommand.OpenFile(s.filename))
			assert.EqualValues(t, s.expected, called)
		})
	}
}

func TestOSCommandQuote(t *testing.T) {
	osCommand := NewDummyOSCommand()

	osCommand.Platform.os = "linux"

	actual := osCommand.Quote("hello `test`")

	expected := "\"hello \\`test\\`\""

	assert.EqualValues(t, expected, actual)
}

// TestOSCommandQuoteDoubleQuote tests the quote function with " quotes explicitly for Linux
func TestOSCommandQuoteDoubleQuote(t *testing.T) {
	osCommand := NewDummyOSCommand()

	osCommand.Platform.os = "linux"

	actual := osCommand.Quote(`hello "test"`)

	expected := `"hello \"test\""`

	assert.EqualValues(t, expected, actual)
}

// TestOSCommandQuoteWindows tests the quote function for Windows
func TestOSCommandQuoteWindows(t *testing.T) {
	osCommand := NewDummyOSCommand()

	osCommand.Platform.os = "windows"

	actual := osCommand.Quote(`hello "test" 'test2'`)

	expected := `\"hello "'"'"test"'"'" 'test2'\"`

	assert.EqualValues(t, expected, actual)
}

// TestOSCommandFileType is a function.
func TestOSCommandFileType(t *testing.T) {
	dir := t.TempDir()

	type scenario struct {
		path  string
		setup func(string)
		test  func(string)
	}

	scenarios := []scenario{
		{
			"testFile",
			func(path string) {
				assert.NoError(t, os.WriteFile(path, nil, 0o600))
			},
			func(output string) {
				assert.EqualValues(t, "file", output)
			},
		},
		{
			"file with spaces",
			func(path string) {
				assert.NoError(t, os.WriteFile(path, nil, 0o600))
			},
			func(output string) {
				assert.EqualValues(t, "file", output)
			},
		},
		{
			"testDirectory",
			func(path string) {
				assert.NoError(t, os.Mkdir(path, 0o755))
			},
			func(output string) {
				assert.EqualValues(t, "directory", output)
			},
		},
		{
			"nonExistant",
			func(string) {},
			func(output string) {
				assert.EqualValues(t, "other", output)
			},
		},
	}

	for _, s := range scenarios {
		path := filepath.Join(dir, s.path)
		s.setup(path)
		s.test(NewDummyOSCommand().FileType(path))
	}
}
