package dialog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/christophe-duc/lazydialog/pkg/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultTestTimeout = 5 * time.Second

func TestWrapFileHandlePathRoundTrip(t *testing.T) {
	runtime, _ := newTestRuntime()

	scenarios := []string{
		"/home/user/hello.txt",
		"relative/dir/file.tar.gz",
		"/tmp/zażółć gęślą jaźń.txt",
		"C:\\Users\\user\\file.txt",
		"",
	}

	for _, s := range scenarios {
		path, err := runtime.WrapFileHandle(s).Path()
		assert.NoError(t, err)
		assert.EqualValues(t, s, path)
	}
}

func TestFileHandleInvalidEncoding(t *testing.T) {
	runtime, _ := newTestRuntime()
	handle := runtime.WrapFileHandle("/tmp/\xff\xfe")

	path, err := handle.Path()
	assert.Empty(t, path)
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	data, err := handle.Read().Wait()
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestFileHandleRead(t *testing.T) {
	runtime, _ := newTestRuntime()
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0o600))

	handle := runtime.WrapFileHandle(path)
	assert.EqualValues(t, "notes.txt", handle.FileName())

	data, err := handle.Read().Wait()
	assert.NoError(t, err)
	assert.EqualValues(t, "first", string(data))

	require.NoError(t, os.WriteFile(path, []byte("second"), 0o600))
	data, err = handle.Read().Wait()
	assert.NoError(t, err)
	assert.EqualValues(t, "second", string(data))
}

func TestFileHandleReadFailures(t *testing.T) {
	dir := t.TempDir()

	type scenario struct {
		name string
		path string
	}

	scenarios := []scenario{
		{"directory", dir},
		{"missing file", filepath.Join(dir, "missing.txt")},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			runtime, _ := newTestRuntime()

			data, err := runtime.WrapFileHandle(s.path).Read().Wait()
			assert.Nil(t, data)
			assert.ErrorIs(t, err, ErrNativePanic)
			assert.NotEmpty(t, PanicStack(err))
			assert.NoError(t, runtime.Close(defaultTestTimeout))
		})
	}
}

func TestFileHandleReadContext(t *testing.T) {
	runtime, _ := newTestRuntime()
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte{0, 1, 2}, 0o600))

	data, err := runtime.WrapFileHandle(path).ReadContext(context.Background())
	assert.NoError(t, err)
	assert.EqualValues(t, []byte{0, 1, 2}, data)
}

func TestFileHandleReadWaitsForOpenBackgroundDialog(t *testing.T) {
	release := make(chan struct{})
	runtime, backend := newTestRuntime(native.Answer{Confirmed: true, Wait: release})
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	shown := runtime.NewAsyncMessageDialog().Show()
	require.Eventually(t, func() bool { return len(backend.Calls()) == 1 }, defaultTestTimeout, time.Millisecond)

	read := runtime.WrapFileHandle(path).Read()
	assert.Never(t, func() bool {
		select {
		case <-read.Done():
			return true
		default:
			return false
		}
	}, 100*time.Millisecond, 5*time.Millisecond)

	close(release)
	confirmed, err := shown.Wait()
	require.NoError(t, err)
	assert.True(t, confirmed)

	data, err := read.Wait()
	require.NoError(t, err)
	assert.EqualValues(t, "hello", string(data))
}
