package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing
type MockFileSystem struct {
	homeDir    string
	homeDirErr error
	files      map[string][]byte
	readErr    error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	if m.homeDirErr != nil {
		return "", m.homeDirErr
	}
	return m.homeDir, nil
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	data, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func configPath(home string) string {
	return filepath.Join(home, ".config", ConfigDir, ConfigFile)
}

func TestLoadDefaults(t *testing.T) {
	t.Run("missing dotfile returns defaults", func(t *testing.T) {
		loader := NewLoaderWithFS(&MockFileSystem{homeDir: "/home/user"})

		cfg, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("home dir failure returns defaults", func(t *testing.T) {
		loader := NewLoaderWithFS(&MockFileSystem{homeDirErr: errors.New("no home")})

		cfg, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.TabWidth)
	})
}

func TestLoadOverrides(t *testing.T) {
	t.Run("dotfile values override defaults", func(t *testing.T) {
		loader := NewLoaderWithFS(&MockFileSystem{
			homeDir: "/home/user",
			files: map[string][]byte{
				configPath("/home/user"): []byte(`{"tab_width": 8, "max_file_size": 1024}`),
			},
		})

		cfg, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.TabWidth)
		assert.Equal(t, int64(1024), cfg.MaxFileSize)
		// Missing keys keep their defaults.
		assert.Equal(t, 8192, cfg.BinarySampleSize)
	})

	t.Run("malformed JSON is an error", func(t *testing.T) {
		loader := NewLoaderWithFS(&MockFileSystem{
			homeDir: "/home/user",
			files: map[string][]byte{
				configPath("/home/user"): []byte(`{not json`),
			},
		})

		_, err := loader.Load()
		require.Error(t, err)
	})

	t.Run("permission error is an error", func(t *testing.T) {
		loader := NewLoaderWithFS(&MockFileSystem{
			homeDir: "/home/user",
			readErr: os.ErrPermission,
		})

		_, err := loader.Load()
		require.Error(t, err)
	})

	t.Run("invalid merged config is an error", func(t *testing.T) {
		loader := NewLoaderWithFS(&MockFileSystem{
			homeDir: "/home/user",
			files: map[string][]byte{
				configPath("/home/user"): []byte(`{"tab_width": 3}`),
			},
		})

		_, err := loader.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tab_width")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"width 2 is valid", func(c *Config) { c.TabWidth = 2 }, false},
		{"width 3 is invalid", func(c *Config) { c.TabWidth = 3 }, true},
		{"zero max file size is invalid", func(c *Config) { c.MaxFileSize = 0 }, true},
		{"zero sample size is invalid", func(c *Config) { c.BinarySampleSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveProfile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Profiles = map[string]map[string]any{
		"kernel": {"tab": true, "unix": true, "width": 8},
		"broken": {"space": true, "tab": true},
		"typo":   {"spcae": true},
		"badw":   {"width": 5},
	}

	t.Run("valid profile decodes", func(t *testing.T) {
		p, err := cfg.ResolveProfile("kernel")
		require.NoError(t, err)
		assert.True(t, p.Tab)
		assert.True(t, p.Unix)
		assert.Equal(t, 8, p.Width)
		assert.False(t, p.Space)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := cfg.ResolveProfile("nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("contradictory profile", func(t *testing.T) {
		_, err := cfg.ResolveProfile("broken")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		_, err := cfg.ResolveProfile("typo")
		require.Error(t, err)
	})

	t.Run("invalid width rejected", func(t *testing.T) {
		_, err := cfg.ResolveProfile("badw")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "width")
	})
}
