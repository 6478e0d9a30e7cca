package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Settings are the resolved paths and options for one run.
type Settings struct {
	DataDir      string
	NotesDir     string
	AuthDir      string
	KeyDir       string
	PasswordPath string
	AuditPath    string
	ConfigPath   string
	NoteSuffix   string
	Shift        int
	Banner       bool
	AuditEnabled bool
}

// Resolve turns a config into absolute settings rooted at dataDir.
func Resolve(dataDir string, config *Config) (*Settings, error) {
	if dataDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dataDir = wd
	}

	abs, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory %s: %w", dataDir, err)
	}

	authDir := rooted(abs, config.Storage.AuthDir)
	settings := &Settings{
		DataDir:      abs,
		NotesDir:     rooted(abs, config.Storage.NotesDir),
		AuthDir:      authDir,
		KeyDir:       rooted(abs, config.Storage.KeyDir),
		PasswordPath: rooted(authDir, config.Storage.PasswordFile),
		NoteSuffix:   config.Storage.NoteSuffix,
		Shift:        config.Cipher.Shift,
		Banner:       config.Display.Banner,
		AuditEnabled: config.Audit.Enabled,
	}
	if config.Audit.Enabled {
		settings.AuditPath = rooted(abs, config.Audit.File)
	}

	return settings, nil
}

// LoadSettings resolves settings for dataDir, reading configPath when set or
// the first config file found in dataDir otherwise.
func LoadSettings(dataDir, configPath string) (*Settings, error) {
	if dataDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dataDir = wd
	}

	if configPath == "" {
		configPath = FindConfig(dataDir)
	}

	config := NewDefaultConfig()
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	settings, err := Resolve(dataDir, config)
	if err != nil {
		return nil, err
	}
	settings.ConfigPath = configPath
	return settings, nil
}

// EnsureDirectories creates the notes, auth and key directories when absent.
// The key directory is reserved and not used by any operation.
func EnsureDirectories(s *Settings) error {
	for _, dir := range []string{s.NotesDir, s.AuthDir, s.KeyDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

func rooted(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
