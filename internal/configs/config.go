package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	nerrors "github.com/PolarWolf314/noted/internal/errors"
	"github.com/PolarWolf314/noted/internal/utils"
)

// ConfigFileNames are the file names looked up in the data directory, in order.
var ConfigFileNames = []string{"noted.toml", "noted.yaml", "noted.yml"}

var suffixPattern = regexp.MustCompile(`^\.[A-Za-z0-9_-]+$`)

// Config is the optional on-disk configuration.
type Config struct {
	Storage StorageConfig `toml:"storage" yaml:"storage"`
	Cipher  CipherConfig  `toml:"cipher" yaml:"cipher"`
	Display DisplayConfig `toml:"display" yaml:"display"`
	Audit   AuditConfig   `toml:"audit" yaml:"audit"`
}

// StorageConfig holds the layout of the data directory.
// Relative paths are resolved against the data directory.
type StorageConfig struct {
	NotesDir     string `toml:"notes_dir" yaml:"notes_dir"`
	AuthDir      string `toml:"auth_dir" yaml:"auth_dir"`
	KeyDir       string `toml:"key_dir" yaml:"key_dir"`
	PasswordFile string `toml:"password_file" yaml:"password_file"`
	NoteSuffix   string `toml:"note_suffix" yaml:"note_suffix"`
}

// Validate validates the storage configuration.
func (c *StorageConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.NotesDir, validation.Required),
		validation.Field(&c.AuthDir, validation.Required),
		validation.Field(&c.KeyDir, validation.Required),
		validation.Field(&c.PasswordFile, validation.Required),
		validation.Field(&c.NoteSuffix, validation.Required, validation.Match(suffixPattern)),
	)
}

// CipherConfig holds the obfuscation shift.
type CipherConfig struct {
	Shift int `toml:"shift" yaml:"shift"`
}

// Validate validates the cipher configuration.
func (c *CipherConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Shift, validation.Required, validation.Min(1), validation.Max(0xFFFF)),
	)
}

// DisplayConfig controls cosmetic output.
type DisplayConfig struct {
	Banner bool `toml:"banner" yaml:"banner"`
}

// AuditConfig controls the audit log.
type AuditConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	File    string `toml:"file" yaml:"file"`
}

// Validate validates the audit configuration.
func (c *AuditConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.File, validation.When(c.Enabled, validation.Required)),
	)
}

// Validate validates the whole configuration.
func (c *Config) Validate() error {
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Cipher.Validate(); err != nil {
		return fmt.Errorf("cipher: %w", err)
	}
	if err := c.Audit.Validate(); err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	return nil
}

// NewDefaultConfig returns the layout used when no config file exists:
// notes/, auth/password.txt and key/ next to each other, .txt notes, shift 3.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			NotesDir:     "notes",
			AuthDir:      "auth",
			KeyDir:       "key",
			PasswordFile: "password.txt",
			NoteSuffix:   ".txt",
		},
		Cipher: CipherConfig{
			Shift: 3,
		},
		Audit: AuditConfig{
			Enabled: true,
			File:    "audit.jsonl",
		},
	}
}

// LoadConfig reads the config file at path on top of the defaults.
// Environment variables in the file are expanded before decoding.
func LoadConfig(path string) (*Config, error) {
	config := NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	expanded := []byte(os.ExpandEnv(string(data)))

	if err := decodeConfig(path, expanded, config); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", nerrors.ErrInvalidConfig, path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", nerrors.ErrInvalidConfig, path, err)
	}

	return config, nil
}

// FindConfig returns the first config file present in dataDir, or "" if none.
func FindConfig(dataDir string) string {
	for _, name := range ConfigFileNames {
		candidate := filepath.Join(dataDir, name)
		if utils.FileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func decodeConfig(path string, data []byte, config *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data, config)
	default:
		return DecodeTOML(data, config)
	}
}
