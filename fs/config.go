package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/bookbind/bookbind"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a book configuration file. The format is chosen by
// extension: .yaml/.yml files are parsed as YAML, everything else as JSON.
func LoadConfig(path string) (*bookbind.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg bookbind.Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, bookbind.Errorf(bookbind.EINVALID, "cannot parse config %s: %v", path, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, bookbind.Errorf(bookbind.EINVALID, "cannot parse config %s: %v", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteConfigTemplate writes a starter configuration with placeholder
// values for the user to fill in.
func WriteConfigTemplate(path string) error {
	template := bookbind.Config{
		Title:     "__fill the title__",
		Author:    "__fill the author__",
		Version:   "v1.0",
		Homepage:  "__fill url to home page__",
		OutputDir: "__fill output dir__",
		URLs:      []string{},
	}

	data, err := json.MarshalIndent(&template, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
