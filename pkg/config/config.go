package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type (
	// Application is the configuration for one topology build. Account and
	// Region feed every globally-unique name the topology interpolates.
	Application struct {
		AppName string `json:"app" yaml:"app" toml:"app"`
		Account string `json:"account" yaml:"account" toml:"account"`
		Region  string `json:"region" yaml:"region" toml:"region"`

		// Format is what format the file was originally in so that outputs
		// keep the same format.
		Format string `json:"-" yaml:"-" toml:"-"`

		OutDir string `json:"out_dir" yaml:"out_dir" toml:"out_dir"`
	}
)

func ReadConfig(fpath string) (Application, error) {
	var appCfg Application

	f, err := os.Open(fpath)
	if err != nil {
		return appCfg, err
	}
	defer f.Close() // nolint:errcheck

	switch filepath.Ext(fpath) {
	case ".json":
		err = json.NewDecoder(f).Decode(&appCfg)
		appCfg.Format = "json"

	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(&appCfg)
		appCfg.Format = "yaml"

	case ".toml":
		err = toml.NewDecoder(f).Decode(&appCfg)
		appCfg.Format = "toml"

	default:
		err = fmt.Errorf("unsupported config format for %s", fpath)
	}
	return appCfg, err
}

func (a Application) WriteTo(fpath string) error {
	f, err := os.Create(fpath)
	if err != nil {
		return err
	}
	defer f.Close() // nolint:errcheck

	switch a.Format {
	case "json":
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	case "toml":
		return toml.NewEncoder(f).Encode(a)
	case "yaml", "":
		return yaml.NewEncoder(f).Encode(a)
	}
	return fmt.Errorf("unsupported config format %q", a.Format)
}

// EnsureDefaults fills in the fields a build cannot proceed without.
func (a *Application) EnsureDefaults() {
	if a.AppName == "" {
		a.AppName = "sensorstack"
	}
	if a.OutDir == "" {
		a.OutDir = "compiled"
	}
}
