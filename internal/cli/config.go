package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pipesmith/pipesmith/pkg/pipeline"
)

// defaultPresetFile is looked up in the working directory when --config is
// not given.
const defaultPresetFile = ".pipesmith.toml"

// Preset holds project-level defaults loaded from a TOML file. Preset
// values fill in pipeline options the flags left unset; flags always win.
type Preset struct {
	Language     string   `toml:"language"`
	Platform     string   `toml:"platform"`
	Name         string   `toml:"name"`
	Environments []string `toml:"environments"`
	Docker       bool     `toml:"docker"`
	Output       string   `toml:"output"`
}

// loadPreset reads a preset file. With an empty path the default file is
// tried and a missing file is not an error; an explicit path must exist.
func loadPreset(path string) (Preset, error) {
	explicit := path != ""
	if !explicit {
		path = defaultPresetFile
	}

	var preset Preset
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Preset{}, nil
		}
		return Preset{}, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &preset); err != nil {
		return Preset{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return preset, nil
}

// apply fills unset pipeline options from the preset.
func (p Preset) apply(opts *pipeline.Options) {
	if opts.Language == "" {
		opts.Language = p.Language
	}
	if opts.Platform == "" {
		opts.Platform = p.Platform
	}
	if opts.Name == "" {
		opts.Name = p.Name
	}
	if len(opts.Environments) == 0 {
		opts.Environments = p.Environments
	}
	if p.Docker {
		opts.Docker = true
	}
}
