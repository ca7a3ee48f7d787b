package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pipesmith/pipesmith/pkg/pipeline"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPreset(t *testing.T) {
	path := writePreset(t, `
language = "python"
platform = "aws"
name = "billing"
environments = ["staging", "production"]
docker = true
output = "./ci"
`)

	preset, err := loadPreset(path)
	if err != nil {
		t.Fatalf("loadPreset: %v", err)
	}

	if preset.Language != "python" {
		t.Errorf("language = %q, want python", preset.Language)
	}
	if preset.Platform != "aws" {
		t.Errorf("platform = %q, want aws", preset.Platform)
	}
	if !preset.Docker {
		t.Error("docker = false, want true")
	}
	if want := []string{"staging", "production"}; !reflect.DeepEqual(preset.Environments, want) {
		t.Errorf("environments = %v, want %v", preset.Environments, want)
	}
	if preset.Output != "./ci" {
		t.Errorf("output = %q, want ./ci", preset.Output)
	}
}

func TestLoadPresetMissingExplicit(t *testing.T) {
	if _, err := loadPreset(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadPresetMissingDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	preset, err := loadPreset("")
	if err != nil {
		t.Fatalf("loadPreset: %v", err)
	}
	if !reflect.DeepEqual(preset, Preset{}) {
		t.Errorf("preset = %+v, want zero value", preset)
	}
}

func TestPresetApply(t *testing.T) {
	preset := Preset{
		Language:     "python",
		Platform:     "gcp",
		Name:         "billing",
		Environments: []string{"production"},
		Docker:       true,
	}

	t.Run("fills unset fields", func(t *testing.T) {
		opts := pipeline.Options{Description: "an api"}
		preset.apply(&opts)

		if opts.Language != "python" || opts.Platform != "gcp" || opts.Name != "billing" {
			t.Errorf("opts = %+v, want preset values applied", opts)
		}
		if !opts.Docker {
			t.Error("docker not applied")
		}
	})

	t.Run("flags win", func(t *testing.T) {
		opts := pipeline.Options{
			Description:  "an api",
			Language:     "nodejs",
			Platform:     "heroku",
			Name:         "shop",
			Environments: []string{"dev"},
		}
		preset.apply(&opts)

		if opts.Language != "nodejs" || opts.Platform != "heroku" || opts.Name != "shop" {
			t.Errorf("opts = %+v, want flag values kept", opts)
		}
		if !reflect.DeepEqual(opts.Environments, []string{"dev"}) {
			t.Errorf("environments = %v, want [dev]", opts.Environments)
		}
	})
}
