// Package projectconfig provides the ProjectConfig struct and loader for
// .milpbench.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration filename.
const ConfigFileName = ".milpbench.yaml"

// Default values for project configuration. These are the single source
// of truth — New() references them and no other code should duplicate them.
const (
	DefaultInstancesDir   = "bin_pack_prob/"
	DefaultTranscriptsDir = "runs/"
	DefaultResultsFile    = "results.csv"

	DefaultSuffix  = ".out"
	DefaultWorkers = 4

	DefaultGenerateOutDir = "bin_pack_prob"
)

// PathsConfig holds directory and file paths used by the subcommands.
type PathsConfig struct {
	Instances   string `yaml:"instances,omitempty"`
	Transcripts string `yaml:"transcripts,omitempty"`
	Results     string `yaml:"results,omitempty"`
}

// ExtractConfig holds defaults for the extract subcommand.
type ExtractConfig struct {
	Suffix  string `yaml:"suffix,omitempty"`
	Workers int    `yaml:"workers,omitempty"`
	Summary *bool  `yaml:"summary,omitempty"`
}

// GenerateConfig holds defaults for the generate subcommand.
type GenerateConfig struct {
	OutDir string `yaml:"out_dir,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .milpbench.yaml.
type ProjectConfig struct {
	Paths    PathsConfig    `yaml:"paths,omitempty"`
	Extract  ExtractConfig  `yaml:"extract,omitempty"`
	Generate GenerateConfig `yaml:"generate,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Instances:   DefaultInstancesDir,
			Transcripts: DefaultTranscriptsDir,
			Results:     DefaultResultsFile,
		},
		Extract: ExtractConfig{
			Suffix:  DefaultSuffix,
			Workers: DefaultWorkers,
			Summary: boolPtr(false),
		},
		Generate: GenerateConfig{
			OutDir: DefaultGenerateOutDir,
		},
	}
}

// Load finds .milpbench.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults. If no config
// file is found, returns defaults with a nil error. Real I/O errors
// (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", ConfigFileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// Save writes cfg to dir as .milpbench.yaml.
func Save(dir string, cfg *ProjectConfig) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", ConfigFileName, err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Find walks up from startDir (max 10 levels) and returns the path of
// the nearest .milpbench.yaml, or false when none exists.
func Find(startDir string) (string, bool) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}
	dir := absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ConfigFileName)
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// findConfigFile walks up from dir looking for .milpbench.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig copies non-zero fields from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Paths.Instances != "" {
		dst.Paths.Instances = src.Paths.Instances
	}
	if src.Paths.Transcripts != "" {
		dst.Paths.Transcripts = src.Paths.Transcripts
	}
	if src.Paths.Results != "" {
		dst.Paths.Results = src.Paths.Results
	}
	if src.Extract.Suffix != "" {
		dst.Extract.Suffix = src.Extract.Suffix
	}
	if src.Extract.Workers > 0 {
		dst.Extract.Workers = src.Extract.Workers
	}
	if src.Extract.Summary != nil {
		dst.Extract.Summary = src.Extract.Summary
	}
	if src.Generate.OutDir != "" {
		dst.Generate.OutDir = src.Generate.OutDir
	}
}

func boolPtr(b bool) *bool { return &b }
