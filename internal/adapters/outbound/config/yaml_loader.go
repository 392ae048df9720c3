package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dirchecker/dirchecker/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up when none is given.
const DefaultFileName = "dir-checker-config.yaml"

// candidateFiles are tried in order when no explicit file is given.
var candidateFiles = []string{
	DefaultFileName,
	"dir-checker-config.yml",
	"dir-checker-config.json",
}

// fileConfig mirrors domain.Config with optional fields so that keys absent
// from the file keep their defaults. Lists and maps replace the default
// wholesale when present.
type fileConfig struct {
	RootDir                *string             `yaml:"root_dir"                  json:"root_dir"`
	Levels                 []string            `yaml:"levels"                    json:"levels"`
	MaxDepth               *int                `yaml:"max_depth"                 json:"max_depth"`
	CheckDepth             *bool               `yaml:"check_depth"               json:"check_depth"`
	AllowSubdirs           *bool               `yaml:"allow_subdirs"             json:"allow_subdirs"`
	RespectGitignore       *bool               `yaml:"respect_gitignore"         json:"respect_gitignore"`
	ValidValues            map[string][]string `yaml:"valid_values"              json:"valid_values"`
	MandatoryFiles         []string            `yaml:"mandatory_files"           json:"mandatory_files"`
	OptionalFiles          []string            `yaml:"optional_files"            json:"optional_files"`
	SkipDirs               []string            `yaml:"skip_dirs"                 json:"skip_dirs"`
	SkipFiles              []string            `yaml:"skip_files"                json:"skip_files"`
	FailOnMissingFiles     *bool               `yaml:"fail_on_missing_files"     json:"fail_on_missing_files"`
	FailOnInvalidStructure *bool               `yaml:"fail_on_invalid_structure" json:"fail_on_invalid_structure"`
	FailOnInvalidValues    *bool               `yaml:"fail_on_invalid_values"    json:"fail_on_invalid_values"`
	LogLevel               *string             `yaml:"log_level"                 json:"log_level"`
}

// Loader implements domain.ConfigLoader by reading a YAML or JSON file.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load resolves the configuration file for projectPath and overlays it on
// domain.DefaultConfig. An explicit file must exist; otherwise the candidate
// names are tried in order and defaults are returned when none is present.
func (l *Loader) Load(projectPath, explicitFile string) (domain.Config, string, error) {
	path, err := resolve(projectPath, explicitFile)
	if err != nil {
		return domain.Config{}, "", err
	}
	if path == "" {
		cfg := domain.DefaultConfig()
		return cfg, "", cfg.Validate()
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return domain.Config{}, "", err
	}
	return cfg, path, nil
}

// LoadFile reads a single configuration file. The format is chosen by
// extension: .json is JSON, anything else is YAML.
func LoadFile(path string) (domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var fc fileConfig
	if isJSON(path) {
		err = json.Unmarshal(data, &fc)
	} else {
		err = yaml.Unmarshal(data, &fc)
	}
	if err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	cfg := merge(domain.DefaultConfig(), fc)
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

func resolve(projectPath, explicitFile string) (string, error) {
	if explicitFile != "" {
		path := explicitFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectPath, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicitFile, err)
		}
		return path, nil
	}

	for _, name := range candidateFiles {
		path := filepath.Join(projectPath, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", name, err)
		}
	}
	return "", nil
}

// merge overlays the keys present in the file on top of base.
func merge(base domain.Config, fc fileConfig) domain.Config {
	result := base

	if fc.RootDir != nil {
		result.RootDir = *fc.RootDir
	}
	if fc.Levels != nil {
		result.Levels = fc.Levels
	}
	if fc.MaxDepth != nil {
		result.MaxDepth = *fc.MaxDepth
	}
	if fc.CheckDepth != nil {
		result.CheckDepth = *fc.CheckDepth
	}
	if fc.AllowSubdirs != nil {
		result.AllowSubdirs = *fc.AllowSubdirs
	}
	if fc.RespectGitignore != nil {
		result.RespectGitignore = *fc.RespectGitignore
	}
	if fc.ValidValues != nil {
		result.ValidValues = fc.ValidValues
	}
	if fc.MandatoryFiles != nil {
		result.MandatoryFiles = fc.MandatoryFiles
	}
	if fc.OptionalFiles != nil {
		result.OptionalFiles = fc.OptionalFiles
	}
	if fc.SkipDirs != nil {
		result.SkipDirs = fc.SkipDirs
	}
	if fc.SkipFiles != nil {
		result.SkipFiles = fc.SkipFiles
	}
	if fc.FailOnMissingFiles != nil {
		result.FailOnMissingFiles = *fc.FailOnMissingFiles
	}
	if fc.FailOnInvalidStructure != nil {
		result.FailOnInvalidStructure = *fc.FailOnInvalidStructure
	}
	if fc.FailOnInvalidValues != nil {
		result.FailOnInvalidValues = *fc.FailOnInvalidValues
	}
	if fc.LogLevel != nil {
		result.LogLevel = *fc.LogLevel
	}

	return result
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
