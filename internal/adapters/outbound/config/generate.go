package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/dirchecker/dirchecker/internal/domain"
	"gopkg.in/yaml.v3"
)

const yamlHeader = `# Repository structure validation configuration.
#
# root_dir        directory to validate, relative to the project
# levels          expected directory hierarchy below root_dir
# valid_values    allowed names per level; "*" accepts anything, "api-*" is a glob
# mandatory_files files every component directory must contain
# optional_files  recommended files, reported but never fatal
# check_depth     flag directories nested deeper than max_depth
`

// Generate renders cfg in the format implied by path's extension.
// Skip lists are sorted for stable output.
func Generate(cfg domain.Config, path string) ([]byte, error) {
	cfg.SkipDirs = sortedCopy(cfg.SkipDirs)
	cfg.SkipFiles = sortedCopy(cfg.SkipFiles)

	if isJSON(path) {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding config: %w", err)
		}
		return append(data, '\n'), nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return append([]byte(yamlHeader+"\n"), data...), nil
}

// WriteDefault writes the default configuration to path. It refuses to
// overwrite an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	data, err := Generate(domain.DefaultConfig(), path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func sortedCopy(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
