package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/savi-dev/savi/internal/config"
)

// DefaultBranchName is the baseline branch suppressed from scan output.
const DefaultBranchName = "main"

// Config controls a scan. It is loaded from scan.yaml in the savi config
// directory; a missing file yields the zero value.
type Config struct {
	// DefaultBranch overrides the baseline branch name.
	DefaultBranch string `yaml:"default_branch"`
	// Exclude lists directory names skipped during descent,
	// in addition to .git.
	Exclude []string `yaml:"exclude"`
}

// LoadConfig reads a scan config from path.
// A missing file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading scan config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing scan config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefaultConfig reads scan.yaml from the savi config directory.
func LoadDefaultConfig() (Config, error) {
	dir := config.Dir()
	if dir == "" {
		return Config{}, nil
	}
	return LoadConfig(filepath.Join(dir, "scan.yaml"))
}
