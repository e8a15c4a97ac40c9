// Package checks loads the list of CSS selectors to look for.
package checks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound is returned when the checks file does not exist.
	ErrNotFound = errors.New("checks file not found")

	// ErrParse is returned when the checks file is not a list of selectors.
	ErrParse = errors.New("parsing checks file")
)

// tomlFile is the TOML layout; TOML has no top-level arrays.
type tomlFile struct {
	Checks []string `toml:"checks"`
}

// Load reads a checks file and returns its selectors in file order.
// The format follows the extension: .yaml/.yml, .toml, anything else is JSON.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	selectors, err := Parse(data, Format(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return selectors, nil
}

// Format returns the decoder name used for a checks file path.
func Format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return "json"
	}
}

// Parse decodes data in the given format ("json", "yaml" or "toml").
func Parse(data []byte, format string) ([]string, error) {
	var selectors []string
	var err error

	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, &selectors)
	case "toml":
		var tf tomlFile
		err = toml.Unmarshal(data, &tf)
		selectors = tf.Checks
	case "json":
		err = json.Unmarshal(data, &selectors)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrParse, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if selectors == nil {
		return nil, fmt.Errorf("%w: expected a list of selectors", ErrParse)
	}
	return selectors, nil
}
