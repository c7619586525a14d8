package scenario

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix guards scenario environment overrides. Key segments are joined
// with a double underscore because field names themselves contain single
// underscores: STORMGEN_EYE__START_LON -> eye.start_lon.
const envPrefix = "STORMGEN_"

// Load builds a Scenario by layering defaults, an optional YAML file, and
// environment overrides. Order of precedence (low -> high):
//  1. Default()
//  2. file (YAML) if path is non-empty
//  3. env (prefix STORMGEN_)
//
// The result is validated before being returned.
func Load(path string) (*Scenario, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load scenario file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load scenario env overrides: %w", err)
	}

	sc := *Default()
	if err := k.UnmarshalWithConf("", &sc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal scenario: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}
