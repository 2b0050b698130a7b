package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/wirecube/shape"
)

// Load overlays the TOML file at path onto base
// Keys absent from the file keep their base values; unknown keys are an error
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config %s: %w", path, err)
	}
	cfg, err := Parse(string(data), base)
	if err != nil {
		return base, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays TOML data onto base
// A shape kind different from the base kind starts from that kind's default geometry
func Parse(data string, base Config) (Config, error) {
	cfg := base
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return base, err
	}
	if err := checkUndecoded(md); err != nil {
		return base, err
	}
	if !md.IsDefined("shape", "kind") || sameKind(cfg.Shape.Kind, base.Shape.Kind) {
		return cfg, nil
	}

	// Unknown kinds are left for Validate to report
	defaults, err := ShapeDefaults(cfg.Shape.Kind)
	if err != nil {
		return cfg, nil
	}
	cfg = base
	cfg.Shape = defaults
	if _, err := toml.Decode(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

func sameKind(a, b string) bool {
	ka, errA := shape.ParseKind(a)
	kb, errB := shape.ParseKind(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ka == kb
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	sort.Strings(keys)
	return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
}

// Encode writes cfg as TOML
func Encode(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
