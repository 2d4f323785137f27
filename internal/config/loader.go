package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/phyten/lumaramp/internal/opts"
	"github.com/phyten/lumaramp/internal/ramp"
)

var solverKeyMap = map[string]string{
	"max_attempts":      "max_attempts",
	"attempts":          "max_attempts",
	"contrast_attempts": "contrast_attempts",
	"direction":         "direction",
	"dir":               "direction",
	"ratio":             "ratio",
	"contrast_ratio":    "ratio",
	"jobs":              "jobs",
}

var uiKeyMap = map[string]string{
	"output":   "output",
	"color":    "color",
	"base":     "base",
	"swatches": "swatches",
	"swatch":   "swatches",
}

func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	solverSection := make(map[string]any)
	uiSection := make(map[string]any)

	if block, ok := raw["solver"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("solver: %w", err)
		}
		if err := fillSection(solverSection, sub, solverKeyMap, "solver"); err != nil {
			return cfg, err
		}
	}
	if block, ok := raw["ui"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("ui: %w", err)
		}
		if err := fillSection(uiSection, sub, uiKeyMap, "ui"); err != nil {
			return cfg, err
		}
	}

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "solver", "ui":
			continue
		case "ramps":
			specs, err := expectRamps(value)
			if err != nil {
				return cfg, fmt.Errorf("ramps: %w", err)
			}
			cfg.Ramps = &specs
		default:
			if canonical, ok := solverKeyMap[norm]; ok {
				solverSection[canonical] = value
				continue
			}
			if canonical, ok := uiKeyMap[norm]; ok {
				uiSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignSolver(solverSection, &cfg.Solver); err != nil {
		return cfg, fmt.Errorf("solver: %w", err)
	}
	if err := assignUI(uiSection, &cfg.UI); err != nil {
		return cfg, fmt.Errorf("ui: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignSolver(section map[string]any, dst *SolverConfig) error {
	for key, value := range section {
		switch key {
		case "max_attempts":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.MaxAttempts = &n
		case "contrast_attempts":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.ContrastAttempts = &n
		case "direction":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Direction = &trimmed
		case "ratio":
			f, err := expectFloat(value, key)
			if err != nil {
				return err
			}
			dst.Ratio = &f
		case "jobs":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.Jobs = &n
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignUI(section map[string]any, dst *UIConfig) error {
	for key, value := range section {
		if key == "swatches" {
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Swatches = &b
			continue
		}
		str, err := expectString(value, key)
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(str)
		switch key {
		case "output":
			dst.Output = &trimmed
		case "color":
			dst.Color = &trimmed
		case "base":
			dst.Base = &trimmed
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

// expectRamps accepts either a name -> base table, which is ordered by name,
// or a list of {name, base} entries, which keeps file order.
func expectRamps(value any) ([]ramp.Spec, error) {
	switch v := value.(type) {
	case []any:
		out := make([]ramp.Spec, 0, len(v))
		for i, item := range v {
			m, err := toStringKeyMap(item)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			var spec ramp.Spec
			for key, field := range m {
				switch normalizeKey(key) {
				case "name":
					if spec.Name, err = expectString(field, "name"); err != nil {
						return nil, fmt.Errorf("entry %d: %w", i, err)
					}
				case "base", "color":
					if spec.Base, err = expectString(field, "base"); err != nil {
						return nil, fmt.Errorf("entry %d: %w", i, err)
					}
				default:
					return nil, fmt.Errorf("entry %d: unknown key: %s", i, key)
				}
			}
			out = append(out, spec)
		}
		return out, nil
	default:
		m, err := toStringKeyMap(value)
		if err != nil {
			return nil, fmt.Errorf("expected table or list, got %T", value)
		}
		names := make([]string, 0, len(m))
		for name := range m {
			names = append(names, name)
		}
		sort.Strings(names)
		out := make([]ramp.Spec, 0, len(names))
		for _, name := range names {
			base, err := expectString(m[name], name)
			if err != nil {
				return nil, err
			}
			out = append(out, ramp.Spec{Name: name, Base: base})
		}
		return out, nil
	}
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return opts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %v", field, value)
		}
		return n, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectFloat(value any, field string) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number for %s: %q", field, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("expected number for %s, got %T", field, value)
	}
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
