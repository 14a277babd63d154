package inputkit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds process-wide tunables read once at Listen/Grab time.
// Fields mirror the runtime setters (SetEventPopup, SetGetKeyUnicode, ...)
// so a deployment can pin them via file or environment instead of code.
type Config struct {
	// KeyboardOnly restricts capture to keyboard events, skipping mouse
	// hook/tap installation entirely.
	KeyboardOnly bool `yaml:"keyboard_only"`
	// EventPopup makes the Windows translator call ToUnicodeEx with its
	// don't-change-state flag, so translation leaves a pending dead key in
	// place. Ignored on non-Windows platforms.
	EventPopup bool `yaml:"event_popup"`
	// GetKeyUnicode enables dead-key-aware Unicode translation of
	// key-press events on Windows and macOS.
	GetKeyUnicode bool `yaml:"get_key_unicode"`
}

// DefaultConfig matches the teacher's zero-value-is-safe convention: every
// field defaults to the least surprising, lowest-overhead behavior.
func DefaultConfig() Config {
	return Config{
		KeyboardOnly:  false,
		EventPopup:    false,
		GetKeyUnicode: true,
	}
}

// LoadConfig builds a Config by layering, in increasing priority:
// DefaultConfig, an optional YAML file named by INPUTKIT_CONFIG, then
// individual environment variable overrides. This mirrors the layered
// file-then-env approach used elsewhere in the pack for daemon config.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("INPUTKIT_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("inputkit: reading config file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("inputkit: parsing config file %q: %w", path, err)
		}
	}

	if v, ok := boolEnv("INPUTKIT_KEYBOARD_ONLY"); ok {
		cfg.KeyboardOnly = v
	} else if v, ok := boolEnv("KEYBOARD_ONLY"); ok {
		// Back-compat alias without the library prefix.
		cfg.KeyboardOnly = v
	}
	if v, ok := boolEnv("INPUTKIT_EVENT_POPUP"); ok {
		cfg.EventPopup = v
	}
	if v, ok := boolEnv("INPUTKIT_GET_KEY_UNICODE"); ok {
		cfg.GetKeyUnicode = v
	}

	return cfg, nil
}

func boolEnv(name string) (bool, bool) {
	raw, present := os.LookupEnv(name)
	if !present {
		return false, false
	}
	switch raw {
	case "1", "true", "TRUE", "True":
		return true, true
	case "0", "false", "FALSE", "False":
		return false, true
	default:
		return false, false
	}
}
