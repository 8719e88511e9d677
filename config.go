package shadow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Transparency key colors accepted by the converter. ColorNone is the
// sentinel that skips the keying stage entirely.
const (
	ColorWhite = 0xFFFFFF
	ColorBlack = 0x000000
	ColorNone  = -1
)

// Config carries the conversion parameters. Pass it explicitly to the
// conversion functions; the converter keeps no hidden state.
type Config struct {
	// TransparencyColor is the 24-bit RGB background color keyed to
	// transparent before classification, or ColorNone to skip keying.
	TransparencyColor int
	// Tolerance widens the color-key match by up to this much per channel.
	Tolerance int
}

// DefaultConfig keys white with zero tolerance, the common case for legacy
// sprites on a white background.
func DefaultConfig() Config {
	return Config{TransparencyColor: ColorWhite, Tolerance: 0}
}

type fileConfig struct {
	TransparencyColor string `toml:"transparency_color"`
	Tolerance         int    `toml:"tolerance"`
}

// LoadConfig reads conversion parameters from a TOML file. The
// transparency_color field accepts "white", "black", "none" or a hex
// string such as "#ff00ff"; fields left out keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if fc.TransparencyColor != "" {
		color, err := ParseColor(fc.TransparencyColor)
		if err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg.TransparencyColor = color
	}

	if fc.Tolerance < 0 || fc.Tolerance > 255 {
		return Config{}, fmt.Errorf("load config %s: tolerance %d out of range [0,255]", path, fc.Tolerance)
	}
	cfg.Tolerance = fc.Tolerance

	return cfg, nil
}

// ParseColor maps a color name ("white", "black", "none") or a hex string
// ("#ffffff", "0xffffff", "ffffff") to a transparency key.
func ParseColor(s string) (int, error) {
	switch strings.ToLower(s) {
	case "white":
		return ColorWhite, nil
	case "black":
		return ColorBlack, nil
	case "none":
		return ColorNone, nil
	}

	hex := strings.ToLower(s)
	hex = strings.TrimPrefix(hex, "#")
	hex = strings.TrimPrefix(hex, "0x")
	v, err := strconv.ParseUint(hex, 16, 24)
	if err != nil {
		return 0, fmt.Errorf("invalid transparency color %q", s)
	}
	return int(v), nil
}
