package life

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config controls the Life grid dimensions and initial contents.
type Config struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Seed    int64  `json:"seed"`
	Pattern string `json:"pattern"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 480, Height: 480, Seed: 42, Pattern: PatternRandom}
}

// Validate checks that the config describes a usable grid.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "width=%d height=%d", c.Width, c.Height)
	}
	if !ValidPattern(c.Pattern) {
		return errors.Wrapf(ErrUnknownPattern, "%q", c.Pattern)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Keys absent from the map keep their defaults. Values are carried through
// as given, so a non-positive width or height surfaces from Validate;
// unparseable numbers are reported immediately.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(ErrInvalidDimensions, "width %q: %v", v, err)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(ErrInvalidDimensions, "height %q: %v", v, err)
		}
		c.Height = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, errors.Wrapf(err, "seed %q", v)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	return c, nil
}

// ToMap renders the config as flag-style key/value pairs accepted by FromMap.
func (c Config) ToMap() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"pattern": c.Pattern,
	}
}

// LoadConfig reads a JSON config file. Fields absent from the file keep their
// defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
