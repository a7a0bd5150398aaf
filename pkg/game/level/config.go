package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables for slime placement
type Config struct {
	// MinRoomSize is the smallest width and height a room needs to receive slimes.
	MinRoomSize int `yaml:"min_room_size"`
	// MinSlimes and MaxSlimes bound the per-room slime count, inclusive.
	MinSlimes int `yaml:"min_slimes"`
	MaxSlimes int `yaml:"max_slimes"`
}

// DefaultConfig returns the standard placement rules: rooms of at least
// 4x4 receive one to three slimes.
func DefaultConfig() Config {
	return Config{
		MinRoomSize: 4,
		MinSlimes:   1,
		MaxSlimes:   3,
	}
}

// Validate checks the config for values that make placement impossible
func (c Config) Validate() error {
	if c.MinRoomSize < 3 {
		// Anything smaller leaves no interior once the 1 tile margin is applied.
		return fmt.Errorf("min_room_size must be at least 3, got %d", c.MinRoomSize)
	}
	if c.MinSlimes < 0 {
		return fmt.Errorf("min_slimes must not be negative, got %d", c.MinSlimes)
	}
	if c.MaxSlimes < c.MinSlimes {
		return fmt.Errorf("max_slimes (%d) must not be below min_slimes (%d)", c.MaxSlimes, c.MinSlimes)
	}
	return nil
}

// ParseConfig decodes YAML on top of DefaultConfig, so omitted keys keep
// their default values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse level config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML level config from path
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read level config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
