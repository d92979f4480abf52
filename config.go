package guidraw

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gputypes"
	"gopkg.in/yaml.v3"
)

// Config sizes a Renderer. It can be loaded from TOML or YAML.
type Config struct {
	VertexCapacity  int           `toml:"vertex_capacity" yaml:"vertex_capacity"`
	IndexCapacity   int           `toml:"index_capacity" yaml:"index_capacity"`
	TextureCapacity int           `toml:"texture_capacity" yaml:"texture_capacity"`
	Sampler         SamplerConfig `toml:"sampler" yaml:"sampler"`
}

// SamplerConfig names the default sampler policy. Filters are "nearest" or
// "linear"; wrap is "clamp", "repeat" or "mirror". Empty fields keep the
// DefaultSampler value.
type SamplerConfig struct {
	Mag  string `toml:"mag" yaml:"mag"`
	Min  string `toml:"min" yaml:"min"`
	Wrap string `toml:"wrap" yaml:"wrap"`
}

// DefaultConfig returns room for 512K vertices and 128K indices, the sizes
// usually given to immediate-mode GUI backends.
func DefaultConfig() Config {
	return Config{
		VertexCapacity:  512 * 1024,
		IndexCapacity:   128 * 1024,
		TextureCapacity: 16,
	}
}

// LoadConfig reads a config file. The format follows the extension: .toml,
// or .yaml/.yml. Fields absent from the file keep their DefaultConfig value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks capacities and sampler names.
func (c Config) Validate() error {
	if c.VertexCapacity <= 0 {
		return fmt.Errorf("vertex_capacity must be positive, got %d", c.VertexCapacity)
	}
	if c.IndexCapacity <= 0 {
		return fmt.Errorf("index_capacity must be positive, got %d", c.IndexCapacity)
	}
	if c.TextureCapacity < 0 {
		return fmt.Errorf("texture_capacity must not be negative, got %d", c.TextureCapacity)
	}
	if _, err := c.Sampler.Policy(); err != nil {
		return err
	}
	return nil
}

// Policy converts the names into a SamplerPolicy.
func (s SamplerConfig) Policy() (SamplerPolicy, error) {
	p := DefaultSampler()
	var err error
	if s.Mag != "" {
		if p.MagFilter, err = parseFilter(s.Mag); err != nil {
			return SamplerPolicy{}, fmt.Errorf("sampler.mag: %w", err)
		}
	}
	if s.Min != "" {
		if p.MinFilter, err = parseFilter(s.Min); err != nil {
			return SamplerPolicy{}, fmt.Errorf("sampler.min: %w", err)
		}
	}
	if s.Wrap != "" {
		wrap, err := parseWrap(s.Wrap)
		if err != nil {
			return SamplerPolicy{}, fmt.Errorf("sampler.wrap: %w", err)
		}
		p.WrapU, p.WrapV = wrap, wrap
	}
	return p, nil
}

func parseFilter(name string) (gputypes.FilterMode, error) {
	switch strings.ToLower(name) {
	case "nearest":
		return gputypes.FilterModeNearest, nil
	case "linear":
		return gputypes.FilterModeLinear, nil
	}
	return gputypes.FilterModeUndefined, fmt.Errorf("unknown filter %q", name)
}

func parseWrap(name string) (gputypes.AddressMode, error) {
	switch strings.ToLower(name) {
	case "clamp", "clamp_to_edge":
		return gputypes.AddressModeClampToEdge, nil
	case "repeat":
		return gputypes.AddressModeRepeat, nil
	case "mirror", "mirror_repeat":
		return gputypes.AddressModeMirrorRepeat, nil
	}
	return gputypes.AddressModeUndefined, fmt.Errorf("unknown wrap mode %q", name)
}
