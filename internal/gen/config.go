package gen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultLengths are the array lengths covered when no explicit list is given.
var DefaultLengths = []int{
	40, 48, 50, 56, 64, 72, 96, 100, 128, 160, 192, 200, 224, 256, 384, 512,
	768, 1024, 2048, 4096, 8192, 16384, 32768, 65536,
}

var (
	ErrBadLength = errors.New("gen: invalid array length")
	ErrBadConfig = errors.New("gen: invalid config")
)

// Config describes one generated file.
type Config struct {
	Package string
	Name    string
	// Lengths replaces DefaultLengths, or extends it when Extend is set.
	Lengths []int
	Extend  bool
	Output  string
}

func DefaultConfig() Config {
	return Config{
		Package: "bigarray",
		Name:    "BigArray",
		Output:  "lengths_gen.go",
	}
}

// Resolved returns the sorted, de-duplicated lengths to generate.
func (c Config) Resolved() ([]int, error) {
	var out []int
	switch {
	case len(c.Lengths) == 0:
		out = slices.Clone(DefaultLengths)
	case c.Extend:
		out = append(slices.Clone(DefaultLengths), c.Lengths...)
	default:
		out = slices.Clone(c.Lengths)
	}
	for _, l := range out {
		if l < 0 {
			return nil, fmt.Errorf("%w: %d", ErrBadLength, l)
		}
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// ParseLengths parses length arguments such as "42", "300,1234" or "+127".
// A leading '+' on any entry means the list extends DefaultLengths.
func ParseLengths(args []string) (lengths []int, extend bool, err error) {
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if strings.HasPrefix(part, "+") {
				extend = true
				part = part[1:]
			}
			n, err := strconv.Atoi(part)
			if err != nil || n < 0 {
				return nil, false, fmt.Errorf("%w: %q", ErrBadLength, part)
			}
			lengths = append(lengths, n)
		}
	}
	return lengths, extend, nil
}

type fileConfig struct {
	Package *string `toml:"package" yaml:"package"`
	Name    *string `toml:"name" yaml:"name"`
	Lengths []int   `toml:"lengths" yaml:"lengths"`
	Extend  *bool   `toml:"extend" yaml:"extend"`
	Output  *string `toml:"output" yaml:"output"`
}

// LoadConfig reads a .toml, .yaml or .yml file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load generator config: %w", err)
	}

	var raw fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.Decode(string(data), &raw)
		if err != nil {
			return Config{}, fmt.Errorf("load generator config: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrBadConfig, undecoded[0].String(), path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil {
			return Config{}, fmt.Errorf("load generator config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: unsupported config extension %q", ErrBadConfig, ext)
	}

	if raw.Package != nil {
		cfg.Package = strings.TrimSpace(*raw.Package)
	}
	if raw.Name != nil {
		cfg.Name = strings.TrimSpace(*raw.Name)
	}
	if raw.Lengths != nil {
		cfg.Lengths = raw.Lengths
	}
	if raw.Extend != nil {
		cfg.Extend = *raw.Extend
	}
	if raw.Output != nil {
		cfg.Output = strings.TrimSpace(*raw.Output)
	}
	return cfg, nil
}
