package elemkind

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config lists what the analyzer checks.
type Config struct {
	Targets []Target      `yaml:"targets"`
	Slices  []SliceTarget `yaml:"slices"`
}

// Target represents a pair of a function and an argument with allowed types.
type Target struct {
	// Package path of the target function
	PkgPath string `yaml:"pkg"`
	// Name of the target function.
	// Methods are written as T.M or *T.M.
	FuncName string `yaml:"func"`
	// Position of argument any
	// ArgPos is 0-indexed
	ArgPos int `yaml:"arg"`
	// List of allowed types for the argument
	Allowed []Allowed `yaml:"allowed"`
}

// SliceTarget is a named slice type whose elements are limited to allowed types.
type SliceTarget struct {
	PkgPath  string    `yaml:"pkg"`
	TypeName string    `yaml:"type"`
	Allowed  []Allowed `yaml:"allowed"`
}

// Allowed is a type that is allowed for the argument.
type Allowed struct {
	// The path of the package that defines the type.
	// If the type is builtin, let it be an empty string.
	PkgPath string `yaml:"pkg"`
	// The name of the type.
	TypeName string `yaml:"type"`
}

// Merge returns the targets of c followed by those of other.
func (c Config) Merge(other Config) Config {
	return Config{
		Targets: append(append([]Target(nil), c.Targets...), other.Targets...),
		Slices:  append(append([]SliceTarget(nil), c.Slices...), other.Slices...),
	}
}

const mixedconcatPath = "github.com/qawatake/mixedconcat"

// DefaultConfig limits the arguments of mixedconcat.Join and the elements
// of mixedconcat.Mixed to int and string.
func DefaultConfig() Config {
	intOrString := []Allowed{
		{
			PkgPath:  "",
			TypeName: "int",
		},
		{
			PkgPath:  "",
			TypeName: "string",
		},
	}
	return Config{
		Targets: []Target{
			{
				PkgPath:  mixedconcatPath,
				FuncName: "Join",
				ArgPos:   0,
				Allowed:  intOrString,
			},
		},
		Slices: []SliceTarget{
			{
				PkgPath:  mixedconcatPath,
				TypeName: "Mixed",
				Allowed:  intOrString,
			},
		},
	}
}

// LoadConfig decodes a YAML configuration. Unknown keys are an error.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode elemkind config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile is LoadConfig for the file at path.
func LoadConfigFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read elemkind config: %w", err)
	}
	cfg, err := LoadConfig(bytes.NewReader(b))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	for i, t := range c.Targets {
		if t.PkgPath == "" || t.FuncName == "" {
			return fmt.Errorf("targets[%d]: pkg and func are required", i)
		}
		if len(t.Allowed) == 0 {
			return fmt.Errorf("targets[%d]: allowed is empty", i)
		}
	}
	for i, s := range c.Slices {
		if s.PkgPath == "" || s.TypeName == "" {
			return fmt.Errorf("slices[%d]: pkg and type are required", i)
		}
		if len(s.Allowed) == 0 {
			return fmt.Errorf("slices[%d]: allowed is empty", i)
		}
	}
	return nil
}
