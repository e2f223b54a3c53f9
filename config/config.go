// Package config loads karmasub configuration from CUE files.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DefaultPath is the config file read when no other path is given.
// It is allowed to be missing.
const DefaultPath = "karmasub.cue"

//go:embed schema.cue
var schema string

// Config holds the settings for a subtraction.
type Config struct {
	Width  int    `json:"width"`
	Signed bool   `json:"signed"`
	Format string `json:"format"`
}

// Default returns the configuration matching C int semantics.
func Default() Config {
	return Config{Width: 32, Signed: true, Format: "auto"}
}

// Load unifies the CUE files at paths and the inline CUE fragments
// with the schema and decodes the result.
func Load(paths []string, inline []string) (*Config, error) {
	ctx := cuecontext.New()

	root := ctx.CompileString(schema, cue.Filename("schema.cue"))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	v := root.LookupPath(cue.ParsePath("#Config"))

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if path == DefaultPath && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		file := ctx.CompileBytes(data, cue.Filename(path))
		if err := file.Err(); err != nil {
			return nil, fmt.Errorf("compile config %s: %w", path, err)
		}
		v = v.Unify(file)
	}

	for i, src := range inline {
		frag := ctx.CompileString(src, cue.Filename(fmt.Sprintf("inline#%d", i)))
		if err := frag.Err(); err != nil {
			return nil, fmt.Errorf("compile inline config %q: %w", src, err)
		}
		v = v.Unify(frag)
	}

	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	var cfg Config
	if err := v.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields that the schema constrains, for configs
// built in code rather than loaded.
func (c Config) Validate() error {
	switch c.Width {
	case 8, 16, 32, 64:
	default:
		return fmt.Errorf("invalid width %d: must be 8, 16, 32 or 64", c.Width)
	}
	switch c.Format {
	case "auto", "text", "json", "markdown":
	default:
		return fmt.Errorf("invalid format %q", c.Format)
	}
	return nil
}
