// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config defines the elementwrap.yaml (or elementwrap.toml)
// configuration that drives a build.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/webapp-suite/elementwrap/internal/yaml"
)

//go:generate go run -tags configdocgen ../../cmd/config_doc_generate.go -input . -output ../../doc/config-schema.md

const (
	// DefaultPath is the configuration file read when no --config flag is
	// given.
	DefaultPath = "elementwrap.yaml"

	// DefaultLibrary is the npm package whose components are wrapped.
	DefaultLibrary = "@shoelace-style/shoelace"
)

var (
	errEmptyLibrary = errors.New("library must not be empty")
	errEmptyOutput  = errors.New("output must not be empty")
	errBadQuote     = errors.New(`generator quote must be "'" or '"'`)
	errBadIndent    = errors.New("generator indent must be between 1 and 8")
)

// Config is the top-level configuration for a build.
type Config struct {
	// Library is the npm package that provides the custom elements, for
	// example "@shoelace-style/shoelace".
	Library string `yaml:"library" toml:"library"`

	// Package is the name of the generated npm package. Defaults to
	// "@scope/react" for a scoped library and "<library>-react" otherwise.
	Package string `yaml:"package,omitempty" toml:"package,omitempty"`

	// Metadata is where the component metadata is read from: a path, relative
	// to the output directory when not absolute, or an http(s) URL. Defaults
	// to the metadata.json file installed with Library.
	Metadata string `yaml:"metadata,omitempty" toml:"metadata,omitempty"`

	// Output is the build directory. It is removed and recreated on every
	// build.
	Output string `yaml:"output" toml:"output"`

	// Templates is the directory holding package.json and the static files
	// listed in Copy.
	Templates string `yaml:"templates,omitempty" toml:"templates,omitempty"`

	// Copy lists files copied verbatim from Templates into Output. A nil
	// list copies LICENSE.md and README.md; an empty list copies nothing.
	Copy yaml.StringSlice `yaml:"copy,omitempty" toml:"copy,omitempty"`

	// Generator controls the shape of the generated wrapper modules.
	Generator *Generator `yaml:"generator,omitempty" toml:"generator,omitempty"`

	// Tools maps a tool name (npm, npx) to the executable to run instead.
	Tools map[string]string `yaml:"tools,omitempty" toml:"tools,omitempty"`
}

// Generator holds the wrapper generator settings.
type Generator struct {
	// Prefix is stripped from each tag to form the component directory.
	Prefix string `yaml:"prefix,omitempty" toml:"prefix,omitempty"`

	// Extension of generated source files, without the dot.
	Extension string `yaml:"extension,omitempty" toml:"extension,omitempty"`

	RuntimeImport string `yaml:"runtime_import,omitempty" toml:"runtime_import,omitempty"`
	RuntimeName   string `yaml:"runtime_name,omitempty" toml:"runtime_name,omitempty"`
	HelperImport  string `yaml:"helper_import,omitempty" toml:"helper_import,omitempty"`
	HelperName    string `yaml:"helper_name,omitempty" toml:"helper_name,omitempty"`

	// ImportRoot is prepended to each component's import path. Defaults to
	// "<library>/dist".
	ImportRoot string `yaml:"import_root,omitempty" toml:"import_root,omitempty"`

	// Quote is the quote character for string literals.
	Quote string `yaml:"quote,omitempty" toml:"quote,omitempty"`

	// Indent is the number of spaces per indentation level.
	Indent int `yaml:"indent,omitempty" toml:"indent,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills every unset field with its default value.
func (c *Config) SetDefaults() {
	if c.Library == "" {
		c.Library = DefaultLibrary
	}
	if c.Package == "" {
		c.Package = defaultPackage(c.Library)
	}
	if c.Output == "" {
		c.Output = "build"
	}
	if c.Templates == "" {
		c.Templates = "templates"
	}
	if c.Copy == nil {
		c.Copy = yaml.StringSlice{"LICENSE.md", "README.md"}
	}
	if c.Metadata == "" {
		c.Metadata = filepath.Join("node_modules", c.Library, "dist", "metadata.json")
	}
	if c.Generator == nil {
		c.Generator = &Generator{}
	}
	g := c.Generator
	if g.Prefix == "" {
		g.Prefix = "sl-"
	}
	if g.Extension == "" {
		g.Extension = "ts"
	}
	if g.RuntimeImport == "" {
		g.RuntimeImport = "react"
	}
	if g.RuntimeName == "" {
		g.RuntimeName = "React"
	}
	if g.HelperImport == "" {
		g.HelperImport = "@lit-labs/react"
	}
	if g.HelperName == "" {
		g.HelperName = "createComponent"
	}
	if g.ImportRoot == "" {
		g.ImportRoot = c.Library + "/dist"
	}
	if g.Quote == "" {
		g.Quote = "'"
	}
	if g.Indent == 0 {
		g.Indent = 2
	}
}

func defaultPackage(library string) string {
	if scope, _, ok := strings.Cut(library, "/"); ok && strings.HasPrefix(scope, "@") {
		return scope + "/react"
	}
	return library + "-react"
}

// Validate reports the first problem found in a configuration that has had
// its defaults applied.
func (c *Config) Validate() error {
	if c.Library == "" {
		return errEmptyLibrary
	}
	if c.Output == "" {
		return errEmptyOutput
	}
	if c.Generator != nil {
		if q := c.Generator.Quote; q != "'" && q != `"` {
			return fmt.Errorf("%w: got %q", errBadQuote, q)
		}
		if i := c.Generator.Indent; i < 1 || i > 8 {
			return fmt.Errorf("%w: got %d", errBadIndent, i)
		}
	}
	return nil
}

// Read loads a configuration file, choosing the decoder from its extension.
// Defaults are not applied.
func Read(path string) (*Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var cfg Config
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return &cfg, nil
	default:
		cfg, err := yaml.Read[Config](path)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return cfg, nil
	}
}

// Load reads the configuration at path, applies defaults and validates it.
// A missing file at the default path is not an error: the defaults are used.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
		cfg = &Config{}
	case err != nil:
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return cfg, nil
}

// Write saves cfg to path, choosing the encoder from its extension.
func Write(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	default:
		return yaml.Write(path, cfg, "elementwrap configuration.", "See `elementwrap build --help` for the flags that override these values.")
	}
}
