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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/webapp-suite/elementwrap/internal/yaml"
)

func TestDefault(t *testing.T) {
	want := &Config{
		Library:   "@shoelace-style/shoelace",
		Package:   "@shoelace-style/react",
		Metadata:  filepath.Join("node_modules", "@shoelace-style/shoelace", "dist", "metadata.json"),
		Output:    "build",
		Templates: "templates",
		Copy:      yaml.StringSlice{"LICENSE.md", "README.md"},
		Generator: &Generator{
			Prefix:        "sl-",
			Extension:     "ts",
			RuntimeImport: "react",
			RuntimeName:   "React",
			HelperImport:  "@lit-labs/react",
			HelperName:    "createComponent",
			ImportRoot:    "@shoelace-style/shoelace/dist",
			Quote:         "'",
			Indent:        2,
		},
	}
	if diff := cmp.Diff(want, Default()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSetDefaultsKeepsValues(t *testing.T) {
	cfg := &Config{
		Library: "@webapp-suite/shoelace",
		Copy:    yaml.StringSlice{},
		Generator: &Generator{
			Prefix: "ui5-",
			Quote:  `"`,
		},
	}
	cfg.SetDefaults()
	if cfg.Library != "@webapp-suite/shoelace" {
		t.Errorf("Library = %q, want %q", cfg.Library, "@webapp-suite/shoelace")
	}
	if len(cfg.Copy) != 0 || cfg.Copy == nil {
		t.Errorf("Copy = %#v, want empty non-nil slice", cfg.Copy)
	}
	if cfg.Generator.Prefix != "ui5-" {
		t.Errorf("Prefix = %q, want %q", cfg.Generator.Prefix, "ui5-")
	}
	if cfg.Generator.Quote != `"` {
		t.Errorf("Quote = %q, want %q", cfg.Generator.Quote, `"`)
	}
	if got, want := cfg.Generator.ImportRoot, "@webapp-suite/shoelace/dist"; got != want {
		t.Errorf("ImportRoot = %q, want %q", got, want)
	}
}

func TestDefaultPackage(t *testing.T) {
	for _, test := range []struct {
		library, want string
	}{
		{library: "@shoelace-style/shoelace", want: "@shoelace-style/react"},
		{library: "@webapp-suite/shoelace", want: "@webapp-suite/react"},
		{library: "wired-elements", want: "wired-elements-react"},
	} {
		t.Run(test.library, func(t *testing.T) {
			if got := defaultPackage(test.library); got != test.want {
				t.Errorf("defaultPackage(%q) = %q, want %q", test.library, got, test.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{
			name:   "defaults",
			config: Default(),
		},
		{
			name:    "empty library",
			config:  &Config{Output: "build"},
			wantErr: errEmptyLibrary,
		},
		{
			name:    "empty output",
			config:  &Config{Library: "x"},
			wantErr: errEmptyOutput,
		},
		{
			name:    "bad quote",
			config:  &Config{Library: "x", Output: "build", Generator: &Generator{Quote: "`", Indent: 2}},
			wantErr: errBadQuote,
		},
		{
			name:    "bad indent",
			config:  &Config{Library: "x", Output: "build", Generator: &Generator{Quote: "'", Indent: 12}},
			wantErr: errBadIndent,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			err := test.config.Validate()
			if test.wantErr == nil {
				if err != nil {
					t.Fatal(err)
				}
				return
			}
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestWriteRead(t *testing.T) {
	for _, name := range []string{"elementwrap.yaml", "elementwrap.toml"} {
		t.Run(name, func(t *testing.T) {
			want := Default()
			want.Tools = map[string]string{"npm": "/usr/local/bin/npm"}
			path := filepath.Join(t.TempDir(), name)
			if err := Write(path, want); err != nil {
				t.Fatal(err)
			}
			got, err := Read(path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "elementwrap.toml")
	content := `library = "@webapp-suite/shoelace"
output = "out"

[generator]
prefix = "sl-"
extension = "tsx"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Library:   "@webapp-suite/shoelace",
		Output:    "out",
		Generator: &Generator{Prefix: "sl-", Extension: "tsx"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(DefaultPath)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadError(t *testing.T) {
	dir := t.TempDir()
	for _, test := range []struct {
		name    string
		path    string
		content string
	}{
		{
			name: "missing explicit file",
			path: filepath.Join(dir, "missing.yaml"),
		},
		{
			name:    "malformed yaml",
			path:    filepath.Join(dir, "bad.yaml"),
			content: "library: [unterminated",
		},
		{
			name:    "malformed toml",
			path:    filepath.Join(dir, "bad.toml"),
			content: "library = ",
		},
		{
			name:    "invalid values",
			path:    filepath.Join(dir, "invalid.yaml"),
			content: "generator:\n  quote: x\n",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			if test.content != "" {
				if err := os.WriteFile(test.path, []byte(test.content), 0644); err != nil {
					t.Fatal(err)
				}
			}
			if _, err := Load(test.path); err == nil {
				t.Errorf("Load(%q) = nil, want error", test.path)
			}
		})
	}
}
