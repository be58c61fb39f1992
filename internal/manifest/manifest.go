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

// Package manifest writes the npm package files that surround the generated
// sources: package.json, tsconfig.json and static files such as LICENSE.md.
package manifest

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/webapp-suite/elementwrap/internal/render"
)

const (
	// PackageJSON is the npm manifest file name.
	PackageJSON = "package.json"

	// TSConfig is the TypeScript compiler configuration file name.
	TSConfig = "tsconfig.json"

	// legacyVersion is the placeholder used by plain (non-mustache)
	// package.json templates.
	legacyVersion = "%VERSION%"
)

var (
	//go:embed templates/package.json.mustache
	defaultPackageJSON string

	//go:embed templates/tsconfig.json.mustache
	defaultTSConfig string
)

// Values are substituted into package.json.
type Values struct {
	// Package is the name of the generated npm package.
	Package string

	// Version is the version of the generated npm package.
	Version string

	// Library is the npm package that provides the custom elements.
	Library string

	// LibraryVersion is the version of Library the package depends on.
	LibraryVersion string
}

func (v *Values) context() map[string]string {
	return map[string]string{
		"Package":        jsonString(v.Package),
		"Version":        jsonString(v.Version),
		"Library":        jsonString(v.Library),
		"LibraryVersion": jsonString(v.LibraryVersion),
	}
}

// jsonString escapes s for use inside a JSON string literal.
func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b[1 : len(b)-1])
}

// Render renders a package.json template. Both mustache variables and the
// %VERSION% placeholder are substituted.
func Render(name, src string, v *Values) ([]byte, error) {
	src = strings.ReplaceAll(src, legacyVersion, "{{{Version}}}")
	out, err := render.String(name, src, v.context())
	if err != nil {
		return nil, err
	}
	if !json.Valid([]byte(out)) {
		return nil, fmt.Errorf("template %s did not render valid JSON", name)
	}
	return []byte(out), nil
}

// WritePackageJSON renders package.json into dir, using templateDir's
// package.json when it exists and the built-in template otherwise.
func WritePackageJSON(dir, templateDir string, v *Values) error {
	name, src, err := template(templateDir, PackageJSON, defaultPackageJSON)
	if err != nil {
		return err
	}
	data, err := Render(name, src, v)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, PackageJSON), data, 0644)
}

// Write renders package.json and tsconfig.json into dir and copies the
// listed static files from templateDir. A missing templateDir is allowed:
// the built-in templates are used and nothing is copied.
func Write(dir, templateDir string, files []string, v *Values) error {
	if err := WritePackageJSON(dir, templateDir, v); err != nil {
		return err
	}
	name, src, err := template(templateDir, TSConfig, defaultTSConfig)
	if err != nil {
		return err
	}
	tsconfig, err := render.String(name, src, v.context())
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, TSConfig), []byte(tsconfig), 0644); err != nil {
		return err
	}
	if !isDir(templateDir) {
		slog.Debug("template directory not found, skipping static files", "dir", templateDir)
		return nil
	}
	for _, f := range files {
		if err := copyFile(filepath.Join(templateDir, f), filepath.Join(dir, f)); err != nil {
			return err
		}
	}
	return nil
}

// template returns the contents of templateDir/file, or fallback when that
// file does not exist.
func template(templateDir, file, fallback string) (string, string, error) {
	if templateDir == "" {
		return file, fallback, nil
	}
	path := filepath.Join(templateDir, file)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return file, fallback, nil
	}
	if err != nil {
		return "", "", err
	}
	return path, string(data), nil
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("copying %s: %w", filepath.Base(src), err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
