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

// Package render parses and renders the mustache templates used for
// generated files.
//
// Templates may start with a license header wrapped in a {{! ... }} comment.
// The header and the line break after it are removed before parsing so that
// generated files start with their first line of content.
package render

import (
	"fmt"
	"strings"

	"github.com/cbroglie/mustache"
)

// Parse strips the license header from src and parses it.
func Parse(name, src string) (*mustache.Template, error) {
	tmpl, err := mustache.ParseString(StripLicense(src))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return tmpl, nil
}

// String parses src and renders it with values.
func String(name, src string, values any) (string, error) {
	tmpl, err := Parse(name, src)
	if err != nil {
		return "", err
	}
	out, err := tmpl.Render(values)
	if err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return out, nil
}

// StripLicense removes a leading {{! ... }} comment and the line break that
// follows it.
func StripLicense(src string) string {
	if !strings.HasPrefix(src, "{{!") {
		return src
	}
	end := strings.Index(src, "}}")
	if end == -1 {
		return src
	}
	return strings.TrimPrefix(src[end+len("}}"):], "\n")
}
