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

// Package metadata reads the component metadata published by a web component
// library and normalizes it into a list of component descriptors.
//
// Two formats are supported:
//
//   - The Shoelace metadata.json format, with top-level "version" and
//     "components" fields.
//   - The Custom Elements Manifest (custom-elements.json) format, where
//     components are the declarations marked "customElement" inside
//     "modules".
package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/webapp-suite/elementwrap/internal/fetch"
)

var (
	// ErrMalformed is returned when the metadata cannot be decoded, has
	// none of the expected top-level fields or lists an unnamed event.
	ErrMalformed = errors.New("malformed component metadata")

	// ErrMissingTag is returned when a component has no tag name.
	ErrMissingTag = errors.New("component is missing a tag")

	errUnnamedEvent = errors.New("event has no name")
)

// Metadata is the normalized content of a metadata document.
type Metadata struct {
	// Version is the version of the library that published the metadata.
	// It may be empty for manifests that do not record it.
	Version string

	// Components are listed in document order.
	Components []*Component
}

// Component describes one custom element.
type Component struct {
	// Tag is the registered custom element name, such as "sl-button".
	Tag string

	// Name is the exported class name, such as "SlButton". Optional.
	Name string

	// ImportPath locates the element implementation relative to the
	// library's import root. Empty when it should be derived from the tag.
	ImportPath string

	// Events are the custom events the element dispatches, in document
	// order.
	Events []*Event
}

// Event is a custom event dispatched by a component.
type Event struct {
	Name string
}

// Load reads metadata from source, which is either a local path or an
// http(s) URL.
func Load(ctx context.Context, source string) (*Metadata, error) {
	var (
		data []byte
		err  error
	)
	if fetch.IsURL(source) {
		data, err = fetch.Bytes(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("reading metadata from %s: %w", source, err)
	}
	md, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return md, nil
}

type document struct {
	Version    string             `json:"version"`
	Components []*shoelaceElement `json:"components"`
	Modules    []*manifestModule  `json:"modules"`
}

type shoelaceElement struct {
	Tag    *string      `json:"tag"`
	Name   string       `json:"name"`
	Events []*jsonEvent `json:"events"`
}

type manifestModule struct {
	Path         string                 `json:"path"`
	Declarations []*manifestDeclaration `json:"declarations"`
}

type manifestDeclaration struct {
	CustomElement bool         `json:"customElement"`
	TagName       *string      `json:"tagName"`
	Name          string       `json:"name"`
	Events        []*jsonEvent `json:"events"`
}

type jsonEvent struct {
	Name string `json:"name"`
}

// Parse decodes a metadata document in either supported format.
func Parse(data []byte) (*Metadata, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	switch {
	case doc.Components != nil:
		return fromShoelace(&doc)
	case doc.Modules != nil:
		return fromManifest(&doc)
	default:
		return nil, fmt.Errorf(`%w: expected a "components" or "modules" field`, ErrMalformed)
	}
}

func fromShoelace(doc *document) (*Metadata, error) {
	md := &Metadata{Version: doc.Version, Components: []*Component{}}
	for i, el := range doc.Components {
		if el == nil || el.Tag == nil || *el.Tag == "" {
			return nil, fmt.Errorf("%w: components[%d]", ErrMissingTag, i)
		}
		evs, err := events(el.Events)
		if err != nil {
			return nil, fmt.Errorf("%w: components[%d].%w", ErrMalformed, i, err)
		}
		md.Components = append(md.Components, &Component{
			Tag:    *el.Tag,
			Name:   el.Name,
			Events: evs,
		})
	}
	return md, nil
}

func fromManifest(doc *document) (*Metadata, error) {
	md := &Metadata{Version: doc.Version, Components: []*Component{}}
	for i, mod := range doc.Modules {
		if mod == nil {
			continue
		}
		for j, decl := range mod.Declarations {
			if decl == nil || !decl.CustomElement {
				continue
			}
			if decl.TagName == nil || *decl.TagName == "" {
				return nil, fmt.Errorf("%w: modules[%d].declarations[%d] (%s)", ErrMissingTag, i, j, decl.Name)
			}
			evs, err := events(decl.Events)
			if err != nil {
				return nil, fmt.Errorf("%w: modules[%d].declarations[%d].%w", ErrMalformed, i, j, err)
			}
			md.Components = append(md.Components, &Component{
				Tag:        *decl.TagName,
				Name:       decl.Name,
				ImportPath: modulePathToImport(mod.Path),
				Events:     evs,
			})
		}
	}
	return md, nil
}

// modulePathToImport maps a source module path such as
// "src/components/button/button.ts" to the import path of its build output,
// "components/button/button".
func modulePathToImport(path string) string {
	path = strings.TrimPrefix(path, "src/")
	return strings.TrimSuffix(path, ".ts")
}

// events converts the event list of one element. Every event must be named.
func events(in []*jsonEvent) ([]*Event, error) {
	var out []*Event
	for j, e := range in {
		if e == nil || e.Name == "" {
			return nil, fmt.Errorf("events[%d]: %w", j, errUnnamedEvent)
		}
		out = append(out, &Event{Name: e.Name})
	}
	return out, nil
}
