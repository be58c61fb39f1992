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

// Package wrapper generates framework component wrappers for custom elements.
//
// Each component becomes one module at <identifier>/index.<ext>, where the
// identifier is the tag with the library prefix removed. The module default
// exports the result of the helper (createComponent from @lit-labs/react by
// default) applied to the runtime, the tag, the element class and a map from
// callback prop names to the custom events they listen for. An index module
// re-exports every wrapper under its export name.
//
// Generation is split in two steps. [NewPlan] is pure: it validates the whole
// component list and renders every file in memory. [Write] puts a plan on
// disk. Nothing is written when any component is invalid.
package wrapper

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"github.com/webapp-suite/elementwrap/internal/metadata"
	"github.com/webapp-suite/elementwrap/internal/render"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrMissingTag is returned for a component without a tag.
	ErrMissingTag = errors.New("component is missing a tag")

	// ErrInvalidTag is returned when a tag does not produce a usable
	// directory name once the prefix is removed.
	ErrInvalidTag = errors.New("invalid component tag")

	// ErrInvalidName is returned when an export name is not a valid
	// identifier.
	ErrInvalidName = errors.New("invalid export name")

	// ErrDuplicateTag is returned when two components map to the same
	// output directory.
	ErrDuplicateTag = errors.New("duplicate component identifier")

	// ErrDuplicateExport is returned when two components share an export
	// name.
	ErrDuplicateExport = errors.New("duplicate export name")

	// ErrInvalidEvent is returned for an event name that yields no prop.
	ErrInvalidEvent = errors.New("invalid event name")

	// ErrPropCollision is returned when two events of one component map to
	// the same callback prop.
	ErrPropCollision = errors.New("event prop name collision")
)

//go:embed templates/module.mustache
var moduleTemplate string

var (
	nonAlphanumeric = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	jsIdentifier    = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

	// elementIdentifier is the part of a custom element name that is used as
	// a directory name: lower case letters, digits, '.', '_' and '-',
	// starting with a letter or digit.
	elementIdentifier = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)
)

// Options control the generated source. All fields are required; callers
// normally build them from the generator section of the configuration.
type Options struct {
	// Prefix is removed from the start of each tag to form the identifier.
	Prefix string

	// Extension is the file extension of generated modules, without a dot.
	Extension string

	RuntimeImport string
	RuntimeName   string
	HelperImport  string
	HelperName    string

	// ImportRoot is joined with each component's import path.
	ImportRoot string

	// Quote is the quote character for string literals, ' or ".
	Quote rune

	// Indent is the number of spaces used to indent the event map entries.
	Indent int
}

// File is a generated file.
type File struct {
	// Path is relative to the output root and uses forward slashes.
	Path    string
	Content []byte
}

// Export records one wrapper listed in the index.
type Export struct {
	Tag        string
	Identifier string
	Name       string
}

// Plan is the complete output of a generation run.
type Plan struct {
	// Modules holds one file per component, in input order.
	Modules []*File

	// Exports holds one entry per component, in input order.
	Exports []*Export

	// Index is the aggregate module re-exporting every wrapper.
	Index *File
}

// Prop is one entry of a component's event map.
type Prop struct {
	// Key is the callback prop name, such as "onSlChange".
	Key string

	// Event is the custom event name, such as "sl-change".
	Event string
}

// PascalCase splits s on non-alphanumeric characters, uppercases the first
// letter of each segment and concatenates them. The rest of each segment is
// kept as is, so "item-selected" becomes "ItemSelected" and "focus" becomes
// "Focus".
func PascalCase(s string) string {
	var b strings.Builder
	for _, segment := range nonAlphanumeric.Split(s, -1) {
		if segment == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(segment)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(segment[size:])
	}
	return b.String()
}

// PropKey returns the callback prop name for a custom event.
func PropKey(event string) string {
	return "on" + PascalCase(event)
}

// Props maps events to callback props, keeping the event order. It fails if
// two events produce the same prop.
func Props(events []*metadata.Event) ([]*Prop, error) {
	seen := map[string]string{}
	var props []*Prop
	for _, e := range events {
		key := PropKey(e.Name)
		if key == "on" {
			return nil, fmt.Errorf("%w: %q has no alphanumeric characters", ErrInvalidEvent, e.Name)
		}
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: events %q and %q both map to %s", ErrPropCollision, prev, e.Name, key)
		}
		seen[key] = e.Name
		props = append(props, &Prop{Key: key, Event: e.Name})
	}
	return props, nil
}

// Identifier returns the directory name for a tag: the tag without prefix.
// A tag that does not carry the prefix is used whole.
func Identifier(tag, prefix string) string {
	return strings.TrimPrefix(tag, prefix)
}

// ExportName returns the name a component is exported under in the index.
func ExportName(c *metadata.Component, prefix string) string {
	if c.Name != "" {
		return c.Name
	}
	return strcase.ToCamel(Identifier(c.Tag, prefix))
}

// importPath returns the module specifier of the element implementation.
func importPath(c *metadata.Component, id, root string) string {
	p := c.ImportPath
	if p == "" {
		p = path.Join("components", id, id+".js")
	}
	if root == "" {
		return p
	}
	return strings.TrimSuffix(root, "/") + "/" + strings.TrimPrefix(p, "/")
}

type component struct {
	in     *metadata.Component
	export *Export
	props  []*Prop
}

// validate checks every component before anything is rendered, so a single
// bad entry fails the whole run.
func validate(components []*metadata.Component, opts *Options) ([]*component, error) {
	ids := map[string]string{}
	names := map[string]string{}
	var out []*component
	for i, c := range components {
		if c == nil || c.Tag == "" {
			return nil, fmt.Errorf("%w: component %d", ErrMissingTag, i)
		}
		id := Identifier(c.Tag, opts.Prefix)
		if !elementIdentifier.MatchString(id) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTag, c.Tag)
		}
		if prev, ok := ids[id]; ok {
			return nil, fmt.Errorf("%w: %q and %q both map to %s", ErrDuplicateTag, prev, c.Tag, id)
		}
		ids[id] = c.Tag
		name := ExportName(c, opts.Prefix)
		if !jsIdentifier.MatchString(name) {
			return nil, fmt.Errorf("%w: %q for <%s>", ErrInvalidName, name, c.Tag)
		}
		if prev, ok := names[name]; ok {
			return nil, fmt.Errorf("%w: <%s> and <%s> are both exported as %s", ErrDuplicateExport, prev, c.Tag, name)
		}
		names[name] = c.Tag
		props, err := Props(c.Events)
		if err != nil {
			return nil, fmt.Errorf("<%s>: %w", c.Tag, err)
		}
		out = append(out, &component{
			in:     c,
			export: &Export{Tag: c.Tag, Identifier: id, Name: name},
			props:  props,
		})
	}
	return out, nil
}

// NewPlan validates components and renders every module and the index.
// Independent components are rendered concurrently; the plan keeps the input
// order.
func NewPlan(ctx context.Context, components []*metadata.Component, opts *Options) (*Plan, error) {
	if opts.Quote != '\'' && opts.Quote != '"' {
		return nil, fmt.Errorf("unsupported quote character %q", opts.Quote)
	}
	valid, err := validate(components, opts)
	if err != nil {
		return nil, err
	}
	tmpl, err := render.Parse("module", moduleTemplate)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Modules: make([]*File, len(valid)),
		Exports: make([]*Export, len(valid)),
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, c := range valid {
		plan.Exports[i] = c.export
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := tmpl.Render(moduleValues(c, opts))
			if err != nil {
				return fmt.Errorf("rendering <%s>: %w", c.in.Tag, err)
			}
			plan.Modules[i] = &File{
				Path:    c.export.Identifier + "/index." + opts.Extension,
				Content: []byte(content),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	plan.Index = &File{
		Path:    "index." + opts.Extension,
		Content: renderIndex(plan.Exports, opts),
	}
	return plan, nil
}

func moduleValues(c *component, opts *Options) map[string]string {
	q := opts.Quote
	return map[string]string{
		"RuntimeName":     opts.RuntimeName,
		"RuntimeImport":   quote(opts.RuntimeImport, q),
		"HelperName":      opts.HelperName,
		"HelperImport":    quote(opts.HelperImport, q),
		"ComponentImport": quote(importPath(c.in, c.export.Identifier, opts.ImportRoot), q),
		"Tag":             quote(c.in.Tag, q),
		"Events":          renderProps(c.props, opts),
	}
}

// renderProps formats the event map as an object literal. An empty map is
// "{}"; otherwise each entry is on its own line, in event order.
func renderProps(props []*Prop, opts *Options) string {
	if len(props) == 0 {
		return "{}"
	}
	indent := strings.Repeat(" ", opts.Indent)
	var b strings.Builder
	b.WriteString("{\n")
	for i, p := range props {
		b.WriteString(indent)
		b.WriteString(p.Key)
		b.WriteString(": ")
		b.WriteString(quote(p.Event, opts.Quote))
		if i < len(props)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

func renderIndex(exports []*Export, opts *Options) []byte {
	var b strings.Builder
	for _, e := range exports {
		fmt.Fprintf(&b, "export { default as %s } from %s;\n", e.Name, quote("./"+e.Identifier, opts.Quote))
	}
	return []byte(b.String())
}

// quote returns s as a JavaScript string literal delimited by q.
func quote(s string, q rune) string {
	var b strings.Builder
	b.WriteRune(q)
	for _, r := range s {
		switch r {
		case q, '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(q)
	return b.String()
}

// Write writes every module of the plan, then the index, below root. Files
// are overwritten. Directories are created as needed. Files already written
// are left in place when a later write fails.
func Write(root string, plan *Plan) error {
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	files := append(slices.Clip(plan.Modules), plan.Index)
	for _, f := range files {
		dst := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(dst, f.Content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}
	}
	return nil
}

// Generate plans and writes the wrappers for components below root.
func Generate(ctx context.Context, root string, components []*metadata.Component, opts *Options) (*Plan, error) {
	plan, err := NewPlan(ctx, components, opts)
	if err != nil {
		return nil, err
	}
	if err := Write(root, plan); err != nil {
		return nil, err
	}
	return plan, nil
}
