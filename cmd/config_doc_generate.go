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

//go:build configdocgen

// config_doc_generate writes the Markdown schema of elementwrap.yaml from the
// structs, struct tags and doc comments of internal/config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"
)

var (
	inputDir   = flag.String("input", "internal/config", "Input directory containing config structs")
	outputFile = flag.String("output", "doc/config-schema.md", "Output file for documentation")
	rootStruct = flag.String("root", "Config", "The name of the root struct to start documentation from")
	title      = flag.String("title", "elementwrap.yaml", "The title of the generated Markdown page")
)

// anchorSuffix is appended to a lower case struct name to form the anchor of
// its section.
const anchorSuffix = "-configuration"

var docTemplate = template.Must(template.New("doc").Parse(`# {{.Title}} Schema

This document describes the schema for {{.Title}}. The same keys are used in
elementwrap.toml.
{{range .Structs}}
## {{.Name}} Configuration

{{if .SourceLink}}[Link to code]({{.SourceLink}})
{{end}}{{if .Doc}}{{.Doc}}
{{end}}| YAML | TOML | Type | Description |
| :--- | :--- | :--- | :--- |
{{range .Fields}}| {{.YAML}} | {{.TOML}} | {{.Type}} | {{.Description}} |
{{end}}{{end}}`))

type pageData struct {
	Title   string
	Structs []*structData
}

type structData struct {
	Name       string
	SourceLink string
	Doc        string
	Fields     []*fieldData
}

type fieldData struct {
	YAML        string
	TOML        string
	Type        string
	Description string
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() (err error) {
	pkg, err := loadPackage(*inputDir)
	if err != nil {
		return fmt.Errorf("loading package: %w", err)
	}
	page, err := newPageData(pkg, *rootStruct, *title)
	if err != nil {
		return fmt.Errorf("inspecting package syntax: %w", err)
	}
	output, err := os.Create(*outputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		cerr := output.Close()
		if err == nil {
			err = cerr
		}
	}()
	return generate(output, page)
}

// loadPackage loads the Go package in dir with its syntax trees.
func loadPackage(dir string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedName | packages.NeedFiles | packages.NeedModule,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found in %s", dir)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		errs := make([]error, 0, len(pkg.Errors))
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
		return nil, errors.Join(errs...)
	}
	return pkg, nil
}

// newPageData collects every struct of pkg. The root struct comes first,
// followed by the others in source order.
func newPageData(pkg *packages.Package, root, title string) (*pageData, error) {
	moduleRoot := "."
	if pkg.Module != nil {
		moduleRoot = pkg.Module.Dir
	}
	known := map[string]bool{}
	var structs []*structData
	var specs []*ast.StructType
	for _, file := range pkg.Syntax {
		fileName := pkg.Fset.File(file.Pos()).Name()
		relPath, err := filepath.Rel(moduleRoot, fileName)
		if err != nil {
			return nil, err
		}
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				st, ok := ts.Type.(*ast.StructType)
				if !ok || !ts.Name.IsExported() {
					continue
				}
				doc := ts.Doc
				if doc == nil {
					doc = gd.Doc
				}
				sd := &structData{
					Name:       ts.Name.Name,
					SourceLink: fmt.Sprintf("../%s#L%d", filepath.ToSlash(relPath), pkg.Fset.Position(ts.Pos()).Line),
					Doc:        cleanDoc(doc.Text()),
				}
				known[sd.Name] = true
				structs = append(structs, sd)
				specs = append(specs, st)
			}
		}
	}
	for i, sd := range structs {
		sd.Fields = fields(specs[i], known)
	}
	for i, sd := range structs {
		if sd.Name == root && i > 0 {
			structs = append([]*structData{sd}, append(structs[:i:i], structs[i+1:]...)...)
			break
		}
	}
	return &pageData{Title: title, Structs: structs}, nil
}

func fields(st *ast.StructType, known map[string]bool) []*fieldData {
	var out []*fieldData
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 || !field.Names[0].IsExported() {
			continue
		}
		yamlName := tagName(field, "yaml")
		if yamlName == "-" {
			continue
		}
		out = append(out, &fieldData{
			YAML:        fmt.Sprintf("`%s`", yamlName),
			TOML:        fmt.Sprintf("`%s`", tagName(field, "toml")),
			Type:        formatType(typeName(field.Type), known),
			Description: cleanDoc(field.Doc.Text()),
		})
	}
	return out
}

// tagName returns the name given to field by the struct tag key, or the Go
// field name when the tag is missing.
func tagName(field *ast.Field, key string) string {
	if field.Tag != nil {
		tag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
		if val := tag.Get(key); val != "" {
			return strings.Split(val, ",")[0]
		}
	}
	if len(field.Names) > 0 {
		return field.Names[0].Name
	}
	return ""
}

func typeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + typeName(t.X)
	case *ast.ArrayType:
		return "[]" + typeName(t.Elt)
	case *ast.MapType:
		return fmt.Sprintf("map[%s]%s", typeName(t.Key), typeName(t.Value))
	case *ast.SelectorExpr:
		return fmt.Sprintf("%s.%s", typeName(t.X), t.Sel.Name)
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// formatType renders a Go type for the schema table. Structs of the package
// link to their section; selector types such as yaml.StringSlice are shown
// by their YAML shape.
func formatType(name string, known map[string]bool) string {
	if name == "yaml.StringSlice" {
		return "list of string"
	}
	isSlice := strings.HasPrefix(name, "[]")
	name = strings.TrimPrefix(name, "[]")
	isPointer := strings.HasPrefix(name, "*")
	name = strings.TrimPrefix(name, "*")
	res := name
	if known[name] {
		res = fmt.Sprintf("[%s](#%s%s)", name, strings.ToLower(name), anchorSuffix)
	}
	if isPointer {
		res += " (optional)"
	}
	if isSlice {
		res = "list of " + res
	}
	return res
}

func cleanDoc(doc string) string {
	return strings.Join(strings.Fields(doc), " ")
}

func generate(w io.Writer, page *pageData) error {
	return docTemplate.Execute(w, page)
}
