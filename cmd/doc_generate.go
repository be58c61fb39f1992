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

//go:build docgen

// doc_generate writes the doc.go of a command from the --help output of the
// command and each of its subcommands.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
)

const (
	elementwrapDesc = `Elementwrap wraps the custom elements of a web component library as React
components and packages them for npm.

Usage:

	elementwrap <command> [arguments]
`

	docTemplate = `// Copyright {{.Year}} Google LLC
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

//go:generate go run -tags docgen ../doc_generate.go -cmd .

/*
{{.Description}}
The commands are:
{{range .Commands}}
# {{.Name}}

{{.HelpText}}{{end}}*/
package main
`
)

// commandDoc holds the documentation for a single CLI command.
type commandDoc struct {
	Name     string
	HelpText string
}

var (
	descriptions = map[string]string{
		"elementwrap": elementwrapDesc,
	}

	years = map[string]string{
		"elementwrap": "2026",
	}

	cmdPath = flag.String("cmd", "", "Path to the command to generate docs for (e.g., ../../cmd/elementwrap)")
)

func main() {
	flag.Parse()
	if *cmdPath == "" {
		log.Fatal("must specify -cmd flag")
	}
	if err := run(*cmdPath); err != nil {
		log.Fatal(err)
	}
}

func run(cmdPath string) error {
	pkgPath, err := filepath.Abs(cmdPath)
	if err != nil {
		return fmt.Errorf("could not find path: %w", err)
	}
	name := filepath.Base(pkgPath)
	desc, ok := descriptions[name]
	if !ok {
		return fmt.Errorf("cannot find description for command: %s", pkgPath)
	}
	year, ok := years[name]
	if !ok {
		return fmt.Errorf("cannot find year for command: %s", pkgPath)
	}

	rootHelp, err := helpText(cmdPath)
	if err != nil {
		return err
	}
	names, err := extractCommandNames(rootHelp)
	if err != nil {
		return err
	}
	var commands []commandDoc
	for _, n := range names {
		help, err := helpText(cmdPath, n)
		if err != nil {
			return fmt.Errorf("getting help text for command %s: %w", n, err)
		}
		commands = append(commands, commandDoc{
			Name:     sanitize(n),
			HelpText: indent(sanitize(help)),
		})
	}

	var buf bytes.Buffer
	tmpl := template.Must(template.New("doc").Parse(docTemplate))
	if err := tmpl.Execute(&buf, struct {
		Year        string
		Description string
		Commands    []commandDoc
	}{
		Year:        year,
		Description: sanitize(desc),
		Commands:    commands,
	}); err != nil {
		return fmt.Errorf("could not execute template: %w", err)
	}
	return os.WriteFile(filepath.Join(cmdPath, "doc.go"), buf.Bytes(), 0644)
}

func sanitize(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}

// indent prefixes the body of every help section with a tab so that godoc
// renders it as preformatted text. Section headers are left as they are.
func indent(help string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(help, "\n"), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasSuffix(line, ":") && strings.ToUpper(line) == line:
			b.WriteString(line)
		default:
			b.WriteString("\t" + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// helpText runs the command with --help and returns what it printed.
func helpText(cmdPath string, args ...string) (string, error) {
	goArgs := append([]string{"run", cmdPath}, args...)
	goArgs = append(goArgs, "--help")
	cmd := exec.Command("go", goArgs...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil && out.Len() == 0 {
		return "", fmt.Errorf("go %s failed with %w", strings.Join(goArgs, " "), err)
	}
	return out.String(), nil
}

func extractCommandNames(helpText string) ([]string, error) {
	const header = "COMMANDS:\n"
	start := strings.Index(helpText, header)
	if start == -1 {
		return nil, errors.New("could not find commands header")
	}
	block := helpText[start+len(header):]
	if end := strings.Index(block, "\n\n"); end != -1 {
		block = block[:end]
	}
	var names []string
	for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		// urfave/cli lists aliases as "help, h".
		name := strings.TrimSuffix(fields[0], ",")
		if name == "help" || name == "h" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
