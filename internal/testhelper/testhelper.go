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

// Package testhelper provides helper functions for tests.
// These are used across packages
package testhelper

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RequireCommand skips the test if the specified command is not found in PATH.
// Use this to skip tests that depend on external tools like npm or sh, so
// that `go test ./...` will always pass on a fresh clone of the repo.
func RequireCommand(t *testing.T, cmd string) {
	t.Helper()
	if _, err := exec.LookPath(cmd); err != nil {
		t.Skipf("skipping test because %s is not installed", cmd)
	}
}

// Tool is a fake executable that stands in for npm or npx in tests.
type Tool struct {
	// Path is the executable to configure in place of the real tool.
	Path string

	log string
}

// FakeTool writes a shell script named name into a temporary directory. Each
// invocation records its arguments and prints stdout. The test is skipped
// when sh is not available.
func FakeTool(t *testing.T, name, stdout string) *Tool {
	t.Helper()
	return FakeToolScript(t, name, "printf '%s\\n' "+ShellQuote(stdout))
}

// FakeToolScript is like FakeTool, but runs body after recording the
// arguments. body runs in the directory the tool was invoked in and sees
// the arguments as "$@".
func FakeToolScript(t *testing.T, name, body string) *Tool {
	t.Helper()
	RequireCommand(t, "sh")
	dir := t.TempDir()
	tool := &Tool{
		Path: filepath.Join(dir, name),
		log:  filepath.Join(dir, name+".log"),
	}
	script := fmt.Sprintf("#!/bin/sh\necho \"$*\" >> %s\n%s\n", ShellQuote(tool.log), body)
	if err := os.WriteFile(tool.Path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return tool
}

// Calls returns the arguments of every invocation of the tool, one string
// per call, in order.
func (tool *Tool) Calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(tool.log)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// ShellQuote quotes s as a single sh word.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
