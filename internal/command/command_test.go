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

package command

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	requireCommand(t, "sh")
	dir := t.TempDir()
	if err := Run(t.Context(), dir, "sh", "-c", "echo hello > out.txt"); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("hello\n", string(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRunError(t *testing.T) {
	requireCommand(t, "sh")
	err := Run(t.Context(), "", "sh", "-c", "echo invalid-subcommand-bad-bad-bad >&2; exit 3")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid-subcommand-bad-bad-bad") {
		t.Errorf("error should include the command output, got: %v", err)
	}
}

func TestOutput(t *testing.T) {
	requireCommand(t, "sh")
	got, err := Output(t.Context(), "", "sh", "-c", "echo '  2.20.1  '")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("2.20.1", got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestOutputError(t *testing.T) {
	requireCommand(t, "sh")
	_, err := Output(t.Context(), "", "sh", "-c", "echo not-found >&2; exit 1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "not-found") {
		t.Errorf("error should include stderr, got: %v", err)
	}
}

func TestGetExecutablePath(t *testing.T) {
	tests := []struct {
		name           string
		overrides      map[string]string
		executableName string
		want           string
	}{
		{
			name: "override found",
			overrides: map[string]string{
				"npm": "/usr/local/bin/npm",
				"npx": "/usr/local/bin/npx",
			},
			executableName: "npm",
			want:           "/usr/local/bin/npm",
		},
		{
			name: "override not found",
			overrides: map[string]string{
				"npx": "/usr/local/bin/npx",
			},
			executableName: "npm",
			want:           "npm",
		},
		{
			name:           "no overrides",
			executableName: "npm",
			want:           "npm",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := GetExecutablePath(test.overrides, test.executableName)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func requireCommand(t *testing.T, cmd string) {
	t.Helper()
	if _, err := exec.LookPath(cmd); err != nil {
		t.Skipf("skipping test because %s is not installed", cmd)
	}
}
