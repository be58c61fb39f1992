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

// Package command provides helpers to execute external commands with logging.
package command

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Run executes a program (with arguments) in dir and captures any error
// output. An empty dir runs the program in the current working directory.
func Run(ctx context.Context, dir, command string, arg ...string) error {
	cmd := exec.CommandContext(ctx, command, arg...)
	cmd.Dir = dir
	slog.Debug("running command", "dir", dir, "cmd", cmd.String())
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%v: %v\n%s", cmd, err, output)
	}
	return nil
}

// Output executes a program (with arguments) in dir and returns its standard
// output with surrounding whitespace trimmed.
func Output(ctx context.Context, dir, command string, arg ...string) (string, error) {
	cmd := exec.CommandContext(ctx, command, arg...)
	cmd.Dir = dir
	slog.Debug("running command", "dir", dir, "cmd", cmd.String())
	output, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("%v: %v\n%s", cmd, err, ee.Stderr)
		}
		return "", fmt.Errorf("%v: %w", cmd, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// GetExecutablePath finds the path for a given command, checking for an
// override in the provided commandOverrides map first.
func GetExecutablePath(commandOverrides map[string]string, commandName string) string {
	if exe, ok := commandOverrides[commandName]; ok {
		return exe
	}
	return commandName
}
