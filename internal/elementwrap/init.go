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

package elementwrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/webapp-suite/elementwrap/internal/config"
)

var errConfigExists = errors.New("configuration file already exists")

func initCommand() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "write a default configuration file",
		UsageText: "elementwrap init [path] [--force]",
		Description: `Init writes the default configuration to path, or to elementwrap.yaml when
no path is given. A path ending in .toml is written as TOML.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "overwrite an existing configuration file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				path = config.DefaultPath
			}
			return runInit(path, cmd.Bool("force"))
		},
	}
}

func runInit(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", errConfigExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if err := config.Write(path, config.Default()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("✓ Wrote %s\n", path)
	return nil
}
