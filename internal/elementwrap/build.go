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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/webapp-suite/elementwrap/internal/command"
	"github.com/webapp-suite/elementwrap/internal/config"
	"github.com/webapp-suite/elementwrap/internal/fetch"
	"github.com/webapp-suite/elementwrap/internal/manifest"
	"github.com/webapp-suite/elementwrap/internal/metadata"
	"github.com/webapp-suite/elementwrap/internal/semver"
	"github.com/webapp-suite/elementwrap/internal/wrapper"
)

const (
	buildUsage = "elementwrap build --version X.Y.Z [--publish]"

	// latestVersion asks npm for the newest published version of the
	// library.
	latestVersion = "latest"

	// sourceDir is the directory below the build directory that receives the
	// generated wrappers.
	sourceDir = "src"
)

var (
	errMissingVersion = errors.New("the --version flag is required")
	errInvalidVersion = errors.New("invalid --version")
	errUnsafeOutput   = errors.New("refusing to clean output directory")
)

// buildOptions are the flags of the build command that are not part of the
// configuration file.
type buildOptions struct {
	version     string
	publish     bool
	skipInstall bool
	skipCompile bool
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "generate, compile and optionally publish the React wrappers",
		UsageText: buildUsage,
		Description: `Build wraps every custom element described by the library metadata as a
React component. The build directory is removed and recreated, package.json
and tsconfig.json are written, the library is installed with npm, wrappers are
generated below <out>/src and the result is compiled with tsc.

Use --version latest to build against the newest published library version.
With --publish the package is published to npm once the build succeeds.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "version",
				Usage: "library and package version (X.Y.Z or latest)",
			},
			&cli.BoolFlag{
				Name:  "publish",
				Usage: "publish the package to npm after building",
			},
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultPath,
				Usage: "path to elementwrap.yaml or elementwrap.toml",
			},
			&cli.StringFlag{
				Name:  "metadata",
				Usage: "metadata file or URL, overrides the configuration",
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "build directory, overrides the configuration",
			},
			&cli.StringFlag{
				Name:  "templates",
				Usage: "template directory, overrides the configuration",
			},
			&cli.BoolFlag{
				Name:  "skip-install",
				Usage: "do not run npm install",
			},
			&cli.BoolFlag{
				Name:  "skip-compile",
				Usage: "do not run tsc",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.String("version") == "" {
				return fmt.Errorf("%w\nusage: %s", errMissingVersion, buildUsage)
			}
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			if err := applyFlags(cfg, cmd); err != nil {
				return err
			}
			return build(ctx, cfg, &buildOptions{
				version:     cmd.String("version"),
				publish:     cmd.Bool("publish"),
				skipInstall: cmd.Bool("skip-install"),
				skipCompile: cmd.Bool("skip-compile"),
			})
		},
	}
}

// applyFlags overrides configuration values with the ones given on the
// command line. A local --metadata path is made absolute so that it is
// resolved against the working directory rather than the build directory.
func applyFlags(cfg *config.Config, cmd *cli.Command) error {
	if out := cmd.String("out"); out != "" {
		cfg.Output = out
	}
	if templates := cmd.String("templates"); templates != "" {
		cfg.Templates = templates
	}
	if src := cmd.String("metadata"); src != "" {
		if !fetch.IsURL(src) {
			abs, err := filepath.Abs(src)
			if err != nil {
				return err
			}
			src = abs
		}
		cfg.Metadata = src
	}
	return nil
}

func build(ctx context.Context, cfg *config.Config, opts *buildOptions) error {
	version, err := resolveVersion(ctx, cfg, opts.version)
	if err != nil {
		return err
	}
	dir, err := buildDir(cfg.Output)
	if err != nil {
		return err
	}
	fmt.Printf("Preparing to wrap %s %s as %s\n", cfg.Library, version, cfg.Package)
	if opts.publish {
		fmt.Println("The --publish flag was used, the package will be published to npm after building.")
	}

	// Metadata that does not come from the installed library is loaded and
	// planned before anything is written.
	var plan *wrapper.Plan
	var md *metadata.Metadata
	installed := fromInstall(cfg.Metadata)
	if !installed {
		if md, plan, err = load(ctx, cfg, dir); err != nil {
			return err
		}
	}

	values := &manifest.Values{
		Package:        cfg.Package,
		Version:        version,
		Library:        cfg.Library,
		LibraryVersion: version,
	}
	if err := prepare(cfg, dir, values); err != nil {
		return err
	}
	if opts.skipInstall {
		slog.Info("skipping npm install")
	} else if err := install(ctx, cfg, dir); err != nil {
		return err
	}
	if installed {
		if md, plan, err = load(ctx, cfg, dir); err != nil {
			slog.Warn("build directory is incomplete, no sources were generated", "dir", dir)
			return err
		}
	}
	if err := syncLibraryVersion(cfg, dir, values, md.Version); err != nil {
		return err
	}
	if err := generate(dir, plan); err != nil {
		return err
	}
	if opts.skipCompile {
		slog.Info("skipping tsc")
	} else if err := compile(ctx, cfg, dir); err != nil {
		return err
	}
	if opts.publish {
		if err := publish(ctx, cfg, dir); err != nil {
			return err
		}
	}
	fmt.Printf("\n%d %s components have been wrapped for React in %s\n", len(plan.Exports), cfg.Library, dir)
	return nil
}

// resolveVersion validates the --version value, asking npm for the newest
// library version when it is "latest".
func resolveVersion(ctx context.Context, cfg *config.Config, version string) (string, error) {
	if version == "" {
		return "", fmt.Errorf("%w\nusage: %s", errMissingVersion, buildUsage)
	}
	if version == latestVersion {
		npm := command.GetExecutablePath(cfg.Tools, "npm")
		out, err := command.Output(ctx, "", npm, "show", cfg.Library, "version")
		if err != nil {
			return "", fmt.Errorf("resolving latest version of %s: %w", cfg.Library, err)
		}
		slog.Info("resolved latest library version", "library", cfg.Library, "version", out)
		version = out
	}
	if err := semver.Validate(version); err != nil {
		return "", fmt.Errorf("%w: %w\nusage: %s", errInvalidVersion, err, buildUsage)
	}
	return version, nil
}

// buildDir returns the absolute build directory. The working directory and
// its ancestors are never used, since the build directory is removed.
func buildDir(output string) (string, error) {
	dir, err := filepath.Abs(output)
	if err != nil {
		return "", err
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(dir, wd)
	if err != nil {
		return dir, nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return dir, nil
	}
	return "", fmt.Errorf("%w %s: it contains the working directory", errUnsafeOutput, dir)
}

// fromInstall reports whether the metadata source is a path inside the build
// directory, which only exists after npm install.
func fromInstall(src string) bool {
	return !fetch.IsURL(src) && !filepath.IsAbs(src)
}

func metadataSource(cfg *config.Config, dir string) string {
	if fromInstall(cfg.Metadata) {
		return filepath.Join(dir, cfg.Metadata)
	}
	return cfg.Metadata
}

// load reads the component metadata and plans the wrappers.
func load(ctx context.Context, cfg *config.Config, dir string) (*metadata.Metadata, *wrapper.Plan, error) {
	src := metadataSource(cfg, dir)
	slog.Debug("loading metadata", "source", src)
	md, err := metadata.Load(ctx, src)
	if err != nil {
		return nil, nil, err
	}
	plan, err := wrapper.NewPlan(ctx, md.Components, wrapperOptions(cfg))
	if err != nil {
		return nil, nil, err
	}
	return md, plan, nil
}

func wrapperOptions(cfg *config.Config) *wrapper.Options {
	g := cfg.Generator
	return &wrapper.Options{
		Prefix:        g.Prefix,
		Extension:     g.Extension,
		RuntimeImport: g.RuntimeImport,
		RuntimeName:   g.RuntimeName,
		HelperImport:  g.HelperImport,
		HelperName:    g.HelperName,
		ImportRoot:    g.ImportRoot,
		Quote:         []rune(g.Quote)[0],
		Indent:        g.Indent,
	}
}

// prepare cleans the build directory and writes the package files.
func prepare(cfg *config.Config, dir string, values *manifest.Values) error {
	slog.Debug("cleaning build directory", "dir", dir)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("cleaning build directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating build directory: %w", err)
	}
	if err := manifest.Write(dir, cfg.Templates, cfg.Copy, values); err != nil {
		return fmt.Errorf("writing package files: %w", err)
	}
	return nil
}

func install(ctx context.Context, cfg *config.Config, dir string) error {
	fmt.Println("Installing dependencies...")
	return command.Run(ctx, dir, command.GetExecutablePath(cfg.Tools, "npm"), "install")
}

// syncLibraryVersion pins the library dependency in package.json to the
// version reported by the metadata, when it reports one.
func syncLibraryVersion(cfg *config.Config, dir string, values *manifest.Values, mdVersion string) error {
	if mdVersion == "" || mdVersion == values.LibraryVersion {
		return nil
	}
	if semver.Compare(values.Version, mdVersion) < 0 {
		slog.Warn("package version is older than the library version", "package", values.Version, "library", mdVersion)
	}
	slog.Info("using library version from metadata", "library", cfg.Library, "version", mdVersion)
	values.LibraryVersion = mdVersion
	if err := manifest.WritePackageJSON(dir, cfg.Templates, values); err != nil {
		return fmt.Errorf("writing package files: %w", err)
	}
	return nil
}

func generate(dir string, plan *wrapper.Plan) error {
	fmt.Println("Wrapping components...")
	if err := wrapper.Write(filepath.Join(dir, sourceDir), plan); err != nil {
		return err
	}
	for _, e := range plan.Exports {
		fmt.Printf("✓ <%s>\n", e.Tag)
	}
	return nil
}

func compile(ctx context.Context, cfg *config.Config, dir string) error {
	fmt.Println("Compiling...")
	return command.Run(ctx, dir, command.GetExecutablePath(cfg.Tools, "npx"), "tsc")
}

func publish(ctx context.Context, cfg *config.Config, dir string) error {
	fmt.Printf("Publishing %s...\n", cfg.Package)
	return command.Run(ctx, dir, command.GetExecutablePath(cfg.Tools, "npm"), "publish")
}
