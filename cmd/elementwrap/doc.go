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

//go:generate go run -tags docgen ../doc_generate.go -cmd .

/*
Elementwrap wraps the custom elements of a web component library as React
components and packages them for npm.

Usage:

	elementwrap <command> [arguments]

The commands are:

# build

NAME:

	elementwrap build - generate, compile and optionally publish the React wrappers

USAGE:

	elementwrap build --version X.Y.Z [--publish]

DESCRIPTION:

	Build wraps every custom element described by the library metadata as a
	React component. The build directory is removed and recreated, package.json
	and tsconfig.json are written, the library is installed with npm, wrappers are
	generated below <out>/src and the result is compiled with tsc.

	Use --version latest to build against the newest published library version.
	With --publish the package is published to npm once the build succeeds.

OPTIONS:

	--version string    library and package version (X.Y.Z or latest)
	--publish           publish the package to npm after building
	--config string     path to elementwrap.yaml or elementwrap.toml (default: "elementwrap.yaml")
	--metadata string   metadata file or URL, overrides the configuration
	--out string        build directory, overrides the configuration
	--templates string  template directory, overrides the configuration
	--skip-install      do not run npm install
	--skip-compile      do not run tsc
	--help, -h          show help

GLOBAL OPTIONS:

	--verbose, -v  enable verbose logging

# init

NAME:

	elementwrap init - write a default configuration file

USAGE:

	elementwrap init [path] [--force]

DESCRIPTION:

	Init writes the default configuration to path, or to elementwrap.yaml when
	no path is given. A path ending in .toml is written as TOML.

OPTIONS:

	--force     overwrite an existing configuration file
	--help, -h  show help

GLOBAL OPTIONS:

	--verbose, -v  enable verbose logging

# version

NAME:

	elementwrap version - print the version

USAGE:

	elementwrap version

OPTIONS:

	--help, -h  show help

GLOBAL OPTIONS:

	--verbose, -v  enable verbose logging
*/
package main
