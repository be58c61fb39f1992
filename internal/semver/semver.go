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

// Package semver validates and compares npm package version strings.
package semver

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrInvalidVersion is returned when the version string provided is invalid
// as per the SemVer 2.0.0 spec - https://semver.org.
var ErrInvalidVersion = errors.New("invalid version format")

// Validate checks that v is a full SemVer 2.0.0 version such as "2.15.0" or
// "3.0.0-beta.1". npm versions must not have a "v" prefix.
func Validate(v string) error {
	if strings.HasPrefix(v, "v") {
		return fmt.Errorf("%w: %s: must not have a \"v\" prefix", ErrInvalidVersion, v)
	}
	canonical := "v" + v
	if !semver.IsValid(canonical) {
		return fmt.Errorf("%w: %s", ErrInvalidVersion, v)
	}
	// x/mod/semver accepts the shorthands "v1" and "v1.2", npm does not.
	if strings.Count(strings.SplitN(strings.SplitN(v, "+", 2)[0], "-", 2)[0], ".") != 2 {
		return fmt.Errorf("%w: %s: want MAJOR.MINOR.PATCH", ErrInvalidVersion, v)
	}
	return nil
}

// Compare returns an integer comparing two versions. The result is 0 if
// a == b, -1 if a < b, and +1 if a > b. Invalid versions compare less than
// valid ones, and equal to each other.
func Compare(a, b string) int {
	return semver.Compare("v"+a, "v"+b)
}

// Major returns the major version prefix of v, for example "2" for "2.15.0".
func Major(v string) string {
	return strings.TrimPrefix(semver.Major("v"+v), "v")
}
