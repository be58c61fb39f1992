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

package semver

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	for _, test := range []string{
		"1.0.0",
		"2.15.0",
		"3.0.0-beta.1",
		"1.2.3-rc.1+build.5",
		"0.0.1",
	} {
		t.Run(test, func(t *testing.T) {
			if err := Validate(test); err != nil {
				t.Errorf("Validate(%q) = %v, want nil", test, err)
			}
		})
	}
}

func TestValidateError(t *testing.T) {
	for _, test := range []string{
		"",
		"v1.0.0",
		"1",
		"1.2",
		"1.2-beta",
		"latest",
		"1.2.3.4",
		"01.2.3",
	} {
		t.Run(test, func(t *testing.T) {
			err := Validate(test)
			if !errors.Is(err, ErrInvalidVersion) {
				t.Errorf("Validate(%q) = %v, want %v", test, err, ErrInvalidVersion)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	for _, test := range []struct {
		a, b string
		want int
	}{
		{a: "1.0.0", b: "1.0.0", want: 0},
		{a: "1.0.0", b: "1.0.1", want: -1},
		{a: "2.0.0", b: "1.9.9", want: 1},
		{a: "2.0.0-beta.1", b: "2.0.0", want: -1},
		{a: "2.0.0-beta.2", b: "2.0.0-beta.10", want: -1},
	} {
		t.Run(test.a+"_"+test.b, func(t *testing.T) {
			if got := Compare(test.a, test.b); got != test.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestMajor(t *testing.T) {
	for _, test := range []struct {
		version, want string
	}{
		{version: "2.15.0", want: "2"},
		{version: "0.1.0", want: "0"},
		{version: "bad", want: ""},
	} {
		t.Run(test.version, func(t *testing.T) {
			if got := Major(test.version); got != test.want {
				t.Errorf("Major(%q) = %q, want %q", test.version, got, test.want)
			}
		})
	}
}
