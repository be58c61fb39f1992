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

package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestString(t *testing.T) {
	src := "{{!\nCopyright 2026 Google LLC\n}}\n\"version\": \"{{{Version}}}\",\n\"escaped\": \"{{Name}}\"\n"
	got, err := String("test", src, map[string]string{"Version": "2.0.0-beta.1", "Name": "<b>"})
	if err != nil {
		t.Fatal(err)
	}
	want := "\"version\": \"2.0.0-beta.1\",\n\"escaped\": \"&lt;b&gt;\"\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStringError(t *testing.T) {
	if _, err := String("test", "{{#open}}never closed", nil); err == nil {
		t.Error("String() = nil, want error for unterminated section")
	}
}

func TestStripLicense(t *testing.T) {
	for _, test := range []struct {
		name, input, want string
	}{
		{
			name:  "with header",
			input: "{{!\nCopyright\n}}\nimport x;\n",
			want:  "import x;\n",
		},
		{
			name:  "without header",
			input: "import x;\n",
			want:  "import x;\n",
		},
		{
			name:  "unterminated",
			input: "{{! oops",
			want:  "{{! oops",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			if got := StripLicense(test.input); got != test.want {
				t.Errorf("StripLicense() = %q, want %q", got, test.want)
			}
		})
	}
}
