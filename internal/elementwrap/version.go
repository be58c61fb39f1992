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
	"runtime/debug"
	"strings"
	"time"
)

// versionNotAvailable is returned by Version for local development builds,
// which carry no module version.
const versionNotAvailable = "not available"

// Version returns the version of the elementwrap binary, following
// https://go.dev/ref/mod#versions.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionNotAvailable
	}
	return version(info)
}

func version(info *debug.BuildInfo) string {
	v := info.Main.Version
	if v == "" || v == "(devel)" {
		return versionNotAvailable
	}
	if strings.HasSuffix(v, "+dirty") {
		return devVersion(info)
	}
	return v
}

// devVersion describes a build from a modified checkout using the commit it
// was built from, or versionNotAvailable when no VCS information is present.
func devVersion(info *debug.BuildInfo) string {
	var revision, at string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	if revision == "" {
		return versionNotAvailable
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	var buf strings.Builder
	buf.WriteString("devel-")
	buf.WriteString(revision)
	// commit time is of the form 2023-01-25T19:57:54Z
	if p, err := time.Parse(time.RFC3339, at); err == nil {
		buf.WriteString("-")
		buf.WriteString(p.Format("20060102150405"))
	}
	return buf.String()
}
