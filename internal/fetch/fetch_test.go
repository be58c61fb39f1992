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

package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsURL(t *testing.T) {
	for _, test := range []struct {
		source string
		want   bool
	}{
		{source: "https://cdn.example.com/metadata.json", want: true},
		{source: "http://localhost:8080/metadata.json", want: true},
		{source: "node_modules/@shoelace-style/shoelace/dist/metadata.json", want: false},
		{source: "/abs/custom-elements.json", want: false},
		{source: "httpfile.json", want: false},
	} {
		t.Run(test.source, func(t *testing.T) {
			if got := IsURL(test.source); got != test.want {
				t.Errorf("IsURL(%q) = %v, want %v", test.source, got, test.want)
			}
		})
	}
}

func TestBytes(t *testing.T) {
	const (
		metadataPath = "/dist/metadata.json"
		contents     = `{"version":"2.0.0","components":[]}`
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != metadataPath {
			t.Errorf("unexpected request path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(contents))
	}))
	defer server.Close()

	got, err := Bytes(t.Context(), server.URL+metadataPath)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(contents, string(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestBytesError(t *testing.T) {
	for _, test := range []struct {
		name string
		url  string
	}{
		{
			name: "http status error",
			url: func() string {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusBadRequest)
					w.Write([]byte("ERROR - bad request"))
				}))
				t.Cleanup(server.Close)
				return server.URL + "/test"
			}(),
		},
		{
			name: "invalid url",
			url:  "http://invalid-url-that-does-not-exist-12345.local",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Bytes(t.Context(), test.url); err == nil {
				t.Error("expected an error from Bytes()")
			}
		})
	}
}
