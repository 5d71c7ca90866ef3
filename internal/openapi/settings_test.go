// Copyright 2025 The odata2openapi Authors
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

package openapi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewSettingsDefaults(t *testing.T) {
	want := &Settings{
		ServiceRoot:     "http://localhost",
		DocumentVersion: "1.0.0",
		ODataVersion:    "4.0",
		OperationIDs:    true,
		Count:           true,
		ErrorsAsDefault: true,
	}
	if diff := cmp.Diff(want, NewSettings()); diff != "" {
		t.Errorf("mismatched default settings (-want, +got):\n%s", diff)
	}
}

func TestSettingsApply(t *testing.T) {
	got := NewSettings()
	err := got.Apply(map[string]string{
		"service-root":       "https://example.com/service",
		"title":              "Example Service",
		"document-version":   "2.3.4",
		"odata-version":      "4.01",
		"key-as-segment":     "true",
		"unqualified-calls":  "true",
		"operation-ids":      "false",
		"pagination":         "true",
		"count":              "false",
		"derived-type-casts": "true",
		"success-range":      "true",
		"errors-as-default":  "false",
		"prefix-key-names":   "true",
		"root-path":          "true",
		"schema-examples":    "true",
		"ieee754-compatible": "true",
		"max-depth":          "5",
	})
	if err != nil {
		t.Fatal(err)
	}
	want := &Settings{
		ServiceRoot:       "https://example.com/service",
		Title:             "Example Service",
		DocumentVersion:   "2.3.4",
		ODataVersion:      "4.01",
		KeyAsSegment:      true,
		UnqualifiedCalls:  true,
		OperationIDs:      false,
		Pagination:        true,
		Count:             false,
		DerivedTypeCasts:  true,
		SuccessRange:      true,
		ErrorsAsDefault:   false,
		PrefixKeyNames:    true,
		RootPath:          true,
		SchemaExamples:    true,
		IEEE754Compatible: true,
		MaxDepth:          5,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatched applied settings (-want, +got):\n%s", diff)
	}
}

func TestSettingsApplyError(t *testing.T) {
	for _, test := range []struct {
		name    string
		options map[string]string
	}{
		{"unknown key", map[string]string{"not-a-setting": "true"}},
		{"bad boolean", map[string]string{"count": "maybe"}},
		{"bad integer", map[string]string{"max-depth": "deep"}},
		{"bad odata version", map[string]string{"odata-version": "3.0"}},
	} {
		t.Run(test.name, func(t *testing.T) {
			settings := NewSettings()
			if err := settings.Apply(test.options); err == nil {
				t.Errorf("expected an error applying %v", test.options)
			}
		})
	}
}

func TestSettingsControlNames(t *testing.T) {
	settings := NewSettings()
	for _, test := range []struct {
		version                  string
		count, nextLink, id, ctx string
	}{
		{"4.0", "@odata.count", "@odata.nextLink", "@odata.id", "@odata.context"},
		{"4.01", "@count", "@nextLink", "@id", "@context"},
	} {
		settings.ODataVersion = test.version
		got := []string{settings.countControl(), settings.nextLinkControl(), settings.idControl(), settings.contextControl()}
		want := []string{test.count, test.nextLink, test.id, test.ctx}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatched control names for %s (-want, +got):\n%s", test.version, diff)
		}
	}
}
