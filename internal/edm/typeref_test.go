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

package edm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTypeRef(t *testing.T) {
	for _, test := range []struct {
		input string
		want  TypeRef
	}{
		{"Edm.String", TypeRef{Name: "Edm.String"}},
		{"ODataDemo.Product", TypeRef{Name: "ODataDemo.Product"}},
		{"Collection(Edm.Int32)", TypeRef{Name: "Edm.Int32", Collection: true}},
		{"Collection(ODataDemo.Product)", TypeRef{Name: "ODataDemo.Product", Collection: true}},
		{"", TypeRef{}},
	} {
		got := ParseTypeRef(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("mismatched type ref for %q (-want, +got):\n%s", test.input, diff)
		}
		if test.input != "" && got.String() != test.input {
			t.Errorf("mismatched round trip for %q, got=%q", test.input, got.String())
		}
	}
}

func TestTypeRefLocalName(t *testing.T) {
	for _, test := range []struct {
		input string
		want  string
	}{
		{"Edm.String", "String"},
		{"ODataDemo.Product", "Product"},
		{"Collection(ODataDemo.Product)", "Product"},
		{"Product", "Product"},
	} {
		if got := ParseTypeRef(test.input).LocalName(); got != test.want {
			t.Errorf("mismatched local name for %q, want=%q, got=%q", test.input, test.want, got)
		}
	}
}

func TestTypeRefIsPrimitive(t *testing.T) {
	for _, test := range []struct {
		input string
		want  bool
	}{
		{"Edm.String", true},
		{"Collection(Edm.String)", true},
		{"ODataDemo.Product", false},
		{"Edmx.Oddity", false},
	} {
		if got := ParseTypeRef(test.input).IsPrimitive(); got != test.want {
			t.Errorf("mismatched IsPrimitive for %q, want=%v, got=%v", test.input, test.want, got)
		}
	}
}

func TestKnownPrimitive(t *testing.T) {
	for _, name := range []string{
		"Edm.Binary", "Edm.Boolean", "Edm.Byte", "Edm.Date", "Edm.DateTimeOffset",
		"Edm.Decimal", "Edm.Double", "Edm.Duration", "Edm.Guid", "Edm.Int16",
		"Edm.Int32", "Edm.Int64", "Edm.SByte", "Edm.Single", "Edm.Stream",
		"Edm.String", "Edm.TimeOfDay", "Edm.PrimitiveType", "Edm.Untyped",
		"Edm.Geography", "Edm.GeographyPoint", "Edm.GeometryPolygon",
	} {
		if !KnownPrimitive(name) {
			t.Errorf("expected %q to be a known primitive", name)
		}
	}
	for _, name := range []string{"Edm.Whatever", "ODataDemo.Product", ""} {
		if KnownPrimitive(name) {
			t.Errorf("expected %q to be unknown", name)
		}
	}
}

func TestTypeRefElement(t *testing.T) {
	ref := TypeRef{Name: "ODataDemo.Product", Collection: true}
	want := TypeRef{Name: "ODataDemo.Product"}
	if diff := cmp.Diff(want, ref.Element()); diff != "" {
		t.Errorf("mismatched element type (-want, +got):\n%s", diff)
	}
}
