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

import "strings"

// TypeRef is a reference to a named type, possibly wrapped in
// `Collection(...)`. The wrapped form never nests.
type TypeRef struct {
	// Name is the qualified name of the referenced type, e.g. `Edm.String`
	// or `ODataDemo.Address`.
	Name string
	// Collection is true when the reference was `Collection(Name)`.
	Collection bool
}

// ParseTypeRef parses a CSDL type attribute value.
func ParseTypeRef(s string) TypeRef {
	if inner, ok := strings.CutPrefix(s, "Collection("); ok && strings.HasSuffix(inner, ")") {
		return TypeRef{Name: strings.TrimSuffix(inner, ")"), Collection: true}
	}
	return TypeRef{Name: s}
}

// String renders the reference in CSDL attribute syntax.
func (t TypeRef) String() string {
	if t.Collection {
		return "Collection(" + t.Name + ")"
	}
	return t.Name
}

// IsPrimitive reports whether the reference names a built-in primitive
// type.
func (t TypeRef) IsPrimitive() bool {
	return strings.HasPrefix(t.Name, "Edm.")
}

// LocalName returns the name without its namespace qualifier.
func (t TypeRef) LocalName() string {
	if i := strings.LastIndex(t.Name, "."); i >= 0 {
		return t.Name[i+1:]
	}
	return t.Name
}

// Element returns the reference with the collection wrapper removed.
func (t TypeRef) Element() TypeRef {
	return TypeRef{Name: t.Name}
}

// The primitive types defined by CSDL 4.0. Abstract types (Edm.PrimitiveType,
// Edm.Untyped and the geo base types) are included because models may use
// them in property and parameter declarations.
var primitiveTypes = map[string]bool{
	"Edm.Binary":         true,
	"Edm.Boolean":        true,
	"Edm.Byte":           true,
	"Edm.Date":           true,
	"Edm.DateTimeOffset": true,
	"Edm.Decimal":        true,
	"Edm.Double":         true,
	"Edm.Duration":       true,
	"Edm.Guid":           true,
	"Edm.Int16":          true,
	"Edm.Int32":          true,
	"Edm.Int64":          true,
	"Edm.SByte":          true,
	"Edm.Single":         true,
	"Edm.Stream":         true,
	"Edm.String":         true,
	"Edm.TimeOfDay":      true,
	"Edm.PrimitiveType":  true,
	"Edm.Untyped":        true,
}

// KnownPrimitive reports whether name is a CSDL primitive type, including
// the geography and geometry families.
func KnownPrimitive(name string) bool {
	if primitiveTypes[name] {
		return true
	}
	return strings.HasPrefix(name, "Edm.Geography") || strings.HasPrefix(name, "Edm.Geometry")
}
