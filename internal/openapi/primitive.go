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
	"log/slog"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// primitiveSchema maps an EDM primitive type name to a fresh schema. The
// abstract types (Edm.PrimitiveType, Edm.Untyped, the geo families) carry
// no JSON constraints and map to the empty schema.
func (c *converter) primitiveSchema(name string) *openapi3.Schema {
	switch name {
	case "Edm.String":
		return primitive(openapi3.TypeString, "")
	case "Edm.Boolean":
		return primitive(openapi3.TypeBoolean, "")
	case "Edm.Byte":
		return primitive(openapi3.TypeInteger, "uint8")
	case "Edm.SByte":
		return primitive(openapi3.TypeInteger, "int8")
	case "Edm.Int16":
		return primitive(openapi3.TypeInteger, "int16")
	case "Edm.Int32":
		return primitive(openapi3.TypeInteger, "int32")
	case "Edm.Int64":
		if c.settings.IEEE754Compatible {
			return primitive(openapi3.TypeString, "int64")
		}
		return primitive(openapi3.TypeInteger, "int64")
	case "Edm.Decimal":
		if c.settings.IEEE754Compatible {
			return primitive(openapi3.TypeString, "decimal")
		}
		return primitive(openapi3.TypeNumber, "decimal")
	case "Edm.Double":
		return primitive(openapi3.TypeNumber, "double")
	case "Edm.Single":
		return primitive(openapi3.TypeNumber, "float")
	case "Edm.Binary":
		return primitive(openapi3.TypeString, "base64url")
	case "Edm.Date":
		return primitive(openapi3.TypeString, "date")
	case "Edm.DateTimeOffset":
		return primitive(openapi3.TypeString, "date-time")
	case "Edm.TimeOfDay":
		return primitive(openapi3.TypeString, "time")
	case "Edm.Duration":
		return primitive(openapi3.TypeString, "duration")
	case "Edm.Guid":
		return primitive(openapi3.TypeString, "uuid")
	case "Edm.Stream":
		schema := primitive(openapi3.TypeString, "base64url")
		schema.ReadOnly = true
		return schema
	case "Edm.Untyped", "Edm.PrimitiveType":
		return &openapi3.Schema{}
	}
	if strings.HasPrefix(name, "Edm.Geography") || strings.HasPrefix(name, "Edm.Geometry") {
		return &openapi3.Schema{}
	}
	slog.Warn("unknown primitive type, emitting an unconstrained schema", "type", name)
	return &openapi3.Schema{}
}

// primitive builds a schema with a JSON type and an optional format.
func primitive(kind, format string) *openapi3.Schema {
	return &openapi3.Schema{Type: &openapi3.Types{kind}, Format: format}
}

// scaleMultiple returns the multipleOf value for a decimal Scale facet:
// 10^-scale, parsed from its decimal spelling so the result matches the
// float64 literal a reader would write. Scales outside the representable
// range, including negative ones from malformed documents, yield no
// constraint.
func scaleMultiple(scale int) *float64 {
	v, err := strconv.ParseFloat("1e-"+strconv.Itoa(scale), 64)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}

func boolp(v bool) *bool          { return &v }
func float64p(v float64) *float64 { return &v }
func uint64p(v uint64) *uint64    { return &v }
