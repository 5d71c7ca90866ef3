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
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/odata2openapi/odata2openapi/internal/edm"
	"github.com/odata2openapi/odata2openapi/internal/odatapath"
)

// parameterComponents defines the system query options that do not depend
// on the addressed type. The type-dependent ones ($orderby, $select,
// $expand) are inlined per operation.
func (c *converter) parameterComponents() openapi3.ParametersMap {
	components := openapi3.ParametersMap{
		"top": &openapi3.ParameterRef{Value: &openapi3.Parameter{
			Name:        "$top",
			In:          openapi3.ParameterInQuery,
			Description: "Show only the first n items",
			Schema: &openapi3.SchemaRef{Value: &openapi3.Schema{
				Type: &openapi3.Types{openapi3.TypeInteger},
				Min:  float64p(0),
			}},
		}},
		"skip": &openapi3.ParameterRef{Value: &openapi3.Parameter{
			Name:        "$skip",
			In:          openapi3.ParameterInQuery,
			Description: "Skip the first n items",
			Schema: &openapi3.SchemaRef{Value: &openapi3.Schema{
				Type: &openapi3.Types{openapi3.TypeInteger},
				Min:  float64p(0),
			}},
		}},
		"filter": &openapi3.ParameterRef{Value: &openapi3.Parameter{
			Name:        "$filter",
			In:          openapi3.ParameterInQuery,
			Description: "Filter items by property values",
			Schema:      &openapi3.SchemaRef{Value: primitive(openapi3.TypeString, "")},
		}},
		"search": &openapi3.ParameterRef{Value: &openapi3.Parameter{
			Name:        "$search",
			In:          openapi3.ParameterInQuery,
			Description: "Search items by search phrases",
			Schema:      &openapi3.SchemaRef{Value: primitive(openapi3.TypeString, "")},
		}},
	}
	if c.settings.Count {
		components["count"] = &openapi3.ParameterRef{Value: &openapi3.Parameter{
			Name:        "$count",
			In:          openapi3.ParameterInQuery,
			Description: "Include count of items",
			Schema:      &openapi3.SchemaRef{Value: primitive(openapi3.TypeBoolean, "")},
		}}
	}
	return components
}

// paramRef references a parameter in components.parameters.
func paramRef(name string) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{Ref: "#/components/parameters/" + name}
}

// collectionParameters returns the query parameters of a collection read:
// the shared system query options plus the type-dependent ones.
func (c *converter) collectionParameters(t *edm.EntityType) openapi3.Parameters {
	params := openapi3.Parameters{
		paramRef("top"),
		paramRef("skip"),
		paramRef("search"),
		paramRef("filter"),
	}
	if c.settings.Count {
		params = append(params, paramRef("count"))
	}
	return append(params,
		c.orderbyParameter(t),
		c.selectParameter(t),
		c.expandParameter(t),
	)
}

// entityParameters returns the query parameters of a single-entity read.
func (c *converter) entityParameters(t *edm.EntityType) openapi3.Parameters {
	return openapi3.Parameters{
		c.selectParameter(t),
		c.expandParameter(t),
	}
}

// orderbyParameter enumerates the structural properties of the type, each
// with a ` desc` variant.
func (c *converter) orderbyParameter(t *edm.EntityType) *openapi3.ParameterRef {
	var values []string
	for _, p := range c.model.StructuralProperties(t) {
		values = append(values, p.Name, p.Name+" desc")
	}
	return queryArrayParameter("$orderby", "Order items by property values", values)
}

// selectParameter enumerates the structural properties of the type.
func (c *converter) selectParameter(t *edm.EntityType) *openapi3.ParameterRef {
	var values []string
	for _, p := range c.model.StructuralProperties(t) {
		values = append(values, p.Name)
	}
	return queryArrayParameter("$select", "Select properties to be returned", values)
}

// expandParameter enumerates the navigation properties of the type, plus
// `*` for all of them.
func (c *converter) expandParameter(t *edm.EntityType) *openapi3.ParameterRef {
	values := []string{"*"}
	for _, nav := range c.model.NavigationProperties(t) {
		values = append(values, nav.Name)
	}
	return queryArrayParameter("$expand", "Expand related entities", values)
}

// queryArrayParameter builds a form-style, non-exploded string array
// parameter, the shape OData uses for comma-separated query options.
func queryArrayParameter(name, description string, values []string) *openapi3.ParameterRef {
	enum := make([]any, 0, len(values))
	for _, v := range values {
		enum = append(enum, v)
	}
	return &openapi3.ParameterRef{Value: &openapi3.Parameter{
		Name:        name,
		In:          openapi3.ParameterInQuery,
		Description: description,
		Style:       "form",
		Explode:     boolp(false),
		Schema: &openapi3.SchemaRef{Value: &openapi3.Schema{
			Type:        &openapi3.Types{openapi3.TypeArray},
			UniqueItems: true,
			Items: &openapi3.SchemaRef{Value: &openapi3.Schema{
				Type: &openapi3.Types{openapi3.TypeString},
				Enum: enum,
			}},
		}},
	}}
}

// keyParameter maps a template key parameter. Key values are never null,
// so the property's nullability is not carried over.
func (c *converter) keyParameter(key odatapath.KeyParameter) *openapi3.ParameterRef {
	description := edm.Description(key.Property)
	if description == "" {
		description = fmt.Sprintf("Key property %s of %s", key.Property.Name, key.Type.Name)
	}
	return &openapi3.ParameterRef{Value: &openapi3.Parameter{
		Name:        key.Name,
		In:          openapi3.ParameterInPath,
		Required:    true,
		Description: description,
		Schema:      c.typeSchema(key.Property.Type, false),
	}}
}

// functionParameter maps a template function parameter. OData renders a
// null argument as the literal `null`, so the parameter stays required.
func (c *converter) functionParameter(fp odatapath.FunctionParameter) *openapi3.ParameterRef {
	description := edm.Description(fp.Parameter)
	if description == "" {
		description = fmt.Sprintf("Function parameter %s", fp.Parameter.Name)
	}
	return &openapi3.ParameterRef{Value: &openapi3.Parameter{
		Name:        fp.Name,
		In:          openapi3.ParameterInPath,
		Required:    true,
		Description: description,
		Schema:      c.typeSchema(fp.Parameter.Type, false),
	}}
}

// ifMatchParameter is the concurrency-control header of delete
// operations.
func ifMatchParameter() *openapi3.ParameterRef {
	return &openapi3.ParameterRef{Value: &openapi3.Parameter{
		Name:        "If-Match",
		In:          openapi3.ParameterInHeader,
		Description: "ETag",
		Schema:      &openapi3.SchemaRef{Value: primitive(openapi3.TypeString, "")},
	}}
}

// refIDParameter identifies the reference to remove from a to-many `$ref`
// collection.
func refIDParameter(s *Settings) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{Value: &openapi3.Parameter{
		Name:        "$id",
		In:          openapi3.ParameterInQuery,
		Required:    true,
		Description: fmt.Sprintf("The %s of the reference to remove", s.idControl()),
		Schema:      &openapi3.SchemaRef{Value: primitive(openapi3.TypeString, "")},
	}}
}
