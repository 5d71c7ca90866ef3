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
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/odata2openapi/odata2openapi/internal/edm"
)

// schemaComponents maps every named type of the model into
// components.schemas, keyed by qualified name, plus the collection
// response wrappers and the shared OData schemas.
func (c *converter) schemaComponents() openapi3.Schemas {
	schemas := openapi3.Schemas{}
	for _, s := range c.model.Schemas {
		for _, t := range s.EntityTypes {
			schemas[t.QualifiedName()] = &openapi3.SchemaRef{Value: c.entityTypeSchema(t)}
			schemas[t.QualifiedName()+"CollectionResponse"] = &openapi3.SchemaRef{Value: c.collectionResponseSchema(t)}
		}
		for _, t := range s.ComplexTypes {
			schemas[t.QualifiedName()] = &openapi3.SchemaRef{Value: c.complexTypeSchema(t)}
		}
		for _, t := range s.EnumTypes {
			schemas[t.QualifiedName()] = &openapi3.SchemaRef{Value: c.enumTypeSchema(t)}
		}
		for _, t := range s.TypeDefinitions {
			schemas[t.QualifiedName()] = &openapi3.SchemaRef{Value: c.typeDefinitionSchema(t)}
		}
	}
	c.builtinSchemas(schemas)
	return schemas
}

func (c *converter) entityTypeSchema(t *edm.EntityType) *openapi3.Schema {
	schema := c.structuredSchema(t.Name, t.BaseType, t.OpenType, t.Properties, t.NavigationProperties, t)
	if c.settings.SchemaExamples {
		schema.Example = c.exampleObject(c.model.StructuralProperties(t))
	}
	return schema
}

func (c *converter) complexTypeSchema(t *edm.ComplexType) *openapi3.Schema {
	schema := c.structuredSchema(t.Name, t.BaseType, t.OpenType, t.Properties, t.NavigationProperties, t)
	if c.settings.SchemaExamples {
		schema.Example = c.exampleObject(t.Properties)
	}
	return schema
}

// structuredSchema builds the schema of an entity or complex type. A type
// with a base renders as `allOf: [$ref base, object]` so the base schema
// is shared rather than flattened; the type's own properties live in the
// second branch.
func (c *converter) structuredSchema(name, base string, open bool, properties []*edm.Property, navigations []*edm.NavigationProperty, el edm.Annotated) *openapi3.Schema {
	object := &openapi3.Schema{
		Type:       &openapi3.Types{openapi3.TypeObject},
		Properties: openapi3.Schemas{},
	}
	for _, p := range properties {
		object.Properties[p.Name] = c.propertySchema(p)
	}
	for _, nav := range navigations {
		object.Properties[nav.Name] = c.navigationSchema(nav)
	}
	if open {
		object.AdditionalProperties = openapi3.AdditionalProperties{Has: boolp(true)}
	}
	if base == "" {
		object.Title = name
		object.Description = describe(el)
		return object
	}
	return &openapi3.Schema{
		Title:       name,
		Description: describe(el),
		AllOf: openapi3.SchemaRefs{
			schemaRef(base),
			{Value: object},
		},
	}
}

// propertySchema maps a structural property, applying its facets and the
// Core annotations the converter interprets. Facets of collection-valued
// properties describe the items, not the array.
func (c *converter) propertySchema(p *edm.Property) *openapi3.SchemaRef {
	schema := c.typeSchema(p.Type, p.Nullable)
	description := edm.Description(p)
	readOnly := edm.IsComputed(p) || edm.IsImmutable(p)
	hasFacets := p.MaxLength != nil || p.Scale != nil || p.DefaultValue != nil
	if schema.Value == nil && (description != "" || readOnly || hasFacets) {
		schema = &openapi3.SchemaRef{Value: &openapi3.Schema{AllOf: openapi3.SchemaRefs{schema}}}
	}
	if schema.Value == nil {
		return schema
	}
	if description != "" {
		schema.Value.Description = description
	}
	if readOnly {
		schema.Value.ReadOnly = true
	}
	target := schema.Value
	if p.Type.Collection && target.Items != nil && target.Items.Value != nil {
		target = target.Items.Value
	}
	if p.MaxLength != nil {
		target.MaxLength = uint64p(uint64(*p.MaxLength))
	}
	if p.Scale != nil && p.Type.Name == "Edm.Decimal" && !c.settings.IEEE754Compatible {
		target.MultipleOf = scaleMultiple(*p.Scale)
	}
	if p.DefaultValue != nil {
		schema.Value.Default = c.defaultValue(*p.DefaultValue, p.Type)
	}
	return schema
}

// navigationSchema maps a navigation property to a reference, or an array
// of references for to-many navigation.
func (c *converter) navigationSchema(nav *edm.NavigationProperty) *openapi3.SchemaRef {
	schema := c.typeSchema(nav.Type, !nav.Type.Collection && nav.Nullable)
	if description := edm.Description(nav); description != "" {
		if schema.Value == nil {
			schema = &openapi3.SchemaRef{Value: &openapi3.Schema{AllOf: openapi3.SchemaRefs{schema}}}
		}
		schema.Value.Description = description
	}
	return schema
}

// typeSchema maps a type reference to a schema. Named types become
// references into components.schemas; a nullable reference wraps the
// `$ref` in `allOf`, because `nullable` as a sibling of `$ref` is ignored
// in OpenAPI 3.0.
func (c *converter) typeSchema(ref edm.TypeRef, nullable bool) *openapi3.SchemaRef {
	if ref.Collection {
		return &openapi3.SchemaRef{Value: &openapi3.Schema{
			Type:  &openapi3.Types{openapi3.TypeArray},
			Items: c.typeSchema(ref.Element(), false),
		}}
	}
	if ref.IsPrimitive() {
		schema := c.primitiveSchema(ref.Name)
		schema.Nullable = nullable
		return &openapi3.SchemaRef{Value: schema}
	}
	target := schemaRef(ref.Name)
	if !nullable {
		return target
	}
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		AllOf:    openapi3.SchemaRefs{target},
		Nullable: true,
	}}
}

func (c *converter) enumTypeSchema(t *edm.EnumType) *openapi3.Schema {
	schema := primitive(openapi3.TypeString, "")
	schema.Title = t.Name
	schema.Description = describe(t)
	for _, m := range t.Members {
		schema.Enum = append(schema.Enum, m.Name)
	}
	return schema
}

func (c *converter) typeDefinitionSchema(t *edm.TypeDefinition) *openapi3.Schema {
	schema := c.primitiveSchema(t.UnderlyingType)
	schema.Title = t.Name
	schema.Description = describe(t)
	if t.MaxLength != nil {
		schema.MaxLength = uint64p(uint64(*t.MaxLength))
	}
	if t.Scale != nil && t.UnderlyingType == "Edm.Decimal" && !c.settings.IEEE754Compatible {
		schema.MultipleOf = scaleMultiple(*t.Scale)
	}
	return schema
}

// collectionResponseSchema is the response wrapper for collections of an
// entity type: the `value` array plus the control information the
// settings enable.
func (c *converter) collectionResponseSchema(t *edm.EntityType) *openapi3.Schema {
	properties := openapi3.Schemas{
		"value": &openapi3.SchemaRef{Value: &openapi3.Schema{
			Type:  &openapi3.Types{openapi3.TypeArray},
			Items: schemaRef(t.QualifiedName()),
		}},
	}
	if c.settings.Count {
		properties[c.settings.countControl()] = schemaRef("odata.count")
	}
	if c.settings.Pagination {
		properties[c.settings.nextLinkControl()] = &openapi3.SchemaRef{Value: primitive(openapi3.TypeString, "")}
	}
	return &openapi3.Schema{
		Title:      "Collection of " + t.Name,
		Type:       &openapi3.Types{openapi3.TypeObject},
		Properties: properties,
	}
}

// referenceCollectionSchema is the inline response shape of a to-many
// `$ref` read.
func (c *converter) referenceCollectionSchema() *openapi3.SchemaRef {
	properties := openapi3.Schemas{
		"value": {Value: &openapi3.Schema{
			Type:  &openapi3.Types{openapi3.TypeArray},
			Items: schemaRef("odata.entityReference"),
		}},
	}
	if c.settings.Count {
		properties[c.settings.countControl()] = schemaRef("odata.count")
	}
	if c.settings.Pagination {
		properties[c.settings.nextLinkControl()] = &openapi3.SchemaRef{Value: primitive(openapi3.TypeString, "")}
	}
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		Title:      "Collection of entity references",
		Type:       &openapi3.Types{openapi3.TypeObject},
		Properties: properties,
	}}
}

// builtinSchemas adds the schemas every document shares: the OData error
// shape, the raw count, entity references, and, when the root path is
// emitted, the service document.
func (c *converter) builtinSchemas(schemas openapi3.Schemas) {
	schemas["odata.error"] = &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type:     &openapi3.Types{openapi3.TypeObject},
		Required: []string{"error"},
		Properties: openapi3.Schemas{
			"error": schemaRef("odata.error.main"),
		},
	}}
	schemas["odata.error.main"] = &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type:     &openapi3.Types{openapi3.TypeObject},
		Required: []string{"code", "message"},
		Properties: openapi3.Schemas{
			"code":    {Value: primitive(openapi3.TypeString, "")},
			"message": {Value: primitive(openapi3.TypeString, "")},
			"target":  {Value: primitive(openapi3.TypeString, "")},
			"details": {Value: &openapi3.Schema{
				Type:  &openapi3.Types{openapi3.TypeArray},
				Items: schemaRef("odata.error.detail"),
			}},
			"innererror": {Value: &openapi3.Schema{
				Type:        &openapi3.Types{openapi3.TypeObject},
				Description: "The structure of this object is service-specific",
			}},
		},
	}}
	schemas["odata.error.detail"] = &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type:     &openapi3.Types{openapi3.TypeObject},
		Required: []string{"code", "message"},
		Properties: openapi3.Schemas{
			"code":    {Value: primitive(openapi3.TypeString, "")},
			"message": {Value: primitive(openapi3.TypeString, "")},
			"target":  {Value: primitive(openapi3.TypeString, "")},
		},
	}}
	schemas["odata.count"] = &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type:        &openapi3.Types{openapi3.TypeInteger},
		Description: "The number of entities in the collection",
	}}
	id := c.settings.idControl()
	schemas["odata.entityReference"] = &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type:     &openapi3.Types{openapi3.TypeObject},
		Required: []string{id},
		Properties: openapi3.Schemas{
			id: {Value: primitive(openapi3.TypeString, "")},
		},
	}}
	if c.settings.RootPath {
		schemas["odata.serviceDocument"] = &openapi3.SchemaRef{Value: &openapi3.Schema{
			Type: &openapi3.Types{openapi3.TypeObject},
			Properties: openapi3.Schemas{
				c.settings.contextControl(): {Value: primitive(openapi3.TypeString, "")},
				"value": {Value: &openapi3.Schema{
					Type: &openapi3.Types{openapi3.TypeArray},
					Items: &openapi3.SchemaRef{Value: &openapi3.Schema{
						Type:     &openapi3.Types{openapi3.TypeObject},
						Required: []string{"name", "url"},
						Properties: openapi3.Schemas{
							"name": {Value: primitive(openapi3.TypeString, "")},
							"kind": {Value: primitive(openapi3.TypeString, "")},
							"url":  {Value: primitive(openapi3.TypeString, "")},
						},
					}},
				}},
			},
		}}
	}
}

// defaultValue parses a DefaultValue facet into the JSON type of the
// property. Values that do not parse keep their lexical form.
func (c *converter) defaultValue(value string, ref edm.TypeRef) any {
	if ref.Collection {
		return value
	}
	switch ref.Name {
	case "Edm.Boolean":
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	case "Edm.Byte", "Edm.SByte", "Edm.Int16", "Edm.Int32":
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	case "Edm.Int64":
		if c.settings.IEEE754Compatible {
			return value
		}
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	case "Edm.Decimal":
		if c.settings.IEEE754Compatible {
			return value
		}
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	case "Edm.Double", "Edm.Single":
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return value
}

// exampleObject builds a representative instance from the primitive and
// enum properties of a type. Reference and collection valued properties
// are omitted.
func (c *converter) exampleObject(properties []*edm.Property) map[string]any {
	example := map[string]any{}
	for _, p := range properties {
		if p.Type.Collection {
			continue
		}
		name := p.Type.Name
		if def := c.model.TypeDefinition(name); def != nil {
			name = def.UnderlyingType
		}
		if enum := c.model.EnumType(name); enum != nil {
			if len(enum.Members) > 0 {
				example[p.Name] = enum.Members[0].Name
			}
			continue
		}
		switch name {
		case "Edm.Boolean":
			example[p.Name] = false
		case "Edm.Byte", "Edm.SByte", "Edm.Int16", "Edm.Int32", "Edm.Int64":
			example[p.Name] = 0
		case "Edm.Decimal", "Edm.Double", "Edm.Single":
			example[p.Name] = 0
		case "Edm.String":
			example[p.Name] = "string"
		}
	}
	return example
}

// describe joins the Core.Description and Core.LongDescription of an
// element.
func describe(el edm.Annotated) string {
	description := edm.Description(el)
	long := edm.LongDescription(el)
	switch {
	case description == "":
		return long
	case long == "":
		return description
	default:
		return description + "\n" + long
	}
}

// schemaRef references a schema in components.schemas.
func schemaRef(name string) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Ref: "#/components/schemas/" + name}
}
