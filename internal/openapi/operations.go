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
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/odata2openapi/odata2openapi/internal/edm"
	"github.com/odata2openapi/odata2openapi/internal/odatapath"
)

// pathItem builds the path item for one resource path: key parameters at
// the item level plus one operation per verb the path kind supports.
func (c *converter) pathItem(path *odatapath.Path, template *odatapath.Template) (*openapi3.PathItem, error) {
	item := &openapi3.PathItem{}
	for _, key := range template.Keys {
		item.Parameters = append(item.Parameters, c.keyParameter(key))
	}
	switch path.Kind() {
	case odatapath.KindEntitySet:
		c.entitySetItem(path, item)
	case odatapath.KindEntity:
		c.entityItem(path, item)
	case odatapath.KindSingleton:
		c.singletonItem(path, item)
	case odatapath.KindNavigationCollection:
		c.navigationCollectionItem(path, item)
	case odatapath.KindNavigationSingle:
		c.navigationSingleItem(path, item)
	case odatapath.KindNavigationEntity:
		c.navigationEntityItem(path, item)
	case odatapath.KindCount:
		c.countItem(path, item)
	case odatapath.KindRefSingle:
		c.refSingleItem(path, item)
	case odatapath.KindRefCollection:
		c.refCollectionItem(path, item)
	case odatapath.KindValue:
		c.valueItem(path, item)
	case odatapath.KindTypeCastCollection:
		c.castCollectionItem(path, item)
	case odatapath.KindTypeCastSingle:
		c.castSingleItem(path, item)
	case odatapath.KindBoundAction:
		c.boundActionItem(path, item)
	case odatapath.KindBoundFunction:
		c.boundFunctionItem(path, template, item)
	case odatapath.KindActionImport:
		c.actionImportItem(path, item)
	case odatapath.KindFunctionImport:
		c.functionImportItem(path, template, item)
	case odatapath.KindServiceRoot:
		c.serviceRootItem(item)
	default:
		return nil, fmt.Errorf("unsupported path kind %d for %q", path.Kind(), template.Path)
	}
	return item, nil
}

// newOperation assembles the shared scaffolding of an operation: its tag,
// operationId, summary, description, and the error response. The id parts
// are joined with dots and disambiguated with an ordinal suffix.
func (c *converter) newOperation(tag, summary, description string, idParts ...string) *openapi3.Operation {
	op := &openapi3.Operation{
		Summary:     summary,
		Description: description,
		Responses:   openapi3.NewResponses(),
	}
	op.Responses.Delete("default")
	if tag != "" {
		op.Tags = []string{tag}
	}
	if c.settings.OperationIDs && len(idParts) > 0 {
		op.OperationID = c.operationID(idParts...)
	}
	c.errorResponses(op.Responses)
	return op
}

// operationID joins the id parts and keeps the result unique across the
// document, mirroring how template parameter names are disambiguated.
func (c *converter) operationID(parts ...string) string {
	id := strings.Join(parts, ".")
	n := c.usedIDs[id]
	c.usedIDs[id]++
	if n == 0 {
		return id
	}
	return fmt.Sprintf("%s%d", id, n)
}

// resourceTag registers and returns the tag of a resource path,
// `{Source}.{FinalTargetType}`.
func (c *converter) resourceTag(path *odatapath.Path) string {
	t := path.LastEntityType()
	return c.tag(path.SourceName()+"."+t.Name, c.resourceDescription(path))
}

// resourceDescription returns the Core.Description of the most specific
// named element along the path: the last navigation property, or the
// navigation source.
func (c *converter) resourceDescription(path *odatapath.Path) string {
	if nav := path.LastNavigation(); nav != nil {
		return edm.Description(nav.Property)
	}
	switch s := path.Source().(type) {
	case *odatapath.EntitySetSegment:
		return edm.Description(s.Set)
	case *odatapath.SingletonSegment:
		return edm.Description(s.Singleton)
	}
	return ""
}

func (c *converter) entitySetItem(path *odatapath.Path, item *openapi3.PathItem) {
	source := path.Source().(*odatapath.EntitySetSegment)
	set, t := source.Set, source.Type
	tag := c.resourceTag(path)
	description := edm.Description(set)

	get := c.newOperation(tag, fmt.Sprintf("Get entities from %s", set.Name), description,
		set.Name, t.Name, "List"+t.Name)
	get.Parameters = c.collectionParameters(t)
	c.jsonResponse(get, "200", "Retrieved entities", schemaRef(t.QualifiedName()+"CollectionResponse"))
	item.Get = get

	post := c.newOperation(tag, fmt.Sprintf("Add new entity to %s", set.Name), description,
		set.Name, t.Name, "Create"+t.Name)
	post.RequestBody = jsonBody("New entity", schemaRef(t.QualifiedName()))
	c.jsonResponse(post, "201", "Created entity", schemaRef(t.QualifiedName()))
	item.Post = post
}

func (c *converter) entityItem(path *odatapath.Path, item *openapi3.PathItem) {
	source := path.Source().(*odatapath.EntitySetSegment)
	set, t := source.Set, source.Type
	tag := c.resourceTag(path)
	description := edm.Description(set)

	get := c.newOperation(tag, fmt.Sprintf("Get entity from %s by key", set.Name), description,
		set.Name, t.Name, "Get"+t.Name)
	get.Parameters = c.entityParameters(t)
	c.jsonResponse(get, "200", "Retrieved entity", schemaRef(t.QualifiedName()))
	item.Get = get

	patch := c.newOperation(tag, fmt.Sprintf("Update entity in %s", set.Name), description,
		set.Name, t.Name, "Update"+t.Name)
	patch.RequestBody = jsonBody("New property values", schemaRef(t.QualifiedName()))
	emptyResponse(patch, "204", "Success")
	item.Patch = patch

	del := c.newOperation(tag, fmt.Sprintf("Delete entity from %s", set.Name), description,
		set.Name, t.Name, "Delete"+t.Name)
	del.Parameters = openapi3.Parameters{ifMatchParameter()}
	emptyResponse(del, "204", "Success")
	item.Delete = del
}

func (c *converter) singletonItem(path *odatapath.Path, item *openapi3.PathItem) {
	source := path.Source().(*odatapath.SingletonSegment)
	singleton, t := source.Singleton, source.Type
	tag := c.resourceTag(path)
	description := edm.Description(singleton)

	get := c.newOperation(tag, fmt.Sprintf("Get %s", singleton.Name), description,
		singleton.Name, t.Name, "Get"+t.Name)
	get.Parameters = c.entityParameters(t)
	c.jsonResponse(get, "200", "Retrieved entity", schemaRef(t.QualifiedName()))
	item.Get = get

	patch := c.newOperation(tag, fmt.Sprintf("Update %s", singleton.Name), description,
		singleton.Name, t.Name, "Update"+t.Name)
	patch.RequestBody = jsonBody("New property values", schemaRef(t.QualifiedName()))
	emptyResponse(patch, "204", "Success")
	item.Patch = patch
}

func (c *converter) navigationCollectionItem(path *odatapath.Path, item *openapi3.PathItem) {
	nav := path.LastNavigation()
	t := nav.Type
	tag := c.resourceTag(path)
	description := edm.Description(nav.Property)
	source := path.SourceName()
	base := strings.Join(path.PrefixIdentifiers(), ".")

	get := c.newOperation(tag, fmt.Sprintf("Get %s from %s", nav.Property.Name, source), description,
		base, "List"+t.Name)
	get.Parameters = c.collectionParameters(t)
	c.jsonResponse(get, "200", "Retrieved entities", schemaRef(t.QualifiedName()+"CollectionResponse"))
	item.Get = get

	if path.Contained() {
		post := c.newOperation(tag, fmt.Sprintf("Add new entity to %s of %s", nav.Property.Name, source), description,
			base, "Create"+t.Name)
		post.RequestBody = jsonBody("New entity", schemaRef(t.QualifiedName()))
		c.jsonResponse(post, "201", "Created entity", schemaRef(t.QualifiedName()))
		item.Post = post
	}
}

func (c *converter) navigationSingleItem(path *odatapath.Path, item *openapi3.PathItem) {
	nav := path.LastNavigation()
	t := nav.Type
	tag := c.resourceTag(path)
	description := edm.Description(nav.Property)
	source := path.SourceName()
	base := strings.Join(path.PrefixIdentifiers(), ".")

	get := c.newOperation(tag, fmt.Sprintf("Get %s from %s", nav.Property.Name, source), description,
		base, "Get"+t.Name)
	get.Parameters = c.entityParameters(t)
	c.jsonResponse(get, "200", "Retrieved entity", schemaRef(t.QualifiedName()))
	item.Get = get

	if !path.Contained() {
		return
	}
	patch := c.newOperation(tag, fmt.Sprintf("Update %s of %s", nav.Property.Name, source), description,
		base, "Update"+t.Name)
	patch.RequestBody = jsonBody("New property values", schemaRef(t.QualifiedName()))
	emptyResponse(patch, "204", "Success")
	item.Patch = patch

	if nav.Property.Nullable {
		del := c.newOperation(tag, fmt.Sprintf("Delete %s of %s", nav.Property.Name, source), description,
			base, "Delete"+t.Name)
		del.Parameters = openapi3.Parameters{ifMatchParameter()}
		emptyResponse(del, "204", "Success")
		item.Delete = del
	}
}

func (c *converter) navigationEntityItem(path *odatapath.Path, item *openapi3.PathItem) {
	nav := path.LastNavigation()
	t := path.LastEntityType()
	tag := c.resourceTag(path)
	description := edm.Description(nav.Property)
	source := path.SourceName()
	base := strings.Join(path.PrefixIdentifiers(), ".")

	get := c.newOperation(tag, fmt.Sprintf("Get %s from %s by key", nav.Property.Name, source), description,
		base, "Get"+t.Name)
	get.Parameters = c.entityParameters(t)
	c.jsonResponse(get, "200", "Retrieved entity", schemaRef(t.QualifiedName()))
	item.Get = get

	if !path.Contained() {
		return
	}
	patch := c.newOperation(tag, fmt.Sprintf("Update %s of %s", nav.Property.Name, source), description,
		base, "Update"+t.Name)
	patch.RequestBody = jsonBody("New property values", schemaRef(t.QualifiedName()))
	emptyResponse(patch, "204", "Success")
	item.Patch = patch

	del := c.newOperation(tag, fmt.Sprintf("Delete %s of %s", nav.Property.Name, source), description,
		base, "Delete"+t.Name)
	del.Parameters = openapi3.Parameters{ifMatchParameter()}
	emptyResponse(del, "204", "Success")
	item.Delete = del
}

func (c *converter) countItem(path *odatapath.Path, item *openapi3.PathItem) {
	tag := c.resourceTag(path)
	identifiers := path.PrefixIdentifiers()
	name := identifiers[len(identifiers)-1]

	get := c.newOperation(tag, fmt.Sprintf("Get the number of items in %s", name), c.resourceDescription(path),
		strings.Join(identifiers, "."), "GetCount")
	get.Parameters = openapi3.Parameters{paramRef("filter"), paramRef("search")}
	c.successResponse(get, "200", "The count of the resource", textContent(schemaRef("odata.count")))
	item.Get = get
}

func (c *converter) refSingleItem(path *odatapath.Path, item *openapi3.PathItem) {
	nav := path.LastNavigation()
	tag := c.resourceTag(path)
	description := edm.Description(nav.Property)
	source := path.SourceName()
	identifiers := path.PrefixIdentifiers()
	base := strings.Join(identifiers[:len(identifiers)-1], ".")

	get := c.newOperation(tag, fmt.Sprintf("Get ref of %s from %s", nav.Property.Name, source), description,
		base, "GetRef"+nav.Property.Name)
	c.jsonResponse(get, "200", "Retrieved entity reference", schemaRef("odata.entityReference"))
	item.Get = get

	put := c.newOperation(tag, fmt.Sprintf("Update ref of %s in %s", nav.Property.Name, source), description,
		base, "UpdateRef"+nav.Property.Name)
	put.RequestBody = jsonBody("New entity reference", schemaRef("odata.entityReference"))
	emptyResponse(put, "204", "Success")
	item.Put = put

	if nav.Property.Nullable {
		del := c.newOperation(tag, fmt.Sprintf("Delete ref of %s in %s", nav.Property.Name, source), description,
			base, "DeleteRef"+nav.Property.Name)
		del.Parameters = openapi3.Parameters{ifMatchParameter()}
		emptyResponse(del, "204", "Success")
		item.Delete = del
	}
}

func (c *converter) refCollectionItem(path *odatapath.Path, item *openapi3.PathItem) {
	nav := path.LastNavigation()
	tag := c.resourceTag(path)
	description := edm.Description(nav.Property)
	source := path.SourceName()
	identifiers := path.PrefixIdentifiers()
	base := strings.Join(identifiers[:len(identifiers)-1], ".")

	get := c.newOperation(tag, fmt.Sprintf("Get refs of %s from %s", nav.Property.Name, source), description,
		base, "GetRef"+nav.Property.Name)
	get.Parameters = openapi3.Parameters{
		paramRef("top"),
		paramRef("skip"),
		paramRef("search"),
		paramRef("filter"),
	}
	if c.settings.Count {
		get.Parameters = append(get.Parameters, paramRef("count"))
	}
	c.jsonResponse(get, "200", "Retrieved entity references", c.referenceCollectionSchema())
	item.Get = get

	post := c.newOperation(tag, fmt.Sprintf("Add ref to %s of %s", nav.Property.Name, source), description,
		base, "CreateRef"+nav.Property.Name)
	post.RequestBody = jsonBody("New entity reference", schemaRef("odata.entityReference"))
	c.jsonResponse(post, "201", "Created entity reference", schemaRef("odata.entityReference"))
	item.Post = post

	del := c.newOperation(tag, fmt.Sprintf("Delete ref of %s in %s", nav.Property.Name, source), description,
		base, "DeleteRef"+nav.Property.Name)
	del.Parameters = openapi3.Parameters{refIDParameter(c.settings), ifMatchParameter()}
	emptyResponse(del, "204", "Success")
	item.Delete = del
}

func (c *converter) valueItem(path *odatapath.Path, item *openapi3.PathItem) {
	t := path.LastEntityType()
	tag := c.resourceTag(path)
	description := c.resourceDescription(path)
	idParts := path.PrefixIdentifiers()
	if len(idParts) == 1 {
		idParts = append(idParts, t.Name)
	}
	base := strings.Join(idParts, ".")

	get := c.newOperation(tag, fmt.Sprintf("Get media content for %s by key", t.Name), description,
		base, "GetMediaContent")
	c.successResponse(get, "200", "Retrieved media content", binaryContent())
	item.Get = get

	put := c.newOperation(tag, fmt.Sprintf("Update media content for %s by key", t.Name), description,
		base, "UpdateMediaContent")
	put.RequestBody = &openapi3.RequestBodyRef{Value: &openapi3.RequestBody{
		Description: "New media content",
		Required:    true,
		Content:     binaryContent(),
	}}
	emptyResponse(put, "204", "Success")
	item.Put = put
}

func (c *converter) castCollectionItem(path *odatapath.Path, item *openapi3.PathItem) {
	t := path.Last().(*odatapath.TypeCastSegment).Type
	tag := c.resourceTag(path)
	identifiers := path.PrefixIdentifiers()
	base := strings.Join(identifiers, ".")

	get := c.newOperation(tag,
		fmt.Sprintf("Get the items of type %s in %s", t.QualifiedName(), identifiers[len(identifiers)-1]),
		describe(t),
		base, t.Name, "List"+t.Name)
	get.Parameters = c.collectionParameters(t)
	c.jsonResponse(get, "200", "Retrieved entities", schemaRef(t.QualifiedName()+"CollectionResponse"))
	item.Get = get
}

func (c *converter) castSingleItem(path *odatapath.Path, item *openapi3.PathItem) {
	t := path.Last().(*odatapath.TypeCastSegment).Type
	tag := c.resourceTag(path)
	identifiers := path.PrefixIdentifiers()
	base := strings.Join(identifiers, ".")

	get := c.newOperation(tag,
		fmt.Sprintf("Get the item of type %s in %s", t.QualifiedName(), identifiers[len(identifiers)-1]),
		describe(t),
		base, t.Name, "Get"+t.Name)
	get.Parameters = c.entityParameters(t)
	c.jsonResponse(get, "200", "Retrieved entity", schemaRef(t.QualifiedName()))
	item.Get = get
}

func (c *converter) boundActionItem(path *odatapath.Path, item *openapi3.PathItem) {
	action := path.Last().(*odatapath.OperationSegment).Action
	tag := c.tag(path.SourceName()+".Actions", "")
	base := strings.Join(path.PrefixIdentifiers(), ".")

	post := c.newOperation(tag, fmt.Sprintf("Invoke action %s", action.Name), describe(action),
		base, action.Name)
	post.RequestBody = c.actionBody(action)
	c.operationResponses(post, action.ReturnType)
	item.Post = post
}

func (c *converter) boundFunctionItem(path *odatapath.Path, template *odatapath.Template, item *openapi3.PathItem) {
	function := path.Last().(*odatapath.OperationSegment).Function
	tag := c.tag(path.SourceName()+".Functions", "")
	base := strings.Join(path.PrefixIdentifiers(), ".")

	get := c.newOperation(tag, fmt.Sprintf("Invoke function %s", function.Name), describe(function),
		base, function.Name)
	for _, fp := range template.FunctionParameters {
		get.Parameters = append(get.Parameters, c.functionParameter(fp))
	}
	c.operationResponses(get, function.ReturnType)
	item.Get = get
}

func (c *converter) actionImportItem(path *odatapath.Path, item *openapi3.PathItem) {
	segment := path.Last().(*odatapath.OperationImportSegment)
	tag := c.tag("OperationImports", "")
	description := describe(segment.ActionImport)
	if description == "" {
		description = describe(segment.Action)
	}

	post := c.newOperation(tag, fmt.Sprintf("Invoke action %s", segment.Name()), description,
		"OperationImport", segment.Name())
	post.RequestBody = c.actionBody(segment.Action)
	c.operationResponses(post, segment.Action.ReturnType)
	item.Post = post
}

func (c *converter) functionImportItem(path *odatapath.Path, template *odatapath.Template, item *openapi3.PathItem) {
	segment := path.Last().(*odatapath.OperationImportSegment)
	tag := c.tag("OperationImports", "")
	description := describe(segment.FunctionImport)
	if description == "" {
		description = describe(segment.Function)
	}

	get := c.newOperation(tag, fmt.Sprintf("Invoke function %s", segment.Name()), description,
		"OperationImport", segment.Name())
	for _, fp := range template.FunctionParameters {
		get.Parameters = append(get.Parameters, c.functionParameter(fp))
	}
	c.operationResponses(get, segment.Function.ReturnType)
	item.Get = get
}

func (c *converter) serviceRootItem(item *openapi3.PathItem) {
	get := c.newOperation("", "Get the service document", "")
	c.jsonResponse(get, "200", "The service document", schemaRef("odata.serviceDocument"))
	item.Get = get
}

// actionBody wraps the non-binding parameters of an action as a JSON
// object body, or nil for parameterless actions.
func (c *converter) actionBody(action *edm.Action) *openapi3.RequestBodyRef {
	parameters := action.InvocationParameters()
	if len(parameters) == 0 {
		return nil
	}
	properties := openapi3.Schemas{}
	for _, p := range parameters {
		properties[p.Name] = c.typeSchema(p.Type, p.Nullable)
	}
	return jsonBody("Action parameters", &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type:       &openapi3.Types{openapi3.TypeObject},
		Properties: properties,
	}})
}

// operationResponses sets the success response of an action or function
// invocation: the return schema, or `204` for void actions.
func (c *converter) operationResponses(op *openapi3.Operation, rt *edm.ReturnType) {
	if rt == nil {
		emptyResponse(op, "204", "Success")
		return
	}
	c.jsonResponse(op, "200", "Success", c.returnSchema(rt))
}

// returnSchema maps an operation return type. Collections of entity types
// reuse the collection response wrapper; other collections inline the
// `value` array shape. A null result is delivered as `204`, so the
// declared nullability is not carried into the schema.
func (c *converter) returnSchema(rt *edm.ReturnType) *openapi3.SchemaRef {
	if rt.Type.Collection {
		element := rt.Type.Element()
		if c.model.EntityType(element.Name) != nil {
			return schemaRef(element.Name + "CollectionResponse")
		}
		return &openapi3.SchemaRef{Value: &openapi3.Schema{
			Type: &openapi3.Types{openapi3.TypeObject},
			Properties: openapi3.Schemas{
				"value": {Value: &openapi3.Schema{
					Type:  &openapi3.Types{openapi3.TypeArray},
					Items: c.typeSchema(element, false),
				}},
			},
		}}
	}
	return c.typeSchema(rt.Type, false)
}
