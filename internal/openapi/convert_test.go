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
	"encoding/json"
	"slices"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"
	"github.com/odata2openapi/odata2openapi/internal/edm"
	"github.com/odata2openapi/odata2openapi/internal/sample"
)

// newTestConverter builds a converter over the sample model, for tests that
// exercise one mapping function at a time.
func newTestConverter(settings *Settings) *converter {
	if settings == nil {
		settings = NewSettings()
	}
	return &converter{
		model:    sample.Model(),
		settings: settings,
		usedIDs:  map[string]int{},
		tags:     map[string]string{},
	}
}

// asJSON round-trips a document fragment through its JSON form. The OpenAPI
// types carry unexported state, so tests compare the serialized shape.
func asJSON(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	return out
}

func mustConvert(t *testing.T, options map[string]string) *openapi3.T {
	t.Helper()
	settings := NewSettings()
	if err := settings.Apply(options); err != nil {
		t.Fatal(err)
	}
	doc, err := Convert(sample.Model(), settings)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func pathItemFor(t *testing.T, doc *openapi3.T, path string) *openapi3.PathItem {
	t.Helper()
	item := doc.Paths.Value(path)
	if item == nil {
		t.Fatalf("missing path %q", path)
	}
	return item
}

// parameterNames flattens a parameter list to component references and
// inline names, in order.
func parameterNames(params openapi3.Parameters) []string {
	var names []string
	for _, p := range params {
		if p.Ref != "" {
			names = append(names, p.Ref)
		} else {
			names = append(names, p.Value.Name)
		}
	}
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func TestConvertDocument(t *testing.T) {
	doc := mustConvert(t, nil)
	if doc.OpenAPI != "3.0.1" {
		t.Errorf("mismatched OpenAPI version, want=3.0.1, got=%s", doc.OpenAPI)
	}
	if got := doc.Info.Title; got != "OData Service for namespace ODataDemo" {
		t.Errorf("mismatched title: %q", got)
	}
	if got := doc.Info.Version; got != "1.0.0" {
		t.Errorf("mismatched document version: %q", got)
	}
	if got := doc.Info.Description; got != "This OData service is located at [http://localhost](http://localhost)" {
		t.Errorf("mismatched description: %q", got)
	}
	if len(doc.Servers) != 1 || doc.Servers[0].URL != "http://localhost" {
		t.Errorf("mismatched servers: %v", doc.Servers)
	}
}

func TestConvertPaths(t *testing.T) {
	doc := mustConvert(t, nil)
	want := []string{
		"/Products",
		"/Products/$count",
		"/Products({ID})",
		"/Products/ODataDemo.Top(count={count})",
		"/Products({ID})/ODataDemo.Rate",
		"/Products({ID})/Category",
		"/Products({ID})/Category/$ref",
		"/Products({ID})/Supplier",
		"/Products({ID})/Supplier/$ref",
		"/Categories",
		"/Categories/$count",
		"/Categories({ID})",
		"/Categories({ID})/Products",
		"/Categories({ID})/Products/$count",
		"/Categories({ID})/Products({ID1})",
		"/Categories({ID})/Products/$ref",
		"/Suppliers",
		"/Suppliers/$count",
		"/Suppliers({ID})",
		"/Suppliers({ID})/Branches",
		"/Suppliers({ID})/Branches/$count",
		"/Suppliers({ID})/Branches({ID1})",
		"/Advertisements",
		"/Advertisements/$count",
		"/Advertisements({ID})",
		"/Advertisements({ID})/$value",
		"/Contoso",
		"/Contoso/Branches",
		"/Contoso/Branches/$count",
		"/Contoso/Branches({ID})",
		"/Reset",
		"/Best()",
		"/Best(count={count})",
	}
	slices.Sort(want)
	got := sortedKeys(doc.Paths.Map())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatched paths (-want, +got):\n%s", diff)
	}
}

func TestConvertTags(t *testing.T) {
	doc := mustConvert(t, nil)
	var got []string
	descriptions := map[string]string{}
	for _, tag := range doc.Tags {
		got = append(got, tag.Name)
		descriptions[tag.Name] = tag.Description
	}
	want := []string{
		"Advertisements.Advertisement",
		"Categories.Category",
		"Categories.Product",
		"Contoso.Branch",
		"Contoso.Supplier",
		"OperationImports",
		"Products.Actions",
		"Products.Category",
		"Products.Functions",
		"Products.Product",
		"Products.Supplier",
		"Suppliers.Branch",
		"Suppliers.Supplier",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatched tags (-want, +got):\n%s", diff)
	}
	if got := descriptions["Products.Product"]; got != sample.ProductsDescription {
		t.Errorf("mismatched tag description: %q", got)
	}
}

func TestConvertComponents(t *testing.T) {
	doc := mustConvert(t, nil)
	wantSchemas := []string{
		"ODataDemo.Advertisement",
		"ODataDemo.AdvertisementCollectionResponse",
		"ODataDemo.Address",
		"ODataDemo.Branch",
		"ODataDemo.BranchCollectionResponse",
		"ODataDemo.Category",
		"ODataDemo.CategoryCollectionResponse",
		"ODataDemo.FeaturedProduct",
		"ODataDemo.FeaturedProductCollectionResponse",
		"ODataDemo.Product",
		"ODataDemo.ProductCollectionResponse",
		"ODataDemo.StockLevel",
		"ODataDemo.Supplier",
		"ODataDemo.SupplierCollectionResponse",
		"ODataDemo.Weight",
		"odata.count",
		"odata.entityReference",
		"odata.error",
		"odata.error.detail",
		"odata.error.main",
	}
	if diff := cmp.Diff(wantSchemas, sortedKeys(doc.Components.Schemas)); diff != "" {
		t.Errorf("mismatched component schemas (-want, +got):\n%s", diff)
	}
	wantParameters := []string{"count", "filter", "search", "skip", "top"}
	if diff := cmp.Diff(wantParameters, sortedKeys(doc.Components.Parameters)); diff != "" {
		t.Errorf("mismatched component parameters (-want, +got):\n%s", diff)
	}
	wantResponses := []string{"error"}
	if diff := cmp.Diff(wantResponses, sortedKeys(doc.Components.Responses)); diff != "" {
		t.Errorf("mismatched component responses (-want, +got):\n%s", diff)
	}
}

func TestConvertValidatesModel(t *testing.T) {
	model := edm.NewTestModel(&edm.Schema{
		Namespace: "Broken",
		Container: &edm.EntityContainer{
			Name:      "Container",
			Namespace: "Broken",
			EntitySets: []*edm.EntitySet{
				{Name: "Things", EntityType: "Broken.Missing"},
			},
		},
	})
	if _, err := Convert(model, nil); err == nil {
		t.Errorf("expected a validation error for an unresolved entity set type")
	}
}

func TestConvertTitleOverride(t *testing.T) {
	doc := mustConvert(t, map[string]string{
		"title":            "Demo API",
		"document-version": "7.0.0",
		"service-root":     sample.ServiceRoot,
	})
	if doc.Info.Title != "Demo API" {
		t.Errorf("mismatched title: %q", doc.Info.Title)
	}
	if doc.Info.Version != "7.0.0" {
		t.Errorf("mismatched version: %q", doc.Info.Version)
	}
	if doc.Servers[0].URL != sample.ServiceRoot {
		t.Errorf("mismatched server URL: %q", doc.Servers[0].URL)
	}
}

func TestConvertWithoutCount(t *testing.T) {
	doc := mustConvert(t, map[string]string{"count": "false"})
	if doc.Paths.Value("/Products/$count") != nil {
		t.Errorf("unexpected $count path")
	}
	if doc.Paths.Len() != 26 {
		t.Errorf("mismatched path count, want=26, got=%d", doc.Paths.Len())
	}
	if _, ok := doc.Components.Parameters["count"]; ok {
		t.Errorf("unexpected count parameter component")
	}
	got := parameterNames(pathItemFor(t, doc, "/Products").Get.Parameters)
	want := []string{
		"#/components/parameters/top",
		"#/components/parameters/skip",
		"#/components/parameters/search",
		"#/components/parameters/filter",
		"$orderby",
		"$select",
		"$expand",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatched list parameters (-want, +got):\n%s", diff)
	}
	wrapper := asJSON(t, doc.Components.Schemas["ODataDemo.ProductCollectionResponse"])
	if _, ok := wrapper["properties"].(map[string]any)["@odata.count"]; ok {
		t.Errorf("unexpected count control in %v", wrapper)
	}
}

func TestConvertSuccessRange(t *testing.T) {
	doc := mustConvert(t, map[string]string{"success-range": "true"})
	item := pathItemFor(t, doc, "/Products")
	if item.Get.Responses.Value("2XX") == nil || item.Get.Responses.Value("200") != nil {
		t.Errorf("expected the list response under 2XX")
	}
	if item.Post.Responses.Value("2XX") == nil || item.Post.Responses.Value("201") != nil {
		t.Errorf("expected the create response under 2XX")
	}
	entity := pathItemFor(t, doc, "/Products({ID})")
	if entity.Patch.Responses.Value("204") == nil {
		t.Errorf("expected the update response to stay under 204")
	}
}

func TestConvertErrorRanges(t *testing.T) {
	doc := mustConvert(t, map[string]string{"errors-as-default": "false"})
	responses := pathItemFor(t, doc, "/Products").Get.Responses
	if responses.Value("default") != nil {
		t.Errorf("unexpected default response")
	}
	for _, code := range []string{"4XX", "5XX"} {
		ref := responses.Value(code)
		if ref == nil || ref.Ref != "#/components/responses/error" {
			t.Errorf("missing error response under %s", code)
		}
	}
}

func TestConvertODataVersion401(t *testing.T) {
	doc := mustConvert(t, map[string]string{"odata-version": "4.01", "pagination": "true"})
	wrapper := asJSON(t, doc.Components.Schemas["ODataDemo.ProductCollectionResponse"])
	properties := wrapper["properties"].(map[string]any)
	want := []string{"@count", "@nextLink", "value"}
	if diff := cmp.Diff(want, sortedKeys(properties)); diff != "" {
		t.Errorf("mismatched wrapper properties (-want, +got):\n%s", diff)
	}
	reference := asJSON(t, doc.Components.Schemas["odata.entityReference"])
	if diff := cmp.Diff([]any{"@id"}, reference["required"]); diff != "" {
		t.Errorf("mismatched entity reference (-want, +got):\n%s", diff)
	}
}

func TestConvertRootPath(t *testing.T) {
	doc := mustConvert(t, map[string]string{"root-path": "true"})
	item := pathItemFor(t, doc, "/")
	if item.Get == nil || item.Get.Summary != "Get the service document" {
		t.Errorf("mismatched service document operation: %v", item.Get)
	}
	if item.Get.OperationID != "" {
		t.Errorf("unexpected operationId %q on the service document", item.Get.OperationID)
	}
	if _, ok := doc.Components.Schemas["odata.serviceDocument"]; !ok {
		t.Errorf("missing service document schema")
	}
}

func TestConvertKeyAsSegment(t *testing.T) {
	doc := mustConvert(t, map[string]string{"key-as-segment": "true"})
	if doc.Paths.Value("/Products/{ID}") == nil {
		t.Errorf("missing key-as-segment path")
	}
	if doc.Paths.Value("/Products({ID})") != nil {
		t.Errorf("unexpected parenthesized key path")
	}
}

func TestConvertWithoutOperationIDs(t *testing.T) {
	doc := mustConvert(t, map[string]string{"operation-ids": "false"})
	if got := pathItemFor(t, doc, "/Products").Get.OperationID; got != "" {
		t.Errorf("unexpected operationId %q", got)
	}
}
