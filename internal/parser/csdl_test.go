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

package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/odata2openapi/odata2openapi/internal/edm"
	"github.com/odata2openapi/odata2openapi/internal/sample"
)

const csdlPreamble = `<?xml version="1.0" encoding="utf-8"?>
<edmx:Edmx xmlns:edmx="http://docs.oasis-open.org/odata/ns/edmx" Version="4.0">
  <edmx:DataServices>
    <Schema xmlns="http://docs.oasis-open.org/odata/ns/edm" Namespace="ODataDemo" Alias="Self">
`

const csdlTrailer = `
    </Schema>
  </edmx:DataServices>
</edmx:Edmx>
`

func TestCSDL_EntityType(t *testing.T) {
	const entityTypes = `
      <EntityType Name="Product" HasStream="true">
        <Key>
          <PropertyRef Name="ID"/>
        </Key>
        <Property Name="ID" Type="Edm.Int32" Nullable="false"/>
        <Property Name="Name" Type="Edm.String" MaxLength="40" DefaultValue="unnamed">
          <Annotation Term="Org.OData.Core.V1.Description" String="The display name."/>
        </Property>
        <Property Name="Price" Type="Edm.Decimal" Precision="10" Scale="2"/>
        <NavigationProperty Name="Category" Type="Self.Category" Nullable="false" Partner="Products"/>
      </EntityType>
      <EntityType Name="Category">
        <Key>
          <PropertyRef Name="ID"/>
        </Key>
        <Property Name="ID" Type="Edm.Int32" Nullable="false"/>
        <NavigationProperty Name="Products" Type="Collection(Self.Product)" Partner="Category" ContainsTarget="true"/>
      </EntityType>
`
	model, err := makeModel([]byte(csdlPreamble + entityTypes + csdlTrailer))
	if err != nil {
		t.Fatalf("Error in makeModel() %q", err)
	}

	defaultValue := "unnamed"
	maxLength := 40
	precision := 10
	scale := 2
	want := &edm.EntityType{
		Name:      "Product",
		Namespace: "ODataDemo",
		HasStream: true,
		Key:       []string{"ID"},
		Properties: []*edm.Property{
			{Name: "ID", Type: edm.TypeRef{Name: "Edm.Int32"}, Nullable: false},
			{
				Name:         "Name",
				Type:         edm.TypeRef{Name: "Edm.String"},
				Nullable:     true,
				MaxLength:    &maxLength,
				DefaultValue: &defaultValue,
				Annotations: []*edm.Annotation{
					{Term: "Org.OData.Core.V1.Description", Value: "The display name."},
				},
			},
			{
				Name:      "Price",
				Type:      edm.TypeRef{Name: "Edm.Decimal"},
				Nullable:  true,
				Precision: &precision,
				Scale:     &scale,
			},
		},
		NavigationProperties: []*edm.NavigationProperty{
			{Name: "Category", Type: edm.TypeRef{Name: "ODataDemo.Category"}, Nullable: false, Partner: "Products"},
		},
	}
	got := model.EntityType("ODataDemo.Product")
	if got == nil {
		t.Fatalf("missing entity type in state")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatched entity type (-want, +got):\n%s", diff)
	}

	nav := model.EntityType("ODataDemo.Category").NavigationProperties[0]
	wantNav := &edm.NavigationProperty{
		Name:           "Products",
		Type:           edm.TypeRef{Name: "ODataDemo.Product", Collection: true},
		Nullable:       true,
		Partner:        "Category",
		ContainsTarget: true,
	}
	if diff := cmp.Diff(wantNav, nav); diff != "" {
		t.Errorf("mismatched navigation property (-want, +got):\n%s", diff)
	}
}

func TestCSDL_ComplexAndEnumTypes(t *testing.T) {
	const types = `
      <ComplexType Name="Address" OpenType="true">
        <Property Name="Street" Type="Edm.String"/>
        <Property Name="City" Type="Edm.String"/>
      </ComplexType>
      <EnumType Name="Color">
        <Member Name="Red"/>
        <Member Name="Green"/>
        <Member Name="Blue" Value="7"/>
      </EnumType>
      <EnumType Name="Access" UnderlyingType="Edm.Int64" IsFlags="true">
        <Member Name="Read" Value="1"/>
        <Member Name="Write" Value="2"/>
      </EnumType>
      <TypeDefinition Name="Weight" UnderlyingType="Edm.Int32">
        <Annotation Term="Org.OData.Core.V1.Description" String="Weight in grams."/>
      </TypeDefinition>
`
	model, err := makeModel([]byte(csdlPreamble + types + csdlTrailer))
	if err != nil {
		t.Fatalf("Error in makeModel() %q", err)
	}

	address := model.ComplexType("ODataDemo.Address")
	if address == nil || !address.OpenType || len(address.Properties) != 2 {
		t.Errorf("mismatched complex type, got=%v", address)
	}

	wantColor := &edm.EnumType{
		Name:           "Color",
		Namespace:      "ODataDemo",
		UnderlyingType: "Edm.Int32",
		Members: []*edm.EnumMember{
			{Name: "Red", Value: 0},
			{Name: "Green", Value: 1},
			{Name: "Blue", Value: 7},
		},
	}
	if diff := cmp.Diff(wantColor, model.EnumType("ODataDemo.Color")); diff != "" {
		t.Errorf("mismatched enum type (-want, +got):\n%s", diff)
	}

	access := model.EnumType("ODataDemo.Access")
	if access == nil || !access.IsFlags || access.UnderlyingType != "Edm.Int64" {
		t.Errorf("mismatched flags enum, got=%v", access)
	}

	weight := model.TypeDefinition("ODataDemo.Weight")
	if weight == nil || weight.UnderlyingType != "Edm.Int32" || edm.Description(weight) != "Weight in grams." {
		t.Errorf("mismatched type definition, got=%v", weight)
	}
}

func TestCSDL_Operations(t *testing.T) {
	const operations = `
      <EntityType Name="Product">
        <Key>
          <PropertyRef Name="ID"/>
        </Key>
        <Property Name="ID" Type="Edm.Int32" Nullable="false"/>
      </EntityType>
      <Action Name="Rate" IsBound="true">
        <Parameter Name="bindingParameter" Type="Self.Product"/>
        <Parameter Name="rating" Type="Edm.Int32" Nullable="false"/>
      </Action>
      <Function Name="Top" IsBound="true" IsComposable="true">
        <Parameter Name="bindingParameter" Type="Collection(Self.Product)"/>
        <Parameter Name="count" Type="Edm.Int32" Nullable="false"/>
        <ReturnType Type="Collection(Self.Product)" Nullable="false"/>
      </Function>
      <EntityContainer Name="DemoService">
        <EntitySet Name="Products" EntityType="Self.Product">
          <NavigationPropertyBinding Path="Category" Target="Categories"/>
        </EntitySet>
        <Singleton Name="Featured" Type="Self.Product"/>
        <ActionImport Name="Reset" Action="Self.Reset"/>
        <FunctionImport Name="Best" Function="Self.Best" EntitySet="Products" IncludeInServiceDocument="true"/>
      </EntityContainer>
`
	model, err := makeModel([]byte(csdlPreamble + operations + csdlTrailer))
	if err != nil {
		t.Fatalf("Error in makeModel() %q", err)
	}

	rate := model.State.ActionsByName["ODataDemo.Rate"]
	if len(rate) != 1 || !rate[0].IsBound {
		t.Fatalf("mismatched action overloads, got=%v", rate)
	}
	if p := rate[0].BindingParameter(); p == nil || p.Type.Name != "ODataDemo.Product" {
		t.Errorf("mismatched binding parameter, got=%v", p)
	}

	top := model.State.BoundFunctions["Collection(ODataDemo.Product)"]
	if len(top) != 1 || top[0].Name != "Top" || !top[0].IsComposable {
		t.Fatalf("mismatched bound functions, got=%v", top)
	}
	wantReturn := &edm.ReturnType{
		Type:     edm.TypeRef{Name: "ODataDemo.Product", Collection: true},
		Nullable: false,
	}
	if diff := cmp.Diff(wantReturn, top[0].ReturnType); diff != "" {
		t.Errorf("mismatched return type (-want, +got):\n%s", diff)
	}

	container := model.Container()
	if container == nil || container.Name != "DemoService" {
		t.Fatalf("mismatched container, got=%v", container)
	}
	wantSet := &edm.EntitySet{
		Name:       "Products",
		EntityType: "ODataDemo.Product",
		Bindings: []*edm.NavigationPropertyBinding{
			{Path: "Category", Target: "Categories"},
		},
		IncludeInServiceDocument: true,
	}
	if diff := cmp.Diff(wantSet, container.EntitySets[0]); diff != "" {
		t.Errorf("mismatched entity set (-want, +got):\n%s", diff)
	}
	if got := container.Singletons[0].Type; got != "ODataDemo.Product" {
		t.Errorf("mismatched singleton type, got=%q", got)
	}
	if got := container.ActionImports[0].Action; got != "ODataDemo.Reset" {
		t.Errorf("mismatched action import target, got=%q", got)
	}
	imp := container.FunctionImports[0]
	if imp.Function != "ODataDemo.Best" || !imp.IncludeInServiceDocument || imp.EntitySet != "Products" {
		t.Errorf("mismatched function import, got=%v", imp)
	}
}

func TestCSDL_OutOfLineAnnotations(t *testing.T) {
	const annotated = `
      <EntityType Name="Product">
        <Key>
          <PropertyRef Name="ID"/>
        </Key>
        <Property Name="ID" Type="Edm.Int32" Nullable="false"/>
        <Property Name="CreatedAt" Type="Edm.DateTimeOffset"/>
      </EntityType>
      <EntityContainer Name="DemoService">
        <EntitySet Name="Products" EntityType="Self.Product"/>
      </EntityContainer>
      <Annotations Target="Self.Product">
        <Annotation Term="Org.OData.Core.V1.Description" String="A sellable item."/>
      </Annotations>
      <Annotations Target="Self.Product/CreatedAt">
        <Annotation Term="Org.OData.Core.V1.Computed" Bool="true"/>
      </Annotations>
      <Annotations Target="Self.DemoService/Products">
        <Annotation Term="Org.OData.Core.V1.Description" String="All products."/>
      </Annotations>
      <Annotations Target="Self.Missing">
        <Annotation Term="Org.OData.Core.V1.Description" String="Dropped."/>
      </Annotations>
`
	model, err := makeModel([]byte(csdlPreamble + annotated + csdlTrailer))
	if err != nil {
		t.Fatalf("Error in makeModel() %q", err)
	}

	product := model.EntityType("ODataDemo.Product")
	if got := edm.Description(product); got != "A sellable item." {
		t.Errorf("mismatched type description, got=%q", got)
	}
	createdAt := model.PropertyOf(product, "CreatedAt")
	if !edm.IsComputed(createdAt) {
		t.Errorf("expected CreatedAt to be computed")
	}
	set := model.State.EntitySetByName["Products"]
	if got := edm.Description(set); got != "All products." {
		t.Errorf("mismatched entity set description, got=%q", got)
	}
}

func TestCSDL_TaggingTermDefault(t *testing.T) {
	const tagged = `
      <EntityType Name="Product">
        <Key>
          <PropertyRef Name="ID"/>
        </Key>
        <Property Name="ID" Type="Edm.Int32" Nullable="false">
          <Annotation Term="Org.OData.Core.V1.Immutable"/>
        </Property>
      </EntityType>
`
	model, err := makeModel([]byte(csdlPreamble + tagged + csdlTrailer))
	if err != nil {
		t.Fatalf("Error in makeModel() %q", err)
	}
	id := model.PropertyOf(model.EntityType("ODataDemo.Product"), "ID")
	if !edm.IsImmutable(id) {
		t.Errorf("expected a valueless tagging term to read as true")
	}
}

func TestCSDL_ReferenceAliases(t *testing.T) {
	const contents = `<?xml version="1.0" encoding="utf-8"?>
<edmx:Edmx xmlns:edmx="http://docs.oasis-open.org/odata/ns/edmx" Version="4.01">
  <edmx:Reference Uri="https://oasis-tcs.github.io/odata-vocabularies/vocabularies/Org.OData.Core.V1.xml">
    <edmx:Include Namespace="Org.OData.Core.V1" Alias="Core"/>
  </edmx:Reference>
  <edmx:DataServices>
    <Schema xmlns="http://docs.oasis-open.org/odata/ns/edm" Namespace="ODataDemo">
      <EntityType Name="Product">
        <Key>
          <PropertyRef Name="ID"/>
        </Key>
        <Property Name="ID" Type="Edm.Int32" Nullable="false">
          <Annotation Term="Core.Description" String="The identifier."/>
        </Property>
      </EntityType>
    </Schema>
  </edmx:DataServices>
</edmx:Edmx>
`
	model, err := makeModel([]byte(contents))
	if err != nil {
		t.Fatalf("Error in makeModel() %q", err)
	}
	id := model.PropertyOf(model.EntityType("ODataDemo.Product"), "ID")
	if got := edm.Description(id); got != "The identifier." {
		t.Errorf("mismatched description via reference alias, got=%q", got)
	}
}

func TestCSDL_UnsupportedVersion(t *testing.T) {
	const contents = `<?xml version="1.0" encoding="utf-8"?>
<edmx:Edmx xmlns:edmx="http://schemas.microsoft.com/ado/2007/06/edmx" Version="1.0">
  <edmx:DataServices/>
</edmx:Edmx>
`
	if _, err := makeModel([]byte(contents)); err == nil {
		t.Errorf("expected an error for a V3 document")
	}
}

func TestCSDL_MissingNamespace(t *testing.T) {
	const contents = `<?xml version="1.0" encoding="utf-8"?>
<edmx:Edmx xmlns:edmx="http://docs.oasis-open.org/odata/ns/edmx" Version="4.0">
  <edmx:DataServices>
    <Schema xmlns="http://docs.oasis-open.org/odata/ns/edm"/>
  </edmx:DataServices>
</edmx:Edmx>
`
	if _, err := makeModel([]byte(contents)); err == nil {
		t.Errorf("expected an error for a schema without a namespace")
	}
}

func TestCSDL_DuplicateNamespace(t *testing.T) {
	const contents = `<?xml version="1.0" encoding="utf-8"?>
<edmx:Edmx xmlns:edmx="http://docs.oasis-open.org/odata/ns/edmx" Version="4.0">
  <edmx:DataServices>
    <Schema xmlns="http://docs.oasis-open.org/odata/ns/edm" Namespace="Dup"/>
    <Schema xmlns="http://docs.oasis-open.org/odata/ns/edm" Namespace="Dup"/>
  </edmx:DataServices>
</edmx:Edmx>
`
	if _, err := makeModel([]byte(contents)); err == nil {
		t.Errorf("expected an error for duplicate schema namespaces")
	}
}

func TestCSDL_Malformed(t *testing.T) {
	if _, err := makeModel([]byte(`<edmx:Edmx`)); err == nil {
		t.Errorf("expected an error for malformed XML")
	}
}

func TestCSDL_FromFile(t *testing.T) {
	const minimal = `
      <EntityType Name="Product">
        <Key>
          <PropertyRef Name="ID"/>
        </Key>
        <Property Name="ID" Type="Edm.Int32" Nullable="false"/>
      </EntityType>
`
	source := filepath.Join(t.TempDir(), "metadata.xml")
	if err := os.WriteFile(source, []byte(csdlPreamble+minimal+csdlTrailer), 0644); err != nil {
		t.Fatal(err)
	}
	model, err := ParseCSDL(source)
	if err != nil {
		t.Fatalf("Error in ParseCSDL() %q", err)
	}
	if model.EntityType("ODataDemo.Product") == nil {
		t.Errorf("missing entity type after file parse")
	}

	if _, err := ParseCSDL(filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestCSDL_SampleRoundTrip(t *testing.T) {
	got, err := makeModel([]byte(sample.Metadata()))
	if err != nil {
		t.Fatalf("Error in makeModel() %q", err)
	}
	if diff := cmp.Diff(sample.Model(), got); diff != "" {
		t.Errorf("mismatched model from sample metadata (-want, +got):\n%s", diff)
	}
}
