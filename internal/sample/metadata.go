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

package sample

// Metadata returns the CSDL document equivalent to Model(). Parsing it
// produces the same model, so tests can cover the parser and the converter
// with one fixture.
func Metadata() string {
	return `<?xml version="1.0" encoding="utf-8"?>
<edmx:Edmx xmlns:edmx="http://docs.oasis-open.org/odata/ns/edmx" Version="4.0">
  <edmx:DataServices>
    <Schema xmlns="http://docs.oasis-open.org/odata/ns/edm" Namespace="ODataDemo">
      <EntityType Name="Product">
        <Key>
          <PropertyRef Name="ID"/>
        </Key>
        <Property Name="ID" Type="Edm.Int32" Nullable="false">
          <Annotation Term="Org.OData.Core.V1.Computed"/>
        </Property>
        <Property Name="Name" Type="Edm.String">
          <Annotation Term="Org.OData.Core.V1.Description" String="The name of the product."/>
        </Property>
        <Property Name="Description" Type="Edm.String"/>
        <Property Name="ReleaseDate" Type="Edm.Date" Nullable="false"/>
        <Property Name="Price" Type="Edm.Decimal" Nullable="false" Precision="10" Scale="2"/>
        <Property Name="Mass" Type="ODataDemo.Weight"/>
        <Property Name="Stock" Type="ODataDemo.StockLevel" Nullable="false"/>
        <NavigationProperty Name="Category" Type="ODataDemo.Category" Nullable="false" Partner="Products"/>
        <NavigationProperty Name="Supplier" Type="ODataDemo.Supplier"/>
        <Annotation Term="Org.OData.Core.V1.Description" String="A product available for purchase."/>
      </EntityType>
      <EntityType Name="FeaturedProduct" BaseType="ODataDemo.Product">
        <Property Name="Banner" Type="Edm.String"/>
      </EntityType>
      <EntityType Name="Category">
        <Key>
          <PropertyRef Name="ID"/>
        </Key>
        <Property Name="ID" Type="Edm.Int32" Nullable="false"/>
        <Property Name="Name" Type="Edm.String"/>
        <NavigationProperty Name="Products" Type="Collection(ODataDemo.Product)" Partner="Category"/>
      </EntityType>
      <EntityType Name="Supplier">
        <Key>
          <PropertyRef Name="ID"/>
        </Key>
        <Property Name="ID" Type="Edm.Int32" Nullable="false"/>
        <Property Name="Name" Type="Edm.String"/>
        <Property Name="Address" Type="ODataDemo.Address"/>
        <NavigationProperty Name="Branches" Type="Collection(ODataDemo.Branch)" ContainsTarget="true"/>
      </EntityType>
      <EntityType Name="Branch">
        <Key>
          <PropertyRef Name="ID"/>
        </Key>
        <Property Name="ID" Type="Edm.Int32" Nullable="false"/>
        <Property Name="Name" Type="Edm.String"/>
      </EntityType>
      <EntityType Name="Advertisement" HasStream="true">
        <Key>
          <PropertyRef Name="ID"/>
        </Key>
        <Property Name="ID" Type="Edm.Guid" Nullable="false"/>
        <Property Name="Name" Type="Edm.String"/>
        <Property Name="AirDate" Type="Edm.DateTimeOffset"/>
      </EntityType>
      <ComplexType Name="Address">
        <Property Name="Street" Type="Edm.String"/>
        <Property Name="City" Type="Edm.String"/>
        <Property Name="State" Type="Edm.String"/>
        <Property Name="ZipCode" Type="Edm.String"/>
        <Property Name="Country" Type="Edm.String"/>
      </ComplexType>
      <EnumType Name="StockLevel" UnderlyingType="Edm.Int32">
        <Member Name="OutOfStock" Value="0"/>
        <Member Name="InStock" Value="1"/>
        <Member Name="Backordered" Value="2"/>
      </EnumType>
      <TypeDefinition Name="Weight" UnderlyingType="Edm.Decimal" Precision="10" Scale="3"/>
      <Action Name="Rate" IsBound="true">
        <Parameter Name="bindingParameter" Type="ODataDemo.Product"/>
        <Parameter Name="Rating" Type="Edm.Int32" Nullable="false"/>
        <Annotation Term="Org.OData.Core.V1.Description" String="Rates the product."/>
      </Action>
      <Action Name="Reset"/>
      <Function Name="Top" IsBound="true" IsComposable="true">
        <Parameter Name="bindingParameter" Type="Collection(ODataDemo.Product)"/>
        <Parameter Name="count" Type="Edm.Int32" Nullable="false"/>
        <ReturnType Type="Collection(ODataDemo.Product)"/>
      </Function>
      <Function Name="Best">
        <ReturnType Type="ODataDemo.Product" Nullable="false"/>
      </Function>
      <Function Name="Best">
        <Parameter Name="count" Type="Edm.Int32" Nullable="false"/>
        <ReturnType Type="Collection(ODataDemo.Product)"/>
      </Function>
      <EntityContainer Name="DemoService">
        <EntitySet Name="Products" EntityType="ODataDemo.Product">
          <NavigationPropertyBinding Path="Category" Target="Categories"/>
          <NavigationPropertyBinding Path="Supplier" Target="Suppliers"/>
          <Annotation Term="Org.OData.Core.V1.Description" String="The product catalog."/>
        </EntitySet>
        <EntitySet Name="Categories" EntityType="ODataDemo.Category">
          <NavigationPropertyBinding Path="Products" Target="Products"/>
        </EntitySet>
        <EntitySet Name="Suppliers" EntityType="ODataDemo.Supplier"/>
        <EntitySet Name="Advertisements" EntityType="ODataDemo.Advertisement"/>
        <Singleton Name="Contoso" Type="ODataDemo.Supplier"/>
        <ActionImport Name="Reset" Action="ODataDemo.Reset"/>
        <FunctionImport Name="Best" Function="ODataDemo.Best" EntitySet="Products" IncludeInServiceDocument="true"/>
      </EntityContainer>
    </Schema>
  </edmx:DataServices>
</edmx:Edmx>
`
}
