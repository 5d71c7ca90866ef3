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

// Package sample provides sample data for testing.
package sample

import (
	"github.com/odata2openapi/odata2openapi/internal/edm"
)

const (
	Namespace     = "ODataDemo"
	ContainerName = "DemoService"
	ServiceRoot   = "https://services.odata.org/V4/OData/OData.svc"

	ProductDescription  = "A product available for purchase."
	ProductsDescription = "The product catalog."
)

// Model returns the demo service model with the state built. Every element
// is freshly allocated, so tests may mutate the result.
func Model() *edm.Model {
	return edm.NewTestModel(Schema())
}

func Schema() *edm.Schema {
	return &edm.Schema{
		Namespace: Namespace,
		EntityTypes: []*edm.EntityType{
			Product(),
			FeaturedProduct(),
			Category(),
			Supplier(),
			Branch(),
			Advertisement(),
		},
		ComplexTypes:    []*edm.ComplexType{Address()},
		EnumTypes:       []*edm.EnumType{StockLevel()},
		TypeDefinitions: []*edm.TypeDefinition{Weight()},
		Actions:         []*edm.Action{Rate(), Reset()},
		Functions:       []*edm.Function{Top(), Best(), BestOf()},
		Container:       Container(),
	}
}

func Product() *edm.EntityType {
	return &edm.EntityType{
		Name:      "Product",
		Namespace: Namespace,
		Key:       []string{"ID"},
		Properties: []*edm.Property{
			{
				Name:        "ID",
				Type:        edm.TypeRef{Name: "Edm.Int32"},
				Annotations: []*edm.Annotation{{Term: edm.TermComputed, Bool: true}},
			},
			{
				Name:     "Name",
				Type:     edm.TypeRef{Name: "Edm.String"},
				Nullable: true,
				Annotations: []*edm.Annotation{
					{Term: edm.TermDescription, Value: "The name of the product."},
				},
			},
			{
				Name:     "Description",
				Type:     edm.TypeRef{Name: "Edm.String"},
				Nullable: true,
			},
			{
				Name: "ReleaseDate",
				Type: edm.TypeRef{Name: "Edm.Date"},
			},
			{
				Name:      "Price",
				Type:      edm.TypeRef{Name: "Edm.Decimal"},
				Precision: intp(10),
				Scale:     intp(2),
			},
			{
				Name:     "Mass",
				Type:     edm.TypeRef{Name: "ODataDemo.Weight"},
				Nullable: true,
			},
			{
				Name: "Stock",
				Type: edm.TypeRef{Name: "ODataDemo.StockLevel"},
			},
		},
		NavigationProperties: []*edm.NavigationProperty{
			{
				Name:    "Category",
				Type:    edm.TypeRef{Name: "ODataDemo.Category"},
				Partner: "Products",
			},
			{
				Name:     "Supplier",
				Type:     edm.TypeRef{Name: "ODataDemo.Supplier"},
				Nullable: true,
			},
		},
		Annotations: []*edm.Annotation{
			{Term: edm.TermDescription, Value: ProductDescription},
		},
	}
}

func FeaturedProduct() *edm.EntityType {
	return &edm.EntityType{
		Name:      "FeaturedProduct",
		Namespace: Namespace,
		BaseType:  "ODataDemo.Product",
		Properties: []*edm.Property{
			{
				Name:     "Banner",
				Type:     edm.TypeRef{Name: "Edm.String"},
				Nullable: true,
			},
		},
	}
}

func Category() *edm.EntityType {
	return &edm.EntityType{
		Name:      "Category",
		Namespace: Namespace,
		Key:       []string{"ID"},
		Properties: []*edm.Property{
			{
				Name: "ID",
				Type: edm.TypeRef{Name: "Edm.Int32"},
			},
			{
				Name:     "Name",
				Type:     edm.TypeRef{Name: "Edm.String"},
				Nullable: true,
			},
		},
		NavigationProperties: []*edm.NavigationProperty{
			{
				Name:     "Products",
				Type:     edm.TypeRef{Name: "ODataDemo.Product", Collection: true},
				Nullable: true,
				Partner:  "Category",
			},
		},
	}
}

func Supplier() *edm.EntityType {
	return &edm.EntityType{
		Name:      "Supplier",
		Namespace: Namespace,
		Key:       []string{"ID"},
		Properties: []*edm.Property{
			{
				Name: "ID",
				Type: edm.TypeRef{Name: "Edm.Int32"},
			},
			{
				Name:     "Name",
				Type:     edm.TypeRef{Name: "Edm.String"},
				Nullable: true,
			},
			{
				Name:     "Address",
				Type:     edm.TypeRef{Name: "ODataDemo.Address"},
				Nullable: true,
			},
		},
		NavigationProperties: []*edm.NavigationProperty{
			{
				Name:           "Branches",
				Type:           edm.TypeRef{Name: "ODataDemo.Branch", Collection: true},
				Nullable:       true,
				ContainsTarget: true,
			},
		},
	}
}

func Branch() *edm.EntityType {
	return &edm.EntityType{
		Name:      "Branch",
		Namespace: Namespace,
		Key:       []string{"ID"},
		Properties: []*edm.Property{
			{
				Name: "ID",
				Type: edm.TypeRef{Name: "Edm.Int32"},
			},
			{
				Name:     "Name",
				Type:     edm.TypeRef{Name: "Edm.String"},
				Nullable: true,
			},
		},
	}
}

func Advertisement() *edm.EntityType {
	return &edm.EntityType{
		Name:      "Advertisement",
		Namespace: Namespace,
		HasStream: true,
		Key:       []string{"ID"},
		Properties: []*edm.Property{
			{
				Name: "ID",
				Type: edm.TypeRef{Name: "Edm.Guid"},
			},
			{
				Name:     "Name",
				Type:     edm.TypeRef{Name: "Edm.String"},
				Nullable: true,
			},
			{
				Name:     "AirDate",
				Type:     edm.TypeRef{Name: "Edm.DateTimeOffset"},
				Nullable: true,
			},
		},
	}
}

func Address() *edm.ComplexType {
	return &edm.ComplexType{
		Name:      "Address",
		Namespace: Namespace,
		Properties: []*edm.Property{
			{Name: "Street", Type: edm.TypeRef{Name: "Edm.String"}, Nullable: true},
			{Name: "City", Type: edm.TypeRef{Name: "Edm.String"}, Nullable: true},
			{Name: "State", Type: edm.TypeRef{Name: "Edm.String"}, Nullable: true},
			{Name: "ZipCode", Type: edm.TypeRef{Name: "Edm.String"}, Nullable: true},
			{Name: "Country", Type: edm.TypeRef{Name: "Edm.String"}, Nullable: true},
		},
	}
}

func StockLevel() *edm.EnumType {
	return &edm.EnumType{
		Name:           "StockLevel",
		Namespace:      Namespace,
		UnderlyingType: "Edm.Int32",
		Members: []*edm.EnumMember{
			{Name: "OutOfStock", Value: 0},
			{Name: "InStock", Value: 1},
			{Name: "Backordered", Value: 2},
		},
	}
}

func Weight() *edm.TypeDefinition {
	return &edm.TypeDefinition{
		Name:           "Weight",
		Namespace:      Namespace,
		UnderlyingType: "Edm.Decimal",
		Precision:      intp(10),
		Scale:          intp(3),
	}
}

// Rate is an action bound to a single product.
func Rate() *edm.Action {
	return &edm.Action{
		Name:      "Rate",
		Namespace: Namespace,
		IsBound:   true,
		Parameters: []*edm.Parameter{
			{Name: "bindingParameter", Type: edm.TypeRef{Name: "ODataDemo.Product"}, Nullable: true},
			{Name: "Rating", Type: edm.TypeRef{Name: "Edm.Int32"}},
		},
		Annotations: []*edm.Annotation{
			{Term: edm.TermDescription, Value: "Rates the product."},
		},
	}
}

// Reset is an unbound action exposed through an action import.
func Reset() *edm.Action {
	return &edm.Action{
		Name:      "Reset",
		Namespace: Namespace,
	}
}

// Top is a function bound to a product collection.
func Top() *edm.Function {
	return &edm.Function{
		Name:         "Top",
		Namespace:    Namespace,
		IsBound:      true,
		IsComposable: true,
		Parameters: []*edm.Parameter{
			{Name: "bindingParameter", Type: edm.TypeRef{Name: "ODataDemo.Product", Collection: true}, Nullable: true},
			{Name: "count", Type: edm.TypeRef{Name: "Edm.Int32"}},
		},
		ReturnType: &edm.ReturnType{
			Type:     edm.TypeRef{Name: "ODataDemo.Product", Collection: true},
			Nullable: true,
		},
	}
}

// Best is the parameterless overload of the unbound Best function.
func Best() *edm.Function {
	return &edm.Function{
		Name:      "Best",
		Namespace: Namespace,
		ReturnType: &edm.ReturnType{
			Type: edm.TypeRef{Name: "ODataDemo.Product"},
		},
	}
}

// BestOf is the overload of Best that returns the top `count` products.
func BestOf() *edm.Function {
	return &edm.Function{
		Name:      "Best",
		Namespace: Namespace,
		Parameters: []*edm.Parameter{
			{Name: "count", Type: edm.TypeRef{Name: "Edm.Int32"}},
		},
		ReturnType: &edm.ReturnType{
			Type:     edm.TypeRef{Name: "ODataDemo.Product", Collection: true},
			Nullable: true,
		},
	}
}

func Container() *edm.EntityContainer {
	return &edm.EntityContainer{
		Name:      ContainerName,
		Namespace: Namespace,
		EntitySets: []*edm.EntitySet{
			{
				Name:       "Products",
				EntityType: "ODataDemo.Product",
				Bindings: []*edm.NavigationPropertyBinding{
					{Path: "Category", Target: "Categories"},
					{Path: "Supplier", Target: "Suppliers"},
				},
				IncludeInServiceDocument: true,
				Annotations: []*edm.Annotation{
					{Term: edm.TermDescription, Value: ProductsDescription},
				},
			},
			{
				Name:       "Categories",
				EntityType: "ODataDemo.Category",
				Bindings: []*edm.NavigationPropertyBinding{
					{Path: "Products", Target: "Products"},
				},
				IncludeInServiceDocument: true,
			},
			{
				Name:                     "Suppliers",
				EntityType:               "ODataDemo.Supplier",
				IncludeInServiceDocument: true,
			},
			{
				Name:                     "Advertisements",
				EntityType:               "ODataDemo.Advertisement",
				IncludeInServiceDocument: true,
			},
		},
		Singletons: []*edm.Singleton{
			{Name: "Contoso", Type: "ODataDemo.Supplier"},
		},
		ActionImports: []*edm.ActionImport{
			{Name: "Reset", Action: "ODataDemo.Reset"},
		},
		FunctionImports: []*edm.FunctionImport{
			{
				Name:                     "Best",
				Function:                 "ODataDemo.Best",
				EntitySet:                "Products",
				IncludeInServiceDocument: true,
			},
		},
	}
}

func intp(v int) *int {
	return &v
}
