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

package odatapath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/odata2openapi/odata2openapi/internal/edm"
	"github.com/odata2openapi/odata2openapi/internal/sample"
)

// renderAll renders every path with default template options, the most
// convenient form to compare a whole walk.
func renderAll(paths []*Path) []string {
	var rendered []string
	for _, p := range paths {
		rendered = append(rendered, p.Template(nil).Path)
	}
	return rendered
}

func TestProviderDefaults(t *testing.T) {
	provider := NewProvider(sample.Model(), nil)
	want := []string{
		"/Products",
		"/Products({ID})",
		"/Products/ODataDemo.Top(count={count})",
		"/Products({ID})/ODataDemo.Rate",
		"/Products({ID})/Category",
		"/Products({ID})/Category/$ref",
		"/Products({ID})/Supplier",
		"/Products({ID})/Supplier/$ref",
		"/Categories",
		"/Categories({ID})",
		"/Categories({ID})/Products",
		"/Categories({ID})/Products({ID1})",
		"/Categories({ID})/Products/$ref",
		"/Suppliers",
		"/Suppliers({ID})",
		"/Suppliers({ID})/Branches",
		"/Suppliers({ID})/Branches({ID1})",
		"/Advertisements",
		"/Advertisements({ID})",
		"/Advertisements({ID})/$value",
		"/Contoso",
		"/Contoso/Branches",
		"/Contoso/Branches({ID})",
		"/Reset",
		"/Best()",
		"/Best(count={count})",
	}
	if diff := cmp.Diff(want, renderAll(provider.Paths())); diff != "" {
		t.Errorf("mismatched paths (-want, +got):\n%s", diff)
	}
}

func TestProviderAllOptions(t *testing.T) {
	provider := NewProvider(sample.Model(), &Options{
		IncludeCount:     true,
		IncludeTypeCasts: true,
		IncludeRoot:      true,
	})
	want := []string{
		"/",
		"/Products",
		"/Products/$count",
		"/Products({ID})",
		"/Products/ODataDemo.FeaturedProduct",
		"/Products({ID})/ODataDemo.FeaturedProduct",
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
	if diff := cmp.Diff(want, renderAll(provider.Paths())); diff != "" {
		t.Errorf("mismatched paths (-want, +got):\n%s", diff)
	}
}

func TestProviderContainmentCycle(t *testing.T) {
	// A contained navigation back to a type already on the path gets its
	// paths once, without recursing further.
	model := edm.NewTestModel(&edm.Schema{
		Namespace: "HR",
		EntityTypes: []*edm.EntityType{
			{
				Name: "Employee",
				Key:  []string{"ID"},
				Properties: []*edm.Property{
					{Name: "ID", Type: edm.TypeRef{Name: "Edm.Int32"}},
				},
				NavigationProperties: []*edm.NavigationProperty{
					{
						Name:           "DirectReports",
						Type:           edm.TypeRef{Name: "HR.Employee", Collection: true},
						Nullable:       true,
						ContainsTarget: true,
					},
				},
			},
		},
		Container: &edm.EntityContainer{
			Name: "Container",
			EntitySets: []*edm.EntitySet{
				{Name: "Employees", EntityType: "HR.Employee"},
			},
		},
	})
	provider := NewProvider(model, nil)
	want := []string{
		"/Employees",
		"/Employees({ID})",
		"/Employees({ID})/DirectReports",
		"/Employees({ID})/DirectReports({ID1})",
	}
	if diff := cmp.Diff(want, renderAll(provider.Paths())); diff != "" {
		t.Errorf("mismatched paths (-want, +got):\n%s", diff)
	}
}

func TestProviderMaxNavigationDepth(t *testing.T) {
	model := edm.NewTestModel(&edm.Schema{
		Namespace: "Files",
		EntityTypes: []*edm.EntityType{
			{
				Name: "Drive",
				Key:  []string{"ID"},
				Properties: []*edm.Property{
					{Name: "ID", Type: edm.TypeRef{Name: "Edm.String"}},
				},
				NavigationProperties: []*edm.NavigationProperty{
					{
						Name:           "Folders",
						Type:           edm.TypeRef{Name: "Files.Folder", Collection: true},
						Nullable:       true,
						ContainsTarget: true,
					},
				},
			},
			{
				Name: "Folder",
				Key:  []string{"ID"},
				Properties: []*edm.Property{
					{Name: "ID", Type: edm.TypeRef{Name: "Edm.String"}},
				},
				NavigationProperties: []*edm.NavigationProperty{
					{
						Name:           "Documents",
						Type:           edm.TypeRef{Name: "Files.Document", Collection: true},
						Nullable:       true,
						ContainsTarget: true,
					},
				},
			},
			{
				Name: "Document",
				Key:  []string{"ID"},
				Properties: []*edm.Property{
					{Name: "ID", Type: edm.TypeRef{Name: "Edm.String"}},
				},
				NavigationProperties: []*edm.NavigationProperty{
					{
						Name:           "Revisions",
						Type:           edm.TypeRef{Name: "Files.Revision", Collection: true},
						Nullable:       true,
						ContainsTarget: true,
					},
				},
			},
			{
				Name: "Revision",
				Key:  []string{"ID"},
				Properties: []*edm.Property{
					{Name: "ID", Type: edm.TypeRef{Name: "Edm.String"}},
				},
			},
		},
		Container: &edm.EntityContainer{
			Name: "Container",
			EntitySets: []*edm.EntitySet{
				{Name: "Drives", EntityType: "Files.Drive"},
			},
		},
	})
	provider := NewProvider(model, &Options{MaxNavigationDepth: 2})
	want := []string{
		"/Drives",
		"/Drives({ID})",
		"/Drives({ID})/Folders",
		"/Drives({ID})/Folders({ID1})",
		"/Drives({ID})/Folders({ID1})/Documents",
		"/Drives({ID})/Folders({ID1})/Documents({ID2})",
	}
	if diff := cmp.Diff(want, renderAll(provider.Paths())); diff != "" {
		t.Errorf("mismatched paths (-want, +got):\n%s", diff)
	}
}

func TestProviderCastScopedOperations(t *testing.T) {
	// Operations bound to a derived type attach to its cast paths only;
	// operations bound to the element type attach to the set paths.
	model := edm.NewTestModel(&edm.Schema{
		Namespace: "Inventory",
		EntityTypes: []*edm.EntityType{
			{
				Name: "Item",
				Key:  []string{"ID"},
				Properties: []*edm.Property{
					{Name: "ID", Type: edm.TypeRef{Name: "Edm.Int32"}},
				},
			},
			{
				Name:     "Perishable",
				BaseType: "Inventory.Item",
				Properties: []*edm.Property{
					{Name: "Expires", Type: edm.TypeRef{Name: "Edm.Date"}},
				},
			},
		},
		Actions: []*edm.Action{
			{
				Name:    "Restock",
				IsBound: true,
				Parameters: []*edm.Parameter{
					{Name: "bindingParameter", Type: edm.TypeRef{Name: "Inventory.Item"}, Nullable: true},
				},
			},
			{
				Name:    "Discard",
				IsBound: true,
				Parameters: []*edm.Parameter{
					{Name: "bindingParameter", Type: edm.TypeRef{Name: "Inventory.Perishable"}, Nullable: true},
				},
			},
		},
		Functions: []*edm.Function{
			{
				Name:    "Expiring",
				IsBound: true,
				Parameters: []*edm.Parameter{
					{Name: "bindingParameter", Type: edm.TypeRef{Name: "Inventory.Perishable", Collection: true}, Nullable: true},
				},
				ReturnType: &edm.ReturnType{
					Type:     edm.TypeRef{Name: "Inventory.Perishable", Collection: true},
					Nullable: true,
				},
			},
		},
		Container: &edm.EntityContainer{
			Name: "Container",
			EntitySets: []*edm.EntitySet{
				{Name: "Items", EntityType: "Inventory.Item"},
			},
		},
	})
	provider := NewProvider(model, &Options{IncludeTypeCasts: true})
	want := []string{
		"/Items",
		"/Items({ID})",
		"/Items/Inventory.Perishable",
		"/Items({ID})/Inventory.Perishable",
		"/Items/Inventory.Perishable/Inventory.Expiring()",
		"/Items({ID})/Inventory.Perishable/Inventory.Discard",
		"/Items({ID})/Inventory.Restock",
	}
	if diff := cmp.Diff(want, renderAll(provider.Paths())); diff != "" {
		t.Errorf("mismatched paths (-want, +got):\n%s", diff)
	}
}

func TestProviderInheritedOperations(t *testing.T) {
	// Operations bound to a base type attach to sets of the derived type,
	// most-derived binding first.
	model := edm.NewTestModel(&edm.Schema{
		Namespace: "Inventory",
		EntityTypes: []*edm.EntityType{
			{
				Name: "Item",
				Key:  []string{"ID"},
				Properties: []*edm.Property{
					{Name: "ID", Type: edm.TypeRef{Name: "Edm.Int32"}},
				},
			},
			{
				Name:     "Perishable",
				BaseType: "Inventory.Item",
			},
		},
		Actions: []*edm.Action{
			{
				Name:    "Restock",
				IsBound: true,
				Parameters: []*edm.Parameter{
					{Name: "bindingParameter", Type: edm.TypeRef{Name: "Inventory.Item"}, Nullable: true},
				},
			},
			{
				Name:    "Discard",
				IsBound: true,
				Parameters: []*edm.Parameter{
					{Name: "bindingParameter", Type: edm.TypeRef{Name: "Inventory.Perishable"}, Nullable: true},
				},
			},
		},
		Container: &edm.EntityContainer{
			Name: "Container",
			EntitySets: []*edm.EntitySet{
				{Name: "Perishables", EntityType: "Inventory.Perishable"},
			},
		},
	})
	provider := NewProvider(model, nil)
	want := []string{
		"/Perishables",
		"/Perishables({ID})",
		"/Perishables({ID})/Inventory.Discard",
		"/Perishables({ID})/Inventory.Restock",
	}
	if diff := cmp.Diff(want, renderAll(provider.Paths())); diff != "" {
		t.Errorf("mismatched paths (-want, +got):\n%s", diff)
	}
}
