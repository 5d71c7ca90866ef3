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

// State contains lookup tables derived from a model's schemas. The parsers
// build elements incrementally and cannot resolve cross-references until the
// whole document is read, so BuildState runs as a separate step before
// validation and conversion.
type State struct {
	// EntityTypeByName indexes entity types by qualified name.
	EntityTypeByName map[string]*EntityType
	// ComplexTypeByName indexes complex types by qualified name.
	ComplexTypeByName map[string]*ComplexType
	// EnumTypeByName indexes enum types by qualified name.
	EnumTypeByName map[string]*EnumType
	// TypeDefinitionByName indexes type definitions by qualified name.
	TypeDefinitionByName map[string]*TypeDefinition
	// EntitySetByName indexes container entity sets by name.
	EntitySetByName map[string]*EntitySet
	// SingletonByName indexes container singletons by name.
	SingletonByName map[string]*Singleton
	// ActionsByName indexes actions by qualified name; overloads share an
	// entry.
	ActionsByName map[string][]*Action
	// FunctionsByName indexes functions by qualified name; overloads share
	// an entry.
	FunctionsByName map[string][]*Function
	// BoundActions indexes bound actions by binding parameter type in CSDL
	// syntax, so `ODataDemo.Product` and `Collection(ODataDemo.Product)`
	// are distinct keys.
	BoundActions map[string][]*Action
	// BoundFunctions indexes bound functions by binding parameter type.
	BoundFunctions map[string][]*Function
	// DerivedTypes lists the direct subtypes of each entity type.
	DerivedTypes map[string][]*EntityType
}

// BuildState populates model.State from the schemas. Calling it again
// rebuilds the state from scratch.
func BuildState(model *Model) {
	state := &State{
		EntityTypeByName:     map[string]*EntityType{},
		ComplexTypeByName:    map[string]*ComplexType{},
		EnumTypeByName:       map[string]*EnumType{},
		TypeDefinitionByName: map[string]*TypeDefinition{},
		EntitySetByName:      map[string]*EntitySet{},
		SingletonByName:      map[string]*Singleton{},
		ActionsByName:        map[string][]*Action{},
		FunctionsByName:      map[string][]*Function{},
		BoundActions:         map[string][]*Action{},
		BoundFunctions:       map[string][]*Function{},
		DerivedTypes:         map[string][]*EntityType{},
	}
	for _, s := range model.Schemas {
		for _, t := range s.EntityTypes {
			state.EntityTypeByName[t.QualifiedName()] = t
		}
		for _, t := range s.ComplexTypes {
			state.ComplexTypeByName[t.QualifiedName()] = t
		}
		for _, t := range s.EnumTypes {
			state.EnumTypeByName[t.QualifiedName()] = t
		}
		for _, t := range s.TypeDefinitions {
			state.TypeDefinitionByName[t.QualifiedName()] = t
		}
		for _, a := range s.Actions {
			state.ActionsByName[a.QualifiedName()] = append(state.ActionsByName[a.QualifiedName()], a)
			if p := a.BindingParameter(); p != nil {
				state.BoundActions[p.Type.String()] = append(state.BoundActions[p.Type.String()], a)
			}
		}
		for _, f := range s.Functions {
			state.FunctionsByName[f.QualifiedName()] = append(state.FunctionsByName[f.QualifiedName()], f)
			if p := f.BindingParameter(); p != nil {
				state.BoundFunctions[p.Type.String()] = append(state.BoundFunctions[p.Type.String()], f)
			}
		}
		if s.Container != nil {
			for _, set := range s.Container.EntitySets {
				state.EntitySetByName[set.Name] = set
			}
			for _, sg := range s.Container.Singletons {
				state.SingletonByName[sg.Name] = sg
			}
		}
	}
	// A second pass in document order keeps the derived type lists stable.
	for _, s := range model.Schemas {
		for _, t := range s.EntityTypes {
			if t.BaseType != "" {
				state.DerivedTypes[t.BaseType] = append(state.DerivedTypes[t.BaseType], t)
			}
		}
	}
	model.State = state
}

// EntityType resolves a qualified entity type name, or nil.
func (m *Model) EntityType(name string) *EntityType {
	return m.State.EntityTypeByName[name]
}

// ComplexType resolves a qualified complex type name, or nil.
func (m *Model) ComplexType(name string) *ComplexType {
	return m.State.ComplexTypeByName[name]
}

// EnumType resolves a qualified enum type name, or nil.
func (m *Model) EnumType(name string) *EnumType {
	return m.State.EnumTypeByName[name]
}

// TypeDefinition resolves a qualified type definition name, or nil.
func (m *Model) TypeDefinition(name string) *TypeDefinition {
	return m.State.TypeDefinitionByName[name]
}

// BaseOf returns the base type of an entity type, or nil.
func (m *Model) BaseOf(t *EntityType) *EntityType {
	if t.BaseType == "" {
		return nil
	}
	return m.State.EntityTypeByName[t.BaseType]
}

// KeyProperties returns the key property names of an entity type, resolving
// through the base type chain.
func (m *Model) KeyProperties(t *EntityType) []string {
	for t != nil {
		if len(t.Key) > 0 {
			return t.Key
		}
		t = m.BaseOf(t)
	}
	return nil
}

// PropertyOf finds a structural property by name on a type or its bases.
func (m *Model) PropertyOf(t *EntityType, name string) *Property {
	for t != nil {
		for _, p := range t.Properties {
			if p.Name == name {
				return p
			}
		}
		t = m.BaseOf(t)
	}
	return nil
}

// StructuralProperties flattens the structural properties of a type and its
// bases, base properties first.
func (m *Model) StructuralProperties(t *EntityType) []*Property {
	if t == nil {
		return nil
	}
	return append(m.StructuralProperties(m.BaseOf(t)), t.Properties...)
}

// NavigationProperties flattens the navigation properties of a type and its
// bases, base properties first.
func (m *Model) NavigationProperties(t *EntityType) []*NavigationProperty {
	if t == nil {
		return nil
	}
	return append(m.NavigationProperties(m.BaseOf(t)), t.NavigationProperties...)
}

// BoundOperations returns the actions and functions bound to the given
// type, as a CSDL type reference. Operations bound to base types are
// included, most-derived first.
func (m *Model) BoundOperations(ref TypeRef) ([]*Action, []*Function) {
	var actions []*Action
	var functions []*Function
	for name := ref.Name; name != ""; {
		key := TypeRef{Name: name, Collection: ref.Collection}.String()
		actions = append(actions, m.State.BoundActions[key]...)
		functions = append(functions, m.State.BoundFunctions[key]...)
		t := m.State.EntityTypeByName[name]
		if t == nil {
			break
		}
		name = t.BaseType
	}
	return actions, functions
}

// DerivedTypesOf returns the transitive subtypes of an entity type, in
// depth-first document order.
func (m *Model) DerivedTypesOf(t *EntityType) []*EntityType {
	var result []*EntityType
	for _, d := range m.State.DerivedTypes[t.QualifiedName()] {
		result = append(result, d)
		result = append(result, m.DerivedTypesOf(d)...)
	}
	return result
}

// IsAssignableTo reports whether from is to or one of its derived types.
func (m *Model) IsAssignableTo(from, to *EntityType) bool {
	for t := from; t != nil; t = m.BaseOf(t) {
		if t == to {
			return true
		}
	}
	return false
}
