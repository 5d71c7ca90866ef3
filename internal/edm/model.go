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

// Package edm is the in-memory representation of an Entity Data Model, the
// metadata format used by OData services. Parsers populate a Model from CSDL
// documents and the converter reads it to produce the OpenAPI surface.
package edm

// Model represents a complete entity data model: one or more schemas plus
// the lookup state derived from them.
type Model struct {
	// Schemas are the CSDL schemas that make up the model, in document
	// order.
	Schemas []*Schema

	// State contains lookup tables derived from the schemas. It is
	// populated by BuildState.
	State *State
}

// Schema is a CSDL schema: a namespace with type, operation, and container
// declarations.
type Schema struct {
	// Namespace of the schema, e.g. `ODataDemo`.
	Namespace string
	// Alias is the short name usable in qualified names, e.g. `self`.
	// Parsers resolve aliases, so the rest of the module never sees them.
	Alias string
	// EntityTypes declared in the schema.
	EntityTypes []*EntityType
	// ComplexTypes declared in the schema.
	ComplexTypes []*ComplexType
	// EnumTypes declared in the schema.
	EnumTypes []*EnumType
	// TypeDefinitions declared in the schema.
	TypeDefinitions []*TypeDefinition
	// Actions declared in the schema, bound and unbound.
	Actions []*Action
	// Functions declared in the schema, bound and unbound.
	Functions []*Function
	// Container is the entity container, if the schema declares one. A
	// model has at most one container across all schemas.
	Container *EntityContainer
}

// EntityType describes a named, keyed structured type.
type EntityType struct {
	// Name of the type, unqualified.
	Name string
	// Namespace of the declaring schema.
	Namespace string
	// BaseType is the qualified name of the base entity type, if any.
	BaseType string
	// Abstract types cannot be instantiated directly.
	Abstract bool
	// OpenType allows clients to add dynamic properties.
	OpenType bool
	// HasStream marks a media entity whose content is addressed with
	// `$value`.
	HasStream bool
	// Key lists the names of the key properties. Empty when the key is
	// inherited from the base type.
	Key []string
	// Properties are the structural properties.
	Properties []*Property
	// NavigationProperties relate this type to other entity types.
	NavigationProperties []*NavigationProperty
	// Annotations applied to the type.
	Annotations []*Annotation
}

// QualifiedName returns the namespace-qualified name of the type.
func (t *EntityType) QualifiedName() string {
	return t.Namespace + "." + t.Name
}

// ComplexType describes a keyless structured type.
type ComplexType struct {
	// Name of the type, unqualified.
	Name string
	// Namespace of the declaring schema.
	Namespace string
	// BaseType is the qualified name of the base complex type, if any.
	BaseType string
	// Abstract types cannot be instantiated directly.
	Abstract bool
	// OpenType allows clients to add dynamic properties.
	OpenType bool
	// Properties are the structural properties.
	Properties []*Property
	// NavigationProperties relate this type to entity types.
	NavigationProperties []*NavigationProperty
	// Annotations applied to the type.
	Annotations []*Annotation
}

// QualifiedName returns the namespace-qualified name of the type.
func (t *ComplexType) QualifiedName() string {
	return t.Namespace + "." + t.Name
}

// EnumType describes an enumeration type.
type EnumType struct {
	// Name of the type, unqualified.
	Name string
	// Namespace of the declaring schema.
	Namespace string
	// UnderlyingType is the integer type backing the enumeration. Defaults
	// to `Edm.Int32`.
	UnderlyingType string
	// IsFlags permits combined values.
	IsFlags bool
	// Members of the enumeration, in document order.
	Members []*EnumMember
	// Annotations applied to the type.
	Annotations []*Annotation
}

// QualifiedName returns the namespace-qualified name of the type.
func (t *EnumType) QualifiedName() string {
	return t.Namespace + "." + t.Name
}

// EnumMember is one named value of an enumeration.
type EnumMember struct {
	// Name of the member.
	Name string
	// Value of the member.
	Value int64
	// Annotations applied to the member.
	Annotations []*Annotation
}

// TypeDefinition names a primitive type with fixed facets.
type TypeDefinition struct {
	// Name of the definition, unqualified.
	Name string
	// Namespace of the declaring schema.
	Namespace string
	// UnderlyingType is the qualified primitive type name.
	UnderlyingType string
	// MaxLength facet, nil when unspecified.
	MaxLength *int
	// Precision facet, nil when unspecified.
	Precision *int
	// Scale facet, nil when unspecified.
	Scale *int
	// Annotations applied to the definition.
	Annotations []*Annotation
}

// QualifiedName returns the namespace-qualified name of the definition.
func (t *TypeDefinition) QualifiedName() string {
	return t.Namespace + "." + t.Name
}

// Property is a structural property of an entity or complex type.
type Property struct {
	// Name of the property.
	Name string
	// Type of the property.
	Type TypeRef
	// Nullable is true unless the property was declared `Nullable="false"`.
	Nullable bool
	// MaxLength facet, nil when unspecified.
	MaxLength *int
	// Precision facet, nil when unspecified.
	Precision *int
	// Scale facet, nil when unspecified.
	Scale *int
	// DefaultValue as written in the document, nil when unspecified.
	DefaultValue *string
	// Annotations applied to the property.
	Annotations []*Annotation
}

// NavigationProperty relates a structured type to an entity type.
type NavigationProperty struct {
	// Name of the navigation property.
	Name string
	// Type of the related entity or entities. Always refers to an entity
	// type; Type.Collection distinguishes to-many from to-one.
	Type TypeRef
	// Nullable is meaningful for to-one navigation only.
	Nullable bool
	// Partner is the path of the inverse navigation property, if declared.
	Partner string
	// ContainsTarget marks containment navigation: the related entities
	// are addressed only through this property.
	ContainsTarget bool
	// Annotations applied to the navigation property.
	Annotations []*Annotation
}

// EntityContainer holds the service's addressable top-level resources.
type EntityContainer struct {
	// Name of the container.
	Name string
	// Namespace of the declaring schema.
	Namespace string
	// EntitySets exposed by the service.
	EntitySets []*EntitySet
	// Singletons exposed by the service.
	Singletons []*Singleton
	// ActionImports exposed by the service.
	ActionImports []*ActionImport
	// FunctionImports exposed by the service.
	FunctionImports []*FunctionImport
	// Annotations applied to the container.
	Annotations []*Annotation
}

// EntitySet is a named, top-level collection of entities.
type EntitySet struct {
	// Name of the set; the first segment of its resource paths.
	Name string
	// EntityType is the qualified name of the element type.
	EntityType string
	// Bindings declare the target sets of navigation properties.
	Bindings []*NavigationPropertyBinding
	// IncludeInServiceDocument is false for sets reachable only by
	// navigation.
	IncludeInServiceDocument bool
	// Annotations applied to the set.
	Annotations []*Annotation
}

// Singleton is a named, top-level single entity.
type Singleton struct {
	// Name of the singleton; the first segment of its resource paths.
	Name string
	// Type is the qualified name of the entity type.
	Type string
	// Bindings declare the target sets of navigation properties.
	Bindings []*NavigationPropertyBinding
	// Annotations applied to the singleton.
	Annotations []*Annotation
}

// NavigationPropertyBinding maps a navigation property path to the entity
// set or singleton that holds the related entities.
type NavigationPropertyBinding struct {
	// Path of the navigation property, possibly type-cast qualified.
	Path string
	// Target entity set or singleton name.
	Target string
}

// Action is a side-effecting operation, invoked with POST.
type Action struct {
	// Name of the action, unqualified.
	Name string
	// Namespace of the declaring schema.
	Namespace string
	// IsBound actions take their first parameter as the binding parameter.
	IsBound bool
	// EntitySetPath hints at the set containing the result.
	EntitySetPath string
	// Parameters of the action, binding parameter first when bound.
	Parameters []*Parameter
	// ReturnType of the action, nil for void actions.
	ReturnType *ReturnType
	// Annotations applied to the action.
	Annotations []*Annotation
}

// QualifiedName returns the namespace-qualified name of the action.
func (a *Action) QualifiedName() string {
	return a.Namespace + "." + a.Name
}

// BindingParameter returns the binding parameter of a bound action, or nil.
func (a *Action) BindingParameter() *Parameter {
	if !a.IsBound || len(a.Parameters) == 0 {
		return nil
	}
	return a.Parameters[0]
}

// InvocationParameters returns the parameters supplied by the caller: all
// parameters for unbound actions, all but the binding parameter for bound
// ones.
func (a *Action) InvocationParameters() []*Parameter {
	if a.IsBound && len(a.Parameters) > 0 {
		return a.Parameters[1:]
	}
	return a.Parameters
}

// Function is a side-effect free operation, invoked with GET.
type Function struct {
	// Name of the function, unqualified.
	Name string
	// Namespace of the declaring schema.
	Namespace string
	// IsBound functions take their first parameter as the binding
	// parameter.
	IsBound bool
	// IsComposable functions can be further composed upon.
	IsComposable bool
	// EntitySetPath hints at the set containing the result.
	EntitySetPath string
	// Parameters of the function, binding parameter first when bound.
	Parameters []*Parameter
	// ReturnType of the function. Functions must declare one.
	ReturnType *ReturnType
	// Annotations applied to the function.
	Annotations []*Annotation
}

// QualifiedName returns the namespace-qualified name of the function.
func (f *Function) QualifiedName() string {
	return f.Namespace + "." + f.Name
}

// BindingParameter returns the binding parameter of a bound function, or
// nil.
func (f *Function) BindingParameter() *Parameter {
	if !f.IsBound || len(f.Parameters) == 0 {
		return nil
	}
	return f.Parameters[0]
}

// InvocationParameters returns the parameters supplied by the caller: all
// parameters for unbound functions, all but the binding parameter for bound
// ones.
func (f *Function) InvocationParameters() []*Parameter {
	if f.IsBound && len(f.Parameters) > 0 {
		return f.Parameters[1:]
	}
	return f.Parameters
}

// Parameter of an action or function.
type Parameter struct {
	// Name of the parameter.
	Name string
	// Type of the parameter.
	Type TypeRef
	// Nullable is true unless declared `Nullable="false"`.
	Nullable bool
	// MaxLength facet, nil when unspecified.
	MaxLength *int
	// Annotations applied to the parameter.
	Annotations []*Annotation
}

// ReturnType of an action or function.
type ReturnType struct {
	// Type returned by the operation.
	Type TypeRef
	// Nullable is true unless declared `Nullable="false"`.
	Nullable bool
}

// ActionImport exposes an unbound action at the service root.
type ActionImport struct {
	// Name of the import; the path segment used to invoke it.
	Name string
	// Action is the qualified name of the unbound action.
	Action string
	// EntitySet containing the result, if declared.
	EntitySet string
	// Annotations applied to the import.
	Annotations []*Annotation
}

// FunctionImport exposes an unbound function at the service root.
type FunctionImport struct {
	// Name of the import; the path segment used to invoke it.
	Name string
	// Function is the qualified name of the unbound function. All
	// overloads with that name are exposed.
	Function string
	// EntitySet containing the result, if declared.
	EntitySet string
	// IncludeInServiceDocument lists the import in the service document.
	IncludeInServiceDocument bool
	// Annotations applied to the import.
	Annotations []*Annotation
}

// Container returns the model's entity container, or nil when no schema
// declares one.
func (m *Model) Container() *EntityContainer {
	for _, s := range m.Schemas {
		if s.Container != nil {
			return s.Container
		}
	}
	return nil
}

// Namespaces returns the schema namespaces in document order.
func (m *Model) Namespaces() []string {
	var names []string
	for _, s := range m.Schemas {
		names = append(names, s.Namespace)
	}
	return names
}
