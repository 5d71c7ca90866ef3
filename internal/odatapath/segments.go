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

// Package odatapath decomposes an entity data model into the set of
// addressable resource paths. Each path is an ordered list of segments, one
// per URL component, which the converter dispatches on to produce OpenAPI
// operations.
package odatapath

import (
	"github.com/odata2openapi/odata2openapi/internal/edm"
)

// Segment is one component of a resource path.
type Segment interface {
	isSegment()
}

// EntitySetSegment addresses a top-level entity collection, e.g. `/Products`.
type EntitySetSegment struct {
	// Set is the entity set.
	Set *edm.EntitySet
	// Type is the resolved element type of the set.
	Type *edm.EntityType
}

// SingletonSegment addresses a top-level single entity, e.g. `/Contoso`.
type SingletonSegment struct {
	// Singleton is the container member.
	Singleton *edm.Singleton
	// Type is the resolved entity type.
	Type *edm.EntityType
}

// KeySegment addresses one entity of the preceding collection by key.
type KeySegment struct {
	// Type is the entity type the key addresses. The key properties may be
	// declared on one of its base types.
	Type *edm.EntityType
	// Properties are the resolved key properties, in key declaration order.
	Properties []*edm.Property
}

// NavigationSegment addresses the target of a navigation property.
type NavigationSegment struct {
	// Property is the navigation property.
	Property *edm.NavigationProperty
	// Type is the resolved target entity type.
	Type *edm.EntityType
}

// CountSegment addresses the cardinality of the preceding collection.
type CountSegment struct{}

// RefSegment addresses entity references instead of entities.
type RefSegment struct{}

// ValueSegment addresses the media stream of the preceding media entity.
type ValueSegment struct{}

// TypeCastSegment restricts the preceding resource to a derived type.
type TypeCastSegment struct {
	// Type is the derived entity type.
	Type *edm.EntityType
}

// OperationSegment invokes a bound action or function. Exactly one of Action
// and Function is set.
type OperationSegment struct {
	Action   *edm.Action
	Function *edm.Function
}

// OperationImportSegment invokes an unbound operation through its container
// import. Exactly one of ActionImport/Action and FunctionImport/Function is
// set; for function imports each overload produces a separate segment.
type OperationImportSegment struct {
	ActionImport   *edm.ActionImport
	Action         *edm.Action
	FunctionImport *edm.FunctionImport
	Function       *edm.Function
}

// ServiceRootSegment addresses the service document at `/`.
type ServiceRootSegment struct{}

func (*EntitySetSegment) isSegment()       {}
func (*SingletonSegment) isSegment()       {}
func (*KeySegment) isSegment()             {}
func (*NavigationSegment) isSegment()      {}
func (*CountSegment) isSegment()           {}
func (*RefSegment) isSegment()             {}
func (*ValueSegment) isSegment()           {}
func (*TypeCastSegment) isSegment()        {}
func (*OperationSegment) isSegment()       {}
func (*OperationImportSegment) isSegment() {}
func (*ServiceRootSegment) isSegment()     {}

// Name returns the path segment name of a bound operation, namespace
// qualified or not.
func (s *OperationSegment) Name(qualified bool) string {
	switch {
	case s.Action != nil && qualified:
		return s.Action.QualifiedName()
	case s.Action != nil:
		return s.Action.Name
	case qualified:
		return s.Function.QualifiedName()
	default:
		return s.Function.Name
	}
}

// IsFunction reports whether the segment invokes a function.
func (s *OperationSegment) IsFunction() bool {
	return s.Function != nil
}

// Name returns the import name, which is the path segment used to invoke the
// operation.
func (s *OperationImportSegment) Name() string {
	if s.ActionImport != nil {
		return s.ActionImport.Name
	}
	return s.FunctionImport.Name
}

// IsFunction reports whether the segment invokes a function import.
func (s *OperationImportSegment) IsFunction() bool {
	return s.FunctionImport != nil
}
