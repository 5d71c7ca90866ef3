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
	"slices"

	"github.com/odata2openapi/odata2openapi/internal/edm"
)

// Options control which paths the provider yields.
type Options struct {
	// IncludeCount yields `$count` paths for addressable collections.
	IncludeCount bool
	// IncludeTypeCasts yields derived-type cast paths for entity sets.
	IncludeTypeCasts bool
	// IncludeRoot yields the service document path `/`.
	IncludeRoot bool
	// MaxNavigationDepth caps the number of navigation segments in a path.
	// Zero means unlimited.
	MaxNavigationDepth int
}

// Provider walks a validated model and yields its addressable paths. The
// order is deterministic: container members in document order, then document
// order within each member.
type Provider struct {
	model *edm.Model
	opts  Options
}

// NewProvider creates a provider. The model state must be built.
func NewProvider(model *edm.Model, opts *Options) *Provider {
	if opts == nil {
		opts = &Options{}
	}
	return &Provider{model: model, opts: *opts}
}

// Paths returns every addressable path of the model.
func (p *Provider) Paths() []*Path {
	var paths []*Path
	if p.opts.IncludeRoot {
		paths = append(paths, NewPath(&ServiceRootSegment{}))
	}
	container := p.model.Container()
	if container == nil {
		return paths
	}
	for _, set := range container.EntitySets {
		paths = append(paths, p.entitySetPaths(set)...)
	}
	for _, singleton := range container.Singletons {
		paths = append(paths, p.singletonPaths(singleton)...)
	}
	for _, imp := range container.ActionImports {
		if overloads := p.model.State.ActionsByName[imp.Action]; len(overloads) > 0 {
			paths = append(paths, NewPath(&OperationImportSegment{
				ActionImport: imp,
				Action:       overloads[0],
			}))
		}
	}
	for _, imp := range container.FunctionImports {
		// Unlike actions, unbound functions may overload: each overload has
		// a distinct parameter list and therefore a distinct path.
		for _, overload := range p.model.State.FunctionsByName[imp.Function] {
			paths = append(paths, NewPath(&OperationImportSegment{
				FunctionImport: imp,
				Function:       overload,
			}))
		}
	}
	return paths
}

func (p *Provider) entitySetPaths(set *edm.EntitySet) []*Path {
	entityType := p.model.EntityType(set.EntityType)
	setPath := NewPath(&EntitySetSegment{Set: set, Type: entityType})
	paths := []*Path{setPath}
	if p.opts.IncludeCount {
		paths = append(paths, setPath.child(&CountSegment{}))
	}
	keyPath := setPath.child(p.keySegment(entityType))
	paths = append(paths, keyPath)
	if p.hasStream(entityType) {
		paths = append(paths, keyPath.child(&ValueSegment{}))
	}
	if p.opts.IncludeTypeCasts {
		for _, derived := range p.model.DerivedTypesOf(entityType) {
			castCollection := setPath.child(&TypeCastSegment{Type: derived})
			castSingle := keyPath.child(&TypeCastSegment{Type: derived})
			paths = append(paths, castCollection, castSingle)
			// Only operations bound below the set's element type: the ones
			// bound to the element type or its bases already attach to the
			// uncast paths.
			paths = append(paths, p.boundOperationPaths(castCollection, derived, entityType, true)...)
			paths = append(paths, p.boundOperationPaths(castSingle, derived, entityType, false)...)
		}
	}
	paths = append(paths, p.boundOperationPaths(setPath, entityType, nil, true)...)
	paths = append(paths, p.boundOperationPaths(keyPath, entityType, nil, false)...)
	paths = append(paths, p.expandNavigation(keyPath, entityType, 0, []string{entityType.QualifiedName()})...)
	return paths
}

func (p *Provider) singletonPaths(singleton *edm.Singleton) []*Path {
	entityType := p.model.EntityType(singleton.Type)
	base := NewPath(&SingletonSegment{Singleton: singleton, Type: entityType})
	paths := []*Path{base}
	paths = append(paths, p.boundOperationPaths(base, entityType, nil, false)...)
	paths = append(paths, p.expandNavigation(base, entityType, 0, []string{entityType.QualifiedName()})...)
	return paths
}

// expandNavigation yields the paths reachable from a single-entity path
// through the navigation properties of its type, inherited ones included.
// Containment recurses; non-contained targets end the expansion with `$ref`
// paths instead. A contained target whose type already occurs in the source
// chain still gets its paths, but the recursion stops there.
func (p *Provider) expandNavigation(base *Path, entityType *edm.EntityType, depth int, sourceChain []string) []*Path {
	if p.opts.MaxNavigationDepth > 0 && depth >= p.opts.MaxNavigationDepth {
		return nil
	}
	var paths []*Path
	for _, nav := range p.model.NavigationProperties(entityType) {
		target := p.model.EntityType(nav.Type.Name)
		if target == nil {
			continue
		}
		navPath := base.child(&NavigationSegment{Property: nav, Type: target})
		paths = append(paths, navPath)
		cycle := slices.Contains(sourceChain, target.QualifiedName())
		chain := append(slices.Clone(sourceChain), target.QualifiedName())
		single := navPath
		if nav.Type.Collection {
			if p.opts.IncludeCount {
				paths = append(paths, navPath.child(&CountSegment{}))
			}
			single = navPath.child(p.keySegment(target))
			paths = append(paths, single)
			if p.hasStream(target) {
				paths = append(paths, single.child(&ValueSegment{}))
			}
		}
		switch {
		case !nav.ContainsTarget:
			paths = append(paths, navPath.child(&RefSegment{}))
		case !cycle:
			paths = append(paths, p.expandNavigation(single, target, depth+1, chain)...)
		}
	}
	return paths
}

// boundOperationPaths yields one path per operation bound to the given type
// or its bases, stopping before the stop type. Actions come first, then
// functions, most-derived binding first.
func (p *Provider) boundOperationPaths(base *Path, entityType, stop *edm.EntityType, collection bool) []*Path {
	var paths []*Path
	for cur := entityType; cur != nil && cur != stop; cur = p.model.BaseOf(cur) {
		key := edm.TypeRef{Name: cur.QualifiedName(), Collection: collection}.String()
		for _, action := range p.model.State.BoundActions[key] {
			paths = append(paths, base.child(&OperationSegment{Action: action}))
		}
		for _, function := range p.model.State.BoundFunctions[key] {
			paths = append(paths, base.child(&OperationSegment{Function: function}))
		}
	}
	return paths
}

// keySegment builds the key segment for an entity type, resolving key
// properties through the base chain.
func (p *Provider) keySegment(entityType *edm.EntityType) *KeySegment {
	var properties []*edm.Property
	for _, name := range p.model.KeyProperties(entityType) {
		properties = append(properties, p.model.PropertyOf(entityType, name))
	}
	return &KeySegment{Type: entityType, Properties: properties}
}

// hasStream reports whether the type or one of its bases is a media entity.
func (p *Provider) hasStream(entityType *edm.EntityType) bool {
	for cur := entityType; cur != nil; cur = p.model.BaseOf(cur) {
		if cur.HasStream {
			return true
		}
	}
	return false
}
