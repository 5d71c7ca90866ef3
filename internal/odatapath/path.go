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

import "github.com/odata2openapi/odata2openapi/internal/edm"

// Kind classifies a path by its final segment, for operation dispatch.
type Kind int

const (
	// KindEntitySet is a top-level collection, `/Products`.
	KindEntitySet Kind = iota
	// KindEntity is a keyed entity of a set, `/Products({ID})`.
	KindEntity
	// KindSingleton is a top-level single entity, `/Contoso`.
	KindSingleton
	// KindNavigationCollection is a to-many navigation target,
	// `/Products({ID})/Parts`.
	KindNavigationCollection
	// KindNavigationSingle is a to-one navigation target,
	// `/Products({ID})/Category`.
	KindNavigationSingle
	// KindNavigationEntity is a keyed entity of a to-many navigation target,
	// `/Products({ID})/Parts({ID1})`.
	KindNavigationEntity
	// KindCount is a collection cardinality, `/Products/$count`.
	KindCount
	// KindRefSingle is a to-one entity reference,
	// `/Products({ID})/Category/$ref`.
	KindRefSingle
	// KindRefCollection is a to-many entity reference collection,
	// `/Categories({ID})/Products/$ref`.
	KindRefCollection
	// KindValue is a media entity stream, `/Advertisements({ID})/$value`.
	KindValue
	// KindTypeCastCollection restricts a collection to a derived type,
	// `/Products/ODataDemo.FeaturedProduct`.
	KindTypeCastCollection
	// KindTypeCastSingle restricts an entity to a derived type,
	// `/Products({ID})/ODataDemo.FeaturedProduct`.
	KindTypeCastSingle
	// KindBoundAction invokes a bound action, `/Products({ID})/ODataDemo.Rate`.
	KindBoundAction
	// KindBoundFunction invokes a bound function,
	// `/Products/ODataDemo.Top(count={count})`.
	KindBoundFunction
	// KindActionImport invokes an action through its import, `/Reset`.
	KindActionImport
	// KindFunctionImport invokes a function through its import,
	// `/Best()` overloads included.
	KindFunctionImport
	// KindServiceRoot is the service document, `/`.
	KindServiceRoot
)

// Path is an ordered list of segments describing one addressable resource.
type Path struct {
	Segments []Segment
}

// NewPath creates a path from segments.
func NewPath(segments ...Segment) *Path {
	return &Path{Segments: segments}
}

// child returns a new path with one more segment. The segment slice is
// copied, so extending a path never aliases its parents.
func (p *Path) child(s Segment) *Path {
	segments := make([]Segment, 0, len(p.Segments)+1)
	segments = append(segments, p.Segments...)
	return &Path{Segments: append(segments, s)}
}

// Last returns the final segment, or nil for an empty path.
func (p *Path) Last() Segment {
	if len(p.Segments) == 0 {
		return nil
	}
	return p.Segments[len(p.Segments)-1]
}

// Kind classifies the path by its final segment.
func (p *Path) Kind() Kind {
	switch last := p.Last().(type) {
	case *EntitySetSegment:
		return KindEntitySet
	case *SingletonSegment:
		return KindSingleton
	case *KeySegment:
		if _, ok := p.Segments[len(p.Segments)-2].(*NavigationSegment); ok {
			return KindNavigationEntity
		}
		return KindEntity
	case *NavigationSegment:
		if last.Property.Type.Collection {
			return KindNavigationCollection
		}
		return KindNavigationSingle
	case *CountSegment:
		return KindCount
	case *RefSegment:
		if nav := p.LastNavigation(); nav != nil && nav.Property.Type.Collection && !p.keyAfterLastNavigation() {
			return KindRefCollection
		}
		return KindRefSingle
	case *ValueSegment:
		return KindValue
	case *TypeCastSegment:
		if p.IsCollection() {
			return KindTypeCastCollection
		}
		return KindTypeCastSingle
	case *OperationSegment:
		if last.IsFunction() {
			return KindBoundFunction
		}
		return KindBoundAction
	case *OperationImportSegment:
		if last.IsFunction() {
			return KindFunctionImport
		}
		return KindActionImport
	default:
		return KindServiceRoot
	}
}

// Source returns the first segment of the path.
func (p *Path) Source() Segment {
	if len(p.Segments) == 0 {
		return nil
	}
	return p.Segments[0]
}

// SourceName returns the name of the navigation source or operation import
// the path starts at, or "" for the service root.
func (p *Path) SourceName() string {
	switch source := p.Source().(type) {
	case *EntitySetSegment:
		return source.Set.Name
	case *SingletonSegment:
		return source.Singleton.Name
	case *OperationImportSegment:
		return source.Name()
	default:
		return ""
	}
}

// LastEntityType returns the entity type addressed by the path: the target
// of the last navigation, cast, key, or source segment. Trailing `$count`,
// `$ref`, `$value`, and operation segments do not change it.
func (p *Path) LastEntityType() *edm.EntityType {
	for i := len(p.Segments) - 1; i >= 0; i-- {
		switch s := p.Segments[i].(type) {
		case *TypeCastSegment:
			return s.Type
		case *NavigationSegment:
			return s.Type
		case *KeySegment:
			return s.Type
		case *EntitySetSegment:
			return s.Type
		case *SingletonSegment:
			return s.Type
		}
	}
	return nil
}

// LastNavigation returns the last navigation segment, or nil.
func (p *Path) LastNavigation() *NavigationSegment {
	for i := len(p.Segments) - 1; i >= 0; i-- {
		if s, ok := p.Segments[i].(*NavigationSegment); ok {
			return s
		}
	}
	return nil
}

// keyAfterLastNavigation reports whether a key segment follows the last
// navigation segment, i.e. the navigation collection is already indexed.
func (p *Path) keyAfterLastNavigation() bool {
	for i := len(p.Segments) - 1; i >= 0; i-- {
		switch p.Segments[i].(type) {
		case *KeySegment:
			return true
		case *NavigationSegment:
			return false
		}
	}
	return false
}

// IsCollection reports whether the path addresses a collection-valued
// resource. `$count`, `$ref`, `$value`, and operation segments classify by
// the resource they apply to.
func (p *Path) IsCollection() bool {
	for i := len(p.Segments) - 1; i >= 0; i-- {
		switch s := p.Segments[i].(type) {
		case *KeySegment, *SingletonSegment, *ValueSegment:
			return false
		case *NavigationSegment:
			return s.Property.Type.Collection
		case *EntitySetSegment:
			return true
		}
	}
	return false
}

// Contained reports whether the addressed resource is reached through
// containment navigation. Resources below a contained target are themselves
// contained.
func (p *Path) Contained() bool {
	if nav := p.LastNavigation(); nav != nil {
		return nav.Property.ContainsTarget
	}
	return false
}

// KeySegments returns the key segments of the path, in order.
func (p *Path) KeySegments() []*KeySegment {
	var keys []*KeySegment
	for _, s := range p.Segments {
		if key, ok := s.(*KeySegment); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// PrefixIdentifiers returns the names of the navigation source and the
// navigation properties along the path, in order. Keys, casts, and trailing
// system segments carry no name and are skipped. The converter derives
// operationIds and tags from this chain.
func (p *Path) PrefixIdentifiers() []string {
	var names []string
	for _, s := range p.Segments {
		switch s := s.(type) {
		case *EntitySetSegment:
			names = append(names, s.Set.Name)
		case *SingletonSegment:
			names = append(names, s.Singleton.Name)
		case *NavigationSegment:
			names = append(names, s.Property.Name)
		case *OperationImportSegment:
			names = append(names, s.Name())
		}
	}
	return names
}
