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

// Vocabulary terms the converter interprets. Annotations with other terms
// are carried in the model but not acted upon.
const (
	TermDescription     = "Org.OData.Core.V1.Description"
	TermLongDescription = "Org.OData.Core.V1.LongDescription"
	TermComputed        = "Org.OData.Core.V1.Computed"
	TermImmutable       = "Org.OData.Core.V1.Immutable"
)

// Annotation is a vocabulary annotation applied to a model element. Only
// constant expressions are represented: the value is kept as its lexical
// form plus a parsed boolean for `Bool` expressions.
type Annotation struct {
	// Term is the qualified name of the annotation term.
	Term string
	// Value is the constant expression value as written.
	Value string
	// Bool is the parsed value for boolean expressions. Terms that are
	// tagging terms (no expression) default to true.
	Bool bool
}

// Annotated is implemented by every model element that can carry
// annotations.
type Annotated interface {
	annotations() []*Annotation
}

func (t *EntityType) annotations() []*Annotation         { return t.Annotations }
func (t *ComplexType) annotations() []*Annotation        { return t.Annotations }
func (t *EnumType) annotations() []*Annotation           { return t.Annotations }
func (m *EnumMember) annotations() []*Annotation         { return m.Annotations }
func (t *TypeDefinition) annotations() []*Annotation     { return t.Annotations }
func (p *Property) annotations() []*Annotation           { return p.Annotations }
func (p *NavigationProperty) annotations() []*Annotation { return p.Annotations }
func (c *EntityContainer) annotations() []*Annotation    { return c.Annotations }
func (s *EntitySet) annotations() []*Annotation          { return s.Annotations }
func (s *Singleton) annotations() []*Annotation          { return s.Annotations }
func (a *Action) annotations() []*Annotation             { return a.Annotations }
func (f *Function) annotations() []*Annotation           { return f.Annotations }
func (p *Parameter) annotations() []*Annotation          { return p.Annotations }
func (i *ActionImport) annotations() []*Annotation       { return i.Annotations }
func (i *FunctionImport) annotations() []*Annotation     { return i.Annotations }

// FindAnnotation returns the first annotation with the given term, or nil.
func FindAnnotation(el Annotated, term string) *Annotation {
	if el == nil {
		return nil
	}
	for _, a := range el.annotations() {
		if a.Term == term {
			return a
		}
	}
	return nil
}

// Description returns the element's Core.Description value, or "".
func Description(el Annotated) string {
	if a := FindAnnotation(el, TermDescription); a != nil {
		return a.Value
	}
	return ""
}

// LongDescription returns the element's Core.LongDescription value, or "".
func LongDescription(el Annotated) string {
	if a := FindAnnotation(el, TermLongDescription); a != nil {
		return a.Value
	}
	return ""
}

// IsComputed reports whether a property is server-computed.
func IsComputed(p *Property) bool {
	a := FindAnnotation(p, TermComputed)
	return a != nil && a.Bool
}

// IsImmutable reports whether a property cannot change after creation.
func IsImmutable(p *Property) bool {
	a := FindAnnotation(p, TermImmutable)
	return a != nil && a.Bool
}
