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

// Package parser reads CSDL documents and converts them into the
// `edm.Model` representation.
package parser

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/odata2openapi/odata2openapi/internal/edm"
)

// ParseCSDL reads a CSDL XML document ($metadata) from a file and converts
// it into an entity data model.
func ParseCSDL(source string) (*edm.Model, error) {
	contents, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}
	return makeModel(contents)
}

func makeModel(contents []byte) (*edm.Model, error) {
	var doc edmxDocument
	if err := xml.Unmarshal(contents, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse CSDL document: %w", err)
	}
	if doc.Version != "4.0" && doc.Version != "4.01" {
		return nil, fmt.Errorf("unsupported EDMX version %q, expected 4.0 or 4.01", doc.Version)
	}
	aliases := collectAliases(&doc)
	model := &edm.Model{}
	namespaces := map[string]bool{}
	for _, s := range doc.DataServices.Schemas {
		if s.Namespace == "" {
			return nil, fmt.Errorf("schema without a Namespace attribute")
		}
		if namespaces[s.Namespace] {
			return nil, fmt.Errorf("duplicate schema namespace %q", s.Namespace)
		}
		namespaces[s.Namespace] = true
		schema, err := makeSchema(&s, aliases)
		if err != nil {
			return nil, err
		}
		model.Schemas = append(model.Schemas, schema)
	}
	edm.BuildState(model)
	for _, s := range doc.DataServices.Schemas {
		for _, block := range s.Annotations {
			applyAnnotationsBlock(model, &block, aliases)
		}
	}
	return model, nil
}

// collectAliases maps schema and reference aliases to their namespaces.
func collectAliases(doc *edmxDocument) map[string]string {
	aliases := map[string]string{}
	for _, r := range doc.References {
		for _, i := range r.Includes {
			if i.Alias != "" {
				aliases[i.Alias] = i.Namespace
			}
		}
	}
	for _, s := range doc.DataServices.Schemas {
		if s.Alias != "" {
			aliases[s.Alias] = s.Namespace
		}
	}
	return aliases
}

// resolveAlias normalizes a qualified name, replacing a leading alias with
// its namespace. Aliases are simple identifiers, so only the last dot can
// separate an alias from the element name.
func resolveAlias(qualified string, aliases map[string]string) string {
	pos := strings.LastIndex(qualified, ".")
	if pos == -1 {
		return qualified
	}
	if ns, ok := aliases[qualified[:pos]]; ok {
		return ns + qualified[pos:]
	}
	return qualified
}

func resolveTypeRef(name string, aliases map[string]string) edm.TypeRef {
	ref := edm.ParseTypeRef(name)
	ref.Name = resolveAlias(ref.Name, aliases)
	return ref
}

func makeSchema(s *csdlSchema, aliases map[string]string) (*edm.Schema, error) {
	schema := &edm.Schema{
		Namespace: s.Namespace,
		Alias:     s.Alias,
	}
	for _, t := range s.EntityTypes {
		schema.EntityTypes = append(schema.EntityTypes, makeEntityType(&t, s.Namespace, aliases))
	}
	for _, t := range s.ComplexTypes {
		schema.ComplexTypes = append(schema.ComplexTypes, makeComplexType(&t, s.Namespace, aliases))
	}
	for _, t := range s.EnumTypes {
		enum, err := makeEnumType(&t, s.Namespace, aliases)
		if err != nil {
			return nil, err
		}
		schema.EnumTypes = append(schema.EnumTypes, enum)
	}
	for _, t := range s.TypeDefinitions {
		schema.TypeDefinitions = append(schema.TypeDefinitions, &edm.TypeDefinition{
			Name:           t.Name,
			Namespace:      s.Namespace,
			UnderlyingType: resolveAlias(t.UnderlyingType, aliases),
			MaxLength:      parseFacet(t.MaxLength),
			Precision:      parseFacet(t.Precision),
			Scale:          parseFacet(t.Scale),
			Annotations:    makeAnnotations(t.AnnotationElements, aliases),
		})
	}
	for _, a := range s.Actions {
		schema.Actions = append(schema.Actions, &edm.Action{
			Name:          a.Name,
			Namespace:     s.Namespace,
			IsBound:       parseBool(a.IsBound, false),
			EntitySetPath: a.EntitySetPath,
			Parameters:    makeParameters(a.Parameters, aliases),
			ReturnType:    makeReturnType(a.ReturnType, aliases),
			Annotations:   makeAnnotations(a.AnnotationElements, aliases),
		})
	}
	for _, f := range s.Functions {
		schema.Functions = append(schema.Functions, &edm.Function{
			Name:          f.Name,
			Namespace:     s.Namespace,
			IsBound:       parseBool(f.IsBound, false),
			IsComposable:  parseBool(f.IsComposable, false),
			EntitySetPath: f.EntitySetPath,
			Parameters:    makeParameters(f.Parameters, aliases),
			ReturnType:    makeReturnType(f.ReturnType, aliases),
			Annotations:   makeAnnotations(f.AnnotationElements, aliases),
		})
	}
	if len(s.Containers) > 1 {
		return nil, fmt.Errorf("schema %q declares more than one entity container", s.Namespace)
	}
	for _, c := range s.Containers {
		schema.Container = makeContainer(&c, s.Namespace, aliases)
	}
	return schema, nil
}

func makeEntityType(t *csdlEntityType, namespace string, aliases map[string]string) *edm.EntityType {
	result := &edm.EntityType{
		Name:        t.Name,
		Namespace:   namespace,
		BaseType:    resolveAlias(t.BaseType, aliases),
		Abstract:    parseBool(t.Abstract, false),
		OpenType:    parseBool(t.OpenType, false),
		HasStream:   parseBool(t.HasStream, false),
		Annotations: makeAnnotations(t.AnnotationElements, aliases),
	}
	for _, ref := range t.Key.PropertyRefs {
		result.Key = append(result.Key, ref.Name)
	}
	result.Properties = makeProperties(t.Properties, aliases)
	result.NavigationProperties = makeNavigationProperties(t.NavigationProperties, aliases)
	return result
}

func makeComplexType(t *csdlComplexType, namespace string, aliases map[string]string) *edm.ComplexType {
	return &edm.ComplexType{
		Name:                 t.Name,
		Namespace:            namespace,
		BaseType:             resolveAlias(t.BaseType, aliases),
		Abstract:             parseBool(t.Abstract, false),
		OpenType:             parseBool(t.OpenType, false),
		Properties:           makeProperties(t.Properties, aliases),
		NavigationProperties: makeNavigationProperties(t.NavigationProperties, aliases),
		Annotations:          makeAnnotations(t.AnnotationElements, aliases),
	}
}

func makeEnumType(t *csdlEnumType, namespace string, aliases map[string]string) (*edm.EnumType, error) {
	underlying := t.UnderlyingType
	if underlying == "" {
		underlying = "Edm.Int32"
	}
	result := &edm.EnumType{
		Name:           t.Name,
		Namespace:      namespace,
		UnderlyingType: underlying,
		IsFlags:        parseBool(t.IsFlags, false),
		Annotations:    makeAnnotations(t.AnnotationElements, aliases),
	}
	for i, m := range t.Members {
		value := int64(i)
		if m.Value != "" {
			parsed, err := strconv.ParseInt(m.Value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q for enum member %s.%s/%s: %w", m.Value, namespace, t.Name, m.Name, err)
			}
			value = parsed
		}
		result.Members = append(result.Members, &edm.EnumMember{
			Name:        m.Name,
			Value:       value,
			Annotations: makeAnnotations(m.AnnotationElements, aliases),
		})
	}
	return result, nil
}

func makeProperties(properties []csdlProperty, aliases map[string]string) []*edm.Property {
	var result []*edm.Property
	for _, p := range properties {
		result = append(result, &edm.Property{
			Name:         p.Name,
			Type:         resolveTypeRef(p.Type, aliases),
			Nullable:     parseBool(p.Nullable, true),
			MaxLength:    parseFacet(p.MaxLength),
			Precision:    parseFacet(p.Precision),
			Scale:        parseFacet(p.Scale),
			DefaultValue: p.DefaultValue,
			Annotations:  makeAnnotations(p.AnnotationElements, aliases),
		})
	}
	return result
}

func makeNavigationProperties(properties []csdlNavigationProperty, aliases map[string]string) []*edm.NavigationProperty {
	var result []*edm.NavigationProperty
	for _, p := range properties {
		result = append(result, &edm.NavigationProperty{
			Name:           p.Name,
			Type:           resolveTypeRef(p.Type, aliases),
			Nullable:       parseBool(p.Nullable, true),
			Partner:        p.Partner,
			ContainsTarget: parseBool(p.ContainsTarget, false),
			Annotations:    makeAnnotations(p.AnnotationElements, aliases),
		})
	}
	return result
}

func makeParameters(parameters []csdlParameter, aliases map[string]string) []*edm.Parameter {
	var result []*edm.Parameter
	for _, p := range parameters {
		result = append(result, &edm.Parameter{
			Name:        p.Name,
			Type:        resolveTypeRef(p.Type, aliases),
			Nullable:    parseBool(p.Nullable, true),
			MaxLength:   parseFacet(p.MaxLength),
			Annotations: makeAnnotations(p.AnnotationElements, aliases),
		})
	}
	return result
}

func makeReturnType(r *csdlReturnType, aliases map[string]string) *edm.ReturnType {
	if r == nil {
		return nil
	}
	return &edm.ReturnType{
		Type:     resolveTypeRef(r.Type, aliases),
		Nullable: parseBool(r.Nullable, true),
	}
}

func makeContainer(c *csdlEntityContainer, namespace string, aliases map[string]string) *edm.EntityContainer {
	container := &edm.EntityContainer{
		Name:        c.Name,
		Namespace:   namespace,
		Annotations: makeAnnotations(c.AnnotationElements, aliases),
	}
	for _, s := range c.EntitySets {
		container.EntitySets = append(container.EntitySets, &edm.EntitySet{
			Name:                     s.Name,
			EntityType:               resolveAlias(s.EntityType, aliases),
			Bindings:                 makeBindings(s.Bindings),
			IncludeInServiceDocument: parseBool(s.IncludeInServiceDocument, true),
			Annotations:              makeAnnotations(s.AnnotationElements, aliases),
		})
	}
	for _, s := range c.Singletons {
		container.Singletons = append(container.Singletons, &edm.Singleton{
			Name:        s.Name,
			Type:        resolveAlias(s.Type, aliases),
			Bindings:    makeBindings(s.Bindings),
			Annotations: makeAnnotations(s.AnnotationElements, aliases),
		})
	}
	for _, i := range c.ActionImports {
		container.ActionImports = append(container.ActionImports, &edm.ActionImport{
			Name:        i.Name,
			Action:      resolveAlias(i.Action, aliases),
			EntitySet:   i.EntitySet,
			Annotations: makeAnnotations(i.AnnotationElements, aliases),
		})
	}
	for _, i := range c.FunctionImports {
		container.FunctionImports = append(container.FunctionImports, &edm.FunctionImport{
			Name:                     i.Name,
			Function:                 resolveAlias(i.Function, aliases),
			EntitySet:                i.EntitySet,
			IncludeInServiceDocument: parseBool(i.IncludeInServiceDocument, false),
			Annotations:              makeAnnotations(i.AnnotationElements, aliases),
		})
	}
	return container
}

func makeBindings(bindings []csdlNavigationPropertyBinding) []*edm.NavigationPropertyBinding {
	var result []*edm.NavigationPropertyBinding
	for _, b := range bindings {
		result = append(result, &edm.NavigationPropertyBinding{Path: b.Path, Target: b.Target})
	}
	return result
}

func makeAnnotations(annotations []csdlAnnotation, aliases map[string]string) []*edm.Annotation {
	var result []*edm.Annotation
	for _, a := range annotations {
		result = append(result, makeAnnotation(&a, aliases))
	}
	return result
}

func makeAnnotation(a *csdlAnnotation, aliases map[string]string) *edm.Annotation {
	result := &edm.Annotation{
		Term:  resolveAlias(a.Term, aliases),
		Value: a.String,
	}
	switch {
	case a.Bool != "":
		result.Bool = a.Bool == "true"
	case a.String == "":
		// A tagging term with no explicit value applies with its default,
		// which is true for the Core terms the converter evaluates.
		result.Bool = true
	}
	return result
}

// applyAnnotationsBlock attaches out-of-line annotations to their target
// element. Targets that are not in scope are ignored, matching the lenient
// treatment CSDL consumers give to external annotation files.
func applyAnnotationsBlock(model *edm.Model, block *csdlAnnotations, aliases map[string]string) {
	annotations := makeAnnotations(block.AnnotationElements, aliases)
	if len(annotations) == 0 {
		return
	}
	target, child, _ := strings.Cut(block.Target, "/")
	target = resolveAlias(target, aliases)
	for _, el := range resolveTargets(model, target, child) {
		switch el := el.(type) {
		case *edm.EntityType:
			el.Annotations = append(el.Annotations, annotations...)
		case *edm.ComplexType:
			el.Annotations = append(el.Annotations, annotations...)
		case *edm.EnumType:
			el.Annotations = append(el.Annotations, annotations...)
		case *edm.EnumMember:
			el.Annotations = append(el.Annotations, annotations...)
		case *edm.TypeDefinition:
			el.Annotations = append(el.Annotations, annotations...)
		case *edm.Property:
			el.Annotations = append(el.Annotations, annotations...)
		case *edm.NavigationProperty:
			el.Annotations = append(el.Annotations, annotations...)
		case *edm.EntityContainer:
			el.Annotations = append(el.Annotations, annotations...)
		case *edm.EntitySet:
			el.Annotations = append(el.Annotations, annotations...)
		case *edm.Singleton:
			el.Annotations = append(el.Annotations, annotations...)
		case *edm.Action:
			el.Annotations = append(el.Annotations, annotations...)
		case *edm.Function:
			el.Annotations = append(el.Annotations, annotations...)
		case *edm.ActionImport:
			el.Annotations = append(el.Annotations, annotations...)
		case *edm.FunctionImport:
			el.Annotations = append(el.Annotations, annotations...)
		}
	}
}

// resolveTargets finds the model elements an annotation target path names.
// Operation targets resolve to every overload.
func resolveTargets(model *edm.Model, target, child string) []any {
	if t := model.EntityType(target); t != nil {
		if child == "" {
			return []any{t}
		}
		for search := t; search != nil; search = model.BaseOf(search) {
			for _, p := range search.Properties {
				if p.Name == child {
					return []any{p}
				}
			}
			for _, p := range search.NavigationProperties {
				if p.Name == child {
					return []any{p}
				}
			}
		}
		return nil
	}
	if t := model.ComplexType(target); t != nil {
		if child == "" {
			return []any{t}
		}
		for _, p := range t.Properties {
			if p.Name == child {
				return []any{p}
			}
		}
		for _, p := range t.NavigationProperties {
			if p.Name == child {
				return []any{p}
			}
		}
		return nil
	}
	if t := model.EnumType(target); t != nil {
		if child == "" {
			return []any{t}
		}
		for _, m := range t.Members {
			if m.Name == child {
				return []any{m}
			}
		}
		return nil
	}
	if t := model.TypeDefinition(target); t != nil && child == "" {
		return []any{t}
	}
	if overloads := model.State.ActionsByName[target]; len(overloads) > 0 && child == "" {
		var result []any
		for _, a := range overloads {
			result = append(result, a)
		}
		return result
	}
	if overloads := model.State.FunctionsByName[target]; len(overloads) > 0 && child == "" {
		var result []any
		for _, f := range overloads {
			result = append(result, f)
		}
		return result
	}
	for _, s := range model.Schemas {
		c := s.Container
		if c == nil || target != c.Namespace+"."+c.Name {
			continue
		}
		if child == "" {
			return []any{c}
		}
		for _, set := range c.EntitySets {
			if set.Name == child {
				return []any{set}
			}
		}
		for _, sg := range c.Singletons {
			if sg.Name == child {
				return []any{sg}
			}
		}
		for _, i := range c.ActionImports {
			if i.Name == child {
				return []any{i}
			}
		}
		for _, i := range c.FunctionImports {
			if i.Name == child {
				return []any{i}
			}
		}
	}
	return nil
}

// parseBool interprets an optional XML boolean attribute.
func parseBool(value string, missing bool) bool {
	if value == "" {
		return missing
	}
	return value == "true"
}

// parseFacet interprets a numeric facet attribute. Symbolic values such as
// MaxLength="max" or Scale="variable" leave the facet unset.
func parseFacet(value string) *int {
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &parsed
}

// The remaining types mirror the CSDL XML grammar. Boolean and numeric
// attributes are kept as strings so absent attributes can fall back to the
// defaults the standard assigns them.

type edmxDocument struct {
	XMLName      xml.Name         `xml:"Edmx"`
	Version      string           `xml:"Version,attr"`
	References   []edmxReference  `xml:"Reference"`
	DataServices edmxDataServices `xml:"DataServices"`
}

type edmxReference struct {
	URI      string        `xml:"Uri,attr"`
	Includes []edmxInclude `xml:"Include"`
}

type edmxInclude struct {
	Namespace string `xml:"Namespace,attr"`
	Alias     string `xml:"Alias,attr"`
}

type edmxDataServices struct {
	Schemas []csdlSchema `xml:"Schema"`
}

type csdlSchema struct {
	Namespace       string                `xml:"Namespace,attr"`
	Alias           string                `xml:"Alias,attr"`
	EntityTypes     []csdlEntityType      `xml:"EntityType"`
	ComplexTypes    []csdlComplexType     `xml:"ComplexType"`
	EnumTypes       []csdlEnumType        `xml:"EnumType"`
	TypeDefinitions []csdlTypeDefinition  `xml:"TypeDefinition"`
	Actions         []csdlAction          `xml:"Action"`
	Functions       []csdlFunction        `xml:"Function"`
	Containers      []csdlEntityContainer `xml:"EntityContainer"`
	Annotations     []csdlAnnotations     `xml:"Annotations"`
}

type csdlEntityType struct {
	Name                 string                   `xml:"Name,attr"`
	BaseType             string                   `xml:"BaseType,attr"`
	Abstract             string                   `xml:"Abstract,attr"`
	OpenType             string                   `xml:"OpenType,attr"`
	HasStream            string                   `xml:"HasStream,attr"`
	Key                  csdlKey                  `xml:"Key"`
	Properties           []csdlProperty           `xml:"Property"`
	NavigationProperties []csdlNavigationProperty `xml:"NavigationProperty"`
	AnnotationElements   []csdlAnnotation         `xml:"Annotation"`
}

type csdlKey struct {
	PropertyRefs []csdlPropertyRef `xml:"PropertyRef"`
}

type csdlPropertyRef struct {
	Name string `xml:"Name,attr"`
}

type csdlComplexType struct {
	Name                 string                   `xml:"Name,attr"`
	BaseType             string                   `xml:"BaseType,attr"`
	Abstract             string                   `xml:"Abstract,attr"`
	OpenType             string                   `xml:"OpenType,attr"`
	Properties           []csdlProperty           `xml:"Property"`
	NavigationProperties []csdlNavigationProperty `xml:"NavigationProperty"`
	AnnotationElements   []csdlAnnotation         `xml:"Annotation"`
}

type csdlEnumType struct {
	Name               string           `xml:"Name,attr"`
	UnderlyingType     string           `xml:"UnderlyingType,attr"`
	IsFlags            string           `xml:"IsFlags,attr"`
	Members            []csdlEnumMember `xml:"Member"`
	AnnotationElements []csdlAnnotation `xml:"Annotation"`
}

type csdlEnumMember struct {
	Name               string           `xml:"Name,attr"`
	Value              string           `xml:"Value,attr"`
	AnnotationElements []csdlAnnotation `xml:"Annotation"`
}

type csdlTypeDefinition struct {
	Name               string           `xml:"Name,attr"`
	UnderlyingType     string           `xml:"UnderlyingType,attr"`
	MaxLength          string           `xml:"MaxLength,attr"`
	Precision          string           `xml:"Precision,attr"`
	Scale              string           `xml:"Scale,attr"`
	AnnotationElements []csdlAnnotation `xml:"Annotation"`
}

type csdlProperty struct {
	Name               string           `xml:"Name,attr"`
	Type               string           `xml:"Type,attr"`
	Nullable           string           `xml:"Nullable,attr"`
	MaxLength          string           `xml:"MaxLength,attr"`
	Precision          string           `xml:"Precision,attr"`
	Scale              string           `xml:"Scale,attr"`
	DefaultValue       *string          `xml:"DefaultValue,attr"`
	AnnotationElements []csdlAnnotation `xml:"Annotation"`
}

type csdlNavigationProperty struct {
	Name               string           `xml:"Name,attr"`
	Type               string           `xml:"Type,attr"`
	Nullable           string           `xml:"Nullable,attr"`
	Partner            string           `xml:"Partner,attr"`
	ContainsTarget     string           `xml:"ContainsTarget,attr"`
	AnnotationElements []csdlAnnotation `xml:"Annotation"`
}

type csdlAction struct {
	Name               string           `xml:"Name,attr"`
	IsBound            string           `xml:"IsBound,attr"`
	EntitySetPath      string           `xml:"EntitySetPath,attr"`
	Parameters         []csdlParameter  `xml:"Parameter"`
	ReturnType         *csdlReturnType  `xml:"ReturnType"`
	AnnotationElements []csdlAnnotation `xml:"Annotation"`
}

type csdlFunction struct {
	Name               string           `xml:"Name,attr"`
	IsBound            string           `xml:"IsBound,attr"`
	IsComposable       string           `xml:"IsComposable,attr"`
	EntitySetPath      string           `xml:"EntitySetPath,attr"`
	Parameters         []csdlParameter  `xml:"Parameter"`
	ReturnType         *csdlReturnType  `xml:"ReturnType"`
	AnnotationElements []csdlAnnotation `xml:"Annotation"`
}

type csdlParameter struct {
	Name               string           `xml:"Name,attr"`
	Type               string           `xml:"Type,attr"`
	Nullable           string           `xml:"Nullable,attr"`
	MaxLength          string           `xml:"MaxLength,attr"`
	AnnotationElements []csdlAnnotation `xml:"Annotation"`
}

type csdlReturnType struct {
	Type     string `xml:"Type,attr"`
	Nullable string `xml:"Nullable,attr"`
}

type csdlEntityContainer struct {
	Name               string               `xml:"Name,attr"`
	EntitySets         []csdlEntitySet      `xml:"EntitySet"`
	Singletons         []csdlSingleton      `xml:"Singleton"`
	ActionImports      []csdlActionImport   `xml:"ActionImport"`
	FunctionImports    []csdlFunctionImport `xml:"FunctionImport"`
	AnnotationElements []csdlAnnotation     `xml:"Annotation"`
}

type csdlEntitySet struct {
	Name                     string                          `xml:"Name,attr"`
	EntityType               string                          `xml:"EntityType,attr"`
	IncludeInServiceDocument string                          `xml:"IncludeInServiceDocument,attr"`
	Bindings                 []csdlNavigationPropertyBinding `xml:"NavigationPropertyBinding"`
	AnnotationElements       []csdlAnnotation                `xml:"Annotation"`
}

type csdlSingleton struct {
	Name               string                          `xml:"Name,attr"`
	Type               string                          `xml:"Type,attr"`
	Bindings           []csdlNavigationPropertyBinding `xml:"NavigationPropertyBinding"`
	AnnotationElements []csdlAnnotation                `xml:"Annotation"`
}

type csdlNavigationPropertyBinding struct {
	Path   string `xml:"Path,attr"`
	Target string `xml:"Target,attr"`
}

type csdlActionImport struct {
	Name               string           `xml:"Name,attr"`
	Action             string           `xml:"Action,attr"`
	EntitySet          string           `xml:"EntitySet,attr"`
	AnnotationElements []csdlAnnotation `xml:"Annotation"`
}

type csdlFunctionImport struct {
	Name                     string           `xml:"Name,attr"`
	Function                 string           `xml:"Function,attr"`
	EntitySet                string           `xml:"EntitySet,attr"`
	IncludeInServiceDocument string           `xml:"IncludeInServiceDocument,attr"`
	AnnotationElements       []csdlAnnotation `xml:"Annotation"`
}

type csdlAnnotations struct {
	Target             string           `xml:"Target,attr"`
	Qualifier          string           `xml:"Qualifier,attr"`
	AnnotationElements []csdlAnnotation `xml:"Annotation"`
}

type csdlAnnotation struct {
	Term   string `xml:"Term,attr"`
	String string `xml:"String,attr"`
	Bool   string `xml:"Bool,attr"`
}
