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
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/odata2openapi/odata2openapi/internal/edm"
)

// TemplateOptions control how a path renders into an OpenAPI path string.
type TemplateOptions struct {
	// KeyAsSegment renders single-property keys as their own path segment,
	// `/Products/{ID}`, instead of the parenthesized `/Products({ID})`.
	// Multi-part keys keep the parenthesized form.
	KeyAsSegment bool
	// UnqualifiedCalls renders bound operation segments without their
	// namespace, `/Rate` instead of `/ODataDemo.Rate`.
	UnqualifiedCalls bool
	// PrefixKeyNames renders key parameters prefixed with the entity type
	// name, `{productID}` instead of `{ID}`.
	PrefixKeyNames bool
}

// KeyParameter is a template parameter produced by a key segment.
type KeyParameter struct {
	// Name of the template parameter. Unique within the path.
	Name string
	// Property is the key property the parameter carries.
	Property *edm.Property
	// Type is the entity type the key addresses.
	Type *edm.EntityType
}

// FunctionParameter is a template parameter produced by a function segment.
type FunctionParameter struct {
	// Name of the template parameter. Unique within the path.
	Name string
	// Parameter is the function parameter the value binds to.
	Parameter *edm.Parameter
}

// Template is the rendered form of a path.
type Template struct {
	// Path is the OpenAPI path string, e.g. `/Products({ID})/Category`.
	Path string
	// Keys lists the key parameters appearing in the path, in order.
	Keys []KeyParameter
	// FunctionParameters lists the function parameters appearing in the
	// path, in order.
	FunctionParameters []FunctionParameter
}

// Template renders the path with the given options. Parameter names are
// unique within a path: a second occurrence of `{ID}` becomes `{ID1}`.
func (p *Path) Template(opts *TemplateOptions) *Template {
	if opts == nil {
		opts = &TemplateOptions{}
	}
	result := &Template{}
	used := map[string]int{}
	var sb strings.Builder
	for _, segment := range p.Segments {
		switch s := segment.(type) {
		case *ServiceRootSegment:
			sb.WriteString("/")
		case *EntitySetSegment:
			sb.WriteString("/" + s.Set.Name)
		case *SingletonSegment:
			sb.WriteString("/" + s.Singleton.Name)
		case *NavigationSegment:
			sb.WriteString("/" + s.Property.Name)
		case *CountSegment:
			sb.WriteString("/$count")
		case *RefSegment:
			sb.WriteString("/$ref")
		case *ValueSegment:
			sb.WriteString("/$value")
		case *TypeCastSegment:
			sb.WriteString("/" + s.Type.QualifiedName())
		case *KeySegment:
			sb.WriteString(renderKey(s, opts, used, result))
		case *OperationSegment:
			sb.WriteString("/" + s.Name(!opts.UnqualifiedCalls))
			if s.IsFunction() {
				sb.WriteString(renderParameterList(s.Function, used, result))
			}
		case *OperationImportSegment:
			sb.WriteString("/" + s.Name())
			if s.IsFunction() {
				sb.WriteString(renderParameterList(s.Function, used, result))
			}
		}
	}
	result.Path = sb.String()
	return result
}

// renderKey renders a key segment and records its parameters.
func renderKey(s *KeySegment, opts *TemplateOptions, used map[string]int, result *Template) string {
	var names []string
	for _, property := range s.Properties {
		name := property.Name
		if opts.PrefixKeyNames {
			name = strcase.ToLowerCamel(s.Type.Name) + property.Name
		}
		name = uniqueName(name, used)
		names = append(names, name)
		result.Keys = append(result.Keys, KeyParameter{
			Name:     name,
			Property: property,
			Type:     s.Type,
		})
	}
	if len(s.Properties) == 1 {
		if opts.KeyAsSegment {
			return fmt.Sprintf("/{%s}", names[0])
		}
		return fmt.Sprintf("({%s})", names[0])
	}
	var parts []string
	for i, property := range s.Properties {
		parts = append(parts, fmt.Sprintf("%s={%s}", property.Name, names[i]))
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// renderParameterList renders a function's invocation parameters inline,
// `(count={count})`, and records them. The empty parameter list still
// renders its parentheses, as OData requires for function calls.
func renderParameterList(f *edm.Function, used map[string]int, result *Template) string {
	var parts []string
	for _, parameter := range f.InvocationParameters() {
		name := uniqueName(parameter.Name, used)
		parts = append(parts, fmt.Sprintf("%s={%s}", parameter.Name, name))
		result.FunctionParameters = append(result.FunctionParameters, FunctionParameter{
			Name:      name,
			Parameter: parameter,
		})
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// uniqueName disambiguates a template parameter name with an ordinal suffix.
func uniqueName(name string, used map[string]int) string {
	n := used[name]
	used[name]++
	if n == 0 {
		return name
	}
	return fmt.Sprintf("%s%d", name, n)
}
