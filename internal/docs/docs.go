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

// Package docs renders an OpenAPI document as a Markdown API reference:
// one section per tag with an operation table, plus a schema index.
package docs

import (
	"embed"
	"path"
	"slices"

	"github.com/cbroglie/mustache"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/iancoleman/strcase"
)

//go:embed all:templates
var templates embed.FS

// mustacheProvider resolves partial names relative to the including
// template, with the `.mustache` extension implied.
type mustacheProvider struct {
	impl    func(string) (string, error)
	dirname string
}

func (p *mustacheProvider) Get(name string) (string, error) {
	return p.impl(path.Join(p.dirname, name) + ".mustache")
}

func templatesProvider() func(string) (string, error) {
	return func(name string) (string, error) {
		contents, err := templates.ReadFile(name)
		if err != nil {
			return "", err
		}
		return string(contents), nil
	}
}

// Render produces the Markdown reference for a converted document.
func Render(doc *openapi3.T) ([]byte, error) {
	provider := templatesProvider()
	contents, err := provider("templates/reference.mustache")
	if err != nil {
		return nil, err
	}
	nested := &mustacheProvider{impl: provider, dirname: "templates"}
	s, err := mustache.RenderPartials(contents, nested, newReferenceData(doc))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

type referenceData struct {
	Title       string
	Description string
	Version     string
	ServerURL   string
	Sections    []*sectionData
	Schemas     []*schemaRowData
}

type sectionData struct {
	Tag         string
	Anchor      string
	Description string
	Operations  []*operationRowData
}

type operationRowData struct {
	Method      string
	Path        string
	OperationID string
	Summary     string
}

type schemaRowData struct {
	Name        string
	Type        string
	Description string
}

// newReferenceData flattens the document into the template's shape. Paths
// are listed in lexical order; operations group under their first tag, and
// untagged operations fall into a Service Root section.
func newReferenceData(doc *openapi3.T) *referenceData {
	data := &referenceData{
		Title:       doc.Info.Title,
		Description: plainText(doc.Info.Description),
		Version:     doc.Info.Version,
	}
	if len(doc.Servers) > 0 {
		data.ServerURL = doc.Servers[0].URL
	}

	sections := map[string]*sectionData{}
	sectionFor := func(tag, description string) *sectionData {
		s, ok := sections[tag]
		if !ok {
			name := tag
			if name == "" {
				name = "Service Root"
			}
			s = &sectionData{
				Tag:         name,
				Anchor:      strcase.ToKebab(name),
				Description: plainText(description),
			}
			sections[tag] = s
			data.Sections = append(data.Sections, s)
		}
		return s
	}
	for _, tag := range doc.Tags {
		sectionFor(tag.Name, tag.Description)
	}

	paths := make([]string, 0, doc.Paths.Len())
	for p := range doc.Paths.Map() {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	for _, p := range paths {
		item := doc.Paths.Value(p)
		for _, entry := range []struct {
			method string
			op     *openapi3.Operation
		}{
			{"GET", item.Get},
			{"POST", item.Post},
			{"PUT", item.Put},
			{"PATCH", item.Patch},
			{"DELETE", item.Delete},
		} {
			if entry.op == nil {
				continue
			}
			tag := ""
			if len(entry.op.Tags) > 0 {
				tag = entry.op.Tags[0]
			}
			section := sectionFor(tag, "")
			section.Operations = append(section.Operations, &operationRowData{
				Method:      entry.method,
				Path:        p,
				OperationID: entry.op.OperationID,
				Summary:     entry.op.Summary,
			})
		}
	}

	if doc.Components != nil {
		names := make([]string, 0, len(doc.Components.Schemas))
		for name := range doc.Components.Schemas {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			schema := doc.Components.Schemas[name].Value
			data.Schemas = append(data.Schemas, &schemaRowData{
				Name:        name,
				Type:        schemaType(schema),
				Description: plainText(schema.Description),
			})
		}
	}
	return data
}

// schemaType names the JSON type of a schema; composed schemas read as
// objects.
func schemaType(schema *openapi3.Schema) string {
	if schema == nil {
		return ""
	}
	if schema.Type != nil && len(*schema.Type) > 0 {
		return (*schema.Type)[0]
	}
	if len(schema.AllOf) > 0 {
		return "object"
	}
	return ""
}
