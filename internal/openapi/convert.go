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

// Package openapi converts an entity data model into an OpenAPI 3.0.1
// document. The conversion decomposes the model into resource paths,
// dispatches each path to an operation handler by kind, and maps the
// model's types into component schemas.
package openapi

import (
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/odata2openapi/odata2openapi/internal/edm"
	"github.com/odata2openapi/odata2openapi/internal/odatapath"
)

// converter carries the conversion state: the model, the settings, the
// operationIds handed out so far, and the tags seen so far.
type converter struct {
	model    *edm.Model
	settings *Settings
	usedIDs  map[string]int
	tags     map[string]string
}

// Convert translates a model into an OpenAPI document. The model is
// validated first; conversion assumes all type references resolve.
func Convert(model *edm.Model, settings *Settings) (*openapi3.T, error) {
	if settings == nil {
		settings = NewSettings()
	}
	if err := edm.Validate(model); err != nil {
		return nil, err
	}
	c := &converter{
		model:    model,
		settings: settings,
		usedIDs:  map[string]int{},
		tags:     map[string]string{},
	}

	provider := odatapath.NewProvider(model, &odatapath.Options{
		IncludeCount:       settings.Count,
		IncludeTypeCasts:   settings.DerivedTypeCasts,
		IncludeRoot:        settings.RootPath,
		MaxNavigationDepth: settings.MaxDepth,
	})
	templateOptions := &odatapath.TemplateOptions{
		KeyAsSegment:     settings.KeyAsSegment,
		UnqualifiedCalls: settings.UnqualifiedCalls,
		PrefixKeyNames:   settings.PrefixKeyNames,
	}
	paths := openapi3.NewPaths()
	for _, path := range provider.Paths() {
		template := path.Template(templateOptions)
		item, err := c.pathItem(path, template)
		if err != nil {
			return nil, err
		}
		paths.Set(template.Path, item)
	}

	return &openapi3.T{
		OpenAPI: "3.0.1",
		Info:    c.info(),
		Servers: openapi3.Servers{{URL: settings.ServiceRoot}},
		Tags:    c.sortedTags(),
		Paths:   paths,
		Components: &openapi3.Components{
			Schemas:    c.schemaComponents(),
			Parameters: c.parameterComponents(),
			Responses:  c.responseComponents(),
		},
	}, nil
}

// info builds the document info. The default title names the model's
// namespaces, and the description links the service root.
func (c *converter) info() *openapi3.Info {
	title := c.settings.Title
	if title == "" {
		title = fmt.Sprintf("OData Service for namespace %s", strings.Join(c.model.Namespaces(), ", "))
	}
	root := c.settings.ServiceRoot
	return &openapi3.Info{
		Title:       title,
		Description: fmt.Sprintf("This OData service is located at [%s](%s)", root, root),
		Version:     c.settings.DocumentVersion,
	}
}

// tag registers a tag name on first use and returns it. The first
// registration keeps its description.
func (c *converter) tag(name, description string) string {
	if _, ok := c.tags[name]; !ok {
		c.tags[name] = description
	}
	return name
}

// sortedTags returns the registered tags in name order.
func (c *converter) sortedTags() openapi3.Tags {
	names := make([]string, 0, len(c.tags))
	for name := range c.tags {
		names = append(names, name)
	}
	slices.Sort(names)
	tags := make(openapi3.Tags, 0, len(names))
	for _, name := range names {
		tags = append(tags, &openapi3.Tag{Name: name, Description: c.tags[name]})
	}
	return tags
}
