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

package openapi

import (
	"fmt"
	"strconv"
)

// Settings configure the conversion. Obtain defaults from NewSettings and
// overlay configuration values with Apply.
type Settings struct {
	// ServiceRoot is the base URL of the service, used as the server URL
	// and shown in the info description.
	ServiceRoot string
	// Title of the document. When empty the title is derived from the
	// model's namespaces.
	Title string
	// DocumentVersion is the info version of the document, unrelated to
	// the OData or OpenAPI versions.
	DocumentVersion string
	// ODataVersion is `4.0` or `4.01`. Version 4.01 drops the `odata.`
	// prefix from control information names.
	ODataVersion string
	// KeyAsSegment renders single-property keys as path segments.
	KeyAsSegment bool
	// UnqualifiedCalls renders bound operation segments without their
	// namespace.
	UnqualifiedCalls bool
	// OperationIDs emits an operationId on every operation.
	OperationIDs bool
	// Pagination adds the nextLink control information to collection
	// responses.
	Pagination bool
	// Count emits `$count` paths, the `$count` query parameter, and the
	// count control information in collection responses.
	Count bool
	// DerivedTypeCasts emits type-cast paths for derived entity types.
	DerivedTypeCasts bool
	// SuccessRange keys body-bearing success responses as `2XX` instead
	// of `200`/`201`. `204` responses are unaffected.
	SuccessRange bool
	// ErrorsAsDefault keys the error response as `default`. When false it
	// is keyed as `4XX` and `5XX`.
	ErrorsAsDefault bool
	// PrefixKeyNames prefixes key parameter names with the entity type
	// name.
	PrefixKeyNames bool
	// RootPath emits the `/` service document path.
	RootPath bool
	// SchemaExamples attaches an example object to entity and complex
	// type schemas.
	SchemaExamples bool
	// IEEE754Compatible maps Edm.Int64 and Edm.Decimal to string schemas.
	IEEE754Compatible bool
	// MaxDepth caps navigation expansion. Zero means unlimited.
	MaxDepth int
}

// NewSettings returns the default conversion settings.
func NewSettings() *Settings {
	return &Settings{
		ServiceRoot:     "http://localhost",
		DocumentVersion: "1.0.0",
		ODataVersion:    "4.0",
		OperationIDs:    true,
		Count:           true,
		ErrorsAsDefault: true,
	}
}

// Apply overlays `key=value` pairs from the command line or the project
// configuration onto the settings.
func (s *Settings) Apply(options map[string]string) error {
	for key, definition := range options {
		switch {
		case key == "service-root":
			s.ServiceRoot = definition
		case key == "title":
			s.Title = definition
		case key == "document-version":
			s.DocumentVersion = definition
		case key == "odata-version":
			if definition != "4.0" && definition != "4.01" {
				return fmt.Errorf("unsupported `odata-version` value %q, expected 4.0 or 4.01", definition)
			}
			s.ODataVersion = definition
		case key == "key-as-segment":
			value, err := strconv.ParseBool(definition)
			if err != nil {
				return fmt.Errorf("cannot convert `key-as-segment` value %q to boolean: %w", definition, err)
			}
			s.KeyAsSegment = value
		case key == "unqualified-calls":
			value, err := strconv.ParseBool(definition)
			if err != nil {
				return fmt.Errorf("cannot convert `unqualified-calls` value %q to boolean: %w", definition, err)
			}
			s.UnqualifiedCalls = value
		case key == "operation-ids":
			value, err := strconv.ParseBool(definition)
			if err != nil {
				return fmt.Errorf("cannot convert `operation-ids` value %q to boolean: %w", definition, err)
			}
			s.OperationIDs = value
		case key == "pagination":
			value, err := strconv.ParseBool(definition)
			if err != nil {
				return fmt.Errorf("cannot convert `pagination` value %q to boolean: %w", definition, err)
			}
			s.Pagination = value
		case key == "count":
			value, err := strconv.ParseBool(definition)
			if err != nil {
				return fmt.Errorf("cannot convert `count` value %q to boolean: %w", definition, err)
			}
			s.Count = value
		case key == "derived-type-casts":
			value, err := strconv.ParseBool(definition)
			if err != nil {
				return fmt.Errorf("cannot convert `derived-type-casts` value %q to boolean: %w", definition, err)
			}
			s.DerivedTypeCasts = value
		case key == "success-range":
			value, err := strconv.ParseBool(definition)
			if err != nil {
				return fmt.Errorf("cannot convert `success-range` value %q to boolean: %w", definition, err)
			}
			s.SuccessRange = value
		case key == "errors-as-default":
			value, err := strconv.ParseBool(definition)
			if err != nil {
				return fmt.Errorf("cannot convert `errors-as-default` value %q to boolean: %w", definition, err)
			}
			s.ErrorsAsDefault = value
		case key == "prefix-key-names":
			value, err := strconv.ParseBool(definition)
			if err != nil {
				return fmt.Errorf("cannot convert `prefix-key-names` value %q to boolean: %w", definition, err)
			}
			s.PrefixKeyNames = value
		case key == "root-path":
			value, err := strconv.ParseBool(definition)
			if err != nil {
				return fmt.Errorf("cannot convert `root-path` value %q to boolean: %w", definition, err)
			}
			s.RootPath = value
		case key == "schema-examples":
			value, err := strconv.ParseBool(definition)
			if err != nil {
				return fmt.Errorf("cannot convert `schema-examples` value %q to boolean: %w", definition, err)
			}
			s.SchemaExamples = value
		case key == "ieee754-compatible":
			value, err := strconv.ParseBool(definition)
			if err != nil {
				return fmt.Errorf("cannot convert `ieee754-compatible` value %q to boolean: %w", definition, err)
			}
			s.IEEE754Compatible = value
		case key == "max-depth":
			value, err := strconv.Atoi(definition)
			if err != nil {
				return fmt.Errorf("cannot convert `max-depth` value %q to integer: %w", definition, err)
			}
			s.MaxDepth = value
		default:
			return fmt.Errorf("unknown conversion setting %q", key)
		}
	}
	return nil
}

// countControl returns the count control information name for the
// configured OData version.
func (s *Settings) countControl() string {
	if s.ODataVersion == "4.01" {
		return "@count"
	}
	return "@odata.count"
}

// nextLinkControl returns the nextLink control information name.
func (s *Settings) nextLinkControl() string {
	if s.ODataVersion == "4.01" {
		return "@nextLink"
	}
	return "@odata.nextLink"
}

// idControl returns the id control information name.
func (s *Settings) idControl() string {
	if s.ODataVersion == "4.01" {
		return "@id"
	}
	return "@odata.id"
}

// contextControl returns the context control information name.
func (s *Settings) contextControl() string {
	if s.ODataVersion == "4.01" {
		return "@context"
	}
	return "@odata.context"
}
