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
	"github.com/getkin/kin-openapi/openapi3"
)

// responseComponents defines the error response every operation shares.
func (c *converter) responseComponents() openapi3.ResponseBodies {
	description := "Error response"
	return openapi3.ResponseBodies{
		"error": &openapi3.ResponseRef{Value: &openapi3.Response{
			Description: &description,
			Content:     jsonContent(schemaRef("odata.error")),
		}},
	}
}

// errorResponses attaches the shared error response, under `default` or
// under the client and server error ranges.
func (c *converter) errorResponses(responses *openapi3.Responses) {
	if c.settings.ErrorsAsDefault {
		responses.Set("default", &openapi3.ResponseRef{Ref: "#/components/responses/error"})
		return
	}
	responses.Set("4XX", &openapi3.ResponseRef{Ref: "#/components/responses/error"})
	responses.Set("5XX", &openapi3.ResponseRef{Ref: "#/components/responses/error"})
}

// successCode widens a body-bearing success code to `2XX` when the
// success-range setting is on. `204` responses never pass through here.
func (c *converter) successCode(code string) string {
	if c.settings.SuccessRange {
		return "2XX"
	}
	return code
}

// successResponse sets a body-bearing success response on the operation.
func (c *converter) successResponse(op *openapi3.Operation, code, description string, content openapi3.Content) {
	op.Responses.Set(c.successCode(code), &openapi3.ResponseRef{Value: &openapi3.Response{
		Description: &description,
		Content:     content,
	}})
}

// jsonResponse sets a JSON success response on the operation.
func (c *converter) jsonResponse(op *openapi3.Operation, code, description string, schema *openapi3.SchemaRef) {
	c.successResponse(op, code, description, jsonContent(schema))
}

// emptyResponse sets a bodiless response on the operation.
func emptyResponse(op *openapi3.Operation, code, description string) {
	op.Responses.Set(code, &openapi3.ResponseRef{Value: &openapi3.Response{
		Description: &description,
	}})
}

// jsonContent wraps a schema as an `application/json` body.
func jsonContent(schema *openapi3.SchemaRef) openapi3.Content {
	return openapi3.Content{
		"application/json": &openapi3.MediaType{Schema: schema},
	}
}

// binaryContent is the `application/octet-stream` body of media entity
// streams.
func binaryContent() openapi3.Content {
	return openapi3.Content{
		"application/octet-stream": &openapi3.MediaType{Schema: &openapi3.SchemaRef{
			Value: primitive(openapi3.TypeString, "binary"),
		}},
	}
}

// textContent is the `text/plain` body of `$count` reads.
func textContent(schema *openapi3.SchemaRef) openapi3.Content {
	return openapi3.Content{
		"text/plain": &openapi3.MediaType{Schema: schema},
	}
}

// jsonBody builds a required JSON request body.
func jsonBody(description string, schema *openapi3.SchemaRef) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{Value: &openapi3.RequestBody{
		Description: description,
		Required:    true,
		Content:     jsonContent(schema),
	}}
}
