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

package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/ghodss/yaml"
	"github.com/odata2openapi/odata2openapi/internal/config"
	"github.com/odata2openapi/odata2openapi/internal/openapi"
	"github.com/odata2openapi/odata2openapi/internal/parser"
)

func init() {
	newCommand(
		"odata2openapi convert",
		"Converts a CSDL document into an OpenAPI document.",
		`
Reads the CSDL document named by -metadata, converts it into an OpenAPI 3
document, and writes the result to the file named by -output, or to standard
output when no output is configured. Conversion settings come from the
odata2openapi.toml file, from ODATA2OPENAPI_* environment variables, and from
-set key=value pairs, in that order.
`,
		cmdRoot,
		convert,
	).
		addFlagFunc("service-root", "the base URL of the service, equivalent to -set service-root=<value>", settingFlag("service-root")).
		addFlagFunc("title", "the document title, equivalent to -set title=<value>", settingFlag("title")).
		addFlagFunc("document-version", "the info version of the document, equivalent to -set document-version=<value>", settingFlag("document-version")).
		addFlagFunc("odata-version", "the OData version, 4.0 or 4.01, equivalent to -set odata-version=<value>", settingFlag("odata-version"))
}

// settingFlag maps a direct flag onto the equivalent conversion setting.
func settingFlag(key string) func(string) error {
	return func(value string) error {
		settingOpts[key] = value
		return nil
	}
}

// convert implements the 'convert' command.
func convert(cfg *config.Config, _ *CommandLine) error {
	start := time.Now()
	document, err := convertDocument(cfg)
	if err != nil {
		return err
	}
	contents, err := encodeDocument(document, cfg.General.Format)
	if err != nil {
		return err
	}
	slog.Debug("converted document", "metadata", cfg.General.Metadata, "duration", time.Since(start))
	return writeOutput(cfg.General.Output, contents)
}

// convertDocument parses the configured CSDL document and converts it with
// the configured settings.
func convertDocument(cfg *config.Config) (*openapi3.T, error) {
	if cfg.General.Metadata == "" {
		return nil, fmt.Errorf("must provide general.metadata")
	}
	model, err := parser.ParseCSDL(cfg.General.Metadata)
	if err != nil {
		return nil, err
	}
	settings := openapi.NewSettings()
	if err := settings.Apply(cfg.Settings); err != nil {
		return nil, err
	}
	return openapi.Convert(model, settings)
}

// encodeDocument serializes the document as indented JSON or as YAML.
func encodeDocument(document *openapi3.T, format string) ([]byte, error) {
	switch format {
	case "", "json":
		contents, err := json.MarshalIndent(document, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(contents, '\n'), nil
	case "yaml":
		return yaml.Marshal(document)
	default:
		return nil, fmt.Errorf("unknown output format %q, expected json or yaml", format)
	}
}

func writeOutput(output string, contents []byte) error {
	if output == "" {
		_, err := os.Stdout.Write(contents)
		return err
	}
	return os.WriteFile(output, contents, 0644)
}
