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
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/odata2openapi/odata2openapi/internal/config"
	"github.com/pb33f/libopenapi"
)

func init() {
	newCommand(
		"odata2openapi validate",
		"Checks that a CSDL document converts into well-formed OpenAPI.",
		`
Reads the CSDL document named by -metadata, validates the entity data model,
converts it, and parses the converted document again with an independent
OpenAPI library. Prints a short summary of the converted document on success.
`,
		cmdRoot,
		validate,
	)
}

// validate implements the 'validate' command.
func validate(cfg *config.Config, _ *CommandLine) error {
	start := time.Now()
	document, err := convertDocument(cfg)
	if err != nil {
		return err
	}
	contents, err := document.MarshalJSON()
	if err != nil {
		return err
	}
	parsed, err := libopenapi.NewDocument(contents)
	if err != nil {
		return fmt.Errorf("cannot parse the converted document: %w", err)
	}
	if _, errs := parsed.BuildV3Model(); len(errs) > 0 {
		return fmt.Errorf("cannot convert document to OpenAPI V3 model: %w", errors.Join(errs...))
	}
	slog.Debug("validated document", "metadata", cfg.General.Metadata, "duration", time.Since(start))
	fmt.Printf("%s is valid: %d paths, %d schemas\n", cfg.General.Metadata, document.Paths.Len(), len(document.Components.Schemas))
	return nil
}
