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
	"log/slog"
	"time"

	"github.com/odata2openapi/odata2openapi/internal/config"
	"github.com/odata2openapi/odata2openapi/internal/docs"
)

func init() {
	newCommand(
		"odata2openapi docs",
		"Renders a Markdown reference for the converted document.",
		`
Reads the CSDL document named by -metadata, converts it, and renders a
Markdown API reference for the result, written to the file named by -output,
or to standard output when no output is configured.
`,
		cmdRoot,
		renderDocs,
	)
}

// renderDocs implements the 'docs' command.
func renderDocs(cfg *config.Config, _ *CommandLine) error {
	start := time.Now()
	document, err := convertDocument(cfg)
	if err != nil {
		return err
	}
	contents, err := docs.Render(document)
	if err != nil {
		return err
	}
	slog.Debug("rendered reference", "metadata", cfg.General.Metadata, "duration", time.Since(start))
	return writeOutput(cfg.General.Output, contents)
}
