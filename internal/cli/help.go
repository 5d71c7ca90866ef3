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
	"fmt"
	"slices"
	"strings"
)

// help implements the 'help' command.
// The logic in this function is heavily inspired by (and copied from) the 'go help' command in the Go tool.
// See https://github.com/golang/go/blob/go1.23.4/src/cmd/go/internal/help/help.go#L25 for reference.
func help(args []string) error {
	cmd := cmdRoot

Args:
	for i, arg := range args {
		for _, sub := range cmd.commands {
			if slices.Contains(sub.names(), arg) {
				cmd = sub
				continue Args
			}
		}

		// helpSuccess is the help command using as many args as possible that would succeed.
		helpSuccess := "odata2openapi help"
		if i > 0 {
			helpSuccess += " " + strings.Join(args[:i], " ")
		}

		return fmt.Errorf(
			"odata2openapi help %s: unknown help topic. Run '%s'",
			strings.Join(args, " "),
			helpSuccess)
	}

	cmd.printUsage()
	return nil
}
