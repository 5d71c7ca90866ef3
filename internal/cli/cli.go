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

// Package cli implements the odata2openapi command line tool.
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/odata2openapi/odata2openapi/internal/config"
)

var cmdRoot = newCommand(
	"odata2openapi",
	"odata2openapi is a tool for converting OData service descriptions into OpenAPI documents.",
	`
odata2openapi reads the CSDL $metadata document that describes an OData
service and produces an equivalent OpenAPI 3 description of the same
service.
`,
	nil, // nil parent can only be used with the root command.
	nil,
).
	addFlagString(&flagMetadata, "metadata", "the path of the CSDL document to convert").
	addFlagString(&flagOutput, "output", "the path of the file to write, defaults to standard output").
	addFlagString(&flagFormat, "format", "the output serialization, json or yaml").
	addFlagBool(&flagVerbose, "verbose", false, "enable debug logging").
	addFlagFunc("set", "conversion settings as key=value pairs", func(opt string) error {
		components := strings.SplitN(opt, "=", 2)
		if len(components) != 2 {
			return fmt.Errorf("invalid conversion setting, must be in key=value format (%s)", opt)
		}
		settingOpts[components[0]] = components[1]
		return nil
	})

// Run is the entry point for the odata2openapi logic. It expects args to be
// the command line arguments, minus the program name.
func Run(args []string) error {
	if len(args) < 1 {
		cmdRoot.printUsage()
		return fmt.Errorf("no command given")
	}
	if args[0] == "help" {
		return help(args[1:])
	}
	cmd, found, cmdArgs := cmdRoot.lookup(args)
	if !found {
		return notFoundError(cmd, args, cmdArgs, fmt.Sprintf("Could not find command 'odata2openapi %s'", strings.Join(args, " ")))
	}
	cmdLine, err := cmd.parseCmdLine(cmdArgs)
	if err != nil {
		return err
	}
	if cmdLine.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	return runCommand(cmd, cmdLine)
}

func notFoundError(bestMatch *command, allArgs []string, unusedArgs []string, msg string) error {
	validHelp := "odata2openapi help"
	if bestMatch != cmdRoot {
		validHelp += " " + strings.Join(allArgs[0:len(allArgs)-len(unusedArgs)], " ")
	}
	return fmt.Errorf(
		"%s. For help, run '%s'",
		msg,
		validHelp)
}

// runCommand merges the project configuration, the environment, and the
// command line, then executes the command's action.
func runCommand(cmd *command, cmdLine *CommandLine) error {
	cfg, err := config.Load(cmdLine.Metadata, cmdLine.Output, cmdLine.Format, cmdLine.Settings)
	if err != nil {
		return err
	}
	return cmd.run(cfg, cmdLine)
}
