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

// CommandLine represents the arguments received from the command line.
type CommandLine struct {
	Command  []string
	Metadata string
	Output   string
	Format   string
	Settings map[string]string
	Verbose  bool
}

var (
	flagMetadata string
	flagOutput   string
	flagFormat   string
	flagVerbose  bool
	settingOpts  = map[string]string{}
)
