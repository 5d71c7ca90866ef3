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

package edm

// NewTestModel creates a model from a list of schemas, with the state built.
// Intended for tests.
func NewTestModel(schemas ...*Schema) *Model {
	for _, s := range schemas {
		for _, t := range s.EntityTypes {
			t.Namespace = s.Namespace
		}
		for _, t := range s.ComplexTypes {
			t.Namespace = s.Namespace
		}
		for _, t := range s.EnumTypes {
			t.Namespace = s.Namespace
		}
		for _, t := range s.TypeDefinitions {
			t.Namespace = s.Namespace
		}
		for _, a := range s.Actions {
			a.Namespace = s.Namespace
		}
		for _, f := range s.Functions {
			f.Namespace = s.Namespace
		}
		if s.Container != nil {
			s.Container.Namespace = s.Namespace
		}
	}
	model := &Model{Schemas: schemas}
	BuildState(model)
	return model
}
