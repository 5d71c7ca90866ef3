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

import "fmt"

// Validate verifies the model satisfies the requirements of the converter.
// The model state must be built first.
func Validate(model *Model) error {
	if model.State == nil {
		return fmt.Errorf("model state is not built, call BuildState first")
	}
	validateType := func(ref TypeRef, elementName string) error {
		if ref.Name == "" {
			return fmt.Errorf("missing type for %q", elementName)
		}
		if ref.IsPrimitive() {
			if !KnownPrimitive(ref.Name) {
				return fmt.Errorf("unknown primitive type %q for %q", ref.Name, elementName)
			}
			return nil
		}
		if model.EntityType(ref.Name) != nil || model.ComplexType(ref.Name) != nil ||
			model.EnumType(ref.Name) != nil || model.TypeDefinition(ref.Name) != nil {
			return nil
		}
		return fmt.Errorf("unresolved type %q for %q", ref.Name, elementName)
	}
	validateEntityTarget := func(ref TypeRef, elementName string) error {
		if model.EntityType(ref.Name) == nil {
			return fmt.Errorf("navigation target %q for %q is not an entity type", ref.Name, elementName)
		}
		return nil
	}

	if err := validateUniqueNames(model); err != nil {
		return err
	}
	containers := 0
	for _, s := range model.Schemas {
		if s.Container != nil {
			containers++
		}
	}
	if containers > 1 {
		return fmt.Errorf("model declares %d entity containers, expected at most one", containers)
	}

	for _, s := range model.Schemas {
		for _, t := range s.EntityTypes {
			if t.BaseType != "" && model.EntityType(t.BaseType) == nil {
				return fmt.Errorf("unresolved base type %q for %q", t.BaseType, t.QualifiedName())
			}
			if err := validateBaseChain(model, t); err != nil {
				return err
			}
			for _, p := range t.Properties {
				if err := validateType(p.Type, t.QualifiedName()+"/"+p.Name); err != nil {
					return err
				}
			}
			for _, p := range t.NavigationProperties {
				if err := validateEntityTarget(p.Type, t.QualifiedName()+"/"+p.Name); err != nil {
					return err
				}
			}
			for _, name := range t.Key {
				p := model.PropertyOf(t, name)
				if p == nil {
					return fmt.Errorf("key property %q of %q is not declared", name, t.QualifiedName())
				}
				if p.Nullable {
					return fmt.Errorf("key property %q of %q is nullable", name, t.QualifiedName())
				}
				if p.Type.Collection || (!p.Type.IsPrimitive() && model.TypeDefinition(p.Type.Name) == nil &&
					model.EnumType(p.Type.Name) == nil) {
					return fmt.Errorf("key property %q of %q is not a primitive type", name, t.QualifiedName())
				}
			}
		}
		for _, t := range s.ComplexTypes {
			if t.BaseType != "" && model.ComplexType(t.BaseType) == nil {
				return fmt.Errorf("unresolved base type %q for %q", t.BaseType, t.QualifiedName())
			}
			for _, p := range t.Properties {
				if err := validateType(p.Type, t.QualifiedName()+"/"+p.Name); err != nil {
					return err
				}
			}
			for _, p := range t.NavigationProperties {
				if err := validateEntityTarget(p.Type, t.QualifiedName()+"/"+p.Name); err != nil {
					return err
				}
			}
		}
		for _, a := range s.Actions {
			if a.IsBound && a.BindingParameter() == nil {
				return fmt.Errorf("bound action %q has no binding parameter", a.QualifiedName())
			}
			for _, p := range a.Parameters {
				if err := validateType(p.Type, a.QualifiedName()+"/"+p.Name); err != nil {
					return err
				}
			}
			if a.ReturnType != nil {
				if err := validateType(a.ReturnType.Type, a.QualifiedName()); err != nil {
					return err
				}
			}
		}
		for _, f := range s.Functions {
			if f.IsBound && f.BindingParameter() == nil {
				return fmt.Errorf("bound function %q has no binding parameter", f.QualifiedName())
			}
			for _, p := range f.Parameters {
				if err := validateType(p.Type, f.QualifiedName()+"/"+p.Name); err != nil {
					return err
				}
			}
			if f.ReturnType == nil {
				return fmt.Errorf("function %q has no return type", f.QualifiedName())
			}
			if err := validateType(f.ReturnType.Type, f.QualifiedName()); err != nil {
				return err
			}
		}
	}
	// Containers reference types from any schema, so they are checked only
	// after every schema's types passed.
	for _, s := range model.Schemas {
		if s.Container == nil {
			continue
		}
		if err := validateContainer(model, s.Container); err != nil {
			return err
		}
	}
	return nil
}

// validateUniqueNames rejects duplicate qualified type names and duplicate
// container member names. Actions and functions may overload, so only their
// collisions with other element kinds matter.
func validateUniqueNames(model *Model) error {
	types := map[string]bool{}
	addType := func(name string) error {
		if types[name] {
			return fmt.Errorf("duplicate type name %q", name)
		}
		types[name] = true
		return nil
	}
	for _, s := range model.Schemas {
		for _, t := range s.EntityTypes {
			if err := addType(t.QualifiedName()); err != nil {
				return err
			}
		}
		for _, t := range s.ComplexTypes {
			if err := addType(t.QualifiedName()); err != nil {
				return err
			}
		}
		for _, t := range s.EnumTypes {
			if err := addType(t.QualifiedName()); err != nil {
				return err
			}
		}
		for _, t := range s.TypeDefinitions {
			if err := addType(t.QualifiedName()); err != nil {
				return err
			}
		}
		if s.Container == nil {
			continue
		}
		members := map[string]bool{}
		addMember := func(name string) error {
			if members[name] {
				return fmt.Errorf("duplicate container member %q", name)
			}
			members[name] = true
			return nil
		}
		for _, set := range s.Container.EntitySets {
			if err := addMember(set.Name); err != nil {
				return err
			}
		}
		for _, sg := range s.Container.Singletons {
			if err := addMember(sg.Name); err != nil {
				return err
			}
		}
		for _, i := range s.Container.ActionImports {
			if err := addMember(i.Name); err != nil {
				return err
			}
		}
		for _, i := range s.Container.FunctionImports {
			if err := addMember(i.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateBaseChain rejects inheritance cycles and entity types used with
// neither a declared nor an inherited key.
func validateBaseChain(model *Model, t *EntityType) error {
	seen := map[string]bool{}
	for cur := t; cur != nil; cur = model.BaseOf(cur) {
		if seen[cur.QualifiedName()] {
			return fmt.Errorf("inheritance cycle through %q", t.QualifiedName())
		}
		seen[cur.QualifiedName()] = true
	}
	if !t.Abstract && len(model.KeyProperties(t)) == 0 {
		return fmt.Errorf("entity type %q has no key", t.QualifiedName())
	}
	return nil
}

func validateContainer(model *Model, c *EntityContainer) error {
	validateBindings := func(bindings []*NavigationPropertyBinding, sourceName string) error {
		for _, b := range bindings {
			if model.State.EntitySetByName[b.Target] == nil && model.State.SingletonByName[b.Target] == nil {
				return fmt.Errorf("unresolved binding target %q for %q", b.Target, sourceName)
			}
		}
		return nil
	}
	for _, set := range c.EntitySets {
		t := model.EntityType(set.EntityType)
		if t == nil {
			return fmt.Errorf("unresolved entity type %q for entity set %q", set.EntityType, set.Name)
		}
		if len(model.KeyProperties(t)) == 0 {
			return fmt.Errorf("entity set %q uses keyless type %q", set.Name, set.EntityType)
		}
		if err := validateBindings(set.Bindings, set.Name); err != nil {
			return err
		}
	}
	for _, sg := range c.Singletons {
		if model.EntityType(sg.Type) == nil {
			return fmt.Errorf("unresolved entity type %q for singleton %q", sg.Type, sg.Name)
		}
		if err := validateBindings(sg.Bindings, sg.Name); err != nil {
			return err
		}
	}
	for _, imp := range c.ActionImports {
		overloads := model.State.ActionsByName[imp.Action]
		if len(overloads) == 0 {
			return fmt.Errorf("unresolved action %q for action import %q", imp.Action, imp.Name)
		}
		for _, a := range overloads {
			if a.IsBound {
				return fmt.Errorf("action import %q references bound action %q", imp.Name, imp.Action)
			}
		}
	}
	for _, imp := range c.FunctionImports {
		overloads := model.State.FunctionsByName[imp.Function]
		if len(overloads) == 0 {
			return fmt.Errorf("unresolved function %q for function import %q", imp.Function, imp.Name)
		}
		for _, f := range overloads {
			if f.IsBound {
				return fmt.Errorf("function import %q references bound function %q", imp.Name, imp.Function)
			}
		}
	}
	return nil
}
