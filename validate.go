// Copyright 2026 The ashparse Authors.

package ashparse

// Cross-constraint validation runs after matching, in a fixed order for
// deterministic first-failure reporting: mutual exclusion, then conditional
// dependencies, then required presence. The required pass reads the
// flattened result so it also sees values promoted out of plain groups.

func (g *Group) validateResult(raw, flat map[string]interface{}) error {
	if err := g.checkMutex(raw, flat); err != nil {
		return err
	}
	if err := g.checkConditional(raw, flat); err != nil {
		return err
	}
	return g.checkRequired(raw, flat)
}

// present reports whether a node appears in the flattened result. A
// recurring group is present when it was matched at least once; other
// groups are present when any descendant is.
func present(n node, flat map[string]interface{}) bool {
	switch x := n.(type) {
	case *argNode:
		_, ok := flat[x.name]
		return ok
	case *Group:
		if x.kind == Recurring {
			insts, ok := flat[x.name].([]map[string]interface{})
			return ok && len(insts) > 0
		}
		for _, c := range x.children {
			if present(c, flat) {
				return true
			}
		}
	}
	return false
}

func (g *Group) checkMutex(raw, flat map[string]interface{}) error {
	for _, c := range g.children {
		sub, ok := c.(*Group)
		if !ok {
			continue
		}
		switch sub.kind {
		case MutuallyExclusive:
			var names []string
			for _, child := range sub.children {
				if present(child, flat) {
					names = append(names, child.nodeName())
				}
			}
			if len(names) > 1 {
				return &MutuallyExclusiveArgumentsError{Names: names}
			}
			if err := sub.checkMutex(raw, flat); err != nil {
				return err
			}
		case Recurring:
			insts, _ := raw[sub.name].([]map[string]interface{})
			for _, inst := range insts {
				if err := sub.checkMutex(inst, flatten(inst)); err != nil {
					return err
				}
			}
		case Plain:
			nested, _ := raw[sub.name].(map[string]interface{})
			if err := sub.checkMutex(nested, flat); err != nil {
				return err
			}
		default: // Conditional: transparent scope
			if err := sub.checkMutex(raw, flat); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Group) checkConditional(raw, flat map[string]interface{}) error {
	for _, c := range g.children {
		sub, ok := c.(*Group)
		if !ok {
			continue
		}
		switch sub.kind {
		case Conditional:
			if len(sub.children) >= 2 {
				cond := sub.children[0]
				condThere := present(cond, flat)
				for _, dep := range sub.children[1:] {
					depThere := present(dep, flat)
					switch sub.relation {
					case FirstPresentRestRequired:
						if condThere && !depThere {
							return &ConditionalDependencyError{
								Dependent: dep.nodeName(),
								Condition: cond.nodeName(),
								Effect:    "required",
							}
						}
					case FirstAbsentRestForbidden:
						if !condThere && depThere {
							return &ConditionalDependencyError{
								Dependent: dep.nodeName(),
								Condition: cond.nodeName(),
								Effect:    "forbidden",
							}
						}
					}
				}
			}
			if err := sub.checkConditional(raw, flat); err != nil {
				return err
			}
		case Recurring:
			insts, _ := raw[sub.name].([]map[string]interface{})
			for _, inst := range insts {
				if err := sub.checkConditional(inst, flatten(inst)); err != nil {
					return err
				}
			}
		case Plain:
			nested, _ := raw[sub.name].(map[string]interface{})
			if err := sub.checkConditional(nested, flat); err != nil {
				return err
			}
		default: // MutuallyExclusive: transparent scope
			if err := sub.checkConditional(raw, flat); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Group) checkRequired(raw, flat map[string]interface{}) error {
	for _, c := range g.children {
		switch n := c.(type) {
		case *argNode:
			if n.required {
				if _, ok := flat[n.name]; !ok {
					return &MissingRequiredArgumentError{Name: n.name}
				}
			}
		case *Group:
			switch n.kind {
			case Recurring:
				insts, _ := raw[n.name].([]map[string]interface{})
				if n.required && len(insts) == 0 {
					return &MissingRequiredArgumentError{Name: n.name}
				}
				for _, inst := range insts {
					if err := n.checkRequired(inst, flatten(inst)); err != nil {
						return err
					}
				}
			case Plain:
				nested, matched := raw[n.name].(map[string]interface{})
				if n.required && !matched {
					return &MissingRequiredArgumentError{Name: n.name}
				}
				if err := n.checkRequired(nested, flat); err != nil {
					return err
				}
			default: // MutuallyExclusive, Conditional
				if n.required && !present(n, flat) {
					return &MissingRequiredArgumentError{Name: n.name}
				}
				if err := n.checkRequired(raw, flat); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
