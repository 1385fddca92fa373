package surface

import "sort"

// Visitor receives each visited entity in traversal order. A non-nil error
// aborts the walk.
type Visitor func(Entity) error

// Walk traverses an assembly's externally visible API surface depth-first:
// namespaces are descended to enumerate top-level types, then each type's
// declared members and nested types. The visitor sees types and members
// only, in deterministic order (siblings sorted by Compare).
//
// Filtering: an entity is visited only when it and every enclosing type are
// visible outside the assembly; invisible subtrees are pruned whole.
// Compiler-synthesized accessors are skipped; they duplicate the owning
// property or event and must not be double-counted. Delegate types are
// visited but never descended into.
//
// The traversal keeps an explicit stack rather than recursing: nested-type
// graphs can be arbitrarily deep and the stack keeps the walk
// allocation-predictable.
func Walk(assembly Entity, visit Visitor) error {
	stack := []Entity{assembly}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case e.Kind() == KindAssembly || e.Kind() == KindNamespace:
			// Containers are not part of the reported surface; descend.
			stack = pushSorted(stack, e.Children())

		case e.Kind().IsType():
			if !e.Visibility().VisibleOutside() {
				continue
			}
			if err := visit(e); err != nil {
				return err
			}
			if e.Kind() == KindDelegate {
				continue
			}
			stack = pushSorted(stack, e.Children())

		case e.Kind().IsMember():
			if !e.Visibility().VisibleOutside() || e.IsAccessor() {
				continue
			}
			if err := visit(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// pushSorted pushes children in reverse sorted order so the stack pops them
// ascending.
func pushSorted(stack []Entity, children []Entity) []Entity {
	sorted := make([]Entity, len(children))
	copy(sorted, children)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i], sorted[j]) < 0
	})
	for i := len(sorted) - 1; i >= 0; i-- {
		stack = append(stack, sorted[i])
	}
	return stack
}
