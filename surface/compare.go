package surface

import "strings"

// Compare is a strict total order over heterogeneous entities, used for
// stable report ordering and as the merge key when correlating two
// independently enumerated trees. The provider gives no cross-run-stable
// enumeration order, so every ordering decision in the tool funnels through
// here.
//
// Rules, first non-zero wins: nil sorts before any entity; then kind rank;
// then, for types, name and generic arity; for methods, name, type-parameter
// count, parameter count; finally the full display name decides.
func Compare(a, b Entity) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if ka, kb := a.Kind(), b.Kind(); ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}

	if a.Kind().IsType() {
		if c := strings.Compare(a.Name(), b.Name()); c != 0 {
			return c
		}
		if c := cmpInt(a.GenericArity(), b.GenericArity()); c != 0 {
			return c
		}
	}

	if a.Kind() == KindMethod {
		if c := strings.Compare(a.Name(), b.Name()); c != 0 {
			return c
		}
		if c := cmpInt(a.TypeParamCount(), b.TypeParamCount()); c != 0 {
			return c
		}
		if c := cmpInt(a.ParamCount(), b.ParamCount()); c != 0 {
			return c
		}
	}

	return strings.Compare(a.DisplayName(), b.DisplayName())
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
