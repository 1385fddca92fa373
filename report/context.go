package report

import "github.com/binsight/binsight/surface"

// rowContext derives the Assembly/Namespace/Type/Member cells for an entity
// from its containment chain. Nested types render as Outer.Inner in the
// Type cell.
func rowContext(e surface.Entity) (asm, ns, typ, member string) {
	if e.Kind().IsMember() {
		member = e.Name()
	}

	for cur := e; cur != nil; cur = cur.Parent() {
		switch {
		case cur.Kind().IsType():
			if typ == "" {
				typ = cur.Name()
			} else {
				typ = cur.Name() + "." + typ
			}
		case cur.Kind() == surface.KindNamespace:
			if ns == "" {
				ns = cur.Name()
			}
		case cur.Kind() == surface.KindAssembly:
			asm = cur.Name()
		}
	}
	return asm, ns, typ, member
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func oneZero(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
