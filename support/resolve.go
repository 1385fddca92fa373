package support

import "github.com/binsight/binsight/surface"

// Resolve finds the platform-support record governing an entity.
//
// It first classifies the entity's own attributes. When the entity declares
// none and allowImplicit is set, it walks the containment chain upward
// (member, then enclosing type, then assembly; namespace hops carry no
// attributes) until a declaration is found or the root is reached. isImplicit
// reports whether the record came from an enclosing scope rather than the
// entity itself.
func Resolve(e surface.Entity, allowImplicit bool) (rec *Record, isImplicit bool) {
	implicit := false
	for cur := e; cur != nil; cur = cur.Parent() {
		if r := Build(cur.SupportAttrs()); r != nil {
			return r, implicit
		}
		if !allowImplicit {
			return nil, false
		}
		implicit = true
	}
	return nil, false
}
