package surface

import (
	"fmt"
	"strings"
)

// Node is an in-memory Entity used by tests, fixtures, and the JSON snapshot
// provider. Builder methods return the created child so graphs read as
// declarations:
//
//	asm := surface.NewAssembly("Widgets")
//	ns := asm.Namespace("Widgets.Core")
//	t := ns.Type(surface.KindClass, "Button", surface.Public)
//	t.Member(surface.KindMethod, "Click", surface.Public).WithParams(0, 1)
type Node struct {
	kind     Kind
	name     string
	vis      Visibility
	parent   *Node
	children []Entity

	attrs        []SupportAttr
	genericArity int
	typeParams   int
	params       int
	accessor     bool

	docID   string
	display string
	syntax  string

	canAnnotate bool
	annotated   bool
}

// NewAssembly creates an assembly root node.
func NewAssembly(name string) *Node {
	return &Node{kind: KindAssembly, name: name, vis: Public}
}

// Namespace adds (or returns an existing) child namespace. Pass "" for the
// global namespace.
func (n *Node) Namespace(name string) *Node {
	for _, c := range n.children {
		if cn, ok := c.(*Node); ok && cn.kind == KindNamespace && cn.name == name {
			return cn
		}
	}
	ns := &Node{kind: KindNamespace, name: name, vis: Public, parent: n}
	n.children = append(n.children, ns)
	return ns
}

// Type adds a type declaration under a namespace or, for nested types,
// under another type.
func (n *Node) Type(kind Kind, name string, vis Visibility) *Node {
	t := &Node{kind: kind, name: name, vis: vis, parent: n}
	n.children = append(n.children, t)
	return t
}

// Member adds a member declaration under a type.
func (n *Node) Member(kind Kind, name string, vis Visibility) *Node {
	m := &Node{kind: kind, name: name, vis: vis, parent: n}
	n.children = append(n.children, m)
	return m
}

// WithAttrs attaches declared platform-support attributes.
func (n *Node) WithAttrs(attrs ...SupportAttr) *Node {
	n.attrs = append(n.attrs, attrs...)
	return n
}

// WithArity sets a type's generic parameter count.
func (n *Node) WithArity(arity int) *Node {
	n.genericArity = arity
	return n
}

// WithParams sets a method's type-parameter and parameter counts.
func (n *Node) WithParams(typeParams, params int) *Node {
	n.typeParams = typeParams
	n.params = params
	return n
}

// AsAccessor marks a compiler-synthesized accessor member.
func (n *Node) AsAccessor() *Node {
	n.accessor = true
	return n
}

// WithSyntax sets the rendered declaration text.
func (n *Node) WithSyntax(s string) *Node {
	n.syntax = s
	return n
}

// WithDocID overrides the synthesized canonical signature.
func (n *Node) WithDocID(id string) *Node {
	n.docID = id
	return n
}

// WithNullability sets the resolved nullable-annotation facts.
func (n *Node) WithNullability(canAnnotate, annotated bool) *Node {
	n.canAnnotate = canAnnotate
	n.annotated = annotated
	return n
}

func (n *Node) Kind() Kind                  { return n.kind }
func (n *Node) Name() string                { return n.name }
func (n *Node) Visibility() Visibility      { return n.vis }
func (n *Node) SupportAttrs() []SupportAttr { return n.attrs }
func (n *Node) GenericArity() int           { return n.genericArity }
func (n *Node) TypeParamCount() int         { return n.typeParams }
func (n *Node) ParamCount() int             { return n.params }
func (n *Node) IsAccessor() bool            { return n.accessor }
func (n *Node) Syntax() string              { return n.syntax }
func (n *Node) Children() []Entity          { return n.children }

func (n *Node) Parent() Entity {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) Nullability() (bool, bool) { return n.canAnnotate, n.annotated }

// DisplayName is the fully qualified human-readable reference, with generic
// arity rendered as a backtick suffix.
func (n *Node) DisplayName() string {
	if n.display != "" {
		return n.display
	}
	name := n.qualifiedName()
	if n.genericArity > 0 {
		name = fmt.Sprintf("%s`%d", name, n.genericArity)
	}
	return name
}

// DocID synthesizes a doc-comment-style canonical signature unless one was
// set explicitly. The in-memory builder tracks parameter counts, not types,
// so method signatures encode counts positionally.
func (n *Node) DocID() string {
	if n.docID != "" {
		return n.docID
	}
	switch n.kind {
	case KindAssembly:
		return "A:" + n.name
	case KindNamespace:
		if n.name == "" {
			return ""
		}
		return "N:" + n.name
	case KindInterface, KindDelegate, KindEnum, KindStruct, KindClass:
		id := "T:" + n.qualifiedName()
		if n.genericArity > 0 {
			id = fmt.Sprintf("%s`%d", id, n.genericArity)
		}
		return id
	case KindConstructor:
		return fmt.Sprintf("M:%s.#ctor(%d)", n.parent.DisplayName(), n.params)
	case KindDestructor:
		return "M:" + n.parent.DisplayName() + ".Finalize"
	case KindMethod, KindOperator:
		id := "M:" + n.qualifiedName()
		if n.typeParams > 0 {
			id = fmt.Sprintf("%s``%d", id, n.typeParams)
		}
		if n.params > 0 {
			id = fmt.Sprintf("%s(%d)", id, n.params)
		}
		return id
	case KindField, KindConstant, KindEnumMember:
		return "F:" + n.qualifiedName()
	case KindProperty:
		return "P:" + n.qualifiedName()
	case KindEvent:
		return "E:" + n.qualifiedName()
	}
	return ""
}

// qualifiedName joins the ancestor chain with dots, skipping the assembly
// and the global namespace.
func (n *Node) qualifiedName() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.parent {
		if cur.kind == KindAssembly || (cur.kind == KindNamespace && cur.name == "") {
			continue
		}
		parts = append(parts, cur.name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}
