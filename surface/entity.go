// Package surface models the public API surface of a compiled binary as a
// navigable entity graph: assemblies contain namespaces, namespaces contain
// types, types contain members and nested types.
//
// The graph itself comes from an external symbol provider; this package only
// reads it. Entities are handles: immutable for the duration of a run, never
// owned by the core.
package surface

// Kind tags the closed set of API entity kinds. The declaration order is the
// comparator's rank order and must not be reshuffled: report ordering and
// cross-snapshot matching depend on it staying fixed.
type Kind int

const (
	KindAssembly Kind = iota
	KindNamespace
	KindInterface
	KindDelegate
	KindEnum
	KindStruct
	KindClass
	KindConstructor
	KindDestructor
	KindOperator
	KindMethod
	KindField
	KindConstant
	KindEnumMember
	KindProperty
	KindEvent
)

var kindNames = map[Kind]string{
	KindAssembly:    "assembly",
	KindNamespace:   "namespace",
	KindInterface:   "interface",
	KindDelegate:    "delegate",
	KindEnum:        "enum",
	KindStruct:      "struct",
	KindClass:       "class",
	KindConstructor: "constructor",
	KindDestructor:  "destructor",
	KindOperator:    "operator",
	KindMethod:      "method",
	KindField:       "field",
	KindConstant:    "constant",
	KindEnumMember:  "enum member",
	KindProperty:    "property",
	KindEvent:       "event",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsType reports whether the kind is a type declaration.
func (k Kind) IsType() bool {
	switch k {
	case KindInterface, KindDelegate, KindEnum, KindStruct, KindClass:
		return true
	}
	return false
}

// IsMember reports whether the kind is a member declaration.
func (k Kind) IsMember() bool {
	switch k {
	case KindConstructor, KindDestructor, KindOperator, KindMethod,
		KindField, KindConstant, KindEnumMember, KindProperty, KindEvent:
		return true
	}
	return false
}

// Visibility is the declared accessibility of an entity.
type Visibility int

const (
	Private Visibility = iota
	Internal
	ProtectedAndInternal
	Protected
	ProtectedOrInternal
	Public
)

// VisibleOutside reports whether the visibility is reachable from outside
// the defining binary. Enclosing types must pass the same check for the
// entity to actually be part of the surface; the walker enforces that.
func (v Visibility) VisibleOutside() bool {
	switch v {
	case Public, Protected, ProtectedOrInternal:
		return true
	}
	return false
}

// SupportKind tags a platform-support attribute.
type SupportKind int

const (
	SupportsOS SupportKind = iota
	UnsupportedOS
	ObsoletedOS
)

// SupportAttr is one declared platform-support attribute: a kind tag plus
// the raw platform token ("windows10.0", "linux", ...).
type SupportAttr struct {
	Kind     SupportKind
	Platform string
}

// Entity is a read-only handle into the provider's symbol graph.
//
// DocID is the canonical, snapshot-independent signature string (doc-comment
// ID style: "T:Ns.Type", "M:Ns.Type.Method(Ns.Arg)"); it is empty for
// entities with no documentable identity, such as generic type parameters.
// DisplayName is the full human-readable declaration reference used as the
// comparator's final tiebreak. Syntax is the rendered declaration text
// compared across snapshots.
type Entity interface {
	Kind() Kind
	Name() string
	DisplayName() string
	DocID() string
	Syntax() string
	Visibility() Visibility

	// Parent returns the containing entity, nil for assemblies.
	Parent() Entity
	// Children returns declared children: namespaces for assemblies, types
	// and child namespaces for namespaces, members and nested types for
	// types. Order is provider-defined and not stable across runs.
	Children() []Entity

	SupportAttrs() []SupportAttr

	// GenericArity is the number of generic parameters on a type;
	// TypeParamCount and ParamCount describe methods.
	GenericArity() int
	TypeParamCount() int
	ParamCount() int

	// IsAccessor reports compiler-synthesized property/event accessors
	// (get/set/add/remove/raise), which duplicate their owner's surface.
	IsAccessor() bool

	// Nullability reports whether the entity's signature reaches any
	// reference-typed position, and whether at least one such position
	// carries explicit nullability metadata. Resolved by the provider.
	Nullability() (canAnnotate, annotated bool)
}

// Provider loads pre-resolved symbol graphs and returns their assembly
// roots. Implementations own all metadata reading; by the time Load returns
// the graph is fully resolved and read-only.
type Provider interface {
	Load(paths []string) ([]Entity, error)
}
