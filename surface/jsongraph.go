package surface

import (
	"encoding/json"
	"os"

	"github.com/binsight/binsight/errors"
)

// SnapshotExt is the file extension of pre-resolved symbol-graph snapshots.
const SnapshotExt = ".apigraph.json"

// JSONProvider loads symbol graphs that a metadata reader has already
// resolved and serialized. It exists so the analysis pipeline runs end to
// end without linking a binary metadata reader into this tool.
type JSONProvider struct{}

// Load reads one assembly graph per path.
func (JSONProvider) Load(paths []string) ([]Entity, error) {
	assemblies := make([]Entity, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read snapshot %s", path)
		}
		var doc assemblyDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(err, "failed to parse snapshot %s", path)
		}
		asm, err := doc.build()
		if err != nil {
			return nil, errors.Wrapf(err, "invalid snapshot %s", path)
		}
		assemblies = append(assemblies, asm)
	}
	return assemblies, nil
}

type assemblyDoc struct {
	Assembly   string         `json:"assembly"`
	Attrs      []attrDoc      `json:"attrs,omitempty"`
	Namespaces []namespaceDoc `json:"namespaces"`
}

type namespaceDoc struct {
	Name  string      `json:"name"`
	Types []entityDoc `json:"types"`
}

type entityDoc struct {
	Kind       string      `json:"kind"`
	Name       string      `json:"name"`
	Visibility string      `json:"visibility"`
	Arity      int         `json:"arity,omitempty"`
	TypeParams int         `json:"typeParams,omitempty"`
	Params     int         `json:"params,omitempty"`
	Accessor   bool        `json:"accessor,omitempty"`
	DocID      string      `json:"docId,omitempty"`
	Syntax     string      `json:"syntax,omitempty"`
	Attrs      []attrDoc   `json:"attrs,omitempty"`
	Nullable   *struct {
		Can       bool `json:"can"`
		Annotated bool `json:"annotated"`
	} `json:"nullable,omitempty"`
	Members []entityDoc `json:"members,omitempty"`
}

type attrDoc struct {
	Kind     string `json:"kind"`
	Platform string `json:"platform"`
}

var docKinds = map[string]Kind{
	"interface":   KindInterface,
	"delegate":    KindDelegate,
	"enum":        KindEnum,
	"struct":      KindStruct,
	"class":       KindClass,
	"constructor": KindConstructor,
	"destructor":  KindDestructor,
	"operator":    KindOperator,
	"method":      KindMethod,
	"field":       KindField,
	"constant":    KindConstant,
	"enumMember":  KindEnumMember,
	"property":    KindProperty,
	"event":       KindEvent,
}

var docVisibilities = map[string]Visibility{
	"":                  Public,
	"public":            Public,
	"protected":         Protected,
	"protectedInternal": ProtectedOrInternal,
	"privateProtected":  ProtectedAndInternal,
	"internal":          Internal,
	"private":           Private,
}

var docSupportKinds = map[string]SupportKind{
	"supports":       SupportsOS,
	"doesNotSupport": UnsupportedOS,
	"obsoleted":      ObsoletedOS,
}

func (d assemblyDoc) build() (*Node, error) {
	if d.Assembly == "" {
		return nil, errors.New("snapshot has no assembly name")
	}
	asm := NewAssembly(d.Assembly)
	attrs, err := buildAttrs(d.Attrs)
	if err != nil {
		return nil, err
	}
	asm.WithAttrs(attrs...)
	for _, nsDoc := range d.Namespaces {
		ns := asm.Namespace(nsDoc.Name)
		for _, td := range nsDoc.Types {
			if err := buildEntity(ns, td, true); err != nil {
				return nil, err
			}
		}
	}
	return asm, nil
}

func buildEntity(parent *Node, d entityDoc, wantType bool) error {
	kind, ok := docKinds[d.Kind]
	if !ok {
		return errors.Newf("unknown entity kind %q", d.Kind)
	}
	vis, ok := docVisibilities[d.Visibility]
	if !ok {
		return errors.Newf("unknown visibility %q on %s", d.Visibility, d.Name)
	}
	if wantType && !kind.IsType() {
		return errors.Newf("%s: expected a type at namespace level, got %s", d.Name, kind)
	}

	var n *Node
	if kind.IsType() {
		n = parent.Type(kind, d.Name, vis)
	} else {
		n = parent.Member(kind, d.Name, vis)
	}
	n.WithArity(d.Arity).WithParams(d.TypeParams, d.Params)
	if d.Accessor {
		n.AsAccessor()
	}
	if d.DocID != "" {
		n.WithDocID(d.DocID)
	}
	if d.Syntax != "" {
		n.WithSyntax(d.Syntax)
	}
	if d.Nullable != nil {
		n.WithNullability(d.Nullable.Can, d.Nullable.Annotated)
	}
	attrs, err := buildAttrs(d.Attrs)
	if err != nil {
		return errors.Wrapf(err, "on %s", d.Name)
	}
	n.WithAttrs(attrs...)

	for _, md := range d.Members {
		if err := buildEntity(n, md, false); err != nil {
			return err
		}
	}
	return nil
}

func buildAttrs(docs []attrDoc) ([]SupportAttr, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	attrs := make([]SupportAttr, 0, len(docs))
	for _, a := range docs {
		kind, ok := docSupportKinds[a.Kind]
		if !ok {
			return nil, errors.Newf("unknown support attribute kind %q", a.Kind)
		}
		attrs = append(attrs, SupportAttr{Kind: kind, Platform: a.Platform})
	}
	return attrs, nil
}
