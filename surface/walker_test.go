package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binsight/binsight/errors"
)

func walkNames(t *testing.T, asm *Node) []string {
	t.Helper()
	var names []string
	err := Walk(asm, func(e Entity) error {
		names = append(names, e.Name())
		return nil
	})
	require.NoError(t, err)
	return names
}

func TestWalkVisitsTypesThenMembers(t *testing.T) {
	asm := NewAssembly("Lib")
	ns := asm.Namespace("Lib")
	typ := ns.Type(KindClass, "Widget", Public)
	typ.Member(KindMethod, "Render", Public)
	typ.Member(KindProperty, "Size", Public)

	names := walkNames(t, asm)
	assert.Equal(t, []string{"Widget", "Render", "Size"}, names)
}

func TestWalkSkipsInvisibleSubtrees(t *testing.T) {
	asm := NewAssembly("Lib")
	ns := asm.Namespace("Lib")

	hidden := ns.Type(KindClass, "Internal", Internal)
	hidden.Member(KindMethod, "PublicInsideHidden", Public)

	visible := ns.Type(KindClass, "Widget", Public)
	visible.Member(KindMethod, "Render", Public)
	visible.Member(KindMethod, "helper", Private)
	visible.Member(KindField, "state", Internal)
	visible.Member(KindProperty, "Size", Protected)
	visible.Member(KindEvent, "Changed", ProtectedOrInternal)
	visible.Member(KindMethod, "narrow", ProtectedAndInternal)

	names := walkNames(t, asm)
	assert.NotContains(t, names, "Internal")
	assert.NotContains(t, names, "PublicInsideHidden")
	assert.NotContains(t, names, "helper")
	assert.NotContains(t, names, "state")
	assert.NotContains(t, names, "narrow")
	assert.Contains(t, names, "Render")
	assert.Contains(t, names, "Size")
	assert.Contains(t, names, "Changed")
}

func TestWalkSkipsAccessors(t *testing.T) {
	asm := NewAssembly("Lib")
	typ := asm.Namespace("Lib").Type(KindClass, "Widget", Public)
	typ.Member(KindProperty, "Size", Public)
	typ.Member(KindMethod, "get_Size", Public).AsAccessor()
	typ.Member(KindMethod, "set_Size", Public).AsAccessor()
	typ.Member(KindEvent, "Changed", Public)
	typ.Member(KindMethod, "add_Changed", Public).AsAccessor()
	typ.Member(KindMethod, "remove_Changed", Public).AsAccessor()

	names := walkNames(t, asm)
	assert.Equal(t, []string{"Widget", "Size", "Changed"}, names)
}

func TestWalkDoesNotDescendIntoDelegates(t *testing.T) {
	asm := NewAssembly("Lib")
	ns := asm.Namespace("Lib")
	del := ns.Type(KindDelegate, "Callback", Public)
	del.Member(KindMethod, "Invoke", Public)
	del.Member(KindMethod, "BeginInvoke", Public)

	names := walkNames(t, asm)
	assert.Equal(t, []string{"Callback"}, names)
}

func TestWalkVisitsNestedTypes(t *testing.T) {
	asm := NewAssembly("Lib")
	typ := asm.Namespace("Lib").Type(KindClass, "Outer", Public)
	nested := typ.Type(KindClass, "Inner", Public)
	nested.Member(KindMethod, "Poke", Public)
	typ.Type(KindClass, "Secret", Private).Member(KindMethod, "Hidden", Public)

	names := walkNames(t, asm)
	assert.Equal(t, []string{"Outer", "Inner", "Poke"}, names)
}

func TestWalkOrderIsDeterministic(t *testing.T) {
	build := func(reversed bool) *Node {
		asm := NewAssembly("Lib")
		ns := asm.Namespace("Lib")
		typeNames := []string{"Alpha", "Beta", "Gamma"}
		if reversed {
			typeNames = []string{"Gamma", "Beta", "Alpha"}
		}
		for _, name := range typeNames {
			ns.Type(KindClass, name, Public)
		}
		return asm
	}

	// Declaration order differs; visit order must not.
	assert.Equal(t, walkNames(t, build(false)), walkNames(t, build(true)))
}

func TestWalkPropagatesVisitorError(t *testing.T) {
	asm := NewAssembly("Lib")
	asm.Namespace("Lib").Type(KindClass, "Widget", Public)

	sentinel := errors.New("stop")
	err := Walk(asm, func(Entity) error { return sentinel })
	assert.True(t, errors.Is(err, sentinel))
}
