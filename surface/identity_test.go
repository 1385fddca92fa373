package surface

import "testing"

// buildSnapshot builds one snapshot of a small surface; calling it twice
// simulates two independently compiled binaries with no shared objects.
func buildSnapshot() *Node {
	asm := NewAssembly("Lib")
	ns := asm.Namespace("Lib.Core")
	typ := ns.Type(KindClass, "Widget", Public)
	typ.Member(KindMethod, "Render", Public).WithParams(0, 1)
	typ.Member(KindProperty, "Size", Public)
	return asm
}

func collectKeys(asm *Node) map[string]Key {
	keys := make(map[string]Key)
	_ = Walk(asm, func(e Entity) error {
		keys[e.DocID()] = KeyOf(e)
		return nil
	})
	return keys
}

func TestIdenticalSignaturesMatchAcrossSnapshots(t *testing.T) {
	a := collectKeys(buildSnapshot())
	b := collectKeys(buildSnapshot())

	if len(a) == 0 {
		t.Fatalf("no keys collected")
	}
	for sig, key := range a {
		other, ok := b[sig]
		if !ok {
			t.Fatalf("signature %q missing from second snapshot", sig)
		}
		if key != other {
			t.Errorf("key mismatch for %q", sig)
		}
	}
}

func TestDifferentSignaturesDiffer(t *testing.T) {
	keys := collectKeys(buildSnapshot())
	seen := make(map[Key]string)
	for sig, key := range keys {
		if prev, dup := seen[key]; dup {
			t.Errorf("collision between %q and %q", prev, sig)
		}
		seen[key] = sig
	}
}

// undocumented is an entity with no documentable signature, the shape a
// generic type parameter arrives in from a real provider.
type undocumented struct{ Node }

func (undocumented) DocID() string { return "" }

func TestSentinelForUndocumentable(t *testing.T) {
	var param undocumented
	param.kind = KindClass
	param.name = "T"

	if key := KeyOf(&param); !key.IsZero() {
		t.Errorf("entity without documentable signature must map to the sentinel")
	}
}

func TestGlobalNamespaceUsesFixedLiteral(t *testing.T) {
	asm := NewAssembly("Lib")
	global := asm.Namespace("")

	key := KeyOf(global)
	if key.IsZero() {
		t.Fatalf("global namespace must not be the sentinel")
	}
	if key != KeyOfSignature("N:<global namespace>") {
		t.Errorf("global namespace key must come from the fixed literal")
	}
}

func TestKeyStringIsGuid(t *testing.T) {
	key := KeyOfSignature("T:Lib.Widget")
	s := key.String()
	if len(s) != 36 {
		t.Errorf("Key.String() = %q, want GUID form", s)
	}
}
