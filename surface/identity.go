package surface

import (
	"crypto/md5"

	"github.com/google/uuid"
)

// Key is a 128-bit stable identifier for an API entity, derived from its
// canonical signature. Two entities from unrelated snapshots are the same
// API iff their signatures are textually identical; the digest preserves
// that with negligible collision risk across realistic surface sizes. Keys
// are mapping keys only, never an ordering.
type Key [16]byte

// NoKey is the sentinel for entities with no documentable signature, such
// as generic type parameters.
var NoKey Key

// globalNamespaceID stands in for the global namespace, whose canonical
// signature would otherwise be empty.
const globalNamespaceID = "N:<global namespace>"

// KeyOf computes the identity key for an entity.
func KeyOf(e Entity) Key {
	id := e.DocID()
	if id == "" {
		if e.Kind() == KindNamespace {
			id = globalNamespaceID
		} else {
			return NoKey
		}
	}
	return KeyOfSignature(id)
}

// KeyOfSignature digests a canonical signature string directly.
func KeyOfSignature(sig string) Key {
	return Key(md5.Sum([]byte(sig)))
}

// IsZero reports the sentinel key.
func (k Key) IsZero() bool { return k == NoKey }

// String renders the key in GUID form, matching the syntax-comparison
// report's Guid column.
func (k Key) String() string {
	return uuid.UUID(k).String()
}
