package report

import (
	"sort"

	"github.com/google/uuid"

	"github.com/binsight/binsight/logger"
	"github.com/binsight/binsight/surface"
)

// Syntax generates the syntax-comparison report between two independently
// compiled snapshots of the same API surface. APIs are matched by identity
// key; a row is emitted for every key present on both sides whose rendered
// declaration text differs. Byte-identical declarations are omitted.
func Syntax(ref, impl []surface.Entity) (*Table, error) {
	logger.Debugw("generating syntax report",
		"run_id", uuid.NewString(),
		"ref_assemblies", len(ref),
		"impl_assemblies", len(impl))

	refIndex, err := indexByKey(ref)
	if err != nil {
		return nil, err
	}
	implIndex, err := indexByKey(impl)
	if err != nil {
		return nil, err
	}

	type pair struct {
		key       surface.Key
		ref, impl surface.Entity
	}
	var diffs []pair
	for key, re := range refIndex {
		ie, ok := implIndex[key]
		if !ok {
			continue
		}
		if re.Syntax() == ie.Syntax() {
			continue
		}
		diffs = append(diffs, pair{key: key, ref: re, impl: ie})
	}

	// Map iteration order is random; the comparator keeps runs reproducible.
	sort.Slice(diffs, func(i, j int) bool {
		if c := surface.Compare(diffs[i].ref, diffs[j].ref); c != 0 {
			return c < 0
		}
		return diffs[i].key.String() < diffs[j].key.String()
	})

	t := &Table{
		Header: []string{"Guid", "Assembly", "Namespace", "Type", "Member", "SyntaxRef", "SyntaxImpl"},
	}
	for _, d := range diffs {
		asm, ns, typ, member := rowContext(d.ref)
		t.Rows = append(t.Rows, []string{
			d.key.String(), asm, ns, typ, member, d.ref.Syntax(), d.impl.Syntax(),
		})
	}
	return t, nil
}

// indexByKey walks each assembly and maps every keyed entity to its
// identity. Entities without a documentable signature are skipped.
func indexByKey(assemblies []surface.Entity) (map[surface.Key]surface.Entity, error) {
	index := make(map[surface.Key]surface.Entity)
	for _, asm := range assemblies {
		err := surface.Walk(asm, func(e surface.Entity) error {
			key := surface.KeyOf(e)
			if key.IsZero() {
				return nil
			}
			index[key] = e
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return index, nil
}
