package report

import (
	"sort"

	"github.com/google/uuid"

	"github.com/binsight/binsight/logger"
	"github.com/binsight/binsight/support"
	"github.com/binsight/binsight/surface"
)

// MalformedCells selects what the per-platform columns hold when a
// declaration classified as malformed is rendered.
type MalformedCells int

const (
	// MalformedEmpty leaves the platform columns blank.
	MalformedEmpty MalformedCells = iota
	// MalformedRender runs the range logic anyway.
	MalformedRender
)

// PlatformOptions configures the platform-compatibility report.
type PlatformOptions struct {
	// ImplicitLookup inherits support data from the enclosing type or
	// assembly when an entity declares none.
	ImplicitLookup bool
	MalformedCells MalformedCells
}

// platformRow holds one resolved entity before the platform column set is
// known; rendering happens once every platform name has been discovered.
type platformRow struct {
	level    string
	asm      string
	ns       string
	typ      string
	member   string
	record   *support.Record
	implicit bool
}

// Platform generates the platform-compatibility report over a set of
// assembly roots. One row per API whose support data resolves, with one
// column per platform name discovered anywhere in the run.
func Platform(assemblies []surface.Entity, opts PlatformOptions) (*Table, error) {
	logger.Debugw("generating platform report",
		"run_id", uuid.NewString(),
		"assemblies", len(assemblies),
		"implicit", opts.ImplicitLookup)

	var rows []platformRow
	names := make(map[string]struct{})

	collect := func(e surface.Entity, level string) {
		rec, implicit := support.Resolve(e, opts.ImplicitLookup)
		if rec == nil {
			return
		}
		asm, ns, typ, member := rowContext(e)
		rows = append(rows, platformRow{
			level: level, asm: asm, ns: ns, typ: typ, member: member,
			record: rec, implicit: implicit,
		})
		for _, n := range rec.PlatformNames() {
			names[n] = struct{}{}
		}
	}

	for _, asm := range assemblies {
		if rec := support.Build(asm.SupportAttrs()); rec != nil {
			collect(asm, "assembly")
		}
		err := surface.Walk(asm, func(e surface.Entity) error {
			if e.Kind().IsType() {
				collect(e, "Type")
			} else {
				collect(e, "Member")
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	platformNames := make([]string, 0, len(names))
	for n := range names {
		platformNames = append(platformNames, n)
	}
	sort.Strings(platformNames)

	t := &Table{
		Header: append([]string{"Level", "Assembly", "Namespace", "Type", "Member", "Kind", "Implicit"}, platformNames...),
	}
	for _, r := range rows {
		row := []string{r.level, r.asm, r.ns, r.typ, r.member, r.record.Kind.String(), yesNo(r.implicit)}
		for _, name := range platformNames {
			row = append(row, renderCell(r.record, name, opts.MalformedCells))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func renderCell(rec *support.Record, name string, policy MalformedCells) string {
	if rec.Kind == support.Malformed && policy == MalformedEmpty {
		return ""
	}
	return rec.RenderRange(name)
}
