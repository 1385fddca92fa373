package report

import (
	"github.com/google/uuid"

	"github.com/binsight/binsight/logger"
	"github.com/binsight/binsight/surface"
)

// NullableOptions configures the nullable-annotation stats report.
type NullableOptions struct {
	// Fx labels the framework/target the assemblies belong to; it fills
	// the first column of every row.
	Fx string
	// NumericColumns appends 1/0 duplicates of the Yes/No columns so
	// spreadsheet pivots can sum them directly.
	NumericColumns bool
}

// Nullable generates the nullable-annotation stats report: one row per
// visited API. CanBeAnnotated is Yes when any reference-typed position is
// reachable from the signature; IsAnnotated is Yes when at least one such
// position carries explicit nullability metadata.
func Nullable(assemblies []surface.Entity, opts NullableOptions) (*Table, error) {
	logger.Debugw("generating nullable report",
		"run_id", uuid.NewString(),
		"assemblies", len(assemblies),
		"fx", opts.Fx)

	header := []string{"Fx", "Assembly", "Namespace", "Type", "Member", "CanBeAnnotated", "IsAnnotated"}
	if opts.NumericColumns {
		header = append(header, "CanBeAnnotatedValue", "IsAnnotatedValue")
	}
	t := &Table{Header: header}

	for _, asm := range assemblies {
		err := surface.Walk(asm, func(e surface.Entity) error {
			canAnnotate, annotated := e.Nullability()
			a, ns, typ, member := rowContext(e)
			row := []string{opts.Fx, a, ns, typ, member, yesNo(canAnnotate), yesNo(annotated)}
			if opts.NumericColumns {
				row = append(row, oneZero(canAnnotate), oneZero(annotated))
			}
			t.Rows = append(t.Rows, row)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}
