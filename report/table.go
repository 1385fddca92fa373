// Package report builds the binsight tabular reports: platform
// compatibility, nullable-annotation stats, and cross-snapshot syntax
// comparison.
//
// Generators return an in-memory Table; nothing touches the filesystem
// until a whole report exists, so a failed run never leaves a partial file.
package report

import (
	"encoding/csv"
	"os"

	"github.com/pterm/pterm"

	"github.com/binsight/binsight/errors"
)

// Table is a fully generated report: a header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// WriteCSV writes the table to path. The file is created only here, after
// generation has already succeeded.
func (t *Table) WriteCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(t.Header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return errors.Wrap(err, "failed to write row")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "failed to flush csv")
}

// View renders the table interactively on the terminal. Used when no
// output path was given.
func (t *Table) View() error {
	data := make(pterm.TableData, 0, len(t.Rows)+1)
	data = append(data, t.Header)
	data = append(data, t.Rows...)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
