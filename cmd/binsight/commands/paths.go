package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/binsight/binsight/errors"
	"github.com/binsight/binsight/report"
	"github.com/binsight/binsight/surface"
)

// expandInputs turns CLI path arguments into a sorted list of snapshot
// files. Directories are expanded non-recursively. Every bad argument is
// reported to stderr individually before the command aborts; no analysis
// runs and no output is written.
func expandInputs(args []string) ([]string, error) {
	return expandInputsTo(os.Stderr, args)
}

func expandInputsTo(w io.Writer, args []string) ([]string, error) {
	var files []string
	var badArgs error
	bad := 0
	complain := func(format string, a ...interface{}) {
		e := errors.Newf(format, a...)
		fmt.Fprintln(w, e)
		badArgs = errors.CombineErrors(badArgs, e)
		bad++
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			complain("path does not exist: %s", arg)
			continue
		}
		switch {
		case info.IsDir():
			entries, err := os.ReadDir(arg)
			if err != nil {
				complain("cannot read directory %s: %v", arg, err)
				continue
			}
			found := false
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), surface.SnapshotExt) {
					files = append(files, filepath.Join(arg, entry.Name()))
					found = true
				}
			}
			if !found {
				complain("no %s snapshots in directory: %s", surface.SnapshotExt, arg)
			}
		case strings.HasSuffix(arg, surface.SnapshotExt):
			files = append(files, arg)
		default:
			complain("not a snapshot file or directory: %s", arg)
		}
	}

	if bad > 0 {
		// The summary is the user-facing message; the per-argument errors
		// already printed ride along for verbose rendering.
		return nil, errors.CombineErrors(
			errors.NewInvalidRequestError("%d invalid argument(s)", bad), badArgs)
	}
	sort.Strings(files)
	return files, nil
}

// loadAssemblies expands the arguments and loads every snapshot.
func loadAssemblies(args []string) ([]surface.Entity, error) {
	files, err := expandInputs(args)
	if err != nil {
		return nil, err
	}
	assemblies, err := surface.JSONProvider{}.Load(files)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load symbol graphs")
	}
	return assemblies, nil
}

// emit writes the table to outputPath, or renders the interactive viewer
// when no path was given. The viewer needs a terminal; refusing early keeps
// piped runs from producing garbage instead of a report.
func emit(t *report.Table, outputPath string) error {
	if outputPath == "" {
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			return errors.WithHint(
				errors.New("no output path and no terminal for the viewer"),
				"pass -o <file.csv> when piping")
		}
		return t.View()
	}
	if err := t.WriteCSV(outputPath); err != nil {
		return err
	}
	pterm.Success.Printf("Wrote %d rows to %s\n", len(t.Rows), outputPath)
	return nil
}
