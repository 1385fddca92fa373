package support

import (
	"sort"
	"strings"

	"github.com/binsight/binsight/platform"
)

// event is one support transition on a platform's version timeline.
type event struct {
	version   platform.Version
	supported bool
}

// timeline builds the sorted transition sequence for one platform name. A
// synthetic baseline event at version zero is prepended unless an explicit
// event already sits at version zero; its support flag defaults to
// unsupported for allow-list records and supported for deny-list records.
func (r *Record) timeline(name string) []event {
	var events []event
	explicitZero := false
	add := func(ps []platform.Platform, supported bool) {
		for _, p := range ps {
			if p.Name != name {
				continue
			}
			if p.Version.IsZero() {
				explicitZero = true
			}
			events = append(events, event{version: p.Version, supported: supported})
		}
	}
	add(r.Supported, true)
	add(r.Unsupported, false)

	if !explicitZero {
		events = append(events, event{
			version:   platform.ZeroVersion(),
			supported: r.Kind == DenyList,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		if c := events[i].version.Compare(events[j].version); c != 0 {
			return c < 0
		}
		// Same version declared both ways: the unsupported event wins the
		// earlier slot so it closes before a reopen.
		return !events[i].supported && events[j].supported
	})
	return events
}

// RenderRange renders the merged support intervals for one platform name.
//
// A single-event timeline collapses to "any" or "none". Otherwise each
// supported transition opens an interval ("[v-"), the next unsupported
// transition closes it ("v)"), and an interval still open after the last
// event is closed with "*]". A name the record never mentions goes through
// the same logic with only the synthetic baseline, so it renders "any"
// under deny-list semantics and "none" under allow-list semantics.
func (r *Record) RenderRange(name string) string {
	events := r.timeline(name)
	if len(events) == 1 {
		if events[0].supported {
			return "any"
		}
		return "none"
	}

	var b strings.Builder
	open := false
	for _, ev := range events {
		switch {
		case ev.supported && !open:
			b.WriteString("[")
			b.WriteString(ev.version.String())
			b.WriteString("-")
			open = true
		case !ev.supported && open:
			b.WriteString(ev.version.String())
			b.WriteString(")")
			open = false
		}
	}
	if open {
		b.WriteString("*]")
	}
	return b.String()
}
