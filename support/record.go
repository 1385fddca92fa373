// Package support classifies declared platform-support attributes into
// allow-list / deny-list records and renders merged version ranges.
package support

import (
	"sort"

	"github.com/binsight/binsight/platform"
	"github.com/binsight/binsight/surface"
)

// Kind classifies a record's baseline semantics.
type Kind int

const (
	// AllowList: supported only on the named platform/version combinations.
	AllowList Kind = iota
	// DenyList: supported everywhere except the named combinations.
	DenyList
	// Malformed: mixed baselines, ambiguous intent. Not fatal; surfaced
	// as "?" and analysis continues.
	Malformed
)

func (k Kind) String() string {
	switch k {
	case AllowList:
		return "platform-specific"
	case DenyList:
		return "platform-restricted"
	}
	return "?"
}

// Record is the parsed platform-support declaration of one entity. It is
// built from the entity's own attributes only, never merged across entities.
type Record struct {
	Supported   []platform.Platform
	Unsupported []platform.Platform
	Obsoleted   []platform.Platform
	Kind        Kind
}

// Build parses an entity's declared support attributes into a Record.
// Returns nil when the entity declares none.
func Build(attrs []surface.SupportAttr) *Record {
	if len(attrs) == 0 {
		return nil
	}
	r := &Record{}
	for _, a := range attrs {
		p := platform.Parse(a.Platform)
		switch a.Kind {
		case surface.SupportsOS:
			r.Supported = append(r.Supported, p)
		case surface.UnsupportedOS:
			r.Unsupported = append(r.Unsupported, p)
		case surface.ObsoletedOS:
			r.Obsoleted = append(r.Obsoleted, p)
		}
	}
	r.Kind = classify(r.Supported, r.Unsupported)
	return r
}

// classify inspects, per platform name, the earliest declared version across
// both sets. Every baseline in the supported set means allow-list; every
// baseline in the unsupported set means deny-list. Anything mixed is
// malformed, as is a name whose earliest entry sits in both sets at the
// same version.
func classify(supported, unsupported []platform.Platform) Kind {
	minByName := func(ps []platform.Platform) map[string]platform.Version {
		m := make(map[string]platform.Version)
		for _, p := range ps {
			if cur, ok := m[p.Name]; !ok || p.Version.Compare(cur) < 0 {
				m[p.Name] = p.Version
			}
		}
		return m
	}
	minSup := minByName(supported)
	minUnsup := minByName(unsupported)

	sawAllow, sawDeny := false, false
	for name := range union(minSup, minUnsup) {
		sup, hasSup := minSup[name]
		unsup, hasUnsup := minUnsup[name]
		switch {
		case hasSup && hasUnsup:
			switch sup.Compare(unsup) {
			case -1:
				sawAllow = true
			case 1:
				sawDeny = true
			default:
				return Malformed
			}
		case hasSup:
			sawAllow = true
		case hasUnsup:
			sawDeny = true
		}
	}

	switch {
	case sawAllow && sawDeny:
		return Malformed
	case sawAllow:
		return AllowList
	default:
		// Only obsoletions declared: nothing is excluded, treat as
		// deny-list so unmentioned platforms stay unrestricted.
		return DenyList
	}
}

func union(a, b map[string]platform.Version) map[string]struct{} {
	names := make(map[string]struct{}, len(a)+len(b))
	for n := range a {
		names[n] = struct{}{}
	}
	for n := range b {
		names[n] = struct{}{}
	}
	return names
}

// PlatformNames returns every platform name the record mentions, sorted.
func (r *Record) PlatformNames() []string {
	seen := make(map[string]struct{})
	for _, set := range [][]platform.Platform{r.Supported, r.Unsupported, r.Obsoleted} {
		for _, p := range set {
			seen[p.Name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
