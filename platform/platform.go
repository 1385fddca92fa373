// Package platform models version-tagged operating system platforms as they
// appear in support attributes, e.g. "windows10.0.19041" or "linux".
//
// A token is split into a name and a version by peeling off the maximal
// trailing run of digits and dots. Parsing never fails: a token with no
// trailing version yields version 0.0.0.0.
package platform

import "strings"

// ZeroVersionText is the canonical rendering of the implicit zero version.
const ZeroVersionText = "0.0.0.0"

// Version is a dotted numeric version. The original text is preserved so
// ranges render exactly as declared ("10.0" stays "10.0", never "10.0.0.0").
type Version struct {
	segments []uint64
	text     string
}

// ZeroVersion returns the implicit baseline version 0.0.0.0.
func ZeroVersion() Version {
	return Version{segments: []uint64{0, 0, 0, 0}, text: ZeroVersionText}
}

// ParseVersion parses a dotted numeric version string. The empty string
// yields the zero version. Non-numeric garbage never reaches this function;
// Parse only hands it digits and dots.
func ParseVersion(text string) Version {
	if text == "" {
		return ZeroVersion()
	}
	parts := strings.Split(text, ".")
	segs := make([]uint64, 0, len(parts))
	for _, p := range parts {
		var n uint64
		for _, c := range p {
			if c < '0' || c > '9' {
				continue
			}
			n = n*10 + uint64(c-'0')
		}
		segs = append(segs, n)
	}
	return Version{segments: segs, text: text}
}

// String returns the version exactly as it was declared.
func (v Version) String() string { return v.text }

// IsZero reports whether every segment is zero. Both "0.0.0.0" and a bare
// "0" count: an explicit event at version zero suppresses the synthetic
// baseline regardless of how many zeros were written.
func (v Version) IsZero() bool {
	for _, s := range v.segments {
		if s != 0 {
			return false
		}
	}
	return true
}

// Compare orders versions segment-wise, treating missing trailing segments
// as zero, so "10.0" == "10.0.0.0" for ordering purposes.
func (v Version) Compare(o Version) int {
	n := len(v.segments)
	if len(o.segments) > n {
		n = len(o.segments)
	}
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(v.segments) {
			a = v.segments[i]
		}
		if i < len(o.segments) {
			b = o.segments[i]
		}
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Platform is an immutable (name, version) pair.
type Platform struct {
	Name    string
	Version Version
}

// Parse splits a raw platform token into name and version. The maximal
// trailing run of digits and '.' becomes the version; everything before it
// is the name. "windows" parses as {windows, 0.0.0.0}; "ios14.2" as
// {ios, 14.2}.
func Parse(token string) Platform {
	i := len(token)
	for i > 0 {
		c := token[i-1]
		if (c >= '0' && c <= '9') || c == '.' {
			i--
			continue
		}
		break
	}
	return Platform{
		Name:    token[:i],
		Version: ParseVersion(token[i:]),
	}
}

// Compare orders platforms by name (ordinal), then by version.
func (p Platform) Compare(o Platform) int {
	if p.Name != o.Name {
		if p.Name < o.Name {
			return -1
		}
		return 1
	}
	return p.Version.Compare(o.Version)
}

// Equal reports structural equality: exact name and exact version text.
// "10.0" and "10.0.0.0" compare equal for ordering but are not Equal.
func (p Platform) Equal(o Platform) bool {
	return p.Name == o.Name && p.Version.text == o.Version.text
}

func (p Platform) String() string {
	if p.Version.text == ZeroVersionText {
		return p.Name
	}
	return p.Name + p.Version.text
}
