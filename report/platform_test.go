package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binsight/binsight/surface"
)

func supports(token string) surface.SupportAttr {
	return surface.SupportAttr{Kind: surface.SupportsOS, Platform: token}
}

func doesNotSupport(token string) surface.SupportAttr {
	return surface.SupportAttr{Kind: surface.UnsupportedOS, Platform: token}
}

func TestPlatformReportEndToEnd(t *testing.T) {
	// One assembly exposing type T tagged supports(Windows) and
	// supports(Linux, 4.0), and member M on T with no attributes.
	asm := surface.NewAssembly("Lib")
	typ := asm.Namespace("Lib").Type(surface.KindClass, "T", surface.Public).
		WithAttrs(supports("Windows"), supports("Linux4.0"))
	typ.Member(surface.KindMethod, "M", surface.Public)

	table, err := Platform([]surface.Entity{asm}, PlatformOptions{ImplicitLookup: true})
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"Level", "Assembly", "Namespace", "Type", "Member", "Kind", "Implicit", "Linux", "Windows"},
		table.Header)
	require.Len(t, table.Rows, 2)

	assert.Equal(t,
		[]string{"Type", "Lib", "Lib", "T", "", "platform-specific", "No", "[4.0-*]", "any"},
		table.Rows[0])
	assert.Equal(t,
		[]string{"Member", "Lib", "Lib", "T", "M", "platform-specific", "Yes", "[4.0-*]", "any"},
		table.Rows[1])
}

func TestPlatformReportImplicitDisabled(t *testing.T) {
	asm := surface.NewAssembly("Lib")
	typ := asm.Namespace("Lib").Type(surface.KindClass, "T", surface.Public).
		WithAttrs(supports("Windows10.0"))
	typ.Member(surface.KindMethod, "M", surface.Public)

	table, err := Platform([]surface.Entity{asm}, PlatformOptions{ImplicitLookup: false})
	require.NoError(t, err)

	// Only the type resolves; the attribute-less member yields no row.
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Type", table.Rows[0][0])
}

func TestPlatformReportAssemblyRow(t *testing.T) {
	asm := surface.NewAssembly("Lib")
	asm.WithAttrs(doesNotSupport("browser"))
	asm.Namespace("Lib").Type(surface.KindClass, "T", surface.Public)

	table, err := Platform([]surface.Entity{asm}, PlatformOptions{ImplicitLookup: true})
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "assembly", table.Rows[0][0])
	assert.Equal(t, "platform-restricted", table.Rows[0][5])
	assert.Equal(t, "none", table.Rows[0][7]) // browser column

	// The type inherits the assembly deny-list.
	assert.Equal(t, "Type", table.Rows[1][0])
	assert.Equal(t, "Yes", table.Rows[1][6])
}

func TestPlatformReportMalformedPolicy(t *testing.T) {
	build := func() surface.Entity {
		asm := surface.NewAssembly("Lib")
		asm.Namespace("Lib").Type(surface.KindClass, "T", surface.Public).
			WithAttrs(supports("ios14.0"), doesNotSupport("ios14.0"))
		return asm
	}

	empty, err := Platform([]surface.Entity{build()}, PlatformOptions{MalformedCells: MalformedEmpty})
	require.NoError(t, err)
	require.Len(t, empty.Rows, 1)
	assert.Equal(t, "?", empty.Rows[0][5])
	assert.Equal(t, "", empty.Rows[0][7])

	rendered, err := Platform([]surface.Entity{build()}, PlatformOptions{MalformedCells: MalformedRender})
	require.NoError(t, err)
	assert.Equal(t, "?", rendered.Rows[0][5])
	assert.NotEqual(t, "", rendered.Rows[0][7])
}
