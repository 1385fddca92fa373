package support

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

func obsoleted(token string) surface.SupportAttr {
	return surface.SupportAttr{Kind: surface.ObsoletedOS, Platform: token}
}

func TestBuildNoAttrs(t *testing.T) {
	assert.Nil(t, Build(nil))
	assert.Nil(t, Build([]surface.SupportAttr{}))
}

func TestClassification(t *testing.T) {
	cases := []struct {
		name  string
		attrs []surface.SupportAttr
		want  Kind
	}{
		{
			name:  "single supports is allow-list",
			attrs: []surface.SupportAttr{supports("windows10.0")},
			want:  AllowList,
		},
		{
			name:  "single doesNotSupport is deny-list",
			attrs: []surface.SupportAttr{doesNotSupport("windows10.0")},
			want:  DenyList,
		},
		{
			name:  "supported baseline with later unsupport stays allow-list",
			attrs: []surface.SupportAttr{supports("linux4.0"), doesNotSupport("linux6.0")},
			want:  AllowList,
		},
		{
			name:  "unsupported baseline with later support stays deny-list",
			attrs: []surface.SupportAttr{doesNotSupport("android10"), supports("android13")},
			want:  DenyList,
		},
		{
			name:  "mixed baselines across names is malformed",
			attrs: []surface.SupportAttr{supports("windows10.0"), doesNotSupport("linux4.0")},
			want:  Malformed,
		},
		{
			name:  "same earliest version on both sides is malformed",
			attrs: []surface.SupportAttr{supports("ios14.0"), doesNotSupport("ios14.0")},
			want:  Malformed,
		},
		{
			name:  "only obsoletions default to deny-list",
			attrs: []surface.SupportAttr{obsoleted("windows10.0")},
			want:  DenyList,
		},
		{
			name: "multiple names all supported-first",
			attrs: []surface.SupportAttr{
				supports("windows10.0"), supports("linux"),
				doesNotSupport("windows11.0"),
			},
			want: AllowList,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := Build(c.attrs)
			require.NotNil(t, rec)
			assert.Equal(t, c.want, rec.Kind)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "platform-specific", AllowList.String())
	assert.Equal(t, "platform-restricted", DenyList.String())
	assert.Equal(t, "?", Malformed.String())
}

func TestPlatformNames(t *testing.T) {
	rec := Build([]surface.SupportAttr{
		supports("windows10.0"),
		doesNotSupport("linux4.0"),
		obsoleted("ios14.0"),
		supports("windows11.0"),
	})
	require.NotNil(t, rec)
	assert.Equal(t, []string{"ios", "linux", "windows"}, rec.PlatformNames())
}
