package utilities

import (
	"strings"
	"testing"

	"github.com/alexanderramin/tailquest/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SimpleRules(t *testing.T) {
	sh, err := Parse([]byte(`
.p-4 { padding: 1rem; }
.border-dashed { border-style: dashed; border-width: 1px  2px; }
`))
	require.NoError(t, err)

	decls, ok := sh.Lookup("p-4")
	require.True(t, ok)
	assert.Equal(t, []Declaration{{Property: "padding", Value: "1rem"}}, decls)

	decls, ok = sh.Lookup("border-dashed")
	require.True(t, ok)
	assert.Equal(t, "border-width: 1px 2px", decls[1].String())
	assert.Equal(t, []string{"p-4", "border-dashed"}, sh.Classes())
}

func TestParse_SkipsComplexSelectorsAndAtRules(t *testing.T) {
	sh, err := Parse([]byte(`
@media (min-width: 640px) { .sm-p-4 { padding: 1rem; } }
div.box { color: red; }
.a .b { color: blue; }
.m-2 { margin: 0.5rem; }
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"m-2"}, sh.Classes())
	assert.False(t, sh.Has("sm-p-4"))
}

func TestResolve_LaterClassWins(t *testing.T) {
	sh, err := Default()
	require.NoError(t, err)

	decls, unknown := sh.Resolve("p-2 text-white p-4 sparkle")
	assert.Equal(t, []string{"sparkle"}, unknown)
	require.Len(t, decls, 2)
	assert.Equal(t, Declaration{Property: "padding", Value: "1rem"}, decls[0])
	assert.Equal(t, "color", decls[1].Property)
}

func TestDefault_SpacingScale(t *testing.T) {
	sh, err := Default()
	require.NoError(t, err)

	decls, ok := sh.Lookup("px-4")
	require.True(t, ok)
	assert.Equal(t, []Declaration{
		{Property: "padding-left", Value: "1rem"},
		{Property: "padding-right", Value: "1rem"},
	}, decls)

	decls, ok = sh.Lookup("mt-4")
	require.True(t, ok)
	assert.Equal(t, "margin-top", decls[0].Property)
}

func TestDefault_CoversCatalogClasses(t *testing.T) {
	sh, err := Default()
	require.NoError(t, err)
	cat, err := catalog.Default()
	require.NoError(t, err)

	for _, topic := range cat.Topics() {
		for _, ch := range topic.Challenges {
			for _, class := range strings.Fields(ch.TargetClasses()) {
				assert.True(t, sh.Has(class), "%s / %s: class %q not defined", topic.Name, ch.Title, class)
			}
		}
	}
}
