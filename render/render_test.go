package render_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/locator/api"
	"github.com/lyraproj/locator/internal/testutil"
	"github.com/lyraproj/locator/render"
	"github.com/lyraproj/locator/resource"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) (*api.ResultSet, string) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, `a.txt`)
	rs := api.NewResultSet(2)
	rs.Add(resource.NewFile(filepath.Join(dir, `a.txt`)))
	rs.Add(resource.NewLiteral(`b.txt`))
	return rs, api.FileURL(filepath.Join(dir, `a.txt`))
}

func TestResources_text(t *testing.T) {
	rs, a := sample(t)
	out := bytes.NewBufferString(``)
	require.NoError(t, render.Resources(render.Text, rs, out))
	require.Equal(t, a+"\nclasspath:b.txt\n", out.String())
}

func TestResources_json(t *testing.T) {
	rs, a := sample(t)
	out := bytes.NewBufferString(``)
	require.NoError(t, render.Resources(render.JSON, rs, out))
	require.JSONEq(t,
		`[{"location":"`+a+`","kind":"file","exists":true},{"location":"classpath:b.txt","kind":"provider","exists":false}]`,
		out.String())

	out.Reset()
	require.NoError(t, render.Resources(render.JSON, api.NewResultSet(0), out))
	require.Equal(t, "[]\n", out.String())
}

func TestResources_yaml(t *testing.T) {
	rs, a := sample(t)
	out := bytes.NewBufferString(``)
	require.NoError(t, render.Resources(render.YAML, rs, out))
	require.YAMLEq(t, `
- location: `+a+`
  kind: file
  exists: true
- location: classpath:b.txt
  kind: provider
  exists: false
`, out.String())
}

func TestResources_unknown(t *testing.T) {
	err := render.Resources(render.Name(`binary`), api.NewResultSet(0), bytes.NewBufferString(``))
	re, ok := err.(issue.Reported)
	require.True(t, ok)
	require.Equal(t, issue.Code(api.UnknownRendering), re.Code())
}
