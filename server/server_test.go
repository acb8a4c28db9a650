package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/lyraproj/locator/api"
	"github.com/lyraproj/locator/archive"
	"github.com/lyraproj/locator/internal/testutil"
	"github.com/lyraproj/locator/provider"
	"github.com/lyraproj/locator/render"
	"github.com/lyraproj/locator/resolver"
	"github.com/lyraproj/locator/server"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, dir, path string, query url.Values) *httptest.ResponseRecorder {
	t.Helper()
	e := server.New(resolver.New(provider.New(`p`, nil, []string{dir})))
	req := httptest.NewRequest(http.MethodGet, path+`?`+query.Encode(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestResources(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTree(t, dir, `conf/a.yaml`, `conf/b.yaml`)

	rec := get(t, dir, `/resources`, url.Values{`location`: {`conf/*.yaml`, `missing.txt`}})
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []render.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Equal(t, []render.Entry{
		{Location: api.FileURL(filepath.Join(dir, `conf`, `a.yaml`)), Kind: api.KindFile, Exists: true},
		{Location: api.FileURL(filepath.Join(dir, `conf`, `b.yaml`)), Kind: api.KindFile, Exists: true},
		{Location: `classpath:missing.txt`, Kind: api.KindProvider, Exists: false},
	}, entries)
}

func TestResources_missingLocation(t *testing.T) {
	rec := get(t, t.TempDir(), `/resources`, url.Values{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), `location`)
}

func TestResources_ioError(t *testing.T) {
	zp := filepath.Join(t.TempDir(), `missing.zip`)
	rec := get(t, t.TempDir(), `/resources`, url.Values{`location`: {archive.Location(zp, ``) + `**`}})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), `missing.zip`)
}

func TestPattern(t *testing.T) {
	rec := get(t, t.TempDir(), `/pattern`, url.Values{`expression`: {`/WEB-INF/*-context.xml`}})
	require.Equal(t, http.StatusOK, rec.Code)
	var p server.Pattern
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.Equal(t, server.Pattern{Pattern: true, Root: `/WEB-INF/`, SubPattern: `*-context.xml`}, p)

	rec = get(t, t.TempDir(), `/pattern`, url.Values{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
