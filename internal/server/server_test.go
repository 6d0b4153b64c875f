/*
 * server_test.go, part of chemview.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package server

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/chemview/chemjson"
	"github.com/rmera/chemview/embed"
	"github.com/rmera/chemview/internal/config"
	"github.com/rmera/chemview/internal/logger"
	"github.com/rmera/chemview/internal/pipeline"
	"github.com/rmera/chemview/pubchem"
)

type fakeResolver struct{}

func (fakeResolver) FirstCompound(ctx context.Context, name string) (*pubchem.Compound, error) {
	if name != "water" {
		return nil, pubchem.ErrNotFound
	}
	return &pubchem.Compound{CID: 962, Title: "Water", IUPACName: "oxidane", MolecularFormula: "H2O",
		MolecularWeight: 18.015, CanonicalSMILES: "O", Synonyms: []string{"water"}}, nil
}

func newTestServer(gz bool) *Server {
	cfg := &config.Config{}
	cfg.Server.Gzip = gz
	p := pipeline.New(fakeResolver{}, pipeline.Options{Embed: embed.Options{Seed: 5}})
	return New(cfg, p)
}

func get(t *testing.T, s *Server, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func page(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func TestIndexEmpty(t *testing.T) {
	s := newTestServer(false)
	rec := get(t, s, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	doc := page(t, rec)
	assert.Equal(t, 1, doc.Find("input[name=name]").Length())
	assert.Equal(t, 0, doc.Find(".error, .properties, .viewer").Length())
}

func TestIndexWater(t *testing.T) {
	s := newTestServer(false)
	rec := get(t, s, "/?name=water")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := page(t, rec)
	values := doc.Find(".field .value").Map(func(i int, sel *goquery.Selection) string { return sel.Text() })
	assert.Equal(t, []string{"oxidane", "water", "18.015", "H2O", "O"}, values)
	assert.Equal(t, 1, doc.Find(".viewer div.chemview-viewer").Length())
	assert.Equal(t, 6, doc.Find(".legend li").Length())
	href, _ := doc.Find("a[href^='/depict.png']").Attr("href")
	assert.Equal(t, "/depict.png?name=water", href)
}

func TestIndexNotFound(t *testing.T) {
	s := newTestServer(false)
	rec := get(t, s, "/?name=notarealchemicalxyz123")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := page(t, rec)
	assert.Equal(t, "No information found for notarealchemicalxyz123.", doc.Find(".error").Text())
	assert.Equal(t, 0, doc.Find(".properties, .viewer, .legend").Length())
}

func TestAPI(t *testing.T) {
	s := newTestServer(false)
	rec := get(t, s, "/api/compound?name=water")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON))
	doc, jerr := chemjson.DecodeCompound(rec.Body)
	require.Nil(t, jerr)
	assert.Equal(t, "H2O", doc.Properties.Formula)
	assert.Equal(t, "H2O", doc.DerivedFormula)
	assert.Len(t, doc.Atoms, 3)
	assert.Contains(t, doc.MolBlock, "M  END")
	mol, jerr := doc.Molecule()
	require.Nil(t, jerr)
	assert.Equal(t, 2, mol.NBonds())

	rec = get(t, s, "/api/compound?name=nothing")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON))
	var nf chemjson.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nf))
	assert.True(t, nf.NotFound)
	assert.Equal(t, "nothing", nf.Query)

	rec = get(t, s, "/api/compound")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDepict(t *testing.T) {
	s := newTestServer(false)
	rec := get(t, s, "/depict.png?name=water")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(false)
	rec := get(t, s, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = get(t, s, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "chemview_http_requests_total")
}

func TestGzip(t *testing.T) {
	s := newTestServer(true)
	rec := get(t, s, "/?name=water", "Accept-Encoding", "gzip")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), "oxidane")
}

func TestRequestID(t *testing.T) {
	s := newTestServer(false)
	s.echo.GET("/rid", func(c echo.Context) error {
		id, _ := c.Request().Context().Value(logger.RequestIDKey).(string)
		return c.String(http.StatusOK, id)
	})

	rec := get(t, s, "/rid", echo.HeaderXRequestID, "abc-123")
	assert.Equal(t, "abc-123", rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "abc-123", rec.Body.String())

	rec = get(t, s, "/rid")
	id := rec.Header().Get(echo.HeaderXRequestID)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.Body.String())
}
