/*
 * client_test.go, part of chemview.
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

package pubchem

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waterProps = `{"PropertyTable":{"Properties":[{"CID":962,"MolecularFormula":"H2O","MolecularWeight":"18.015","ConnectivitySMILES":"O","IsomericSMILES":"O","IUPACName":"oxidane","Title":"Water","Charge":0}]}}`

const legacyProps = `{"PropertyTable":{"Properties":[{"CID":702,"MolecularFormula":"C2H6O","MolecularWeight":46.07,"CanonicalSMILES":"CCO","IUPACName":"ethanol","Title":"Ethanol"}]}}`

const waterSynonyms = `{"InformationList":{"Information":[{"CID":962,"Synonym":["water","7732-18-5","Dihydrogen oxide"]}]}}`

const notFound = `{"Fault":{"Code":"PUGREST.NotFound","Message":"No CID found","Details":["No CID found that matches the given name"]}}`

func fakePubChem(t *testing.T) (*httptest.Server, *atomic.Int32) {
	calls := new(atomic.Int32)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/compound/name/water/property/"):
			w.Write([]byte(waterProps))
		case strings.HasPrefix(r.URL.Path, "/compound/name/ethanol/property/"):
			w.Write([]byte(legacyProps))
		case r.URL.Path == "/compound/cid/962/synonyms/JSON":
			w.Write([]byte(waterSynonyms))
		case strings.HasPrefix(r.URL.Path, "/compound/name/busy/"):
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"Fault":{"Code":"PUGREST.ServerBusy","Message":"Too many requests"}}`))
		case strings.HasPrefix(r.URL.Path, "/compound/name/broken/"):
			w.Write([]byte(`{"PropertyTable":`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(notFound))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func TestCompounds(t *testing.T) {
	srv, _ := fakePubChem(t)
	c := NewClient(Config{BaseURL: srv.URL, RateLimit: 100})

	comps, err := c.Compounds(context.Background(), "water")
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, 962, comps[0].CID)
	assert.Equal(t, "oxidane", comps[0].IUPACName)
	assert.Equal(t, "H2O", comps[0].MolecularFormula)
	assert.InDelta(t, 18.015, comps[0].MolecularWeight, 1e-9)
	assert.Equal(t, "O", comps[0].CanonicalSMILES)

	comps, err = c.Compounds(context.Background(), "ethanol")
	require.NoError(t, err)
	assert.InDelta(t, 46.07, comps[0].MolecularWeight, 1e-9)
	assert.Equal(t, "CCO", comps[0].CanonicalSMILES)
}

func TestNotFound(t *testing.T) {
	srv, _ := fakePubChem(t)
	c := NewClient(Config{BaseURL: srv.URL, RateLimit: 100})

	comps, err := c.Compounds(context.Background(), "notarealchemicalxyz123")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Empty(t, comps)

	_, err = c.FirstCompound(context.Background(), "notarealchemicalxyz123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFirstCompound(t *testing.T) {
	srv, calls := fakePubChem(t)
	c := NewClient(Config{BaseURL: srv.URL, RateLimit: 100})

	comp, err := c.FirstCompound(context.Background(), "water")
	require.NoError(t, err)
	assert.Equal(t, "water", comp.CommonName())
	assert.Equal(t, int32(2), calls.Load())

	//ethanol's synonyms are not served, the title is the common name
	comp, err = c.FirstCompound(context.Background(), "ethanol")
	require.NoError(t, err)
	assert.Equal(t, "Ethanol", comp.CommonName())
}

func TestFailures(t *testing.T) {
	srv, _ := fakePubChem(t)
	c := NewClient(Config{BaseURL: srv.URL, RateLimit: 100})

	_, err := c.Compounds(context.Background(), "busy")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	var fault *Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, "PUGREST.ServerBusy", fault.Code)

	_, err = c.Compounds(context.Background(), "broken")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Compounds(ctx, "water")
	assert.Error(t, err)
}
