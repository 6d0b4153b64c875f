/*
 * client.go, part of chemview.
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

//Package pubchem is a small client for the PubChem PUG-REST service, limited
//to what is needed to look compounds up by name.
package pubchem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

//DefaultBaseURL is the root of the PUG-REST API.
const DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

//PropertyList are the properties requested for each compound.
var PropertyList = []string{"Title", "IUPACName", "MolecularFormula", "MolecularWeight", "CanonicalSMILES", "IsomericSMILES", "Charge"}

//ErrNotFound is returned when PubChem has no compound for a query.
var ErrNotFound = errors.New("pubchem: compound not found")

//maximum size read from a response
const maxBody = 8 << 20

//Config holds the parameters of a Client.
type Config struct {
	BaseURL   string
	RateLimit float64 //requests per second
	Timeout   time.Duration
	UserAgent string
}

//Client queries PubChem. It is safe for concurrent use, all requests
//share the rate limiter.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
}

//NewClient returns a client with the given configuration. Zero values get
//defaults: the public PubChem URL, 5 requests per second (PubChem's published
//limit) and a 30 s timeout.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 5
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "chemview"
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
	}
}

//get performs a throttled GET of the given path under the base URL and returns the body.
//A 404, or a PUGREST.NotFound fault, gives ErrNotFound.
func (C *Client) get(ctx context.Context, path string) ([]byte, error) {
	if err := C.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, C.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("pubchem: building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", C.cfg.UserAgent)
	resp, err := C.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pubchem: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("pubchem: reading response: %w", err)
	}
	if resp.StatusCode == http.StatusOK {
		return body, nil
	}
	fault := parseFault(body)
	if resp.StatusCode == http.StatusNotFound || (fault != nil && fault.Code == "PUGREST.NotFound") {
		return nil, ErrNotFound
	}
	if fault != nil {
		return nil, fmt.Errorf("status %d: %w", resp.StatusCode, fault)
	}
	return nil, fmt.Errorf("pubchem: received status code %d for %s", resp.StatusCode, path)
}

//Compounds returns the compounds PubChem associates with name, in the order
//PubChem gives them. If there are none it returns an empty slice and ErrNotFound.
func (C *Client) Compounds(ctx context.Context, name string) ([]Compound, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []Compound{}, ErrNotFound
	}
	path := fmt.Sprintf("/compound/name/%s/property/%s/JSON", url.PathEscape(name), strings.Join(PropertyList, ","))
	body, err := C.get(ctx, path)
	if errors.Is(err, ErrNotFound) {
		return []Compound{}, err
	}
	if err != nil {
		return nil, err
	}
	var pr propertyResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("pubchem: decoding properties: %w", err)
	}
	ret := make([]Compound, 0, len(pr.PropertyTable.Properties))
	for _, p := range pr.PropertyTable.Properties {
		ret = append(ret, p.compound())
	}
	if len(ret) == 0 {
		return ret, ErrNotFound
	}
	return ret, nil
}

//Synonyms returns the synonyms of the compound with the given CID, most relevant first.
func (C *Client) Synonyms(ctx context.Context, cid int) ([]string, error) {
	body, err := C.get(ctx, "/compound/cid/"+strconv.Itoa(cid)+"/synonyms/JSON")
	if err != nil {
		return nil, err
	}
	var sr synonymResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("pubchem: decoding synonyms: %w", err)
	}
	for _, info := range sr.InformationList.Information {
		if info.CID == cid {
			return info.Synonym, nil
		}
	}
	return []string{}, nil
}

//FirstCompound returns the first compound PubChem gives for name, with its synonyms
//filled in. A compound without synonyms is not an error.
func (C *Client) FirstCompound(ctx context.Context, name string) (*Compound, error) {
	comps, err := C.Compounds(ctx, name)
	if err != nil {
		return nil, err
	}
	first := comps[0]
	syn, err := C.Synonyms(ctx, first.CID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	first.Synonyms = syn
	return &first, nil
}
