/*
 * pipeline.go, part of chemview.
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

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	chem "github.com/rmera/chemview"
	"github.com/rmera/chemview/embed"
	"github.com/rmera/chemview/internal/logger"
	"github.com/rmera/chemview/internal/metrics"
	"github.com/rmera/chemview/pubchem"
	"github.com/rmera/chemview/smiles"
	v3 "github.com/rmera/chemview/v3"
	"github.com/rmera/chemview/viewer"
)

// Resolver finds the first compound matching a name. *pubchem.Client satisfies it.
type Resolver interface {
	FirstCompound(ctx context.Context, name string) (*pubchem.Compound, error)
}

// NotFoundError is returned when the lookup gives no compound.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No information found for %s.", e.Query)
}

func (e *NotFoundError) Unwrap() error {
	return pubchem.ErrNotFound
}

// StructureError is set in a Result when the compound was found but no 3D structure
// could be derived from its SMILES.
type StructureError struct {
	SMILES string
	Err    error
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("could not derive a 3D structure from SMILES %q: %v", e.SMILES, e.Err)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}

type Options struct {
	Width       int
	Height      int
	ColorScheme string
	ScriptURL   string
	Embed       embed.Options
}

type Pipeline struct {
	resolver Resolver
	opts     Options
}

func New(resolver Resolver, opts Options) *Pipeline {
	if opts.Width <= 0 {
		opts.Width = 400
	}
	if opts.Height <= 0 {
		opts.Height = 400
	}
	if opts.ColorScheme == "" {
		opts.ColorScheme = "Jmol"
	}
	if opts.ScriptURL == "" {
		opts.ScriptURL = viewer.DefaultScriptURL
	}
	return &Pipeline{resolver: resolver, opts: opts}
}

// Result is everything produced for one query.
type Result struct {
	Query    string
	Compound *pubchem.Compound
	Molecule *chem.Molecule
	MolBlock string
	Viewer   template.HTML
	// StructureErr is not nil if the properties are available but the structure is not.
	StructureErr *StructureError
}

// Run looks up query and derives and renders the structure of the first compound found.
// An empty query (after trimming) gives a nil result and no error, and no lookup is made.
// If nothing is found the error is a *NotFoundError.
func (p *Pipeline) Run(ctx context.Context, query string) (*Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	log := logger.For(ctx).WithField("query", query)

	done := logger.Track(ctx, "pubchem lookup")
	compound, err := p.resolver.FirstCompound(ctx, query)
	done()
	switch {
	case errors.Is(err, pubchem.ErrNotFound):
		metrics.LookupsTotal.WithLabelValues("not_found").Inc()
		log.Info("no compound found")
		return nil, &NotFoundError{Query: query}
	case err != nil:
		metrics.LookupsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("looking up %q: %w", query, err)
	}
	metrics.LookupsTotal.WithLabelValues("found").Inc()
	log = log.WithField("cid", compound.CID)

	res := &Result{Query: query, Compound: compound}
	name := compound.Title
	if name == "" {
		name = query
	}
	mol, block, err := p.Derive(ctx, compound.CanonicalSMILES, name)
	if err != nil {
		metrics.DerivationFailures.Inc()
		entry := log.WithError(err)
		var cerr chem.Error
		if errors.As(err, &cerr) {
			entry = entry.WithField("trace", strings.Join(cerr.Decorate(""), " <- "))
		}
		entry.Warn("structure derivation failed")
		res.StructureErr = &StructureError{SMILES: compound.CanonicalSMILES, Err: err}
		return res, nil
	}
	if f := chem.Formula(mol); compound.MolecularFormula != "" && f != compound.MolecularFormula {
		log.Warnf("derived formula %s differs from %s", f, compound.MolecularFormula)
	}
	res.Molecule = mol
	res.MolBlock = block
	res.Viewer = p.View(block)
	return res, nil
}

// Derive builds a 3D structure, with explicit hydrogens, from a SMILES string, and returns it
// with its mol block, titled name.
func (p *Pipeline) Derive(ctx context.Context, smi, name string) (*chem.Molecule, string, error) {
	if strings.TrimSpace(smi) == "" {
		return nil, "", errors.New("no SMILES")
	}
	defer logger.Track(ctx, "structure derivation")()
	start := time.Now()
	defer func() { metrics.DerivationDuration.Observe(time.Since(start).Seconds()) }()

	top, err := smiles.Parse(smi)
	if err != nil {
		return nil, "", err
	}
	chem.AddHydrogens(top)
	opts := p.opts.Embed
	coords, err := embed.Embed(top, &opts)
	if err != nil {
		return nil, "", err
	}
	mol, err := chem.NewMolecule([]*v3.Matrix{coords}, top)
	if err != nil {
		return nil, "", err
	}
	block, err := chem.MolBlockString(name, top, coords)
	if err != nil {
		return nil, "", err
	}
	return mol, block, nil
}

// View returns the viewer for a mol block: stick style, the configured color scheme, zoomed to the molecule.
func (p *Pipeline) View(molblock string) template.HTML {
	v := viewer.New(p.opts.Width, p.opts.Height)
	v.ScriptURL = p.opts.ScriptURL
	v.AddModel(molblock, "mol")
	v.SetStyle(viewer.StickStyle(p.opts.ColorScheme))
	v.ZoomTo()
	return v.HTML()
}

// FormatWeight writes a molecular weight the way PubChem does, without trailing zeros.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// Fields returns the labelled properties shown for the compound.
func (r *Result) Fields() []viewer.Field {
	c := r.Compound
	return []viewer.Field{
		viewer.NewField("IUPAC Name", c.IUPACName),
		viewer.NewField("Common Name", c.CommonName()),
		viewer.NewField("Molecular Weight", FormatWeight(c.MolecularWeight)),
		viewer.NewField("Formula", c.MolecularFormula),
		viewer.NewField("SMILES", c.CanonicalSMILES),
	}
}

// PageData returns what the page shows for a Run outcome. depictURL is linked under
// the viewer if not empty.
func PageData(query string, res *Result, err error, depictURL string) *viewer.PageData {
	data := &viewer.PageData{Query: query}
	var nf *NotFoundError
	switch {
	case errors.As(err, &nf):
		data.NotFound = nf.Error()
		return data
	case err != nil:
		data.Error = "The compound could not be retrieved, please try again later."
		return data
	case res == nil:
		return data
	}
	data.Fields = res.Fields()
	if res.StructureErr != nil {
		data.StructureError = "No 3D structure could be derived for this compound."
		return data
	}
	data.Viewer = res.Viewer
	data.Legend = viewer.Legend()
	data.DepictURL = depictURL
	return data
}
