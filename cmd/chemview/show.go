/*
 * show.go, part of chemview.
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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	chem "github.com/rmera/chemview"
	"github.com/rmera/chemview/chemjson"
	"github.com/rmera/chemview/internal/pipeline"
	"github.com/rmera/chemview/viewer"
)

func show(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	configPath := fs.String("config", "", "path to the configuration file")
	var out outputs
	fs.StringVar(&out.mol, "o", "", "write the mol block of the 3D structure to this file")
	fs.StringVar(&out.xyz, "xyz", "", "write the 3D structure to this file in XYZ format")
	fs.StringVar(&out.json, "json", "", "write the compound, as the JSON API gives it, to this file")
	fs.Parse(args)

	name := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(name) == "" {
		fs.Usage()
		return errors.New("no chemical name given")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	res, err := newPipeline(cfg).Run(context.Background(), name)
	var nf *pipeline.NotFoundError
	if errors.As(err, &nf) {
		color.Red("%s\n", nf.Error())
		return nil
	}
	if err != nil {
		return err
	}

	printResult(color.Output, res)
	written, err := out.write(res)
	for _, f := range written {
		color.Green("\n✓ Written %s\n", f)
	}
	return err
}

// outputs are the files show writes. Empty names are skipped.
type outputs struct {
	mol, xyz, json string
}

// write writes the requested files for res and returns the names of those written.
// The structure files are skipped if there is no structure.
func (o outputs) write(res *pipeline.Result) ([]string, error) {
	var written []string
	if o.json != "" {
		err := writeFile(o.json, func(w io.Writer) error {
			if jerr := chemjson.NewCompound(res.Query, res.Compound, res.Molecule, res.MolBlock).Send(w); jerr != nil {
				return jerr
			}
			return nil
		})
		if err != nil {
			return written, err
		}
		written = append(written, o.json)
	}
	if res.Molecule == nil {
		return written, nil
	}
	if o.mol != "" {
		if err := os.WriteFile(o.mol, []byte(res.MolBlock), 0644); err != nil {
			return written, fmt.Errorf("writing mol block: %w", err)
		}
		written = append(written, o.mol)
	}
	if o.xyz != "" {
		mol := res.Molecule
		err := writeFile(o.xyz, func(w io.Writer) error {
			return chem.XYZWrite(w, res.Compound.Title, mol, mol.Coords[mol.Current()])
		})
		if err != nil {
			return written, err
		}
		written = append(written, o.xyz)
	}
	return written, nil
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}

// printResult writes the properties, a summary of the structure and the legend.
func printResult(w io.Writer, res *pipeline.Result) {
	label := color.New(color.Bold, color.FgCyan).SprintFunc()
	for _, f := range res.Fields() {
		fmt.Fprintf(w, "%s %s\n", label(f.Label+":"), f.Value)
	}
	if res.StructureErr != nil {
		color.New(color.FgRed).Fprintf(w, "\nNo 3D structure: %v\n", res.StructureErr)
		return
	}
	mol := res.Molecule
	fmt.Fprintf(w, "\n%s %d atoms (%d heavy), %d bonds, formula %s\n", label("3D structure:"), mol.Len(), len(chem.HeavyAtoms(mol)), mol.NBonds(), chem.Formula(mol))
	fmt.Fprintf(w, "\n%s\n", label("Legend:"))
	for _, l := range viewer.Legend() {
		fmt.Fprintf(w, "- %s\n", l)
	}
}
