/*
 * depict.go, part of chemview.
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
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	chem "github.com/rmera/chemview"
	"github.com/rmera/chemview/chemjson"
	"github.com/rmera/chemview/chemplot"
)

func depict(args []string) error {
	fs := flag.NewFlagSet("depict", flag.ExitOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	out := fs.String("o", "", "PNG file to write (default: the input name with .png)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("depict takes exactly one file")
	}
	in := fs.Arg(0)
	f, err := os.Open(in)
	if err != nil {
		return err
	}
	mol, title, err := readStructure(f, filepath.Ext(in))
	f.Close()
	if err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}
	if *out == "" {
		*out = strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
	}
	if err := writeFile(*out, func(w io.Writer) error { return chemplot.Depict(mol, title, w) }); err != nil {
		return err
	}
	color.Green("✓ Written %s\n", *out)
	return nil
}

// readStructure reads a molecule from a mol block (ext ".mol" or ".sdf") or from a
// compound document as written by "show -json" (ext ".json"). It also returns a title for it.
func readStructure(in io.Reader, ext string) (*chem.Molecule, string, error) {
	switch strings.ToLower(ext) {
	case ".mol", ".sdf":
		return chem.MolBlockRead(in)
	case ".json":
		doc, jerr := chemjson.DecodeCompound(in)
		if jerr != nil {
			return nil, "", jerr
		}
		mol, jerr := doc.Molecule()
		if jerr != nil {
			return nil, "", jerr
		}
		title := doc.Properties.CommonName
		if title == "" {
			title = doc.Query
		}
		return mol, title, nil
	}
	return nil, "", fmt.Errorf("unknown file type %q, use .mol or .json", ext)
}
