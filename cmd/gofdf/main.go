/*
 * main.go, part of gofdf.
 *
 * Copyright 2020 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * Gofdf is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */

//gofdf is a little command-line tool over the library: it flattens
//multi-file inputs, looks values up with unit conversion, converts
//decks to JSON and checks the options of a deck before the queue time
//gets wasted on them.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rmera/gofdf"
	"github.com/rmera/gofdf/siesta"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofdf",
	Short: "read, convert and check FDF simulation inputs",
	Long: `gofdf reads the FDF input decks of SIESTA-style electronic-structure
programs, resolves their includes, and lets you look values up, convert
the deck to JSON, store it flattened and compressed, or sanity-check it.`,
	SilenceUsage: true,
}

var flattenCmd = &cobra.Command{
	Use:   "flatten <in.fdf> <out>",
	Short: "resolve all includes into a single file",
	Long: `flatten reads a deck and writes it with every %include and every
"Label < file" reference resolved, so the result stands on its own. If the
output name ends in .zst, .zstd or .gz (or anything else that is not .fdf)
it is written as a compressed archive.`,
	Args: cobra.ExactArgs(2),
	RunE: runFlatten,
}

func runFlatten(cmd *cobra.Command, args []string) error {
	D, err := fdf.Read(args[0])
	if err != nil {
		return err
	}
	if strings.HasSuffix(args[1], ".fdf") {
		return D.Flatten().Write(args[1])
	}
	return fdf.ArchiveWrite(args[1], D)
}

var getUnit string

var getCmd = &cobra.Command{
	Use:   "get <in.fdf> <label>",
	Short: "print the value of a label",
	Long: `get prints the value of a label, searching included files too.
With --unit the value is taken as a physical one and converted; blocks are
printed line by line.`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	D, err := fdf.Read(args[0])
	if err != nil {
		return err
	}
	if getUnit != "" {
		v, err := D.Physical(args[1], getUnit)
		if err != nil {
			return err
		}
		fmt.Printf("%g %s\n", v, getUnit)
		return nil
	}
	if s, err := D.Str(args[1]); err == nil {
		fmt.Println(s)
		return nil
	}
	lines, err := D.BlockLines(args[1])
	if err != nil {
		return fmt.Errorf("label %s not in %s", args[1], args[0])
	}
	for _, l := range lines {
		fmt.Println(l)
	}
	return nil
}

var jsonCmd = &cobra.Command{
	Use:   "json <in.fdf>",
	Short: "print the deck's record set as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		D, err := fdf.Read(args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(D)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <in.fdf>",
	Short: "parse a deck and check its options",
	Long: `check parses the deck (so syntax errors and dangling includes show
up), reads the structural blocks if present, and runs the typed-layer
validation on the calculation options.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	D, err := fdf.Read(args[0])
	if err != nil {
		return err
	}
	if D.Defined("AtomicCoordinatesAndAtomicSpecies") {
		if _, _, err := D.AtomicCoordinates(); err != nil {
			return fmt.Errorf("geometry: %s", err.Error())
		}
	}
	if D.Defined("ChemicalSpeciesLabel") {
		if _, err := D.ChemicalSpecies(); err != nil {
			return fmt.Errorf("species: %s", err.Error())
		}
	}
	Q, err := siesta.CalcFromDeck(D)
	if err != nil {
		return fmt.Errorf("options: %s", err.Error())
	}
	if err := Q.Validate(); err != nil {
		return fmt.Errorf("options refused: %s", err.Error())
	}
	fmt.Printf("%s looks runnable: %d records\n", args[0], len(D.Records()))
	return nil
}

func main() {
	getCmd.Flags().StringVarP(&getUnit, "unit", "u", "", "unit to convert a physical value to")
	rootCmd.AddCommand(flattenCmd, getCmd, jsonCmd, checkCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
