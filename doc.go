/*
 * doc.go, part of gofdf.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package fdf reads, manipulates and writes FDF ("Flexible Data Format")
input decks, the key-value input files consumed by SIESTA-style
first-principles electronic-structure programs.



	**gofdf Capabilities**


    Reads and writes FDF decks, preserving the order of the directives,
	the blocks, and the comments, so a deck survives a read/write cycle.

    Resolves %include splicing, "%block Label < file" and "Label < file"
	references, with includes searched relative to the referencing file.

    Typed access to directives: strings, integers, floats, FDF booleans
	(.true./.false. and friends) and physical values with unit
	conversion (ask for the MeshCutoff in eV even if the deck says Ry;
	temperatures convert to and from energies the way the consuming
	programs do it).

    Reads and writes the structural blocks (ChemicalSpeciesLabel,
	LatticeVectors, AtomicCoordinatesAndAtomicSpecies) to and from
	gonum matrices, handling the Ang/Bohr/Fractional coordinate formats.

    Flattens a multi-file input into a self-contained deck, and archives
	it behind zstd, gzip or deflate compression for reproducibility.

    JSON encoding of the effective record set, for interoperation with
	other tools.

    The siesta subpackage generates complete inputs from a typed
	calculation description, runs the external program and recovers
	energies, SCF convergence histories and relaxed geometries from its
	output. The scfplot subpackage plots those histories.

Labels are matched the FDF way: case-insensitively and ignoring the
characters '-', '_' and '.', and the first occurrence of a label in a
deck is the one that counts.

As in the other rmera libraries, each row of a coordinate matrix
represents one point in space, and coordinates are in Angstrom unless
stated otherwise.*/
package fdf
