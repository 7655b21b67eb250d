/*
 * json.go, part of gofdf.
 *
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
 *
 * Gofdf is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 *
 */

package fdf

//JSON encoding of the effective record set of a deck, so other
//programs (analysis scripts, PyMOL plugins, web things) can consume a
//simulation input without learning the FDF format. Comments don't
//survive the trip; the consuming program never saw them anyway.

import "encoding/json"

//MarshalJSON serializes the deck as its record set: a JSON array where
//each element carries the label and either the value tokens (directive)
//or the raw lines (block).
func (D *Deck) MarshalJSON() ([]byte, error) {
	return json.Marshal(D.Records())
}

//UnmarshalJSON rebuilds a deck from the record-set encoding produced
//by MarshalJSON.
func (D *Deck) UnmarshalJSON(b []byte) error {
	var recs []Record
	if err := json.Unmarshal(b, &recs); err != nil {
		return errDecorate(CError{err.Error(), nil}, "UnmarshalJSON")
	}
	D.entries = make([]*entry, 0, len(recs))
	for _, r := range recs {
		if r.Lines != nil {
			D.entries = append(D.entries, &entry{block: &Block{Label: r.Label, Lines: r.Lines}})
		} else {
			D.entries = append(D.entries, &entry{dir: NewDirective(r.Label, r.Values...)})
		}
	}
	return nil
}
