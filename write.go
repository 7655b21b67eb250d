/*
 * write.go, part of gofdf.
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

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//WriteTo serializes the deck to w. The output parses back to the same
//record set (see Records). An %include entry is written as the
//directive itself, pointing to the original file name; Flatten the deck
//first if a self-contained file is wanted.
func (D *Deck) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, e := range D.entries {
		m, err := fmt.Fprint(bw, entryString(e))
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

//Write serializes the deck to the file name, creating or truncating it.
func (D *Deck) Write(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = D.WriteTo(f)
	if err != nil {
		return errDecorate(err, "Write")
	}
	return nil
}

//String returns the deck serialized as a string.
func (D *Deck) String() string {
	var b strings.Builder
	D.WriteTo(&b) //a Builder never errors
	return b.String()
}

func entryString(e *entry) string {
	switch {
	case e.isComm:
		return e.comment + "\n"
	case e.dir != nil:
		if len(e.dir.Values) == 0 {
			return e.dir.Label + "\n"
		}
		return e.dir.Label + " " + strings.Join(quoteTokens(e.dir.Values), " ") + "\n"
	case e.block != nil:
		var b strings.Builder
		b.WriteString("%block " + e.block.Label + "\n")
		for _, l := range e.block.Lines {
			b.WriteString("  " + l + "\n")
		}
		b.WriteString("%endblock " + e.block.Label + "\n")
		return b.String()
	case e.include != nil:
		return fmt.Sprintf("%%include \"%s\"\n", e.include.name)
	}
	return "" //can't happen
}

//quoteTokens puts back the double quotes around tokens that need them
//to survive a read/write cycle.
func quoteTokens(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if v == "" || strings.ContainsAny(v, " \t#;!") {
			out[i] = "\"" + v + "\""
		} else {
			out[i] = v
		}
	}
	return out
}
