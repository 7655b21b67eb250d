/*
 * fdf.go, part of gofdf.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package fdf

import (
	"fmt"
	"strconv"
	"strings"
)

//A Directive is a single Label Value... line of an FDF deck. The value
//tokens are kept verbatim, in order, so a deck can be written back
//the way it was read. For a physical value the last token is the unit.
type Directive struct {
	Label  string
	Values []string
}

//NewDirective returns a directive with the given label and value tokens.
func NewDirective(label string, values ...string) *Directive {
	return &Directive{Label: label, Values: values}
}

//A Block is a %block Label ... %endblock region of a deck. The inner
//lines are kept raw: their meaning depends on the label, and only the
//consuming program (or the geometry helpers in this library) interprets them.
type Block struct {
	Label string
	Lines []string
}

//entry is one element of a deck, in file order. Exactly one of the
//fields is set. comment holds full comment or blank lines, verbatim,
//so they survive a read/write cycle even if no consumer cares about them.
type entry struct {
	dir     *Directive
	block   *Block
	include *include
	comment string
	isComm  bool //distinguishes an empty comment line from an unset field
}

//include is an %include directive together with the parsed content of
//the included file. Lookups descend into it; writing emits the directive
//itself, not the spliced content, unless the deck is flattened first.
type include struct {
	name string
	deck *Deck
}

//Deck is an ordered FDF input deck: directives, blocks, includes and
//comments in file order. Labels are matched in the FDF way: case does
//not matter and the characters '-', '_' and '.' are ignored, so
//MeshCutoff, mesh-cutoff and Mesh.Cut_off are all the same label.
//On lookup the first occurrence of a label wins, as in the original format.
type Deck struct {
	entries []*entry
}

//New returns an empty deck.
func New() *Deck {
	return &Deck{entries: make([]*entry, 0, 10)}
}

//normalizeLabel lowercases a label and removes the separator
//characters FDF ignores.
func normalizeLabel(label string) string {
	rep := strings.NewReplacer("-", "", "_", "", ".", "")
	return rep.Replace(strings.ToLower(label))
}

//Len returns the number of entries (directives, blocks, comments and
//includes) in the deck, not counting the contents of included files.
func (D *Deck) Len() int {
	return len(D.entries)
}

//directive returns the first directive matching label, descending into
//included decks, or nil.
func (D *Deck) directive(label string) *Directive {
	want := normalizeLabel(label)
	for _, e := range D.entries {
		if e.dir != nil && normalizeLabel(e.dir.Label) == want {
			return e.dir
		}
		if e.include != nil {
			if d := e.include.deck.directive(label); d != nil {
				return d
			}
		}
	}
	return nil
}

//block returns the first block matching label, descending into
//included decks, or nil.
func (D *Deck) block(label string) *Block {
	want := normalizeLabel(label)
	for _, e := range D.entries {
		if e.block != nil && normalizeLabel(e.block.Label) == want {
			return e.block
		}
		if e.include != nil {
			if b := e.include.deck.block(label); b != nil {
				return b
			}
		}
	}
	return nil
}

//Defined returns true if label appears in the deck, either as a
//directive or as a block.
func (D *Deck) Defined(label string) bool {
	return D.directive(label) != nil || D.block(label) != nil
}

//Str returns the value of label as a single string, with the original
//tokens joined by single spaces. Returns error if the label is absent.
func (D *Deck) Str(label string) (string, error) {
	d := D.directive(label)
	if d == nil {
		return "", CError{"label " + label + " not in deck", []string{"Str"}}
	}
	return strings.Join(d.Values, " "), nil
}

//StrOr is as Str but returns def when the label is absent.
func (D *Deck) StrOr(label, def string) string {
	s, err := D.Str(label)
	if err != nil {
		return def
	}
	return s
}

//Bool returns the value of label as a boolean. The FDF truth literals
//.true., true, T, yes and y are accepted (and the corresponding false
//ones), case-insensitively. A label present with no value at all
//is true, as in the original format. Returns error if the label is
//absent or the value is not a boolean literal.
func (D *Deck) Bool(label string) (bool, error) {
	d := D.directive(label)
	if d == nil {
		return false, CError{"label " + label + " not in deck", []string{"Bool"}}
	}
	if len(d.Values) == 0 {
		return true, nil //presence alone asserts the flag
	}
	switch strings.ToLower(d.Values[0]) {
	case ".true.", "true", "t", "yes", "y":
		return true, nil
	case ".false.", "false", "f", "no", "n":
		return false, nil
	}
	return false, CError{fmt.Sprintf("label %s: %s is not a boolean literal", label, d.Values[0]), []string{"Bool"}}
}

//BoolOr is as Bool but returns def when the label is absent.
func (D *Deck) BoolOr(label string, def bool) bool {
	b, err := D.Bool(label)
	if err != nil {
		return def
	}
	return b
}

//Int returns the value of label as an integer.
func (D *Deck) Int(label string) (int, error) {
	d := D.directive(label)
	if d == nil {
		return 0, CError{"label " + label + " not in deck", []string{"Int"}}
	}
	if len(d.Values) == 0 {
		return 0, CError{"label " + label + " has no value", []string{"Int"}}
	}
	i, err := strconv.Atoi(d.Values[0])
	if err != nil {
		return 0, CError{fmt.Sprintf("label %s: %s", label, err.Error()), []string{"Int"}}
	}
	return i, nil
}

//IntOr is as Int but returns def when the label is absent.
func (D *Deck) IntOr(label string, def int) int {
	i, err := D.Int(label)
	if err != nil {
		return def
	}
	return i
}

//Float returns the value of label as a float64. Any unit token after
//the number is ignored; use Physical when the unit matters.
func (D *Deck) Float(label string) (float64, error) {
	d := D.directive(label)
	if d == nil {
		return 0, CError{"label " + label + " not in deck", []string{"Float"}}
	}
	if len(d.Values) == 0 {
		return 0, CError{"label " + label + " has no value", []string{"Float"}}
	}
	f, err := strconv.ParseFloat(d.Values[0], 64)
	if err != nil {
		return 0, CError{fmt.Sprintf("label %s: %s", label, err.Error()), []string{"Float"}}
	}
	return f, nil
}

//FloatOr is as Float but returns def when the label is absent.
func (D *Deck) FloatOr(label string, def float64) float64 {
	f, err := D.Float(label)
	if err != nil {
		return def
	}
	return f
}

//Physical returns the value of label converted to the unit want.
//The directive must carry a number followed by a unit token, and the
//unit must be of the same dimension as want (you can ask for a
//MeshCutoff in eV but not in fs). Returns error otherwise.
func (D *Deck) Physical(label, want string) (float64, error) {
	d := D.directive(label)
	if d == nil {
		return 0, CError{"label " + label + " not in deck", []string{"Physical"}}
	}
	if len(d.Values) < 2 {
		return 0, CError{fmt.Sprintf("label %s carries no unit, value: %v", label, d.Values), []string{"Physical"}}
	}
	f, err := strconv.ParseFloat(d.Values[0], 64)
	if err != nil {
		return 0, CError{fmt.Sprintf("label %s: %s", label, err.Error()), []string{"Physical"}}
	}
	conv, err := Convert(f, d.Values[1], want)
	if err != nil {
		return 0, errDecorate(err, "Physical: "+label)
	}
	return conv, nil
}

//PhysicalOr is as Physical but returns def (assumed to be already in
//the unit want) when the label is absent. It still returns an error
//for a present but malformed value.
func (D *Deck) PhysicalOr(label, want string, def float64) (float64, error) {
	if D.directive(label) == nil {
		return def, nil
	}
	return D.Physical(label, want)
}

//BlockLines returns the raw inner lines of the block with the given
//label. Returns error if the block is absent.
func (D *Deck) BlockLines(label string) ([]string, error) {
	b := D.block(label)
	if b == nil {
		return nil, CError{"block " + label + " not in deck", []string{"BlockLines"}}
	}
	return b.Lines, nil
}

//Set sets label to the given value tokens, replacing the first
//occurrence in place if the label already exists (even inside an
//included deck) or appending a new directive at the end of the deck.
func (D *Deck) Set(label string, values ...string) {
	if d := D.directive(label); d != nil {
		d.Label = label //the caller's spelling wins
		d.Values = values
		return
	}
	D.entries = append(D.entries, &entry{dir: NewDirective(label, values...)})
}

//SetBool sets label to the FDF literal corresponding to v.
func (D *Deck) SetBool(label string, v bool) {
	if v {
		D.Set(label, ".true.")
	} else {
		D.Set(label, ".false.")
	}
}

//SetInt sets label to the integer v.
func (D *Deck) SetInt(label string, v int) {
	D.Set(label, strconv.Itoa(v))
}

//SetPhysical sets label to the value v with the given unit token.
func (D *Deck) SetPhysical(label string, v float64, unit string) {
	D.Set(label, strconv.FormatFloat(v, 'g', -1, 64), unit)
}

//SetBlock sets the block label to the given raw lines, replacing the
//first occurrence in place or appending at the end of the deck.
func (D *Deck) SetBlock(label string, lines []string) {
	if b := D.block(label); b != nil {
		b.Label = label
		b.Lines = lines
		return
	}
	D.entries = append(D.entries, &entry{block: &Block{Label: label, Lines: lines}})
}

//Remove deletes every directive or block matching label from the deck,
//including inside included decks, and reports whether anything was removed.
func (D *Deck) Remove(label string) bool {
	want := normalizeLabel(label)
	removed := false
	kept := make([]*entry, 0, len(D.entries))
	for _, e := range D.entries {
		if e.dir != nil && normalizeLabel(e.dir.Label) == want {
			removed = true
			continue
		}
		if e.block != nil && normalizeLabel(e.block.Label) == want {
			removed = true
			continue
		}
		if e.include != nil && e.include.deck.Remove(label) {
			removed = true
		}
		kept = append(kept, e)
	}
	D.entries = kept
	return removed
}

//AddComment appends a comment line (the leading # is added) at the
//end of the deck.
func (D *Deck) AddComment(text string) {
	D.entries = append(D.entries, &entry{comment: "# " + text, isComm: true})
}

//AddInclude appends an %include directive pointing to name. The file
//is not opened: this is for generated decks that reference an input
//the user maintains separately. A deck read back from disk resolves
//the reference as usual.
func (D *Deck) AddInclude(name string) {
	D.entries = append(D.entries, &entry{include: &include{name: name, deck: New()}})
}

//Flatten returns a new deck where every %include has been replaced by
//the entries of the included file, recursively, so the result is a
//self-contained equivalent of the original multi-file input.
func (D *Deck) Flatten() *Deck {
	flat := New()
	for _, e := range D.entries {
		if e.include == nil {
			flat.entries = append(flat.entries, e)
			continue
		}
		sub := e.include.deck.Flatten()
		flat.entries = append(flat.entries, sub.entries...)
	}
	return flat
}

//Record is one effective key/value entry of a deck, with includes
//resolved and comments dropped: what the consuming program actually
//sees. For a block, Lines is set and Values is nil.
type Record struct {
	Label  string
	Values []string
	Lines  []string
}

//Records returns the effective record set of the deck, in order.
//Two decks with equal record sets configure the same simulation.
func (D *Deck) Records() []Record {
	recs := make([]Record, 0, len(D.entries))
	for _, e := range D.entries {
		switch {
		case e.dir != nil:
			recs = append(recs, Record{Label: e.dir.Label, Values: e.dir.Values})
		case e.block != nil:
			recs = append(recs, Record{Label: e.block.Label, Lines: e.block.Lines})
		case e.include != nil:
			recs = append(recs, e.include.deck.Records()...)
		}
	}
	return recs
}
