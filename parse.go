/*
 * parse.go, part of gofdf.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

//FDF files include each other, and nothing in the format forbids a file
//from including itself. We bound the depth instead of tracking names,
//which also caps pathological but legal inputs.
const maxIncludeDepth = 20

//Read opens and parses the FDF file name. Files spliced with %include
//or with the "Label < file" form are searched relative to the directory
//of the file that references them.
func Read(name string) (*Deck, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	D, err := parse(f, filepath.Dir(name), name, 0)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return D, nil
}

//Parse parses an FDF deck from r. Included files, if any, are searched
//relative to the current directory.
func Parse(r io.Reader) (*Deck, error) {
	D, err := parse(r, ".", "", 0)
	if err != nil {
		return nil, errDecorate(err, "Parse")
	}
	return D, nil
}

func parse(r io.Reader, dir, filename string, depth int) (*Deck, error) {
	if depth > maxIncludeDepth {
		return nil, ParseError{"includes nested too deep (include cycle?)", filename, 0, nil}
	}
	D := New()
	scanner := bufio.NewScanner(r)
	var curblock *Block //non-nil while inside a %block region
	ln := 0
	for scanner.Scan() {
		ln++
		raw := scanner.Text()
		code, _ := splitComment(raw)
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			if curblock != nil {
				continue //comments inside a block don't survive, the consumer ignores them anyway
			}
			D.entries = append(D.entries, &entry{comment: raw, isComm: true})
			continue
		}
		tokens := tokenize(trimmed)
		first := strings.ToLower(tokens[0])
		if curblock != nil {
			if first == "%endblock" {
				D.entries = append(D.entries, &entry{block: curblock})
				curblock = nil
				continue
			}
			curblock.Lines = append(curblock.Lines, trimmed)
			continue
		}
		switch {
		case first == "%endblock":
			return nil, ParseError{"%endblock with no open block", filename, ln, nil}
		case first == "%block":
			b, done, err := parseBlockStart(tokens, dir)
			if err != nil {
				return nil, ParseError{err.Error(), filename, ln, nil}
			}
			if done {
				D.entries = append(D.entries, &entry{block: b})
			} else {
				curblock = b
			}
		case first == "%include":
			if len(tokens) < 2 {
				return nil, ParseError{"%include without a file name", filename, ln, nil}
			}
			sub, err := readIncluded(filepath.Join(dir, tokens[1]), depth+1)
			if err != nil {
				return nil, errDecorate(err, fmt.Sprintf("parse: %s line %d", filename, ln))
			}
			D.entries = append(D.entries, &entry{include: &include{name: tokens[1], deck: sub}})
		case len(tokens) >= 3 && tokens[1] == "<":
			//Label < file: the label's value is looked up in the named file.
			sub, err := readIncluded(filepath.Join(dir, tokens[2]), depth+1)
			if err != nil {
				return nil, errDecorate(err, fmt.Sprintf("parse: %s line %d", filename, ln))
			}
			e, err := extractLabel(sub, tokens[0])
			if err != nil {
				return nil, ParseError{err.Error(), filename, ln, nil}
			}
			D.entries = append(D.entries, e)
		default:
			D.entries = append(D.entries, &entry{dir: NewDirective(tokens[0], tokens[1:]...)})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, ParseError{err.Error(), filename, ln, nil}
	}
	if curblock != nil {
		return nil, ParseError{fmt.Sprintf("block %s never closed", curblock.Label), filename, ln, nil}
	}
	return D, nil
}

func readIncluded(name string, depth int) (*Deck, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, CError{"can't open included file: " + err.Error(), nil}
	}
	defer f.Close()
	return parse(f, filepath.Dir(name), name, depth)
}

//parseBlockStart handles the %block line. It returns the (possibly
//already complete) block and whether the caller still has to collect
//lines up to the %endblock.
func parseBlockStart(tokens []string, dir string) (*Block, bool, error) {
	if len(tokens) < 2 {
		return nil, false, fmt.Errorf("%%block without a label")
	}
	b := &Block{Label: tokens[1]}
	if len(tokens) >= 4 && tokens[2] == "<" {
		//%block Label < file: the whole block content comes from an external file
		f, err := os.Open(filepath.Join(dir, tokens[3]))
		if err != nil {
			return nil, false, fmt.Errorf("can't open block file for %s: %s", b.Label, err.Error())
		}
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			code, _ := splitComment(scanner.Text())
			if strings.TrimSpace(code) == "" {
				continue
			}
			b.Lines = append(b.Lines, strings.TrimSpace(code))
		}
		if err := scanner.Err(); err != nil {
			return nil, false, err
		}
		return b, true, nil
	}
	return b, false, nil
}

//extractLabel pulls the entry for label out of an external deck,
//for the "Label < file" form.
func extractLabel(sub *Deck, label string) (*entry, error) {
	if d := sub.directive(label); d != nil {
		return &entry{dir: d}, nil
	}
	if b := sub.block(label); b != nil {
		return &entry{block: b}, nil
	}
	return nil, fmt.Errorf("label %s not found in the referenced file", label)
}

//splitComment cuts a line at the first comment marker (#, ; or !)
//that is not inside double quotes. It returns the code part and the
//comment part (marker included, empty if none).
func splitComment(line string) (string, string) {
	quoted := false
	for i, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case !quoted && (r == '#' || r == ';' || r == '!'):
			return line[:i], line[i:]
		}
	}
	return line, ""
}

//tokenize splits a code line into whitespace-separated tokens, keeping
//double-quoted stretches (file names with spaces, system titles) as
//single tokens, without the quotes.
func tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	quoted := false
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case r == '"':
			if quoted {
				tokens = append(tokens, cur.String()) //a quoted token may be empty
				cur.Reset()
			}
			quoted = !quoted
		case !quoted && (r == ' ' || r == '\t'):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}
