/*
 * archive.go, part of gofdf.
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

//An archived deck is the flattened input behind a compressor, so a
//whole multi-file input can be stored, attached to results, or mailed
//around as one reproducible file. The compressor is chosen by the
//file name extension, as for trajectory files in the rmera libraries.

import (
	"compress/flate"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const flateLevel = 9

//zstd.Decoder has a Close without an error return, so it can't be an
//io.ReadCloser by itself :-(
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

func archiveWriter(name string, f io.Writer) (io.WriteCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case ".gz":
		return gzip.NewWriterLevel(f, gzip.BestCompression)
	default:
		return flate.NewWriter(f, flateLevel)
	}
}

func archiveReader(name string, f io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		r, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		return zstdql{r.Close, r}, nil
	case ".gz":
		return gzip.NewReader(f)
	default:
		return flate.NewReader(f), nil
	}
}

//ArchiveWrite flattens the deck (so included files are no longer
//needed to make sense of it) and writes it, compressed, to the file
//name. The extension picks the compressor: .zst/.zstd for zstd,
//.gz for gzip and anything else for raw deflate.
func ArchiveWrite(name string, D *Deck) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	w, err := archiveWriter(name, f)
	if err != nil {
		return errDecorate(CError{err.Error(), nil}, "ArchiveWrite")
	}
	_, err = D.Flatten().WriteTo(w)
	if err != nil {
		w.Close()
		return errDecorate(err, "ArchiveWrite")
	}
	return w.Close() //the compressor buffers, so this error matters
}

//ArchiveRead reads back a deck written by ArchiveWrite. The compressor
//is picked from the extension, as in ArchiveWrite.
func ArchiveRead(name string) (*Deck, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := archiveReader(name, f)
	if err != nil {
		return nil, errDecorate(CError{err.Error(), nil}, "ArchiveRead")
	}
	defer r.Close()
	D, err := Parse(r)
	if err != nil {
		return nil, errDecorate(err, "ArchiveRead")
	}
	return D, nil
}
