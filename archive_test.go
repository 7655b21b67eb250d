package fdf

import (
	"fmt"
	"math"
	"testing"
)

//TestArchive writes the water deck, flattened and compressed, with
//each supported compressor, and reads it back.
func TestArchive(Te *testing.T) {
	D, err := Read("test/h2o.fdf")
	if err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{"test/h2o.fdf.zst", "test/h2o.fdf.gz", "test/h2o.fdfz"} {
		if err := ArchiveWrite(name, D); err != nil {
			Te.Error(err)
			continue
		}
		D2, err := ArchiveRead(name)
		if err != nil {
			Te.Error(err)
			continue
		}
		cut, err := D2.Physical("MeshCutoff", "Ry")
		if err != nil || math.Abs(cut-150) > 1e-10 {
			Te.Errorf("%s: MeshCutoff %f, err: %v", name, cut, err)
		}
		//the archive is flattened, so the included basis options are inside
		if bs := D2.StrOr("PAO.BasisSize", "none"); bs != "DZP" {
			Te.Errorf("%s: included options lost: %s", name, bs)
		}
		fmt.Println("archived and recovered", name)
	}
}
