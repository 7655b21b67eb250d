package fdf

import (
	"encoding/json"
	"fmt"
	"testing"
)

//TestJSON encodes the water deck and rebuilds it from the encoding.
func TestJSON(Te *testing.T) {
	D, err := Read("test/h2o.fdf")
	if err != nil {
		Te.Fatal(err)
	}
	b, err := json.Marshal(D)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("encoded deck:", len(b), "bytes")
	D2 := New()
	if err := json.Unmarshal(b, D2); err != nil {
		Te.Fatal(err)
	}
	if len(D.Records()) != len(D2.Records()) {
		Te.Errorf("record sets differ: %d vs %d", len(D.Records()), len(D2.Records()))
	}
	if s := D2.StrOr("XC.functional", "none"); s != "GGA" {
		Te.Errorf("XC.functional after the trip: %s", s)
	}
	lines, err := D2.BlockLines("ChemicalSpeciesLabel")
	if err != nil || len(lines) != 2 {
		Te.Errorf("species block after the trip: %v, err: %v", lines, err)
	}
}
