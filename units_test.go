package fdf

import (
	"fmt"
	"math"
	"testing"
)

//TestConvert checks a few conversions against the values everyone in
//the field knows by heart.
func TestConvert(Te *testing.T) {
	cases := []struct {
		v        float64
		from, to string
		want     float64
		tol      float64
	}{
		{1, "Ry", "eV", 13.6059, 0.001},
		{1, "Hartree", "eV", 27.2114, 0.002},
		{1, "Bohr", "Ang", 0.529177, 1e-6},
		{300, "K", "meV", 25.85, 0.05},
		{1, "eV", "K", 11604.5, 5},
		{1000, "fs", "ps", 1, 1e-12},
		{1, "GPa", "Mbar", 0.01, 1e-12},
		{25, "meV", "Ry", 0.001838, 1e-5},
	}
	for _, c := range cases {
		got, err := Convert(c.v, c.from, c.to)
		if err != nil {
			Te.Error(err)
			continue
		}
		if math.Abs(got-c.want) > c.tol {
			Te.Errorf("%g %s in %s: got %g, expected about %g", c.v, c.from, c.to, got, c.want)
		}
		fmt.Printf("%g %s = %g %s\n", c.v, c.from, got, c.to)
	}
}

//TestConvertErrors checks that nonsense conversions are refused.
func TestConvertErrors(Te *testing.T) {
	if _, err := Convert(1, "Ry", "fs"); err == nil {
		Te.Error("converting an energy to a time should fail")
	}
	if _, err := Convert(1, "parsec", "Ang"); err == nil {
		Te.Error("an unknown unit should fail")
	}
	if !KnownUnit("mRy") || KnownUnit("parsec") {
		Te.Error("KnownUnit misbehaves")
	}
}
