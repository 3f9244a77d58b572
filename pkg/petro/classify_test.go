package petro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fp(v float64) *float64 { return &v }

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		res  Result
		want string
	}{
		{"clean and porous", Result{Vshale: fp(0.2), PorosityEffective: fp(0.15)}, ZoneReservoir},
		{"clean but tight", Result{Vshale: fp(0.2), PorosityEffective: fp(0.05)}, ZoneOther},
		{"shaly", Result{Vshale: fp(0.7), PorosityEffective: fp(0.20)}, ZoneShale},
		{"exactly at vshale cutoff", Result{Vshale: fp(VshaleCutoff)}, ZoneShale},
		{"exactly at phi cutoff", Result{Vshale: fp(0.1), PorosityEffective: fp(PhiEffCutoff)}, ZoneOther},
		{"no vshale", Result{PorosityEffective: fp(0.2)}, ZoneOther},
		{"no porosity", Result{Vshale: fp(0.1)}, ZoneOther},
		{"all nil", Result{}, ZoneOther},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.res))
		})
	}
}
