package logfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petrolog/pkg/petro"
)

const sampleCSV = `depth,GR,DENS,comment
1000.0,50.5,2.65,first
1000.5,52.3,,gap row
1001.0,,2.61,
1001.5,48.0,2.62,last
`

func TestParseCSV(t *testing.T) {
	curves, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	require.Len(t, curves, 2, "unknown columns are ignored")

	gr := curves["GR"]
	require.Len(t, gr, 3, "blank cell is a gap, not a sample")
	assert.Equal(t, Sample{Depth: 1000.0, Value: 50.5}, gr[0])
	assert.Equal(t, Sample{Depth: 1001.5, Value: 48.0}, gr[2])

	dens := curves["DENS"]
	require.Len(t, dens, 3)
	assert.Equal(t, Sample{Depth: 1001.0, Value: 2.61}, dens[1])
}

func TestParseCSVDepthsSortedAndDeduped(t *testing.T) {
	csv := "depth,GR\n1002.0,70\n1000.0,50\n1000.0,55\n1001.0,60\n"
	curves, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)

	gr := curves["GR"]
	require.Len(t, gr, 3)
	assert.Equal(t, 1000.0, gr[0].Depth)
	assert.Equal(t, 55.0, gr[0].Value, "duplicate depth keeps the last row")
	assert.Equal(t, 1001.0, gr[1].Depth)
	assert.Equal(t, 1002.0, gr[2].Depth)
}

func TestParseCSVErrors(t *testing.T) {
	t.Run("missing depth column", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader("GR,DENS\n50,2.6\n"))
		require.Error(t, err)
	})
	t.Run("no known curve column", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader("depth,foo\n1000,1\n"))
		assert.ErrorIs(t, err, ErrNoCurveColumns)
	})
	t.Run("non-numeric value", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader("depth,GR\n1000,abc\n"))
		require.Error(t, err)
	})
}

func TestXLSXRoundTrip(t *testing.T) {
	curves := map[string]petro.Curve{
		"GR":   {Depths: []float64{1000, 1000.5, 1001}, Values: []float64{50, 52, 54}, Unit: "API"},
		"DENS": {Depths: []float64{1000, 1001}, Values: []float64{2.65, 2.61}, Unit: "g/cm3"},
	}

	raw, err := WriteXLSX(curves)
	require.NoError(t, err)

	parsed, err := ParseXLSX(bytes.NewReader(raw))
	require.NoError(t, err)

	require.Len(t, parsed["GR"], 3)
	require.Len(t, parsed["DENS"], 2, "gap cells must not resurface as samples")
	assert.Equal(t, Sample{Depth: 1000.5, Value: 52}, parsed["GR"][1])
	assert.Equal(t, Sample{Depth: 1001, Value: 2.61}, parsed["DENS"][1])
}
