// Package logfile reads and writes the bulk curve interchange format:
// header row `depth,<TYPE>[,<TYPE>...]`, one row per depth sample. A
// blank cell is a gap for that curve at that depth, not a parse error.
// CSV and XLSX carry the identical layout, so an export round-trips
// through import.
package logfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"petrolog/entities"
	"petrolog/pkg/petro"
)

type Sample struct {
	Depth float64
	Value float64
}

var ErrNoCurveColumns = errors.New("no known curve column found")

// ParseCSV decodes the CSV layout into per-type sample sets, each sorted
// by depth. Unknown columns are ignored; a duplicate depth within one
// curve keeps the last occurrence.
func ParseCSV(r io.Reader) (map[string][]Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	depthCol, typeCols, err := mapHeader(head)
	if err != nil {
		return nil, err
	}

	byType := map[string]map[float64]float64{}
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if err := collectRow(rec, depthCol, typeCols, byType); err != nil {
			return nil, err
		}
	}
	return finish(byType), nil
}

// ParseXLSX decodes the same layout from the first sheet of a workbook.
func ParseXLSX(r io.Reader) (map[string][]Sample, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty sheet")
	}
	depthCol, typeCols, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	byType := map[string]map[float64]float64{}
	for _, rec := range rows[1:] {
		if err := collectRow(rec, depthCol, typeCols, byType); err != nil {
			return nil, err
		}
	}
	return finish(byType), nil
}

func mapHeader(head []string) (depthCol int, typeCols map[int]string, err error) {
	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		return s
	}
	depthCol = -1
	typeCols = map[int]string{}
	for i, h := range head {
		name := norm(h)
		if strings.EqualFold(name, "depth") {
			depthCol = i
			continue
		}
		t := strings.ToUpper(name)
		if entities.LogTypeKnown(t) {
			typeCols[i] = t
		}
	}
	if depthCol == -1 {
		return 0, nil, errors.New(`column "depth" is required`)
	}
	if len(typeCols) == 0 {
		return 0, nil, ErrNoCurveColumns
	}
	return depthCol, typeCols, nil
}

func collectRow(rec []string, depthCol int, typeCols map[int]string, byType map[string]map[float64]float64) error {
	get := func(idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}

	ds := get(depthCol)
	if ds == "" {
		return nil // blank line
	}
	depth, err := strconv.ParseFloat(ds, 64)
	if err != nil {
		return fmt.Errorf("bad depth %q", ds)
	}

	for idx, t := range typeCols {
		cell := get(idx)
		if cell == "" {
			continue // gap, not an error
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return fmt.Errorf("bad %s value %q at depth %s", t, cell, ds)
		}
		if byType[t] == nil {
			byType[t] = map[float64]float64{}
		}
		byType[t][depth] = v
	}
	return nil
}

func finish(byType map[string]map[float64]float64) map[string][]Sample {
	out := map[string][]Sample{}
	for t, m := range byType {
		samples := make([]Sample, 0, len(m))
		for d, v := range m {
			samples = append(samples, Sample{Depth: d, Value: v})
		}
		sort.Slice(samples, func(i, j int) bool { return samples[i].Depth < samples[j].Depth })
		out[t] = samples
	}
	return out
}

// WriteXLSX renders curves back into the import layout: one depth column
// over the union of sampled depths, one column per type, blanks for
// gaps.
func WriteXLSX(curves map[string]petro.Curve) ([]byte, error) {
	types := make([]string, 0, len(curves))
	for t := range curves {
		types = append(types, t)
	}
	sort.Strings(types)

	depthSet := map[float64]struct{}{}
	valueAt := map[string]map[float64]float64{}
	for t, c := range curves {
		valueAt[t] = map[float64]float64{}
		for i, d := range c.Depths {
			depthSet[d] = struct{}{}
			valueAt[t][d] = c.Values[i]
		}
	}
	depths := make([]float64, 0, len(depthSet))
	for d := range depthSet {
		depths = append(depths, d)
	}
	sort.Float64s(depths)

	x := excelize.NewFile()
	defer x.Close()
	sheet := x.GetSheetName(0)

	header := make([]any, 0, len(types)+1)
	header = append(header, "depth")
	for _, t := range types {
		header = append(header, t)
	}
	if err := x.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, d := range depths {
		row := make([]any, 0, len(types)+1)
		row = append(row, d)
		for _, t := range types {
			if v, ok := valueAt[t][d]; ok {
				row = append(row, v)
			} else {
				row = append(row, nil)
			}
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := x.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := x.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
