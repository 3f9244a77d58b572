package report

import (
	"bytes"
	"fmt"
	"html/template"
)

// RenderHTML produces the human-readable rendering of a document. It is
// generated on demand from the same Document the JSON view serializes,
// never cached.
func RenderHTML(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fmtPct(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", *v*100)
}

func fmtDepth(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct":   fmtPct,
	"depth": fmtDepth,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Analysis Report - {{.Well.Name}}</title>
<style>
body { font-family: 'Segoe UI', Arial, sans-serif; margin: 40px; color: #333; }
.header { background: #1a365d; color: white; padding: 30px; margin: -40px -40px 30px; }
.header h1 { margin: 0 0 10px; }
.header p { margin: 0; opacity: 0.8; }
table { width: 100%; border-collapse: collapse; margin: 20px 0; }
th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
th { background: #f0f0f0; font-weight: 600; }
.section { margin: 30px 0; }
.section h2 { color: #1a365d; border-bottom: 2px solid #1a365d; padding-bottom: 10px; }
.badge { display: inline-block; padding: 4px 12px; border-radius: 20px; font-size: 12px; }
.badge-reservoir { background: #c6f6d5; color: #276749; }
.badge-shale { background: #e2e8f0; color: #4a5568; }
.badge-other { background: #bee3f8; color: #2b6cb0; }
.recommendation { background: #fffbeb; border-left: 4px solid #d69e2e; padding: 15px; margin: 10px 0; }
.footer { margin-top: 50px; padding-top: 20px; border-top: 1px solid #ddd; color: #666; font-size: 12px; }
</style>
</head>
<body>
<div class="header">
  <h1>Petrophysical Analysis Report</h1>
  <p>Well: {{.Well.Name}}{{if .Well.Field}} | Field: {{.Well.Field}}{{end}}</p>
</div>

<div class="section">
  <h2>Well Information</h2>
  <table>
    <tr><th>Name</th><td>{{.Well.Name}}</td></tr>
    <tr><th>Field</th><td>{{if .Well.Field}}{{.Well.Field}}{{else}}-{{end}}</td></tr>
    <tr><th>Location</th><td>{{if .Well.Location}}{{.Well.Location}}{{else}}-{{end}}</td></tr>
    <tr><th>Total Depth</th><td>{{depth .Well.TotalDepth}} m</td></tr>
    <tr><th>Status</th><td>{{.Well.Status}}</td></tr>
  </table>
</div>

<div class="section">
  <h2>Data Summary</h2>
  <p><strong>Curve types:</strong> {{range $i, $t := .DataSummary.LogTypes}}{{if $i}}, {{end}}{{$t}}{{else}}none{{end}}</p>
  <p><strong>Depth range:</strong> {{depth (index .DataSummary.DepthRange 0)}} - {{depth (index .DataSummary.DepthRange 1)}} m</p>
  <p><strong>Zones analyzed:</strong> {{.DataSummary.ZonesAnalyzed}}</p>
</div>

{{if .ZoneStatistics.Porosity}}
<div class="section">
  <h2>Zone Statistics</h2>
  <table>
    <tr><th>Property</th><th>Min</th><th>Max</th><th>Mean</th></tr>
    <tr><td>Porosity</td><td>{{printf "%.3f" .ZoneStatistics.Porosity.Min}}</td><td>{{printf "%.3f" .ZoneStatistics.Porosity.Max}}</td><td>{{printf "%.3f" .ZoneStatistics.Porosity.Mean}}</td></tr>
    {{with .ZoneStatistics.PorosityEffective}}<tr><td>Effective porosity</td><td>{{printf "%.3f" .Min}}</td><td>{{printf "%.3f" .Max}}</td><td>{{printf "%.3f" .Mean}}</td></tr>{{end}}
    {{with .ZoneStatistics.SaturationWater}}<tr><td>Water saturation</td><td>{{printf "%.3f" .Min}}</td><td>{{printf "%.3f" .Max}}</td><td>{{printf "%.3f" .Mean}}</td></tr>{{end}}
  </table>
</div>
{{end}}

<div class="section">
  <h2>Zones</h2>
  <table>
    <tr><th>Interval (m)</th><th>Type</th><th>Vshale</th><th>Porosity</th><th>Phi Effective</th><th>Sw</th></tr>
    {{range .Zones}}
    <tr>
      <td>{{printf "%.1f" .DepthFrom}} - {{printf "%.1f" .DepthTo}}</td>
      <td><span class="badge badge-{{.ZoneType}}">{{.ZoneType}}</span></td>
      <td>{{pct .Vshale}}</td>
      <td>{{pct .Porosity}}</td>
      <td>{{pct .PorosityEffective}}</td>
      <td>{{pct .SaturationWater}}</td>
    </tr>
    {{end}}
  </table>
</div>

{{if .Interpretation}}
<div class="section">
  <h2>Interpretation</h2>
  {{range .Interpretation}}<p>{{.}}</p>{{end}}
</div>
{{end}}

<div class="section">
  <h2>Recommendations</h2>
  {{range .Recommendations}}<div class="recommendation">{{.}}</div>{{end}}
</div>

<div class="footer">
  <p>Report generated {{.Metadata.GeneratedAt}} | Well Analysis System</p>
</div>
</body>
</html>
`))
