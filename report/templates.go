package report

const tmplReport = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Search Relevance Report</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:'JetBrains Mono',monospace,sans-serif;background:#0d1117;color:#c9d1d9;font-size:13px;line-height:1.5;padding:16px}
h1{font-size:16px;font-weight:700;color:#f0f6fc;margin-bottom:12px}
h2{font-size:14px;font-weight:600;color:#f0f6fc;margin:0}
.meta{font-size:11px;color:#8b949e;margin-bottom:16px}
.cards{display:flex;gap:12px;flex-wrap:wrap;margin-bottom:16px}
.card{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:12px 16px;min-width:120px}
.card .val{font-size:22px;font-weight:700;color:#f0f6fc}
.card .lbl{font-size:11px;color:#8b949e;margin-top:2px}
.section{background:#161b22;border:1px solid #30363d;border-radius:6px;margin-bottom:16px;overflow:hidden}
.section-hdr{padding:10px 12px;border-bottom:1px solid #30363d;display:flex;gap:12px;align-items:center;flex-wrap:wrap;background:#0d1117}
.section-stats{font-size:11px;color:#8b949e}
table{width:100%;border-collapse:collapse;font-size:12px}
th{text-align:left;padding:6px 10px;border-bottom:1px solid #30363d;color:#8b949e;font-weight:600;font-size:11px;text-transform:uppercase;letter-spacing:.05em}
td{padding:5px 10px;border-bottom:1px solid #21262d;vertical-align:top}
tr:hover td{background:#161b22}
.badge{display:inline-block;padding:1px 8px;border-radius:10px;font-size:10px;font-weight:600;color:#0d1117}
.tier-excellent{background:#56d364}
.tier-good{background:#58a6ff}
.tier-moderate{background:#f59e0b}
.tier-poor{background:#f87171}
.ok{color:#56d364}
.err{color:#f87171}
.dim{color:#8b949e}
.desc{font-size:11px;color:#8b949e;max-width:420px}
.desc dt{color:#c9d1d9;font-weight:600;display:inline}
.desc dd{display:inline;margin:0 8px 0 4px}
</style>
</head>
<body>
<h1>Search Relevance Report</h1>
<div class="meta">Generated {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</div>

<div class="cards">
<div class="card"><div class="val">{{.Overview.TotalQueries}}</div><div class="lbl">Total Queries</div></div>
<div class="card"><div class="val">{{if .Overview.HasQueries}}{{pct1 .Overview.AvgRelevance}}{{else}}&ndash;{{end}}</div><div class="lbl">Avg Relevance</div></div>
<div class="card"><div class="val">{{.Overview.TotalRelevant}} / {{.Overview.TotalResults}}</div><div class="lbl">Relevant / Total Results</div></div>
<div class="card"><div class="val">{{.Overview.PerfectQueries}}</div><div class="lbl">Perfect (100%)</div></div>
<div class="card"><div class="val">{{.Overview.GoodQueries}}</div><div class="lbl">Good (80&ndash;99%)</div></div>
<div class="card"><div class="val">{{.Overview.ModerateQueries}}</div><div class="lbl">Moderate (50&ndash;79%)</div></div>
<div class="card"><div class="val">{{.Overview.PoorQueries}}</div><div class="lbl">Poor (&lt;50%)</div></div>
</div>

{{range .Queries}}
<div class="section">
<div class="section-hdr">
<h2>{{.Summary.Query}}</h2>
<span class="badge {{tierClass .Tier}}">{{.Tier}}</span>
<span class="section-stats">
{{pct1 .Summary.RelevanceRate}} relevance &middot;
{{.Summary.RelevantCount}}/{{.Summary.TotalResults}} relevant &middot;
{{pct1 .Summary.AvgConfidence}} avg confidence
</span>
</div>
<table>
<tr><th>Product</th><th>Class</th><th>Score</th><th>Relevant</th><th>Pos</th><th>Conf</th><th>Description</th></tr>
{{range .Results}}
<tr>
<td>{{.ProductName}}</td>
<td class="dim">{{.ProductClass}}</td>
<td>{{score .Score}}</td>
<td>{{if .IsRelevant}}<span class="ok">Relevant</span>{{else}}<span class="err">Not Relevant</span>{{end}}</td>
<td class="dim">{{.Position}}</td>
<td class="dim">{{pct0 .Confidence}}</td>
<td class="desc">
{{- if .DescriptionFailed -}}
<em>Error loading product details</em>
{{- else if .Description.IsPlain -}}
{{.Description.Text}}
{{- else if .Description.IsStructured -}}
<dl>
<dt>Name:</dt><dd>{{.Description.Details.Name}}</dd>
<dt>Class:</dt><dd>{{.Description.Details.Class}}</dd>
<dt>Price:</dt><dd>{{.Description.Details.Price}}</dd>
<dt>Brand:</dt><dd>{{.Description.Details.Brand}}</dd>
<dt>Description:</dt><dd>{{.Description.Details.Description}}</dd>
</dl>
{{- else -}}
<em>No detailed description available</em>
{{- end -}}
</td>
</tr>
{{end}}
</table>
</div>
{{end}}
</body>
</html>
`
