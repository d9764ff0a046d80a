package server

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Unit Converter</title>
</head>
<body>
<h1>Unit Converter</h1>
<form method="get" action="/">
  <label>Category
    <select name="category" onchange="this.form.submit()">
    {{- range .Categories}}
      <option value="{{.}}"{{if eq . $.Category}} selected{{end}}>{{.}}</option>
    {{- end}}
    </select>
  </label>
  <label>From Unit
    <select name="from">
    {{- range .Units}}
      <option value="{{.}}"{{if eq . $.From}} selected{{end}}>{{.}}</option>
    {{- end}}
    </select>
  </label>
  <label>To Unit
    <select name="to">
    {{- range .Units}}
      <option value="{{.}}"{{if eq . $.To}} selected{{end}}>{{.}}</option>
    {{- end}}
    </select>
  </label>
  <label>Enter Value <input type="number" name="value" step="any" value="{{.Value}}"></label>
  <button type="submit" name="convert" value="1">Convert</button>
</form>
{{- if .Result}}
<div class="result">Result: {{.Result}}</div>
{{- end}}
{{- if .Error}}
<div class="error">Error: {{.Error}}</div>
{{- end}}
</body>
</html>
`
