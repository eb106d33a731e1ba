package canvas

import (
	"bytes"
	"html/template"
	"io"

	svgo "github.com/ajstarks/svgo"
)

// Page describes the HTML page wrapped around the chart.
type Page struct {
	Title    string
	Subtitle string
	Buttons  []Button
}

// Button is a period button shown above the chart.
type Button struct {
	ID       string
	Label    string
	Selected bool
}

// The script shows the hovered mark's title in the details panel and hides it on leave.
var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{font-family:sans-serif;margin:24px;color:#222}
.controls{margin-bottom:12px}
.controls button{margin-right:6px;padding:4px 10px;border:1px solid #888;background:#fff;border-radius:4px}
.controls button.selected{background:#1f3bd1;color:#fff;border-color:#1f3bd1}
#details{position:absolute;display:none;background:#fff;border:1px solid #999;border-radius:4px;padding:8px;font-size:12px;white-space:pre;pointer-events:none}
g.mark:hover circle{stroke:#000;stroke-width:1.5}
</style>
</head>
<body>
<h2>{{.Title}}</h2>
{{- if .Subtitle}}
<p>{{.Subtitle}}</p>
{{- end}}
{{- if .Buttons}}
<div class="controls">
{{- range .Buttons}}<button id="{{.ID}}"{{if .Selected}} class="selected"{{end}} disabled>{{.Label}}</button>{{end -}}
</div>
{{- end}}
{{.Chart}}
<div id="details"></div>
<script>
(function(){
  var panel = document.getElementById('details');
  document.querySelectorAll('g.mark').forEach(function(g){
    var title = g.querySelector('title');
    var text = title ? title.textContent : '';
    g.addEventListener('mouseenter', function(e){
      panel.textContent = text;
      panel.style.display = 'block';
      panel.style.left = (e.pageX + 12) + 'px';
      panel.style.top = (e.pageY + 12) + 'px';
    });
    g.addEventListener('mouseleave', function(){ panel.style.display = 'none'; });
  });
})();
</script>
</body>
</html>
`))

// WriteHTML writes a page embedding the SVG with a hover details panel.
func (s *SVG) WriteHTML(w io.Writer, page Page) error {
	if !s.open {
		return ErrNoCanvas
	}
	var chart bytes.Buffer
	s.render(svgo.New(&chart))
	// Inline SVG drops the XML declaration.
	markup := chart.Bytes()
	if i := bytes.Index(markup, []byte("<svg")); i > 0 {
		markup = markup[i:]
	}
	return pageTemplate.Execute(w, struct {
		Page
		Chart template.HTML
	}{page, template.HTML(markup)})
}
