package poll

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

var summaryTmpl *template.Template

func init() {
	summaryTmpl = template.Must(template.New("summary.tmpl").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templates, "templates/summary.tmpl"))
}

// Summary holds the data for the closing announcement.
type Summary struct {
	Question string
	Options  []SummaryOption
}

// SummaryOption is one option line: its final label, voter count and the
// voter labels in vote-arrival order.
type SummaryOption struct {
	Label string
	Count int
	Names []string
}

// RenderSummary renders the closing announcement text.
func RenderSummary(s *Summary) (string, error) {
	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}
