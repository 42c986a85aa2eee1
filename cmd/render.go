package cmd

import (
	"fmt"
	"io"

	"github.com/flosch/pongo2"
	"github.com/spf13/viper"
)

var defaultTemplates = map[string]string{
	"hex":  "{{ hex }}",
	"int":  "{{ packed }}",
	"rgb":  "r={{ r }} g={{ g }} b={{ b }}",
	"pack": "{{ packed }}",
	"lab":  "L={{ L|floatformat:4 }} a={{ a|floatformat:4 }} b={{ b|floatformat:4 }}",
}

const referenceSuffix = " (chromath L={{ ref_L|floatformat:4 }} a={{ ref_a|floatformat:4 }} b={{ ref_b|floatformat:4 }})"

// templateFor picks the --format flag if given and the configured template
// for the command otherwise.
func templateFor(name string) string {
	if format != "" {
		return format
	}
	return viper.GetString("templates." + name)
}

// renderer renders one line per result with a template compiled once.
type renderer struct {
	tpl *pongo2.Template
	w   io.Writer
}

func newRenderer(w io.Writer, src string) (*renderer, error) {
	tpl, e := pongo2.FromString(src)
	if e != nil {
		return nil, fmt.Errorf("parse template %q: %w", src, e)
	}

	return &renderer{tpl: tpl, w: w}, nil
}

func (r *renderer) render(ctxt map[string]interface{}) error {
	o, e := r.tpl.Execute(ctxt)
	if e != nil {
		return e
	}

	_, e = fmt.Fprintln(r.w, o)
	return e
}
