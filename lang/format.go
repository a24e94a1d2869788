package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/cykscope/lang/cyk"
	"github.com/ardnew/cykscope/lang/scope"
	"github.com/ardnew/cykscope/lang/tree"
)

// Report is the serializable form of a [Result].
type Report struct {
	Case     int             `json:"case,omitempty"     yaml:"case,omitempty"`
	Input    string          `json:"input"              yaml:"input"`
	Tokens   []string        `json:"tokens"             yaml:"tokens"`
	Accepted bool            `json:"accepted"           yaml:"accepted"`
	Free     []string        `json:"free"               yaml:"free"`
	Bindings []scope.Binding `json:"bindings,omitempty" yaml:"bindings,omitempty"`
	Tree     *tree.Export    `json:"tree,omitempty"     yaml:"tree,omitempty"`
	Table    []cyk.Entry     `json:"table,omitempty"    yaml:"table,omitempty"`
}

// Report returns the serializable form of r as case k. A k of 0 omits the
// case number. Retained trees and tables are included.
func (r *Result) Report(k int) Report {
	rep := Report{
		Case:     k,
		Input:    r.Input,
		Tokens:   r.Tokens,
		Accepted: r.Accepted,
		Free:     r.Free,
		Bindings: r.Bindings(),
		Tree:     r.Tree.Export(),
	}

	if rep.Tokens == nil {
		rep.Tokens = []string{}
	}

	if r.Table != nil {
		rep.Table = r.Table.Entries()
	}

	return rep
}

// FormatJSON writes v as JSON to w, indented by indent spaces if positive.
func FormatJSON(_ context.Context, w io.Writer, v any, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes v as YAML to w, in block style indented by indent
// spaces if positive and in flow style otherwise.
func FormatYAML(ctx context.Context, w io.Writer, v any, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, v, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}
