// Package gen renders the BigArray length constraint.
//
// Go generics cannot abstract over an array length, so a function accepting
// [N]T for several N needs a union constraint listing each N. The slice-based
// codec covers every length; the generated constraint only serves callers that
// want to pass Go arrays directly.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"strconv"
	"strings"
	"text/template"
)

var fileTmpl = template.Must(template.New("lengths").Funcs(template.FuncMap{
	"join":  joinInts,
	"union": unionTerms,
}).Parse(`// Code generated by bigarraygen. DO NOT EDIT.

package {{.Package}}

// {{.Name}} is satisfied by arrays of T with one of the lengths
// {{join .Lengths}}.
type {{.Name}}[T any] interface {
	{{union .Lengths}}
}
`))

type tmplData struct {
	Package string
	Name    string
	Lengths []int
}

// Generate renders the gofmt-ed source for cfg.
func Generate(cfg Config) ([]byte, error) {
	if !token.IsIdentifier(cfg.Package) {
		return nil, fmt.Errorf("%w: package name %q", ErrBadConfig, cfg.Package)
	}
	if !token.IsIdentifier(cfg.Name) {
		return nil, fmt.Errorf("%w: constraint name %q", ErrBadConfig, cfg.Name)
	}
	lengths, err := cfg.Resolved()
	if err != nil {
		return nil, err
	}
	if len(lengths) == 0 {
		return nil, fmt.Errorf("%w: no lengths", ErrBadConfig)
	}

	var buf bytes.Buffer
	err = fileTmpl.Execute(&buf, tmplData{
		Package: cfg.Package,
		Name:    cfg.Name,
		Lengths: lengths,
	})
	if err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format output: %w", err)
	}
	return src, nil
}

// Write generates cfg and writes it to cfg.Output.
func Write(cfg Config) error {
	if cfg.Output == "" {
		return fmt.Errorf("%w: empty output path", ErrBadConfig)
	}
	src, err := Generate(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(cfg.Output, src, 0o644)
}

// unionTerms renders one ~[L]T term per line; '|' ends a line so no semicolon is
// inserted between terms.
func unionTerms(ls []int) string {
	var b strings.Builder
	for i, l := range ls {
		if i > 0 {
			b.WriteString(" |\n\t\t")
		}
		fmt.Fprintf(&b, "~[%d]T", l)
	}
	return b.String()
}

func joinInts(ls []int) string {
	parts := make([]string, len(ls))
	for i, l := range ls {
		parts[i] = strconv.Itoa(l)
	}
	return strings.Join(parts, ", ")
}
