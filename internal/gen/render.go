// Package gen renders the generated contract files from a registry
// ContractSpec: the registry contract table (contracts_gen.go) and the root
// package's version tag types (contract_tags_gen.go).
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/schemadrift/dbtartifacts/registry"
)

const header = "// Code generated by dbt-artifacts gen from %s. DO NOT EDIT.\n\n"

var contractsTmpl = template.Must(template.New("contracts").Parse(`package registry

var contracts = []Contract{
{{- range .Contracts}}
	{Category: {{printf "%q" .Category}}, Version: {{.Version}}, SchemaURL: {{printf "%q" .SchemaURL}}},
{{- end}}
}
`))

var tagsTmpl = template.Must(template.New("tags").Parse(`package {{.Package}}

import "strconv"

{{range .Categories}}const {{.ConstName}} = {{.MaxVersion}}

{{$c := .}}{{range .Versions}}// {{$c.GoName}}V{{.}} is a {{$c.Segment}}.json relabelled as schema version {{.}}.
type {{$c.GoName}}V{{.}} map[string]any

func (a {{$c.GoName}}V{{.}}) SchemaVersion() int { return {{.}} }

func (a {{$c.GoName}}V{{.}}) Raw() map[string]any { return a }

func ({{$c.GoName}}V{{.}}) {{$c.Marker}}() {}

{{end}}func tag{{.GoName}}(raw map[string]any, version int) {{.GoName}} {
	switch version {
{{- range .Versions}}
	case {{.}}:
		return {{$c.GoName}}V{{.}}(raw)
{{- end}}
	default:
		panic("{{$.Package}}: no {{.Name}} contract for version " + strconv.Itoa(version))
	}
}

{{end}}`))

type tagCategory struct {
	Name       string
	GoName     string
	Marker     string
	Segment    string
	ConstName  string
	MaxVersion int
	Versions   []int
}

// RenderContracts renders the registry contract table. source names the YAML
// manifest the output was produced from and only appears in the header.
func RenderContracts(spec *registry.ContractSpec, source string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, header, source)
	if err := contractsTmpl.Execute(&buf, struct{ Contracts []registry.Contract }{spec.Contracts()}); err != nil {
		return nil, fmt.Errorf("gen: render contracts: %w", err)
	}
	return gofmt(buf.Bytes())
}

// RenderTags renders the root package's contract tag types and selectors.
func RenderTags(pkg string, spec *registry.ContractSpec, source string) ([]byte, error) {
	data := struct {
		Package    string
		Categories []tagCategory
	}{Package: pkg}
	for _, c := range spec.Categories {
		tc := tagCategory{
			Name:       c.Name,
			GoName:     c.GoName,
			Marker:     lowerFirst(c.GoName),
			Segment:    c.WireSegment,
			ConstName:  lowerFirst(c.GoName) + "MaxVersion",
			MaxVersion: c.MaxVersion,
		}
		for v := 1; v <= c.MaxVersion; v++ {
			tc.Versions = append(tc.Versions, v)
		}
		data.Categories = append(data.Categories, tc)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, header, source)
	if err := tagsTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("gen: render tags: %w", err)
	}
	return gofmt(buf.Bytes())
}

func gofmt(src []byte) ([]byte, error) {
	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("gen: format output: %w", err)
	}
	return out, nil
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}
