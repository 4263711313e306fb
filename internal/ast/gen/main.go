// Command gen writes the node kind catalog glue, the subset views and the
// predefined operator table of package ast from the tables in this
// directory.
//
//	go generate ./internal/ast
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
)

type kindSpec struct {
	Name    string
	Tag     string // defaults to the snake_case of Name
	Aliases []string
}

type groupSpec struct {
	Name    string
	Doc     string
	Members []string
}

type implicitSpec struct {
	Name string
	Tag  string
}

const header = `// Code generated by "go run ./gen"; DO NOT EDIT.

package ast
`

var funcs = template.FuncMap{
	"snake":  snake,
	"lower1": lower1,
	"quote":  func(s string) string { return fmt.Sprintf("%q", s) },
	"add":    func(a, b int) int { return a + b },
	"join":   strings.Join,
	"last":   func(ks []kindSpec) string { return ks[len(ks)-1].Name },
	"tag": func(k kindSpec) string {
		if k.Tag != "" {
			return k.Tag
		}
		return snake(k.Name)
	},
	"aliases": func(a []string) string {
		if len(a) == 0 {
			return "nil"
		}
		q := make([]string, len(a))
		for i, s := range a {
			q[i] = fmt.Sprintf("%q", s)
		}
		return "[]string{" + strings.Join(q, ", ") + "}"
	},
	"kinds": func(ms []string) string {
		q := make([]string, len(ms))
		for i, s := range ms {
			q[i] = "Kind" + s
		}
		return strings.Join(q, ", ")
	},
}

var kindsTmpl = template.Must(template.New("kinds").Funcs(funcs).Parse(header + `
const (
{{- range $i, $k := .}}
{{- if eq $i 0}}
	Kind{{$k.Name}} Kind = iota + 1
{{- else}}
	Kind{{$k.Name}}
{{- end}}
{{- end}}
)

const kindCount = Kind{{last .}} + 1

var kindTable = [kindCount]kindInfo{
	{},
{{- range .}}
	{ {{- quote .Name}}, {{quote (tag .)}}, {{aliases .Aliases}}, func() Node { return new({{.Name}}) }},
{{- end}}
}
{{range .}}
func (*{{.Name}}) Kind() Kind { return Kind{{.Name}} }
{{- end}}
{{range .}}
func (*{{.Name}}) node() {}
{{- end}}
`))

var subsetsTmpl = template.Must(template.New("subsets").Funcs(funcs).Parse(header + `
{{- range .}}
{{- $g := .Name}}

// {{.Doc}}
type {{$g}} interface {
	Node
	is{{$g}}()
}

// {{$g}}ID refers to a node of the {{$g}} group.
type {{$g}}ID = SubsetID[{{$g}}]

type {{lower1 $g}}Member[T any] interface {
	*T
	{{$g}}
}

// {{$g}}Of widens a member handle to a {{$g}}ID.
func {{$g}}Of[T any, PT {{lower1 $g}}Member[T]](id NodeID[T]) {{$g}}ID {
	return {{$g}}ID(id)
}

// {{$g}}As narrows a {{$g}}ID to a member handle without checking the node.
func {{$g}}As[T any, PT {{lower1 $g}}Member[T]](id {{$g}}ID) NodeID[T] {
	return NodeID[T](id)
}

// To{{$g}} converts n into the {{$g}} group.
func To{{$g}}(n Node) ({{$g}}, error) {
	if v, ok := n.({{$g}}); ok {
		return v, nil
	}
	return nil, newTryFromNodeError(n, "{{$g}}")
}
{{range .Members}}
func (*{{.}}) is{{$g}}() {}
{{- end}}
{{- end}}

var subsetGroups = []subsetGroup{
{{- range .}}
	{"{{.Name}}", []Kind{ {{- kinds .Members}}}},
{{- end}}
}
`))

var subsetsTestTmpl = template.Must(template.New("subsets_test").Funcs(funcs).Parse(header + `
import "testing"
{{range .}}
{{- $g := .Name}}
func Test{{$g}}Members(t *testing.T) {
{{- range $i, $m := .Members}}
	if got, want := {{$g}}Of(NodeID[{{$m}}]({{add $i 2}})).Generic(), NodeID[{{$m}}]({{add $i 2}}).Generic(); got != want {
		t.Errorf("{{$g}}Of({{$m}}) = %d, want %d", got, want)
	}
	if _, err := To{{$g}}(new({{$m}})); err != nil {
		t.Errorf("To{{$g}}({{$m}}): %v", err)
	}
{{- end}}
}
{{end}}`))

var implicitTmpl = template.Must(template.New("implicit").Funcs(funcs).Parse(header + `
const (
{{- range $i, $d := .}}
{{- if eq $i 0}}
	Predefined{{$d.Name}} ImplicitDefinition = iota + 1
{{- else}}
	Predefined{{$d.Name}}
{{- end}}
{{- end}}
)

var implicitDefinitionTable = [...]struct{ name, tag string }{
	{},
{{- range .}}
	{"{{.Name}}", "{{.Tag}}"},
{{- end}}
}
`))

type job struct {
	file string
	tmpl *template.Template
	data any
}

var jobs = []job{
	{"kinds_gen.go", kindsTmpl, kinds},
	{"subsets_gen.go", subsetsTmpl, groups},
	{"subsets_gen_test.go", subsetsTestTmpl, groups},
	{"implicit_gen.go", implicitTmpl, implicitDefinitions},
}

func main() {
	out := flag.String("out", ".", "output directory (package ast)")
	flag.Parse()

	for _, j := range jobs {
		src, err := j.render()
		if err == nil {
			err = os.WriteFile(filepath.Join(*out, j.file), src, 0o644) // #nosec G306 -- generated source
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "gen: %v\n", err)
			os.Exit(1)
		}
	}
}

// render executes the template and gofmts the result.
func (j job) render() ([]byte, error) {
	var buf bytes.Buffer
	if err := j.tmpl.Execute(&buf, j.data); err != nil {
		return nil, fmt.Errorf("%s: %w", j.file, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%s: format: %w", j.file, err)
	}
	return src, nil
}

func snake(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func lower1(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
