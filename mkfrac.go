//go:build ignore

// mkfrac generates frac.go, the fraction width selectors F1 to F64.
// Run it with "go generate".
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

var fracTemplate = `// Code generated by "go run mkfrac.go"; DO NOT EDIT.

package fixed
{{ range . }}
// F{{ .Bits }} selects {{ .Bits }} fraction {{ if eq .Bits 1 }}bit{{ else }}bits{{ end }}.
type F{{ .Bits }}[B {{ .Bases }}] struct{}

func (F{{ .Bits }}[B]) fraction(B) uint { return {{ .Bits }} }
{{ end }}`

type fracType struct {
	Bits  uint
	Bases string
}

// bases lists the base types that can hold n fraction bits.
// A signed base keeps at least one integral bit for the sign.
func bases(n uint) string {
	var list []string
	for _, w := range []uint{8, 16, 32, 64} {
		if n <= w-1 {
			list = append(list, fmt.Sprintf("~int%d", w))
		}
	}
	for _, w := range []uint{8, 16, 32, 64} {
		if n <= w {
			list = append(list, fmt.Sprintf("~uint%d", w))
		}
	}
	return strings.Join(list, " | ")
}

func main() {
	log.Default().SetFlags(log.Lshortfile)

	types := make([]fracType, 0, 64)
	for n := uint(1); n <= 64; n++ {
		types = append(types, fracType{Bits: n, Bases: bases(n)})
	}

	tmpl, err := template.New("fracTemplate").Parse(fracTemplate)
	if err != nil {
		log.Fatalln(err)
	}
	source := bytes.NewBuffer(nil)
	err = tmpl.Execute(source, types)
	if err != nil {
		log.Fatalln(err)
	}

	formattedSource, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	err = os.WriteFile("frac.go", formattedSource, 0o644)
	if err != nil {
		log.Fatalln(err)
	}
}
