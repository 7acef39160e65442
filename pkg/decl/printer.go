package decl

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Anonymous is the identifier placeholder rendered for abstract
// declarators.
const Anonymous = "<anonymous>"

// SuffixPhrase returns the English phrase for a declarator suffix,
// including its trailing connector word
func SuffixPhrase(s Suffix) string {
	switch s := s.(type) {
	case ArraySuffix:
		if s.Size > 0 {
			return "array[" + strconv.FormatUint(s.Size, 10) + "] of"
		}
		return "array[] of"
	case PointerRun:
		parts := make([]string, 0, len(s.Quals))
		for _, q := range s.Quals {
			if qual := q.String(); qual != "" {
				parts = append(parts, qual+" pointer to")
			} else {
				parts = append(parts, "pointer to")
			}
		}
		return strings.Join(parts, " ")
	case ParamList:
		var b strings.Builder
		b.WriteString("function (")
		for i, param := range s.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(param.String())
		}
		if s.Variadic {
			b.WriteString(", ...")
		}
		b.WriteString(") returning")
		return b.String()
	}
	panic(fmt.Sprintf("decl: unknown declarator suffix %T", s))
}

// Phrase returns the space-joined suffix phrases of the declarator,
// without the identifier
func (d Declarator) Phrase() string {
	phrases := make([]string, len(d.Suffixes))
	for i, s := range d.Suffixes {
		phrases[i] = SuffixPhrase(s)
	}
	return strings.Join(phrases, " ")
}

// String renders the declarator: the identifier (with a colon) when
// present, followed by the suffix phrases
func (d Declarator) String() string {
	phrase := d.Phrase()
	if d.Iden == "" {
		return phrase
	}
	if phrase == "" {
		return d.Iden + ":"
	}
	return d.Iden + ": " + phrase
}

// String renders the parameter: its declarator, when present,
// followed by its qualified type
func (p Param) String() string {
	if p.Dclr == nil {
		return p.Type.String()
	}
	if dclr := p.Dclr.String(); dclr != "" {
		return dclr + " " + p.Type.String()
	}
	return p.Type.String()
}

// String renders the declaration as a single explanation line of the
// form `<identifier>: <suffix phrases> <decl spec>`. A declaration
// with no suffixes keeps the empty middle field.
func (d Declaration) String() string {
	iden := d.Dclr.Iden
	if iden == "" {
		iden = Anonymous
	}
	return fmt.Sprintf("%s: %s %s", iden, d.Dclr.Phrase(), d.Spec)
}

// Printer writes declaration explanations to an output stream
type Printer struct {
	w io.Writer
}

// NewPrinter creates a new declaration printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintDeclaration writes one declaration explanation line
func (p *Printer) PrintDeclaration(d Declaration) {
	fmt.Fprintln(p.w, d.String())
}

// PrintAll writes one explanation line per declaration, in order
func (p *Printer) PrintAll(decls []Declaration) {
	for _, d := range decls {
		p.PrintDeclaration(d)
	}
}
