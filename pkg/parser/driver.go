package parser

import (
	"io"
	"os"

	"github.com/cdecl-go/cdecl/pkg/decl"
	"github.com/cdecl-go/cdecl/pkg/lexer"
)

// Driver runs whole parse invocations and holds their results. It is
// reusable: every Parse call resets the session before reading input,
// so a failed parse never leaks partial results into the next one.
type Driver struct {
	sess    *Session
	lastErr string
}

// NewDriver creates a Driver with an empty session
func NewDriver() *Driver {
	return &Driver{sess: NewSession()}
}

// Parse parses the input to completion, reporting success. On failure
// the first error is available from LastError and the partial results
// are discarded.
func (d *Driver) Parse(input string) bool {
	d.sess.Reset()
	d.lastErr = ""

	p := New(lexer.New(input), d.sess)
	if !p.ParseDeclarations() {
		if errs := p.Errors(); len(errs) > 0 {
			d.lastErr = errs[0]
		}
		d.sess.Reset()
		return false
	}
	return true
}

// ParseFile reads the named file and parses its contents. An empty
// path or "-" reads stdin.
func (d *Driver) ParseFile(path string) bool {
	var content []byte
	var err error
	if path == "" || path == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		d.lastErr = err.Error()
		return false
	}
	return d.Parse(string(content))
}

// LastError returns the error message from the most recent failed
// parse, or the empty string after a success
func (d *Driver) LastError() string {
	return d.lastErr
}

// Results returns the parsed declarations in the order they appeared
func (d *Driver) Results() []decl.Declaration {
	return d.sess.All()
}

// NumResults returns the number of parsed declarations
func (d *Driver) NumResults() int {
	return d.sess.Len()
}

// Contains reports whether a declaration with the identifier was parsed
func (d *Driver) Contains(iden string) bool {
	return d.sess.Contains(iden)
}

// Result looks up a parsed declaration by identifier
func (d *Driver) Result(iden string) (decl.Declaration, error) {
	return d.sess.Lookup(iden)
}

// ResultAt looks up a parsed declaration by position
func (d *Driver) ResultAt(idx int) (decl.Declaration, error) {
	return d.sess.At(idx)
}
