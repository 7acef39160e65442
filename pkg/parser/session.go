package parser

import (
	"fmt"

	"github.com/cdecl-go/cdecl/pkg/decl"
)

// Session owns the declarations finalized during one parse. It keeps
// them in insertion order alongside an identifier index, enforcing
// that every stored declaration has a unique, non-empty identifier.
type Session struct {
	decls   []decl.Declaration
	indices map[string]int
}

// NewSession creates an empty parse session
func NewSession() *Session {
	return &Session{indices: make(map[string]int)}
}

// Insert validates and stores a declaration built from the given
// declaration specifier and declarator. Insertion fails with a
// SyntaxError carrying pos if the declarator has no identifier or the
// identifier is already declared; a failed insert leaves the session
// unchanged.
func (s *Session) Insert(spec decl.DeclSpec, dclr decl.Declarator, pos Pos) error {
	iden := dclr.Iden
	if iden == "" {
		return syntaxErrorf(pos, "declaration is missing identifier")
	}
	if _, ok := s.indices[iden]; ok {
		return syntaxErrorf(pos, "identifier %s redeclared", iden)
	}
	s.indices[iden] = len(s.decls)
	s.decls = append(s.decls, decl.Declaration{Spec: spec, Dclr: dclr})
	return nil
}

// InsertAll inserts one declaration per declarator, sharing the
// declaration specifier. This models comma-separated declarations
// such as `int a, *b, c[3];`. Insertion stops at the first failure.
func (s *Session) InsertAll(spec decl.DeclSpec, dclrs []decl.Declarator, pos Pos) error {
	for _, dclr := range dclrs {
		if err := s.Insert(spec, dclr, pos); err != nil {
			return err
		}
	}
	return nil
}

// Contains reports whether a declaration with the identifier exists
func (s *Session) Contains(iden string) bool {
	_, ok := s.indices[iden]
	return ok
}

// Lookup returns the declaration with the given identifier
func (s *Session) Lookup(iden string) (decl.Declaration, error) {
	i, ok := s.indices[iden]
	if !ok {
		return decl.Declaration{}, fmt.Errorf("no declaration for identifier %s", iden)
	}
	return s.decls[i], nil
}

// At returns the declaration at the given insertion index
func (s *Session) At(idx int) (decl.Declaration, error) {
	if idx < 0 || idx >= len(s.decls) {
		return decl.Declaration{}, fmt.Errorf("declaration index %d out of range [0, %d)", idx, len(s.decls))
	}
	return s.decls[idx], nil
}

// All returns the stored declarations in insertion order. The
// returned slice is owned by the session and must not be mutated.
func (s *Session) All() []decl.Declaration {
	return s.decls
}

// Len returns the number of stored declarations
func (s *Session) Len() int {
	return len(s.decls)
}

// Reset clears the declaration list and the identifier index together
// so the session can be reused for another parse
func (s *Session) Reset() {
	s.decls = nil
	s.indices = make(map[string]int)
}
