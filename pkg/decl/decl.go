package decl

// Suffix is the interface for the three declarator suffix variants:
// array sizes, pointer runs, and function parameter lists. Consumers
// dispatch with an exhaustive type switch.
type Suffix interface {
	implSuffix()
}

// ArraySuffix is an array-size declarator suffix. Size 0 means the
// array is unsized, as in `int a[];`.
type ArraySuffix struct {
	Size uint64
}

// PointerRun is a run of pointers, one qualifier per `*`, ordered
// outermost first (the order the run is spoken in).
type PointerRun struct {
	Quals []Qualifier
}

// Append adds a pointer level to the end of the run
func (p *PointerRun) Append(q Qualifier) {
	p.Quals = append(p.Quals, q)
}

// Prepend adds a pointer level to the front of the run
func (p *PointerRun) Prepend(q Qualifier) {
	p.Quals = append([]Qualifier{q}, p.Quals...)
}

// Param is a function parameter: a qualified type with an optional
// declarator. Dclr is nil for an unnamed simple-type parameter, and
// is exclusively owned by the parameter when present.
type Param struct {
	Type QualifiedType
	Dclr *Declarator
}

// NewParam returns a parameter with no declarator
func NewParam(typ QualifiedType) Param {
	return Param{Type: typ}
}

// NewParamDclr returns a parameter with a declarator, which may be
// abstract (no identifier)
func NewParamDclr(typ QualifiedType, dclr Declarator) Param {
	return Param{Type: typ, Dclr: &dclr}
}

// ParamList is an ordered function parameter list with a variadic flag
type ParamList struct {
	Params   []Param
	Variadic bool
}

// Append adds a parameter, preserving source order
func (p *ParamList) Append(param Param) {
	p.Params = append(p.Params, param)
}

// SetVariadic marks the parameter list as ending in `...` and returns
// the previous value of the flag
func (p *ParamList) SetVariadic(v bool) bool {
	old := p.Variadic
	p.Variadic = v
	return old
}

// Len returns the number of parameters
func (p *ParamList) Len() int {
	return len(p.Params)
}

// Marker methods for the Suffix interface
func (ArraySuffix) implSuffix() {}
func (PointerRun) implSuffix()  {}
func (ParamList) implSuffix()   {}

// Declarator is an identifier plus an ordered sequence of suffixes.
// The identifier is empty for abstract declarators. Suffix order is
// the order the suffixes are spoken in, left to right, immediately
// after the identifier.
type Declarator struct {
	Iden     string
	Suffixes []Suffix
}

// NewDeclarator returns a declarator with the given identifier, which
// may be empty for abstract declarators
func NewDeclarator(iden string) Declarator {
	return Declarator{Iden: iden}
}

// Append adds a suffix after everything already accumulated
func (d *Declarator) Append(s Suffix) {
	d.Suffixes = append(d.Suffixes, s)
}

// Prepend inserts a suffix before everything already accumulated
func (d *Declarator) Prepend(s Suffix) {
	d.Suffixes = append([]Suffix{s}, d.Suffixes...)
}

// Abstract reports whether the declarator has no identifier
func (d *Declarator) Abstract() bool {
	return d.Iden == ""
}

// Declaration is a complete C declaration: a declaration specifier
// and a declarator
type Declaration struct {
	Spec DeclSpec
	Dclr Declarator
}

// Iden returns the declared identifier
func (d Declaration) Iden() string {
	return d.Dclr.Iden
}
