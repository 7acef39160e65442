// Package parser implements a recursive descent parser for simplified
// C declarations. Parsed declarations are validated and stored in a
// Session; the parse aborts on the first error of any kind.
package parser

import (
	"fmt"
	"strconv"

	"github.com/cdecl-go/cdecl/pkg/decl"
	"github.com/cdecl-go/cdecl/pkg/lexer"
)

// Parser parses C declaration input into decl values
type Parser struct {
	l         *lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token
	errors    []string
	sess      *Session
}

// New creates a new Parser feeding the given session
func New(l *lexer.Lexer, sess *Session) *Parser {
	p := &Parser{l: l, sess: sess}
	// Read two tokens to initialize curToken and peekToken
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// Errors returns the list of parsing errors
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, fmt.Sprintf("line %d, col %d: %s",
		p.curToken.Line, p.curToken.Column, msg))
}

func (p *Parser) curPos() Pos {
	return Pos{Line: p.curToken.Line, Column: p.curToken.Column}
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) expect(t lexer.TokenType) bool {
	if p.curTokenIs(t) {
		p.nextToken()
		return true
	}
	p.addError(fmt.Sprintf("expected %s, got %s", t, p.curToken.Type))
	return false
}

// ParseDeclarations parses declarations until EOF, inserting each into
// the session. It stops at the first error and reports success.
func (p *Parser) ParseDeclarations() bool {
	for !p.curTokenIs(lexer.TokenEOF) {
		if !p.parseDeclaration() {
			return false
		}
	}
	return true
}

// parseDeclaration parses `decl-specs init-dclrs ';'` and inserts one
// declaration per declarator
func (p *Parser) parseDeclaration() bool {
	spec, ok := p.parseDeclSpec()
	if !ok {
		return false
	}

	dclrs := []decl.Declarator{}
	for {
		dclr, ok := p.parseDeclarator()
		if !ok {
			return false
		}
		dclrs = append(dclrs, dclr)
		if !p.curTokenIs(lexer.TokenComma) {
			break
		}
		p.nextToken() // consume ','
	}

	pos := p.curPos()
	if !p.expect(lexer.TokenSemicolon) {
		return false
	}

	if err := p.sess.InsertAll(spec, dclrs, pos); err != nil {
		p.errors = append(p.errors, err.Error())
		return false
	}
	return true
}

// parseDeclSpec parses the storage class and qualified type ahead of
// the declarators. Storage and qualifier keywords may appear in any
// order before the type; qualifiers may also trail it.
func (p *Parser) parseDeclSpec() (decl.DeclSpec, bool) {
	storage := decl.StorageInvalid
	var hasConst, hasVolatile bool

loop:
	for {
		switch p.curToken.Type {
		case lexer.TokenAuto, lexer.TokenExtern, lexer.TokenRegister, lexer.TokenStatic:
			if storage != decl.StorageInvalid {
				p.addError("multiple storage classes in declaration")
				return decl.DeclSpec{}, false
			}
			storage = storageClassOf(p.curToken.Type)
			p.nextToken()
		case lexer.TokenConst:
			if hasConst {
				p.addError("duplicate const qualifier")
				return decl.DeclSpec{}, false
			}
			hasConst = true
			p.nextToken()
		case lexer.TokenVolatile:
			if hasVolatile {
				p.addError("duplicate volatile qualifier")
				return decl.DeclSpec{}, false
			}
			hasVolatile = true
			p.nextToken()
		default:
			break loop
		}
	}

	spec, ok := p.parseTypeSpec()
	if !ok {
		return decl.DeclSpec{}, false
	}

	// trailing qualifiers, e.g. `int const x`
	if !p.parseQualifiers(&hasConst, &hasVolatile) {
		return decl.DeclSpec{}, false
	}

	if storage == decl.StorageInvalid {
		storage = decl.StorageAuto
	}
	qt := decl.QualifiedType{Qual: qualifierOf(hasConst, hasVolatile), Spec: spec}
	return decl.DeclSpec{Storage: storage, Type: qt}, true
}

// parseQualifiedType parses `{qualifier} type-spec {qualifier}` for
// function parameters, where no storage class is allowed
func (p *Parser) parseQualifiedType() (decl.QualifiedType, bool) {
	var hasConst, hasVolatile bool
	if !p.parseQualifiers(&hasConst, &hasVolatile) {
		return decl.QualifiedType{}, false
	}
	spec, ok := p.parseTypeSpec()
	if !ok {
		return decl.QualifiedType{}, false
	}
	if !p.parseQualifiers(&hasConst, &hasVolatile) {
		return decl.QualifiedType{}, false
	}
	return decl.QualifiedType{Qual: qualifierOf(hasConst, hasVolatile), Spec: spec}, true
}

func (p *Parser) parseQualifiers(hasConst, hasVolatile *bool) bool {
	for {
		switch p.curToken.Type {
		case lexer.TokenConst:
			if *hasConst {
				p.addError("duplicate const qualifier")
				return false
			}
			*hasConst = true
			p.nextToken()
		case lexer.TokenVolatile:
			if *hasVolatile {
				p.addError("duplicate volatile qualifier")
				return false
			}
			*hasVolatile = true
			p.nextToken()
		default:
			return true
		}
	}
}

func storageClassOf(t lexer.TokenType) decl.StorageClass {
	switch t {
	case lexer.TokenAuto:
		return decl.StorageAuto
	case lexer.TokenExtern:
		return decl.StorageExtern
	case lexer.TokenRegister:
		return decl.StorageRegister
	case lexer.TokenStatic:
		return decl.StorageStatic
	}
	return decl.StorageInvalid
}

func qualifierOf(hasConst, hasVolatile bool) decl.Qualifier {
	switch {
	case hasConst && hasVolatile:
		return decl.QualConstVolatile
	case hasConst:
		return decl.QualConst
	case hasVolatile:
		return decl.QualVolatile
	}
	return decl.QualNone
}

// parseTypeSpec parses a type specifier: a builtin type spelled with
// one or more keywords, `struct`/`enum` followed by a tag, or a lone
// identifier read as a typedef name.
func (p *Parser) parseTypeSpec() (decl.TypeSpec, bool) {
	switch p.curToken.Type {
	case lexer.TokenStruct, lexer.TokenEnum:
		base := decl.BaseStruct
		if p.curTokenIs(lexer.TokenEnum) {
			base = decl.BaseEnum
		}
		keyword := p.curToken.Literal
		p.nextToken()
		if !p.curTokenIs(lexer.TokenIdent) {
			p.addError(fmt.Sprintf("expected %s tag, got %s", keyword, p.curToken.Type))
			return decl.TypeSpec{}, false
		}
		iden := p.curToken.Literal
		p.nextToken()
		return decl.NewNamedTypeSpec(base, iden), true
	case lexer.TokenIdent:
		iden := p.curToken.Literal
		p.nextToken()
		return decl.NewNamedTypeSpec(decl.BaseTypedef, iden), true
	}
	return p.parseBuiltinTypeSpec()
}

// parseBuiltinTypeSpec resolves multiword builtin spellings such as
// `unsigned long` or `long double` to a single base type
func (p *Parser) parseBuiltinTypeSpec() (decl.TypeSpec, bool) {
	const (
		signNone = iota
		signSigned
		signUnsigned
	)
	sign := signNone
	var seenVoid, seenChar, seenShort, seenInt, seenFloat, seenDouble bool
	longCount := 0
	words := 0

loop:
	for {
		switch p.curToken.Type {
		case lexer.TokenSigned, lexer.TokenUnsigned:
			if sign != signNone {
				p.addError("duplicate sign specifier")
				return decl.TypeSpec{}, false
			}
			if p.curTokenIs(lexer.TokenSigned) {
				sign = signSigned
			} else {
				sign = signUnsigned
			}
		case lexer.TokenVoid:
			seenVoid = true
		case lexer.TokenChar:
			seenChar = true
		case lexer.TokenShort:
			seenShort = true
		case lexer.TokenInt_:
			seenInt = true
		case lexer.TokenLong:
			longCount++
		case lexer.TokenFloat:
			seenFloat = true
		case lexer.TokenDouble:
			seenDouble = true
		default:
			break loop
		}
		words++
		p.nextToken()
	}

	if words == 0 {
		p.addError(fmt.Sprintf("expected type specifier, got %s", p.curToken.Type))
		return decl.TypeSpec{}, false
	}

	base := decl.BaseInvalid
	switch {
	case seenVoid:
		if sign != signNone || seenChar || seenShort || seenInt || seenFloat || seenDouble || longCount > 0 {
			break
		}
		base = decl.BaseVoid
	case seenChar:
		if seenShort || seenInt || seenFloat || seenDouble || longCount > 0 {
			break
		}
		switch sign {
		case signSigned:
			base = decl.BaseSChar
		case signUnsigned:
			base = decl.BaseUChar
		default:
			base = decl.BaseChar
		}
	case seenFloat:
		if sign != signNone || seenShort || seenInt || seenDouble || longCount > 0 {
			break
		}
		base = decl.BaseFloat
	case seenDouble:
		if sign != signNone || seenShort || seenInt || longCount > 1 {
			break
		}
		if longCount == 1 {
			base = decl.BaseLongDouble
		} else {
			base = decl.BaseDouble
		}
	case seenShort:
		if longCount > 0 {
			break
		}
		if sign == signUnsigned {
			base = decl.BaseUShort
		} else {
			base = decl.BaseSShort
		}
	case longCount == 1:
		if sign == signUnsigned {
			base = decl.BaseULong
		} else {
			base = decl.BaseSLong
		}
	case longCount == 0:
		// int alone, or a bare sign specifier
		if sign == signUnsigned {
			base = decl.BaseUInt
		} else {
			base = decl.BaseSInt
		}
	}

	if base == decl.BaseInvalid {
		p.addError("invalid type specifier combination")
		return decl.TypeSpec{}, false
	}
	return decl.NewTypeSpec(base), true
}

// parseDeclarator parses `{'*' {qualifier}} direct-dclr`. The pointer
// run is appended after the direct declarator's own suffixes, since
// postfix suffixes bind tighter to the identifier than pointers. The
// run is stored in spoken order: the `*` nearest the identifier is
// the outermost constructor.
func (p *Parser) parseDeclarator() (decl.Declarator, bool) {
	var quals []decl.Qualifier // in source encounter order
	for p.curTokenIs(lexer.TokenStar) {
		p.nextToken() // consume '*'
		var hasConst, hasVolatile bool
		if !p.parseQualifiers(&hasConst, &hasVolatile) {
			return decl.Declarator{}, false
		}
		quals = append(quals, qualifierOf(hasConst, hasVolatile))
	}

	d, ok := p.parseDirectDeclarator()
	if !ok {
		return decl.Declarator{}, false
	}

	if len(quals) > 0 {
		var run decl.PointerRun
		for i := len(quals) - 1; i >= 0; i-- {
			run.Append(quals[i])
		}
		d.Append(run)
	}
	return d, true
}

// parseDirectDeclarator parses an identifier or a parenthesized
// sub-declarator (either may be absent for abstract declarators),
// followed by any number of array and parameter-list suffixes
func (p *Parser) parseDirectDeclarator() (decl.Declarator, bool) {
	var d decl.Declarator

	if p.curTokenIs(lexer.TokenIdent) {
		d.Iden = p.curToken.Literal
		p.nextToken()
	} else if p.curTokenIs(lexer.TokenLParen) && startsDeclarator(p.peekToken.Type) {
		p.nextToken() // consume '('
		inner, ok := p.parseDeclarator()
		if !ok {
			return decl.Declarator{}, false
		}
		if !p.expect(lexer.TokenRParen) {
			return decl.Declarator{}, false
		}
		d = inner
	}

	for {
		switch p.curToken.Type {
		case lexer.TokenLBracket:
			suffix, ok := p.parseArraySuffix()
			if !ok {
				return decl.Declarator{}, false
			}
			d.Append(suffix)
		case lexer.TokenLParen:
			params, ok := p.parseParamList()
			if !ok {
				return decl.Declarator{}, false
			}
			d.Append(params)
		default:
			return d, true
		}
	}
}

// startsDeclarator reports whether a token can begin a declarator.
// Used to tell a parenthesized sub-declarator from a parameter list.
func startsDeclarator(t lexer.TokenType) bool {
	switch t {
	case lexer.TokenStar, lexer.TokenLParen, lexer.TokenLBracket, lexer.TokenIdent:
		return true
	}
	return false
}

// parseArraySuffix parses `'[' [INT] ']'`; a missing size means the
// array is unsized
func (p *Parser) parseArraySuffix() (decl.ArraySuffix, bool) {
	p.nextToken() // consume '['
	var size uint64
	if p.curTokenIs(lexer.TokenInt) {
		n, err := strconv.ParseUint(p.curToken.Literal, 10, 64)
		if err != nil {
			p.addError(fmt.Sprintf("invalid array size %s", p.curToken.Literal))
			return decl.ArraySuffix{}, false
		}
		size = n
		p.nextToken()
	}
	if !p.expect(lexer.TokenRBracket) {
		return decl.ArraySuffix{}, false
	}
	return decl.ArraySuffix{Size: size}, true
}

// parseParamList parses `'(' [param {',' param} [',' '...']] ')'`
func (p *Parser) parseParamList() (decl.ParamList, bool) {
	p.nextToken() // consume '('
	var params decl.ParamList

	if p.curTokenIs(lexer.TokenRParen) {
		p.nextToken()
		return params, true
	}

	for {
		param, ok := p.parseParam()
		if !ok {
			return decl.ParamList{}, false
		}
		params.Append(param)

		if !p.curTokenIs(lexer.TokenComma) {
			break
		}
		p.nextToken() // consume ','
		if p.curTokenIs(lexer.TokenEllipsis) {
			params.SetVariadic(true)
			p.nextToken()
			break
		}
	}

	if !p.expect(lexer.TokenRParen) {
		return decl.ParamList{}, false
	}
	return params, true
}

// parseParam parses a qualified type optionally followed by a
// (possibly abstract) declarator, e.g. a function pointer parameter
func (p *Parser) parseParam() (decl.Param, bool) {
	qt, ok := p.parseQualifiedType()
	if !ok {
		return decl.Param{}, false
	}
	if startsDeclarator(p.curToken.Type) {
		dclr, ok := p.parseDeclarator()
		if !ok {
			return decl.Param{}, false
		}
		return decl.NewParamDclr(qt, dclr), true
	}
	return decl.NewParam(qt), true
}
