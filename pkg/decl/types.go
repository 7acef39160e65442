// Package decl defines the C declaration model and its English rendering
package decl

// BaseType is the unqualified base type of a declaration
type BaseType int

const (
	BaseInvalid    BaseType = iota // zero value, construction in progress
	BaseVoid                       // void
	BaseChar                       // char, sign is platform-dependent
	BaseSChar                      // signed char
	BaseUChar                      // unsigned char
	BaseSInt                       // signed int
	BaseUInt                       // unsigned int
	BaseSShort                     // signed short
	BaseUShort                     // unsigned short
	BaseSLong                      // signed long
	BaseULong                      // unsigned long
	BaseFloat                      // float
	BaseDouble                     // double
	BaseLongDouble                 // long double
	BaseStruct                     // struct, carries an identifier
	BaseEnum                       // enum, carries an identifier
	BaseTypedef                    // typedef name, carries an identifier
)

func (t BaseType) String() string {
	switch t {
	case BaseVoid:
		return "void"
	case BaseChar:
		return "char"
	case BaseSChar:
		return "signed char"
	case BaseUChar:
		return "unsigned char"
	case BaseSInt:
		return "signed int"
	case BaseUInt:
		return "unsigned int"
	case BaseSShort:
		return "signed short"
	case BaseUShort:
		return "unsigned short"
	case BaseSLong:
		return "signed long"
	case BaseULong:
		return "unsigned long"
	case BaseFloat:
		return "float"
	case BaseDouble:
		return "double"
	case BaseLongDouble:
		return "long double"
	case BaseStruct:
		return "struct"
	case BaseEnum:
		return "enum"
	case BaseTypedef:
		return "typedef"
	}
	panic("decl: cannot print invalid base type")
}

// Named reports whether the base type carries a type identifier
func (t BaseType) Named() bool {
	return t == BaseStruct || t == BaseEnum || t == BaseTypedef
}

// Qualifier is a type cv-qualifier
type Qualifier int

const (
	QualInvalid       Qualifier = iota // zero value, construction in progress
	QualNone                          // no qualifier
	QualConst                         // const
	QualVolatile                      // volatile
	QualConstVolatile                 // const volatile
)

func (q Qualifier) String() string {
	switch q {
	case QualNone:
		return ""
	case QualConst:
		return "const"
	case QualVolatile:
		return "volatile"
	case QualConstVolatile:
		return "const volatile"
	}
	panic("decl: cannot print invalid cv-qualifier")
}

// StorageClass is a declaration storage class
type StorageClass int

const (
	StorageInvalid  StorageClass = iota // zero value, construction in progress
	StorageAuto                         // auto, elided when rendered
	StorageExtern                       // extern
	StorageRegister                     // register
	StorageStatic                       // static
)

func (s StorageClass) String() string {
	switch s {
	case StorageAuto:
		return ""
	case StorageExtern:
		return "extern"
	case StorageRegister:
		return "register"
	case StorageStatic:
		return "static"
	}
	panic("decl: cannot print invalid storage class")
}

// TypeSpec is a base type plus the type identifier carried by the
// struct, enum, and typedef-name variants. Builtin variants have an
// empty identifier.
type TypeSpec struct {
	Base BaseType
	Iden string
}

// NewTypeSpec returns a type specifier for a builtin type
func NewTypeSpec(base BaseType) TypeSpec {
	return TypeSpec{Base: base}
}

// NewNamedTypeSpec returns a type specifier for a struct, enum, or
// typedef name
func NewNamedTypeSpec(base BaseType, iden string) TypeSpec {
	return TypeSpec{Base: base, Iden: iden}
}

func (t TypeSpec) String() string {
	if t.Iden != "" {
		return t.Base.String() + " " + t.Iden
	}
	return t.Base.String()
}

// QualifiedType pairs a cv-qualifier with a type specifier
type QualifiedType struct {
	Qual Qualifier
	Spec TypeSpec
}

// NewQualifiedType returns an unqualified type from a type specifier
func NewQualifiedType(spec TypeSpec) QualifiedType {
	return QualifiedType{Qual: QualNone, Spec: spec}
}

func (q QualifiedType) String() string {
	if qual := q.Qual.String(); qual != "" {
		return qual + " " + q.Spec.String()
	}
	return q.Spec.String()
}

// DeclSpec pairs a storage class with a qualified type
type DeclSpec struct {
	Storage StorageClass
	Type    QualifiedType
}

// NewDeclSpec returns a declaration specifier with automatic storage
func NewDeclSpec(typ QualifiedType) DeclSpec {
	return DeclSpec{Storage: StorageAuto, Type: typ}
}

func (d DeclSpec) String() string {
	// automatic storage renders as empty and is elided
	if storage := d.Storage.String(); storage != "" {
		return storage + " " + d.Type.String()
	}
	return d.Type.String()
}
