package decl

import "testing"

func TestBaseTypeStrings(t *testing.T) {
	tests := []struct {
		base BaseType
		want string
	}{
		{BaseVoid, "void"},
		{BaseChar, "char"},
		{BaseSChar, "signed char"},
		{BaseUChar, "unsigned char"},
		{BaseSInt, "signed int"},
		{BaseUInt, "unsigned int"},
		{BaseSShort, "signed short"},
		{BaseUShort, "unsigned short"},
		{BaseSLong, "signed long"},
		{BaseULong, "unsigned long"},
		{BaseFloat, "float"},
		{BaseDouble, "double"},
		{BaseLongDouble, "long double"},
		{BaseStruct, "struct"},
		{BaseEnum, "enum"},
		{BaseTypedef, "typedef"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.base.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElidedStrings(t *testing.T) {
	// automatic storage and the absent qualifier render as empty text
	if got := StorageAuto.String(); got != "" {
		t.Errorf("StorageAuto.String() = %q, want empty", got)
	}
	if got := QualNone.String(); got != "" {
		t.Errorf("QualNone.String() = %q, want empty", got)
	}
}

func TestQualifierStrings(t *testing.T) {
	tests := []struct {
		qual Qualifier
		want string
	}{
		{QualConst, "const"},
		{QualVolatile, "volatile"},
		{QualConstVolatile, "const volatile"},
	}

	for _, tt := range tests {
		if got := tt.qual.String(); got != tt.want {
			t.Errorf("Qualifier(%d).String() = %q, want %q", tt.qual, got, tt.want)
		}
	}
}

func TestStorageClassStrings(t *testing.T) {
	tests := []struct {
		storage StorageClass
		want    string
	}{
		{StorageExtern, "extern"},
		{StorageRegister, "register"},
		{StorageStatic, "static"},
	}

	for _, tt := range tests {
		if got := tt.storage.String(); got != tt.want {
			t.Errorf("StorageClass(%d).String() = %q, want %q", tt.storage, got, tt.want)
		}
	}
}

func TestInvalidValuesPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"base type", func() { _ = BaseInvalid.String() }},
		{"qualifier", func() { _ = QualInvalid.String() }},
		{"storage class", func() { _ = StorageInvalid.String() }},
		{"out of range base type", func() { _ = BaseType(99).String() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic rendering invalid %s", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestNamed(t *testing.T) {
	for _, base := range []BaseType{BaseStruct, BaseEnum, BaseTypedef} {
		if !base.Named() {
			t.Errorf("%v.Named() = false, want true", base)
		}
	}
	for _, base := range []BaseType{BaseVoid, BaseChar, BaseSInt, BaseLongDouble} {
		if base.Named() {
			t.Errorf("%v.Named() = true, want false", base)
		}
	}
}

func TestTypeSpecString(t *testing.T) {
	tests := []struct {
		name string
		spec TypeSpec
		want string
	}{
		{"builtin", NewTypeSpec(BaseUInt), "unsigned int"},
		{"struct", NewNamedTypeSpec(BaseStruct, "my_struct"), "struct my_struct"},
		{"enum", NewNamedTypeSpec(BaseEnum, "color"), "enum color"},
		{"typedef", NewNamedTypeSpec(BaseTypedef, "my_type"), "typedef my_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQualifiedTypeString(t *testing.T) {
	tests := []struct {
		name string
		qt   QualifiedType
		want string
	}{
		{"unqualified", NewQualifiedType(NewTypeSpec(BaseSInt)), "signed int"},
		{
			"const",
			QualifiedType{Qual: QualConst, Spec: NewTypeSpec(BaseChar)},
			"const char",
		},
		{
			"const volatile",
			QualifiedType{Qual: QualConstVolatile, Spec: NewTypeSpec(BaseULong)},
			"const volatile unsigned long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.qt.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeclSpecString(t *testing.T) {
	tests := []struct {
		name string
		spec DeclSpec
		want string
	}{
		{
			"auto storage elided",
			NewDeclSpec(NewQualifiedType(NewTypeSpec(BaseSInt))),
			"signed int",
		},
		{
			"extern const struct",
			DeclSpec{
				Storage: StorageExtern,
				Type: QualifiedType{
					Qual: QualConst,
					Spec: NewNamedTypeSpec(BaseStruct, "my_struct"),
				},
			},
			"extern const struct my_struct",
		},
		{
			"static const typedef",
			DeclSpec{
				Storage: StorageStatic,
				Type: QualifiedType{
					Qual: QualConst,
					Spec: NewNamedTypeSpec(BaseTypedef, "my_type"),
				},
			},
			"static const typedef my_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
