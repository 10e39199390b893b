package model

// This file provides a minimal in-memory implementation of the model
// interfaces, used by the core's own tests to build bare fixture values by
// hand instead of running a real metadata loader. It is not a real front
// end: no assembly loader or attribute reflection backs it, just literal
// Go values.

// Attrs is a literal-backed AttributeSet.
type Attrs map[string]interface{}

func (a Attrs) Get(name string) (interface{}, bool) { v, ok := a[name]; return v, ok }
func (a Attrs) Has(name string) bool                { _, ok := a[name]; return ok }

// FixtureTypeParam is a literal TypeParameter.
type FixtureTypeParam struct {
	NameV  string
	IndexV int
}

func (p *FixtureTypeParam) Name() string { return p.NameV }
func (p *FixtureTypeParam) Index() int   { return p.IndexV }

// FixtureType is a literal Type.
type FixtureType struct {
	NameV            string
	NamespaceV       string
	AssemblyV        string
	KindV            Kind
	Declaring        Type
	HasDeclaring     bool
	TypeParametersV  []TypeParameter
	DirectBasesV     []Type
	AllBasesV        []Type
	MembersV         []Member
	AttributesV      Attrs
	GenericV         bool
}

func (t *FixtureType) typeNode()                {}
func (t *FixtureType) Name() string             { return t.NameV }
func (t *FixtureType) Namespace() string        { return t.NamespaceV }
func (t *FixtureType) Assembly() string         { return t.AssemblyV }
func (t *FixtureType) Kind() Kind               { return t.KindV }
func (t *FixtureType) TypeParameters() []TypeParameter { return t.TypeParametersV }
func (t *FixtureType) DirectBaseTypes() []Type  { return t.DirectBasesV }
func (t *FixtureType) AllBaseTypes() []Type     { return t.AllBasesV }
func (t *FixtureType) Members() []Member        { return t.MembersV }
func (t *FixtureType) IsGeneric() bool          { return t.GenericV }
func (t *FixtureType) Attributes() AttributeSet {
	if t.AttributesV == nil {
		return Attrs{}
	}
	return t.AttributesV
}
func (t *FixtureType) DeclaringType() (Type, bool) { return t.Declaring, t.HasDeclaring }

// FixtureMethod is a literal Method.
type FixtureMethod struct {
	NameV            string
	Declaring        Type
	StaticV          bool
	ParametersV      []Parameter
	ReturnTypeV      Type
	TypeParametersV  []TypeParameter
	VirtualV         bool
	OverrideV        bool
	AbstractV        bool
	Overridden       Method
	HasOverridden    bool
	Implemented      []Method
	ExplicitIfaceV   bool
	OperatorV        bool
	ConversionV      bool
	GetEnumeratorV   bool
	AttributesV      Attrs
}

func (m *FixtureMethod) MemberName() string          { return m.NameV }
func (m *FixtureMethod) DeclaringType() Type         { return m.Declaring }
func (m *FixtureMethod) IsStatic() bool              { return m.StaticV }
func (m *FixtureMethod) Parameters() []Parameter     { return m.ParametersV }
func (m *FixtureMethod) ReturnType() Type            { return m.ReturnTypeV }
func (m *FixtureMethod) TypeParameters() []TypeParameter { return m.TypeParametersV }
func (m *FixtureMethod) IsVirtual() bool             { return m.VirtualV }
func (m *FixtureMethod) IsOverride() bool            { return m.OverrideV }
func (m *FixtureMethod) IsAbstract() bool            { return m.AbstractV }
func (m *FixtureMethod) OverriddenMethod() (Method, bool) { return m.Overridden, m.HasOverridden }
func (m *FixtureMethod) ImplementedInterfaceMembers() []Method { return m.Implemented }
func (m *FixtureMethod) IsExplicitInterfaceImpl() bool { return m.ExplicitIfaceV }
func (m *FixtureMethod) IsOperator() bool            { return m.OperatorV }
func (m *FixtureMethod) IsConversionOperator() bool  { return m.ConversionV }
func (m *FixtureMethod) IsGetEnumerator() bool       { return m.GetEnumeratorV }
func (m *FixtureMethod) Attributes() AttributeSet {
	if m.AttributesV == nil {
		return Attrs{}
	}
	return m.AttributesV
}

// FixtureConstructor is a literal Constructor.
type FixtureConstructor struct {
	NameV       string
	Declaring   Type
	StaticV     bool
	ParametersV []Parameter
	MarkerV     bool
	AttributesV Attrs
}

func (c *FixtureConstructor) MemberName() string      { return "$ctor" }
func (c *FixtureConstructor) Name() string            { return c.NameV }
func (c *FixtureConstructor) DeclaringType() Type     { return c.Declaring }
func (c *FixtureConstructor) IsStatic() bool          { return c.StaticV }
func (c *FixtureConstructor) Parameters() []Parameter { return c.ParametersV }
func (c *FixtureConstructor) IsSyntheticDefaultValueTypeMarker() bool { return c.MarkerV }
func (c *FixtureConstructor) Attributes() AttributeSet {
	if c.AttributesV == nil {
		return Attrs{}
	}
	return c.AttributesV
}

// FixtureProperty is a literal Property.
type FixtureProperty struct {
	NameV          string
	Declaring      Type
	StaticV        bool
	GetterV        Method
	HasGetter      bool
	SetterV        Method
	HasSetter      bool
	IndexerV       bool
	AutoPropertyV  bool
	OverrideV      bool
	OverridableV   bool
	Implemented    []Property
	AttributesV    Attrs
}

func (p *FixtureProperty) MemberName() string  { return p.NameV }
func (p *FixtureProperty) DeclaringType() Type { return p.Declaring }
func (p *FixtureProperty) IsStatic() bool      { return p.StaticV }
func (p *FixtureProperty) Getter() (Method, bool) { return p.GetterV, p.HasGetter }
func (p *FixtureProperty) Setter() (Method, bool) { return p.SetterV, p.HasSetter }
func (p *FixtureProperty) IsIndexer() bool     { return p.IndexerV }
func (p *FixtureProperty) IsAutoProperty() bool { return p.AutoPropertyV }
func (p *FixtureProperty) IsOverride() bool    { return p.OverrideV }
func (p *FixtureProperty) IsOverridable() bool { return p.OverridableV }
func (p *FixtureProperty) ImplementedInterfaceMembers() []Property { return p.Implemented }
func (p *FixtureProperty) Attributes() AttributeSet {
	if p.AttributesV == nil {
		return Attrs{}
	}
	return p.AttributesV
}

// FixtureEvent is a literal Event.
type FixtureEvent struct {
	NameV       string
	Declaring   Type
	StaticV     bool
	AddV        Method
	RemoveV     Method
	OverrideV   bool
	AttributesV Attrs
}

func (e *FixtureEvent) MemberName() string  { return e.NameV }
func (e *FixtureEvent) DeclaringType() Type { return e.Declaring }
func (e *FixtureEvent) IsStatic() bool      { return e.StaticV }
func (e *FixtureEvent) AddMethod() Method   { return e.AddV }
func (e *FixtureEvent) RemoveMethod() Method { return e.RemoveV }
func (e *FixtureEvent) IsOverride() bool    { return e.OverrideV }
func (e *FixtureEvent) Attributes() AttributeSet {
	if e.AttributesV == nil {
		return Attrs{}
	}
	return e.AttributesV
}

// FixtureField is a literal Field.
type FixtureField struct {
	NameV       string
	Declaring   Type
	StaticV     bool
	FieldTypeV  Type
	ConstV      bool
	ConstValueV interface{}
	AttributesV Attrs
}

func (f *FixtureField) MemberName() string      { return f.NameV }
func (f *FixtureField) DeclaringType() Type     { return f.Declaring }
func (f *FixtureField) IsStatic() bool          { return f.StaticV }
func (f *FixtureField) FieldType() Type         { return f.FieldTypeV }
func (f *FixtureField) IsConst() bool           { return f.ConstV }
func (f *FixtureField) ConstantValue() interface{} { return f.ConstValueV }
func (f *FixtureField) Attributes() AttributeSet {
	if f.AttributesV == nil {
		return Attrs{}
	}
	return f.AttributesV
}
