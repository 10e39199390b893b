// Package importer implements the Metadata Importer: the deterministic
// naming and semantics oracle that decides, for every reachable type and
// member, how it appears in the output script.
package importer

// TypeImplKind classifies how a Type appears in script.
type TypeImplKind int

const (
	TypeNormal TypeImplKind = iota
	TypeNotUsable
)

// TypeSemantics is the immutable per-type semantic record.
type TypeSemantics struct {
	ImplKind               TypeImplKind
	DottedScriptName       string
	IgnoreGenericArguments bool
	GenerateCode           bool
	IsSerializable         bool
	IsNamedValues          bool
	IsImported             bool
}

// DelegateSemantics is the immutable per-delegate-type semantic record.
type DelegateSemantics struct {
	ExpandParams          bool
	BindThisToFirstParameter bool
}

// MethodImplKind classifies how a Method appears in script.
type MethodImplKind int

const (
	MethodNormal MethodImplKind = iota
	MethodInlineCode
	MethodNativeIndexer
	MethodNativeOperator
	MethodStaticMethodWithThisAsFirstArgument
	MethodNotUsable
)

// MethodSemantics is the immutable per-method semantic record.
type MethodSemantics struct {
	ImplKind               MethodImplKind
	Name                   string // script name; meaningful for MethodNormal and MethodStaticMethodWithThisAsFirstArgument
	InlineTemplate         string // meaningful for MethodInlineCode
	NonVirtualTemplate     string // optional alternate template for a non-virtual call site
	GeneratedMethodName    string // optional; when set, callers should address this name directly
	IgnoreGenericArguments bool
	ExpandParams           bool
	EnumerateAsArray       bool
	GenerateCode           bool
}

// ConstructorImplKind classifies how a Constructor appears in script.
type ConstructorImplKind int

const (
	CtorUnnamed ConstructorImplKind = iota
	CtorNamed
	CtorStaticMethod
	CtorInlineCode
	CtorJson
	CtorNotUsable
)

// ConstructorSemantics is the immutable per-constructor semantic record.
type ConstructorSemantics struct {
	ImplKind             ConstructorImplKind
	Name                 string // meaningful for CtorNamed / CtorStaticMethod
	InlineTemplate       string // meaningful for CtorInlineCode
	ParameterToMemberMap map[string]string // meaningful for CtorJson: parameter name -> member script name
	ExpandParams         bool
	SkipInInitializer    bool
	GenerateCode         bool
}

// PropertyImplKind classifies how a Property appears in script.
type PropertyImplKind int

const (
	PropertyGetAndSetMethods PropertyImplKind = iota
	PropertyField
	PropertyNotUsable
)

// PropertySemantics is the immutable per-property semantic record.
type PropertySemantics struct {
	ImplKind  PropertyImplKind
	GetMethod *MethodSemantics // set when ImplKind == PropertyGetAndSetMethods and a getter exists
	SetMethod *MethodSemantics // set when ImplKind == PropertyGetAndSetMethods and a setter exists
	FieldName string           // set when ImplKind == PropertyField
}

// EventSemantics parallels PropertySemantics with add/remove method semantics.
type EventSemantics struct {
	ImplKind     PropertyImplKind // reuses Property's two live shapes: GetAndSetMethods (add/remove) or Field
	AddMethod    *MethodSemantics
	RemoveMethod *MethodSemantics
	FieldName    string
}

// FieldImplKind classifies how a Field appears in script.
type FieldImplKind int

const (
	FieldPlain FieldImplKind = iota
	FieldBooleanConstant
	FieldNumericConstant
	FieldStringConstant
	FieldNullConstant
	FieldNotUsable
)

// FieldSemantics is the immutable per-field semantic record. A constant
// with an empty Name is substituted inline at every use (InlineConstant).
type FieldSemantics struct {
	ImplKind      FieldImplKind
	Name          string
	ConstantValue interface{}
}

// record is the union of every semantic record kind. The Importer does not
// store records through it: it keeps one map per record kind (types,
// delegates, methods, ctors, props, events, fields).
type record struct {
	typ      *TypeSemantics
	delegate *DelegateSemantics
	method   *MethodSemantics
	ctor     *ConstructorSemantics
	prop     *PropertySemantics
	event    *EventSemantics
	field    *FieldSemantics
}

// entityKey identifies a symbol for map storage. model.Type/Member values
// are themselves comparable (backed by pointers), so they are used
// directly as map keys; the Importer's lookup tables are keyed by their
// typed model interfaces, and only its ignored set uses this untyped key
// type (declared there as interface{}).
type entityKey = interface{}
