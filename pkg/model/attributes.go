package model

// Well-known attribute full names the Importer and Emitter consult. Kept
// as constants so rule code never repeats a string literal.
const (
	AttrScriptName                    = "System.Runtime.CompilerServices.ScriptNameAttribute"
	AttrScriptNamespace                = "System.Runtime.CompilerServices.ScriptNamespaceAttribute"
	AttrIgnoreNamespace                = "System.Runtime.CompilerServices.IgnoreNamespaceAttribute"
	AttrModuleNamespace                = "System.Runtime.CompilerServices.ModuleNamespaceAttribute" // assembly-level fallback
	AttrGlobalMethods                  = "System.Runtime.CompilerServices.GlobalMethodsAttribute"
	AttrMixin                          = "System.Runtime.CompilerServices.MixinAttribute"
	AttrSerializable                   = "System.Runtime.CompilerServices.ScriptSerializableAttribute"
	AttrRecord                         = "System.Runtime.CompilerServices.RecordAttribute"
	AttrNonScriptable                  = "System.Runtime.CompilerServices.NonScriptableAttribute"
	AttrIntrinsicOperator              = "System.Runtime.CompilerServices.IntrinsicOperatorAttribute"
	AttrScriptSkip                     = "System.Runtime.CompilerServices.ScriptSkipAttribute"
	AttrScriptAlias                    = "System.Runtime.CompilerServices.ScriptAliasAttribute"
	AttrInlineCode                     = "System.Runtime.CompilerServices.InlineCodeAttribute"
	AttrInstanceMethodOnFirstArgument  = "System.Runtime.CompilerServices.InstanceMethodOnFirstArgumentAttribute"
	AttrEnumerateAsArray               = "System.Runtime.CompilerServices.EnumerateAsArrayAttribute"
	AttrIntrinsicProperty              = "System.Runtime.CompilerServices.IntrinsicPropertyAttribute"
	AttrPreserveCase                   = "System.Runtime.CompilerServices.PreserveCaseAttribute"
	AttrIgnoreGenericArguments         = "System.Runtime.CompilerServices.IgnoreGenericArgumentsAttribute"
	AttrAlternateSignature             = "System.Runtime.CompilerServices.AlternateSignatureAttribute"
	AttrObjectLiteral                  = "System.Runtime.CompilerServices.ObjectLiteralAttribute"
	AttrNamedValues                    = "System.Runtime.CompilerServices.NamedValuesAttribute"
	AttrImported                       = "System.Runtime.CompilerServices.ImportedAttribute"
)

// ScriptNamePayload backs AttrScriptName.
type ScriptNamePayload struct{ Name string }

// ScriptNamespacePayload backs AttrScriptNamespace.
type ScriptNamespacePayload struct{ Namespace string }

// ModuleNamespacePayload backs AttrModuleNamespace (assembly-level).
type ModuleNamespacePayload struct{ Namespace string }

// InlineCodePayload backs AttrInlineCode.
type InlineCodePayload struct {
	Template           string
	NonVirtualTemplate string // optional, "" when absent
	GeneratedName      string // optional, "" when absent
}

// ScriptAliasPayload backs AttrScriptAlias.
type ScriptAliasPayload struct{ Alias string }

// InstanceMethodOnFirstArgumentPayload backs AttrInstanceMethodOnFirstArgument.
type InstanceMethodOnFirstArgumentPayload struct{}

// IgnoreGenericArgumentsPayload backs AttrIgnoreGenericArguments. Value is
// a tri-state: nil means "unspecified", otherwise yes/no.
type IgnoreGenericArgumentsPayload struct{ Value *bool }

// AlternateSignaturePayload backs AttrAlternateSignature.
type AlternateSignaturePayload struct{}

// ObjectLiteralPayload backs AttrObjectLiteral.
type ObjectLiteralPayload struct{}

// PreserveCasePayload backs AttrPreserveCase.
type PreserveCasePayload struct{}
