package importer

import (
	"testing"

	"xlate/pkg/errors"
	"xlate/pkg/model"
)

func TestProcessMethodPlainGetsUniqueName(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	m := &model.FixtureMethod{NameV: "DoThing", Declaring: ty}
	ty.MembersV = []model.Member{m}

	imp.Prepare(ty)

	sem := imp.GetMethodSemantics(m)
	if sem.ImplKind != MethodNormal {
		t.Fatalf("got ImplKind %v, want MethodNormal", sem.ImplKind)
	}
	if sem.Name != "DoThing" {
		t.Fatalf("got %q, want %q", sem.Name, "DoThing")
	}
}

func TestProcessMethodNonScriptableIsNotUsable(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	m := &model.FixtureMethod{
		NameV: "Hidden", Declaring: ty,
		AttributesV: model.Attrs{model.AttrNonScriptable: struct{}{}},
	}
	ty.MembersV = []model.Member{m}

	imp.Prepare(ty)

	if imp.GetMethodSemantics(m).ImplKind != MethodNotUsable {
		t.Fatal("NonScriptable method should be NotUsable")
	}
}

func TestProcessMethodIntrinsicOperatorRequiresNonConversionOperator(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	m := &model.FixtureMethod{
		NameV: "op_Addition", Declaring: ty, OperatorV: true,
		AttributesV: model.Attrs{model.AttrIntrinsicOperator: struct{}{}},
	}
	ty.MembersV = []model.Member{m}

	imp.Prepare(ty)

	if imp.GetMethodSemantics(m).ImplKind != MethodNativeOperator {
		t.Fatal("IntrinsicOperator on a valid operator method should be MethodNativeOperator")
	}
}

func TestProcessMethodIntrinsicOperatorOnNonOperatorReportsError(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	m := &model.FixtureMethod{
		NameV: "NotAnOperator", Declaring: ty,
		AttributesV: model.Attrs{model.AttrIntrinsicOperator: struct{}{}},
	}
	ty.MembersV = []model.Member{m}

	imp.Prepare(ty)

	found := false
	for _, d := range imp.Diagnostics() {
		if d.Code() == errors.CodeIllegalIntrinsicOperator {
			found = true
		}
	}
	if !found {
		t.Fatal("expected CodeIllegalIntrinsicOperator diagnostic")
	}
}

func TestProcessMethodScriptAliasBuildsInlineTemplate(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	m := &model.FixtureMethod{
		NameV: "Add", Declaring: ty,
		ParametersV: []model.Parameter{{Name: "a"}, {Name: "b"}},
		AttributesV: model.Attrs{model.AttrScriptAlias: model.ScriptAliasPayload{Alias: "plus"}},
	}
	ty.MembersV = []model.Member{m}

	imp.Prepare(ty)

	sem := imp.GetMethodSemantics(m)
	if sem.ImplKind != MethodInlineCode {
		t.Fatalf("got ImplKind %v, want MethodInlineCode", sem.ImplKind)
	}
	if sem.InlineTemplate != "plus({0}, {1})" {
		t.Fatalf("got %q, want %q", sem.InlineTemplate, "plus({0}, {1})")
	}
}

func TestProcessMethodInstanceMethodOnFirstArgumentSplicesThis(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	m := &model.FixtureMethod{
		NameV: "Helper", Declaring: ty, StaticV: true,
		ParametersV: []model.Parameter{{Name: "x"}},
		AttributesV: model.Attrs{model.AttrInstanceMethodOnFirstArgument: struct{}{}},
	}
	ty.MembersV = []model.Member{m}

	imp.Prepare(ty)

	sem := imp.GetMethodSemantics(m)
	if sem.ImplKind != MethodInlineCode {
		t.Fatalf("got ImplKind %v, want MethodInlineCode", sem.ImplKind)
	}
	if sem.InlineTemplate != "Helper({this}, {0})" {
		t.Fatalf("got %q, want %q", sem.InlineTemplate, "Helper({this}, {0})")
	}
}

func TestProcessMethodOverrideInheritsBaseSemantics(t *testing.T) {
	imp := New(Config{})
	base := &model.FixtureType{NameV: "Base", KindV: model.KindClass}
	baseMethod := &model.FixtureMethod{NameV: "Greet", Declaring: base, VirtualV: true}
	base.MembersV = []model.Member{baseMethod}

	derived := &model.FixtureType{NameV: "Derived", KindV: model.KindClass, DirectBasesV: []model.Type{base}, AllBasesV: []model.Type{base}}
	override := &model.FixtureMethod{
		NameV: "Greet", Declaring: derived, OverrideV: true,
		Overridden: baseMethod, HasOverridden: true,
	}
	derived.MembersV = []model.Member{override}

	imp.Prepare(base)
	imp.Prepare(derived)

	baseSem := imp.GetMethodSemantics(baseMethod)
	overrideSem := imp.GetMethodSemantics(override)
	if overrideSem.Name != baseSem.Name {
		t.Fatalf("override should inherit base's script name, got %q want %q", overrideSem.Name, baseSem.Name)
	}
}
