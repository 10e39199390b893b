package importer

import (
	"testing"

	"xlate/pkg/errors"
	"xlate/pkg/model"
)

func TestGetTypeParameterNameReturnsReservedName(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Box", KindV: model.KindClass}
	tp := &model.FixtureTypeParam{NameV: "T", IndexV: 0}
	ty.TypeParametersV = []model.TypeParameter{tp}

	imp.Prepare(ty)

	if got := imp.GetTypeParameterName(tp); got != "T" {
		t.Fatalf("got %q, want %q", got, "T")
	}
}

func TestGetTypeParameterNamePanicsWhenNeverReserved(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unreserved type parameter")
		}
	}()
	imp := New(Config{})
	imp.GetTypeParameterName(&model.FixtureTypeParam{NameV: "T"})
}

func TestGetAutoPropertyBackingFieldNameIsStableAndUnique(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	p1 := &model.FixtureProperty{NameV: "Size", Declaring: ty, AutoPropertyV: true}
	p2 := &model.FixtureProperty{NameV: "Color", Declaring: ty, AutoPropertyV: true}

	first := imp.GetAutoPropertyBackingFieldName(p1)
	again := imp.GetAutoPropertyBackingFieldName(p1)
	if first != again {
		t.Fatalf("backing field name should be stable across calls, got %q then %q", first, again)
	}

	other := imp.GetAutoPropertyBackingFieldName(p2)
	if other == first {
		t.Fatalf("distinct properties should get distinct backing field names, both got %q", first)
	}
}

func TestGetAutoEventBackingFieldNameIsStableAndUnique(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	e1 := &model.FixtureEvent{NameV: "Changed", Declaring: ty}
	e2 := &model.FixtureEvent{NameV: "Closed", Declaring: ty}

	first := imp.GetAutoEventBackingFieldName(e1)
	again := imp.GetAutoEventBackingFieldName(e1)
	if first != again {
		t.Fatalf("backing field name should be stable across calls, got %q then %q", first, again)
	}

	other := imp.GetAutoEventBackingFieldName(e2)
	if other == first {
		t.Fatalf("distinct events should get distinct backing field names, both got %q", first)
	}
}

func TestReserveMemberNameThenIsMemberNameAvailable(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}

	if !imp.IsMemberNameAvailable(ty, "helper", false) {
		t.Fatal("an unreserved instance name should be reported available")
	}

	imp.ReserveMemberName(ty, "helper", false)

	if imp.IsMemberNameAvailable(ty, "helper", false) {
		t.Fatal("a reserved instance name should no longer be reported available")
	}
	if !imp.IsMemberNameAvailable(ty, "helper", true) {
		t.Fatal("an instance-namespace reservation should not block the static namespace")
	}
}

func TestSetMethodSemanticsOverridesAndMarksIgnored(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	m := &model.FixtureMethod{NameV: "Compute", Declaring: ty}
	ty.MembersV = []model.Member{m}

	override := &MethodSemantics{ImplKind: MethodNormal, Name: "compute"}
	imp.SetMethodSemantics(m, override)

	imp.Prepare(ty)

	if got := imp.GetMethodSemantics(m); got != override {
		t.Fatalf("Prepare should not recompute a method whose semantics were overridden before Prepare, got %+v", got)
	}
}

func TestSetConstructorSemanticsOverridesAndMarksIgnored(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	c := &model.FixtureConstructor{Declaring: ty}
	ty.MembersV = []model.Member{c}

	override := &ConstructorSemantics{ImplKind: CtorNamed, Name: "create"}
	imp.SetConstructorSemantics(c, override)

	imp.Prepare(ty)

	if got := imp.GetConstructorSemantics(c); got != override {
		t.Fatalf("Prepare should not recompute an overridden constructor, got %+v", got)
	}
}

func TestSetPropertySemanticsOverridesAndMarksIgnored(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	p := &model.FixtureProperty{NameV: "Size", Declaring: ty}
	ty.MembersV = []model.Member{p}

	override := &PropertySemantics{ImplKind: PropertyField, FieldName: "size"}
	imp.SetPropertySemantics(p, override)

	imp.Prepare(ty)

	if got := imp.GetPropertySemantics(p); got != override {
		t.Fatalf("Prepare should not recompute an overridden property, got %+v", got)
	}
}

func TestSetEventSemanticsOverridesAndMarksIgnored(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	e := &model.FixtureEvent{NameV: "Changed", Declaring: ty}
	ty.MembersV = []model.Member{e}

	override := &EventSemantics{ImplKind: PropertyField, FieldName: "changed"}
	imp.SetEventSemantics(e, override)

	imp.Prepare(ty)

	if got := imp.GetEventSemantics(e); got != override {
		t.Fatalf("Prepare should not recompute an overridden event, got %+v", got)
	}
}

func TestSetFieldSemanticsOverridesAndMarksIgnored(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	f := &model.FixtureField{NameV: "count", Declaring: ty}
	ty.MembersV = []model.Member{f}

	override := &FieldSemantics{ImplKind: FieldPlain, Name: "count"}
	imp.SetFieldSemantics(f, override)

	imp.Prepare(ty)

	if got := imp.GetFieldSemantics(f); got != override {
		t.Fatalf("Prepare should not recompute an overridden field, got %+v", got)
	}
}

func TestDiagnosticsAccumulatesAcrossReports(t *testing.T) {
	imp := New(Config{})
	if len(imp.Diagnostics()) != 0 {
		t.Fatal("a fresh Importer should start with no diagnostics")
	}

	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	// ScriptSkip on a two-parameter static method satisfies neither of its
	// two legal shapes, so processing it should report a diagnostic.
	m := &model.FixtureMethod{
		NameV: "Compute", Declaring: ty, StaticV: true,
		ParametersV: []model.Parameter{{}, {}},
		AttributesV: model.Attrs{model.AttrScriptSkip: struct{}{}},
	}
	ty.MembersV = []model.Member{m}

	imp.Prepare(ty)

	diags := imp.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].Code() != errors.CodeInvalidInlineCodeTemplate {
		t.Fatalf("got code %v, want CodeInvalidInlineCodeTemplate", diags[0].Code())
	}
}
