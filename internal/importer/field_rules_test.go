package importer

import (
	"testing"

	"xlate/pkg/model"
)

func TestProcessFieldPlainGetsUniqueName(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	f := &model.FixtureField{NameV: "count", Declaring: ty}
	ty.MembersV = []model.Member{f}

	imp.Prepare(ty)

	sem := imp.GetFieldSemantics(f)
	if sem.ImplKind != FieldPlain {
		t.Fatalf("got ImplKind %v, want FieldPlain", sem.ImplKind)
	}
	if sem.Name != "count" {
		t.Fatalf("got name %q, want %q", sem.Name, "count")
	}
}

func TestProcessFieldNonScriptableIsNotUsable(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	f := &model.FixtureField{
		NameV: "hidden", Declaring: ty,
		AttributesV: model.Attrs{model.AttrNonScriptable: struct{}{}},
	}
	ty.MembersV = []model.Member{f}

	imp.Prepare(ty)

	if imp.GetFieldSemantics(f).ImplKind != FieldNotUsable {
		t.Fatal("NonScriptable field should be NotUsable")
	}
}

func TestProcessFieldConstStringGetsConstantValue(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	f := &model.FixtureField{
		NameV: "Prefix", Declaring: ty,
		ConstV: true, ConstValueV: "w_",
	}
	ty.MembersV = []model.Member{f}

	imp.Prepare(ty)

	sem := imp.GetFieldSemantics(f)
	if sem.ImplKind != FieldStringConstant {
		t.Fatalf("got ImplKind %v, want FieldStringConstant", sem.ImplKind)
	}
	if sem.ConstantValue != "w_" {
		t.Fatalf("got constant value %v, want %q", sem.ConstantValue, "w_")
	}
}

func TestProcessFieldEnumNamedValuesBecomesStringConstantOfOwnName(t *testing.T) {
	imp := New(Config{})
	ty := &model.FixtureType{
		NameV: "Color", KindV: model.KindEnum,
		AttributesV: model.Attrs{model.AttrNamedValues: struct{}{}},
	}
	f := &model.FixtureField{NameV: "Red", Declaring: ty}
	ty.MembersV = []model.Member{f}

	imp.Prepare(ty)

	sem := imp.GetFieldSemantics(f)
	if sem.ImplKind != FieldStringConstant {
		t.Fatalf("got ImplKind %v, want FieldStringConstant", sem.ImplKind)
	}
	if sem.ConstantValue != "Red" {
		t.Fatalf("got constant value %v, want %q", sem.ConstantValue, "Red")
	}
}

func TestProcessFieldMinifiedConstGetsReservedName(t *testing.T) {
	imp := New(Config{Minify: true})
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	f := &model.FixtureField{
		NameV: "MaxCount", Declaring: ty,
		ConstV: true, ConstValueV: int32(10),
	}
	ty.MembersV = []model.Member{f}

	imp.Prepare(ty)

	sem := imp.GetFieldSemantics(f)
	if sem.ImplKind != FieldNumericConstant {
		t.Fatalf("got ImplKind %v, want FieldNumericConstant", sem.ImplKind)
	}
	if sem.Name == "" {
		t.Fatal("minified numeric const should still carry a reserved script name")
	}
}
