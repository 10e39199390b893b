package emitter

import (
	"testing"

	"xlate/pkg/model"
)

func TestInstantiateTypeWithNoArgsReturnsRawTypeReference(t *testing.T) {
	imp := prepared(t)
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	imp.Prepare(ty)
	e := New(Config{}, imp)

	got := e.InstantiateType(ty, nil).String()
	want := "<type Widget>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInstantiateTypeForUseAsGenericArgumentMirrorsInstantiateType(t *testing.T) {
	imp := prepared(t)
	ty := &model.FixtureType{NameV: "Widget", KindV: model.KindClass}
	imp.Prepare(ty)
	e := New(Config{}, imp)

	got := e.InstantiateTypeForUseAsGenericArgument(ty, nil).String()
	want := "<type Widget>"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEmitterGetTypeParameterNameResolvesReservedName(t *testing.T) {
	imp := prepared(t)
	ty := &model.FixtureType{NameV: "Box", KindV: model.KindClass}
	tp := &model.FixtureTypeParam{NameV: "T"}
	ty.TypeParametersV = []model.TypeParameter{tp}
	imp.Prepare(ty)
	e := New(Config{}, imp)

	got := e.GetTypeParameterName(tp).String()
	want := "T"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
