package emitter

import (
	"testing"

	"xlate/pkg/model"
	"xlate/pkg/script"
)

func TestAllocateSingleDimensionalArrayUsesNativeConstructor(t *testing.T) {
	e := New(Config{}, prepared(t))
	got := e.AllocateSingleDimensionalArray(&script.Literal{Kind: script.LitNumber, Num: 3})
	want := "new Array(3)"
	if got.String() != want {
		t.Fatalf("got %q, want %q", got.String(), want)
	}
}

func TestAllocateMultiDimensionalArrayUsesRuntimeHelper(t *testing.T) {
	e := New(Config{}, prepared(t))
	dims := []script.Expr{&script.Literal{Kind: script.LitNumber, Num: 2}, &script.Literal{Kind: script.LitNumber, Num: 3}}
	got := e.AllocateMultiDimensionalArray(dims)
	want := "Script.multidimArray(2, 3)"
	if got.String() != want {
		t.Fatalf("got %q, want %q", got.String(), want)
	}
}

func TestGetMultiDimensionalPlacesArrayBeforeIndices(t *testing.T) {
	e := New(Config{}, prepared(t))
	arr := &script.Ident{Name: "grid"}
	indices := []script.Expr{&script.Ident{Name: "i"}, &script.Ident{Name: "j"}}
	got := e.GetMultiDimensional(arr, indices)
	want := "Script.arrayGet(grid, i, j)"
	if got.String() != want {
		t.Fatalf("got %q, want %q", got.String(), want)
	}
}

func TestSetMultiDimensionalPlacesValueLast(t *testing.T) {
	e := New(Config{}, prepared(t))
	arr := &script.Ident{Name: "grid"}
	indices := []script.Expr{&script.Ident{Name: "i"}, &script.Ident{Name: "j"}}
	value := &script.Ident{Name: "v"}
	got := e.SetMultiDimensional(arr, indices, value)
	want := "Script.arraySet(grid, i, j, v)"
	if got.String() != want {
		t.Fatalf("got %q, want %q", got.String(), want)
	}
}

func TestDefaultValueReferencesTypeAndHelper(t *testing.T) {
	imp := prepared(t)
	ty := &model.FixtureType{NameV: "Point", KindV: model.KindStruct}
	imp.Prepare(ty)
	e := New(Config{}, imp)

	got := e.DefaultValue(ty).String()
	want := "Script.getDefaultValue(<type Point>)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
