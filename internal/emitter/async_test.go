package emitter

import (
	"testing"

	"xlate/pkg/script"
)

func TestNewEnumeratorBuildsMakeEnumeratorCall(t *testing.T) {
	e := New(Config{}, prepared(t))
	got := e.NewEnumerator(
		&script.Ident{Name: "moveNext"},
		&script.Ident{Name: "getCurrent"},
		&script.Ident{Name: "dispose"},
	).String()
	want := "Script.makeEnumerator(moveNext, getCurrent, dispose)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNewEnumerableBuildsMakeEnumerableCall(t *testing.T) {
	e := New(Config{}, prepared(t))
	got := e.NewEnumerable(&script.Ident{Name: "factory"}).String()
	want := "Script.makeEnumerable(factory)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNewTaskCompletionSourceBuildsZeroArgCall(t *testing.T) {
	e := New(Config{}, prepared(t))
	got := e.NewTaskCompletionSource().String()
	want := "Script.newTaskCompletionSource()"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSetTaskResultBuildsCallWithSourceAndValue(t *testing.T) {
	e := New(Config{}, prepared(t))
	got := e.SetTaskResult(&script.Ident{Name: "tcs"}, &script.Ident{Name: "v"}).String()
	want := "Script.setTaskResult(tcs, v)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTaskOfBuildsTaskMemberAccess(t *testing.T) {
	e := New(Config{}, prepared(t))
	got := e.TaskOf(&script.Ident{Name: "tcs"}).String()
	want := "tcs.task"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
