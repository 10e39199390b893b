package source

import "testing"

func TestLinesSplitsAndCaches(t *testing.T) {
	f := NewGenerated("<test>", "a\nb\nc")

	got := f.Lines()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if &f.Lines()[0] != &got[0] {
		t.Fatal("Lines should return the cached split on a second call")
	}
}

func TestDisplayPathPrefersPath(t *testing.T) {
	withPath := FromPath("/src/Widget.cs", "class Widget {}")
	if withPath.DisplayPath() != "/src/Widget.cs" {
		t.Fatalf("got %q, want %q", withPath.DisplayPath(), "/src/Widget.cs")
	}

	noPath := NewGenerated("<eval>", "class Widget {}")
	if noPath.DisplayPath() != "<eval>" {
		t.Fatalf("got %q, want %q", noPath.DisplayPath(), "<eval>")
	}
}

func TestIsFileReflectsPathPresence(t *testing.T) {
	if (&File{}).IsFile() {
		t.Fatal("a File with no path should not report IsFile")
	}
	if !FromPath("/src/Widget.cs", "").IsFile() {
		t.Fatal("a File constructed from a path should report IsFile")
	}
}

func TestFromPathDerivesNameFromBase(t *testing.T) {
	f := FromPath("/src/nested/Widget.cs", "")
	if f.Name != "Widget.cs" {
		t.Fatalf("got %q, want %q", f.Name, "Widget.cs")
	}
}
