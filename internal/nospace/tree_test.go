package nospace

import (
	"reflect"
	"testing"
)

func TestChildGetOrCreate(t *testing.T) {
	tree := NewTree()

	first := tree.Child(Root, "a")
	for range 5 {
		if got := tree.Child(Root, "a"); got != first {
			t.Fatalf("Child(Root, a) = %d, want %d", got, first)
		}
	}

	other := tree.Child(first, "a")
	if other == first {
		t.Errorf("Child(a, a) reused parent id %d", first)
	}

	if tree.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tree.Len())
	}

	if got := tree.Dir(Root).Children; !reflect.DeepEqual(got, []DirID{first}) {
		t.Errorf("root children = %v, want [%d]", got, first)
	}
}

func TestRoot(t *testing.T) {
	tree := NewTree()

	root := tree.Dir(Root)
	if root.Name != "/" || root.Parent != NoParent {
		t.Errorf("root = %+v, want name / and no parent", root)
	}

	if tree.Path(Root) != "/" {
		t.Errorf("Path(Root) = %q, want /", tree.Path(Root))
	}
}

func TestPath(t *testing.T) {
	tree := NewTree()
	a := tree.Child(Root, "a")
	e := tree.Child(a, "e")

	tests := []struct {
		id   DirID
		want string
	}{
		{Root, "/"},
		{a, "/a"},
		{e, "/a/e"},
	}

	for _, tt := range tests {
		if got := tree.Path(tt.id); got != tt.want {
			t.Errorf("Path(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestWalkPreOrder(t *testing.T) {
	tree := NewTree()
	a := tree.Child(Root, "a")
	tree.Child(a, "e")
	tree.Child(Root, "d")

	var got []string

	tree.Walk(func(id DirID, depth int) bool {
		got = append(got, tree.Path(id))

		return true
	})

	want := []string{"/", "/a", "/a/e", "/d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() order = %v, want %v", got, want)
	}
}

func TestWalkSkip(t *testing.T) {
	tree := NewTree()
	a := tree.Child(Root, "a")
	tree.Child(a, "e")

	visited := 0

	tree.Walk(func(id DirID, depth int) bool {
		visited++

		return depth < 1
	})

	if visited != 2 {
		t.Errorf("Walk() visited %d directories, want 2", visited)
	}
}
