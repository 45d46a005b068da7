package nospace

import (
	"testing"
)

func TestChangeToRootResetsDepth(t *testing.T) {
	for _, depth := range []int{0, 1, 3, 10} {
		b := NewBuilder()
		for range depth {
			b.Apply(ChangeInto{Name: "x"})
		}

		if b.Depth() != depth+1 {
			t.Fatalf("Depth() = %d after %d cd, want %d", b.Depth(), depth, depth+1)
		}

		b.Apply(ChangeToRoot{})

		if b.Depth() != 1 || b.Cwd() != Root {
			t.Errorf("after cd / from depth %d: Depth() = %d, Cwd() = %d", depth, b.Depth(), b.Cwd())
		}
	}
}

func TestChangeUpAtRoot(t *testing.T) {
	b := NewBuilder()

	b.Apply(ChangeUp{})
	b.Apply(ChangeUp{})

	if b.Depth() != 1 || b.Cwd() != Root {
		t.Errorf("cd .. at root: Depth() = %d, Cwd() = %d", b.Depth(), b.Cwd())
	}
}

func TestChangeIntoReusesNode(t *testing.T) {
	b := NewBuilder()

	b.Apply(ChangeInto{Name: "a"})
	first := b.Cwd()
	b.Apply(ChangeUp{})
	b.Apply(ChangeInto{Name: "a"})

	if b.Cwd() != first {
		t.Errorf("second cd a = %d, want %d", b.Cwd(), first)
	}

	if b.Path() != "/a" {
		t.Errorf("Path() = %q, want /a", b.Path())
	}
}

func TestListPreservesDiscoveredContents(t *testing.T) {
	b := NewBuilder()

	// Enter a before the root was listed.
	b.Apply(ChangeInto{Name: "a"})
	b.Apply(List{Files: []File{{Name: "f", Size: 5}}})
	a := b.Cwd()
	b.Apply(ChangeToRoot{})
	b.Apply(List{Dirs: []string{"a", "b"}, Files: []File{{Name: "g", Size: 1}}})

	tree := b.Tree()

	if id, ok := tree.Lookup(Root, "a"); !ok || id != a {
		t.Fatalf("Lookup(Root, a) = %d, %v, want %d", id, ok, a)
	}

	if got := tree.Size(a); got != 5 {
		t.Errorf("Size(a) = %d, want 5", got)
	}

	if got := tree.Size(Root); got != 6 {
		t.Errorf("Size(Root) = %d, want 6", got)
	}
}

func TestListNeverPrunes(t *testing.T) {
	b := NewBuilder()

	b.Apply(List{Dirs: []string{"a", "b"}, Files: []File{{Name: "old", Size: 1}}})
	b.Apply(List{Dirs: []string{"a"}, Files: []File{{Name: "new", Size: 2}}})

	tree := b.Tree()

	if _, ok := tree.Lookup(Root, "b"); !ok {
		t.Error("directory b was pruned by a later listing")
	}

	if len(tree.Dir(Root).Children) != 2 {
		t.Errorf("root has %d children, want 2", len(tree.Dir(Root).Children))
	}

	files := tree.Dir(Root).Files
	if len(files) != 1 || files[0].Name != "new" {
		t.Errorf("root files = %v, want only new", files)
	}
}
