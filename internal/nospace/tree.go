package nospace

import (
	"path"
	"slices"
)

// DirID indexes a directory record in a Tree.
type DirID int

const (
	// Root is the id of the `/` directory. It exists in every Tree.
	Root DirID = 0
	// NoParent is the parent of Root.
	NoParent DirID = -1
)

// File represents a single listed file.
type File struct {
	// Name is the file name within its directory.
	Name string `json:"name"`
	// Size is the size in bytes.
	Size int64 `json:"size"`
}

// Dir is a directory record. Its size is derived from its contents and never stored.
type Dir struct {
	// Name is the directory name; `/` for Root.
	Name string
	// Parent is the containing directory, or NoParent for Root.
	Parent DirID
	// Children lists subdirectories in discovery order.
	Children []DirID
	// Files holds the files from the most recent listing.
	Files []File
}

// Tree is an arena of directory records. Every reference to a directory,
// including the replay stack and traversal results, is a DirID into it.
type Tree struct {
	dirs []Dir
}

// NewTree creates a tree holding only Root.
func NewTree() *Tree {
	return &Tree{dirs: []Dir{{Name: "/", Parent: NoParent}}}
}

// Len returns the number of directories, Root included.
func (t *Tree) Len() int {
	return len(t.dirs)
}

// Dir returns the record for id. The returned slices must not be modified.
func (t *Tree) Dir(id DirID) Dir {
	return t.dirs[id]
}

// Lookup returns the child of parent named name.
func (t *Tree) Lookup(parent DirID, name string) (DirID, bool) {
	idx := slices.IndexFunc(t.dirs[parent].Children, func(child DirID) bool {
		return t.dirs[child].Name == name
	})
	if idx < 0 {
		return NoParent, false
	}

	return t.dirs[parent].Children[idx], true
}

// Child returns the child of parent named name, creating it if it does not exist yet.
// Repeated calls with the same arguments return the same DirID.
func (t *Tree) Child(parent DirID, name string) DirID {
	if id, ok := t.Lookup(parent, name); ok {
		return id
	}

	id := DirID(len(t.dirs))
	t.dirs = append(t.dirs, Dir{Name: name, Parent: parent})
	t.dirs[parent].Children = append(t.dirs[parent].Children, id)

	return id
}

// SetFiles replaces the files of id.
func (t *Tree) SetFiles(id DirID, files []File) {
	t.dirs[id].Files = slices.Clone(files)
}

// Path returns the absolute slash-separated path of id.
func (t *Tree) Path(id DirID) string {
	var names []string

	for cur := id; cur != Root; cur = t.dirs[cur].Parent {
		names = append(names, t.dirs[cur].Name)
	}

	slices.Reverse(names)

	return path.Join(append([]string{"/"}, names...)...)
}

// Walk visits every directory in pre-order, starting at Root.
// Returning false from fn skips the directory's children.
func (t *Tree) Walk(fn func(id DirID, depth int) bool) {
	type frame struct {
		id    DirID
		depth int
	}

	stack := []frame{{id: Root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(top.id, top.depth) {
			continue
		}

		children := t.dirs[top.id].Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: children[i], depth: top.depth + 1})
		}
	}
}
