package nospace

// Builder replays commands against a Tree, tracking the current directory as a stack of ids.
type Builder struct {
	tree  *Tree
	stack []DirID
}

// NewBuilder creates a Builder positioned at the root of a fresh tree.
func NewBuilder() *Builder {
	return &Builder{
		tree:  NewTree(),
		stack: []DirID{Root},
	}
}

// Replay applies cmds to a fresh tree and returns it.
func Replay(cmds []Command) *Tree {
	b := NewBuilder()
	for _, cmd := range cmds {
		b.Apply(cmd)
	}

	return b.Tree()
}

// Tree returns the tree being built.
func (b *Builder) Tree() *Tree {
	return b.tree
}

// Cwd returns the current directory.
func (b *Builder) Cwd() DirID {
	return b.stack[len(b.stack)-1]
}

// Depth returns the size of the directory stack; 1 at the root.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Path returns the path of the current directory.
func (b *Builder) Path() string {
	return b.tree.Path(b.Cwd())
}

// Apply executes one command.
//
// A listing replaces the current directory's files. Listed subdirectories are
// merged into the known children by name: existing nodes keep whatever was
// discovered inside them, and children missing from the listing are kept.
func (b *Builder) Apply(cmd Command) {
	switch c := cmd.(type) {
	case ChangeToRoot:
		b.stack = b.stack[:1]
	case ChangeUp:
		// The root entry is never popped.
		if len(b.stack) > 1 {
			b.stack = b.stack[:len(b.stack)-1]
		}
	case ChangeInto:
		b.stack = append(b.stack, b.tree.Child(b.Cwd(), c.Name))
	case List:
		cwd := b.Cwd()
		for _, name := range c.Dirs {
			b.tree.Child(cwd, name)
		}

		b.tree.SetFiles(cwd, c.Files)
	}
}
