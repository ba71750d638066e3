package content

// Tag is a single-argument command: \name followed by one child.
type Tag struct {
	name  string
	child Node
}

// NewTag wraps child in the command name. A nil child (or nil variant
// pointer) is stored as empty text.
func NewTag(name string, child Node) *Tag {
	if isNil(child) {
		child = Text("")
	}
	return &Tag{name: name, child: child}
}

// Item wraps child in an \item command.
func Item(child Node) *Tag { return NewTag("item", child) }

// Name returns the command name.
func (t *Tag) Name() string { return t.name }

// Child returns the wrapped node.
func (t *Tag) Child() Node { return t.child }

func (*Tag) Kind() Kind { return KindTag }
func (*Tag) node()      {}
