package content

// Block is a named environment wrapping its children in
// \begin{name} ... \end{name}. The name is not checked against any
// vocabulary.
type Block struct {
	env      string
	children children
}

// NewBlock returns an empty block for the environment env.
func NewBlock(env string) *Block { return &Block{env: env} }

// NewBlockWith returns a block for env holding the given children.
func NewBlockWith(env string, nodes ...Node) *Block {
	b := &Block{env: env}
	b.children.append(nodes...)
	return b
}

// Environment returns the environment name.
func (b *Block) Environment() string { return b.env }

func (b *Block) Append(nodes ...Node) { b.children.append(nodes...) }
func (b *Block) Len() int             { return len(b.children) }
func (b *Block) Child(i int) Node     { return b.children[i] }
func (b *Block) Children() []Node     { return b.children.clone() }

func (*Block) Kind() Kind { return KindBlock }
func (*Block) node()      {}

var _ Container = (*Block)(nil)
