package template

// Node is one element of a parsed template. The mini-language has exactly
// three forms: literal text, {{path}} variables, and {{#if path OP literal}}
// conditional blocks.
type Node interface {
	node()
}

// Literal is raw template text, including any malformed {{...}} tokens,
// which pass through verbatim.
type Literal struct {
	Text string
}

// Variable is a whitelisted dotted-path reference.
type Variable struct {
	Path string
}

// Conditional is an {{#if}} block. Parsed is false when the condition had
// no recognizable operator; such blocks always evaluate false and are
// omitted from output.
type Conditional struct {
	Path    string
	Op      string
	Literal string
	IsBool  bool
	Body    []Node
	Parsed  bool
}

func (Literal) node()     {}
func (Variable) node()    {}
func (Conditional) node() {}
