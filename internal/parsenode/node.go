// Package parsenode implements the tagged parse-node representation the C
// parser builds: every grammar production creates a Node identifying its
// token span and kind, with children discovered by the left-to-right
// span-scan rule rather than stored directly at construction time.
package parsenode

// Kind identifies which grammar production produced a Node. Every
// production carries no data beyond its Kind, span, and operator
// metadata; semantics live in the grammar package that built the tree,
// not here.
type Kind int

const (
	KindInvalid Kind = iota

	KindSpecifier
	KindDeclarator
	KindAbstractDeclarator
	KindDeclaration
	KindFunctionDefinition
	KindParameterList
	KindParameter

	KindStatementIf
	KindStatementFor
	KindStatementWhile
	KindStatementDoWhile
	KindStatementSwitch
	KindStatementCase
	KindStatementDefault
	KindStatementReturn
	KindStatementGoto
	KindStatementBreak
	KindStatementContinue
	KindStatementLabel
	KindStatementCompound
	KindStatementExpression
	KindStatementEmpty
	KindStatementAsm

	KindTypedef
	KindClassStructUnionEnum
	KindPreprocLine
	KindTranslationUnit

	KindExpressionPrefix
	KindExpressionBinary
	KindExpressionSuffix
	KindExpressionTernary
	KindExpressionLiteral
	KindExpressionIdentifier
)

// Assoc captures an operator's associativity/fixity for the expression
// fold (spec.md §4.6): ±2 marks prefix/suffix, ±1 left/right-to-left
// binary, 0 means the node is not an operator.
type Assoc int

const (
	AssocNone   Assoc = 0
	AssocLeft   Assoc = 1
	AssocRight  Assoc = -1
	AssocPrefix Assoc = -2
	AssocSuffix Assoc = 2
)

// Node is one recognized grammar production: a token range [TokA, TokB]
// (inclusive), sibling/child pointers among the tree of nodes discovered
// by the span-scan, and operator metadata used only by expression nodes.
//
// Nodes are allocated from an arena.Arena[Node] for the lifetime of one
// parse and never individually freed; Prev/Next/Head/Tail are set up by
// the span-scan helper in tree.go once a production's span is known, not
// by the production itself.
type Node struct {
	Kind Kind

	TokA int
	TokB int

	Prev *Node
	Next *Node
	Head *Node
	Tail *Node

	Precedence int
	Assoc      Assoc
}

// addChild appends child to n's child list (Head/Tail), wiring the
// doubly-linked sibling chain.
func (n *Node) addChild(child *Node) {
	child.Prev = n.Tail
	child.Next = nil
	if n.Tail != nil {
		n.Tail.Next = child
	} else {
		n.Head = child
	}
	n.Tail = child
}

// Children returns n's direct children left-to-right.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.Head; c != nil; c = c.Next {
		out = append(out, c)
	}
	return out
}

// IsOperator reports whether n participates in the expression fold.
func (n *Node) IsOperator() bool { return n.Assoc != AssocNone }
