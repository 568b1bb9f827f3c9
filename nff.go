package nff

// --- Tokens of grammar source text -----------------------------------------

// TokType is a category type for a Token. Package scanner defines the
// categories used for grammar source text.
type TokType int

// Tokens represent pieces of grammar source text. They are produced by a
// tokenizer and consumed by the grammar loader.
//
// An example would be the separator of a rule:
//
//    TokType = scanner.Arrow  // identifier for this kind of tokens
//    Lexeme  = "->"           // lexeme how it appeared in the input stream
//    Span    = 2…4            // occured from byte position 2 in the input stream
//    Line    = 1              // on the first line of input
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
	Line() int
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}
