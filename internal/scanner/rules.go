package scanner

// prevClass is the category of the nearest preceding significant code token.
// It exists for exactly one decision: whether a bare '/' opens a pattern
// literal or is a division operator.
type prevClass uint8

const (
	// classStart: nothing significant seen yet (start of input).
	classStart prevClass = iota
	// classOperator: an operator byte (=, +, !, &&-family, ...).
	classOperator
	// classOpenBracket: '(', '[' or '{'.
	classOpenBracket
	// classComma: ','.
	classComma
	// classSemicolon: ';'.
	classSemicolon
	// classKeyword: a word that legally precedes an expression (return, typeof, ...).
	classKeyword
	// classOperand: an identifier, number, closing bracket, or literal,
	// i.e. anything a division operator may legally follow.
	classOperand
)

// patternAllowed is the disambiguation rule table: given the class of the
// preceding significant token, may '/' open a pattern literal here?
var patternAllowed = map[prevClass]bool{
	classStart:       true,
	classOperator:    true,
	classOpenBracket: true,
	classComma:       true,
	classSemicolon:   true,
	classKeyword:     true,
	classOperand:     false,
}

// exprKeywords are the words after which a '/' starts a pattern literal
// rather than a division: they can only be followed by an expression.
var exprKeywords = map[string]bool{
	"return":     true,
	"case":       true,
	"typeof":     true,
	"instanceof": true,
	"new":        true,
	"delete":     true,
	"void":       true,
	"in":         true,
	"of":         true,
	"do":         true,
	"else":       true,
	"yield":      true,
	"throw":      true,
}

var operatorBytes = [256]bool{
	'+': true, '-': true, '*': true, '/': true, '%': true,
	'=': true, '<': true, '>': true, '!': true,
	'&': true, '|': true, '^': true, '~': true,
	'?': true, ':': true,
}

// classify maps a significant non-word code byte to its prevClass.
func classify(b byte) prevClass {
	switch {
	case operatorBytes[b]:
		return classOperator
	case b == '(' || b == '[' || b == '{':
		return classOpenBracket
	case b == ',':
		return classComma
	case b == ';':
		return classSemicolon
	default:
		// Closing brackets, dots and anything unrecognized count as operands:
		// when in doubt, read '/' as division and never eat user code.
		return classOperand
	}
}

// isWordByte reports whether b can be part of an identifier or number.
func isWordByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9')
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isQuoteByte(b byte) bool {
	return b == '"' || b == '\'' || b == '`'
}
