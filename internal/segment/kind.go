package segment

// Kind represents the classification of a source span.
type Kind uint8

const (
	// Code is structural source text: everything that is not a literal or comment.
	Code Kind = iota
	// StringLit is a quoted string, including its quote delimiters.
	StringLit
	// PatternLit is a /regex/-style pattern literal, including the slashes.
	PatternLit
	// LineComment is a // comment up to (exclusive of) the line terminator.
	LineComment
	// BlockComment is a /* ... */ comment, including both markers.
	BlockComment
)

func (k Kind) String() string {
	switch k {
	case Code:
		return "Code"
	case StringLit:
		return "StringLit"
	case PatternLit:
		return "PatternLit"
	case LineComment:
		return "LineComment"
	case BlockComment:
		return "BlockComment"
	default:
		return "Unknown"
	}
}
