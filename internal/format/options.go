package format

// DefaultIndentWidth is the number of spaces per nesting level.
const DefaultIndentWidth = 2

type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = DefaultIndentWidth
	}
	return o
}
