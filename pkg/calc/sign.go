package calc

// Sign is the effective sign carried by a run of '+'/'-' characters that
// precedes a number.
type Sign int

const (
	Positive Sign = iota
	Negative
)

// SignOf maps '+' and '-' to their Sign. Any other rune is Positive.
func SignOf(r rune) Sign {
	if r == '-' {
		return Negative
	}
	return Positive
}

// Compose folds next into s: equal signs give Positive, different signs give
// Negative.
func (s Sign) Compose(next Sign) Sign {
	if s == next {
		return Positive
	}
	return Negative
}

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// prefix is the text prepended to a digit run before it is parsed.
func (s Sign) prefix() string {
	if s == Negative {
		return "-"
	}
	return ""
}
