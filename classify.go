package jtok

// isWhitespace reports whether b is one of the four structural
// whitespace bytes recognized between tokens (C2). It must not be
// applied inside strings or primitives, where every byte is
// significant.
func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// isQuote reports whether b opens or closes a string lexeme. Both '"'
// and '\'' are accepted as quote styles (spec.md's open question on
// single-quote support, resolved in favor of support); C3 enforces
// that the opening and closing quote match.
func isQuote(b byte) bool {
	return b == '"' || b == '\''
}

// isPrimitiveStart reports whether b can begin a primitive lexeme:
// a JSON number's sign or leading digit, or the first letter of
// true/false/null.
func isPrimitiveStart(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b == '-' || b == '+':
		return true
	case b == 't' || b == 'f' || b == 'n':
		return true
	}
	return false
}

// isHexDigit reports whether b is a valid \uXXXX escape digit.
func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	}
	return false
}

// skipWhitespace advances pos past any run of structural whitespace,
// returning the new position.
func skipWhitespace(src []byte, pos int) int {
	for pos < len(src) && isWhitespace(src[pos]) {
		pos++
	}
	return pos
}
