package jtok

// parseString scans a quoted lexeme starting at p.pos (which must sit
// on an opening '"' or '\'') and allocates a String token for it (C3).
//
// keyPosition controls whether an empty lexeme is rejected with
// StatusEmptyKey: the grammar allows "" as an ordinary string value
// but not as an object key.
//
// Any byte of the opposite quote class encountered before the
// matching close is treated as the (mismatched) terminator rather
// than as string content, and rejected with StatusBadString — this is
// what makes "a string opened with one quote style cannot be closed
// with the other" an observable, testable behavior rather than a
// silent no-op.
func (p *parser) parseString(keyPosition bool) (int, Status) {
	start := p.pos
	quote := p.source[p.pos]
	p.pos++
	contentStart := p.pos

	for p.pos < len(p.source) && p.source[p.pos] != 0 {
		c := p.source[p.pos]

		if isQuote(c) {
			if c != quote {
				p.pos = start
				return NoIndex, StatusBadString
			}
			if p.pos == contentStart && keyPosition {
				p.pos = start
				return NoIndex, StatusEmptyKey
			}
			idx, status := p.pool.alloc()
			if status != StatusOK {
				p.pos = start
				return NoIndex, status
			}
			tok := p.pool.Token(idx)
			tok.Kind = String
			tok.Start = contentStart
			tok.End = p.pos
			p.pos++
			return idx, StatusOK
		}

		if c == '\\' {
			p.pos++
			if p.pos >= len(p.source) || p.source[p.pos] == 0 {
				p.pos = start
				return NoIndex, StatusPartialToken
			}
			switch p.source[p.pos] {
			case '"', '/', '\\', 'b', 'f', 'r', 'n', 't':
				// single-character escape, content already advanced below
			case 'u':
				for i := 0; i < 4; i++ {
					p.pos++
					if p.pos >= len(p.source) || p.source[p.pos] == 0 {
						p.pos = start
						return NoIndex, StatusPartialToken
					}
					if !isHexDigit(p.source[p.pos]) {
						p.pos = start
						return NoIndex, StatusInvalid
					}
				}
			default:
				p.pos = start
				return NoIndex, StatusInvalid
			}
		}

		p.pos++
	}

	p.pos = start
	return NoIndex, StatusPartialToken
}
