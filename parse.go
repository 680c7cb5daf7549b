package jtok

// Parse scans source, a nul-terminated JSON document, into pool and
// reports the outcome. The input must hold a single complete JSON
// object: the first non-whitespace byte must be '{'; Parse stops as
// soon as the outermost object balances, so any bytes after the
// closing brace (including a trailing nul) are ignored.
//
// On success pool holds the tree rooted at index 0. On any other
// Status, pool's contents are unspecified and must not be inspected.
func Parse(source []byte, pool *Pool) Status {
	if source == nil || pool == nil {
		return StatusNullParam
	}

	pool.reset(source)

	pos := skipWhitespace(source, 0)
	if pos >= len(source) || source[pos] == 0 || source[pos] != '{' {
		return StatusNonObject
	}

	p := &parser{pool: pool, source: source, pos: pos}
	_, status := p.parseObject(0)
	return status
}
