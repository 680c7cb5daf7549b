package jtok

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel wrapped by ParseErr's returned errors. Use
// errors.Is(err, jtok.ErrParse) to detect a failed parse without
// switching on a Status.
var ErrParse = errors.New("jtok: parse error")

// Status is the exhaustive, closed set of outcomes Parse can report.
// Implementations must not add to or repurpose this vocabulary: tests
// assert on specific members.
type Status int

const (
	// StatusOK: the input was a syntactically valid JSON object.
	StatusOK Status = iota
	// StatusNullParam: the caller supplied a nil source or pool.
	StatusNullParam
	// StatusNoMem: the pool's capacity was reached before the parse completed.
	StatusNoMem
	// StatusNonObject: the first non-whitespace byte was not '{'.
	StatusNonObject
	// StatusNonArray: the array sub-parser was invoked on a byte that is not '['.
	StatusNonArray
	// StatusObjNoKey: found '{', '[', or a primitive where an object key was required.
	StatusObjNoKey
	// StatusEmptyKey: a key's lexeme was the empty string.
	StatusEmptyKey
	// StatusKeyNoVal: the object closed with a key that had no value.
	StatusKeyNoVal
	// StatusKeyMultipleVal: a second value appeared for the same key.
	StatusKeyMultipleVal
	// StatusValNoColon: a value appeared without an intervening ':'.
	StatusValNoColon
	// StatusValNoComma: adjacent key/value pairs appeared without a ',' between them.
	StatusValNoComma
	// StatusCommaNoKey: ',' was encountered where a key was required.
	StatusCommaNoKey
	// StatusStrayComma: a consecutive or leading ',' appeared inside an array.
	StatusStrayComma
	// StatusArraySeparator: two array elements appeared without a ',' between them.
	StatusArraySeparator
	// StatusMixedArray: an array contained elements of more than one kind.
	StatusMixedArray
	// StatusInvalidPrimitive: a number or literal failed the primitive grammar.
	StatusInvalidPrimitive
	// StatusInvalid: any other illegal byte in structural position.
	StatusInvalid
	// StatusInvalidStart: a token's start index was inconsistent with I2.
	StatusInvalidStart
	// StatusInvalidEnd: a token's end index was inconsistent with I2.
	StatusInvalidEnd
	// StatusInvalidParent: a parent relationship was inconsistent with I4/I6.
	StatusInvalidParent
	// StatusObjectInvalidParent: a non-root aggregate's parent was not a key.
	StatusObjectInvalidParent
	// StatusPartialToken: the buffer ended mid-token or mid-container.
	StatusPartialToken
	// StatusBadString: the opening and closing quote styles did not match.
	StatusBadString
	// StatusNestDepthExceeded: recursion depth exceeded MaxNestingDepth.
	StatusNestDepthExceeded
	// StatusUnknownError: reserved for unclassified paths.
	StatusUnknownError
)

// ParseErr runs Parse and translates anything other than StatusOK into
// an error wrapping ErrParse, for callers that prefer idiomatic Go
// error handling over switching on a Status.
func ParseErr(source []byte, pool *Pool) error {
	status := Parse(source, pool)
	if status == StatusOK {
		return nil
	}
	return fmt.Errorf("%w: status %d", ErrParse, status)
}
