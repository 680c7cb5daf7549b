package jtok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseObjectEmpty(t *testing.T) {
	pool := NewPool(4)
	status := Parse([]byte(`{}`), pool)
	assert.Equal(t, StatusOK, status)
	root := pool.Token(0)
	assert.Equal(t, Object, root.Kind)
	assert.Equal(t, 0, root.Size)
}

func TestParseObjectNested(t *testing.T) {
	pool := NewPool(16)
	status := Parse([]byte(`{"a":{"b":1}}`), pool)
	assert.Equal(t, StatusOK, status)

	root := pool.Token(0)
	a := pool.Child(root)
	inner := pool.Child(a)
	assert.Equal(t, Object, inner.Kind)
	b := pool.Child(inner)
	assert.Equal(t, String, b.Kind)
}

func TestParseObjectMultipleKeys(t *testing.T) {
	pool := NewPool(16)
	status := Parse([]byte(`{"a":1,"b":2,"c":3}`), pool)
	assert.Equal(t, StatusOK, status)
	assert.Equal(t, 3, pool.Token(0).Size)
}

func TestParseObjectNoKey(t *testing.T) {
	for _, input := range []string{`{123}`, `{[1]}`, `{true}`} {
		pool := NewPool(8)
		status := Parse([]byte(input), pool)
		assert.Equal(t, StatusObjNoKey, status, "input %q", input)
	}
}

func TestParseObjectCommaNoKey(t *testing.T) {
	pool := NewPool(8)
	status := Parse([]byte(`{,"a":1}`), pool)
	assert.Equal(t, StatusCommaNoKey, status)
}

func TestParseObjectValNoColon(t *testing.T) {
	pool := NewPool(8)
	status := Parse([]byte(`{"a" 1}`), pool)
	assert.Equal(t, StatusValNoColon, status)
}

func TestParseObjectValNoComma(t *testing.T) {
	pool := NewPool(8)
	status := Parse([]byte(`{"a":1"b":2}`), pool)
	assert.Equal(t, StatusValNoComma, status)
}

func TestParseObjectKeyNoVal(t *testing.T) {
	for _, input := range []string{`{"a"}`, `{"a":}`} {
		pool := NewPool(8)
		status := Parse([]byte(input), pool)
		assert.Equal(t, StatusKeyNoVal, status, "input %q", input)
	}
}

func TestParseObjectKeyMultipleVal(t *testing.T) {
	pool := NewPool(8)
	status := Parse([]byte(`{"a":123:456}`), pool)
	assert.Equal(t, StatusKeyMultipleVal, status)
}

func TestParseObjectPartialToken(t *testing.T) {
	pool := NewPool(8)
	status := Parse([]byte(`{"a":1`), pool)
	assert.Equal(t, StatusPartialToken, status)
}
