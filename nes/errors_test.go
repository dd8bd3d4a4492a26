package nes

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOfUnwrapsWrappedError(t *testing.T) {
	base := newError(Truncated, "need %d bytes", 16)
	wrapped := errors.Wrap(base, "loading rom")

	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, Truncated, kind)
}

func TestKindOfFalseForForeignError(t *testing.T) {
	_, ok := KindOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestErrorStringIncludesMessage(t *testing.T) {
	err := newError(BadInesFormat, "bad magic %v", [4]byte{0, 0, 0, 0})
	assert.Contains(t, err.Error(), "bad magic")
}
