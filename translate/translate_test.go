package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("unknown opcode 100", From("unknown opcode %d", 100))
	assert.Equal("segmentation fault", From("segmentation fault"))
	assert.Equal("en-US", Fallback.String())
}
