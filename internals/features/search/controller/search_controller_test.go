package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikeTreatsWildcardsAsLiteral(t *testing.T) {
	assert.Equal(t, `\%`, escapeLike(`%`))
	assert.Equal(t, `\_desa`, escapeLike(`_desa`))
	assert.Equal(t, `\\\%`, escapeLike(`\%`))
	assert.Equal(t, "pasar minggu", escapeLike("pasar minggu"))
}
