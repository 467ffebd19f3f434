// file: internals/helpers/slug_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Curug Cibayan", "curug-cibayan"},
		{"  Pasar   Minggu!  ", "pasar-minggu"},
		{"UMKM #1 (Kopi)", "umkm-1-kopi"},
		{"---", ""},
		{"Gula Aren 100%", "gula-aren-100"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input: %q", tc.in)
	}
}
