package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightList(t *testing.T) {
	d := Destination{Highlights: "Temples, Modern districts, Japanese cuisine"}
	assert.Equal(t, []string{"Temples", "Modern districts", "Japanese cuisine"}, d.HighlightList())

	d.Highlights = " , Ruins,, "
	assert.Equal(t, []string{"Ruins"}, d.HighlightList())

	d.Highlights = ""
	assert.Empty(t, d.HighlightList())
}

func TestNormalizeEmail(t *testing.T) {
	got, err := NormalizeEmail("  Foo@Example.com\n")
	require.NoError(t, err)
	assert.Equal(t, "Foo@Example.com", got)

	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := NormalizeEmail(in)
		assert.ErrorIs(t, err, ErrEmailRequired)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	assert.True(t, errors.Is(ErrAlreadySubscribed, ErrConflict))
	assert.True(t, errors.Is(ErrSubscribeFailed, ErrConflict))
	assert.False(t, errors.Is(ErrAlreadySubscribed, ErrSubscribeFailed))
	assert.False(t, errors.Is(ErrEmailRequired, ErrConflict))
}
