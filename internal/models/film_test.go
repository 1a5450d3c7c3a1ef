package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilmRating_Valid(t *testing.T) {
	for _, r := range FilmRatings {
		assert.True(t, r.Valid(), string(r))
	}
	assert.False(t, FilmRating("FG").Valid())
	assert.False(t, FilmRating("").Valid())
	assert.False(t, FilmRating("pg-13").Valid())
}

func TestSpecialFeatures_Value(t *testing.T) {
	v, err := SpecialFeatures{"Trailers", "Deleted Scenes"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "Trailers,Deleted Scenes", v)

	v, err = SpecialFeatures(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSpecialFeatures_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want SpecialFeatures
	}{
		{"string", "Trailers,Behind the Scenes", SpecialFeatures{"Trailers", "Behind the Scenes"}},
		{"bytes", []byte("Commentaries"), SpecialFeatures{"Commentaries"}},
		{"empty", "", SpecialFeatures{}},
		{"null", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s SpecialFeatures
			require.NoError(t, s.Scan(tt.src))
			assert.Equal(t, tt.want, s)
		})
	}

	var s SpecialFeatures
	assert.Error(t, s.Scan(42))
}
