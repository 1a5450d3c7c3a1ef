package validation_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakila-backend/internal/apperr"
	"sakila-backend/internal/validation"
)

type actorPayload struct {
	FirstName *string `json:"first_name" validate:"required,actor_name_min,actor_name_max"`
	LastName  *string `json:"last_name" validate:"required,actor_name_min,actor_name_max"`
}

type filmPayload struct {
	Title           *string  `json:"title" validate:"required,min=10,max=45"`
	LanguageID      *int     `json:"language_id" validate:"required"`
	Length          *int     `json:"length" validate:"omitempty,gte=0"`
	RentalRate      *float64 `json:"rental_rate" validate:"required,gte=0,lte=99.99"`
	Rating          *string  `json:"rating" validate:"required,film_rating"`
	SpecialFeatures []string `json:"special_features" validate:"omitempty,dive,special_feature"`
}

func str(s string) *string { return &s }
func num(i int) *int       { return &i }
func dec(f float64) *float64 {
	return &f
}

func validFilm() filmPayload {
	return filmPayload{
		Title:           str("The Film Title"),
		LanguageID:      num(1),
		RentalRate:      dec(4.99),
		Rating:          str("PG-13"),
		SpecialFeatures: []string{"Trailers", "Deleted Scenes"},
	}
}

func details(t *testing.T, err error) []apperr.FieldError {
	t.Helper()
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	return ae.Details
}

func TestValidate_Actor(t *testing.T) {
	v := validation.New(validation.DefaultOptions())

	tests := []struct {
		name    string
		payload actorPayload
		want    []apperr.FieldError
	}{
		{
			name:    "valid",
			payload: actorPayload{FirstName: str("Nguyen Duc"), LastName: str("Hoa 21424019")},
		},
		{
			name:    "both_missing",
			payload: actorPayload{},
			want: []apperr.FieldError{
				{Field: "first_name", Message: "The first name is required"},
				{Field: "last_name", Message: "The last name is required"},
			},
		},
		{
			name:    "too_short",
			payload: actorPayload{FirstName: str("Al"), LastName: str("Pacino")},
			want: []apperr.FieldError{
				{Field: "first_name", Message: "The first name is too short"},
				{Field: "last_name", Message: "The last name is too short"},
			},
		},
		{
			name:    "too_long",
			payload: actorPayload{FirstName: str("Nguyen Duc"), LastName: str("Hoa Nguyen Duc Hoa Nguyen Duc Hoa Nguyen Duc Hoa")},
			want: []apperr.FieldError{
				{Field: "last_name", Message: "The last name is too long"},
			},
		},
		{
			name:    "bounds_inclusive",
			payload: actorPayload{FirstName: str("abcdefghij"), LastName: str("abcdefghijabcdefghijabcdefghijabcdefghijabcde")},
		},
		{
			name:    "counts_characters_not_bytes",
			payload: actorPayload{FirstName: str("Nguyễn Đức"), LastName: str("Hòa 21424019")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.payload)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, details(t, err))
		})
	}
}

func TestValidate_ActorBoundsConfigurable(t *testing.T) {
	v := validation.New(validation.Options{ActorNameMin: 3, ActorNameMax: 45})

	assert.NoError(t, v.Validate(&actorPayload{FirstName: str("Ann"), LastName: str("Lee")}))
	got := details(t, v.Validate(&actorPayload{FirstName: str("Al"), LastName: str("Lee")}))
	assert.Equal(t, []apperr.FieldError{{Field: "first_name", Message: "The first name is too short"}}, got)
}

func TestValidate_Film(t *testing.T) {
	v := validation.New(validation.DefaultOptions())

	tests := []struct {
		name   string
		mutate func(p *filmPayload)
		want   []apperr.FieldError
	}{
		{name: "valid", mutate: func(p *filmPayload) {}},
		{name: "optional_absent", mutate: func(p *filmPayload) { p.SpecialFeatures = nil; p.Length = nil }},
		{name: "empty_set", mutate: func(p *filmPayload) { p.SpecialFeatures = []string{} }},
		{
			name:   "title_short",
			mutate: func(p *filmPayload) { p.Title = str("The Film") },
			want:   []apperr.FieldError{{Field: "title", Message: "Minimum: 10 characters"}},
		},
		{
			name:   "title_long",
			mutate: func(p *filmPayload) { p.Title = str("The Film Title That Keeps Going And Going And Going") },
			want:   []apperr.FieldError{{Field: "title", Message: "Maximum: 45 characters"}},
		},
		{
			name:   "rating_outside_enum",
			mutate: func(p *filmPayload) { p.Rating = str("FG") },
			want:   []apperr.FieldError{{Field: "rating", Message: "rating must be one of the following values: G, PG, PG-13, R, NC-17"}},
		},
		{
			name:   "special_feature_outside_set",
			mutate: func(p *filmPayload) { p.SpecialFeatures = []string{"Trailers", "Bloopers", "Outtakes"} },
			want: []apperr.FieldError{{
				Field:   "special_features",
				Message: "each value in special_features must be one of the following values: Trailers, Commentaries, Deleted Scenes, Behind the Scenes",
			}},
		},
		{
			name:   "negative_rate",
			mutate: func(p *filmPayload) { p.RentalRate = dec(-1) },
			want:   []apperr.FieldError{{Field: "rental_rate", Message: "rental_rate must not be less than 0"}},
		},
		{
			name:   "required_numbers",
			mutate: func(p *filmPayload) { p.LanguageID = nil; p.RentalRate = nil },
			want: []apperr.FieldError{
				{Field: "language_id", Message: "language_id is required"},
				{Field: "rental_rate", Message: "rental_rate is required"},
			},
		},
		{
			name:   "zero_is_present",
			mutate: func(p *filmPayload) { p.LanguageID = num(0); p.Length = num(0) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validFilm()
			tt.mutate(&p)
			err := v.Validate(&p)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, details(t, err))
		})
	}
}

func TestValidate_PresetMismatchWinsAndKeepsFieldOrder(t *testing.T) {
	v := validation.New(validation.DefaultOptions())

	p := validFilm()
	p.Rating = str("XXX")
	p.LanguageID = nil

	mismatch := validation.TypeMismatch("language_id", reflect.TypeOf(0))
	got := details(t, v.Validate(&p, mismatch))

	assert.Equal(t, []apperr.FieldError{
		{Field: "language_id", Message: "language_id must be an integer number"},
		{Field: "rating", Message: "rating must be one of the following values: G, PG, PG-13, R, NC-17"},
	}, got)
}

func TestTypeMismatch(t *testing.T) {
	var f float64
	var s string
	var list []string

	assert.Equal(t, "length must be an integer number", validation.TypeMismatch("length", reflect.TypeOf(uint(0))).Message)
	assert.Equal(t, "rental_rate must be a number conforming to the specified constraints", validation.TypeMismatch("rental_rate", reflect.TypeOf(&f)).Message)
	assert.Equal(t, "title must be a string", validation.TypeMismatch("title", reflect.TypeOf(s)).Message)
	assert.Equal(t, "special_features must be an array", validation.TypeMismatch("special_features", reflect.TypeOf(list)).Message)
	assert.Equal(t, "special_features", validation.TypeMismatch("special_features[0]", reflect.TypeOf(s)).Field)
}

func TestValidate_NonStructIsInternal(t *testing.T) {
	v := validation.New(validation.DefaultOptions())

	ae := apperr.As(v.Validate("not a struct"))
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeInternal, ae.Code)
}
