package handlers

import (
	"sakila-backend/internal/models"
	"sakila-backend/internal/services"

	"github.com/shopspring/decimal"
)

// FilmRequest is the body of POST /api/films.
type FilmRequest struct {
	Title              *string  `json:"title" validate:"required,min=10,max=45" example:"The Film Title"`
	Description        *string  `json:"description" validate:"required,min=10,max=45" example:"Description of the film 10"`
	ReleaseYear        *int     `json:"release_year" validate:"omitempty,gte=1901,lte=2155" example:"2023"`
	LanguageID         *int     `json:"language_id" validate:"required" example:"1"`
	OriginalLanguageID *int     `json:"original_language_id" validate:"omitempty" example:"2"`
	RentalDuration     *int     `json:"rental_duration" validate:"required,gte=0,lte=32767" example:"5"`
	RentalRate         *float64 `json:"rental_rate" validate:"required,gte=0,lte=99.99" example:"7.99"`
	Length             *int     `json:"length" validate:"omitempty,gte=0,lte=32767" example:"120"`
	ReplacementCost    *float64 `json:"replacement_cost" validate:"required,gte=0,lte=999.99" example:"24.99"`
	Rating             *string  `json:"rating" validate:"required,film_rating" enums:"G,PG,PG-13,R,NC-17" example:"PG-13"`
	SpecialFeatures    []string `json:"special_features" validate:"omitempty,dive,special_feature" example:"Trailers,Deleted Scenes"`
}

func (r *FilmRequest) toInput() services.FilmInput {
	return services.FilmInput{
		Title:              *r.Title,
		Description:        *r.Description,
		ReleaseYear:        r.ReleaseYear,
		LanguageID:         *r.LanguageID,
		OriginalLanguageID: r.OriginalLanguageID,
		RentalDuration:     *r.RentalDuration,
		RentalRate:         money(*r.RentalRate),
		Length:             r.Length,
		ReplacementCost:    money(*r.ReplacementCost),
		Rating:             models.FilmRating(*r.Rating),
		SpecialFeatures:    r.SpecialFeatures,
	}
}

// FilmUpdateRequest is the body of PATCH /api/films/{id}; absent or null fields are left unchanged.
type FilmUpdateRequest struct {
	Title              *string  `json:"title" validate:"omitempty,min=10,max=45" example:"The Film Title"`
	Description        *string  `json:"description" validate:"omitempty,min=10,max=45" example:"Description of the film 10"`
	ReleaseYear        *int     `json:"release_year" validate:"omitempty,gte=1901,lte=2155" example:"2023"`
	LanguageID         *int     `json:"language_id" validate:"omitempty" example:"1"`
	OriginalLanguageID *int     `json:"original_language_id" validate:"omitempty" example:"2"`
	RentalDuration     *int     `json:"rental_duration" validate:"omitempty,gte=0,lte=32767" example:"5"`
	RentalRate         *float64 `json:"rental_rate" validate:"omitempty,gte=0,lte=99.99" example:"7.99"`
	Length             *int     `json:"length" validate:"omitempty,gte=0,lte=32767" example:"120"`
	ReplacementCost    *float64 `json:"replacement_cost" validate:"omitempty,gte=0,lte=999.99" example:"24.99"`
	Rating             *string  `json:"rating" validate:"omitempty,film_rating" enums:"G,PG,PG-13,R,NC-17" example:"R"`
	SpecialFeatures    []string `json:"special_features" validate:"omitempty,dive,special_feature" example:"Commentaries"`
}

func (r *FilmUpdateRequest) toPatch() services.FilmPatch {
	patch := services.FilmPatch{
		Title:              r.Title,
		Description:        r.Description,
		ReleaseYear:        r.ReleaseYear,
		LanguageID:         r.LanguageID,
		OriginalLanguageID: r.OriginalLanguageID,
		RentalDuration:     r.RentalDuration,
		Length:             r.Length,
		SpecialFeatures:    r.SpecialFeatures,
	}
	if r.RentalRate != nil {
		rate := money(*r.RentalRate)
		patch.RentalRate = &rate
	}
	if r.ReplacementCost != nil {
		cost := money(*r.ReplacementCost)
		patch.ReplacementCost = &cost
	}
	if r.Rating != nil {
		rating := models.FilmRating(*r.Rating)
		patch.Rating = &rating
	}
	return patch
}

// money keeps the two fractional digits the numeric columns store.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
