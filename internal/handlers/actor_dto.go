package handlers

import "sakila-backend/internal/services"

// ActorRequest is the body of POST /api/actors.
type ActorRequest struct {
	FirstName *string `json:"first_name" validate:"required,actor_name_min,actor_name_max" example:"Nguyen Duc"`
	LastName  *string `json:"last_name" validate:"required,actor_name_min,actor_name_max" example:"Hoa 21424019"`
}

func (r *ActorRequest) toInput() services.ActorInput {
	return services.ActorInput{
		FirstName: *r.FirstName,
		LastName:  *r.LastName,
	}
}
