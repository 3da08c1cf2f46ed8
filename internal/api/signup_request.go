package api

// swagger:model api.SignupRequest
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email" example:"alice@mail.fr"`
	FirstName string `json:"firstName" validate:"required,min=3,max=20" example:"Alice"`
	LastName  string `json:"lastName" validate:"required,min=3,max=20" example:"Martin"`
	Password  string `json:"password" validate:"required,min=6,max=40" example:"test!1234"`
}
