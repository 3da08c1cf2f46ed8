package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"yoga@studio.com"`
	Password string `json:"password" validate:"required" example:"test!1234"`
}
