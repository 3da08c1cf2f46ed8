package api

// JwtResponse is the login payload; Username carries the email.
// swagger:model api.JwtResponse
type JwtResponse struct {
	Token     string `json:"token"`
	Type      string `json:"type" example:"Bearer"`
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}
