package domain

// AuthResult is the backend's response to a successful login or
// registration: the bearer credential plus the authenticated identity.
type AuthResult struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken,omitempty"`
	User         Identity `json:"user"`
}

// RegisterInput is the registration payload. Role decides which tab set the
// account will see after the implicit login.
type RegisterInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	Role        Role   `json:"role"`
}
