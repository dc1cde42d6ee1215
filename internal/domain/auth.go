package domain

// LoginRequest carries credentials for a login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	FirstName       string `json:"first_name" validate:"required,max=50"`
	LastName        string `json:"last_name" validate:"required,max=50"`
	Phone           string `json:"phone,omitempty" validate:"omitempty,e164"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

// UpdateProfileRequest carries the profile fields a user may change. Nil
// fields are left untouched.
type UpdateProfileRequest struct {
	FirstName *string  `json:"first_name,omitempty" validate:"omitempty,min=1,max=50"`
	LastName  *string  `json:"last_name,omitempty" validate:"omitempty,min=1,max=50"`
	Phone     *string  `json:"phone,omitempty" validate:"omitempty,e164"`
	Address   *Address `json:"address,omitempty"`
}

// Apply returns u with the request's non-nil fields copied over.
func (r UpdateProfileRequest) Apply(u UserProfile) UserProfile {
	if r.FirstName != nil {
		u.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		u.LastName = *r.LastName
	}
	if r.Phone != nil {
		u.Phone = *r.Phone
	}
	if r.Address != nil {
		addr := *r.Address
		u.Address = &addr
	}
	return u
}
