package handler

// --- Request types ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest carries an arbitrary subset of the mutable fields.
// Absent fields stay nil and are left untouched by the update.
type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// --- Response types ---

type loginResponse struct {
	Token string `json:"token"`
}

// messageResponse is the envelope for confirmations and terminal errors.
type messageResponse struct {
	Message string `json:"message"`
}

// missingFieldsResponse names the request fields that failed validation.
type missingFieldsResponse struct {
	MissingFields []string `json:"missingFields"`
}
