package authors

// CreateAuthorPayload is the form/JSON body for creating an author. Names are
// trimmed and must be alphanumeric; dates are optional YYYY-MM-DD strings.
type CreateAuthorPayload struct {
	FirstName   string `json:"first_name" form:"first_name" mod:"trim" validate:"required,max=100,alphanum"`
	FamilyName  string `json:"family_name" form:"family_name" mod:"trim" validate:"required,max=100,alphanum"`
	DateOfBirth string `json:"date_of_birth" form:"date_of_birth" mod:"trim" validate:"omitempty,date"`
	DateOfDeath string `json:"date_of_death" form:"date_of_death" mod:"trim" validate:"omitempty,date"`
}

// UpdateAuthorPayload re-validates the full form on update.
type UpdateAuthorPayload struct {
	FirstName   string `json:"first_name" form:"first_name" mod:"trim" validate:"required,max=100,alphanum"`
	FamilyName  string `json:"family_name" form:"family_name" mod:"trim" validate:"required,max=100,alphanum"`
	DateOfBirth string `json:"date_of_birth" form:"date_of_birth" mod:"trim" validate:"omitempty,date"`
	DateOfDeath string `json:"date_of_death" form:"date_of_death" mod:"trim" validate:"omitempty,date"`
}
