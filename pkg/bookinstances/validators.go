package bookinstances

// CreateBookInstancePayload is the form/JSON body for creating a copy of a
// book. DueBack only matters while the copy is unavailable.
type CreateBookInstancePayload struct {
	BookID  int    `json:"book_id" form:"book_id" validate:"required,min=1"`
	Imprint string `json:"imprint" form:"imprint" mod:"trim,escape" validate:"required"`
	Status  string `json:"status" form:"status" mod:"trim" validate:"required,oneof=Available Maintenance Loaned Reserved"`
	DueBack string `json:"due_back" form:"due_back" mod:"trim" validate:"omitempty,date"`
}

// UpdateBookInstancePayload re-validates the full form on update.
type UpdateBookInstancePayload struct {
	BookID  int    `json:"book_id" form:"book_id" validate:"required,min=1"`
	Imprint string `json:"imprint" form:"imprint" mod:"trim,escape" validate:"required"`
	Status  string `json:"status" form:"status" mod:"trim" validate:"required,oneof=Available Maintenance Loaned Reserved"`
	DueBack string `json:"due_back" form:"due_back" mod:"trim" validate:"omitempty,date"`
}
