package genres

// CreateGenrePayload is the form/JSON body for creating a genre.
type CreateGenrePayload struct {
	Name string `json:"name" form:"name" mod:"trim,escape" validate:"required,min=3,max=100"`
}

// UpdateGenrePayload re-validates the full form on update.
type UpdateGenrePayload struct {
	Name string `json:"name" form:"name" mod:"trim,escape" validate:"required,min=3,max=100"`
}
