package books

// CreateBookPayload is the form/JSON body for creating a book. A book has
// exactly one author and any number of genres.
type CreateBookPayload struct {
	Title    string `json:"title" form:"title" mod:"trim,escape" validate:"required,max=300"`
	Summary  string `json:"summary" form:"summary" mod:"trim,escape" validate:"required"`
	ISBN     string `json:"isbn" form:"isbn" mod:"trim" validate:"required"`
	AuthorID int    `json:"author_id" form:"author_id" validate:"required,min=1"`
	GenreIDs []int  `json:"genre_ids" form:"genre_ids" validate:"omitempty,dive,min=1"`
}

// UpdateBookPayload re-validates the full form on update.
type UpdateBookPayload struct {
	Title    string `json:"title" form:"title" mod:"trim,escape" validate:"required,max=300"`
	Summary  string `json:"summary" form:"summary" mod:"trim,escape" validate:"required"`
	ISBN     string `json:"isbn" form:"isbn" mod:"trim" validate:"required"`
	AuthorID int    `json:"author_id" form:"author_id" validate:"required,min=1"`
	GenreIDs []int  `json:"genre_ids" form:"genre_ids" validate:"omitempty,dive,min=1"`
}
