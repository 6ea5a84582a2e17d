package artists

// UpdateArtistRequest is a partial update; nil fields are left untouched.
type UpdateArtistRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}
