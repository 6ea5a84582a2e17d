package catalog

// NewTrackInput is one track entry of a new-release submission. Feature
// names are free text; blank entries are dropped, not stored.
type NewTrackInput struct {
	Title    string   `json:"title" binding:"required"`
	Features []string `json:"features"`
}

type NewReleaseRequest struct {
	ArtistID string  `json:"artistId" binding:"required"`
	AlbumID  string  `json:"albumId" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Year     int     `json:"year" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	CoverURL *string `json:"coverUrl"`

	Tracks []NewTrackInput `json:"tracks"`

	// Free-text submission comments, persisted as a note in upload storage.
	Comments string `json:"comments"`
}
