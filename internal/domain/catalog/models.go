package catalog

// Release types the UI knows about. The column itself is an open string.
const (
	TypeAlbum  = "album"
	TypeSingle = "single"
)

// Artist is the root of one artist's discography. Rows are created by
// seeding only; the ID is a stable slug ("artist1", "artist2") that doubles
// as the landing path after login.
type Artist struct {
	ID    string  `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"not null" json:"name"`
	Image *string `json:"image"`
}

type Release struct {
	ID       int     `gorm:"primaryKey" json:"id"`
	AlbumID  string  `gorm:"column:album_id;not null" json:"albumId"`
	ArtistID string  `gorm:"column:artist_id;not null;index" json:"artistId"`
	Title    string  `gorm:"not null" json:"title"`
	Year     int     `gorm:"not null" json:"year"`
	Type     string  `gorm:"not null" json:"type"`
	CoverURL *string `gorm:"column:cover_url" json:"coverUrl"`

	// Path of the submission-comments note in upload storage, when the
	// release was created with comments attached.
	CommentsPath *string `gorm:"column:comments_path" json:"commentsPath,omitempty"`
}

// Track order within a release is insertion order (ascending id).
type Track struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	ReleaseID int    `gorm:"column:release_id;not null;index" json:"releaseId"`
	Title     string `gorm:"not null" json:"title"`
	Explicit  bool   `gorm:"not null;default:false" json:"explicit"`
}

// Feature credits a guest artist on a track. ArtistName is free text, not a
// reference to an Artist row; featured artists may be outside the system.
type Feature struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	TrackID    int    `gorm:"column:track_id;not null;index" json:"trackId"`
	ArtistName string `gorm:"column:artist_name;not null" json:"artistName"`
}
