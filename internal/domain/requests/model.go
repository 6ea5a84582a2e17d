package requests

// Change-request types understood by the portal.
const (
	ChangeCoverArt       = "cover_art"
	ChangeTrackName      = "track_name"
	ChangeAlbumName      = "album_name"
	ChangeExplicit       = "explicit"
	ChangeFeaturedArtist = "featured_artist"
	ChangeAudioSwap      = "audio_swap"
)

// StatusPending is the only status the system ever writes. There is no
// resolution workflow; advancing a request past pending is a manual concern.
const StatusPending = "pending"

type ChangeRequest struct {
	ID          int     `gorm:"primaryKey" json:"id"`
	ReleaseID   int     `gorm:"column:release_id;not null;index" json:"releaseId"`
	TrackID     *int    `gorm:"column:track_id" json:"trackId"`
	ChangeType  string  `gorm:"column:change_type;not null" json:"changeType"`
	Description *string `json:"description"`
	FilePath    *string `gorm:"column:file_path" json:"filePath"`
	Status      string  `gorm:"not null;default:pending" json:"status"`
}

var trackRequired = map[string]bool{
	ChangeTrackName:      true,
	ChangeExplicit:       true,
	ChangeFeaturedArtist: true,
	ChangeAudioSwap:      true,
}

var fileRequired = map[string]bool{
	ChangeCoverArt:  true,
	ChangeAudioSwap: true,
}

// RequiresTrack reports whether a change type targets a single track and so
// needs a track selection. Enforced by the submitting client, not the server.
func RequiresTrack(changeType string) bool {
	return trackRequired[changeType]
}

// RequiresFile reports whether a change type carries an uploaded asset.
// Enforced by the submitting client, not the server.
func RequiresFile(changeType string) bool {
	return fileRequired[changeType]
}
