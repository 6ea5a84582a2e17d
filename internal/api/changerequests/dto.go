package changerequests

// CreateChangeRequestRequest mirrors the change-request form. The per-type
// track/file requirements are enforced client-side; the server accepts any
// combination on purpose (see requests.RequiresTrack / RequiresFile).
type CreateChangeRequestRequest struct {
	ReleaseID   int     `json:"releaseId" binding:"required"`
	TrackID     *int    `json:"trackId"`
	ChangeType  string  `json:"changeType" binding:"required"`
	Description *string `json:"description"`
	FilePath    *string `json:"filePath"`
}

// UploadRequest carries a base64 payload, optionally as a full data URL
// ("data:<mime>;base64,...").
type UploadRequest struct {
	FileData   string `json:"fileData"`
	FileName   string `json:"fileName"`
	ChangeType string `json:"changeType"`
}

type UploadResponse struct {
	ID       int64  `json:"id"`
	FilePath string `json:"filePath"`
	Message  string `json:"message"`
}
