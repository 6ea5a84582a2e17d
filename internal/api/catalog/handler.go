package catalog

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"artist-portal/database"
	"artist-portal/internal/domain/catalog"
	"artist-portal/internal/storage"
	"artist-portal/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GET /api/releases/:id — releases belonging to one artist. Unordered; the
// UI sorts by year descending for display.
func ListReleases(c *gin.Context) {
	releases, err := store.Default().GetReleases(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load releases"})
		return
	}
	c.JSON(http.StatusOK, releases)
}

// GET /api/releases/:id/tracks — tracks of a release in creation order.
func GetReleaseTracks(c *gin.Context) {
	releaseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid release id"})
		return
	}
	tracks, err := store.Default().GetTracks(releaseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tracks"})
		return
	}
	c.JSON(http.StatusOK, tracks)
}

// GET /api/tracks/:trackId/features
func GetTrackFeatures(c *gin.Context) {
	trackID, err := strconv.Atoi(c.Param("trackId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid track id"})
		return
	}
	features, err := store.Default().GetFeatures(trackID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load features"})
		return
	}
	c.JSON(http.StatusOK, features)
}

// POST /api/releases/new — composite create: one release, then a track per
// entry, then a feature per non-blank feature name. The whole sequence runs
// in one transaction so a failed step leaves no orphaned rows.
func CreateRelease(c *gin.Context) {
	var req NewReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	release := catalog.Release{
		AlbumID:  req.AlbumID,
		ArtistID: req.ArtistID,
		Title:    req.Title,
		Year:     req.Year,
		Type:     req.Type,
		CoverURL: req.CoverURL,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		s := store.New(tx)

		if err := s.CreateRelease(&release); err != nil {
			return err
		}

		for _, t := range req.Tracks {
			track := catalog.Track{
				ReleaseID: release.ID,
				Title:     t.Title,
			}
			if err := s.CreateTrack(&track); err != nil {
				return err
			}
			for _, name := range t.Features {
				if strings.TrimSpace(name) == "" {
					continue
				}
				feature := catalog.Feature{TrackID: track.ID, ArtistName: name}
				if err := s.CreateFeature(&feature); err != nil {
					return err
				}
			}
		}

		if req.Comments != "" {
			notePath, err := saveCommentsNote(req)
			if err != nil {
				return err
			}
			release.CommentsPath = &notePath
			if err := tx.Model(&release).Update("comments_path", notePath).Error; err != nil {
				return fmt.Errorf("record comments path: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, release)
}

// saveCommentsNote writes the submission comments as a text note in upload
// storage and returns its public path.
func saveCommentsNote(req NewReleaseRequest) (string, error) {
	name := fmt.Sprintf("comments/%s.txt", uuid.NewString())
	content := fmt.Sprintf("Comments for release: %s\nArtist: %s\n\n%s", req.Title, req.ArtistID, req.Comments)
	if err := storage.Default().Save(name, strings.NewReader(content)); err != nil {
		return "", fmt.Errorf("save comments note: %w", err)
	}
	return storage.Default().PublicURL(name), nil
}
