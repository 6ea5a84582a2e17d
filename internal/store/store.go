package store

import (
	"fmt"

	"artist-portal/database"
	"artist-portal/internal/domain/catalog"
	"artist-portal/internal/domain/requests"

	"gorm.io/gorm"
)

// Store is the persistence gateway: one method per read/write operation the
// portal performs. All operations are single-statement queries.
type Store interface {
	GetArtist(artistID string) (*catalog.Artist, error)
	UpdateArtist(artistID string, patch ArtistPatch) (*catalog.Artist, error)
	GetReleases(artistID string) ([]catalog.Release, error)
	CreateRelease(release *catalog.Release) error
	GetTracks(releaseID int) ([]catalog.Track, error)
	CreateTrack(track *catalog.Track) error
	GetFeatures(trackID int) ([]catalog.Feature, error)
	CreateFeature(feature *catalog.Feature) error
	CreateChangeRequest(request *requests.ChangeRequest) error
	Seed() error
}

// ArtistPatch carries the mutable artist fields; nil means "leave as is".
type ArtistPatch struct {
	Name  *string
	Image *string
}

type gormStore struct {
	db *gorm.DB
}

// New wraps a gorm handle (or transaction) as a Store.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Default returns a Store bound to the process-wide database connection.
func Default() Store {
	return New(database.DB)
}

func (s *gormStore) GetArtist(artistID string) (*catalog.Artist, error) {
	var artist catalog.Artist
	if err := s.db.First(&artist, "id = ?", artistID).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (s *gormStore) UpdateArtist(artistID string, patch ArtistPatch) (*catalog.Artist, error) {
	artist, err := s.GetArtist(artistID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if len(updates) == 0 {
		return artist, nil
	}

	if err := s.db.Model(artist).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update artist %s: %w", artistID, err)
	}
	return artist, nil
}

func (s *gormStore) GetReleases(artistID string) ([]catalog.Release, error) {
	var releases []catalog.Release
	err := s.db.Where("artist_id = ?", artistID).Find(&releases).Error
	return releases, err
}

func (s *gormStore) CreateRelease(release *catalog.Release) error {
	if err := s.db.Create(release).Error; err != nil {
		return fmt.Errorf("create release: %w", err)
	}
	return nil
}

func (s *gormStore) GetTracks(releaseID int) ([]catalog.Track, error) {
	var tracks []catalog.Track
	err := s.db.Where("release_id = ?", releaseID).Order("id ASC").Find(&tracks).Error
	return tracks, err
}

func (s *gormStore) CreateTrack(track *catalog.Track) error {
	if err := s.db.Create(track).Error; err != nil {
		return fmt.Errorf("create track: %w", err)
	}
	return nil
}

func (s *gormStore) GetFeatures(trackID int) ([]catalog.Feature, error) {
	var features []catalog.Feature
	err := s.db.Where("track_id = ?", trackID).Find(&features).Error
	return features, err
}

func (s *gormStore) CreateFeature(feature *catalog.Feature) error {
	if err := s.db.Create(feature).Error; err != nil {
		return fmt.Errorf("create feature: %w", err)
	}
	return nil
}

func (s *gormStore) CreateChangeRequest(request *requests.ChangeRequest) error {
	if request.Status == "" {
		request.Status = requests.StatusPending
	}
	if err := s.db.Create(request).Error; err != nil {
		return fmt.Errorf("create change request: %w", err)
	}
	return nil
}
