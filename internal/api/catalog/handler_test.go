package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"artist-portal/database"
	"artist-portal/internal/contract"
	"artist-portal/internal/domain/catalog"
	"artist-portal/internal/storage"
	"artist-portal/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "portal.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
	require.NoError(t, store.Default().Seed())

	uploadDir := t.TempDir()
	storage.Use(storage.NewDiskStorage(uploadDir))

	r := gin.New()
	r.GET(contract.ReleaseList.Path, ListReleases)
	r.GET(contract.ReleaseTracks.Path, GetReleaseTracks)
	r.POST(contract.ReleaseCreate.Path, CreateRelease)
	r.GET(contract.TrackFeatures.Path, GetTrackFeatures)
	return r, uploadDir
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(payload))
	} else {
		reader = strings.NewReader("")
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestListReleasesFiltersByArtist(t *testing.T) {
	r, _ := setup(t)

	w := doJSON(t, r, http.MethodGet, "/api/releases/artist1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var releases []catalog.Release
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &releases))
	require.Len(t, releases, 3)

	var weezcity *catalog.Release
	for i := range releases {
		assert.Equal(t, "artist1", releases[i].ArtistID)
		if releases[i].Title == "Weezcity" {
			weezcity = &releases[i]
		}
	}
	require.NotNil(t, weezcity)

	w = doJSON(t, r, http.MethodGet, contract.BuildURL(contract.ReleaseTracks.Path, map[string]interface{}{"id": weezcity.ID}), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tracks []catalog.Track
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tracks))
	assert.Len(t, tracks, 10)
}

func TestCreateReleaseStoresTracksAndFeatures(t *testing.T) {
	r, _ := setup(t)

	req := NewReleaseRequest{
		ArtistID: "artist1",
		AlbumID:  "next_up_2026",
		Title:    "Next Up",
		Year:     2026,
		Type:     catalog.TypeAlbum,
		Tracks: []NewTrackInput{
			{Title: "Opener", Features: []string{"Guest One", "", "   "}},
			{Title: "Closer", Features: []string{"Guest Two", "Guest Three"}},
		},
	}

	w := doJSON(t, r, http.MethodPost, contract.ReleaseCreate.Path, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var release catalog.Release
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &release))
	require.NotZero(t, release.ID)

	s := store.Default()
	tracks, err := s.GetTracks(release.ID)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "Opener", tracks[0].Title)
	assert.False(t, tracks[0].Explicit)

	features, err := s.GetFeatures(tracks[0].ID)
	require.NoError(t, err)
	require.Len(t, features, 1, "blank feature names must be dropped")
	assert.Equal(t, "Guest One", features[0].ArtistName)

	features, err = s.GetFeatures(tracks[1].ID)
	require.NoError(t, err)
	assert.Len(t, features, 2)
}

func TestCreateReleaseRoundTrip(t *testing.T) {
	r, _ := setup(t)

	cover := "https://example.com/next.png"
	req := NewReleaseRequest{
		ArtistID: "artist2",
		AlbumID:  "encore_2026",
		Title:    "Encore",
		Year:     2026,
		Type:     catalog.TypeSingle,
		CoverURL: &cover,
		Tracks:   []NewTrackInput{{Title: "Encore"}},
	}

	w := doJSON(t, r, http.MethodPost, contract.ReleaseCreate.Path, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created catalog.Release
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, "/api/releases/artist2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var releases []catalog.Release
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &releases))

	var got *catalog.Release
	for i := range releases {
		if releases[i].ID == created.ID {
			got = &releases[i]
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, "Encore", got.Title)
	assert.Equal(t, "encore_2026", got.AlbumID)
	assert.Equal(t, 2026, got.Year)
	assert.Equal(t, catalog.TypeSingle, got.Type)
	require.NotNil(t, got.CoverURL)
	assert.Equal(t, cover, *got.CoverURL)
}

func TestCreateReleasePersistsComments(t *testing.T) {
	r, uploadDir := setup(t)

	req := NewReleaseRequest{
		ArtistID: "artist1",
		AlbumID:  "notes_2026",
		Title:    "Notes",
		Year:     2026,
		Type:     catalog.TypeSingle,
		Tracks:   []NewTrackInput{{Title: "Notes"}},
		Comments: "Please schedule for a Friday release.",
	}

	w := doJSON(t, r, http.MethodPost, contract.ReleaseCreate.Path, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var release catalog.Release
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &release))
	require.NotNil(t, release.CommentsPath)
	require.True(t, strings.HasPrefix(*release.CommentsPath, "/uploads/comments/"))

	name := strings.TrimPrefix(*release.CommentsPath, "/uploads/")
	content, err := os.ReadFile(filepath.Join(uploadDir, filepath.FromSlash(name)))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Comments for release: Notes")
	assert.Contains(t, string(content), "Please schedule for a Friday release.")
}

func TestCreateReleaseRejectsMissingFields(t *testing.T) {
	r, _ := setup(t)

	w := doJSON(t, r, http.MethodPost, contract.ReleaseCreate.Path, map[string]interface{}{"artistId": "artist1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
