package client

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"artist-portal/database"
	artistsapi "artist-portal/internal/api/artists"
	catalogapi "artist-portal/internal/api/catalog"
	changerequestsapi "artist-portal/internal/api/changerequests"
	routes "artist-portal/internal/app/http"
	"artist-portal/internal/domain/catalog"
	"artist-portal/internal/domain/requests"
	"artist-portal/internal/storage"
	"artist-portal/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "portal.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
	require.NoError(t, store.Default().Seed())

	storage.Use(storage.NewDiskStorage(t.TempDir()))

	r := gin.New()
	routes.RegisterRoutes(r)
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)
	c := New(ts.URL)
	ctx := context.Background()

	result, err := c.Login(ctx, "pass1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "/artist1", result.RedirectURL)

	result, err = c.Login(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid password", result.Error)
}

func TestInactiveReadsSkipNetwork(t *testing.T) {
	c := New("http://127.0.0.1:0") // unreachable on purpose
	ctx := context.Background()

	artist, err := c.GetArtist(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, artist)

	tracks, err := c.GetTracks(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, tracks)

	features, err := c.GetFeatures(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, features)
}

func TestGetArtistNotFound(t *testing.T) {
	ts := newTestServer(t)
	c := New(ts.URL)

	_, err := c.GetArtist(context.Background(), "nobody")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "Artist not found", apiErr.Message)
}

func TestCreateReleaseInvalidatesCache(t *testing.T) {
	ts := newTestServer(t)
	c := New(ts.URL)
	ctx := context.Background()

	releases, err := c.ListReleases(ctx, "artist1")
	require.NoError(t, err)
	require.Len(t, releases, 3)

	// Cached now; a second read without invalidation would answer from it.
	created, err := c.CreateRelease(ctx, catalogapi.NewReleaseRequest{
		ArtistID: "artist1",
		AlbumID:  "surprise_2026",
		Title:    "Surprise Drop",
		Year:     2026,
		Type:     catalog.TypeSingle,
		Tracks:   []catalogapi.NewTrackInput{{Title: "Surprise Drop", Features: []string{"Guest", ""}}},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	releases, err = c.ListReleases(ctx, "artist1")
	require.NoError(t, err)
	require.Len(t, releases, 4, "mutation must invalidate the cached release list")

	tracks, err := c.GetTracks(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, tracks, 1)

	features, err := c.GetFeatures(ctx, tracks[0].ID)
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, "Guest", features[0].ArtistName)
}

func TestUpdateArtistInvalidatesCache(t *testing.T) {
	ts := newTestServer(t)
	c := New(ts.URL)
	ctx := context.Background()

	artist, err := c.GetArtist(ctx, "artist1")
	require.NoError(t, err)
	require.Equal(t, "Yuno $weez", artist.Name)

	name := "Yuno"
	_, err = c.UpdateArtist(ctx, "artist1", artistsapi.UpdateArtistRequest{Name: &name})
	require.NoError(t, err)

	artist, err = c.GetArtist(ctx, "artist1")
	require.NoError(t, err)
	assert.Equal(t, "Yuno", artist.Name)
}

func TestUploadAndChangeRequest(t *testing.T) {
	ts := newTestServer(t)
	c := New(ts.URL)
	ctx := context.Background()

	uploaded, err := c.UploadFile(ctx, "cover.png", requests.ChangeCoverArt, []byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(uploaded.FilePath, ".png"))

	created, err := c.CreateChangeRequest(ctx, changerequestsapi.CreateChangeRequestRequest{
		ReleaseID:  1,
		ChangeType: requests.ChangeCoverArt,
		FilePath:   &uploaded.FilePath,
	})
	require.NoError(t, err)
	assert.Equal(t, requests.StatusPending, created.Status)
	require.NotNil(t, created.FilePath)
	assert.Equal(t, uploaded.FilePath, *created.FilePath)
}
