package routes

import (
	artistsapi "artist-portal/internal/api/artists"
	authapi "artist-portal/internal/api/auth"
	catalogapi "artist-portal/internal/api/catalog"
	changerequestsapi "artist-portal/internal/api/changerequests"
	"artist-portal/internal/app/http/middleware"
	"artist-portal/internal/contract"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Registered outside the sanitizer so base64 payloads pass through
	// untouched.
	r.POST(contract.ChangeRequestUpload.Path, changerequestsapi.UploadFile)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST(contract.AuthLogin.Path, authapi.Login)

	public.GET(contract.ArtistGet.Path, artistsapi.GetArtist)
	public.PATCH(contract.ArtistUpdate.Path, artistsapi.UpdateArtist)

	public.GET(contract.ReleaseList.Path, catalogapi.ListReleases)
	public.GET(contract.ReleaseTracks.Path, catalogapi.GetReleaseTracks)
	public.POST(contract.ReleaseCreate.Path, catalogapi.CreateRelease)

	public.GET(contract.TrackFeatures.Path, catalogapi.GetTrackFeatures)

	public.POST(contract.ChangeRequestCreate.Path, changerequestsapi.CreateChangeRequest)
}
