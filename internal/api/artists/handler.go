package artists

import (
	"errors"
	"net/http"

	"artist-portal/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/artists/:artistId
func GetArtist(c *gin.Context) {
	artist, err := store.Default().GetArtist(c.Param("artistId"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}
	c.JSON(http.StatusOK, artist)
}

// PATCH /api/artists/:artistId
func UpdateArtist(c *gin.Context) {
	var req UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artist, err := store.Default().UpdateArtist(c.Param("artistId"), store.ArtistPatch{
		Name:  req.Name,
		Image: req.Image,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist"})
		return
	}
	c.JSON(http.StatusOK, artist)
}
