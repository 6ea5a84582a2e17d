package changerequests

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"artist-portal/internal/domain/requests"
	"artist-portal/internal/storage"
	"artist-portal/internal/store"

	"github.com/gin-gonic/gin"
)

// POST /api/change-requests
func CreateChangeRequest(c *gin.Context) {
	var req CreateChangeRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request := requests.ChangeRequest{
		ReleaseID:   req.ReleaseID,
		TrackID:     req.TrackID,
		ChangeType:  req.ChangeType,
		Description: req.Description,
		FilePath:    req.FilePath,
	}
	if err := store.Default().CreateChangeRequest(&request); err != nil {
		log.Println("Create change request error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create change request"})
		return
	}
	c.JSON(http.StatusCreated, request)
}

// POST /api/change-requests/upload — decodes a base64 payload and stores it
// under a name built from the change type, a millisecond timestamp and the
// original file extension.
func UploadFile(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FileData == "" || req.FileName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file data or name"})
		return
	}

	data, err := base64.StdEncoding.DecodeString(stripDataURLPrefix(req.FileData))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid base64 payload"})
		return
	}

	timestamp := time.Now().UnixMilli()
	name := fmt.Sprintf("%s-%d%s", req.ChangeType, timestamp, filepath.Ext(req.FileName))
	if err := storage.Default().Save(name, bytes.NewReader(data)); err != nil {
		log.Println("Upload error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{
		ID:       timestamp,
		FilePath: storage.Default().PublicURL(name),
		Message:  "File uploaded successfully",
	})
}

func stripDataURLPrefix(fileData string) string {
	if i := strings.Index(fileData, ","); i >= 0 && i < len(fileData)-1 {
		return fileData[i+1:]
	}
	return fileData
}
