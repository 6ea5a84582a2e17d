// Package storage persists uploaded assets. Backends are interchangeable:
// callers hand over bytes and a name and get back a publicly fetchable path.
package storage

import (
	"io"
	"log"

	"artist-portal/config"
)

type API interface {
	Save(name string, reader io.Reader) error
	PublicURL(name string) string
}

var active API

// Init selects the backend from config. Called once at process start.
func Init() {
	switch config.STORAGE_BACKEND {
	case "s3":
		active = NewS3Storage(config.S3_BUCKET, config.S3_REGION)
	case "disk", "":
		active = NewDiskStorage(config.UPLOAD_DIR)
	default:
		log.Fatalf("Unknown STORAGE_BACKEND: %s", config.STORAGE_BACKEND)
	}
}

// Use replaces the active backend. Tests point this at a temp directory.
func Use(api API) {
	active = api
}

func Default() API {
	if active == nil {
		log.Fatal("storage.Init not called")
	}
	return active
}
