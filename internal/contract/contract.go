// Package contract is the single source of truth for the wire surface: the
// route layer registers these paths and the Go client builds its URLs from
// them, so the two sides cannot drift apart.
package contract

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type Endpoint struct {
	Method string
	Path   string
}

// The two /api/releases GET routes share the :id wildcard name because the
// router requires a single name per path position; for the list route the
// id is an artist id, for the tracks route a release id.
var (
	AuthLogin           = Endpoint{http.MethodPost, "/api/auth/login"}
	ArtistGet           = Endpoint{http.MethodGet, "/api/artists/:artistId"}
	ArtistUpdate        = Endpoint{http.MethodPatch, "/api/artists/:artistId"}
	ReleaseList         = Endpoint{http.MethodGet, "/api/releases/:id"}
	ReleaseTracks       = Endpoint{http.MethodGet, "/api/releases/:id/tracks"}
	ReleaseCreate       = Endpoint{http.MethodPost, "/api/releases/new"}
	TrackFeatures       = Endpoint{http.MethodGet, "/api/tracks/:trackId/features"}
	ChangeRequestCreate = Endpoint{http.MethodPost, "/api/change-requests"}
	ChangeRequestUpload = Endpoint{http.MethodPost, "/api/change-requests/upload"}
)

// BuildURL substitutes :name tokens in a path template. Values are
// string-coerced and percent-encoded; tokens without a matching param are
// left in place.
func BuildURL(path string, params map[string]interface{}) string {
	if len(params) == 0 {
		return path
	}
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		if value, ok := params[seg[1:]]; ok {
			segments[i] = url.PathEscape(fmt.Sprint(value))
		}
	}
	return strings.Join(segments, "/")
}
