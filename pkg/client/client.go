// Package client is a typed Go client for the artist-portal API: one method
// per contract entry, with a small response cache that mutations invalidate
// so subsequent reads refetch.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	artistsapi "artist-portal/internal/api/artists"
	catalogapi "artist-portal/internal/api/catalog"
	changerequestsapi "artist-portal/internal/api/changerequests"
	"artist-portal/internal/contract"
	"artist-portal/internal/domain/catalog"
	"artist-portal/internal/domain/requests"
)

// APIError is a non-2xx application response, as opposed to a transport
// failure, which surfaces as a wrapped error from the underlying client.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type LoginResult struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	Error       string `json:"error,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	cache map[string][]byte
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		cache:      map[string][]byte{},
	}
}

// Login exchanges a passphrase for the artist's landing path. An unknown
// passphrase is a successful call with Success=false.
func (c *Client) Login(ctx context.Context, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.send(ctx, contract.AuthLogin, nil, map[string]string{"password": password}, &result, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetArtist is inactive when artistID is empty: it returns nil without
// touching the network.
func (c *Client) GetArtist(ctx context.Context, artistID string) (*catalog.Artist, error) {
	if artistID == "" {
		return nil, nil
	}
	var artist catalog.Artist
	err := c.getJSON(ctx, contract.ArtistGet, map[string]interface{}{"artistId": artistID}, &artist)
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (c *Client) UpdateArtist(ctx context.Context, artistID string, patch artistsapi.UpdateArtistRequest) (*catalog.Artist, error) {
	var artist catalog.Artist
	params := map[string]interface{}{"artistId": artistID}
	err := c.send(ctx, contract.ArtistUpdate, params, patch, &artist, http.StatusOK)
	if err != nil {
		return nil, err
	}
	c.invalidate(contract.BuildURL(contract.ArtistGet.Path, params))
	return &artist, nil
}

func (c *Client) ListReleases(ctx context.Context, artistID string) ([]catalog.Release, error) {
	if artistID == "" {
		return nil, nil
	}
	var releases []catalog.Release
	err := c.getJSON(ctx, contract.ReleaseList, map[string]interface{}{"id": artistID}, &releases)
	return releases, err
}

func (c *Client) GetTracks(ctx context.Context, releaseID int) ([]catalog.Track, error) {
	if releaseID == 0 {
		return nil, nil
	}
	var tracks []catalog.Track
	err := c.getJSON(ctx, contract.ReleaseTracks, map[string]interface{}{"id": releaseID}, &tracks)
	return tracks, err
}

func (c *Client) GetFeatures(ctx context.Context, trackID int) ([]catalog.Feature, error) {
	if trackID == 0 {
		return nil, nil
	}
	var features []catalog.Feature
	err := c.getJSON(ctx, contract.TrackFeatures, map[string]interface{}{"trackId": trackID}, &features)
	return features, err
}

func (c *Client) CreateChangeRequest(ctx context.Context, req changerequestsapi.CreateChangeRequestRequest) (*requests.ChangeRequest, error) {
	var created requests.ChangeRequest
	err := c.send(ctx, contract.ChangeRequestCreate, nil, req, &created, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UploadFile encodes raw bytes as a data URL before sending, matching what
// a browser FileReader produces.
func (c *Client) UploadFile(ctx context.Context, fileName, changeType string, data []byte) (*changerequestsapi.UploadResponse, error) {
	mimeType := mime.TypeByExtension(filepath.Ext(fileName))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	req := changerequestsapi.UploadRequest{
		FileData:   fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)),
		FileName:   fileName,
		ChangeType: changeType,
	}
	var result changerequestsapi.UploadResponse
	err := c.send(ctx, contract.ChangeRequestUpload, nil, req, &result, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) CreateRelease(ctx context.Context, req catalogapi.NewReleaseRequest) (*catalog.Release, error) {
	var release catalog.Release
	err := c.send(ctx, contract.ReleaseCreate, nil, req, &release, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	// The artist's release list and the new release's track list are stale.
	c.invalidate(contract.BuildURL(contract.ReleaseList.Path, map[string]interface{}{"id": req.ArtistID}))
	c.invalidate(contract.BuildURL(contract.ReleaseTracks.Path, map[string]interface{}{"id": release.ID}))
	return &release, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint contract.Endpoint, params map[string]interface{}, out interface{}) error {
	path := contract.BuildURL(endpoint.Path, params)

	c.mu.Lock()
	cached, ok := c.cache[path]
	c.mu.Unlock()
	if ok {
		return json.Unmarshal(cached, out)
	}

	req, err := http.NewRequestWithContext(ctx, endpoint.Method, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", endpoint.Method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", endpoint.Method, path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return apiError(resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s %s: %w", endpoint.Method, path, err)
	}

	c.mu.Lock()
	c.cache[path] = body
	c.mu.Unlock()
	return nil
}

func (c *Client) send(ctx context.Context, endpoint contract.Endpoint, params map[string]interface{}, in, out interface{}, wantStatus int) error {
	path := contract.BuildURL(endpoint.Path, params)

	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, endpoint.Method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", endpoint.Method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", endpoint.Method, path, err)
	}
	if resp.StatusCode != wantStatus {
		return apiError(resp.StatusCode, body)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("%s %s: %w", endpoint.Method, path, err)
		}
	}
	return nil
}

// invalidate drops every cached read whose path starts with prefix.
func (c *Client) invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.cache {
		if strings.HasPrefix(key, prefix) {
			delete(c.cache, key)
		}
	}
}

func apiError(status int, body []byte) error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	message := payload.Error
	if message == "" {
		message = payload.Message
	}
	return &APIError{StatusCode: status, Message: message}
}
