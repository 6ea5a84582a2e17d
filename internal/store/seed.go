package store

import (
	"fmt"

	"artist-portal/internal/domain/catalog"
)

type seedTrack struct {
	title    string
	explicit bool
	features []string
}

type seedRelease struct {
	albumID  string
	artistID string
	title    string
	year     int
	kind     string
	coverURL string
	tracks   []seedTrack
}

var seedArtists = []catalog.Artist{
	{
		ID:    "artist1",
		Name:  "Yuno $weez",
		Image: strptr("https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=400&fit=crop"),
	},
	{
		ID:    "artist2",
		Name:  "J@M@R",
		Image: strptr("https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=400&h=400&fit=crop"),
	},
}

var seedReleases = []seedRelease{
	{
		albumID:  "weezcity_2025",
		artistID: "artist1",
		title:    "Weezcity",
		year:     2025,
		kind:     catalog.TypeAlbum,
		coverURL: "https://images.unsplash.com/photo-1614613535308-eb5fbd3d2c17?w=400&h=400&fit=crop",
		tracks: []seedTrack{
			{title: "fatimah"},
			{title: "DONOTRUNUPONME!", explicit: true},
			{title: "Beamer", features: []string{"Yuno Benz"}},
			{title: "Issey Miyake"},
			{title: "Oxycodone", explicit: true, features: []string{"JBEETLE"}},
			{title: "SUNDAYMORNINGCHURCH", features: []string{"Jadi"}},
			{title: "Let Me Interlude"},
			{title: "Law F*ck Order", explicit: true},
			{title: "Purple Drank", explicit: true},
			{title: "Givenchy"},
		},
	},
	{
		albumID:  "yuno_nocturnal_2023",
		artistID: "artist1",
		title:    "Nocturnal Sessions",
		year:     2023,
		kind:     catalog.TypeAlbum,
		coverURL: "https://images.unsplash.com/photo-1611339555312-e607c04352fd?w=400&h=400&fit=crop",
		tracks: []seedTrack{
			{title: "Midnight Vibe", explicit: true, features: []string{"Juice WRLD"}},
			{title: "Electric Dreams"},
		},
	},
	{
		albumID:  "yuno_neon_2024",
		artistID: "artist1",
		title:    "Neon Nights",
		year:     2024,
		kind:     catalog.TypeSingle,
		coverURL: "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?w=400&h=400&fit=crop",
		tracks: []seedTrack{
			{title: "Neon Nights", explicit: true},
		},
	},
	{
		albumID:  "jamar_urban_2023",
		artistID: "artist2",
		title:    "Urban Chronicles",
		year:     2023,
		kind:     catalog.TypeAlbum,
		coverURL: "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=400&fit=crop",
		tracks: []seedTrack{
			{title: "Street Poetry", explicit: true, features: []string{"A Boogie"}},
			{title: "City Lights"},
		},
	},
	{
		albumID:  "jamar_block_2024",
		artistID: "artist2",
		title:    "Block Party",
		year:     2024,
		kind:     catalog.TypeSingle,
		coverURL: "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=400&h=400&fit=crop",
		tracks: []seedTrack{
			{title: "Block Party"},
		},
	},
}

// Seed populates the starter catalog: two artists and five releases with
// their tracks and features. It is a guarded check-then-insert, so running
// it on every process start never duplicates data.
func (s *gormStore) Seed() error {
	var artistCount int64
	if err := s.db.Model(&catalog.Artist{}).Count(&artistCount).Error; err != nil {
		return fmt.Errorf("seed: count artists: %w", err)
	}
	if artistCount == 0 {
		if err := s.db.Create(&seedArtists).Error; err != nil {
			return fmt.Errorf("seed: insert artists: %w", err)
		}
	}

	var releaseCount int64
	if err := s.db.Model(&catalog.Release{}).Count(&releaseCount).Error; err != nil {
		return fmt.Errorf("seed: count releases: %w", err)
	}
	if releaseCount > 0 {
		return nil
	}

	for _, sr := range seedReleases {
		release := catalog.Release{
			AlbumID:  sr.albumID,
			ArtistID: sr.artistID,
			Title:    sr.title,
			Year:     sr.year,
			Type:     sr.kind,
			CoverURL: strptr(sr.coverURL),
		}
		if err := s.CreateRelease(&release); err != nil {
			return fmt.Errorf("seed %q: %w", sr.title, err)
		}
		for _, st := range sr.tracks {
			track := catalog.Track{
				ReleaseID: release.ID,
				Title:     st.title,
				Explicit:  st.explicit,
			}
			if err := s.CreateTrack(&track); err != nil {
				return fmt.Errorf("seed %q: %w", sr.title, err)
			}
			for _, name := range st.features {
				feature := catalog.Feature{TrackID: track.ID, ArtistName: name}
				if err := s.CreateFeature(&feature); err != nil {
					return fmt.Errorf("seed %q: %w", sr.title, err)
				}
			}
		}
	}
	return nil
}

func strptr(s string) *string {
	return &s
}
