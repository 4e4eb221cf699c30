package mockcatalog

import "strings"

// Image mirrors the catalog image object
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Artist mirrors the catalog artist object
type Artist struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Images []Image `json:"images"`
}

// Album mirrors the simplified album object embedded in a track
type Album struct {
	Name   string  `json:"name"`
	Images []Image `json:"images"`
}

// Track mirrors the catalog track object
type Track struct {
	Name       string  `json:"name"`
	Album      Album   `json:"album"`
	PreviewURL *string `json:"preview_url"`
}

// Fixtures is the data a Server answers with
type Fixtures struct {
	Artists   []Artist
	TopTracks map[string][]Track
}

// SearchArtists returns artists whose name contains q, case-insensitively,
// in fixture order.
func (f Fixtures) SearchArtists(q string) []Artist {
	q = strings.ToLower(q)
	out := make([]Artist, 0)
	for _, a := range f.Artists {
		if strings.Contains(strings.ToLower(a.Name), q) {
			out = append(out, a)
		}
	}
	return out
}

func images(id string) []Image {
	base := "https://i.scdn.co/image/" + id
	return []Image{
		{URL: base + "-640", Width: 640, Height: 640},
		{URL: base + "-300", Width: 300, Height: 300},
		{URL: base + "-64", Width: 64, Height: 64},
	}
}

func preview(id string) *string {
	s := "https://p.scdn.co/mp3-preview/" + id
	return &s
}

// DefaultFixtures returns a small catalog: three artists matching "duran",
// one artist without pictures and one without any top tracks.
func DefaultFixtures() Fixtures {
	wedding := Album{Name: "Duran Duran (The Wedding Album)", Images: images("wedding")}
	rio := Album{Name: "Rio", Images: images("rio")}

	return Fixtures{
		Artists: []Artist{
			{ID: "0lZoBs4Pzo7R89JM9lxwoT", Name: "Duran Duran", Images: images("duranduran")},
			{ID: "3xQ9ixWQ2ev0kFOVRxGCMi", Name: "Duran Duran Duran", Images: images("ddd")[1:]},
			{ID: "5wbIWUzTPuTxTyG6ouQKqz", Name: "Durand Jones & The Indications", Images: images("durand")},
			{ID: "0oSGxfWSnnOXhD2fKuz2Gy", Name: "David Bowie", Images: images("bowie")},
			{ID: "6c9uYQfNS0kGC2YdM3XiXf", Name: "Unsigned Garage Band", Images: nil},
		},
		TopTracks: map[string][]Track{
			"0lZoBs4Pzo7R89JM9lxwoT": {
				{Name: "Ordinary World", Album: wedding, PreviewURL: preview("ordinaryworld")},
				{Name: "Hungry Like the Wolf", Album: rio, PreviewURL: preview("hungry")},
				{Name: "Rio", Album: rio, PreviewURL: preview("rio")},
				{Name: "Come Undone", Album: wedding, PreviewURL: nil},
			},
			"3xQ9ixWQ2ev0kFOVRxGCMi": {
				{Name: "Burn Down", Album: Album{Name: "Burn Down", Images: nil}, PreviewURL: preview("burndown")},
			},
			"5wbIWUzTPuTxTyG6ouQKqz": {
				{Name: "Is It Any Wonder?", Album: Album{Name: "American Love Call", Images: images("alc")}, PreviewURL: preview("wonder")},
			},
			"0oSGxfWSnnOXhD2fKuz2Gy": {
				{Name: "Heroes", Album: Album{Name: "\"Heroes\"", Images: images("heroes")}, PreviewURL: preview("heroes")},
				{Name: "Starman", Album: Album{Name: "The Rise and Fall of Ziggy Stardust", Images: images("ziggy")}, PreviewURL: preview("starman")},
			},
			"6c9uYQfNS0kGC2YdM3XiXf": {},
		},
	}
}
