package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ytget/spotify-streamer/internal/model"
)

// Defaults for Options fields left zero
const (
	DefaultBaseURL     = "https://api.spotify.com/v1"
	DefaultTokenURL    = "https://accounts.spotify.com/api/token"
	DefaultTimeout     = 15 * time.Second
	DefaultRateLimit   = 5.0
	DefaultRateBurst   = 2
	DefaultSearchLimit = 20
	MaxSearchLimit     = 50
)

// Options configures a Client
type Options struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
	RateLimit    float64 // requests per second
	RateBurst    int
	SearchLimit  int
}

// Client is a Spotify Web API catalog client
type Client struct {
	baseURL     string
	searchLimit int
	http        *http.Client
	limiter     *rate.Limiter
	tokens      *TokenSource // nil when no credentials are configured
}

// NewClient creates a catalog client. Zero option fields take the package
// defaults; without a client id requests are sent unauthenticated, which is
// what the mock catalog expects.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.TokenURL == "" {
		opts.TokenURL = DefaultTokenURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = DefaultRateLimit
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = DefaultRateBurst
	}
	if opts.SearchLimit <= 0 || opts.SearchLimit > MaxSearchLimit {
		opts.SearchLimit = DefaultSearchLimit
	}

	httpClient := &http.Client{Timeout: opts.Timeout}

	c := &Client{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		searchLimit: opts.SearchLimit,
		http:        httpClient,
		limiter:     rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateBurst),
	}
	if opts.ClientID != "" {
		c.tokens = NewTokenSource(opts.TokenURL, opts.ClientID, opts.ClientSecret, httpClient)
	}
	return c
}

type imageJSON struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type searchResponse struct {
	Artists struct {
		Items []struct {
			ID     string      `json:"id"`
			Name   string      `json:"name"`
			Images []imageJSON `json:"images"`
		} `json:"items"`
		Total  int `json:"total"`
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	} `json:"artists"`
}

type topTracksResponse struct {
	Tracks []struct {
		Name  string `json:"name"`
		Album struct {
			Name   string      `json:"name"`
			Images []imageJSON `json:"images"`
		} `json:"album"`
		PreviewURL *string `json:"preview_url"`
	} `json:"tracks"`
}

// SearchArtists searches the catalog for artists by name
func (c *Client) SearchArtists(ctx context.Context, query string) ([]Artist, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	val := url.Values{}
	val.Set("q", query)
	val.Set("type", "artist")
	val.Set("limit", strconv.Itoa(c.searchLimit))

	var body searchResponse
	if err := c.get(ctx, "/search?"+val.Encode(), &body); err != nil {
		return nil, fmt.Errorf("searching artists %q: %w", query, err)
	}

	out := make([]Artist, 0, len(body.Artists.Items))
	for _, it := range body.Artists.Items {
		out = append(out, Artist{
			ID:     it.ID,
			Name:   it.Name,
			Images: toImages(it.Images),
		})
	}
	return out, nil
}

// TopTracks returns an artist's top tracks for the given market
func (c *Client) TopTracks(ctx context.Context, artistID, country string) ([]Track, error) {
	if artistID == "" {
		return nil, ErrEmptyArtistID
	}
	if country == "" {
		country = DefaultMarket
	}

	val := url.Values{}
	val.Set("country", country)

	var body topTracksResponse
	path := "/artists/" + url.PathEscape(artistID) + "/top-tracks?" + val.Encode()
	if err := c.get(ctx, path, &body); err != nil {
		return nil, fmt.Errorf("loading top tracks for %s (%s): %w", artistID, country, err)
	}

	out := make([]Track, 0, len(body.Tracks))
	for _, it := range body.Tracks {
		track := Track{
			Name: it.Name,
			Album: Album{
				Name:   it.Album.Name,
				Images: toImages(it.Album.Images),
			},
		}
		if it.PreviewURL != nil {
			track.PreviewURL = *it.PreviewURL
		}
		out = append(out, track)
	}
	return out, nil
}

// get performs a rate limited, authorised GET and decodes the JSON body
func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := decodeAPIError(resp)
		if apiErr.IsUnauthorized() && c.tokens != nil {
			// next request fetches a fresh token
			c.tokens.Invalidate()
		}
		return apiErr
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func toImages(in []imageJSON) []model.Image {
	if len(in) == 0 {
		return nil
	}
	out := make([]model.Image, 0, len(in))
	for _, img := range in {
		out = append(out, model.Image{Width: img.Width, Height: img.Height, URL: img.URL})
	}
	return out
}
