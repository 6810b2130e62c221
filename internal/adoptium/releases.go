package adoptium

import (
	"context"
	"fmt"
	"time"

	"github.com/jdkup/jdkup/internal/service"
)

const availableReleasesURL = "https://api.adoptium.net/v3/info/available_releases"

// Releases is the slice of the Adoptium available_releases payload we care
// about: which LTS lines exist and which one is current.
type Releases struct {
	AvailableLTSReleases []int `json:"available_lts_releases"`
	AvailableReleases    []int `json:"available_releases"`
	MostRecentLTS        int   `json:"most_recent_lts"`
	MostRecentFeature    int   `json:"most_recent_feature_release"`
}

type Client struct {
	HTTPClient service.HTTPClient
	url        string
}

func New(c service.HTTPClient) *Client {
	if c == nil {
		c = service.NewHTTPClient(30 * time.Second)
	}
	return &Client{
		HTTPClient: c,
		url:        availableReleasesURL,
	}
}

// AvailableReleases queries the Adoptium API for the published JDK lines.
func (c *Client) AvailableReleases(ctx context.Context) (*Releases, error) {
	var rel Releases
	if err := service.GetJSON(ctx, c.HTTPClient, c.url, &rel); err != nil {
		return nil, fmt.Errorf("failed to fetch available releases: %w", err)
	}
	if rel.MostRecentLTS == 0 {
		return nil, fmt.Errorf("adoptium response is missing most_recent_lts")
	}
	return &rel, nil
}

// IsLTS reports whether version is a published LTS line.
func (r *Releases) IsLTS(version int) bool {
	for _, v := range r.AvailableLTSReleases {
		if v == version {
			return true
		}
	}
	return false
}
