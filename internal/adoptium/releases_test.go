package adoptium

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jdkup/jdkup/internal/service"
)

func newTestClient(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c := New(service.NewHTTPClient(0))
	c.url = srv.URL
	return c
}

func TestAvailableReleases(t *testing.T) {
	c := newTestClient(t, http.StatusOK, `{
		"available_lts_releases": [8, 11, 17, 21],
		"available_releases": [8, 11, 16, 17, 21, 22],
		"most_recent_lts": 21,
		"most_recent_feature_release": 22
	}`)

	rel, err := c.AvailableReleases(context.Background())
	if err != nil {
		t.Fatalf("AvailableReleases err: %v", err)
	}
	if rel.MostRecentLTS != 21 {
		t.Fatalf("most recent LTS = %d, want 21", rel.MostRecentLTS)
	}
	if !rel.IsLTS(17) {
		t.Fatal("17 should be LTS")
	}
	if rel.IsLTS(16) {
		t.Fatal("16 should not be LTS")
	}
}

func TestAvailableReleases_ServerError(t *testing.T) {
	c := newTestClient(t, http.StatusBadGateway, "")

	if _, err := c.AvailableReleases(context.Background()); err == nil {
		t.Fatal("expected error on 502")
	}
}

func TestAvailableReleases_MissingLTSField(t *testing.T) {
	c := newTestClient(t, http.StatusOK, `{"available_releases": [21]}`)

	if _, err := c.AvailableReleases(context.Background()); err == nil {
		t.Fatal("expected error when most_recent_lts is absent")
	}
}
