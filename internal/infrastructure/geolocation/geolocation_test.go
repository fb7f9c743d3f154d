package geolocation

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/patrickmn/go-cache"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL, cache.New(cache.NoExpiration, 0)), server
}

func TestResolvePublicAddress(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/8.8.8.8/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"ip":"8.8.8.8","country":"US","region":"California","city":"Mountain View"}`))
	})
	defer server.Close()

	loc, err := client.Resolve("8.8.8.8")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if loc == nil {
		t.Fatal("expected a location")
	}
	if loc.Country != "US" || loc.Region != "California" || loc.City != "Mountain View" {
		t.Errorf("location = %+v", loc)
	}
}

func TestResolveCachesSuccesses(t *testing.T) {
	var calls int32
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"country":"BR","region":"São Paulo","city":"São Paulo"}`))
	})
	defer server.Close()

	for i := 0; i < 3; i++ {
		if _, err := client.Resolve("200.160.2.3"); err != nil {
			t.Fatalf("Resolve #%d: %v", i, err)
		}
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("service called %d times, want 1", got)
	}
}

// Failures must not be cached, the next request retries the lookup.
func TestResolveDoesNotCacheFailures(t *testing.T) {
	var calls int32
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"country":"US"}`))
	})
	defer server.Close()

	if _, err := client.Resolve("8.8.4.4"); err == nil {
		t.Fatal("expected error on rate-limited response")
	}
	loc, err := client.Resolve("8.8.4.4")
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if loc == nil || loc.Country != "US" {
		t.Errorf("retry location = %+v", loc)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("service called %d times, want 2", got)
	}
}

// Loopback and private ranges never reach the external service.
func TestResolveSkipsNonPublicAddresses(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected lookup for %s", r.URL.Path)
	})
	defer server.Close()

	for _, ip := range []string{"", "localhost", "127.0.0.1", "::1", "10.0.0.5", "192.168.1.10", "172.16.0.1", "0.0.0.0", "not-an-ip"} {
		loc, err := client.Resolve(ip)
		if err != nil {
			t.Errorf("Resolve(%q): %v", ip, err)
		}
		if loc != nil {
			t.Errorf("Resolve(%q) = %+v, want nil", ip, loc)
		}
	}
}
