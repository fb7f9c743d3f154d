package geolocation

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
)

// Location is the resolved geography for a client address. Zero fields
// mean the lookup degraded, not an error condition.
type Location struct {
	Country string `json:"country"`
	Region  string `json:"region"`
	City    string `json:"city"`
}

// Resolver turns a client IP into a Location. A nil Location with nil
// error means the address is not resolvable (loopback, private range).
type Resolver interface {
	Resolve(ip string) (*Location, error)
}

// Client resolves IPs against the ipinfo.io JSON endpoint. Results are
// kept in an injected cache with no expiry: the external service is
// unreliable and rate-limited, so each address is looked up once per
// process. Concurrent first-time lookups for the same address may both
// hit the service; the duplicate write is an idempotent overwrite.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *cache.Cache
}

func NewClient(baseURL string, c *cache.Cache) *Client {
	return &Client{
		baseURL: baseURL,
		// A hung third-party call would stall the owning request.
		http:  &http.Client{Timeout: 3 * time.Second},
		cache: c,
	}
}

func (c *Client) Resolve(ip string) (*Location, error) {
	if !isPublicAddress(ip) {
		return nil, nil
	}

	if cached, found := c.cache.Get(ip); found {
		loc := cached.(Location)
		return &loc, nil
	}

	resp, err := c.http.Get(fmt.Sprintf("%s/%s/json", c.baseURL, ip))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation lookup returned status %d", resp.StatusCode)
	}

	var loc Location
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return nil, err
	}

	c.cache.Set(ip, loc, cache.NoExpiration)
	return &loc, nil
}

func isPublicAddress(ip string) bool {
	if ip == "" || ip == "localhost" {
		return false
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	return !parsed.IsLoopback() && !parsed.IsPrivate() && !parsed.IsUnspecified() && !parsed.IsLinkLocalUnicast()
}
