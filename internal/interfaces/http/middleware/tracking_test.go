package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/auth"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/geolocation"
)

type fakeTrackingRepo struct {
	mu         sync.Mutex
	sessions   map[string]*entities.Session
	activities []entities.UserActivity
	failWrites bool
}

func newFakeTrackingRepo() *fakeTrackingRepo {
	return &fakeTrackingRepo{sessions: map[string]*entities.Session{}}
}

func (f *fakeTrackingRepo) UpsertSession(ctx context.Context, visit *entities.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errors.New("database gone")
	}
	existing, ok := f.sessions[visit.SessionID]
	if !ok {
		copied := *visit
		f.sessions[visit.SessionID] = &copied
		return nil
	}
	existing.LastActivity = visit.LastActivity
	existing.VisitCount++
	if existing.CustomerID == nil && visit.CustomerID != nil {
		existing.CustomerID = visit.CustomerID
		existing.UserType = visit.UserType
	}
	return nil
}

func (f *fakeTrackingRepo) InsertActivity(ctx context.Context, activity *entities.UserActivity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errors.New("database gone")
	}
	f.activities = append(f.activities, *activity)
	return nil
}

func (f *fakeTrackingRepo) GetActivities(ctx context.Context, skip, limit int, eventType, sessionID string) ([]entities.UserActivity, int64, error) {
	return nil, 0, nil
}

func (f *fakeTrackingRepo) GetSessions(ctx context.Context, skip, limit int) ([]entities.Session, int64, error) {
	return nil, 0, nil
}

func (f *fakeTrackingRepo) CountOnlineSessions(ctx context.Context, window time.Duration) (int64, error) {
	return 0, nil
}

func (f *fakeTrackingRepo) CountByEventType(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func (f *fakeTrackingRepo) CountByDeviceType(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func (f *fakeTrackingRepo) CountByCountry(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

type fakeGeoResolver struct {
	loc *geolocation.Location
	err error
}

func (f *fakeGeoResolver) Resolve(ip string) (*geolocation.Location, error) {
	return f.loc, f.err
}

func guestResolver(c *fiber.Ctx) *auth.Principal { return nil }

func newTrackedApp(repo *fakeTrackingRepo, geo geolocation.Resolver, principal PrincipalResolver) *fiber.App {
	app := fiber.New()
	app.Use(NewTracker(repo, geo, principal).Handle())
	app.Get("/*", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Post("/*", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func sessionCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName {
			return c.Value
		}
	}
	return ""
}

func TestTrackerRecordsNewSession(t *testing.T) {
	repo := newFakeTrackingRepo()
	geo := &fakeGeoResolver{loc: &geolocation.Location{Country: "US", Region: "California", City: "Mountain View"}}
	app := newTrackedApp(repo, geo, guestResolver)

	req := httptest.NewRequest("GET", "/api/products?utm_source=newsletter&utm_campaign=summer", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Referer", "https://www.google.com/search?q=shoes")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	sid := sessionCookie(resp)
	if sid == "" {
		t.Fatal("no session_id cookie issued")
	}

	visit, ok := repo.sessions[sid]
	if !ok {
		t.Fatalf("no session row for %s", sid)
	}
	if visit.VisitCount != 1 {
		t.Errorf("visit_count = %d, want 1", visit.VisitCount)
	}
	if visit.UserType != entities.UserTypeGuest || visit.CustomerID != nil {
		t.Errorf("new guest session got principal: %+v", visit)
	}
	if visit.UtmSource != "newsletter" || visit.UtmCampaign != "summer" {
		t.Errorf("UTM params not captured: %+v", visit)
	}
	if visit.ReferringSite != "www.google.com" {
		t.Errorf("referring site = %q, want www.google.com", visit.ReferringSite)
	}
	if visit.Country != "US" || visit.City != "Mountain View" {
		t.Errorf("geolocation not applied: %+v", visit)
	}
	if visit.DeviceType != "desktop" {
		t.Errorf("device type = %q, want desktop", visit.DeviceType)
	}
	if !strings.Contains(visit.Browser, "Chrome") {
		t.Errorf("browser = %q, want Chrome", visit.Browser)
	}

	if len(repo.activities) != 1 {
		t.Fatalf("got %d activities, want 1", len(repo.activities))
	}
	act := repo.activities[0]
	if act.SessionID != sid {
		t.Errorf("activity session = %q, want %q", act.SessionID, sid)
	}
	if act.EventType != entities.EventPageview {
		t.Errorf("event type = %q, want pageview", act.EventType)
	}
	if !strings.Contains(act.QueryParams, "newsletter") {
		t.Errorf("query params not serialized: %q", act.QueryParams)
	}
	if act.TimeSpent < 0 {
		t.Errorf("time spent = %d", act.TimeSpent)
	}
}

func TestTrackerReusesSessionCookie(t *testing.T) {
	repo := newFakeTrackingRepo()
	app := newTrackedApp(repo, &fakeGeoResolver{}, guestResolver)

	first, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	sid := sessionCookie(first)
	if sid == "" {
		t.Fatal("no session cookie on first request")
	}

	second := httptest.NewRequest("GET", "/api/categories", nil)
	second.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sid})
	resp, err := app.Test(second)
	if err != nil {
		t.Fatalf("second request: %v", err)
	}
	if got := sessionCookie(resp); got != "" {
		t.Errorf("cookie re-issued on returning visit: %q", got)
	}

	if len(repo.sessions) != 1 {
		t.Fatalf("got %d session rows, want 1", len(repo.sessions))
	}
	if repo.sessions[sid].VisitCount != 2 {
		t.Errorf("visit_count = %d, want 2", repo.sessions[sid].VisitCount)
	}
	if len(repo.activities) != 2 {
		t.Errorf("got %d activities, want 2", len(repo.activities))
	}
}

func TestTrackerSkipsExcludedPaths(t *testing.T) {
	repo := newFakeTrackingRepo()
	app := newTrackedApp(repo, &fakeGeoResolver{}, guestResolver)

	for _, path := range []string{"/static/css/site.css", "/docs", "/openapi.json"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		if err != nil {
			t.Fatalf("request %s: %v", path, err)
		}
		// Cookie still issued, only persistence is skipped
		if sessionCookie(resp) == "" {
			t.Errorf("%s: no session cookie issued", path)
		}
	}

	if len(repo.sessions) != 0 || len(repo.activities) != 0 {
		t.Errorf("excluded paths were recorded: %d sessions, %d activities",
			len(repo.sessions), len(repo.activities))
	}
}

func TestTrackerClassifiesEvents(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"GET", "/api/products/88", entities.EventProductView},
		{"POST", "/api/cart/items", entities.EventAddToCart},
		{"GET", "/api/search?q=shoes", entities.EventSearch},
	}

	for _, tt := range tests {
		repo := newFakeTrackingRepo()
		app := newTrackedApp(repo, &fakeGeoResolver{}, guestResolver)

		if _, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil)); err != nil {
			t.Fatalf("%s %s: %v", tt.method, tt.path, err)
		}
		if len(repo.activities) != 1 {
			t.Fatalf("%s %s: got %d activities", tt.method, tt.path, len(repo.activities))
		}
		if got := repo.activities[0].EventType; got != tt.want {
			t.Errorf("%s %s: event = %q, want %q", tt.method, tt.path, got, tt.want)
		}
	}
}

// Geolocation failure degrades the row, it never breaks the request.
func TestTrackerSurvivesGeolocationFailure(t *testing.T) {
	repo := newFakeTrackingRepo()
	geo := &fakeGeoResolver{err: errors.New("service unavailable")}
	app := newTrackedApp(repo, geo, guestResolver)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	sid := sessionCookie(resp)
	visit, ok := repo.sessions[sid]
	if !ok {
		t.Fatal("session row missing")
	}
	if visit.Country != "" || visit.Region != "" || visit.City != "" {
		t.Errorf("geographic fields set despite failure: %+v", visit)
	}
}

func TestTrackerSurvivesRepositoryFailure(t *testing.T) {
	repo := newFakeTrackingRepo()
	repo.failWrites = true
	app := newTrackedApp(repo, &fakeGeoResolver{}, guestResolver)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestTrackerAttachesPrincipal(t *testing.T) {
	repo := newFakeTrackingRepo()
	principal := &auth.Principal{ID: 42, Type: entities.UserTypeCustomer}
	app := newTrackedApp(repo, &fakeGeoResolver{}, func(c *fiber.Ctx) *auth.Principal {
		return principal
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/orders", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	visit := repo.sessions[sessionCookie(resp)]
	if visit == nil {
		t.Fatal("session row missing")
	}
	if visit.CustomerID == nil || *visit.CustomerID != 42 {
		t.Errorf("customer id = %v, want 42", visit.CustomerID)
	}
	if visit.UserType != entities.UserTypeCustomer {
		t.Errorf("user type = %q, want customer", visit.UserType)
	}
}
