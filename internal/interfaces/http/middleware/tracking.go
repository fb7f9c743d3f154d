package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/domain/repositories"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/auth"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/geolocation"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/useragent"
)

// SessionCookieName identifies the visitor across requests.
const SessionCookieName = "session_id"

const sessionCookieMaxAge = 30 * 24 * time.Hour

// Paths never recorded in the tracking tables. The session cookie is
// still issued on them.
var excludedPrefixes = []string{"/static/", "/docs", "/openapi.json"}

// PrincipalResolver hands the tracker an already-resolved principal for
// the current request, or nil for a guest. Injected explicitly so the
// tracker has no dependency on how authentication is wired.
type PrincipalResolver func(c *fiber.Ctx) *auth.Principal

// Tracker observes every request and logs one session upsert plus one
// append-only activity row. It never blocks or alters the response:
// every enrichment or persistence failure is logged and swallowed.
type Tracker struct {
	tracking  repositories.ITrackingRepository
	geo       geolocation.Resolver
	principal PrincipalResolver
}

func NewTracker(tracking repositories.ITrackingRepository, geo geolocation.Resolver, principal PrincipalResolver) *Tracker {
	return &Tracker{
		tracking:  tracking,
		geo:       geo,
		principal: principal,
	}
}

func (t *Tracker) Handle() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(SessionCookieName)
		isNewSession := false
		if sessionID == "" {
			sessionID = uuid.NewString()
			isNewSession = true
		}
		// Cart handlers key anonymous carts off the same identifier
		c.Locals(sessionIDKey, sessionID)

		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		if !isExcludedPath(c.Path()) {
			t.record(c, sessionID, elapsed)
		}

		if isNewSession {
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				Expires:  time.Now().Add(sessionCookieMaxAge),
				HTTPOnly: true,
			})
		}
		return err
	}
}

// record captures everything about the finished request and writes the
// session and activity rows. Strictly best-effort.
func (t *Tracker) record(c *fiber.Ctx, sessionID string, elapsed time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[TRACKING] recovered from panic: %v", r)
		}
	}()

	path := c.Path()
	eventType := classifyEvent(c.Method(), path)

	queryParams := map[string]string{}
	c.Request().URI().QueryArgs().VisitAll(func(key, value []byte) {
		queryParams[string(key)] = string(value)
	})
	serializedParams := ""
	if len(queryParams) > 0 {
		if raw, err := json.Marshal(queryParams); err == nil {
			serializedParams = string(raw)
		}
	}

	clientIP := c.IP()
	uaString := c.Get(fiber.HeaderUserAgent)
	device := useragent.Classify(uaString)

	referer := c.Get(fiber.HeaderReferer)
	referringSite := ""
	if referer != "" {
		if parsed, err := url.Parse(referer); err == nil {
			referringSite = parsed.Host
		}
	}

	var country, region, city string
	if loc, err := t.geo.Resolve(clientIP); err != nil {
		// Degraded data, not an error: geographic fields stay unset
		log.Printf("[TRACKING] geolocation lookup failed for %s: %v", clientIP, err)
	} else if loc != nil {
		country = loc.Country
		region = loc.Region
		city = loc.City
	}

	var customerID *int
	userType := entities.UserTypeGuest
	if p := t.principal(c); p != nil {
		id := p.ID
		customerID = &id
		userType = p.Type
	}

	now := time.Now().UTC()

	// The tracker still finishes its write when the client has already
	// disconnected, so the request context is deliberately not used.
	ctx := context.Background()

	visit := &entities.Session{
		SessionID:     sessionID,
		CustomerID:    customerID,
		UserType:      userType,
		IPAddress:     clientIP,
		UserAgent:     uaString,
		FirstVisit:    now,
		LastActivity:  now,
		VisitCount:    1,
		Country:       country,
		Region:        region,
		City:          city,
		DeviceType:    device.Type,
		Browser:       device.Browser,
		OS:            device.OS,
		UtmSource:     c.Query("utm_source"),
		UtmMedium:     c.Query("utm_medium"),
		UtmCampaign:   c.Query("utm_campaign"),
		ReferringSite: referringSite,
	}
	if err := t.tracking.UpsertSession(ctx, visit); err != nil {
		log.Printf("[TRACKING] failed to upsert session %s: %v", sessionID, err)
	}

	activity := &entities.UserActivity{
		SessionID:   sessionID,
		CustomerID:  customerID,
		UserType:    userType,
		IPAddress:   clientIP,
		UserAgent:   uaString,
		URL:         c.BaseURL() + c.OriginalURL(),
		Referer:     referer,
		PageTitle:   pageTitle(path),
		QueryParams: serializedParams,
		TimeSpent:   int(elapsed.Milliseconds()),
		EventType:   eventType,
		Country:     country,
		Region:      region,
		City:        city,
		DateAdded:   now,
	}
	if err := t.tracking.InsertActivity(ctx, activity); err != nil {
		log.Printf("[TRACKING] failed to insert activity for session %s: %v", sessionID, err)
	}
}

func isExcludedPath(path string) bool {
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
