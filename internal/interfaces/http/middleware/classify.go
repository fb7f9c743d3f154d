package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
)

// classifyEvent derives the activity event type from the request path
// and method. Rules are checked in order, first match wins:
//
//	path contains "search"                      -> search
//	path contains "product", last segment digit -> product_view
//	path contains "cart", POST/DELETE/PUT       -> add/remove/update cart
//	anything else                               -> pageview
func classifyEvent(method, path string) string {
	p := strings.ToLower(path)

	if strings.Contains(p, "search") {
		return entities.EventSearch
	}
	if strings.Contains(p, "product") && isAllDigits(lastSegment(p)) {
		return entities.EventProductView
	}
	if strings.Contains(p, "cart") {
		switch method {
		case fiber.MethodPost:
			return entities.EventAddToCart
		case fiber.MethodDelete:
			return entities.EventRemoveFromCart
		case fiber.MethodPut:
			return entities.EventUpdateCart
		}
	}
	return entities.EventPageview
}

func lastSegment(path string) string {
	segments := strings.Split(path, "/")
	return segments[len(segments)-1]
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// pageTitle derives a page label from the path, falling back to "Home"
// for the root.
func pageTitle(path string) string {
	if title := lastSegment(strings.TrimSuffix(path, "/")); title != "" {
		return title
	}
	return "Home"
}
