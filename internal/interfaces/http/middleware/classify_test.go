package middleware

import "testing"

func TestClassifyEvent(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"GET", "/api/search", "search"},
		{"GET", "/api/products/search", "search"},
		{"GET", "/api/products/88", "product_view"},
		{"GET", "/api/products/0042", "product_view"},
		{"GET", "/api/products", "pageview"},
		{"GET", "/api/products/shoes", "pageview"},
		{"POST", "/api/cart/items", "add_to_cart"},
		{"DELETE", "/api/cart/items/3", "remove_from_cart"},
		{"PUT", "/api/cart/items/3", "update_cart"},
		{"GET", "/api/cart", "pageview"},
		{"GET", "/", "pageview"},
		{"GET", "/api/categories/5", "pageview"},
		// search outranks the product rule
		{"GET", "/api/products/search/123", "search"},
		// cart rules only fire on mutating methods
		{"PATCH", "/api/cart/items/3", "pageview"},
	}

	for _, tt := range tests {
		if got := classifyEvent(tt.method, tt.path); got != tt.want {
			t.Errorf("classifyEvent(%s, %s) = %q, want %q", tt.method, tt.path, got, tt.want)
		}
	}
}

func TestPageTitle(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "Home"},
		{"/api/products", "products"},
		{"/api/products/88", "88"},
		{"/api/products/", "products"},
	}
	for _, tt := range tests {
		if got := pageTitle(tt.path); got != tt.want {
			t.Errorf("pageTitle(%s) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
