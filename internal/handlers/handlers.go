package handlers

import "net/http"

// Greeting is the fixed response body served at the root route. The CI/CD
// pipeline health-checks the container by asserting this exact string.
const Greeting = "Simple Express app for the CI/CD Actions"

// Root handles GET / and returns the fixed greeting. Query string, headers,
// and body are ignored; there is no per-request state.
func Root(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(Greeting)) //nolint:errcheck
}

// NotFound answers every unmatched path or method with a plain 404.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("404 page not found")) //nolint:errcheck
}
