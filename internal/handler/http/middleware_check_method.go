// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/hcorbage/corb3d/internal/app"
	"github.com/hcorbage/corb3d/internal/utils"
)

// knownMethods fixes the order of methods in the Allow header.
var knownMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPatch,
	http.MethodDelete,
}

// routeMethods is one leaf route of the router and the methods it serves.
type routeMethods struct {
	segments []string
	methods  map[string]bool
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// Chi calls it when the request path matches a registered route but the
// method does not. The handler answers 405 with the JSON message envelope and
// an Allow header listing the methods the path does accept. The methods come
// from the leaf routes collected with [chi.Walk]; mount points of sub-routers
// match every method and are never consulted.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	var (
		once   sync.Once
		routes []routeMethods
	)

	return func(w http.ResponseWriter, r *http.Request) {
		// routes are registered after this handler is installed
		once.Do(func() { routes = collectRoutes(router) })

		if allowed := allowedMethods(routes, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}

		utils.WriteMessage(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

func collectRoutes(router chi.Routes) []routeMethods {
	byPattern := map[string]map[string]bool{}
	var order []string

	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		pattern := strings.ReplaceAll(route, "/*/", "/")
		methods, ok := byPattern[pattern]
		if !ok {
			methods = map[string]bool{}
			byPattern[pattern] = methods
			order = append(order, pattern)
		}
		methods[method] = true
		return nil
	})

	routes := make([]routeMethods, 0, len(order))
	for _, pattern := range order {
		routes = append(routes, routeMethods{segments: splitPath(pattern), methods: byPattern[pattern]})
	}
	return routes
}

func allowedMethods(routes []routeMethods, path string) []string {
	requested := splitPath(path)

	seen := map[string]bool{}
	for _, rt := range routes {
		if !matchSegments(rt.segments, requested) {
			continue
		}
		for method := range rt.methods {
			seen[method] = true
		}
	}

	var allowed []string
	for _, method := range knownMethods {
		if seen[method] || seen["*"] {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// matchSegments matches path segments against a chi pattern: "{param}"
// takes one non-empty segment and a trailing "*" takes the rest.
func matchSegments(pattern, path []string) bool {
	for i, seg := range pattern {
		if seg == "*" {
			return true
		}
		if i >= len(path) {
			return false
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if path[i] == "" {
				return false
			}
			continue
		}
		if seg != path[i] {
			return false
		}
	}
	return len(pattern) == len(path)
}

// splitPath splits a path into segments, ignoring a trailing slash, so that
// "/api/materials/" and "/api/materials" compare equal.
func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// notFound answers unknown paths with the JSON message envelope.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, app.MsgNotFound, http.StatusNotFound)
}
