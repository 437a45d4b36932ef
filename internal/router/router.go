// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router implements an ordered method+path dispatcher.
//
// Routes are kept in registration order and matched with a linear scan: the
// first route whose method matches and whose pattern matches the path wins.
// Registration order therefore carries precedence, so fixed literal routes
// such as /transactions/balance must be registered before parametrized ones
// such as /transactions/{id}.
//
// Patterns are literal text with {name} placeholders. A placeholder only
// binds a run of decimal digits.
package router

import (
	"regexp"
	"strings"
)

var placeholder = regexp.MustCompile(`\{[a-zA-Z0-9_]+\}`)

// Route describes one registration.
type Route struct {
	Method  string
	Pattern string
}

// Match is the outcome of a successful Resolve.
type Match[H any] struct {
	Handler H
	// Params holds the placeholder captures, left to right.
	Params  []string
	Pattern string
}

type compiled[H any] struct {
	Route
	handler H
	matcher *regexp.Regexp
}

// Router is an ordered route table.
//
// Register is meant to be called during start-up only. Once the table is
// built, Resolve may be called from any number of goroutines.
type Router[H any] struct {
	routes []compiled[H]
}

// New returns an empty router.
func New[H any]() *Router[H] {
	return &Router[H]{}
}

// Register appends a route. The pattern is compiled immediately.
func (r *Router[H]) Register(method, pattern string, handler H) {
	r.routes = append(r.routes, compiled[H]{
		Route:   Route{Method: method, Pattern: pattern},
		handler: handler,
		matcher: compile(pattern),
	})
}

// Resolve returns the first route registered for method whose pattern
// matches path.
func (r *Router[H]) Resolve(method, path string) (Match[H], bool) {
	for _, route := range r.routes {
		if route.Method != method {
			continue
		}

		if route.Pattern == path {
			return Match[H]{Handler: route.handler, Params: []string{}, Pattern: route.Pattern}, true
		}

		m := route.matcher.FindStringSubmatch(path)
		if m == nil {
			continue
		}
		return Match[H]{Handler: route.handler, Params: m[1:], Pattern: route.Pattern}, true
	}

	return Match[H]{}, false
}

// Routes lists the registrations in order.
func (r *Router[H]) Routes() []Route {
	out := make([]Route, 0, len(r.routes))
	for _, route := range r.routes {
		out = append(out, route.Route)
	}
	return out
}

func compile(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("^")

	last := 0
	for _, loc := range placeholder.FindAllStringIndex(pattern, -1) {
		b.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		b.WriteString("([0-9]+)")
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(pattern[last:]))

	b.WriteString("$")
	return regexp.MustCompile(b.String())
}
