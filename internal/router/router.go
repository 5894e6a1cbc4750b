// Package router dispatches API Gateway invocations against a fixed,
// enumerated route table instead of ad hoc method/path string checks.
package router

import "strings"

// Params holds path parameters captured by a match, keyed by the
// pattern's brace names.
type Params map[string]string

// Route pairs an HTTP method and a path pattern with the value to
// dispatch to (typically a handler func). Pattern segments wrapped in
// braces, e.g. "/items/{id}", capture the corresponding non-empty
// request segment.
type Route[T any] struct {
	Method  string
	Pattern string
	Value   T
}

// Table is an ordered route list. Matching is first-hit-wins, so put
// literal patterns before capturing ones when they overlap.
type Table[T any] []Route[T]

// Match returns the value and captured params of the first route
// matching method and path. ok is false when nothing matches.
func (t Table[T]) Match(method, path string) (value T, params Params, ok bool) {
	for _, r := range t {
		if r.Method != method {
			continue
		}
		if p, matched := matchPattern(r.Pattern, path); matched {
			return r.Value, p, true
		}
	}
	var zero T
	return zero, nil, false
}

// matchPattern compares pattern and path segment by segment. Matching
// is exact: no trailing-slash tolerance, and a capture never matches
// an empty segment, so "/items/" matches neither "/items" nor
// "/items/{id}".
func matchPattern(pattern, path string) (Params, bool) {
	want := strings.Split(pattern, "/")
	got := strings.Split(path, "/")
	if len(want) != len(got) {
		return nil, false
	}

	var params Params
	for i, seg := range want {
		if name, isCapture := captureName(seg); isCapture {
			if got[i] == "" {
				return nil, false
			}
			if params == nil {
				params = Params{}
			}
			params[name] = got[i]
			continue
		}
		if seg != got[i] {
			return nil, false
		}
	}
	return params, true
}

func captureName(segment string) (string, bool) {
	if len(segment) > 2 && strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
		return segment[1 : len(segment)-1], true
	}
	return "", false
}
