/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package http

import (
	"maps"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"k8s.io/utils/ptr"
)

// RequestSpec describes a single HTTP call.
type RequestSpec struct {
	URL     string
	Method  string
	Headers map[string]string

	// Body is sent as the request payload when set.
	Body *string

	// Timeout overrides the agent default for this call when set.
	Timeout *time.Duration
}

// withDefaults returns a copy of the request with the method normalized and the
// timeout defaulted. The receiver is not modified.
func (r *RequestSpec) withDefaults(timeout time.Duration) *RequestSpec {
	out := &RequestSpec{
		URL:     r.URL,
		Method:  strings.ToUpper(strings.TrimSpace(r.Method)),
		Headers: maps.Clone(r.Headers),
		Body:    r.Body,
		Timeout: r.Timeout,
	}
	if out.Method == "" {
		out.Method = http.MethodGet
	}
	if out.Timeout == nil {
		out.Timeout = ptr.To(timeout)
	}
	return out
}

// StatusSet is the set of status codes accepted as a successful response.
type StatusSet []int

// Status returns a StatusSet with the given codes.
func Status(codes ...int) StatusSet {
	return StatusSet(codes)
}

// Contains reports whether code is part of the set.
func (s StatusSet) Contains(code int) bool {
	return slices.Contains(s, code)
}

// String formats the set as a bracketed, comma separated list, ie [200,201].
func (s StatusSet) String() string {
	codes := make([]string, 0, len(s))
	for _, c := range s {
		codes = append(codes, strconv.Itoa(c))
	}
	return "[" + strings.Join(codes, ",") + "]"
}
