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

import "fmt"

// ConnectionError is returned when no response could be obtained from the
// server: DNS failures, refused connections, timeouts or a broken body read.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error for URL '%s': %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// UnexpectedStatusError is returned when the server answered with a status
// code outside of the expected set.
type UnexpectedStatusError struct {
	Expected StatusSet
	Actual   int
	URL      string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf(
		"expected %s response code but got '%d' for URL '%s'",
		e.Expected, e.Actual, e.URL,
	)
}

// TransformError wraps a failure of the success function.
type TransformError struct {
	URL string
	Err error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("processing response from URL '%s': %v", e.URL, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }
