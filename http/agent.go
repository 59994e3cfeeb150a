/*
Copyright 2021 The Kubernetes Authors.

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
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout is applied to requests that do not specify their own.
const DefaultTimeout = 5 * time.Second

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//go:generate /usr/bin/env bash -c "cat ../hack/boilerplate/boilerplate.generatego.txt httpfakes/fake_agent_implementation.go > httpfakes/_fake_agent_implementation.go && mv httpfakes/_fake_agent_implementation.go httpfakes/fake_agent_implementation.go"

// Agent is an http agent that performs checked calls.
type Agent struct {
	options agentOptions
	AgentImplementation
}

// AgentImplementation is the actual implementation of the http calls
//
//counterfeiter:generate . AgentImplementation
type AgentImplementation interface {
	SendRequest(*http.Client, *http.Request) (*http.Response, error)
}

type defaultAgentImplementation struct{}

// SuccessFunc transforms the body of a response whose status code was
// expected. The returned bytes become the result of the call.
type SuccessFunc func(body []byte, response *http.Response) ([]byte, error)

// agentOptions has the configurable bits of the agent.
type agentOptions struct {
	Timeout time.Duration // Timeout for requests without their own
	Quiet   bool          // Do not log each request before sending it
}

// String returns a string representation of the options.
func (ao *agentOptions) String() string {
	return fmt.Sprintf(
		"HTTP.Agent options: Timeout: %s - Quiet: %+v", ao.Timeout, ao.Quiet,
	)
}

var defaultAgentOptions = agentOptions{
	Timeout: DefaultTimeout,
}

// NewAgent return a new agent with default options.
func NewAgent() *Agent {
	return &Agent{
		AgentImplementation: &defaultAgentImplementation{},
		options:             defaultAgentOptions,
	}
}

// SetImplementation sets the agent implementation.
func (a *Agent) SetImplementation(impl AgentImplementation) {
	a.AgentImplementation = impl
}

// WithTimeout sets the timeout used when a request does not define one.
func (a *Agent) WithTimeout(timeout time.Duration) *Agent {
	a.options.Timeout = timeout
	return a
}

// WithQuiet turns off the line logged before each request.
func (a *Agent) WithQuiet(quiet bool) *Agent {
	a.options.Quiet = quiet
	return a
}

// Options returns a printable description of the agent options.
func (a *Agent) Options() string {
	return a.options.String()
}

// Client return an net/http client with the specified timeout.
func (a *Agent) Client(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// Call sends the request described by spec exactly once. If the response
// status is part of expected, the body is passed through success and its
// result returned. A nil success returns the body as is.
//
// Errors returned are always one of *ConnectionError, *UnexpectedStatusError
// or *TransformError.
func (a *Agent) Call(
	ctx context.Context, expected StatusSet, spec *RequestSpec, success SuccessFunc,
) ([]byte, error) {
	effective := spec.withDefaults(a.options.Timeout)
	if !a.options.Quiet {
		logrus.Infof("%s: %s", effective.Method, effective.URL)
	}

	request, err := newRequest(ctx, effective)
	if err != nil {
		return nil, &ConnectionError{URL: effective.URL, Err: err}
	}

	response, err := a.AgentImplementation.SendRequest(a.Client(*effective.Timeout), request)
	if err != nil {
		return nil, &ConnectionError{URL: effective.URL, Err: err}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &ConnectionError{
			URL: effective.URL, Err: fmt.Errorf("reading response: %w", err),
		}
	}

	if !expected.Contains(response.StatusCode) {
		return nil, &UnexpectedStatusError{
			Expected: expected, Actual: response.StatusCode, URL: effective.URL,
		}
	}

	if success == nil {
		return body, nil
	}

	result, err := success(body, response)
	if err != nil {
		return nil, &TransformError{URL: effective.URL, Err: err}
	}
	return result, nil
}

// Get sends a GET request to url and returns the body if the server
// answers with 200 OK.
func (a *Agent) Get(ctx context.Context, url string) ([]byte, error) {
	return a.Call(ctx, Status(http.StatusOK), &RequestSpec{URL: url}, nil)
}

// newRequest builds the net/http request from a defaulted spec.
func newRequest(ctx context.Context, spec *RequestSpec) (*http.Request, error) {
	var body io.Reader
	if spec.Body != nil {
		body = strings.NewReader(*spec.Body)
	}

	request, err := http.NewRequestWithContext(ctx, spec.Method, spec.URL, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", spec.Method, err)
	}
	for k, v := range spec.Headers {
		request.Header.Set(k, v)
	}
	return request, nil
}

// SendRequest performs the actual request.
func (impl *defaultAgentImplementation) SendRequest(client *http.Client, request *http.Request) (
	response *http.Response, err error,
) {
	response, err = client.Do(request)
	if err != nil {
		return response, fmt.Errorf("sending %s request to %s: %w", request.Method, request.URL, err)
	}

	return response, nil
}

// Identity is a SuccessFunc returning the body unchanged.
func Identity(body []byte, _ *http.Response) ([]byte, error) {
	return bytes.Clone(body), nil
}
