/*
Copyright 2025 The Kubernetes Authors.

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

package http_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	rhttp "sigs.k8s.io/synthetic-checks/http"
	"sigs.k8s.io/synthetic-checks/http/httpfakes"
)

const testURL = "http://www.example.com/api"

func getTestResponse(status int, body string) *http.Response {
	return &http.Response{
		Status:        http.StatusText(status),
		StatusCode:    status,
		Body:          io.NopCloser(bytes.NewReader([]byte(body))),
		ContentLength: int64(len(body)),
		Close:         true,
		Request:       &http.Request{},
	}
}

func TestCall(t *testing.T) {
	for name, tc := range map[string]struct {
		expected rhttp.StatusSet
		success  rhttp.SuccessFunc
		prepare  func(*httpfakes.FakeAgentImplementation)
		assert   func(*testing.T, []byte, error)
	}{
		"should succeed with identity": {
			expected: rhttp.Status(http.StatusOK),
			success:  rhttp.Identity,
			prepare: func(mock *httpfakes.FakeAgentImplementation) {
				mock.SendRequestReturns(getTestResponse(http.StatusOK, `{"someValue":42}`), nil)
			},
			assert: func(t *testing.T, body []byte, err error) {
				require.NoError(t, err)
				assert.JSONEq(t, `{"someValue":42}`, string(body))
			},
		},
		"should succeed with nil success func": {
			expected: rhttp.Status(http.StatusOK),
			prepare: func(mock *httpfakes.FakeAgentImplementation) {
				mock.SendRequestReturns(getTestResponse(http.StatusOK, "hello"), nil)
			},
			assert: func(t *testing.T, body []byte, err error) {
				require.NoError(t, err)
				assert.Equal(t, []byte("hello"), body)
			},
		},
		"should accept any code in the set": {
			expected: rhttp.Status(http.StatusOK, http.StatusCreated),
			prepare: func(mock *httpfakes.FakeAgentImplementation) {
				mock.SendRequestReturns(getTestResponse(http.StatusCreated, "created"), nil)
			},
			assert: func(t *testing.T, body []byte, err error) {
				require.NoError(t, err)
				assert.Equal(t, []byte("created"), body)
			},
		},
		"should fail on unexpected status": {
			expected: rhttp.Status(http.StatusCreated),
			prepare: func(mock *httpfakes.FakeAgentImplementation) {
				mock.SendRequestReturns(getTestResponse(http.StatusOK, "ok"), nil)
			},
			assert: func(t *testing.T, body []byte, err error) {
				require.Error(t, err)
				assert.Nil(t, body)
				var statusErr *rhttp.UnexpectedStatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusOK, statusErr.Actual)
				assert.Equal(t, testURL, statusErr.URL)
				assert.Contains(t, err.Error(), "[201]")
				assert.Contains(t, err.Error(), "'200'")
				assert.Contains(t, err.Error(), testURL)
			},
		},
		"should fail with connection error": {
			expected: rhttp.Status(http.StatusOK),
			prepare: func(mock *httpfakes.FakeAgentImplementation) {
				mock.SendRequestReturns(nil, &url.Error{Op: "Get", URL: testURL, Err: errors.New("connection refused")})
			},
			assert: func(t *testing.T, body []byte, err error) {
				require.Error(t, err)
				assert.Nil(t, body)
				var connErr *rhttp.ConnectionError
				require.ErrorAs(t, err, &connErr)
				assert.Equal(t, testURL, connErr.URL)
				assert.Contains(t, err.Error(), testURL)
				assert.Contains(t, err.Error(), "connection refused")
			},
		},
		"should fail when the success func fails": {
			expected: rhttp.Status(http.StatusOK),
			success: func([]byte, *http.Response) ([]byte, error) {
				return nil, errors.New("malformed body")
			},
			prepare: func(mock *httpfakes.FakeAgentImplementation) {
				mock.SendRequestReturns(getTestResponse(http.StatusOK, "{"), nil)
			},
			assert: func(t *testing.T, body []byte, err error) {
				require.Error(t, err)
				assert.Nil(t, body)
				var transformErr *rhttp.TransformError
				require.ErrorAs(t, err, &transformErr)
				assert.Contains(t, err.Error(), "malformed body")
			},
		},
		"should pass the response to the success func": {
			expected: rhttp.Status(http.StatusAccepted),
			success: func(body []byte, resp *http.Response) ([]byte, error) {
				return append([]byte(resp.Status+": "), body...), nil
			},
			prepare: func(mock *httpfakes.FakeAgentImplementation) {
				mock.SendRequestReturns(getTestResponse(http.StatusAccepted, "queued"), nil)
			},
			assert: func(t *testing.T, body []byte, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Accepted: queued", string(body))
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			agent := rhttp.NewAgent().WithQuiet(true)
			mock := &httpfakes.FakeAgentImplementation{}
			agent.SetImplementation(mock)
			tc.prepare(mock)

			body, err := agent.Call(
				context.Background(), tc.expected, &rhttp.RequestSpec{URL: testURL}, tc.success,
			)
			tc.assert(t, body, err)
			require.Equal(t, 1, mock.SendRequestCallCount())
		})
	}
}

func TestCallSingleCodeMatchesSet(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNotFound} {
		single := rhttp.NewAgent().WithQuiet(true)
		fake1 := &httpfakes.FakeAgentImplementation{}
		fake1.SendRequestReturns(getTestResponse(status, "x"), nil)
		single.SetImplementation(fake1)

		set := rhttp.NewAgent().WithQuiet(true)
		fake2 := &httpfakes.FakeAgentImplementation{}
		fake2.SendRequestReturns(getTestResponse(status, "x"), nil)
		set.SetImplementation(fake2)

		_, err1 := single.Call(context.Background(), rhttp.Status(http.StatusOK), &rhttp.RequestSpec{URL: testURL}, nil)
		_, err2 := set.Call(context.Background(), rhttp.StatusSet{http.StatusOK}, &rhttp.RequestSpec{URL: testURL}, nil)
		require.Equal(t, err1 == nil, err2 == nil)
	}
}

func TestCallTimeout(t *testing.T) {
	for name, tc := range map[string]struct {
		agentTimeout *time.Duration
		specTimeout  *time.Duration
		expected     time.Duration
	}{
		"default timeout": {
			expected: rhttp.DefaultTimeout,
		},
		"agent timeout": {
			agentTimeout: ptr.To(2 * time.Second),
			expected:     2 * time.Second,
		},
		"request timeout": {
			agentTimeout: ptr.To(2 * time.Second),
			specTimeout:  ptr.To(300 * time.Millisecond),
			expected:     300 * time.Millisecond,
		},
	} {
		t.Run(name, func(t *testing.T) {
			agent := rhttp.NewAgent().WithQuiet(true)
			if tc.agentTimeout != nil {
				agent.WithTimeout(*tc.agentTimeout)
			}
			mock := &httpfakes.FakeAgentImplementation{}
			mock.SendRequestReturns(getTestResponse(http.StatusOK, ""), nil)
			agent.SetImplementation(mock)

			spec := &rhttp.RequestSpec{URL: testURL, Timeout: tc.specTimeout}
			_, err := agent.Call(context.Background(), rhttp.Status(http.StatusOK), spec, nil)
			require.NoError(t, err)

			client, _ := mock.SendRequestArgsForCall(0)
			require.Equal(t, tc.expected, client.Timeout)
			require.Equal(t, tc.specTimeout, spec.Timeout)
		})
	}
}

func TestCallBuildsRequest(t *testing.T) {
	agent := rhttp.NewAgent().WithQuiet(true)
	mock := &httpfakes.FakeAgentImplementation{}
	mock.SendRequestReturns(getTestResponse(http.StatusOK, ""), nil)
	agent.SetImplementation(mock)

	spec := &rhttp.RequestSpec{
		URL:    testURL,
		Method: "post",
		Headers: map[string]string{
			"Cache-Control": "no-cache",
			"Content-Type":  "application/json",
		},
		Body: ptr.To(`{"some":"object"}`),
	}
	_, err := agent.Call(context.Background(), rhttp.Status(http.StatusOK), spec, nil)
	require.NoError(t, err)

	_, req := mock.SendRequestArgsForCall(0)
	require.Equal(t, http.MethodPost, req.Method)
	require.Equal(t, testURL, req.URL.String())
	require.Equal(t, "no-cache", req.Header.Get("Cache-Control"))
	require.Equal(t, "application/json", req.Header.Get("Content-Type"))
	payload, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"some":"object"}`, string(payload))

	// The caller's spec is left untouched
	require.Equal(t, "post", spec.Method)
	require.Nil(t, spec.Timeout)
}

func TestCallInvalidURL(t *testing.T) {
	agent := rhttp.NewAgent().WithQuiet(true)
	mock := &httpfakes.FakeAgentImplementation{}
	agent.SetImplementation(mock)

	_, err := agent.Call(context.Background(), rhttp.Status(http.StatusOK), &rhttp.RequestSpec{URL: "://bad"}, nil)
	var connErr *rhttp.ConnectionError
	require.ErrorAs(t, err, &connErr)
	require.Zero(t, mock.SendRequestCallCount())
}

func TestAgentGet(t *testing.T) {
	agent := rhttp.NewAgent().WithQuiet(true)
	mock := &httpfakes.FakeAgentImplementation{}
	mock.SendRequestReturns(getTestResponse(http.StatusOK, "hello sig-release!"), nil)
	agent.SetImplementation(mock)

	b, err := agent.Get(context.Background(), testURL)
	require.NoError(t, err)
	require.Equal(t, []byte("hello sig-release!"), b)

	_, req := mock.SendRequestArgsForCall(0)
	require.Equal(t, http.MethodGet, req.Method)
}

func TestStatusSetString(t *testing.T) {
	require.Equal(t, "[200]", rhttp.Status(200).String())
	require.Equal(t, "[200,201]", rhttp.Status(200, 201).String())
	require.Equal(t, "[]", rhttp.Status().String())
	require.False(t, rhttp.Status().Contains(200))
}
