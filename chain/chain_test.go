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

package chain_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sigs.k8s.io/synthetic-checks/chain"
	rhttp "sigs.k8s.io/synthetic-checks/http"
	"sigs.k8s.io/synthetic-checks/http/httpfakes"
)

const baseURL = "http://www.example.com/v3/values"

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Request:    &http.Request{},
	}
}

func newRunner(fake *httpfakes.FakeAgentImplementation) *chain.Runner {
	agent := rhttp.NewAgent().WithQuiet(true)
	agent.SetImplementation(fake)
	return chain.New(agent)
}

func staticStep(name, url string) chain.Step {
	return chain.Step{
		Name:     name,
		Expected: rhttp.Status(http.StatusOK),
		Request: func([]byte) (*rhttp.RequestSpec, error) {
			return &rhttp.RequestSpec{URL: url}, nil
		},
	}
}

func TestRunChainsValues(t *testing.T) {
	fake := &httpfakes.FakeAgentImplementation{}
	fake.SendRequestCalls(func(_ *http.Client, r *http.Request) (*http.Response, error) {
		if r.URL.RawQuery == "" {
			return response(http.StatusOK, `{"someValue":5}`), nil
		}
		if !strings.Contains(r.URL.String(), "someValue=5") {
			return response(http.StatusBadRequest, ""), nil
		}
		return response(http.StatusOK, `{"done":true}`), nil
	})

	steps := []chain.Step{
		staticStep("first", baseURL),
		{
			Name:     "second",
			Expected: rhttp.Status(http.StatusOK),
			Request: func(prev []byte) (*rhttp.RequestSpec, error) {
				var data struct {
					SomeValue int `json:"someValue"`
				}
				if err := json.Unmarshal(prev, &data); err != nil {
					return nil, err
				}
				return &rhttp.RequestSpec{URL: fmt.Sprintf("%s?someValue=%d", baseURL, data.SomeValue)}, nil
			},
		},
	}

	final, err := newRunner(fake).Run(context.Background(), steps)
	require.NoError(t, err)
	require.JSONEq(t, `{"done":true}`, string(final))
	require.Equal(t, 2, fake.SendRequestCallCount())

	_, req := fake.SendRequestArgsForCall(1)
	require.Contains(t, req.URL.String(), "someValue=5")
}

func TestRunAbortsOnFirstFailure(t *testing.T) {
	for name, tc := range map[string]struct {
		prepare       func(*httpfakes.FakeAgentImplementation)
		buildErr      bool
		expectedCalls int
		errType       any
	}{
		"unexpected status on step 2": {
			prepare: func(fake *httpfakes.FakeAgentImplementation) {
				fake.SendRequestReturnsOnCall(0, response(http.StatusOK, "a"), nil)
				fake.SendRequestReturnsOnCall(1, response(http.StatusInternalServerError, "b"), nil)
				fake.SendRequestReturns(response(http.StatusOK, "c"), nil)
			},
			expectedCalls: 2,
			errType:       &rhttp.UnexpectedStatusError{},
		},
		"connection error on step 2": {
			prepare: func(fake *httpfakes.FakeAgentImplementation) {
				fake.SendRequestReturnsOnCall(0, response(http.StatusOK, "a"), nil)
				fake.SendRequestReturnsOnCall(1, nil, errors.New("dial tcp: no such host"))
				fake.SendRequestReturns(response(http.StatusOK, "c"), nil)
			},
			expectedCalls: 2,
			errType:       &rhttp.ConnectionError{},
		},
		"build error on step 2": {
			prepare: func(fake *httpfakes.FakeAgentImplementation) {
				fake.SendRequestReturns(response(http.StatusOK, "a"), nil)
			},
			buildErr:      true,
			expectedCalls: 1,
		},
	} {
		t.Run(name, func(t *testing.T) {
			fake := &httpfakes.FakeAgentImplementation{}
			tc.prepare(fake)

			second := staticStep("second", baseURL+"/2")
			if tc.buildErr {
				second.Request = func([]byte) (*rhttp.RequestSpec, error) {
					return nil, errors.New("no value in previous response")
				}
			}
			thirdBuilt := false
			third := chain.Step{
				Name:     "third",
				Expected: rhttp.Status(http.StatusOK),
				Request: func([]byte) (*rhttp.RequestSpec, error) {
					thirdBuilt = true
					return &rhttp.RequestSpec{URL: baseURL + "/3"}, nil
				},
			}

			final, err := newRunner(fake).Run(
				context.Background(), []chain.Step{staticStep("first", baseURL), second, third},
			)
			require.Error(t, err)
			require.Nil(t, final)
			require.False(t, thirdBuilt)
			require.Equal(t, tc.expectedCalls, fake.SendRequestCallCount())

			var stepErr *chain.StepError
			require.ErrorAs(t, err, &stepErr)
			require.Equal(t, 1, stepErr.Index)
			require.Equal(t, "second", stepErr.Name)

			switch tc.errType.(type) {
			case *rhttp.UnexpectedStatusError:
				var target *rhttp.UnexpectedStatusError
				require.ErrorAs(t, err, &target)
			case *rhttp.ConnectionError:
				var target *rhttp.ConnectionError
				require.ErrorAs(t, err, &target)
			}
		})
	}
}

func TestRunSuccessFunc(t *testing.T) {
	fake := &httpfakes.FakeAgentImplementation{}
	fake.SendRequestReturns(response(http.StatusOK, "body"), nil)

	step := staticStep("only", baseURL)
	step.Success = func(body []byte, _ *http.Response) ([]byte, error) {
		return bytes.ToUpper(body), nil
	}

	final, err := newRunner(fake).Run(context.Background(), []chain.Step{step})
	require.NoError(t, err)
	require.Equal(t, "BODY", string(final))
}

func TestRunInvalidChains(t *testing.T) {
	runner := newRunner(&httpfakes.FakeAgentImplementation{})

	_, err := runner.Run(context.Background(), nil)
	require.Error(t, err)

	_, err = runner.Run(context.Background(), []chain.Step{{Name: "no builder"}})
	require.Error(t, err)
}

func TestSucceeded(t *testing.T) {
	fake := &httpfakes.FakeAgentImplementation{}
	fake.SendRequestReturnsOnCall(0, response(http.StatusOK, "a"), nil)
	fake.SendRequestReturnsOnCall(1, response(http.StatusNotFound, ""), nil)
	runner := newRunner(fake)

	require.True(t, runner.Succeeded(context.Background(), []chain.Step{staticStep("first", baseURL)}))
	require.False(t, runner.Succeeded(context.Background(), []chain.Step{staticStep("first", baseURL)}))
}
