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

// Package config loads synthetic check suites from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Suite is the content of a suite file. A suite may define a batch of
// independent tests, a chain of dependent steps, or both.
type Suite struct {
	// DefaultTimeoutMs applies to requests without their own timeout.
	DefaultTimeoutMs int    `yaml:"defaultTimeoutMs,omitempty"`
	Tests            []Test `yaml:"tests,omitempty"`
	Chain            []Step `yaml:"chain,omitempty"`
}

// Test is one entry of a batch.
type Test struct {
	Title         string      `yaml:"title"`
	ResponseCodes StatusCodes `yaml:"responseCodes"`
	Request       Request     `yaml:"request"`
}

// Step is one link of a chain. Extract maps variable names to JSONPath
// expressions evaluated against the response body of the step; the values
// are available to later steps as {{ .Vars.name }}.
type Step struct {
	Name          string            `yaml:"name"`
	ResponseCodes StatusCodes       `yaml:"responseCodes"`
	Request       Request           `yaml:"request"`
	Extract       map[string]string `yaml:"extract,omitempty"`
}

// Request holds the templated fields of an http request.
type Request struct {
	URL       string            `yaml:"url"`
	Method    string            `yaml:"method,omitempty"`
	Headers   map[string]string `yaml:"headers,omitempty"`
	Body      *string           `yaml:"body,omitempty"`
	TimeoutMs *int              `yaml:"timeoutMs,omitempty"`
}

// StatusCodes accepts either a single status code or a list of them.
type StatusCodes []int

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StatusCodes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var code int
		if err := value.Decode(&code); err != nil {
			return fmt.Errorf("decoding status code: %w", err)
		}
		*s = StatusCodes{code}
		return nil
	}

	var codes []int
	if err := value.Decode(&codes); err != nil {
		return fmt.Errorf("decoding status codes: %w", err)
	}
	*s = codes
	return nil
}

// Load reads and validates the suite file at path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite file: %w", err)
	}
	suite, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return suite, nil
}

// Parse decodes and validates a suite. Unknown fields are rejected.
func Parse(data []byte) (*Suite, error) {
	suite := &Suite{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(suite); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := suite.Validate(); err != nil {
		return nil, err
	}
	return suite, nil
}

// DefaultTimeout returns the suite wide request timeout, zero if unset.
func (s *Suite) DefaultTimeout() time.Duration {
	return time.Duration(s.DefaultTimeoutMs) * time.Millisecond
}

// Validate checks the suite for missing or invalid fields.
func (s *Suite) Validate() error {
	errs := []error{}
	if s.DefaultTimeoutMs < 0 {
		errs = append(errs, errors.New("defaultTimeoutMs must not be negative"))
	}
	for i := range s.Tests {
		t := &s.Tests[i]
		if strings.TrimSpace(t.Title) == "" {
			errs = append(errs, fmt.Errorf("test #%d: title is required", i+1))
		}
		errs = append(errs, validateCall(fmt.Sprintf("test #%d", i+1), t.ResponseCodes, &t.Request)...)
	}
	for i := range s.Chain {
		step := &s.Chain[i]
		if strings.TrimSpace(step.Name) == "" {
			errs = append(errs, fmt.Errorf("step #%d: name is required", i+1))
		}
		errs = append(errs, validateCall(fmt.Sprintf("step #%d", i+1), step.ResponseCodes, &step.Request)...)
		for name, expr := range step.Extract {
			if strings.TrimSpace(expr) == "" {
				errs = append(errs, fmt.Errorf("step #%d: empty jsonpath for %q", i+1, name))
			}
		}
	}
	return errors.Join(errs...)
}

func validateCall(prefix string, codes StatusCodes, req *Request) []error {
	errs := []error{}
	if len(codes) == 0 {
		errs = append(errs, fmt.Errorf("%s: at least one response code is required", prefix))
	}
	for _, c := range codes {
		if c < 100 || c > 599 {
			errs = append(errs, fmt.Errorf("%s: invalid response code %d", prefix, c))
		}
	}
	if strings.TrimSpace(req.URL) == "" {
		errs = append(errs, fmt.Errorf("%s: request url is required", prefix))
	}
	if req.TimeoutMs != nil && *req.TimeoutMs <= 0 {
		errs = append(errs, fmt.Errorf("%s: timeoutMs must be positive", prefix))
	}
	return errs
}
