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

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	nethttp "net/http"
	"slices"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/ptr"

	"sigs.k8s.io/synthetic-checks/batch"
	"sigs.k8s.io/synthetic-checks/chain"
	"sigs.k8s.io/synthetic-checks/http"
)

// templateData is what request templates are rendered with.
type templateData struct {
	// Vars holds the values extracted by previous chain steps
	Vars map[string]string
	// Secrets holds injected credentials
	Secrets map[string]string
	// Prev is the raw body returned by the previous chain step
	Prev string
}

// TestCases renders the tests of the suite into batch test cases.
func (s *Suite) TestCases(secrets map[string]string) ([]batch.TestCase, error) {
	data := &templateData{Vars: map[string]string{}, Secrets: secrets}
	cases := make([]batch.TestCase, 0, len(s.Tests))
	for i := range s.Tests {
		t := &s.Tests[i]
		spec, err := t.Request.render(t.Title, data)
		if err != nil {
			return nil, fmt.Errorf("rendering test %q: %w", t.Title, err)
		}
		cases = append(cases, batch.TestCase{
			Title:    t.Title,
			Expected: http.Status(t.ResponseCodes...),
			Request:  *spec,
		})
	}
	return cases, nil
}

// Steps turns the chain of the suite into chain steps. Each call to Steps
// returns a fresh chain with its own set of extracted variables.
func (s *Suite) Steps(secrets map[string]string) []chain.Step {
	data := &templateData{Vars: map[string]string{}, Secrets: secrets}
	steps := make([]chain.Step, 0, len(s.Chain))
	for i := range s.Chain {
		step := s.Chain[i]
		steps = append(steps, chain.Step{
			Name:     step.Name,
			Expected: http.Status(step.ResponseCodes...),
			Request: func(prev []byte) (*http.RequestSpec, error) {
				data.Prev = string(prev)
				return step.Request.render(step.Name, data)
			},
			Success: func(body []byte, _ *nethttp.Response) ([]byte, error) {
				vars, err := extract(body, step.Extract)
				if err != nil {
					return nil, err
				}
				maps.Copy(data.Vars, vars)
				return body, nil
			},
		})
	}
	return steps
}

func (r *Request) render(name string, data *templateData) (*http.RequestSpec, error) {
	url, err := renderString(name+".url", r.URL, data)
	if err != nil {
		return nil, err
	}

	spec := &http.RequestSpec{
		URL:     url,
		Method:  r.Method,
		Headers: make(map[string]string, len(r.Headers)),
	}
	for k, v := range r.Headers {
		value, err := renderString(name+".headers."+k, v, data)
		if err != nil {
			return nil, err
		}
		spec.Headers[k] = value
	}
	if r.Body != nil {
		body, err := renderString(name+".body", *r.Body, data)
		if err != nil {
			return nil, err
		}
		spec.Body = ptr.To(body)
	}
	if r.TimeoutMs != nil {
		spec.Timeout = ptr.To(time.Duration(*r.TimeoutMs) * time.Millisecond)
	}
	return spec, nil
}

func renderString(name, text string, data *templateData) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", name, err)
	}
	return out.String(), nil
}

// extract evaluates the JSONPath rules against body. Any failing rule fails
// the whole extraction.
func extract(body []byte, rules map[string]string) (map[string]string, error) {
	vars := map[string]string{}
	if len(rules) == 0 {
		return vars, nil
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("response body is not valid JSON: %w", err)
	}

	for _, name := range slices.Sorted(maps.Keys(rules)) {
		expr := strings.TrimSpace(rules[name])
		value, err := jsonpath.Get(expr, doc)
		if err != nil {
			return nil, fmt.Errorf("extracting %q (%s): %w", name, expr, err)
		}
		s, err := toString(value)
		if err != nil {
			return nil, fmt.Errorf("extracting %q (%s): %w", name, expr, err)
		}
		logrus.Debugf("Extracted %s=%s", name, s)
		vars[name] = s
	}
	return vars, nil
}

func toString(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", errors.New("no value found")
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encoding value: %w", err)
	}
	return string(b), nil
}
