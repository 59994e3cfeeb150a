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

// Package batch runs a list of independent http checks and aggregates their
// results.
package batch

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"sigs.k8s.io/synthetic-checks/http"
)

// Executor performs a single checked http call.
type Executor interface {
	Call(context.Context, http.StatusSet, *http.RequestSpec, http.SuccessFunc) ([]byte, error)
}

// TestCase is a single check of a batch.
type TestCase struct {
	Title    string
	Expected http.StatusSet
	Request  http.RequestSpec
}

// Runner executes batches of test cases.
type Runner struct {
	executor Executor
}

// New returns a Runner sending its calls through executor.
func New(executor Executor) *Runner {
	return &Runner{executor: executor}
}

// Run executes every test case in order, waiting for each one before the
// next is started. A failing case never stops the batch.
func (r *Runner) Run(ctx context.Context, cases []TestCase) Summary {
	summary := Summary{FailureDetails: []string{}}
	for i := range cases {
		tc := &cases[i]
		summary.Attempted++

		if _, err := r.executor.Call(ctx, tc.Expected, &tc.Request, nil); err != nil {
			summary.Failed++
			detail := fmt.Sprintf("'%s' failed with error: %v", tc.Title, err)
			summary.FailureDetails = append(summary.FailureDetails, detail)
			logrus.Warnf("Test %s", detail)
			continue
		}

		summary.Succeeded++
		logrus.Debugf("Test '%s' succeeded", tc.Title)
	}

	logrus.Infof(
		"Attempted: %d, Succeeded: %d, Failed: %d",
		summary.Attempted, summary.Succeeded, summary.Failed,
	)
	return summary
}
