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

// Package chain runs dependent http calls in sequence, feeding the result of
// each call into the construction of the next request.
package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"sigs.k8s.io/synthetic-checks/http"
)

// Executor performs a single checked http call.
type Executor interface {
	Call(context.Context, http.StatusSet, *http.RequestSpec, http.SuccessFunc) ([]byte, error)
}

// Step is a single link of a chain.
type Step struct {
	Name     string
	Expected http.StatusSet

	// Request builds the request of the step from the result of the
	// previous one. The first step receives nil.
	Request func(prev []byte) (*http.RequestSpec, error)

	// Success is applied to the response body, nil keeps the body as is.
	Success http.SuccessFunc
}

// StepError is returned when a step aborts the chain.
type StepError struct {
	Index int
	Name  string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step #%d (%s): %v", e.Index+1, e.Name, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Runner executes chains.
type Runner struct {
	executor Executor
}

// New returns a Runner sending its calls through executor.
func New(executor Executor) *Runner {
	return &Runner{executor: executor}
}

// Run executes steps in order and returns the value produced by the last
// one. The first failing step stops the chain, later steps are never built
// nor called.
func (r *Runner) Run(ctx context.Context, steps []Step) ([]byte, error) {
	if len(steps) == 0 {
		return nil, errors.New("chain has no steps")
	}

	var prev []byte
	for i := range steps {
		step := &steps[i]
		if step.Request == nil {
			return nil, &StepError{Index: i, Name: step.Name, Err: errors.New("no request builder defined")}
		}

		spec, err := step.Request(prev)
		if err != nil {
			return nil, &StepError{Index: i, Name: step.Name, Err: fmt.Errorf("building request: %w", err)}
		}

		logrus.Debugf("Running step #%d (%s)", i+1, step.Name)
		result, err := r.executor.Call(ctx, step.Expected, spec, step.Success)
		if err != nil {
			return nil, &StepError{Index: i, Name: step.Name, Err: err}
		}
		prev = result
	}
	return prev, nil
}

// Succeeded runs the chain and reports whether every step passed.
func (r *Runner) Succeeded(ctx context.Context, steps []Step) bool {
	final, err := r.Run(ctx, steps)
	if err != nil {
		logrus.Errorf("An error occurred: %v", err)
		return false
	}
	logrus.Infof("Final response body from last step is: %s", final)
	return true
}
