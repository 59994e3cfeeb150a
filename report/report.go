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

// Package report records the outcome of synthetic runs as named attributes.
package report

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"sigs.k8s.io/synthetic-checks/batch"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//go:generate /usr/bin/env bash -c "cat ../hack/boilerplate/boilerplate.generatego.txt reportfakes/fake_recorder.go > reportfakes/_fake_recorder.go && mv reportfakes/_fake_recorder.go reportfakes/fake_recorder.go"

// Attribute names set on the monitoring record.
const (
	AttrTotalTests       = "totalTests"
	AttrTestsAttempted   = "testsAttempted"
	AttrTestsSucceeded   = "testsSucceeded"
	AttrTestsFailed      = "testsFailed"
	// AttrTestsSuccessRate holds the percentage of passed tests. Earlier
	// monitoring scripts stored the failure percentage under this name; that
	// value is now AttrTestsFailureRate.
	AttrTestsSuccessRate = "testsSuccessRate"
	AttrTestsFailureRate = "testsFailureRate"
	AttrFailureDetail    = "failureDetail"
	AttrTestResult       = "testResult"
	AttrTestRunComplete  = "testRunComplete"
)

// Values of the testResult and testRunComplete attributes.
const (
	ResultSuccess = "SUCCESS"
	ResultFailed  = "FAILED"
	RunComplete   = "YES"
)

// Recorder stores attributes on the record of a run.
//
//counterfeiter:generate . Recorder
type Recorder interface {
	SetAttribute(key string, value any)
}

// LogRecorder logs the attributes instead of persisting them. It is used
// when running outside of a monitoring host.
type LogRecorder struct{}

// NewLogRecorder creates a new LogRecorder.
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{}
}

// SetAttribute logs the attribute.
func (*LogRecorder) SetAttribute(key string, value any) {
	logrus.WithField("attribute", key).Infof("Set attribute '%s' to %v", key, value)
}

type multiRecorder []Recorder

// Multi returns a Recorder setting every attribute on all recorders.
func Multi(recorders ...Recorder) Recorder {
	return multiRecorder(recorders)
}

func (m multiRecorder) SetAttribute(key string, value any) {
	for _, r := range m {
		r.SetAttribute(key, value)
	}
}

// RecordBatch stores the statistics of a batch run of total test cases.
func RecordBatch(r Recorder, total int, summary *batch.Summary) {
	r.SetAttribute(AttrTotalTests, total)
	r.SetAttribute(AttrTestsAttempted, summary.Attempted)
	r.SetAttribute(AttrTestsSucceeded, summary.Succeeded)
	r.SetAttribute(AttrTestsFailed, summary.Failed)
	r.SetAttribute(AttrTestsSuccessRate, fmt.Sprintf("%.2f", summary.SuccessRate()))
	r.SetAttribute(AttrTestsFailureRate, fmt.Sprintf("%.2f", summary.FailureRate()))
	r.SetAttribute(AttrFailureDetail, strings.Join(summary.FailureDetails, "; "))
	RecordResult(r, summary.OK())
}

// RecordResult stores the final result of a run and marks it as complete.
func RecordResult(r Recorder, ok bool) {
	result := ResultFailed
	if ok {
		result = ResultSuccess
	}
	r.SetAttribute(AttrTestResult, result)
	r.SetAttribute(AttrTestRunComplete, RunComplete)
}
