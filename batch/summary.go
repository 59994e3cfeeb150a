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

package batch

import "math"

// Summary holds the results of a batch run.
//
// Attempted is always Succeeded + Failed once Run returns.
type Summary struct {
	Attempted      int
	Succeeded      int
	Failed         int
	FailureDetails []string
}

// OK is true when no test case failed.
func (s *Summary) OK() bool {
	return s.Failed == 0
}

// FailureRate returns the percentage of failed cases rounded to two
// decimals. An empty run has a failure rate of zero.
func (s *Summary) FailureRate() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return round2(float64(s.Failed) / float64(s.Attempted) * 100)
}

// SuccessRate returns the percentage of passed cases rounded to two
// decimals. An empty run has a success rate of zero.
func (s *Summary) SuccessRate() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return round2(100 - s.FailureRate())
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
