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

package report

import (
	"fmt"
	"io"
	"strconv"

	"sigs.k8s.io/synthetic-checks/batch"
	"sigs.k8s.io/synthetic-checks/util"
)

// WriteSummary renders the statistics of a batch run as a table.
func WriteSummary(w io.Writer, summary *batch.Summary) error {
	table := util.NewTableWriter(w)
	table.Header("Attempted", "Succeeded", "Failed", "Success Rate")
	if err := table.Append([]string{
		strconv.Itoa(summary.Attempted),
		strconv.Itoa(summary.Succeeded),
		strconv.Itoa(summary.Failed),
		fmt.Sprintf("%.2f%%", summary.SuccessRate()),
	}); err != nil {
		return fmt.Errorf("adding summary row: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering summary: %w", err)
	}

	if len(summary.FailureDetails) == 0 {
		return nil
	}

	failures := util.NewTableWriter(w)
	failures.Header("#", "Failure")
	for i, detail := range summary.FailureDetails {
		if err := failures.Append([]string{strconv.Itoa(i + 1), detail}); err != nil {
			return fmt.Errorf("adding failure row: %w", err)
		}
	}
	if err := failures.Render(); err != nil {
		return fmt.Errorf("rendering failures: %w", err)
	}
	return nil
}
