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

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sigs.k8s.io/synthetic-checks/batch"
	"sigs.k8s.io/synthetic-checks/report"
)

func newBatchCmd(opts *options) *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run the independent tests of the suite and report pass/fail statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var out io.Writer
			if summary {
				out = cmd.OutOrStdout()
			}
			return guard(func() error {
				return runBatch(cmd.Context(), opts, out)
			})
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "print a summary table when done")
	return cmd
}

// runBatch runs the tests of the suite. The summary table is written to out
// when it is not nil.
func runBatch(ctx context.Context, opts *options, out io.Writer) error {
	suite, secrets, err := opts.loadSuite()
	if err != nil {
		return err
	}
	cases, err := suite.TestCases(secrets)
	if err != nil {
		return fmt.Errorf("building test cases: %w", err)
	}
	if len(cases) == 0 {
		return errors.New("suite defines no tests")
	}

	rec, flush := opts.recorder()
	summary := batch.New(opts.agent(suite)).Run(ctx, cases)
	report.RecordBatch(rec, len(cases), &summary)

	if out != nil {
		if err := report.WriteSummary(out, &summary); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	return finish(summary.OK(), flush)
}
