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

	"github.com/spf13/cobra"

	"sigs.k8s.io/synthetic-checks/chain"
	"sigs.k8s.io/synthetic-checks/report"
)

func newChainCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "chain",
		Short: "Run the chained steps of the suite, stopping at the first failure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return guard(func() error {
				return runChain(cmd.Context(), opts)
			})
		},
	}
}

func runChain(ctx context.Context, opts *options) error {
	suite, secrets, err := opts.loadSuite()
	if err != nil {
		return err
	}
	steps := suite.Steps(secrets)
	if len(steps) == 0 {
		return errors.New("suite defines no chain")
	}

	rec, flush := opts.recorder()
	ok := chain.New(opts.agent(suite)).Succeeded(ctx, steps)
	report.RecordResult(rec, ok)

	return finish(ok, flush)
}
