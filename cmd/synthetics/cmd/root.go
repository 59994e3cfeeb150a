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
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sigs.k8s.io/synthetic-checks/config"
	"sigs.k8s.io/synthetic-checks/env"
	"sigs.k8s.io/synthetic-checks/http"
	"sigs.k8s.io/synthetic-checks/log"
	"sigs.k8s.io/synthetic-checks/report"
	"sigs.k8s.io/synthetic-checks/version"
)

const (
	binaryName = "synthetics"

	envConfig      = "SYNTHETICS_CONFIG"
	envLogLevel    = "SYNTHETICS_LOG_LEVEL"
	envTimeout     = "SYNTHETICS_DEFAULT_TIMEOUT"
	envMetricsFile = "SYNTHETICS_METRICS_FILE"
	secretsPrefix  = "SYNTHETICS_SECRET_"
)

// errRunFailed is returned when the run completed but some check failed.
var errRunFailed = errors.New("not all tests passed")

type options struct {
	config      string
	logLevel    string
	quiet       bool
	timeout     time.Duration
	metricsFile string

	// timeoutSet is true when --timeout was passed explicitly.
	timeoutSet bool

	// impl replaces the network implementation of the agent when set.
	impl http.AgentImplementation
}

// New returns the root command of the synthetics binary.
func New() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           binaryName,
		Short:         "Run synthetic API checks",
		Long:          "synthetics runs chained or batched http checks described in a YAML suite file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.timeoutSet = cmd.Flags().Changed("timeout")
			return log.SetupGlobalLogger(opts.logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(
		&opts.config, "config", "c", env.Default(envConfig, "synthetics.yaml"),
		"path to the suite file",
	)
	cmd.PersistentFlags().StringVar(
		&opts.logLevel, "log-level", env.Default(envLogLevel, logrus.InfoLevel.String()),
		fmt.Sprintf("the logging verbosity, either %s", strings.Join(log.LevelNames, ", ")),
	)
	cmd.PersistentFlags().BoolVarP(
		&opts.quiet, "quiet", "q", false,
		"do not log every request before it is sent",
	)
	cmd.PersistentFlags().DurationVar(
		&opts.timeout, "timeout", env.Duration(envTimeout, http.DefaultTimeout),
		"timeout for requests that do not define their own",
	)
	cmd.PersistentFlags().StringVar(
		&opts.metricsFile, "metrics-file", env.Default(envMetricsFile, ""),
		"write the run attributes as prometheus metrics to this file",
	)

	cmd.AddCommand(
		newBatchCmd(opts),
		newChainCmd(opts),
		version.Version(binaryName, "synthetic API checks"),
	)
	return cmd
}

// Execute runs the root command with args taken from the command line. Any
// error other than failed checks is logged, since cobra is silenced.
func Execute(ctx context.Context) error {
	return execute(ctx, New())
}

func execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errRunFailed) {
		logrus.Error(err)
	}
	return err
}

// loadSuite reads the suite file and returns it with the secrets found in
// the environment.
func (o *options) loadSuite() (*config.Suite, map[string]string, error) {
	suite, err := config.Load(o.config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	secrets := env.Prefixed(secretsPrefix)
	logrus.Debugf("Loaded suite %s with %d secrets", o.config, len(secrets))
	return suite, secrets, nil
}

// agent returns the http agent for a suite. An explicit --timeout takes
// precedence over the suite default.
func (o *options) agent(suite *config.Suite) *http.Agent {
	timeout := o.timeout
	if !o.timeoutSet && suite.DefaultTimeout() > 0 {
		timeout = suite.DefaultTimeout()
	}

	agent := http.NewAgent().WithTimeout(timeout).WithQuiet(o.quiet)
	if o.impl != nil {
		agent.SetImplementation(o.impl)
	}
	logrus.Debug(agent.Options())
	return agent
}

// recorder returns the recorder for the run attributes and a function
// persisting them once the run is over.
func (o *options) recorder() (report.Recorder, func() error) {
	if o.metricsFile == "" {
		return report.NewLogRecorder(), func() error { return nil }
	}
	metrics := report.NewMetricsRecorder()
	return report.Multi(report.NewLogRecorder(), metrics), func() error {
		return metrics.WriteFile(o.metricsFile)
	}
}

// guard runs fn, turning a panic into an error so that broken
// configurations are reported as a failed run.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected error: %v", r)
		}
	}()
	return fn()
}

// finish logs the outcome of a run and persists the recorded attributes.
func finish(ok bool, flush func() error) error {
	if err := flush(); err != nil {
		return err
	}
	if !ok {
		logrus.Error("Completed with errors")
		return errRunFailed
	}
	logrus.Info("Completed successfully")
	return nil
}
