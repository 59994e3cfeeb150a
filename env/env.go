/*
Copyright 2019 The Kubernetes Authors.

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

package env

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"sigs.k8s.io/synthetic-checks/env/internal"
)

// Default retrieves the value of the environment variable named by the key.
// If the variable is not present or empty, it returns the default value.
func Default(key, def string) string {
	value, set := internal.Impl.LookupEnv(key)
	if set && value != "" {
		return value
	}
	return def
}

// IsSet can be used to check if an environment variable is set.
func IsSet(key string) bool {
	_, set := internal.Impl.LookupEnv(key)
	return set
}

// Duration parses the environment variable named by key as a time.Duration.
// Unset, empty or unparsable values return the default.
func Duration(key string, def time.Duration) time.Duration {
	value := Default(key, "")
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logrus.Warnf("Ignoring invalid duration in %s: %v", key, err)
		return def
	}
	return d
}

// Prefixed returns all variables whose name starts with prefix, keyed by the
// rest of the name. Variables with an empty remainder are skipped.
func Prefixed(prefix string) map[string]string {
	vars := map[string]string{}
	for _, kv := range internal.Impl.Environ() {
		key, value, found := strings.Cut(kv, "=")
		if !found || !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.TrimPrefix(key, prefix)
		if name == "" {
			continue
		}
		vars[name] = value
	}
	return vars
}
