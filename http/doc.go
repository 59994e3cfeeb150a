/*
Copyright 2024 The Kubernetes Authors.

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

/*
Package http provides an agent to perform checked calls against http servers.

# Calls

The single entry point is Agent.Call. It takes the set of status codes that
count as a successful answer, a RequestSpec and a SuccessFunc:

	agent := http.NewAgent().WithTimeout(5 * time.Second)
	body, err := agent.Call(ctx, http.Status(200, 201), &http.RequestSpec{
		URL:    "https://example.com/api",
		Method: "POST",
		Body:   ptr.To(`{"some": "object"}`),
	}, http.Identity)

Each call sends exactly one request, the agent never retries.

# Timeouts

Requests without a Timeout are sent with the agent default (DefaultTimeout
unless changed with WithTimeout). The RequestSpec passed in is never modified.

# Errors

A failed call returns one of three error types, all of them carrying the URL
of the request:

	*ConnectionError        no response was obtained (dns, refused, timeout)
	*UnexpectedStatusError  the status code was not in the expected set
	*TransformError         the SuccessFunc returned an error

Use errors.As to tell them apart.
*/
package http
