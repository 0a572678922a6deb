// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when there is no
	// address to listen on or no handler to serve.
	errNoServersAreCreated = errors.New("no servers are created")
)
