// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler = errors.New("dashboard http handler is not created")
	errNoListenAddr  = errors.New("dashboard listen address is empty")
)
