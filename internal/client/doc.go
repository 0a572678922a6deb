// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the sync client application runtime.
//
// It wires the sync state store, credentials, the protocol client, the
// services and the background sync worker into a single process lifecycle,
// with or without the terminal progress view.
package client
