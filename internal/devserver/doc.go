// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devserver is an in-memory implementation of the sync server wire
// contract. It serves every endpoint of the protocol client catalog with the
// same paths, methods, headers and master version rules, which makes it
// suitable for local runs of the client and for integration tests.
//
// Nothing is persisted: users, sharing groups, files and invitations live
// for the lifetime of the [Handler].
//
// Request pipeline:
//
//	Recoverer -> trace id -> logging -> gzip -> timeout -> device -> auth -> endpoint
//
// Uploads are staged per device and become visible in the file index only
// after DoneUploads, which also advances the master version of the group.
package devserver
