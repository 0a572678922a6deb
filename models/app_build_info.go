// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// BuildInfoNotAvailable stands in for a stamp part the linker did not set.
const BuildInfoNotAvailable = "N/A"

// AppBuildInfo is the version stamp linked into the client and dev server
// binaries with -ldflags. Parts that were not set read as
// [BuildInfoNotAvailable].
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.version) }

func (a AppBuildInfo) BuildDate() string { return orNotAvailable(a.date) }

func (a AppBuildInfo) BuildCommit() string { return orNotAvailable(a.commit) }

// Released reports whether a version was linked in. Local builds are not
// released and the dev server reports no deployed tag for them.
func (a AppBuildInfo) Released() bool {
	return a.version != ""
}

// String formats the stamp as "version (commit, date)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.BuildVersion(), a.BuildCommit(), a.BuildDate())
}

func orNotAvailable(v string) string {
	if v == "" {
		return BuildInfoNotAvailable
	}
	return v
}
