// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into the client
// binary by linker flags. Empty values render as "N/A".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.buildVersion)
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.buildDate)
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.buildCommit)
}

// String renders the footer line shown on the auth screen.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("InsightEd client %s (%s, %s)", a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
