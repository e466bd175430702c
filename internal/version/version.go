// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is the current release version, overridable at build time via
// -ldflags "-X clara-redact/internal/version.Version=...".
var Version = "dev"

// Get returns the current version string.
func Get() string {
	return Version
}
