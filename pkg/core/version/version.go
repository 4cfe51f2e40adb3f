// ============================================================================
// comnum - Complex Number Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management
// Author:      idmagic
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Application version of the comnum CLI
	Application = "1.0.0"

	// Library version of foundation/utils/mathx
	Mathx = "0.2.0"
)

// Commit is set at build time with -ldflags "-X .../version.Commit=<sha>"
var Commit = "dev"

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "mathx":
		return Mathx
	default:
		return Application
	}
}

// Info returns the multi-line version report printed by "comnum version"
func Info() string {
	return fmt.Sprintf("comnum %s (mathx %s, commit %s)\nGo:      %s\nOS/Arch: %s/%s\n",
		Application, Mathx, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
