// Package constants defines application-wide constants and version information.
package constants

import "runtime"

// Version holds the application version information
const Version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

// Gravity is the gravitational acceleration used by every hydraulic formula (m/s²)
const Gravity = 9.81

// ReportDecimals is the precision used when reporting interpolated critical values
const ReportDecimals = 4
