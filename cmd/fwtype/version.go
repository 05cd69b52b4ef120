package main

import "fmt"

// Set with -ldflags "-X main.version=... -X main.gitHash=... -X main.buildDate=...".
var (
	version   = "0.1.0"
	gitHash   = ""
	buildDate = ""
)

// longVersion appends the commit and the build date when they are known.
func longVersion() string {
	switch {
	case gitHash == "" && buildDate == "":
		return version
	case buildDate == "":
		return fmt.Sprintf("%s (%s)", version, gitHash)
	case gitHash == "":
		return fmt.Sprintf("%s [%s]", version, buildDate)
	default:
		return fmt.Sprintf("%s (%s) [%s]", version, gitHash, buildDate)
	}
}
