// Package buildinfo carries release metadata set with -ldflags "-X ...".
package buildinfo

// Empty for local builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
