// Package version reports the analyzer release.
package version

// Version is overridden at link time with -ldflags "-X ...version.Version=v1.2.3".
var Version = "v0.3.0-dev"

func String() string { return "lexis " + Version }
