package models

import "encoding/xml"

// VersionInfo describes the running management service build.
// @Description Version information of the management service
type VersionInfo struct {
	XMLName xml.Name `json:"-" xml:"versionInfo"`

	// Version is the semantic version of the service, set via ldflags.
	Version string `json:"version" xml:"version"`

	// GitCommit is the commit hash the service was built from.
	GitCommit string `json:"gitCommit,omitempty" xml:"gitCommit,omitempty"`

	// BuildDate is the build timestamp in RFC 3339 form.
	BuildDate string `json:"buildDate,omitempty" xml:"buildDate,omitempty"`
}

// EchoMessage is the trivial payload of the echo diagnostics endpoints.
// @Description A message echoed back by the server
type EchoMessage struct {
	XMLName xml.Name `json:"-" xml:"echoMessage"`
	Message string   `json:"message" xml:"message"`
}
