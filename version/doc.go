// Package version reports the build identity of fcvec binaries.
//
// The release version and commit can be stamped at link time:
//
//	go build -ldflags "-X github.com/kbukum/fcvec/version.Version=1.0.0" ./cmd/fcvaudit
//
// Anything not stamped falls back to the VCS information the Go toolchain
// embeds in the binary.
package version
