// Package platform describes the host a client is launched on.
//
// The OS kind and architecture are closed enumerations so callers can switch
// over them exhaustively. Detect reads the running host once; the returned
// Info is a plain value and never changes afterwards.
package platform
