// Command launchplan prints what the launcher would do for a version: the
// library artifacts it needs on this host, or the exact command tokens it
// would hand to the Java runtime. It is a dry run and starts nothing.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime/debug"

	"github.com/namelessrealms/launchcore/internal/config"
	"github.com/namelessrealms/launchcore/pkg/metadata"
	"github.com/namelessrealms/launchcore/pkg/platform"
)

const version = "0.1.0"

// Exit codes for different error types
const (
	ExitPanic         = 101
	ExitMetadataError = 102
	ExitPlatformError = 104
	ExitInvalidArgs   = 105
	ExitIOError       = 106
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
			debug.PrintStack()
			os.Exit(ExitPanic)
		}
	}()

	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("launchplan %s\n", version)
		os.Exit(0)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, metadata.ErrInvalidDocument):
		return ExitMetadataError
	case errors.Is(err, platform.ErrUnsupportedPlatform):
		return ExitPlatformError
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, errInvalidArgs):
		return ExitInvalidArgs
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	}
	return 1
}
