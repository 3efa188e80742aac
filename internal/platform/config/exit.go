package config

import (
	"fmt"
	"os"
)

// ExitPrefix tags fatal CLI messages so they stand out in mixed process logs.
const ExitPrefix = "farmhouse-admin: "

// Exitf prints a prefixed message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprint(os.Stderr, ExitPrefix)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
