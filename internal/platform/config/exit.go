package config

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LogPrefix tags every line the storefront process logs, so fatal startup
// errors read the same as the rest of its output.
const LogPrefix = "[STOREFRONT] "

// Exitf reports a fatal startup error on stderr and exits with code 1.
func Exitf(format string, args ...any) {
	writeFatal(os.Stderr, format, args...)
	os.Exit(1)
}

func writeFatal(w io.Writer, format string, args ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, args...))
	if msg == "" {
		msg = "startup failed"
	}
	fmt.Fprintf(w, "%s%s\n", LogPrefix, msg)
}
