package zerologsink

import (
	"io"
	"os"

	"github.com/trickstertwo/xyoga"
)

// Env:
//
//	XYOGA_MIN_LEVEL : verbose|trace|debug|info|warn|error|fatal (default info)
//	XYOGA_CONSOLE=1 : enable ConsoleWriter (pretty output)
func init() {
	xyoga.RegisterDefaultSinkFactory(func(w io.Writer) xyoga.Sink {
		if w == nil {
			w = os.Stderr
		}
		level, _ := xyoga.ParseLogLevel(os.Getenv("XYOGA_MIN_LEVEL"))
		return New(NewLogger(Config{
			Writer:   w,
			MinLevel: xyoga.AtLeast(level),
			Console:  os.Getenv("XYOGA_CONSOLE") == "1",
		}))
	})
}
