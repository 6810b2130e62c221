package logger

import (
	"io"
	"os"
)

var (
	FlagVerboseCount int  // -V, -VV, -VVV
	FlagQuiet        bool // --quiet/-q
	FlagSilent       bool // --silent/-s
	FlagJSON         bool // for CI
)

func ConfigureLoggerFromFlags() {
	var out io.Writer = os.Stdout
	var level string
	switch {
	case FlagQuiet:
		level = "error" // errors only
	case FlagSilent:
		level = "error"
		out = io.Discard // silent = no output at all, even errors
	default:
		switch FlagVerboseCount {
		case 0:
			level = "info"
		default:
			level = "debug" // -V and beyond
		}
	}

	Configure(Options{
		Level: level,
		JSON:  FlagJSON,
		Color: !FlagJSON,
		Out:   out,
	})
}
