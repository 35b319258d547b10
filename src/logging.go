package readtape

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the package-wide diagnostic sink, standing in for the
// severity-colored dw_printf categories of the original textcolor.c:
// INFO for progress, ERROR for fatal conditions, DECODED for accepted
// blocks, DEBUG for per-attempt parmset detail.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// SetLogLevel adjusts verbosity; callers pass through a -d/-q style
// count from the command line.
func SetLogLevel(debug bool, quiet bool) {
	switch {
	case quiet:
		Logger.SetLevel(log.ErrorLevel)
	case debug:
		Logger.SetLevel(log.DebugLevel)
	default:
		Logger.SetLevel(log.InfoLevel)
	}
}

// LogBlockResult emits one line per decoded block at DECODED-equivalent
// verbosity, summarizing its kind and error/warning counts.
func LogBlockResult(blockNum int, r BlockResult) {
	switch r.Kind {
	case KindBlock:
		if r.ErrCount == 0 && r.WarnCount == 0 {
			Logger.Debug("block decoded", "n", blockNum, "t_blockstart", r.TBlockStart, "bytes", len(r.Data))
		} else {
			Logger.Info("block decoded with issues", "n", blockNum, "t_blockstart", r.TBlockStart,
				"bytes", len(r.Data), "errors", r.ErrCount, "warnings", r.WarnCount)
		}
	case KindTapemark:
		Logger.Info("tapemark", "n", blockNum, "t_blockstart", r.TBlockStart)
	case KindNoise:
		Logger.Warn("noise", "n", blockNum, "t_blockstart", r.TBlockStart)
	case KindBadBlock:
		Logger.Error("bad block", "n", blockNum, "t_blockstart", r.TBlockStart, "mismatch", r.TrackMismatch)
	}
}
