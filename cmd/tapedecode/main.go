// Command tapedecode reconstructs the original byte stream from an
// analog tape capture, emitting a SIMH .tap file and a summary of
// block errors and warnings to stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lenshustek-port/readtape/src"
	"github.com/spf13/pflag"
)

func main() {
	var configFile = pflag.StringP("config-file", "c", "", "YAML decoder configuration file (required).")
	var outFile = pflag.StringP("out", "o", "", "Output SIMH .tap file name. Defaults to stdout.")
	var format = pflag.StringP("format", "f", "tbin", "Input sample format: tbin or csv.")
	var debug = pflag.BoolP("debug", "d", false, "Verbose per-block logging.")
	var quiet = pflag.BoolP("quiet", "q", false, "Only log errors.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: tapedecode -c config.yaml [input-file]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if *help {
		pflag.Usage()
		return
	}
	if *configFile == "" {
		fmt.Fprintln(os.Stderr, "tapedecode: -c/--config-file is required")
		pflag.Usage()
		os.Exit(1)
	}

	readtape.SetLogLevel(*debug, *quiet)

	cfgFile, err := os.Open(*configFile)
	if err != nil {
		fatal(err)
	}
	defer cfgFile.Close()
	cfg, err := readtape.LoadConfig(cfgFile)
	if err != nil {
		fatal(err)
	}

	var inFile *os.File
	if len(pflag.Args()) > 0 {
		inFile, err = os.Open(pflag.Arg(0))
		if err != nil {
			fatal(err)
		}
		defer inFile.Close()
	} else {
		inFile = os.Stdin
	}

	var src readtape.SampleSource
	switch strings.ToLower(*format) {
	case "tbin":
		var tb *readtape.TbinSource
		tb, err = readtape.OpenTbin(inFile)
		if err == nil {
			if !tb.TimeWritten().IsZero() {
				readtape.Logger.Info("capture header", "written", readtape.FormatTapeTime(tb.TimeWritten()))
			}
			src = tb
		}
	case "csv":
		src, err = readtape.OpenCsv(inFile)
	default:
		err = &readtape.FatalError{Reason: "unknown --format " + *format}
	}
	if err != nil {
		fatal(err)
	}
	src = readtape.NewWindowedSource(src, cfg)

	out := os.Stdout
	if *outFile != "" {
		out, err = os.Create(*outFile)
		if err != nil {
			fatal(err)
		}
		defer out.Close()
	}
	tapWriter := readtape.NewSimhTapWriter(out)

	dc := readtape.NewDecoderContext(cfg, src, cfg.Mode)

	ctx := context.Background()
	if err := dc.RunPrePasses(ctx); err != nil {
		fatal(err)
	}

	rd := readtape.NewRetryDriver(cfg, dc)

	blockNum := 0
	var blocks, tapemarks, errored, labels int
	for {
		r, exhausted, err := rd.DecodeNextBlock(ctx)
		if err != nil {
			fatal(err)
		}
		if exhausted {
			break
		}
		blockNum++
		readtape.LogBlockResult(blockNum, r)
		switch r.Kind {
		case readtape.KindBlock:
			blocks++
			if r.ErrCount > 0 {
				errored++
			}
			if readtape.IsIBMLabelBlock(r.Data) {
				labels++
				readtape.Logger.Info("IBM label block", "n", blockNum)
			}
		case readtape.KindTapemark:
			tapemarks++
		}
		if err := tapWriter.WriteFromBlockResult(r); err != nil {
			fatal(err)
		}
	}
	if err := tapWriter.WriteEndOfMedium(); err != nil {
		fatal(err)
	}
	readtape.Logger.Info("done", "blocks", blocks, "tapemarks", tapemarks, "blocks_with_errors", errored, "label_blocks", labels)
}

func fatal(err error) {
	readtape.Logger.Error("aborting", "err", err)
	os.Exit(1)
}
