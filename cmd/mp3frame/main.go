package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/yorkxin/mp3frame"
	"github.com/yorkxin/mp3frame/internal/report"
)

func main() {
	var opts mp3frame.Options
	var reportOpts report.Options

	flag.StringVar(&reportOpts.Lang, "lang", "", "localise numbers for this BCP 47 language tag, e.g. en or de")
	flag.BoolVar(&reportOpts.Bits, "bits", false, "print the frame header as bits")
	flag.BoolVar(&reportOpts.Verbose, "v", false, "print protection, padding, copyright and emphasis flags")
	flag.BoolVar(&opts.SkipID3, "skip-id3", false, "skip a leading ID3v2 tag before reading the header")
	flag.BoolVar(&opts.Verify, "verify", false, "cross-check the sample rate by decoding the stream")
	flag.Parse()

	if err := run(os.Stdout, flag.Arg(0), opts, reportOpts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer, location string, opts mp3frame.Options, reportOpts report.Options) error {
	header, err := mp3frame.Describe(location, opts)

	if err != nil {
		return err
	}

	return report.Write(w, header, reportOpts)
}
