// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/tebeka/atexit"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("rvasm: ")
}

func main() {
	var opts options

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.BoolVar(&opts.Verbose, "v", false, "Verbose mode")
	flags.BoolVar(&opts.KeepGoing, "k", false, "Report every line in error, instead of stopping at the first")
	flags.Usage = func() {
		printUsage(flags.Output())
		flags.PrintDefaults()
	}

	// Unknown flags have already printed the usage.
	if err := flags.Parse(os.Args[1:]); err != nil {
		atexit.Exit(0)
	}

	opts.Table = isTerminal(os.Stdout)

	atexit.Exit(run(flags.Args(), os.Stdout, opts))
}
