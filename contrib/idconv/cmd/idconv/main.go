package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/mongoql/gqlid/contrib/idconv"
)

func main() {
	// Create config with defaults
	config := idconv.NewConfig()

	flag.StringVar(&config.From, "from", config.From, "Input format: string, json, bson or cbor (binary formats as hex)")
	flag.StringVar(&config.To, "to", config.To, "Output format: string, json, bson or cbor (binary formats as hex)")
	flag.StringVar(&config.LogPath, "log", "", "Log file path (defaults to stderr)")
	flag.BoolVar(&config.Verbose, "verbose", false, "Enable verbose logging")

	flag.Parse()

	// Remaining arguments are the IDs to convert; stdin is read when there are none
	config.Inputs = flag.Args()

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := idconv.Do(ctx, config, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
