package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/yellottyellott/chat-parser/internal/app"
	"github.com/yellottyellott/chat-parser/internal/title"
	"github.com/yellottyellott/chat-parser/internal/usecase"
)

func main() {
	var (
		verbose   bool
		version   = flag.Bool("version", false, "Show version")
		timeout   = flag.Duration("timeout", title.DefaultTimeout, "Per-link title fetch timeout (e.g. 4s)")
		workers   = flag.Int("workers", usecase.DefaultWorkers, "Titles fetched at once")
		userAgent = flag.String("user-agent", "", "User-Agent sent when fetching titles")
	)
	flag.BoolVar(&verbose, "verbose", false, "Show DEBUG logs")
	flag.BoolVar(&verbose, "v", false, "Show DEBUG logs (shorthand)")
	flag.Usage = func() {
		name := filepath.Base(os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] [message ...]\n\n", name)
		fmt.Fprintf(flag.CommandLine.Output(), "Reads the message from stdin when none is given.\n\n")
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\nExamples:\n  echo \"@bob, come here real quick\" | %s\n  %s -v \"(thumbsup) see jake.com\"\n", name, name)
	}
	flag.Parse()

	if *version {
		fmt.Println("Chat Parse " + app.Version)
		return
	}

	cfg := app.Config{
		Text:      app.JoinArgs(flag.Args()),
		Timeout:   *timeout,
		Workers:   *workers,
		UserAgent: *userAgent,
		Verbose:   verbose,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := app.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
