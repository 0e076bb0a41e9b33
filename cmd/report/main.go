package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log-report/internal/app"
	"log-report/internal/consoles"
	"log-report/internal/shared/configs"

	"github.com/spf13/pflag"
)

const usage = `Usage:
  log-report [flags] <url>    print the report for the CSV log at url (http, https or file)
  log-report [flags] serve    serve reports over HTTP (GET /reports?url=..., http and https only)

Output:
  Each answer is printed between two lines of 80 dashes. The hourly answer prints
  one "Hour HH has N hits." line per hour, ascending, the same for menu option 3
  and for option 4 / non-interactive runs.

Flags:
`

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("log-report", pflag.ContinueOnError)
	flags.String("config", configs.DefaultConfigPath, "path to the YAML config file")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("error-log", "errors.log", "file receiving error records, empty to disable")
	flags.Int("fetch-timeout", 30, "fetch timeout in seconds")
	flags.String("metadata-dir", ".", "directory of the browser metadata snapshot")
	flags.String("metadata-format", "json", "browser metadata format (json or yaml)")
	flags.Bool("no-metadata", false, "do not write the browser metadata snapshot")
	flags.String("metrics-textfile", "", "write Prometheus metrics to this file on exit")
	flags.Int("port", 8080, "listen port in serve mode")
	flags.BoolP("interactive", "i", false, "choose answers from a menu")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	return flags
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}

	configPath, _ := flags.GetString("config")
	cfg, err := configs.LoadConfig(configPath, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	application, err := app.New(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		return 1
	}
	defer application.Close()

	if flags.Arg(0) == "serve" {
		return serve(application)
	}

	interactive, _ := flags.GetBool("interactive")
	console := consoles.NewConsole(os.Stdin, os.Stdout)
	if err := application.Run(context.Background(), flags.Arg(0), console, interactive); err != nil {
		return 1
	}
	return 0
}

func serve(application *app.App) int {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- application.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
			return 1
		}
		return 0
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return 1
	}
	return 0
}
