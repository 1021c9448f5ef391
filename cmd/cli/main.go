package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/loomgo/internal/app"
	"github.com/vk/loomgo/internal/cli"
	"github.com/vk/loomgo/internal/config"
	"github.com/vk/loomgo/internal/hcl"
	"github.com/vk/loomgo/internal/yamlcfg"
)

// main is the entrypoint for the loomgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to provide
	// a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	loomApp := app.NewApp(outW, os.Stderr, appConfig, loaderFor(appConfig.ProjectPath))
	return loomApp.Run(context.Background(), appConfig)
}

// loaderFor picks the config loader by path extension; directories default
// to HCL discovery.
func loaderFor(path string) config.Loader {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return yamlcfg.NewLoader()
	}
	return hcl.NewLoader()
}
