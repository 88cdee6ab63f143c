package main

import (
	"io"
	"log/slog"
	"os"

	"bmpkit/convert"
	"bmpkit/demo"
	"bmpkit/inspect"
	"bmpkit/parallel"

	"github.com/alecthomas/kong"
)

type CLI struct {
	LogLevel  slog.Level `help:"Minimum log level (debug, info, warn, error)" default:"info" env:"BMPKIT_LOG_LEVEL"`
	LogFormat string     `help:"Log output format" enum:"text,json" default:"text" env:"BMPKIT_LOG_FORMAT"`
	Workers   int        `help:"Number of parallel workers, 0 for one per CPU" default:"0" env:"BMPKIT_WORKERS"`

	Demo    demo.CLICmd    `cmd:"" help:"Draw stripes into test1.bmp and test2.bmp"`
	Convert convert.CLICmd `cmd:"" help:"Convert pictures to 24-bit BMP, or BMP to PNG/TIFF"`
	Inspect inspect.CLICmd `cmd:"" help:"Report header details of BMP files"`
}

func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("bmpkit"),
		kong.Description("Read, write and convert uncompressed 24-bit BMP images."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "/etc/bmpkit.json", "~/.config/bmpkit.json"),
	)

	slog.SetDefault(newLogger(os.Stderr, cli.LogLevel, cli.LogFormat))
	slog.Debug("running", "command", kctx.Command(), "workers", cli.Workers)

	err := kctx.Run(parallel.Start(cli.Workers))
	kctx.FatalIfErrorf(err)
}
