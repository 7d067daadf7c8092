// Command glslpp runs the shader preprocessor over one file and prints every
// stage it produces, followed by the uniform table.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pavanmanishd/go-arena"
	"github.com/pavanmanishd/go-arena/shader"
)

func main() {
	var (
		version = flag.String("version", shader.DefaultVersion, "version line injected at the top of each stage")
		reserve = flag.Int("reserve", 16<<20, "scratch arena reservation in bytes")
		verbose = flag.Bool("v", false, "log informational messages")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: glslpp [flags] FILE\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(os.Stdout, flag.Arg(0), *version, *reserve, logger); err != nil {
		fmt.Fprintf(os.Stderr, "glslpp: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, path, version string, reserve int, logger *slog.Logger) error {
	scratch := arena.New(reserve)
	defer scratch.Release()

	var uniforms shader.UniformTable
	outs, err := shader.ProcessFile(scratch, path, &uniforms,
		shader.WithVersion(version), shader.WithLogger(logger))
	if err != nil {
		return err
	}
	for _, out := range outs {
		fmt.Fprintf(w, "// --- %s ---\n%s\n", out.Stage, out.Source)
	}
	fmt.Fprintf(w, "// --- uniforms (%d) ---\n", uniforms.Len())
	for _, u := range uniforms.Entries() {
		if u.Unit >= 0 {
			fmt.Fprintf(w, "// %s unit=%d\n", u.Name, u.Unit)
			continue
		}
		fmt.Fprintf(w, "// %s\n", u.Name)
	}
	logger.Debug("scratch usage", "in_use", scratch.SizeInUse(), "committed", scratch.Committed())
	return nil
}
