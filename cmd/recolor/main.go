package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/image-recolor/internal/imaging"
	"github.com/ironsheep/image-recolor/internal/recolor"
	"github.com/ironsheep/image-recolor/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Exit codes
const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitColorParse  = 3
	exitInputFailed = 4
	exitDecode      = 5
	exitOutputWrite = 6
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Logging goes to stderr; stdout carries MCP traffic or command output
	log.SetOutput(stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "recolor %s\n", Version)
			fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
			return exitOK
		case "--help", "-h", "help":
			printUsage(stdout)
			return exitOK
		case "mcp":
			return runMCP()
		case "placeholder":
			return runPlaceholder(args[1:], stdout, stderr)
		}
	}
	return runRecolor(args, stderr)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "recolor - replace one color in an image with another")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  recolor [-threshold N] [-quality Q] <input> <#target> <#replacement> <output>")
	fmt.Fprintln(w, "  recolor placeholder [-size N] <input>")
	fmt.Fprintln(w, "  recolor mcp")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Every pixel whose red, green and blue each differ from target by less")
	fmt.Fprintln(w, "than the threshold becomes the replacement color. Alpha is kept.")
	fmt.Fprintln(w, "The output format follows the output extension (.png .jpg .gif .tif .bmp).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -threshold N     Per-channel distance, 0 for exact match (default 100)")
	fmt.Fprintln(w, "  -quality Q       JPEG quality 1-100 (default 95)")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  placeholder      Print a tiny base64 data URL preview of an image")
	fmt.Fprintln(w, "  mcp              Serve the MCP protocol over stdin/stdout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  RECOLOR_THRESHOLD=N        Default for -threshold")
	fmt.Fprintln(w, "  RECOLOR_JPEG_QUALITY=Q     Default for -quality")
	fmt.Fprintln(w, "  RECOLOR_LOG_LEVEL=debug    Enable debug logging")
}

func runRecolor(args []string, stderr io.Writer) int {
	opts := recolor.DefaultOptions()

	var err error
	if opts.Threshold, err = getenvInt("RECOLOR_THRESHOLD", opts.Threshold); err != nil {
		log.Printf("[fatal] %v", err)
		return exitUsage
	}
	if opts.JPEGQuality, err = getenvInt("RECOLOR_JPEG_QUALITY", opts.JPEGQuality); err != nil {
		log.Printf("[fatal] %v", err)
		return exitUsage
	}

	fs := flag.NewFlagSet("recolor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }
	fs.IntVar(&opts.Threshold, "threshold", opts.Threshold, "per-channel distance, 0 for exact match")
	fs.IntVar(&opts.JPEGQuality, "quality", opts.JPEGQuality, "JPEG quality 1-100")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if fs.NArg() != 4 {
		log.Printf("[fatal] expected 4 arguments, got %d", fs.NArg())
		printUsage(stderr)
		return exitUsage
	}
	opts.Input = fs.Arg(0)
	opts.Target = fs.Arg(1)
	opts.Replacement = fs.Arg(2)
	opts.Output = fs.Arg(3)

	debugf("recolor %s -> %s target=%s replacement=%s threshold=%d",
		opts.Input, opts.Output, opts.Target, opts.Replacement, opts.Threshold)

	result, err := recolor.File(opts)
	if err != nil {
		log.Printf("[fatal] %v", err)
		return exitCode(err)
	}

	log.Printf("[done] replaced %d of %d pixels (%s -> %s, threshold %d) wrote %s",
		result.Replaced, result.Total, result.Target, result.Replacement, result.Threshold, opts.Output)
	if !result.Stable {
		log.Printf("[warn] %s is within threshold of %s; running again would change the output",
			result.Replacement, result.Target)
	}
	return exitOK
}

func runPlaceholder(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("placeholder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	size := fs.Int("size", imaging.DefaultPlaceholderSize, "edge length in pixels")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 1 {
		log.Printf("[fatal] expected 1 argument, got %d", fs.NArg())
		return exitUsage
	}

	img, format, err := imaging.Open(fs.Arg(0))
	if err != nil {
		log.Printf("[fatal] %v", err)
		return exitCode(err)
	}
	result, err := imaging.Placeholder(img, format, *size)
	if err != nil {
		log.Printf("[fatal] %v", err)
		return exitFailure
	}
	fmt.Fprintln(stdout, result.DataURL)
	return exitOK
}

func runMCP() int {
	debugf("Image Recolor MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)

	srv := server.New(Version)
	if err := srv.Run(); err != nil {
		log.Printf("Server error: %v", err)
		return exitFailure
	}
	return exitOK
}

// exitCode maps an error to the process exit status for its failure class.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, recolor.ErrColorParse):
		return exitColorParse
	case errors.Is(err, recolor.ErrInvalidThreshold):
		return exitUsage
	case errors.Is(err, recolor.ErrInputNotFound):
		return exitInputFailed
	case errors.Is(err, recolor.ErrDecode):
		return exitDecode
	case errors.Is(err, recolor.ErrUnsupportedFormat), errors.Is(err, recolor.ErrOutputWrite):
		return exitOutputWrite
	default:
		return exitFailure
	}
}

func debugf(format string, args ...interface{}) {
	if os.Getenv("RECOLOR_LOG_LEVEL") == "debug" {
		log.Printf(format, args...)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) (int, error) {
	v := getenv(k, strconv.Itoa(def))
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not an integer", k, v)
	}
	return n, nil
}
