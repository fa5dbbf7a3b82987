package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ironsheep/skin-preview-mcp/internal/imaging"
	"github.com/ironsheep/skin-preview-mcp/internal/server"
	"github.com/ironsheep/skin-preview-mcp/internal/skin"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches the command line. No arguments, or "serve", starts the MCP
// server on stdio.
func run(args []string, stdout io.Writer) error {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			printVersion(stdout)
			return nil
		case "--help", "-h", "help":
			printHelp(stdout)
			return nil
		case "render":
			return runRender(args[1:], stdout)
		case "validate":
			return runValidate(args[1:], stdout)
		case "serve":
			if len(args) > 1 {
				return fmt.Errorf("serve takes no arguments, got %q", args[1])
			}
		default:
			return fmt.Errorf("unknown command %q (run with --help for usage)", args[0])
		}
	}
	return runServe()
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "skin-preview-mcp %s\n", Version)
	fmt.Fprintf(w, "  Build time: %s\n", BuildTime)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `skin-preview-mcp - MCP server and CLI for skin preview rendering

Usage:
  skin-preview-mcp [serve]                  Run the MCP server on stdin/stdout
  skin-preview-mcp render [flags] SKIN.png  Write the 16x32 front preview
  skin-preview-mcp validate SKIN.png        Check the 64x32 / 64x64 size rule

Render flags:
  -m, --model string    classic or slim (default "classic")
  -s, --scale int       integer enlargement factor (default 1)
  -o, --output string   output file (default SKIN-preview.png)

Options:
  --version, -v    Print version information
  --help, -h       Print this help message

Environment variables:
  SKIN_MCP_LOG_LEVEL=debug    Enable debug logging

In serve mode the server communicates via MCP protocol over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).
`)
}

func runServe() error {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	srv := server.New()
	if os.Getenv("SKIN_MCP_LOG_LEVEL") == "debug" {
		log.Printf("Skin Preview MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		srv.SetDebug(true)
	}

	if err := srv.Run(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// defaultOutputPath derives the preview file name from the skin file name.
func defaultOutputPath(skinPath string) string {
	ext := filepath.Ext(skinPath)
	return strings.TrimSuffix(skinPath, ext) + "-preview.png"
}

func runRender(args []string, stdout io.Writer) error {
	var modelFlag, output string
	var scale int

	flagSet := pflag.NewFlagSet("render", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVarP(&modelFlag, "model", "m", "classic", "skin model: classic or slim")
	flagSet.IntVarP(&scale, "scale", "s", 1, "integer enlargement factor")
	flagSet.StringVarP(&output, "output", "o", "", "output file (default SKIN-preview.png)")

	if err := flagSet.Parse(args); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if flagSet.NArg() != 1 {
		return fmt.Errorf("render: expected one skin file, got %d arguments", flagSet.NArg())
	}
	skinPath := flagSet.Arg(0)

	model, err := skin.ParseModelVariant(modelFlag)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if output == "" {
		output = defaultOutputPath(skinPath)
	}

	tex, err := imaging.NewImageCache().LoadTexture(skinPath)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	preview, err := tex.Render(model)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := imaging.SavePNG(preview, scale, output); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	fmt.Fprintf(stdout, "wrote %s (%s, %dx%d)\n", output, model,
		skin.PreviewWidth*scale, skin.PreviewHeight*scale)
	return nil
}

func runValidate(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("validate: expected one skin file, got %d arguments", len(args))
	}

	info, err := imaging.LoadSkinInfo(imaging.NewImageCache(), args[0])
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if !info.ValidSkin {
		return fmt.Errorf("validate: %s: %w", args[0],
			&skin.InvalidSizeError{Width: info.Width, Height: info.Height})
	}

	fmt.Fprintf(stdout, "%s: valid %s skin (%dx%d)\n", args[0], info.Layout, info.Width, info.Height)
	return nil
}
