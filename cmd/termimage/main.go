// Command termimage prints an image as colored or monochrome ASCII art
// sized to the terminal width.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/wbrown/termart"
	"github.com/wbrown/termart/imageutil"
	"github.com/wbrown/termart/terminal"
)

const (
	colorBrightness = 1.5
	monoBrightness  = 0.5
)

// switchFlag is one half of a --name / --no-name pair sharing a target.
// Whichever appears last on the command line wins.
type switchFlag struct {
	target *bool
	value  bool
}

func (f *switchFlag) String() string {
	if f.target == nil {
		return "false"
	}
	return strconv.FormatBool(*f.target == f.value)
}

func (f *switchFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*f.target = f.value
	} else {
		*f.target = !f.value
	}
	return nil
}

func (f *switchFlag) IsBoolFlag() bool { return true }

type options struct {
	input     string
	colorized bool
	width     int
}

func parseArgs(args []string, defaultWidth int, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("termimage", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: termimage [--colorized | --no-colorized] [--width N] input")
		fs.PrintDefaults()
	}
	fs.Var(&switchFlag{&opts.colorized, true}, "colorized", "Prints colorized ascii")
	fs.Var(&switchFlag{&opts.colorized, false}, "no-colorized", "Do not print colorized ascii")
	fs.IntVar(&opts.width, "width", defaultWidth, "Set width of picture")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	// Allow flags after the positional input as well as before it.
	if fs.NArg() > 0 {
		opts.input = fs.Arg(0)
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return opts, err
		}
	}
	switch {
	case opts.input == "":
		fs.Usage()
		return opts, fmt.Errorf("missing input image")
	case fs.NArg() > 0:
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	case opts.width < 1:
		return opts, fmt.Errorf("width must be positive, got %d", opts.width)
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cols, _ := terminal.Size()
	opts, err := parseArgs(args, cols, stderr)
	if err != nil {
		return err
	}

	brightness := monoBrightness
	if opts.colorized {
		brightness = colorBrightness
	}
	img, err := imageutil.LoadAndResize(opts.input, opts.width, 0, brightness)
	if err != nil {
		return fmt.Errorf("error processing image: %w", err)
	}

	r := termart.NewImageRasterizer(termart.WithColorized(opts.colorized))
	grid, err := r.Rasterize(termart.PixelGridFromImage(img))
	if err != nil {
		return err
	}
	return grid.Flush(stdout)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("termimage: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}
