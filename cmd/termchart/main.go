// Command termchart draws bar charts and line graphs in the terminal.
//
//	termchart [flags] bar label=value ...
//	termchart [flags] line [x,y ...]
//
// Line points are read from stdin, one "x,y" or "x y" pair per line, when
// none are given as arguments.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/wbrown/termart"
	"github.com/wbrown/termart/terminal"
)

type config struct {
	color     termart.ColorTag
	connector termart.ColorTag
	rows      int
	cols      int
	pngPath   string
	scale     int
	demo      bool
	command   string
	args      []string
}

// colorValue parses a palette color name into a ColorTag.
type colorValue struct{ tag *termart.ColorTag }

func (v colorValue) String() string {
	if v.tag == nil || *v.tag == termart.NoColor {
		return ""
	}
	return v.tag.String()
}

func (v colorValue) Set(s string) error {
	tag, err := termart.ParseColorTag(s)
	if err != nil {
		return err
	}
	*v.tag = tag
	return nil
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	cols, rows := terminal.Size()
	cfg := config{connector: termart.DarkGrey}

	fs := flag.NewFlagSet("termchart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: termchart [flags] bar label=value ...")
		fmt.Fprintln(fs.Output(), "       termchart [flags] line [x,y ...]")
		fs.PrintDefaults()
	}
	fs.Var(colorValue{&cfg.color}, "color", "Primary color name (e.g. green, light-blue)")
	fs.Var(colorValue{&cfg.connector}, "connector", "Line graph connector color name")
	fs.IntVar(&cfg.rows, "rows", rows, "Grid height")
	// The last column is left free so a full-width row does not wrap.
	fs.IntVar(&cfg.cols, "cols", cols-1, "Grid width")
	fs.StringVar(&cfg.pngPath, "png", "", "Also save a PNG snapshot to this path")
	fs.IntVar(&cfg.scale, "scale", 1, "PNG snapshot scale factor")
	fs.BoolVar(&cfg.demo, "demo", false, "Draw built-in demo data")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return cfg, errors.New("missing command: bar or line")
	}
	cfg.command = fs.Arg(0)
	cfg.args = fs.Args()[1:]
	if cfg.scale < 1 {
		return cfg, fmt.Errorf("scale must be positive, got %d", cfg.scale)
	}
	return cfg, nil
}

// parseBars reads label=value arguments. A repeated label keeps its first
// position and takes the later value.
func parseBars(args []string) ([]termart.NamedValue, error) {
	om := termart.NewOrderedMap[string, float64]()
	for _, arg := range args {
		i := strings.LastIndexByte(arg, '=')
		if i < 0 {
			return nil, fmt.Errorf("bar %q: want label=value", arg)
		}
		v, err := strconv.ParseFloat(arg[i+1:], 64)
		if err != nil {
			return nil, fmt.Errorf("bar %q: %w", arg, err)
		}
		om.Set(arg[:i], v)
	}
	return termart.NamedValuesFromMap(om), nil
}

func parsePoint(s string) (termart.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return termart.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return termart.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return termart.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return termart.Point{X: x, Y: y}, nil
}

func parsePoints(args []string, stdin io.Reader) ([]termart.Point, error) {
	var points []termart.Point
	if len(args) > 0 {
		for _, arg := range args {
			p, err := parsePoint(arg)
			if err != nil {
				return nil, err
			}
			points = append(points, p)
		}
		return points, nil
	}
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading points: %w", err)
	}
	return points, nil
}

func demoBars() []termart.NamedValue {
	return []termart.NamedValue{
		{Label: "oak", Value: 100},
		{Label: "pine", Value: 79},
		{Label: "birch", Value: 200},
		{Label: "banana", Value: 25},
		{Label: "a very long coconut label that will not fit", Value: 0},
		{Label: "apple", Value: 134},
	}
}

func demoPoints() []termart.Point {
	points := make([]termart.Point, 100)
	for x := range points {
		points[x] = termart.Point{X: float64(x), Y: math.Abs(math.Sin(float64(x) / 20))}
	}
	return points
}

func render(cfg config, stdin io.Reader) (*termart.GlyphGrid, error) {
	opts := []termart.Option{
		termart.WithColor(cfg.color),
		termart.WithConnectorColor(cfg.connector),
	}
	switch cfg.command {
	case "bar":
		values := demoBars()
		if !cfg.demo {
			var err error
			if values, err = parseBars(cfg.args); err != nil {
				return nil, err
			}
		}
		return termart.NewBarChart(cfg.rows, cfg.cols, opts...).Render(values)
	case "line":
		points := demoPoints()
		if !cfg.demo {
			var err error
			if points, err = parsePoints(cfg.args, stdin); err != nil {
				return nil, err
			}
		}
		return termart.NewLineGraph(cfg.rows, cfg.cols, opts...).Render(points)
	default:
		return nil, fmt.Errorf("unknown command %q: want bar or line", cfg.command)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	grid, err := render(cfg, stdin)
	if err != nil {
		return err
	}
	if cfg.pngPath != "" {
		fb, err := termart.LoadFontBitmaps()
		if err != nil {
			return fmt.Errorf("loading font: %w", err)
		}
		if err := termart.SaveGridPNG(grid, fb, cfg.pngPath, cfg.scale); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
	}
	return grid.Flush(stdout)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("termchart: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}
