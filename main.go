package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"plotter/app"
	"plotter/expr"
	"plotter/hal"
	"plotter/internal/buildinfo"
	"plotter/plot"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

type options struct {
	expr     string
	snapshot string
	cfg      app.Config
	headless hal.HeadlessConfig
}

func main() {
	opts := options{cfg: app.DefaultConfig()}
	var keys string
	var showVersion bool
	flag.StringVar(&opts.expr, "expr", "", "Expression in x to plot (read from stdin when empty).")
	flag.BoolVar(&opts.headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&opts.headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&opts.headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until Escape).")
	flag.StringVar(&keys, "keys", "", "Headless key script: one comma-separated entry per tick, keys joined by '+' (e.g. up,up,left+down,esc).")
	flag.StringVar(&opts.snapshot, "snapshot", "", "Write the last headless frame to this .png or .bmp file.")
	flag.BoolVar(&opts.cfg.HUD, "hud", false, "Draw the expression and scales in the top-left corner.")
	flag.IntVar(&opts.cfg.Width, "width", opts.cfg.Width, "Surface width in pixels.")
	flag.IntVar(&opts.cfg.Height, "height", opts.cfg.Height, "Surface height in pixels.")
	flag.BoolVar(&showVersion, "version", false, "Print build info and exit.")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Println(buildinfo.String())
		return
	}
	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected arguments: %s\n", strings.Join(flag.Args(), " "))
		os.Exit(2)
	}
	if err := opts.cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if opts.snapshot != "" && !opts.headless.Enabled {
		fmt.Fprintln(os.Stderr, "error: -snapshot requires -headless")
		os.Exit(2)
	}
	script, err := hal.ParseKeys(keys)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	opts.headless.Script = script
	opts.headless.Width, opts.headless.Height = opts.cfg.Width, opts.cfg.Height

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		os.Exit(reportFatal(os.Stderr, err))
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "usage: plotter [flags]")
	fmt.Fprintln(out, "Reads an expression in x from stdin (or -expr) and plots it.")
	fmt.Fprintln(out, "Keys: arrows zoom, R resets, Escape quits.")
	fmt.Fprintln(out)
	flag.PrintDefaults()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "builtins:", strings.Join(expr.Names(), " "))
}

func run(opts options, stdin io.Reader, stdout io.Writer) error {
	src := opts.expr
	if src == "" {
		var err error
		src, err = readExpression(stdin, stdout)
		if err != nil {
			return app.Fatal("read expression", err)
		}
	}
	fn, err := compile(src)
	if err != nil {
		return err
	}

	if opts.headless.Enabled {
		return runHeadless(opts, fn, src)
	}

	err = hal.RunWindow(hal.WindowConfig{
		Title:  opts.cfg.Title,
		Width:  opts.cfg.Width,
		Height: opts.cfg.Height,
	}, app.Factory(fn, src, opts.cfg, nil))
	return asFatal("run window", err)
}

func runHeadless(opts options, fn expr.Func, src string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var a *app.App
	err := hal.RunHeadless(ctx, app.Factory(fn, src, opts.cfg, &a), opts.headless)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if err != nil {
		return asFatal("run headless", err)
	}
	if opts.snapshot != "" && a != nil {
		if err := plot.SaveImage(a.Surface(), opts.snapshot); err != nil {
			return app.Fatal("write snapshot", err)
		}
	}
	return nil
}

// readExpression prompts on w and returns the first line of r, trimmed.
func readExpression(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprintln(w, bannerStyle.Render("Hello, this program draws a graph of the function you enter (e.g. sin(x) * cos(x))."))
	fmt.Fprintln(w, hintStyle.Render("Please enter your function expression:"))

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func compile(src string) (expr.Func, error) {
	e, err := expr.Parse(src)
	if err != nil {
		return nil, app.Fatal("parse expression", err)
	}
	fn, err := e.Bind("x")
	if err != nil {
		return nil, app.Fatal("bind expression", err)
	}
	return fn, nil
}

// asFatal wraps err unless it already carries a FatalError.
func asFatal(op string, err error) error {
	var fe *app.FatalError
	if errors.As(err, &fe) {
		return err
	}
	return app.Fatal(op, err)
}

func reportFatal(w io.Writer, err error) int {
	fmt.Fprintln(w, errorStyle.Render("error:"), err)
	return 1
}
