// Command plotsnap renders one plotter frame for an expression straight to an image file.
package main

import (
	"flag"
	"fmt"
	"os"

	"plotter/app"
	"plotter/expr"
	"plotter/plot"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
)

type snapOptions struct {
	expr    string
	out     string
	scaleX  float64
	scaleY  float64
	periodX int
	periodY int
	cfg     app.Config
}

func main() {
	opts := snapOptions{cfg: app.DefaultConfig()}
	flag.StringVar(&opts.expr, "expr", "", "Expression in x to plot.")
	flag.StringVar(&opts.out, "o", "plot.png", "Output image path (.png or .bmp).")
	flag.IntVar(&opts.cfg.Width, "width", opts.cfg.Width, "Image width in pixels.")
	flag.IntVar(&opts.cfg.Height, "height", opts.cfg.Height, "Image height in pixels.")
	flag.Float64Var(&opts.scaleX, "sx", plot.DefaultScale, "Pixels per unit on the x axis.")
	flag.Float64Var(&opts.scaleY, "sy", plot.DefaultScale, "Pixels per unit on the y axis.")
	flag.IntVar(&opts.periodX, "gx", app.DefaultPeriodX, "Grid period along x (<= 0 disables).")
	flag.IntVar(&opts.periodY, "gy", app.DefaultPeriodY, "Grid period along y (<= 0 disables).")
	flag.BoolVar(&opts.cfg.HUD, "hud", false, "Draw the expression and scales in the top-left corner.")
	flag.Parse()

	if opts.expr == "" {
		fmt.Fprintln(os.Stderr, "error: -expr is required")
		os.Exit(2)
	}
	if opts.scaleX <= 0 || opts.scaleY <= 0 {
		fmt.Fprintln(os.Stderr, "error: -sx and -sy must be positive")
		os.Exit(2)
	}
	if err := opts.cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(1)
	}
	fmt.Println(okStyle.Render("wrote " + opts.out))
}

func run(opts snapOptions) error {
	e, err := expr.Parse(opts.expr)
	if err != nil {
		return app.Fatal("parse expression", err)
	}
	fn, err := e.Bind("x")
	if err != nil {
		return app.Fatal("bind expression", err)
	}

	st, err := app.NewState(opts.cfg.Width, opts.cfg.Height, opts.cfg.Background)
	if err != nil {
		return app.Fatal("create surface", err)
	}
	st.Surface.ScaleX, st.Surface.ScaleY = opts.scaleX, opts.scaleY
	st.PeriodX, st.PeriodY = opts.periodX, opts.periodY

	app.Render(st, fn, e.String(), opts.cfg)
	return app.Fatal("write image", plot.SaveImage(st.Surface, opts.out))
}
