package main

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plotter/app"
	"plotter/expr"
	"plotter/hal"
)

func headlessOptions(src string, ticks uint64, script ...hal.KeyState) options {
	cfg := app.DefaultConfig()
	cfg.Width, cfg.Height = 200, 100
	return options{
		expr: src,
		cfg:  cfg,
		headless: hal.HeadlessConfig{
			Enabled: true,
			Hz:      1000,
			Ticks:   ticks,
			Width:   cfg.Width,
			Height:  cfg.Height,
			Script:  script,
		},
	}
}

func TestReadExpression(t *testing.T) {
	var out bytes.Buffer
	got, err := readExpression(strings.NewReader("  sin(x) * cos(x)  \nignored\n"), &out)
	if err != nil {
		t.Fatalf("readExpression: %v", err)
	}
	if got != "sin(x) * cos(x)" {
		t.Fatalf("readExpression=%q", got)
	}
	if !strings.Contains(out.String(), "enter your function expression") {
		t.Fatalf("prompt=%q", out.String())
	}

	if got, err := readExpression(strings.NewReader("x^2"), io.Discard); err != nil || got != "x^2" {
		t.Fatalf("readExpression(no newline)=%q, %v", got, err)
	}
	if _, err := readExpression(strings.NewReader(""), io.Discard); !errors.Is(err, io.EOF) {
		t.Fatalf("readExpression(empty) err=%v, want EOF", err)
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		src    string
		op     string
		target error
	}{
		{src: "sin(", op: "parse expression", target: expr.ErrParse},
		{src: "", op: "parse expression", target: expr.ErrParse},
		{src: "y + 1", op: "bind expression", target: expr.ErrBind},
	}
	for _, tt := range tests {
		_, err := compile(tt.src)
		var fe *app.FatalError
		if !errors.As(err, &fe) || fe.Op != tt.op || !errors.Is(err, tt.target) {
			t.Fatalf("compile(%q) err=%v, want %s wrapping %v", tt.src, err, tt.op, tt.target)
		}
	}
}

func TestRun_HeadlessSnapshot(t *testing.T) {
	opts := headlessOptions("sin(x)", 2)
	opts.snapshot = filepath.Join(t.TempDir(), "plot.png")

	if err := run(opts, strings.NewReader(""), io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(opts.snapshot)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("snapshot bounds=%v, want 200x100", b)
	}
}

func TestRun_StdinAndEscape(t *testing.T) {
	opts := headlessOptions("", 0, hal.Keys(hal.KeyUp), hal.Keys(hal.KeyEscape))
	var out bytes.Buffer
	if err := run(opts, strings.NewReader("x\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Len() == 0 {
		t.Fatalf("no prompt written")
	}
}

func TestRun_FatalErrors(t *testing.T) {
	opts := headlessOptions("", 1)
	err := run(opts, strings.NewReader("2 +\n"), io.Discard)
	if !errors.Is(err, expr.ErrParse) {
		t.Fatalf("run err=%v, want ErrParse", err)
	}

	opts = headlessOptions("x", 1)
	opts.snapshot = filepath.Join(t.TempDir(), "plot.gif")
	err = run(opts, strings.NewReader(""), io.Discard)
	var fe *app.FatalError
	if !errors.As(err, &fe) || fe.Op != "write snapshot" {
		t.Fatalf("run err=%v, want FatalError(write snapshot)", err)
	}
}

func TestAsFatal(t *testing.T) {
	inner := app.Fatal("present frame", hal.ErrFrameSize)
	if got := asFatal("run window", inner); got != inner {
		t.Fatalf("asFatal rewrapped %v", got)
	}
	if asFatal("run window", nil) != nil {
		t.Fatalf("asFatal(nil) != nil")
	}
	err := asFatal("run window", errors.New("no display"))
	if got := err.Error(); got != "run window: no display" {
		t.Fatalf("asFatal=%q", got)
	}
}

func TestReportFatal(t *testing.T) {
	var buf bytes.Buffer
	code := reportFatal(&buf, app.Fatal("parse expression", expr.ErrParse))
	if code != 1 {
		t.Fatalf("exit code=%d, want 1", code)
	}
	if !strings.Contains(buf.String(), "parse expression: parse error") {
		t.Fatalf("report=%q", buf.String())
	}
}
