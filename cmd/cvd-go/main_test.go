package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/weaming/colorspace-go/colorspace"
	"github.com/weaming/colorspace-go/config"
	"github.com/weaming/colorspace-go/cvd"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-d", "tritan", "--cs", "HDR10", "-o", "out.png", "in.png"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Deficiency != "tritan" || opts.Colorspace != "HDR10" || opts.Output != "out.png" || opts.Input != "in.png" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.Quality != 95 {
		t.Fatalf("quality = %d", opts.Quality)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &config.Config{Defaults: config.Defaults{Colorspace: "hdr10", Deficiency: "deuteranopia"}}

	opts, err := parseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	applyDefaults(opts, cfg)
	if opts.Colorspace != "hdr10" || opts.Deficiency != "deuteranopia" {
		t.Fatalf("defaults not applied: %+v", opts)
	}

	opts, err = parseFlags([]string{"--cs", "sRGB", "-d", "p"})
	if err != nil {
		t.Fatal(err)
	}
	applyDefaults(opts, cfg)
	if opts.Colorspace != "sRGB" || opts.Deficiency != "p" {
		t.Fatalf("explicit flags overridden: %+v", opts)
	}
}

func TestBuildMatrix(t *testing.T) {
	srgb := colorspace.SRGB()

	m, desc, err := buildMatrix(nil, srgb, &options{Deficiency: "deutan"})
	if err != nil {
		t.Fatal(err)
	}
	if m != cvd.MakeSimulationMatrix(cvd.Deuteranopia, srgb) {
		t.Fatal("simulation matrix mismatch")
	}
	if !strings.Contains(desc, "deuteranopia") {
		t.Fatalf("desc = %q", desc)
	}

	m, _, err = buildMatrix(nil, srgb, &options{To: "hdr10"})
	if err != nil {
		t.Fatal(err)
	}
	if m != colorspace.MakeColorspaceConversion(srgb, colorspace.HDR10()) {
		t.Fatal("conversion matrix mismatch")
	}

	if _, _, err := buildMatrix(nil, srgb, &options{Deficiency: "achromatopsia"}); !errors.Is(err, cvd.ErrUnknownDeficiency) {
		t.Fatalf("unknown deficiency err = %v", err)
	}
	if _, _, err := buildMatrix(nil, srgb, &options{To: "nope"}); !errors.Is(err, colorspace.ErrUnknownColorspace) {
		t.Fatalf("unknown target err = %v", err)
	}
}

func TestPrintMatrices(t *testing.T) {
	var buf bytes.Buffer
	if err := printMatrices(&buf, nil, colorspace.SRGB(), &options{To: "HDR10"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"sRGB → XYZ", "sRGB → HDR10", "混淆系数", "protanopia (RGB)", "tritanopia (RGB)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("non-terminal output should not be styled")
	}
}

func TestRunImage(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.ppm")

	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.Set(x, y, color.RGBA{255, 255, 255, 255})
		}
	}
	f, err := os.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	opts, err := parseFlags([]string{"-o", out, "--workers", "2", in})
	if err != nil {
		t.Fatal(err)
	}
	if err := run(opts); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "P3" || lines[1] != "3 2" || len(lines) != 3+6 {
		t.Fatalf("unexpected PPM header/size: %q", lines[:3])
	}
	// 白色在模拟后保持不变
	if lines[3] != "65535 65535 65535" {
		t.Fatalf("white pixel = %q", lines[3])
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no input", nil},
		{"no output", []string{"in.png"}},
		{"bad ext", []string{"-o", "out.bmp", "in.png"}},
		{"bad colorspace", []string{"--cs", "nope", "-p"}},
		{"missing config", []string{"--config", "/nonexistent/x.yaml", "-p"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts, err := parseFlags(c.args)
			if err != nil {
				t.Fatal(err)
			}
			if err := run(opts); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
