package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/weaming/colorspace-go/colorspace"
	"github.com/weaming/colorspace-go/config"
	"github.com/weaming/colorspace-go/cvd"
	"github.com/weaming/colorspace-go/matrix"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer) *printer {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &printer{w: w, styled: styled}
}

func (p *printer) title(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	if p.styled {
		s = titleStyle.Render(s)
	}
	fmt.Fprintln(p.w, s)
}

func (p *printer) matrix(name string, m matrix.Matrix3x3) {
	p.title("%s:", name)
	fmt.Fprintln(p.w, m.String())
	if !m.IsFinite() {
		msg := "  (含非有限值：输入退化)"
		if p.styled {
			msg = warnStyle.Render(msg)
		}
		fmt.Fprintln(p.w, msg)
	}
	fmt.Fprintln(p.w)
}

// printMatrices 打印色彩空间的所有派生矩阵
func printMatrices(w io.Writer, cfg *config.Config, cs colorspace.Colorspace, opts *options) error {
	p := newPrinter(w)

	wp := colorspace.XyYToXYZ(cs.WhitePoint)
	p.title("%s", cs.Name)
	for i, label := range []string{"R", "G", "B"} {
		fmt.Fprintf(p.w, "  %s: x=%.5f y=%.5f\n", label, cs.Primaries[i].Cx, cs.Primaries[i].Cy)
	}
	fmt.Fprintf(p.w, "  白点: x=%.5f y=%.5f (XYZ %.6f, %.6f, %.6f)\n\n",
		cs.WhitePoint.Cx, cs.WhitePoint.Cy, wp.X, wp.Y, wp.Z)

	toXYZ := colorspace.MakeXYZConversion(cs)
	p.matrix(cs.Name+" → XYZ", toXYZ)
	p.matrix("XYZ → "+cs.Name, matrix.Inverse3x3(toXYZ))

	if opts.To != "" {
		dst, err := cfg.Colorspace(opts.To)
		if err != nil {
			return err
		}
		p.matrix(fmt.Sprintf("%s → %s", cs.Name, dst.Name), colorspace.MakeColorspaceConversion(cs, dst))
	}

	abg := cvd.ConfusionPoint(cs)
	fmt.Fprintf(p.w, "混淆系数: α=%.8f β=%.8f γ=%.8f\n\n", abg[0], abg[1], abg[2])

	for _, d := range []cvd.Deficiency{cvd.Protanopia, cvd.Deuteranopia, cvd.Tritanopia} {
		if opts.LMS {
			p.matrix(fmt.Sprintf("%s (LMS)", d), cvd.MakeTransform(d, cs))
		} else {
			p.matrix(fmt.Sprintf("%s (RGB)", d), cvd.MakeSimulationMatrix(d, cs))
		}
	}
	return nil
}
