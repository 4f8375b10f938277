package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/weaming/colorspace-go/colorspace"
	"github.com/weaming/colorspace-go/config"
	"github.com/weaming/colorspace-go/cvd"
	"github.com/weaming/colorspace-go/matrix"
	"github.com/weaming/colorspace-go/output"
	"github.com/weaming/colorspace-go/processor"
)

// Version 版本号
const Version = "0.1.0"

type options struct {
	Input      string
	Output     string
	ConfigFile string
	Colorspace string
	To         string
	Deficiency string
	Print      bool
	LMS        bool
	Quality    int
	Workers    int
	Verbose    bool

	flags *pflag.FlagSet
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}

	fs := pflag.NewFlagSet("cvd-go", pflag.ContinueOnError)
	fs.StringVarP(&opts.Output, "output", "o", "", "输出图像路径 (.png, .jpg, .ppm)")
	fs.StringVar(&opts.ConfigFile, "config", "", "自定义色彩空间配置文件 (.yaml, .json, .jsonc)")
	fs.StringVar(&opts.Colorspace, "cs", "sRGB", "源色彩空间: sRGB, HDR10 或配置文件中定义的名称")
	fs.StringVar(&opts.To, "to", "", "目标色彩空间（指定时做色彩空间转换，而不是色觉缺陷模拟）")
	fs.StringVarP(&opts.Deficiency, "deficiency", "d", "protanopia", "色觉缺陷: protanopia, deuteranopia, tritanopia")
	fs.BoolVarP(&opts.Print, "print", "p", false, "打印派生矩阵")
	fs.BoolVar(&opts.LMS, "lms", false, "打印 LMS 空间的变换，而不是作用于 RGB 的模拟矩阵")
	fs.IntVar(&opts.Quality, "quality", 95, "JPEG 质量 (1-100)")
	fs.IntVar(&opts.Workers, "workers", 0, "并发数 (0 = CPU 核数)")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "详细输出")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "cvd-go version %s\n", Version)
		fmt.Fprintf(os.Stderr, "\n色彩空间转换与色觉缺陷模拟\n\n")
		fmt.Fprintf(os.Stderr, "用法: cvd-go [选项] [输入图像]\n\n")
		fmt.Fprintf(os.Stderr, "选项:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n示例:\n")
		fmt.Fprintf(os.Stderr, "  cvd-go -p --cs HDR10\n")
		fmt.Fprintf(os.Stderr, "  cvd-go -d deuteranopia -o out.png in.png\n")
		fmt.Fprintf(os.Stderr, "  cvd-go --to HDR10 -o out.ppm in.jpg\n")
		fmt.Fprintf(os.Stderr, "  cvd-go --config spaces.yaml --cs display-p3 -p\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		opts.Input = fs.Arg(0)
	}
	opts.flags = fs
	return opts, nil
}

func run(opts *options) error {
	var cfg *config.Config
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			return fmt.Errorf("加载配置失败: %w", err)
		}
		applyDefaults(opts, cfg)
	}

	src, err := cfg.Colorspace(opts.Colorspace)
	if err != nil {
		return err
	}

	if opts.Print {
		return printMatrices(os.Stdout, cfg, src, opts)
	}

	if opts.Input == "" {
		return fmt.Errorf("必须指定输入图像，或使用 -p 打印矩阵")
	}
	if opts.Output == "" {
		return fmt.Errorf("必须指定输出文件 (-o)")
	}
	if _, err := output.SupportedExt(filepath.Ext(opts.Output)); err != nil {
		return err
	}

	m, desc, err := buildMatrix(cfg, src, opts)
	if err != nil {
		return err
	}
	return convertImage(opts, m, desc)
}

// applyDefaults 命令行未显式指定的参数使用配置文件中的默认值
func applyDefaults(opts *options, cfg *config.Config) {
	if cfg.Defaults.Colorspace != "" && !opts.flags.Changed("cs") {
		opts.Colorspace = cfg.Defaults.Colorspace
	}
	if cfg.Defaults.Deficiency != "" && !opts.flags.Changed("deficiency") {
		opts.Deficiency = cfg.Defaults.Deficiency
	}
}

// buildMatrix 根据参数派生作用于像素的矩阵
func buildMatrix(cfg *config.Config, src colorspace.Colorspace, opts *options) (matrix.Matrix3x3, string, error) {
	if opts.To != "" {
		dst, err := cfg.Colorspace(opts.To)
		if err != nil {
			return matrix.Matrix3x3{}, "", err
		}
		return colorspace.MakeColorspaceConversion(src, dst), fmt.Sprintf("%s → %s", src.Name, dst.Name), nil
	}

	d, err := cvd.ParseDeficiency(opts.Deficiency)
	if err != nil {
		return matrix.Matrix3x3{}, "", err
	}
	if _, err := cvd.MakeTransformChecked(d, src); err != nil {
		return matrix.Matrix3x3{}, "", err
	}
	return cvd.MakeSimulationMatrix(d, src), fmt.Sprintf("%s (%s)", d, src.Name), nil
}

func convertImage(opts *options, m matrix.Matrix3x3, desc string) error {
	logger := processor.NewLogger(os.Stderr)

	// 步骤 1: 读取图像
	logger.Step("读取图像", filepath.Base(opts.Input))
	img, err := processor.LoadImage(opts.Input)
	if err != nil {
		return err
	}
	pixels := processor.FromImage(img)
	logger.Done(fmt.Sprintf("%dx%d", pixels.Width, pixels.Height))

	if opts.Verbose {
		logger.Info("变换: %s", desc)
		for _, line := range strings.Split(m.String(), "\n") {
			logger.Info("%s", line)
		}
	}

	// 步骤 2: 应用矩阵
	logger.Step("应用矩阵", desc)
	processed, err := processor.Process(pixels, processor.ProcessOptions{
		Matrix:    m,
		Linearize: true,
		Workers:   opts.Workers,
	})
	if err != nil {
		return err
	}
	logger.Done("完成")

	// 步骤 3: 写入输出
	logger.Step("写入", filepath.Base(opts.Output))
	if err := output.Export(processed, opts.Output, output.Options{
		JPEG: output.JPEGOptions{Quality: opts.Quality},
	}); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", opts.Output, err)
	}
	logger.Done("完成")

	logger.Total()
	return nil
}
