package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/weaming/colorspace-go/colorspace"
	"github.com/weaming/colorspace-go/cvd"
	"github.com/weaming/colorspace-go/matrix"
)

// reference 单精度参考实现给出的矩阵
type reference struct {
	name string
	got  matrix.Matrix3x3
	want matrix.Matrix3x3
}

func references() []reference {
	srgb := colorspace.SRGB()
	hdr10 := colorspace.HDR10()
	srgbCVD := cvd.MakeTransforms(srgb)
	hdrCVD := cvd.MakeTransforms(hdr10)

	return []reference{
		{"sRGB → XYZ", colorspace.MakeXYZConversion(srgb), matrix.Matrix3x3{
			0.412386447, 0.35759151, 0.180450544,
			0.212636769, 0.71518302, 0.072180212,
			0.019330615, 0.11919712, 0.950372815,
		}},
		{"HDR10 → XYZ", colorspace.MakeXYZConversion(hdr10), matrix.Matrix3x3{
			0.636953533, 0.144619182, 0.168855861,
			0.262698352, 0.678008735, 0.0592928976,
			0.0, 0.0280731283, 1.06082726,
		}},
		{"sRGB → HDR10", colorspace.MakeColorspaceConversion(srgb, hdr10), matrix.Matrix3x3{
			0.627401710, 0.32929197, 0.0433061272,
			0.0690954849, 0.919544339, 0.0113602262,
			0.0163937043, 0.0880281329, 0.895578384,
		}},
		{"sRGB protanopia", srgbCVD[cvd.Protanopia], matrix.Matrix3x3{
			0, 1.05114746, -0.0511574671,
			0, 1, 0,
			0, 0, 1,
		}},
		{"sRGB deuteranopia", srgbCVD[cvd.Deuteranopia], matrix.Matrix3x3{
			1, 0, 0,
			0.951341331, 0, 0.0486682132,
			0, 0, 1,
		}},
		{"sRGB tritanopia", srgbCVD[cvd.Tritanopia], matrix.Matrix3x3{
			1, 0, 0,
			0, 1, 0,
			-19.5474892, 20.5472927, 0,
		}},
		{"HDR10 tritanopia", hdrCVD[cvd.Tritanopia], matrix.Matrix3x3{
			1, 0, 0,
			0, 1, 0,
			-16.1078014, 17.1076107, 0,
		}},
	}
}

func main() {
	tolerance := pflag.Float64("tolerance", 1e-4, "允许的最大绝对误差")
	verbose := pflag.BoolP("verbose", "v", false, "打印完整矩阵")
	pflag.Parse()

	fmt.Println("=== 派生矩阵与单精度参考值对比 ===")
	fmt.Println()

	failed := 0
	for _, ref := range references() {
		diff := matrix.MaxAbsDiff(ref.got, ref.want)
		status := "✓"
		if !(diff <= *tolerance) {
			status = "✗"
			failed++
		}
		fmt.Printf("%s %-20s 最大误差 %.3e\n", status, ref.name, diff)

		if *verbose || status == "✗" {
			fmt.Println("  计算值:")
			fmt.Println(ref.got.String())
			fmt.Println("  参考值:")
			fmt.Println(ref.want.String())
			fmt.Println()
		}
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d 个矩阵超出容差 %.1e\n", failed, *tolerance)
		os.Exit(1)
	}
	fmt.Println("全部一致")
}
