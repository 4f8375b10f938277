package colorspace

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// 标准色彩空间定义
// 以下数据均为静态初始化的只读值，通过函数返回副本对外暴露

// ErrUnknownColorspace 未知的色彩空间名称
var ErrUnknownColorspace = errors.New("未知的色彩空间")

// D65 / D50 白点 (CIE 标准光源)
var (
	whitePointD50 = XyY{0.34567, 0.35850, 1.0}
	whitePointD65 = XyY{0.31271, 0.32902, 1.0}
)

// ITU-R BT.709 / BT.2020 原色
var (
	primariesBT709 = [3]XyY{
		{0.640, 0.330, 0.2126},
		{0.300, 0.600, 0.7152},
		{0.150, 0.060, 0.0722},
	}
	primariesBT2020 = [3]XyY{
		{0.708, 0.292, 0.2627},
		{0.170, 0.797, 0.6780},
		{0.131, 0.046, 0.0593},
	}
)

// LMS 锥体基本函数 (XYZ → LMS)
var (
	fundamentalsSmithPokorny = Matrix3x3{
		0.15514, 0.54312, -0.03286,
		-0.15514, 0.45684, 0.03286,
		0.00000, 0.00000, 0.00801,
	}
	fundamentalsHPED65 = Matrix3x3{
		0.40020, 0.70760, -0.08080,
		-0.22630, 1.16530, 0.04570,
		0.00000, 0.00000, 0.91820,
	}
	fundamentalsStockmanSharpe = Matrix3x3{
		0.21058, 0.85510, -0.03970,
		-0.41708, 1.17726, 0.07863,
		0.00000, 0.00000, 0.51684,
	}
)

// WhitePointD50 返回 D50 白点
func WhitePointD50() XyY { return whitePointD50 }

// WhitePointD65 返回 D65 白点
func WhitePointD65() XyY { return whitePointD65 }

// PrimariesBT709 返回 BT.709 原色
func PrimariesBT709() [3]XyY { return primariesBT709 }

// PrimariesBT2020 返回 BT.2020 原色
func PrimariesBT2020() [3]XyY { return primariesBT2020 }

// SRGB BT.709 原色 + D65
func SRGB() Colorspace {
	return Colorspace{Name: "sRGB", Primaries: primariesBT709, WhitePoint: whitePointD65}
}

// HDR10 BT.2020 原色 + D65
func HDR10() Colorspace {
	return Colorspace{Name: "HDR10", Primaries: primariesBT2020, WhitePoint: whitePointD65}
}

// FundamentalsSmithPokorny Smith-Pokorny 锥体基本函数
func FundamentalsSmithPokorny() Matrix3x3 { return fundamentalsSmithPokorny }

// FundamentalsHPED65 Hunt-Pointer-Estevez (D65 归一化)
func FundamentalsHPED65() Matrix3x3 { return fundamentalsHPED65 }

// FundamentalsStockmanSharpe Stockman-Sharpe 锥体基本函数
func FundamentalsStockmanSharpe() Matrix3x3 { return fundamentalsStockmanSharpe }

// YCbCrBT601 RGB → YCbCr (BT.601, 全范围)
func YCbCrBT601() Matrix3x3 {
	return Matrix3x3{
		0.299, 0.587, 0.114,
		-0.168736, -0.331264, 0.5,
		0.5, -0.418688, -0.081312,
	}
}

// YCgCo RGB → YCgCo
func YCgCo() Matrix3x3 {
	return Matrix3x3{
		0.25, 0.5, 0.25,
		-0.25, 0.5, -0.25,
		0.5, 0, -0.5,
	}
}

var builtin = map[string]func() Colorspace{
	"srgb":    SRGB,
	"bt709":   SRGB,
	"hdr10":   HDR10,
	"bt2020":  HDR10,
	"rec2020": HDR10,
}

// Lookup 按名称（不区分大小写）查找内置色彩空间
func Lookup(name string) (Colorspace, error) {
	f, ok := builtin[strings.ToLower(name)]
	if !ok {
		return Colorspace{}, fmt.Errorf("%w: %s", ErrUnknownColorspace, name)
	}
	return f(), nil
}

// LookupWhitePoint 按名称查找内置白点
func LookupWhitePoint(name string) (XyY, bool) {
	switch strings.ToUpper(name) {
	case "D50":
		return whitePointD50, true
	case "D65":
		return whitePointD65, true
	}
	return XyY{}, false
}

// Names 返回所有内置色彩空间名称（已排序）
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
