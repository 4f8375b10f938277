// Package cvd 派生色觉缺陷（红色盲、绿色盲、蓝色盲）模拟矩阵。
//
// 每种缺陷都把 LMS 空间中对应的锥体响应置零，再沿色彩空间白点与蓝原色
// 确定的混淆平面由其余两个响应重建。派生结果只对用于推导的色彩空间有效。
package cvd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/weaming/colorspace-go/colorspace"
	"github.com/weaming/colorspace-go/matrix"
)

var (
	// ErrDegenerateConfusion 混淆系数为 0，无法构造变换
	ErrDegenerateConfusion = errors.New("混淆系数为 0")
	// ErrUnknownDeficiency 未知的色觉缺陷类型
	ErrUnknownDeficiency = errors.New("未知的色觉缺陷类型")
)

// Deficiency 色觉缺陷类型
type Deficiency int

const (
	// Protanopia 缺失 L 锥体（红色盲）
	Protanopia Deficiency = iota
	// Deuteranopia 缺失 M 锥体（绿色盲）
	Deuteranopia
	// Tritanopia 缺失 S 锥体（蓝色盲）
	Tritanopia
)

var deficiencyNames = [...]string{
	Protanopia:   "protanopia",
	Deuteranopia: "deuteranopia",
	Tritanopia:   "tritanopia",
}

func (d Deficiency) String() string {
	if d < 0 || int(d) >= len(deficiencyNames) {
		return fmt.Sprintf("Deficiency(%d)", int(d))
	}
	return deficiencyNames[d]
}

// ParseDeficiency 解析名称，接受全名或 protan/deutan/tritan 简写
func ParseDeficiency(name string) (Deficiency, error) {
	switch strings.ToLower(name) {
	case "protanopia", "protan", "p":
		return Protanopia, nil
	case "deuteranopia", "deutan", "d":
		return Deuteranopia, nil
	case "tritanopia", "tritan", "t":
		return Tritanopia, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownDeficiency, name)
}

// xyzToLMS Hunt-Pointer-Estevez 系数
var xyzToLMS = matrix.Matrix3x3{
	0.4002, 0.7076, -0.0808,
	-0.2263, 1.1653, 0.0457,
	0.0000, 0.0000, 0.9182,
}

// ConfusionPoint 计算混淆系数 (α, β, γ)
// 即白点与蓝原色在 LMS 空间中的叉积，定义各类缺陷共享的混淆平面
func ConfusionPoint(cs colorspace.Colorspace) matrix.Vector3 {
	blueXYZ := colorspace.XyYToXYZ(cs.Primaries[2])
	wpXYZ := colorspace.XyYToXYZ(cs.WhitePoint)

	blue := matrix.Transform(xyzToLMS, blueXYZ.Vec())
	white := matrix.Transform(xyzToLMS, wpXYZ.Vec())

	lb, mb, sb := blue[0], blue[1], blue[2]
	lw, mw, sw := white[0], white[1], white[2]

	return matrix.Vector3{
		mw*sb - mb*sw,
		sw*lb - sb*lw,
		lw*mb - lb*mw,
	}
}

// MakeProtanopiaTransform 构造红色盲 LMS 变换
// α 为 0 时结果含非有限值
func MakeProtanopiaTransform(cs colorspace.Colorspace) matrix.Matrix3x3 {
	abg := ConfusionPoint(cs)
	alpha, beta, gamma := abg[0], abg[1], abg[2]

	return matrix.Matrix3x3{
		0, -beta / alpha, -gamma / alpha,
		0, 1, 0,
		0, 0, 1,
	}
}

// MakeDeuteranopiaTransform 构造绿色盲 LMS 变换
// β 为 0 时结果含非有限值
func MakeDeuteranopiaTransform(cs colorspace.Colorspace) matrix.Matrix3x3 {
	abg := ConfusionPoint(cs)
	alpha, beta, gamma := abg[0], abg[1], abg[2]

	return matrix.Matrix3x3{
		1, 0, 0,
		-alpha / beta, 0, -gamma / beta,
		0, 0, 1,
	}
}

// MakeTritanopiaTransform 构造蓝色盲 LMS 变换
// γ 为 0 时结果含非有限值
func MakeTritanopiaTransform(cs colorspace.Colorspace) matrix.Matrix3x3 {
	abg := ConfusionPoint(cs)
	alpha, beta, gamma := abg[0], abg[1], abg[2]

	return matrix.Matrix3x3{
		1, 0, 0,
		0, 1, 0,
		-alpha / gamma, -beta / gamma, 0,
	}
}

// MakeTransform 按缺陷类型构造 LMS 变换，未知类型返回单位矩阵
func MakeTransform(d Deficiency, cs colorspace.Colorspace) matrix.Matrix3x3 {
	switch d {
	case Protanopia:
		return MakeProtanopiaTransform(cs)
	case Deuteranopia:
		return MakeDeuteranopiaTransform(cs)
	case Tritanopia:
		return MakeTritanopiaTransform(cs)
	default:
		return matrix.Identity3x3()
	}
}

// MakeTransforms 按 [红色盲, 绿色盲, 蓝色盲] 顺序返回三个变换
func MakeTransforms(cs colorspace.Colorspace) [3]matrix.Matrix3x3 {
	return [3]matrix.Matrix3x3{
		MakeProtanopiaTransform(cs),
		MakeDeuteranopiaTransform(cs),
		MakeTritanopiaTransform(cs),
	}
}

// MakeTransformChecked 同 MakeTransform，但对未知类型与零混淆系数返回错误
func MakeTransformChecked(d Deficiency, cs colorspace.Colorspace) (matrix.Matrix3x3, error) {
	if d < Protanopia || d > Tritanopia {
		return matrix.Matrix3x3{}, fmt.Errorf("%w: %d", ErrUnknownDeficiency, int(d))
	}
	if err := cs.Validate(); err != nil {
		return matrix.Matrix3x3{}, fmt.Errorf("%s: %w", cs.Name, err)
	}

	abg := ConfusionPoint(cs)
	if abg[int(d)] == 0 {
		return matrix.Matrix3x3{}, fmt.Errorf("%s/%s: %w", cs.Name, d, ErrDegenerateConfusion)
	}

	m := MakeTransform(d, cs)
	if !m.IsFinite() {
		return matrix.Matrix3x3{}, fmt.Errorf("%s/%s: %w", cs.Name, d, ErrDegenerateConfusion)
	}
	return m, nil
}

// MakeSimulationMatrix 构造直接作用于线性 RGB 的模拟矩阵
// inverse(RGB→LMS) × T × (RGB→LMS)，白色与蓝原色保持不变
func MakeSimulationMatrix(d Deficiency, cs colorspace.Colorspace) matrix.Matrix3x3 {
	rgbToLMS := colorspace.MakeLMSConversion(cs, xyzToLMS)
	lmsToRGB := matrix.Inverse3x3(rgbToLMS)

	return lmsToRGB.Multiply(MakeTransform(d, cs)).Multiply(rgbToLMS)
}
