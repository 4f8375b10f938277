package colorspace

import (
	"errors"
	"fmt"

	"github.com/weaming/colorspace-go/matrix"
)

// ErrDegenerateChromaticity 色度坐标 y 为 0，无法换算到 XYZ
var ErrDegenerateChromaticity = errors.New("色度坐标 y 为 0")

// XyYToXYZ 将 xyY 转换为 XYZ
// X = x·Y/y, Z = (1-x-y)·Y/y；y 为 0 时 X、Z 为非有限值
func XyYToXYZ(c XyY) XYZ {
	return XYZ{
		X: (c.Cx * c.Y) / c.Cy,
		Y: c.Y,
		Z: (1.0 - c.Cx - c.Cy) * c.Y / c.Cy,
	}
}

// XyYToXYZChecked 同 XyYToXYZ，y 为 0 时返回 ErrDegenerateChromaticity
func XyYToXYZChecked(c XyY) (XYZ, error) {
	if c.Cy == 0 {
		return XYZ{}, ErrDegenerateChromaticity
	}
	return XyYToXYZ(c), nil
}

// XYZToXyY 将 XYZ 投影为色度坐标，X+Y+Z=0 时色度取 (0, 0)
func XYZToXyY(c XYZ) XyY {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return XyY{0, 0, c.Y}
	}
	return XyY{c.X / sum, c.Y / sum, c.Y}
}

// MakeXYZConversion 构造 RGB → XYZ 转换矩阵
// 参考: http://www.brucelindbloom.com/index.html?Eqn_RGB_XYZ_Matrix.html
func MakeXYZConversion(cs Colorspace) Matrix3x3 {
	m := primaryMatrix(cs)

	wp := XyYToXYZ(cs.WhitePoint)
	s := matrix.Transform(matrix.Inverse3x3(m), wp.Vec())

	// 按 S 缩放各列
	return m.Multiply(matrix.Diagonal3x3(s))
}

// MakeColorspaceConversion 构造 from → to 的 RGB 转换矩阵，以 XYZ 为中间空间
// 结果为 inverse(to→XYZ) × (from→XYZ)
func MakeColorspaceConversion(from, to Colorspace) Matrix3x3 {
	fromToXYZ := MakeXYZConversion(from)
	toToXYZ := MakeXYZConversion(to)

	return matrix.Multiply3x3(matrix.Inverse3x3(toToXYZ), fromToXYZ)
}

// MakeLMSConversion 构造 RGB → LMS 矩阵: xyzToLMS × (RGB→XYZ)
func MakeLMSConversion(cs Colorspace, xyzToLMS Matrix3x3) Matrix3x3 {
	return matrix.Multiply3x3(xyzToLMS, MakeXYZConversion(cs))
}

// Validate 检查色彩空间能否派生出有限的转换矩阵
func (cs Colorspace) Validate() error {
	for i, p := range cs.Primaries {
		if p.Cy == 0 {
			return fmt.Errorf("原色 %d: %w", i, ErrDegenerateChromaticity)
		}
	}
	if cs.WhitePoint.Cy == 0 {
		return fmt.Errorf("白点: %w", ErrDegenerateChromaticity)
	}

	if _, err := primaryMatrix(cs).Inverse(); err != nil {
		return fmt.Errorf("原色共线: %w", err)
	}
	if !MakeXYZConversion(cs).IsFinite() {
		return fmt.Errorf("转换矩阵含非有限值: %w", matrix.ErrSingular)
	}
	return nil
}

// primaryMatrix 每个原色在 Y=1 时的 XYZ 方向作为一列
func primaryMatrix(cs Colorspace) Matrix3x3 {
	var m Matrix3x3
	for j, p := range cs.Primaries {
		m[j] = p.Cx / p.Cy
		m[3+j] = 1.0
		m[6+j] = (1.0 - p.Cx - p.Cy) / p.Cy
	}
	return m
}
