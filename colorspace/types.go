package colorspace

import "github.com/weaming/colorspace-go/matrix"

// Matrix3x3 与 matrix 包共用同一类型
type Matrix3x3 = matrix.Matrix3x3

// Vector3 与 matrix 包共用同一类型
type Vector3 = matrix.Vector3

// RGB 线性 RGB 三元组
type RGB struct {
	R, G, B float64
}

// XyY CIE xyY 三元组：Cx, Cy 为色度坐标，Y 为亮度
type XyY struct {
	Cx, Cy, Y float64
}

// XYZ CIE XYZ 三刺激值
type XYZ struct {
	X, Y, Z float64
}

// Colorspace 由三个原色（依次为 R、G、B）和一个白点定义的线性 RGB 色彩空间
// 原色顺序决定派生矩阵的列顺序
type Colorspace struct {
	Name       string
	Primaries  [3]XyY
	WhitePoint XyY
}

// Vec 取出底层向量
func (c RGB) Vec() Vector3 { return Vector3{c.R, c.G, c.B} }

// Vec 取出底层向量
func (c XyY) Vec() Vector3 { return Vector3{c.Cx, c.Cy, c.Y} }

// Vec 取出底层向量
func (c XYZ) Vec() Vector3 { return Vector3{c.X, c.Y, c.Z} }

// RGBFromVector 将向量标记为 RGB
func RGBFromVector(v Vector3) RGB { return RGB{v[0], v[1], v[2]} }

// XyYFromVector 将向量标记为 xyY
func XyYFromVector(v Vector3) XyY { return XyY{v[0], v[1], v[2]} }

// XYZFromVector 将向量标记为 XYZ
func XYZFromVector(v Vector3) XYZ { return XYZ{v[0], v[1], v[2]} }
