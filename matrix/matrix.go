// Package matrix 提供色彩计算所需的 3x3 矩阵与 3 维向量运算。
//
// 所有类型都是定长数组（值语义），赋值和传参都会复制，不存在别名修改。
// 奇异矩阵求逆等退化输入不会报错，而是按 IEEE-754 产生 Inf/NaN；
// 需要显式检查时使用 Matrix3x3.Inverse。
package matrix

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular 矩阵不可逆（行列式为 0 或非有限值）
var ErrSingular = errors.New("矩阵奇异，不可逆")

// Matrix3x3 表示 3x3 矩阵（行优先存储）
type Matrix3x3 [9]float64

// Vector3 表示 3 维向量
type Vector3 [3]float64

// Multiply3x3 计算两个 3x3 矩阵相乘 a × b
// 组合变换时表示"先应用 b，再应用 a"
func Multiply3x3(a, b Matrix3x3) Matrix3x3 {
	var c Matrix3x3
	c[0] = a[0]*b[0] + a[1]*b[3] + a[2]*b[6]
	c[1] = a[0]*b[1] + a[1]*b[4] + a[2]*b[7]
	c[2] = a[0]*b[2] + a[1]*b[5] + a[2]*b[8]

	c[3] = a[3]*b[0] + a[4]*b[3] + a[5]*b[6]
	c[4] = a[3]*b[1] + a[4]*b[4] + a[5]*b[7]
	c[5] = a[3]*b[2] + a[4]*b[5] + a[5]*b[8]

	c[6] = a[6]*b[0] + a[7]*b[3] + a[8]*b[6]
	c[7] = a[6]*b[1] + a[7]*b[4] + a[8]*b[7]
	c[8] = a[6]*b[2] + a[7]*b[5] + a[8]*b[8]
	return c
}

// Inverse3x3 用伴随矩阵法计算 3x3 矩阵的逆
// 行列式为 0 时结果为 Inf/NaN，由调用方保证输入非奇异
func Inverse3x3(a Matrix3x3) Matrix3x3 {
	var ainv Matrix3x3

	A := +(a[4]*a[8] - a[5]*a[7])
	B := -(a[3]*a[8] - a[5]*a[6])
	C := +(a[3]*a[7] - a[4]*a[6])

	D := -(a[1]*a[8] - a[2]*a[7])
	E := +(a[0]*a[8] - a[2]*a[6])
	F := -(a[0]*a[7] - a[1]*a[6])

	G := +(a[1]*a[5] - a[2]*a[4])
	H := -(a[0]*a[5] - a[2]*a[3])
	I := +(a[0]*a[4] - a[1]*a[3])

	det := a[0]*A + a[1]*B + a[2]*C

	ainv[0] = A / det
	ainv[1] = D / det
	ainv[2] = G / det
	ainv[3] = B / det
	ainv[4] = E / det
	ainv[5] = H / det
	ainv[6] = C / det
	ainv[7] = F / det
	ainv[8] = I / det

	return ainv
}

// Transform 将矩阵应用到向量 (matrix * vector)
func Transform(m Matrix3x3, v Vector3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Multiply 矩阵乘法 (this * other)
func (m Matrix3x3) Multiply(other Matrix3x3) Matrix3x3 {
	return Multiply3x3(m, other)
}

// Apply 应用矩阵到向量 (matrix * vector)
func (m Matrix3x3) Apply(v Vector3) Vector3 {
	return Transform(m, v)
}

// Determinant 计算行列式
func (m Matrix3x3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse 计算矩阵的逆，奇异时返回 ErrSingular
func (m Matrix3x3) Inverse() (Matrix3x3, error) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix3x3{}, ErrSingular
	}

	inv := Inverse3x3(m)
	if !inv.IsFinite() {
		return Matrix3x3{}, ErrSingular
	}
	return inv, nil
}

// Transpose 转置矩阵
func (m Matrix3x3) Transpose() Matrix3x3 {
	return Matrix3x3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Identity3x3 返回 3x3 单位矩阵
func Identity3x3() Matrix3x3 {
	return Matrix3x3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Diagonal3x3 从向量创建对角矩阵
func Diagonal3x3(v Vector3) Matrix3x3 {
	return Matrix3x3{
		v[0], 0, 0,
		0, v[1], 0,
		0, 0, v[2],
	}
}

// Row 返回第 i 行
func (m Matrix3x3) Row(i int) Vector3 {
	return Vector3{m[i*3], m[i*3+1], m[i*3+2]}
}

// Column 返回第 j 列
func (m Matrix3x3) Column(j int) Vector3 {
	return Vector3{m[j], m[3+j], m[6+j]}
}

// Scale 缩放矩阵的所有元素
func (m Matrix3x3) Scale(s float64) Matrix3x3 {
	var result Matrix3x3
	for i := 0; i < 9; i++ {
		result[i] = m[i] * s
	}
	return result
}

// IsFinite 所有元素均为有限值
func (m Matrix3x3) IsFinite() bool {
	for _, x := range m {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// String 按三行格式输出矩阵
func (m Matrix3x3) String() string {
	return fmt.Sprintf("[%.8f, %.8f, %.8f]\n[%.8f, %.8f, %.8f]\n[%.8f, %.8f, %.8f]",
		m[0], m[1], m[2],
		m[3], m[4], m[5],
		m[6], m[7], m[8])
}

// Scale 缩放向量
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

// Add 向量加法
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// ComponentMul 逐分量乘法
func (v Vector3) ComponentMul(other Vector3) Vector3 {
	return Vector3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// Clamp 将向量各分量限制在 [min, max] 范围内
func (v Vector3) Clamp(min, max float64) Vector3 {
	result := v
	for i := range result {
		if result[i] < min {
			result[i] = min
		} else if result[i] > max {
			result[i] = max
		}
	}
	return result
}

// IsFinite 所有分量均为有限值
func (v Vector3) IsFinite() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
