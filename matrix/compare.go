package matrix

import "math"

// Epsilon float64 机器精度
const Epsilon = 2.220446049250313e-16

// AlmostEqual 相对误差比较: |a-b| <= max(|a|,|b|) * eps
func AlmostEqual(a, b, eps float64) bool {
	diff := math.Abs(a - b)
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= largest*eps
}

// AlmostEqual 逐元素相对误差比较
func (m Matrix3x3) AlmostEqual(other Matrix3x3, eps float64) bool {
	for i := range m {
		if !AlmostEqual(m[i], other[i], eps) {
			return false
		}
	}
	return true
}

// AlmostEqual 逐分量相对误差比较
func (v Vector3) AlmostEqual(other Vector3, eps float64) bool {
	for i := range v {
		if !AlmostEqual(v[i], other[i], eps) {
			return false
		}
	}
	return true
}

// MaxAbsDiff 两个矩阵逐元素差的最大绝对值
func MaxAbsDiff(a, b Matrix3x3) float64 {
	maxDiff := 0.0
	for i := 0; i < 9; i++ {
		diff := math.Abs(a[i] - b[i])
		if diff > maxDiff {
			maxDiff = diff
		}
	}
	return maxDiff
}
