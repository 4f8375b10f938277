package colorspace

import "math"

// SRGBGamma sRGB gamma 曲线（精确版本）
func SRGBGamma(linear float64) float64 {
	if linear <= 0.0031308 {
		return 12.92 * linear
	}
	return 1.055*math.Pow(linear, 1.0/2.4) - 0.055
}

// SRGBInverseGamma sRGB 逆 gamma 曲线
func SRGBInverseGamma(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// ApplySRGBGamma 对 RGB 向量应用 sRGB gamma 曲线
func ApplySRGBGamma(rgb Vector3) Vector3 {
	return Vector3{
		SRGBGamma(rgb[0]),
		SRGBGamma(rgb[1]),
		SRGBGamma(rgb[2]),
	}
}

// RemoveSRGBGamma 线性化 sRGB 编码的向量
func RemoveSRGBGamma(rgb Vector3) Vector3 {
	return Vector3{
		SRGBInverseGamma(rgb[0]),
		SRGBInverseGamma(rgb[1]),
		SRGBInverseGamma(rgb[2]),
	}
}

// ConvertToUint16 将浮点 RGB 转换为 16-bit 整数
func ConvertToUint16(rgb Vector3) [3]uint16 {
	return [3]uint16{
		uint16(math.Min(65535, math.Max(0, rgb[0]*65535+0.5))),
		uint16(math.Min(65535, math.Max(0, rgb[1]*65535+0.5))),
		uint16(math.Min(65535, math.Max(0, rgb[2]*65535+0.5))),
	}
}

// ConvertToUint8 将浮点 RGB 转换为 8-bit 整数
func ConvertToUint8(rgb Vector3) [3]uint8 {
	return [3]uint8{
		uint8(math.Min(255, math.Max(0, rgb[0]*255+0.5))),
		uint8(math.Min(255, math.Max(0, rgb[1]*255+0.5))),
		uint8(math.Min(255, math.Max(0, rgb[2]*255+0.5))),
	}
}

// ConvertFromUint16 将 16-bit 整数转换为浮点 RGB
func ConvertFromUint16(rgb [3]uint16) Vector3 {
	return Vector3{
		float64(rgb[0]) / 65535.0,
		float64(rgb[1]) / 65535.0,
		float64(rgb[2]) / 65535.0,
	}
}

// ConvertFromUint8 将 8-bit 整数转换为浮点 RGB
func ConvertFromUint8(rgb [3]uint8) Vector3 {
	return Vector3{
		float64(rgb[0]) / 255.0,
		float64(rgb[1]) / 255.0,
		float64(rgb[2]) / 255.0,
	}
}
