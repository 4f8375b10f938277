package processor

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"
	"sync"

	"github.com/weaming/colorspace-go/colorspace"
	"github.com/weaming/colorspace-go/matrix"
)

// ErrEmptyImage 图像为空
var ErrEmptyImage = errors.New("图像为空")

// ProcessOptions 图像处理选项
type ProcessOptions struct {
	// Matrix 作用于线性 RGB 的 3x3 矩阵
	Matrix matrix.Matrix3x3
	// Linearize 处理前去除 sRGB 传递函数，处理后重新编码
	Linearize bool
	// Workers 并发数，<= 0 时使用 CPU 核数
	Workers int
}

// ProcessedImage 处理后的图像
type ProcessedImage struct {
	Width    int
	Height   int
	Channels int
	Data     []float64 // RGB 浮点数据 [0, 1]
}

// LoadImage 解码 PNG / JPEG 文件
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开图像: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("解码图像失败: %w", err)
	}
	debug("LoadImage: %s format=%s bounds=%v", path, format, img.Bounds())
	return img, nil
}

// FromImage 将 image.Image 转换为 [0, 1] 浮点 RGB（忽略 alpha）
func FromImage(img image.Image) *ProcessedImage {
	b := img.Bounds()
	out := &ProcessedImage{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: 3,
		Data:     make([]float64, b.Dx()*b.Dy()*3),
	}

	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			rgb := colorspace.ConvertFromUint16([3]uint16{uint16(r), uint16(g), uint16(bl)})
			idx := (y*out.Width + x) * 3
			out.Data[idx] = rgb[0]
			out.Data[idx+1] = rgb[1]
			out.Data[idx+2] = rgb[2]
		}
	}
	return out
}

// Process 将矩阵应用到每个像素，按行分片并发处理
func Process(img *ProcessedImage, opts ProcessOptions) (*ProcessedImage, error) {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil, ErrEmptyImage
	}
	if len(img.Data) != img.Width*img.Height*3 {
		return nil, fmt.Errorf("数据长度 %d 与尺寸 %dx%d 不符", len(img.Data), img.Width, img.Height)
	}
	if !opts.Matrix.IsFinite() {
		return nil, fmt.Errorf("转换矩阵含非有限值: %w", matrix.ErrSingular)
	}

	out := &ProcessedImage{
		Width:    img.Width,
		Height:   img.Height,
		Channels: 3,
		Data:     make([]float64, len(img.Data)),
	}

	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > img.Height {
		numWorkers = img.Height
	}
	rowsPerWorker := img.Height / numWorkers
	debug("Process: %dx%d, %d workers", img.Width, img.Height, numWorkers)

	m := opts.Matrix
	var wg sync.WaitGroup
	for workerID := 0; workerID < numWorkers; workerID++ {
		startRow := workerID * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if workerID == numWorkers-1 {
			endRow = img.Height
		}

		wg.Add(1)
		go func(startY, endY int) {
			defer wg.Done()

			for y := startY; y < endY; y++ {
				for x := 0; x < img.Width; x++ {
					offset := (y*img.Width + x) * 3
					rgb := matrix.Vector3{img.Data[offset], img.Data[offset+1], img.Data[offset+2]}

					if opts.Linearize {
						rgb = colorspace.RemoveSRGBGamma(rgb)
					}
					rgb = m.Apply(rgb).Clamp(0, 1)
					if opts.Linearize {
						rgb = colorspace.ApplySRGBGamma(rgb)
					}

					out.Data[offset] = rgb[0]
					out.Data[offset+1] = rgb[1]
					out.Data[offset+2] = rgb[2]
				}
			}
		}(startRow, endRow)
	}
	wg.Wait()

	return out, nil
}

// At 读取 (x, y) 处的像素
func (img *ProcessedImage) At(x, y int) matrix.Vector3 {
	idx := (y*img.Width + x) * 3
	return matrix.Vector3{img.Data[idx], img.Data[idx+1], img.Data[idx+2]}
}

// ToUint16 转换为 16-bit 图像
func (img *ProcessedImage) ToUint16() []uint16 {
	result := make([]uint16, len(img.Data))
	for i := 0; i < len(img.Data); i += 3 {
		v := colorspace.ConvertToUint16(matrix.Vector3{img.Data[i], img.Data[i+1], img.Data[i+2]})
		copy(result[i:i+3], v[:])
	}
	return result
}

// ToUint8 转换为 8-bit 图像
func (img *ProcessedImage) ToUint8() []uint8 {
	result := make([]uint8, len(img.Data))
	for i := 0; i < len(img.Data); i += 3 {
		v := colorspace.ConvertToUint8(matrix.Vector3{img.Data[i], img.Data[i+1], img.Data[i+2]})
		copy(result[i:i+3], v[:])
	}
	return result
}

// ToImage 转换为 8-bit image.RGBA
func (img *ProcessedImage) ToImage() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	pix := img.ToUint8()
	for i := 0; i < img.Width*img.Height; i++ {
		rgba.Pix[i*4] = pix[i*3]
		rgba.Pix[i*4+1] = pix[i*3+1]
		rgba.Pix[i*4+2] = pix[i*3+2]
		rgba.Pix[i*4+3] = 255
	}
	return rgba
}
