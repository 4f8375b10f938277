package output

import (
	"image/jpeg"
	"io"

	"github.com/weaming/colorspace-go/processor"
)

// JPEGOptions JPEG 输出选项
type JPEGOptions struct {
	Quality int // 1-100, 默认 95
}

// EncodeJPEG 将图像编码为 JPEG
func EncodeJPEG(w io.Writer, img *processor.ProcessedImage, opts JPEGOptions) error {
	// 设置质量
	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = 95
	}

	return jpeg.Encode(w, img.ToImage(), &jpeg.Options{Quality: quality})
}
