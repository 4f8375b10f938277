// Package output 将处理后的图像写为 PNG、JPEG 或 PPM 文件。
package output

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/weaming/colorspace-go/processor"
)

// ErrUnsupportedFormat 不支持的输出格式
var ErrUnsupportedFormat = errors.New("不支持的输出格式")

// Options 输出选项
type Options struct {
	JPEG JPEGOptions
}

// EncodePNG 将图像编码为 8-bit PNG
func EncodePNG(w io.Writer, img *processor.ProcessedImage) error {
	return png.Encode(w, img.ToImage())
}

// Encode 按扩展名选择编码器
func Encode(w io.Writer, ext string, img *processor.ProcessedImage, opts Options) error {
	if img == nil {
		return processor.ErrEmptyImage
	}

	switch strings.ToLower(ext) {
	case ".png":
		return EncodePNG(w, img)
	case ".jpg", ".jpeg":
		return EncodeJPEG(w, img, opts.JPEG)
	case ".ppm":
		return EncodePPM(w, img)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// Export 写入文件，格式由扩展名决定
func Export(img *processor.ProcessedImage, filename string, opts Options) (err error) {
	ext := filepath.Ext(filename)
	if _, err := SupportedExt(ext); err != nil {
		return err
	}

	// 创建文件
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(file, ext, img, opts)
}

// SupportedExt 检查扩展名是否受支持，返回规范化后的扩展名
func SupportedExt(ext string) (string, error) {
	ext = strings.ToLower(ext)
	switch ext {
	case ".png", ".jpg", ".jpeg", ".ppm":
		return ext, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}
