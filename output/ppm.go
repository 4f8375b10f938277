package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/weaming/colorspace-go/processor"
)

// EncodePPM 编码为 P3 (ASCII, 16-bit) PPM，便于逐像素对比
func EncodePPM(w io.Writer, img *processor.ProcessedImage) error {
	bw := bufio.NewWriter(w)

	// 写入 PPM 头部
	fmt.Fprintf(bw, "P3\n%d %d\n65535\n", img.Width, img.Height)

	// 写入像素数据（float64 [0,1] -> uint16 [0,65535]）
	pix := img.ToUint16()
	for i := 0; i < len(pix); i += 3 {
		fmt.Fprintf(bw, "%d %d %d\n", pix[i], pix[i+1], pix[i+2])
	}

	return bw.Flush()
}
