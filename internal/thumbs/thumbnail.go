package thumbs

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// resize уменьшает изображение до заданной ширины с сохранением
// пропорций и кодирует обратно в исходный формат.
func resize(img image.Image, format string, width int) ([]byte, error) {
	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, encodeFormat(format)); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeFormat сопоставляет имя формата из image.Decode с форматом
// кодировщика. Неизвестный формат кодируем как JPEG.
func encodeFormat(format string) imaging.Format {
	switch format {
	case "png":
		return imaging.PNG
	case "gif":
		return imaging.GIF
	case "bmp":
		return imaging.BMP
	case "tiff":
		return imaging.TIFF
	default:
		return imaging.JPEG
	}
}
