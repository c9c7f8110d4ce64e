package media

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"publisher-app/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1200
	jpegQuality   = 85
	maxUploadSize = 10 << 20 // 10MB
)

// Buckets mirror the storage buckets the admin screens write to.
var allowedBuckets = map[string]bool{
	"book-covers":  true,
	"event-images": true,
}

// POST /admin/uploads/:bucket
//
// The file is renamed to a millisecond-timestamp name keeping only the
// original extension, then written under the bucket directory. The
// response carries the public URL the form stores in its image field.
func Upload(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown bucket"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}
	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large (max 10MB)"})
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)

	data := maybeDownscale(raw, ext)

	dir := filepath.Join(config.UPLOAD_DIR, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url": config.PUBLIC_BASE_URL + "/uploads/" + bucket + "/" + filename,
	})
}

// maybeDownscale resizes oversized jpeg/png covers to maxImageWidth,
// re-encoding in the same format so the extension stays truthful. Anything
// it cannot decode is stored as received.
func maybeDownscale(raw []byte, ext string) []byte {
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return raw
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return raw
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxImageWidth {
		return raw
	}

	newH := h * maxImageWidth / w
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, dst); err != nil {
			return raw
		}
	} else {
		if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return raw
		}
	}
	return buf.Bytes()
}
