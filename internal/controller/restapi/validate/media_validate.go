package validate

// MaxFileSize caps every upload path at 100 MiB.
const MaxFileSize int64 = 100 * 1024 * 1024

var AllowedContentTypes = map[string]bool{
	// images
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
	"image/heif": true,

	// videos
	"video/mp4":       true,
	"video/quicktime": true,
	"video/webm":      true,
}
