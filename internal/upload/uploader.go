package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jsaerys/boodfood/internal/apierror"
)

// extensionesPermitidas is the image extension allow-list for menu uploads.
var extensionesPermitidas = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Uploader stores an uploaded file and returns its public URL path.
type Uploader interface {
	Guardar(file *multipart.FileHeader) (string, error)
}

// LocalUploader writes uploads to a directory on local disk.
type LocalUploader struct {
	Dir     string
	BaseURL string
	now     func() time.Time
}

func NewLocalUploader(dir, baseURL string) *LocalUploader {
	return &LocalUploader{Dir: dir, BaseURL: baseURL, now: time.Now}
}

func (u *LocalUploader) Guardar(file *multipart.FileHeader) (string, error) {
	nombre := SanitizarNombre(file.Filename)
	ext := strings.ToLower(filepath.Ext(nombre))
	if !extensionesPermitidas[ext] {
		return "", apierror.Validation("Tipo de archivo no permitido")
	}

	// A timestamp prefix keeps repeated uploads of the same filename from
	// clobbering each other.
	final := fmt.Sprintf("%s_%s", u.now().Format("20060102_150405"), nombre)

	if err := os.MkdirAll(u.Dir, 0o755); err != nil {
		return "", apierror.Internal(err)
	}

	src, err := file.Open()
	if err != nil {
		return "", apierror.Internal(err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(u.Dir, final))
	if err != nil {
		return "", apierror.Internal(err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apierror.Internal(err)
	}

	return u.BaseURL + "/" + final, nil
}

// SanitizarNombre strips any path components and reduces the filename to a
// safe character set.
func SanitizarNombre(nombre string) string {
	nombre = filepath.Base(nombre)
	var b strings.Builder
	for _, r := range nombre {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
