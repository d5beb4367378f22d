// Package storage хранит картинки позиций каталога.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp" // декодер WEBP для image.Decode
)

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrInvalidImage    = errors.New("invalid image")
	ErrEmptyImage      = errors.New("empty image")
)

// Upload — подготовленный к загрузке файл.
type Upload struct {
	Key         string // имя объекта в хранилище, uuid + расширение
	Name        string // исходное имя файла с исправленным расширением
	ContentType string
	Content     []byte
}

// Stored — результат загрузки: публичная ссылка и ключ для отката.
// URL пустой, если хранилище выдаёт только временные ссылки (см. URLSigner).
type Stored struct {
	URL string
	Key string
}

// ImageStore — хранилище картинок. Remove нужен только для отката загрузки,
// если позицию каталога создать не удалось.
type ImageStore interface {
	Put(ctx context.Context, up Upload) (Stored, error)
	Remove(ctx context.Context, key string) error
}

// URLSigner выдаёт ссылку на объект по ключу. Нужен хранилищам с подписанными
// ссылками: в базе лежит только ключ, ссылка подписывается на каждое чтение.
type URLSigner interface {
	SignURL(ctx context.Context, key string) (string, error)
}

var extByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// PrepareImage проверяет тип по содержимому, перекодирует картинку (это убирает EXIF)
// и подбирает расширение под итоговый тип. WEBP перекодируется в PNG.
func PrepareImage(name string, content []byte) (Upload, error) {
	if len(content) == 0 {
		return Upload{}, ErrEmptyImage
	}
	ct := http.DetectContentType(content)
	if _, ok := extByType[ct]; !ok {
		return Upload{}, fmt.Errorf("%w: %s", ErrUnsupportedType, ct)
	}

	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	buf := new(bytes.Buffer)
	switch ct {
	case "image/jpeg":
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: 90})
	case "image/gif":
		err = gif.Encode(buf, img, nil)
	case "image/png":
		err = png.Encode(buf, img)
	case "image/webp":
		err = png.Encode(buf, img)
		ct = "image/png"
	}
	if err != nil {
		return Upload{}, fmt.Errorf("re-encode image: %w", err)
	}

	ext := extByType[ct]
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "image"
	}
	return Upload{
		Key:         uuid.NewString() + ext,
		Name:        base + ext,
		ContentType: ct,
		Content:     buf.Bytes(),
	}, nil
}
