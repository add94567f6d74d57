package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/staterastore/statera-api/internal/config"
	"github.com/staterastore/statera-api/internal/httperr"
)

const (
	maxImageWidth = 800
	webpQuality   = 80
)

// Uploader converts product images to webp and stores them in S3.
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewUploader(cfg *config.Config) *Uploader {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &Uploader{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: cfg.S3BaseURL,
	}
}

func (u *Uploader) UploadProductImage(ctx context.Context, productID uint, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", httperr.ErrValidation("invalid_image", "Image could not be decoded.")
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, downscale(src), &webp.Options{Quality: webpQuality}); err != nil {
		return "", httperr.ErrInternal("image_encode_failed", "Image could not be converted.")
	}

	key := fmt.Sprintf("products/%d.webp", productID)

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", httperr.ErrInternal("image_upload_failed", "Image could not be stored.")
	}

	return u.baseURL + "/" + key, nil
}

func downscale(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxImageWidth {
		return src
	}

	h := b.Dy() * maxImageWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
