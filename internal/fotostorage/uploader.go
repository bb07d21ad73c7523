// Package fotostorage uploads protocolo photos to an S3-compatible object
// store and hands back durable public URLs. Uploads never overwrite: the
// object key embeds the upload instant, and writes ask the store to reject
// duplicates.
package fotostorage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"

	"github.com/logifrete/protocolos/internal/client/models"
	"github.com/logifrete/protocolos/internal/common"
	"github.com/logifrete/protocolos/internal/imagex"
	"github.com/logifrete/protocolos/internal/logging"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
)

// Config holds the object-store connection settings.
type Config struct {
	Bucket       string
	Region       string
	BaseEndpoint string // e.g. "http://127.0.0.1:9000/" for MinIO
	AccessKey    string
	SecretKey    string
}

// Uploader is the photo upload bridge.
type Uploader struct {
	cfg Config
	log logging.Logger
	now func() time.Time
}

func NewUploader(cfg Config, log logging.Logger) *Uploader {
	return &Uploader{cfg: cfg, log: log, now: time.Now}
}

func (u *Uploader) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(u.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.cfg.AccessKey,
			u.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(u.cfg.BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

// extensionFromMIME maps a MIME type to a file extension, defaulting to jpg.
func extensionFromMIME(mime string) string {
	_, sub, ok := strings.Cut(mime, "/")
	if !ok || sub == "" {
		return "jpg"
	}
	return sub
}

// ObjectKey builds the storage path for one photo:
// {numero}/{tipo}_{epochMillis}.{ext}. The millisecond stamp keeps retries
// from colliding with earlier uploads of the same record and kind.
func ObjectKey(numero string, tipo models.TipoFoto, at time.Time, mime string) string {
	return fmt.Sprintf("%s/%s_%d.%s", numero, tipo, at.UnixMilli(), extensionFromMIME(mime))
}

// PublicURL returns the durable URL for an uploaded object.
func (u *Uploader) PublicURL(key string) string {
	return strings.TrimSuffix(u.cfg.BaseEndpoint, "/") + "/" + u.cfg.Bucket + "/" + key
}

// UploadFoto uploads one base64-encoded photo and returns its public URL.
// The caller decides whether a failed upload blocks the submission; the
// batch path simply drops failures.
func (u *Uploader) UploadFoto(ctx context.Context, dataURI string, numero string, tipo models.TipoFoto) (string, error) {
	data, mime, err := imagex.ParseDataURI(dataURI)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUpload, err)
	}

	client, err := u.client(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUpload, err)
	}

	key := ObjectKey(numero, tipo, u.now(), mime)

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.cfg.Bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(mime),
		CacheControl: aws.String("max-age=3600"),
		IfNoneMatch:  aws.String("*"),
	})
	if err != nil {
		u.log.Error(ctx, "photo upload failed", "numero", numero, "tipo", tipo, "error", err)
		return "", fmt.Errorf("%w: %v", common.ErrUpload, err)
	}

	return u.PublicURL(key), nil
}

// UploadAll uploads every present photo concurrently and returns the kinds
// that succeeded, each mapped to its public URL. Failed uploads are logged
// and omitted; the result is a partial set, never an error.
func (u *Uploader) UploadAll(ctx context.Context, fotos models.FotosProtocolo, numero string) models.FotosProtocolo {
	var (
		mu     sync.Mutex
		result models.FotosProtocolo
	)

	g, ctx := errgroup.WithContext(ctx)
	for tipo, uri := range fotos.Present() {
		g.Go(func() error {
			url, err := u.UploadFoto(ctx, uri, numero, tipo)
			if err != nil {
				// already logged in UploadFoto; partial result semantics
				return nil
			}
			mu.Lock()
			result.Set(tipo, url)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return result
}
