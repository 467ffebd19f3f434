// file: internals/helpers/oss/oss_client.go
package helper

import (
	"crypto/rand"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string
}

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	sts := getEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
		Prefix:     strings.Trim(prefix, "/"),
	}, nil
}

func (s *OSSService) UploadStream(ctx context.Context, key string, r io.Reader, contentType string) error {
	opts := []oss.Option{
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	return s.Bucket.PutObject(key, r, opts...)
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key)
}

// PublicURL: https://{bucket}.{endpoint-host}/{key}
func (s *OSSService) PublicURL(key string) string {
	host := s.Endpoint
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, host, strings.TrimLeft(key, "/"))
}

// KeyFromPublicURL mengubah public URL balik jadi object key.
func KeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil {
		return "", fmt.Errorf("url tidak valid: %w", err)
	}
	key := strings.TrimLeft(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("object key kosong dari URL %q", publicURL)
	}
	return key, nil
}

// DeleteByPublicURL: best-effort; error dikembalikan ke caller untuk di-log,
// bukan untuk menggagalkan operasi pemilik.
func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := KeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.DeleteObject(ctx, key)
}

func randHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

// buildObjectKey: villages/{villageID}/{slot}/{ts}-{rand}-{nama-file}.{ext}
func (s *OSSService) buildObjectKey(villageID uuid.UUID, slot, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = slugifyFile(base)
	if base == "" {
		base = "file"
	}
	name := fmt.Sprintf("%d-%s-%s%s", time.Now().UnixMilli(), randHex(4), base, ext)
	parts := []string{"villages", villageID.String(), slot, name}
	if s.Prefix != "" {
		parts = append([]string{s.Prefix}, parts...)
	}
	return path.Join(parts...)
}

func slugifyFile(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == ' ':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// WithinVillageScope memastikan sebuah public URL memang berada di bawah
// prefix milik desa tertentu (guard sebelum delete lintas-tenant).
func WithinVillageScope(villageID uuid.UUID, publicURL string) bool {
	key, err := KeyFromPublicURL(publicURL)
	if err != nil {
		return false
	}
	return strings.Contains(key, "villages/"+villageID.String()+"/")
}

func logDeleteErr(what, url string, err error) {
	log.Printf("[OSS] gagal hapus %s %s: %v (di-skip, row tetap terhapus)", what, url, err)
}
