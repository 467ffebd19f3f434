// file: internals/helpers/oss/oss_file_service.go
package helper

import (
	"context"
	"strings"
	"sync"
)

// FileRemover: kontrak minimum yang dibutuhkan cleanup hook di model
// (hapus file by public URL). *OSSService memenuhinya; test pakai mock.
type FileRemover interface {
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

var (
	removerMu      sync.RWMutex
	defaultRemover FileRemover
)

// SetDefaultFileRemover dipasang sekali di main (atau di test).
func SetDefaultFileRemover(r FileRemover) {
	removerMu.Lock()
	defer removerMu.Unlock()
	defaultRemover = r
}

func DefaultFileRemover() FileRemover {
	removerMu.RLock()
	if defaultRemover != nil {
		defer removerMu.RUnlock()
		return defaultRemover
	}
	removerMu.RUnlock()

	// lazy init dari env; gagal → nil, caller wajib toleran
	svc, err := NewOSSServiceFromEnv("")
	if err != nil {
		return nil
	}
	SetDefaultFileRemover(svc)
	return svc
}

// DeleteManyByPublicURL: hapus tiap URL secara independen; kegagalan satu
// URL tidak menghentikan sisanya. Error hanya di-log.
func DeleteManyByPublicURL(ctx context.Context, r FileRemover, urls ...string) {
	if r == nil {
		return
	}
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if err := r.DeleteByPublicURL(ctx, u); err != nil {
			logDeleteErr("file", u, err)
		}
	}
}

// MockFileRemover untuk test: catat URL yang diminta hapus, bisa dipaksa error.
type MockFileRemover struct {
	mu       sync.Mutex
	Attempts []string // semua URL yang dicoba hapus, urut
	Deleted  []string // yang sukses
	FailOn   map[string]error
}

func NewMockFileRemover() *MockFileRemover {
	return &MockFileRemover{FailOn: map[string]error{}}
}

func (m *MockFileRemover) DeleteByPublicURL(_ context.Context, publicURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Attempts = append(m.Attempts, publicURL)
	if err, ok := m.FailOn[publicURL]; ok {
		return err
	}
	m.Deleted = append(m.Deleted, publicURL)
	return nil
}

func (m *MockFileRemover) Attempted(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.Attempts {
		if a == url {
			return true
		}
	}
	return false
}
