package model

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	helperOSS "smartvillage_backend/internals/helpers/oss"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func expectHardDelete(mock sqlmock.Sqlmock, table string) {
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "` + table + `"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func TestMediaDeleteAttemptsBothFilesIndependently(t *testing.T) {
	gdb, mock := newMockDB(t)

	remover := helperOSS.NewMockFileRemover()
	remover.FailOn["https://cdn.example/villages/x/media/a.mp4"] = errors.New("oss timeout")
	helperOSS.SetDefaultFileRemover(remover)
	t.Cleanup(func() { helperOSS.SetDefaultFileRemover(nil) })

	thumb := "https://cdn.example/villages/x/media/thumbnails/a.webp"
	m := MediaModel{
		MediaID:           uuid.New(),
		MediaVillageID:    uuid.New(),
		MediaOwnerType:    "article",
		MediaOwnerID:      uuid.New(),
		MediaFileURL:      "https://cdn.example/villages/x/media/a.mp4",
		MediaThumbnailURL: &thumb,
		MediaMimeType:     "video/mp4",
	}

	expectHardDelete(mock, "media")

	// delete row harus sukses walau hapus file pertama gagal
	err := gdb.Delete(&m).Error
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	// kedua file tetap dicoba, urutan: file utama lalu thumbnail
	assert.True(t, remover.Attempted(m.MediaFileURL))
	assert.True(t, remover.Attempted(thumb))
	assert.Equal(t, []string{m.MediaFileURL, thumb}, remover.Attempts)
	assert.Equal(t, []string{thumb}, remover.Deleted)
}

func TestMediaDeleteWithoutThumbnail(t *testing.T) {
	gdb, mock := newMockDB(t)

	remover := helperOSS.NewMockFileRemover()
	helperOSS.SetDefaultFileRemover(remover)
	t.Cleanup(func() { helperOSS.SetDefaultFileRemover(nil) })

	m := MediaModel{
		MediaID:        uuid.New(),
		MediaVillageID: uuid.New(),
		MediaOwnerType: "place",
		MediaOwnerID:   uuid.New(),
		MediaFileURL:   "https://cdn.example/villages/x/media/b.mp3",
		MediaMimeType:  "audio/mpeg",
	}

	expectHardDelete(mock, "media")
	require.NoError(t, gdb.Delete(&m).Error)
	assert.Equal(t, []string{m.MediaFileURL}, remover.Attempts)
}

func TestImageDeleteBestEffort(t *testing.T) {
	gdb, mock := newMockDB(t)

	remover := helperOSS.NewMockFileRemover()
	remover.FailOn["https://cdn.example/villages/x/gallery/c.webp"] = errors.New("403")
	helperOSS.SetDefaultFileRemover(remover)
	t.Cleanup(func() { helperOSS.SetDefaultFileRemover(nil) })

	img := ImageModel{
		ImageID:        uuid.New(),
		ImageVillageID: uuid.New(),
		ImageOwnerType: "place",
		ImageOwnerID:   uuid.New(),
		ImageFileURL:   "https://cdn.example/villages/x/gallery/c.webp",
	}

	expectHardDelete(mock, "images")
	require.NoError(t, gdb.Delete(&img).Error)
	assert.True(t, remover.Attempted(img.ImageFileURL))
	assert.Empty(t, remover.Deleted)
}
