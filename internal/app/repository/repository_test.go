package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supchaser/imagegrid/internal/app/models"
	"github.com/supchaser/imagegrid/internal/utils/errs"
	"github.com/supchaser/imagegrid/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func TestCreateGallery_Success(t *testing.T) {
	repo := CreateGalleryRepository(3)
	urls := []string{"http://example.com/a.png", "http://example.com/b.png"}

	gallery, err := repo.CreateGallery(context.Background(), urls)

	assert.NoError(t, err)
	assert.NotNil(t, gallery)
	assert.NotEmpty(t, gallery.ID)
	assert.Equal(t, models.StatusLoading, gallery.Status)
	assert.Equal(t, urls, gallery.URLs)
	assert.Empty(t, gallery.Images)
	assert.WithinDuration(t, time.Now(), gallery.CreatedAt, time.Second)
	assert.Equal(t, 1, repo.GetLoadingGalleriesCount())
}

func TestCreateGallery_MaxGalleriesReached(t *testing.T) {
	maxGalleries := 2
	repo := CreateGalleryRepository(maxGalleries)

	for i := 0; i < maxGalleries; i++ {
		_, err := repo.CreateGallery(context.Background(), nil)
		assert.NoError(t, err)
	}

	gallery, err := repo.CreateGallery(context.Background(), nil)

	assert.Nil(t, gallery)
	assert.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMaxGalleriesReached)
}

func TestCreateGallery_SlotReleasedWhenReady(t *testing.T) {
	repo := CreateGalleryRepository(1)

	gallery, err := repo.CreateGallery(context.Background(), nil)
	require.NoError(t, err)

	_, err = repo.CreateGallery(context.Background(), nil)
	assert.ErrorIs(t, err, errs.ErrMaxGalleriesReached)

	require.NoError(t, repo.MarkReady(context.Background(), gallery.ID, nil))
	assert.Equal(t, 0, repo.GetLoadingGalleriesCount())

	_, err = repo.CreateGallery(context.Background(), nil)
	assert.NoError(t, err)
}

func TestGetGallery_Success(t *testing.T) {
	repo := CreateGalleryRepository(5)
	created, err := repo.CreateGallery(context.Background(), []string{"http://example.com/a.png"})
	require.NoError(t, err)

	gallery, err := repo.GetGallery(context.Background(), created.ID)

	assert.NoError(t, err)
	assert.Equal(t, created.ID, gallery.ID)
	assert.Equal(t, created.Status, gallery.Status)
}

func TestGetGallery_NotFound(t *testing.T) {
	repo := CreateGalleryRepository(5)

	gallery, err := repo.GetGallery(context.Background(), "does-not-exist")

	assert.Nil(t, gallery)
	assert.ErrorIs(t, err, errs.ErrGalleryNotFound)
}

func TestGetGallery_ReturnsCopy(t *testing.T) {
	repo := CreateGalleryRepository(5)
	created, err := repo.CreateGallery(context.Background(), []string{"http://example.com/a.png"})
	require.NoError(t, err)

	created.URLs[0] = "mutated"

	gallery, err := repo.GetGallery(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/a.png", gallery.URLs[0])
}

func TestMarkReady(t *testing.T) {
	repo := CreateGalleryRepository(5)
	created, err := repo.CreateGallery(context.Background(), []string{"a", "b"})
	require.NoError(t, err)

	images := []*models.Artifact{{URL: "a"}}
	err = repo.MarkReady(context.Background(), created.ID, images)
	require.NoError(t, err)

	gallery, err := repo.GetGallery(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReady, gallery.Status)
	assert.Len(t, gallery.Images, 1)
	assert.False(t, gallery.ReadyAt.IsZero())

	err = repo.MarkReady(context.Background(), created.ID, images)
	assert.Error(t, err)
	assert.Equal(t, 0, repo.GetLoadingGalleriesCount())
}

func TestMarkReady_NotFound(t *testing.T) {
	repo := CreateGalleryRepository(5)

	err := repo.MarkReady(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, errs.ErrGalleryNotFound)
}

func TestGetAllGalleries(t *testing.T) {
	repo := CreateGalleryRepository(5)

	galleries, err := repo.GetAllGalleries(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, galleries)

	first, err := repo.CreateGallery(context.Background(), nil)
	require.NoError(t, err)
	second, err := repo.CreateGallery(context.Background(), nil)
	require.NoError(t, err)

	galleries, err = repo.GetAllGalleries(context.Background())
	assert.NoError(t, err)
	require.Len(t, galleries, 2)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, []string{galleries[0].ID, galleries[1].ID})
}

func TestConcurrentCreateRespectsLimit(t *testing.T) {
	repo := CreateGalleryRepository(10)

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.CreateGallery(context.Background(), nil); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, created)
	assert.Equal(t, repo.GetMaxGalleries(), repo.GetLoadingGalleriesCount())
}
