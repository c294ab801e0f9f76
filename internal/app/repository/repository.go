package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/supchaser/imagegrid/internal/app/models"
	"github.com/supchaser/imagegrid/internal/utils/errs"
	"github.com/supchaser/imagegrid/internal/utils/logger"
	"go.uber.org/zap"
)

type GalleryRepository struct {
	galleries    map[string]*models.Gallery
	loading      int
	maxGalleries int
	mu           sync.Mutex
}

func CreateGalleryRepository(maxGalleries int) *GalleryRepository {
	return &GalleryRepository{
		galleries:    make(map[string]*models.Gallery),
		maxGalleries: maxGalleries,
	}
}

func (r *GalleryRepository) CreateGallery(ctx context.Context, urls []string) (*models.Gallery, error) {
	const funcName = "GalleryRepository.CreateGallery"
	logger.Debug("attempting to create gallery",
		zap.String("function", funcName),
		zap.Int("urls_count", len(urls)),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loading >= r.maxGalleries {
		logger.Warn("maximum loading galleries limit reached",
			zap.String("function", funcName),
			zap.Int("loading_galleries", r.loading),
			zap.Int("max_galleries", r.maxGalleries),
		)
		return nil, fmt.Errorf("%w: current %d, max %d", errs.ErrMaxGalleriesReached, r.loading, r.maxGalleries)
	}

	gallery := &models.Gallery{
		ID:        uuid.NewString(),
		Status:    models.StatusLoading,
		URLs:      append([]string(nil), urls...),
		Images:    make([]*models.Artifact, 0),
		CreatedAt: time.Now(),
	}

	r.galleries[gallery.ID] = gallery
	r.loading++

	logger.Info("gallery created successfully",
		zap.String("function", funcName),
		zap.String("gallery_id", gallery.ID),
		zap.Int("loading_galleries", r.loading),
		zap.Time("created_at", gallery.CreatedAt),
	)

	return snapshot(gallery), nil
}

func (r *GalleryRepository) GetGallery(ctx context.Context, id string) (*models.Gallery, error) {
	const funcName = "GalleryRepository.GetGallery"
	logger.Debug("attempting to get gallery",
		zap.String("function", funcName),
		zap.String("gallery_id", id),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	gallery, exists := r.galleries[id]
	if !exists {
		logger.Warn("gallery not found",
			zap.String("function", funcName),
			zap.String("gallery_id", id),
		)
		return nil, errs.ErrGalleryNotFound
	}

	logger.Debug("gallery retrieved successfully",
		zap.String("function", funcName),
		zap.String("gallery_id", id),
		zap.String("status", string(gallery.Status)),
		zap.Int("images_count", len(gallery.Images)),
	)

	return snapshot(gallery), nil
}

// MarkReady publishes images and releases the gallery's loading slot. A
// gallery becomes ready once; later calls are rejected.
func (r *GalleryRepository) MarkReady(ctx context.Context, id string, images []*models.Artifact) error {
	const funcName = "GalleryRepository.MarkReady"
	logger.Debug("attempting to mark gallery ready",
		zap.String("function", funcName),
		zap.String("gallery_id", id),
		zap.Int("images_count", len(images)),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	gallery, exists := r.galleries[id]
	if !exists {
		logger.Warn("gallery not found when marking ready",
			zap.String("function", funcName),
			zap.String("gallery_id", id),
		)
		return errs.ErrGalleryNotFound
	}

	if gallery.Status == models.StatusReady {
		logger.Warn("gallery already ready",
			zap.String("function", funcName),
			zap.String("gallery_id", id),
		)
		return fmt.Errorf("gallery %s already ready", id)
	}

	gallery.Images = append(make([]*models.Artifact, 0, len(images)), images...)
	gallery.Status = models.StatusReady
	gallery.ReadyAt = time.Now()
	r.loading--

	logger.Info("gallery ready",
		zap.String("function", funcName),
		zap.String("gallery_id", id),
		zap.Int("images_count", len(gallery.Images)),
		zap.Int("urls_count", len(gallery.URLs)),
		zap.Int("remaining_loading_galleries", r.loading),
		zap.Duration("load_time", gallery.ReadyAt.Sub(gallery.CreatedAt)),
	)

	return nil
}

func (r *GalleryRepository) GetAllGalleries(ctx context.Context) ([]*models.Gallery, error) {
	const funcName = "GalleryRepository.GetAllGalleries"
	logger.Debug("getting all galleries",
		zap.String("function", funcName),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	galleries := make([]*models.Gallery, 0, len(r.galleries))
	for _, gallery := range r.galleries {
		galleries = append(galleries, snapshot(gallery))
	}
	sort.Slice(galleries, func(i, j int) bool {
		return galleries[i].CreatedAt.Before(galleries[j].CreatedAt)
	})

	logger.Info("retrieved all galleries",
		zap.String("function", funcName),
		zap.Int("count", len(galleries)),
	)

	return galleries, nil
}

func (r *GalleryRepository) GetMaxGalleries() int {
	return r.maxGalleries
}

func (r *GalleryRepository) GetLoadingGalleriesCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

// snapshot copies the slices so callers never share them with the store.
func snapshot(g *models.Gallery) *models.Gallery {
	cp := *g
	cp.URLs = append([]string(nil), g.URLs...)
	cp.Images = append([]*models.Artifact(nil), g.Images...)
	return &cp
}
