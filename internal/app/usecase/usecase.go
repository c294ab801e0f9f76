package usecase

import (
	"context"
	"fmt"

	"github.com/supchaser/imagegrid/internal/app"
	"github.com/supchaser/imagegrid/internal/app/models"
	"github.com/supchaser/imagegrid/internal/utils/errs"
	"github.com/supchaser/imagegrid/internal/utils/logger"
	"github.com/supchaser/imagegrid/internal/utils/validate"
	"go.uber.org/zap"
)

type GalleryUsecase struct {
	galleryRepository app.GalleryRepository
	tracker           app.BatchTracker
	fetcher           app.ImageFetcher
	maxURLs           int
	defaultURLs       []string
}

func CreateGalleryUsecase(
	galleryRepository app.GalleryRepository,
	tracker app.BatchTracker,
	fetcher app.ImageFetcher,
	maxURLs int,
	defaultURLs []string,
) *GalleryUsecase {
	return &GalleryUsecase{
		galleryRepository: galleryRepository,
		tracker:           tracker,
		fetcher:           fetcher,
		maxURLs:           maxURLs,
		defaultURLs:       append([]string(nil), defaultURLs...),
	}
}

// CreateGallery registers a loading gallery and starts fetching all of its
// images. The gallery turns ready, with every successfully decoded image,
// only after the last fetch has settled. An empty url list falls back to the
// configured default list.
func (u *GalleryUsecase) CreateGallery(ctx context.Context, urls []string) (*models.Gallery, error) {
	const funcName = "GalleryUsecase.CreateGallery"
	gallery, urls, err := u.registerGallery(ctx, funcName, urls)
	if err != nil {
		return nil, err
	}

	galleryID := gallery.ID
	// fetches outlive the request that started them
	fetchCtx := context.WithoutCancel(ctx)
	u.tracker.FetchAll(fetchCtx, models.Requests(urls), func(images []*models.Artifact) {
		if err := u.galleryRepository.MarkReady(fetchCtx, galleryID, images); err != nil {
			logger.Error("failed to reveal gallery",
				zap.String("function", funcName),
				zap.String("gallery_id", galleryID),
				zap.Error(err),
			)
		}
	})

	return gallery, nil
}

// CreateGalleryAndWait registers a gallery and fetches its images on the
// caller's context, returning only once the gallery is ready. If ctx is done
// first the gallery is still revealed with whatever images were decoded, so
// its loading slot is released, and the context error is returned.
func (u *GalleryUsecase) CreateGalleryAndWait(ctx context.Context, urls []string) (*models.Gallery, error) {
	const funcName = "GalleryUsecase.CreateGalleryAndWait"
	gallery, urls, err := u.registerGallery(ctx, funcName, urls)
	if err != nil {
		return nil, err
	}

	images, collectErr := u.tracker.Collect(ctx, models.Requests(urls))

	if err := u.galleryRepository.MarkReady(context.WithoutCancel(ctx), gallery.ID, images); err != nil {
		logger.Error("failed to reveal gallery",
			zap.String("function", funcName),
			zap.String("gallery_id", gallery.ID),
			zap.Error(err),
		)
		return nil, err
	}

	if collectErr != nil {
		logger.Warn("gallery revealed before every image settled",
			zap.String("function", funcName),
			zap.String("gallery_id", gallery.ID),
			zap.Int("images", len(images)),
			zap.Error(collectErr),
		)
		return nil, collectErr
	}

	return u.galleryRepository.GetGallery(ctx, gallery.ID)
}

// registerGallery validates urls, falling back to the default list when empty,
// and stores a new loading gallery.
func (u *GalleryUsecase) registerGallery(ctx context.Context, funcName string, urls []string) (*models.Gallery, []string, error) {
	if len(urls) == 0 {
		urls = u.defaultURLs
	}
	logger.Debug("creating new gallery",
		zap.String("function", funcName),
		zap.Int("urls_count", len(urls)),
	)

	if err := validate.ValidateURLs(urls, u.maxURLs); err != nil {
		logger.Warn("invalid gallery urls",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, nil, err
	}

	gallery, err := u.galleryRepository.CreateGallery(ctx, urls)
	if err != nil {
		logger.Error("failed to create gallery",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, nil, err
	}

	return gallery, urls, nil
}

func (u *GalleryUsecase) GetGallery(ctx context.Context, id string) (*models.Gallery, error) {
	const funcName = "GalleryUsecase.GetGallery"
	logger.Debug("getting gallery",
		zap.String("function", funcName),
		zap.String("gallery_id", id),
	)

	gallery, err := u.galleryRepository.GetGallery(ctx, id)
	if err != nil {
		logger.Error("failed to get gallery",
			zap.String("function", funcName),
			zap.String("gallery_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return gallery, nil
}

func (u *GalleryUsecase) GetImage(ctx context.Context, id string, index int) (*models.Artifact, error) {
	const funcName = "GalleryUsecase.GetImage"
	logger.Debug("getting gallery image",
		zap.String("function", funcName),
		zap.String("gallery_id", id),
		zap.Int("index", index),
	)

	gallery, err := u.galleryRepository.GetGallery(ctx, id)
	if err != nil {
		logger.Error("failed to get gallery",
			zap.String("function", funcName),
			zap.String("gallery_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	if gallery.Status != models.StatusReady {
		return nil, fmt.Errorf("%w: %s", errs.ErrGalleryNotReady, id)
	}

	if index < 0 || index >= len(gallery.Images) {
		return nil, fmt.Errorf("%w: index %d of %d", errs.ErrImageNotFound, index, len(gallery.Images))
	}

	return gallery.Images[index], nil
}

func (u *GalleryUsecase) GetAllGalleries(ctx context.Context) ([]*models.Gallery, error) {
	const funcName = "GalleryUsecase.GetAllGalleries"
	logger.Debug("getting all galleries",
		zap.String("function", funcName),
	)

	galleries, err := u.galleryRepository.GetAllGalleries(ctx)
	if err != nil {
		logger.Error("failed to get all galleries",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	return galleries, nil
}

// FetchImage loads a single image outside of any gallery, the way a grid cell
// loads lazily. It returns when the fetch settles or ctx is done.
func (u *GalleryUsecase) FetchImage(ctx context.Context, url string) (*models.Artifact, error) {
	const funcName = "GalleryUsecase.FetchImage"
	logger.Debug("fetching single image",
		zap.String("function", funcName),
		zap.String("url", url),
	)

	if err := validate.ValidateURL(url); err != nil {
		return nil, err
	}

	settled := make(chan models.FetchResult, 1)
	u.fetcher.FetchOne(ctx, models.ResourceRequest{URL: url}, func(result models.FetchResult) {
		settled <- result
	})

	select {
	case result := <-settled:
		if !result.OK() {
			return nil, result.Err
		}
		return result.Artifact, nil
	case <-ctx.Done():
		logger.Warn("single image fetch abandoned",
			zap.String("function", funcName),
			zap.String("url", url),
			zap.Error(ctx.Err()),
		)
		return nil, ctx.Err()
	}
}

func (u *GalleryUsecase) GetMaxGalleries() int {
	return u.galleryRepository.GetMaxGalleries()
}

func (u *GalleryUsecase) GetLoadingGalleriesCount() int {
	return u.galleryRepository.GetLoadingGalleriesCount()
}
