package app

import (
	"context"

	"github.com/supchaser/imagegrid/internal/app/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

type ImageFetcher interface {
	Fetch(ctx context.Context, req models.ResourceRequest) (*models.Artifact, error)
	FetchOne(ctx context.Context, req models.ResourceRequest, callback func(models.FetchResult))
}

type BatchTracker interface {
	FetchAll(ctx context.Context, reqs []models.ResourceRequest, completion func([]*models.Artifact))
	Collect(ctx context.Context, reqs []models.ResourceRequest) ([]*models.Artifact, error)
}

type GalleryRepository interface {
	CreateGallery(ctx context.Context, urls []string) (*models.Gallery, error)
	GetGallery(ctx context.Context, id string) (*models.Gallery, error)
	MarkReady(ctx context.Context, id string, images []*models.Artifact) error
	GetAllGalleries(ctx context.Context) ([]*models.Gallery, error)
	GetMaxGalleries() int
	GetLoadingGalleriesCount() int
}

type GalleryUsecase interface {
	CreateGallery(ctx context.Context, urls []string) (*models.Gallery, error)
	CreateGalleryAndWait(ctx context.Context, urls []string) (*models.Gallery, error)
	GetGallery(ctx context.Context, id string) (*models.Gallery, error)
	GetImage(ctx context.Context, id string, index int) (*models.Artifact, error)
	GetAllGalleries(ctx context.Context) ([]*models.Gallery, error)
	FetchImage(ctx context.Context, url string) (*models.Artifact, error)
	GetMaxGalleries() int
	GetLoadingGalleriesCount() int
}
