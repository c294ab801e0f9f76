package models

import (
	"image"
	"time"
)

// ResourceRequest locates a remote image. Two requests are the same resource
// when their URLs are equal.
type ResourceRequest struct {
	URL string
}

// Artifact is a decoded image together with where it came from.
type Artifact struct {
	URL    string
	Format string
	Image  image.Image
	Bytes  int64
}

func (a *Artifact) Width() int {
	return a.Image.Bounds().Dx()
}

func (a *Artifact) Height() int {
	return a.Image.Bounds().Dy()
}

// FetchResult is either a success carrying Artifact or a failure carrying Err.
type FetchResult struct {
	Request  ResourceRequest
	Artifact *Artifact
	Err      error
}

func Success(req ResourceRequest, artifact *Artifact) FetchResult {
	return FetchResult{Request: req, Artifact: artifact}
}

func Failure(req ResourceRequest, err error) FetchResult {
	return FetchResult{Request: req, Err: err}
}

func (r FetchResult) OK() bool {
	return r.Err == nil && r.Artifact != nil
}

type GalleryStatus string

const (
	StatusLoading GalleryStatus = "loading"
	StatusReady   GalleryStatus = "ready"
)

type Gallery struct {
	ID        string
	Status    GalleryStatus
	URLs      []string
	Images    []*Artifact
	CreatedAt time.Time
	ReadyAt   time.Time
}

func Requests(urls []string) []ResourceRequest {
	reqs := make([]ResourceRequest, 0, len(urls))
	for _, u := range urls {
		reqs = append(reqs, ResourceRequest{URL: u})
	}
	return reqs
}

type Request struct {
	URLs []string `json:"urls"`
}

type ImageResponse struct {
	Index  int    `json:"index"`
	URL    string `json:"url"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Href   string `json:"href"`
}

type GalleryResponse struct {
	ID          string          `json:"id"`
	Status      GalleryStatus   `json:"status"`
	Loading     bool            `json:"loading"`
	URLsCount   int             `json:"urls_count"`
	ImagesCount int             `json:"images_count"`
	Images      []ImageResponse `json:"images,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	ReadyAt     *time.Time      `json:"ready_at,omitempty"`
}
