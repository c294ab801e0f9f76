package delivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/supchaser/imagegrid/internal/app"
	"github.com/supchaser/imagegrid/internal/app/models"
	"github.com/supchaser/imagegrid/internal/utils/errs"
	"github.com/supchaser/imagegrid/internal/utils/logger"
	"github.com/supchaser/imagegrid/internal/utils/responses"
	"go.uber.org/zap"
)

type GalleryDelivery struct {
	galleryUsecase app.GalleryUsecase
}

func CreateGalleryDelivery(galleryUsecase app.GalleryUsecase) *GalleryDelivery {
	return &GalleryDelivery{
		galleryUsecase: galleryUsecase,
	}
}

func (d *GalleryDelivery) CreateGallery(w http.ResponseWriter, r *http.Request) {
	const funcName = "GalleryDelivery.CreateGallery"
	logger.Debug("creating new gallery", zap.String("function", funcName))

	req := models.Request{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// ?wait=true holds the request open until the gallery is ready
	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
	create, status := d.galleryUsecase.CreateGallery, http.StatusAccepted
	if wait {
		create, status = d.galleryUsecase.CreateGalleryAndWait, http.StatusCreated
	}

	gallery, err := create(r.Context(), req.URLs)
	if err != nil {
		if errors.Is(err, errs.ErrMaxGalleriesReached) {
			responses.DoJSONResponse(w, map[string]any{
				"error":       err.Error(),
				"max_loading": d.galleryUsecase.GetMaxGalleries(),
				"loading_now": d.galleryUsecase.GetLoadingGalleriesCount(),
				"suggestion":  "Try again later or wait for current galleries to finish loading",
			}, http.StatusTooManyRequests)
			return
		}
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, toGalleryResponse(gallery), status)
}

func (d *GalleryDelivery) GetGallery(w http.ResponseWriter, r *http.Request) {
	const funcName = "GalleryDelivery.GetGallery"
	logger.Debug("getting gallery",
		zap.String("function", funcName),
	)

	id := mux.Vars(r)["id"]
	gallery, err := d.galleryUsecase.GetGallery(r.Context(), id)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, toGalleryResponse(gallery), http.StatusOK)
}

func (d *GalleryDelivery) GetImage(w http.ResponseWriter, r *http.Request) {
	const funcName = "GalleryDelivery.GetImage"
	logger.Debug("getting gallery image",
		zap.String("function", funcName),
	)

	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid image index")
		return
	}

	artifact, err := d.galleryUsecase.GetImage(r.Context(), vars["id"], index)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoImageResponse(w, artifact.Image)
}

func (d *GalleryDelivery) FetchImage(w http.ResponseWriter, r *http.Request) {
	const funcName = "GalleryDelivery.FetchImage"
	logger.Debug("fetching single image",
		zap.String("function", funcName),
	)

	url := r.URL.Query().Get("url")
	if url == "" {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "missing url parameter")
		return
	}

	artifact, err := d.galleryUsecase.FetchImage(r.Context(), url)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	logger.Info("single image served",
		zap.String("function", funcName),
		zap.String("url", url),
		zap.String("format", artifact.Format),
	)

	responses.DoImageResponse(w, artifact.Image)
}

func (d *GalleryDelivery) GetAllGalleries(w http.ResponseWriter, r *http.Request) {
	const funcName = "GalleryDelivery.GetAllGalleries"
	logger.Debug("getting all galleries",
		zap.String("function", funcName),
	)

	galleries, err := d.galleryUsecase.GetAllGalleries(r.Context())
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	if len(galleries) == 0 {
		responses.DoJSONResponse(w, map[string]any{
			"message":    "No galleries found",
			"suggestion": "Create a new gallery with POST /api/v1/galleries",
			"count":      0,
			"galleries":  []any{},
		}, http.StatusOK)
		return
	}

	response := make([]models.GalleryResponse, 0, len(galleries))
	for _, gallery := range galleries {
		summary := toGalleryResponse(gallery)
		summary.Images = nil
		response = append(response, summary)
	}

	responses.DoJSONResponse(w, map[string]any{
		"count":     len(response),
		"galleries": response,
	}, http.StatusOK)
}

// toGalleryResponse exposes images only once the whole gallery is ready.
func toGalleryResponse(gallery *models.Gallery) models.GalleryResponse {
	response := models.GalleryResponse{
		ID:        gallery.ID,
		Status:    gallery.Status,
		Loading:   gallery.Status != models.StatusReady,
		URLsCount: len(gallery.URLs),
		CreatedAt: gallery.CreatedAt,
	}

	if gallery.Status != models.StatusReady {
		return response
	}

	readyAt := gallery.ReadyAt
	if !readyAt.IsZero() {
		response.ReadyAt = &readyAt
	}

	response.ImagesCount = len(gallery.Images)
	response.Images = make([]models.ImageResponse, 0, len(gallery.Images))
	for i, img := range gallery.Images {
		item := models.ImageResponse{
			Index:  i,
			URL:    img.URL,
			Format: img.Format,
			Href:   fmt.Sprintf("/api/v1/galleries/%s/images/%d", gallery.ID, i),
		}
		if img.Image != nil {
			item.Width = img.Width()
			item.Height = img.Height()
		}
		response.Images = append(response.Images, item)
	}

	return response
}
