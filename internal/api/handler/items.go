package handler

import (
	"encoding/json"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sellkit/listing-assistant-api/infrastructure/storage"
	"github.com/sellkit/listing-assistant-api/internal/config"
	"github.com/sellkit/listing-assistant-api/internal/domain"
	"github.com/sellkit/listing-assistant-api/internal/usecases/analyzing"
	"github.com/sellkit/listing-assistant-api/internal/usecases/pricing"
	"github.com/sellkit/listing-assistant-api/internal/usecases/selecting"
	"github.com/sellkit/listing-assistant-api/pkg/apiErrors"
)

const maxUploadBytes = 32 << 20 // 32 MiB across all files

// UploadStore is the slice of the storage layer the upload handler needs.
type UploadStore interface {
	SaveUpload(fileHeader *multipart.FileHeader) (string, string, error)
}

type AnalyzeItemResponse struct {
	Analysis     *domain.ItemAnalysis               `json:"analysis"`
	Pricing      *domain.PricingResult              `json:"pricing,omitempty"`
	Copy         *domain.ListingCopy                `json:"copy,omitempty"`
	Marketplaces []domain.MarketplaceRecommendation `json:"marketplaces,omitempty"`
	ImagePaths   []string                           `json:"image_paths"`
}

// AnalyzeItem is the photos-in, draft-material-out endpoint: it stores the
// uploads, identifies the item, prices it, and writes listing copy.
func AnalyzeItem(
	analyzer analyzing.Analyzer,
	pricer pricing.Pricer,
	store UploadStore,
	cfg *config.Config,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "expected multipart form with images", nil)
			return
		}

		files := r.MultipartForm.File["images"]
		if len(files) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "at least one image is required", nil)
			return
		}
		if len(files) > cfg.Storage.MaxUploadFiles {
			apiErrors.WriteError(w, apiErrors.ErrTooManyFiles, "too many images", map[string]any{
				"max": cfg.Storage.MaxUploadFiles,
			})
			return
		}

		condition := r.FormValue("condition")
		if condition == "" {
			condition = domain.ConditionGood
		}

		imagePaths := make([]string, 0, len(files))
		for _, fileHeader := range files {
			path, _, err := store.SaveUpload(fileHeader)
			if err != nil {
				if errors.Is(err, storage.ErrUnsupportedImageType) {
					apiErrors.WriteError(w, apiErrors.ErrUnsupportedFileType, "unsupported image type", map[string]any{
						"filename": fileHeader.Filename,
					})
					return
				}
				logrus.WithError(err).Error("failed to store upload")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to store upload", nil)
				return
			}
			imagePaths = append(imagePaths, path)
		}

		analysis, err := analyzer.AnalyzeItem(r.Context(), imagePaths)
		if err != nil {
			handleAnalyzeError(w, err)
			return
		}

		response := AnalyzeItemResponse{
			Analysis:   analysis,
			ImagePaths: imagePaths,
		}

		// Pricing and copy are best-effort here: an unpriceable item still
		// returns its analysis so the user can draft a listing manually.
		pricingResult, err := pricer.EstimateForItem(r.Context(), analysis.ItemName, condition)
		if err != nil {
			logrus.WithError(err).WithField("item_name", analysis.ItemName).Warn("pricing during analysis failed")
			response.Marketplaces = selecting.Recommend(analysis.Category, 0, 0)
		} else {
			response.Pricing = pricingResult
			response.Marketplaces = selecting.Recommend(
				analysis.Category,
				pricingResult.Recommendation.MedianPrice,
				pricingResult.Recommendation.SampleSize,
			)

			listingCopy, copyErr := analyzer.GenerateCopy(r.Context(), analysis, condition, pricingResult.Recommendation.MedianPrice)
			if copyErr != nil {
				logrus.WithError(copyErr).Warn("copy generation during analysis failed")
			} else {
				response.Copy = listingCopy
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

func handleAnalyzeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analyzing.ErrNoImages):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "no readable images provided", nil)
	case errors.Is(err, analyzing.ErrItemNotIdentified):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "item could not be identified from the photos", nil)
	default:
		logrus.WithError(err).Error("item analysis failed")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "item analysis failed", nil)
	}
}
