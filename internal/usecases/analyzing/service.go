package analyzing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sellkit/listing-assistant-api/infrastructure/integrator/gemini"
	"github.com/sellkit/listing-assistant-api/internal/domain"
)

// Model output stays useful up to a handful of photos; extra ones only cost
// tokens, so the rest are kept for the listing but not sent to the model.
const maxImagesForModel = 5

var (
	ErrNoImages          = errors.New("no readable images provided")
	ErrItemNotIdentified = errors.New("item could not be identified from the photos")
)

// VisionModel is the slice of the Gemini integrator the analyzer needs.
type VisionModel interface {
	AnalyzeImages(ctx context.Context, images []gemini.ImagePart) (*domain.ItemAnalysis, error)
	GenerateListingCopy(ctx context.Context, analysis *domain.ItemAnalysis, condition string, price float64) (*domain.ListingCopy, error)
}

// ImageStore reads previously uploaded photos back from disk.
type ImageStore interface {
	Read(path string) ([]byte, string, error)
}

// Analyzer identifies items from photos and writes their listing copy.
type Analyzer interface {
	AnalyzeItem(ctx context.Context, imagePaths []string) (*domain.ItemAnalysis, error)
	GenerateCopy(ctx context.Context, analysis *domain.ItemAnalysis, condition string, price float64) (*domain.ListingCopy, error)
}

type Service struct {
	model VisionModel
	store ImageStore
}

func NewService(model VisionModel, store ImageStore) Analyzer {
	return &Service{
		model: model,
		store: store,
	}
}

// AnalyzeItem loads the stored photos and asks the vision model what the item
// is. Unreadable photos are skipped; identification failure is an error the
// caller can surface to the user.
func (s *Service) AnalyzeItem(ctx context.Context, imagePaths []string) (*domain.ItemAnalysis, error) {
	images := make([]gemini.ImagePart, 0, maxImagesForModel)

	for _, path := range imagePaths {
		if len(images) == maxImagesForModel {
			break
		}

		data, mimeType, err := s.store.Read(path)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"path":  path,
				"error": err.Error(),
			}).Warn("analyzing: skipping unreadable image")
			continue
		}

		images = append(images, gemini.ImagePart{Data: data, MIMEType: mimeType})
	}

	if len(images) == 0 {
		return nil, ErrNoImages
	}

	analysis, err := s.model.AnalyzeImages(ctx, images)
	if err != nil {
		return nil, errors.Wrap(err, "analyzing item photos")
	}

	if !analysis.Identified || analysis.ItemName == "" {
		return nil, ErrItemNotIdentified
	}

	return analysis, nil
}

func (s *Service) GenerateCopy(ctx context.Context, analysis *domain.ItemAnalysis, condition string, price float64) (*domain.ListingCopy, error) {
	listingCopy, err := s.model.GenerateListingCopy(ctx, analysis, condition, price)
	if err != nil {
		return nil, errors.Wrap(err, "generating listing copy")
	}
	return listingCopy, nil
}
