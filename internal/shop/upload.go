package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/logger"
)

// UploadRequest is a creator's new catalog entry.
type UploadRequest struct {
	CreatorID   int64    `json:"creator_id,string" validate:"required"`
	GuildID     int64    `json:"guild_id,string" validate:"required"`
	Name        string   `json:"item_name" validate:"required,max=100"`
	Application string   `json:"application" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       int64    `json:"price" validate:"gte=0"`
	ProductLink string   `json:"product_link" validate:"required,max=2000"`
	Previews    []string `json:"previews" validate:"min=1,max=3,dive,required,url"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Upload validates and stores a new item, returning it with its generated id.
func (s *service) Upload(ctx context.Context, req UploadRequest) (*domain.ShopItem, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.ProductLink = strings.TrimSpace(req.ProductLink)
	if err := s.validateUpload(req); err != nil {
		return nil, err
	}

	item := domain.ShopItem{
		CreatorID:   req.CreatorID,
		GuildID:     req.GuildID,
		Name:        req.Name,
		Application: req.Application,
		Category:    req.Category,
		Price:       req.Price,
		ProductLink: req.ProductLink,
		Previews:    append([]string(nil), req.Previews...),
	}
	id, err := s.catalog.InsertItem(ctx, item)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInsertItemFailedFmt, item.Name, err)
	}
	item.ID = id

	recordUpload(item.Application)
	logger.FromContext(ctx).Info(LogMsgItemUploaded,
		"item_id", id, "creator_id", item.CreatorID, "application", item.Application, "category", item.Category)
	return &item, nil
}

func (s *service) validateUpload(req UploadRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf(ErrMsgValidationFmt, domain.ErrInvalidInput, describeValidation(err))
	}
	if !s.taxonomy.HasApplication(req.Application) {
		return fmt.Errorf(ErrMsgUnknownApplicationFmt, domain.ErrInvalidInput, req.Application)
	}
	if !s.taxonomy.HasCategory(req.Category) {
		return fmt.Errorf(ErrMsgUnknownCategoryFmt, domain.ErrInvalidInput, req.Category)
	}
	if need := s.taxonomy.RequiredPreviews(req.Category); len(req.Previews) < need {
		return fmt.Errorf(ErrMsgPreviewsRequiredFmt, domain.ErrInvalidInput, req.Category, need, len(req.Previews))
	}
	return nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
