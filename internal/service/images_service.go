package service

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/pkg/entity"
)

const MaxImageBytes = 2 << 20

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

type mountainLocator interface {
	MountainID(ctx context.Context, uid uuid.UUID) (uuid.UUID, error)
}

type ImagesService struct {
	repo      repository.ImagesRepositoryI
	mountains mountainLocator
}

func NewImagesService(imagesRepo repository.ImagesRepositoryI, mountains mountainLocator) *ImagesService {
	return &ImagesService{
		repo:      imagesRepo,
		mountains: mountains,
	}
}

// decodeImage accepts raw base64 or a data URI and returns the bytes with their sniffed type.
func decodeImage(data string) ([]byte, string, error) {
	if strings.HasPrefix(data, "data:") {
		_, payload, ok := strings.Cut(data, ",")
		if !ok {
			return nil, "", errors.Join(errorvalues.ErrInvalidImage, errors.New("malformed data uri"))
		}
		data = payload
	}
	if base64.StdEncoding.DecodedLen(len(data)) > MaxImageBytes+3 {
		return nil, "", errors.Join(errorvalues.ErrInvalidImage, errors.New("image is larger than 2MB"))
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, "", errors.Join(errorvalues.ErrInvalidImage, err)
	}
	if len(raw) > MaxImageBytes {
		return nil, "", errors.Join(errorvalues.ErrInvalidImage, errors.New("image is larger than 2MB"))
	}
	contentType := http.DetectContentType(raw)
	if !allowedImageTypes[contentType] {
		return nil, "", errors.Join(errorvalues.ErrInvalidImage, errors.New("unsupported type "+contentType))
	}
	return raw, contentType, nil
}

func (is *ImagesService) List(ctx context.Context, uid uuid.UUID) ([]entity.ProductImage, error) {
	mountainID, err := is.mountains.MountainID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoMountain) {
			return []entity.ProductImage{}, nil
		}
		return nil, err
	}
	images, err := is.repo.ListForMountain(ctx, mountainID)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	return images, nil
}

func (is *ImagesService) Upload(ctx context.Context, uid uuid.UUID, req *ImageUploadRequest) (*entity.ProductImage, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	raw, contentType, err := decodeImage(req.Data)
	if err != nil {
		return nil, err
	}
	mountainID, err := is.mountains.MountainID(ctx, uid)
	if err != nil {
		return nil, err
	}
	img, err := is.repo.Add(ctx, &entity.ProductImage{
		MountainID:  mountainID,
		ContentType: contentType,
		Data:        base64.StdEncoding.EncodeToString(raw),
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrImageLimitReached) || errors.Is(err, errorvalues.ErrMountainNotFound) {
			return nil, err
		}
		return nil, errors.New("repository adding error: " + err.Error())
	}
	return img, nil
}

func (is *ImagesService) Delete(ctx context.Context, uid uuid.UUID, id uuid.UUID) error {
	mountainID, err := is.mountains.MountainID(ctx, uid)
	if err != nil {
		return err
	}
	err = is.repo.Delete(ctx, mountainID, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrImageNotFound) {
			return err
		}
		return errors.New("repository deleting error: " + err.Error())
	}
	return nil
}
