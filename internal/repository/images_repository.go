package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/pkg/entity"
)

const imageColumns = `id, mountain_id, content_type, data, created_at`

type ImagesRepository struct {
	conn PgConnection
}

func NewImagesRepo(conn PgConnection) *ImagesRepository {
	return &ImagesRepository{
		conn: conn,
	}
}

func scanImage(row pgx.Row) (*entity.ProductImage, error) {
	var img entity.ProductImage
	if err := row.Scan(&img.ID, &img.MountainID, &img.ContentType, &img.Data, &img.CreatedAt); err != nil {
		return nil, err
	}
	return &img, nil
}

func (ir *ImagesRepository) ListForMountain(ctx context.Context, mountainID uuid.UUID) ([]entity.ProductImage, error) {
	rows, err := ir.conn.Query(ctx, `SELECT `+imageColumns+` FROM product_images WHERE mountain_id = $1 ORDER BY created_at ASC;`, mountainID)
	if err != nil {
		return nil, errors.New("fetching images error: " + err.Error())
	}
	defer rows.Close()
	images := make([]entity.ProductImage, 0)
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, errors.New("scanning image error: " + err.Error())
		}
		images = append(images, *img)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("iterating images error: " + err.Error())
	}
	return images, nil
}

func (ir *ImagesRepository) Add(ctx context.Context, img *entity.ProductImage) (*entity.ProductImage, error) {
	if img == nil {
		return nil, errors.New("image is nil")
	}
	created, err := scanImage(ir.conn.QueryRow(ctx, `INSERT INTO product_images (mountain_id, content_type, data)
		SELECT $1, $2, $3 WHERE (SELECT COUNT(*) FROM product_images WHERE mountain_id = $1) < $4 RETURNING `+imageColumns+`;`,
		img.MountainID, img.ContentType, img.Data, MaxImagesPerMountain,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrImageLimitReached
		}
		if pgCode(err) == pgFKViolation {
			return nil, errorvalues.ErrMountainNotFound
		}
		return nil, errors.New("adding image error: " + err.Error())
	}
	return created, nil
}

func (ir *ImagesRepository) Delete(ctx context.Context, mountainID, id uuid.UUID) error {
	ct, err := ir.conn.Exec(ctx, `DELETE FROM product_images WHERE id = $1 AND mountain_id = $2;`, id, mountainID)
	if err != nil {
		return errors.New("deleting image error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrImageNotFound
	}
	return nil
}
