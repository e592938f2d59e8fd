package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/ascent/internal/banner"
	"github.com/limbo/ascent/internal/journey"
	"github.com/limbo/ascent/internal/repository"
)

type snapshotter interface {
	Snapshot(ctx context.Context, uid uuid.UUID) (journey.Snapshot, error)
}

type BannerService struct {
	journeys  snapshotter
	images    repository.ImagesRepositoryI
	previewer *banner.Previewer
	exporter  *banner.Exporter
	now       func() time.Time
}

func NewBannerService(journeys snapshotter, imagesRepo repository.ImagesRepositoryI, previewer *banner.Previewer, exporter *banner.Exporter) *BannerService {
	return &BannerService{
		journeys:  journeys,
		images:    imagesRepo,
		previewer: previewer,
		exporter:  exporter,
		now:       time.Now,
	}
}

// render uses the sample journey for demo viewers.
func (bs *BannerService) render(ctx context.Context, uid uuid.UUID, req *BannerRequest) (*banner.Document, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := bs.now()
	snap := banner.DemoSnapshot(now)
	opts := req.Options
	opts.Images = nil
	if uid != uuid.Nil {
		var err error
		snap, err = bs.journeys.Snapshot(ctx, uid)
		if err != nil {
			return nil, err
		}
		if req.WithImages && snap.Mountain != nil {
			images, err := bs.images.ListForMountain(ctx, snap.Mountain.ID)
			if err != nil {
				return nil, errors.New("repository listing error: " + err.Error())
			}
			for _, img := range images {
				opts.Images = append(opts.Images, img.DataURI())
			}
		}
	}
	return banner.Render(snap, opts, now)
}

func (bs *BannerService) Preview(ctx context.Context, key string, uid uuid.UUID, req *BannerRequest) error {
	doc, err := bs.render(ctx, uid, req)
	if err != nil {
		return err
	}
	bs.previewer.Schedule(key, doc)
	return nil
}

func (bs *BannerService) LatestPreview(key string) ([]byte, error) {
	return bs.previewer.Latest(key)
}

// UserPreviewKey names the preview slot of a signed in user.
func UserPreviewKey(uid uuid.UUID) string {
	return uid.String()
}

// HandleSession drops the preview of a user that signed out.
func (bs *BannerService) HandleSession(ev SessionEvent) {
	if ev.Kind == SessionSignedOut && ev.User != nil {
		bs.previewer.Forget(UserPreviewKey(ev.User.ID))
	}
}

func (bs *BannerService) Export(ctx context.Context, uid uuid.UUID, req *BannerRequest) (*banner.Artifact, error) {
	if uid == uuid.Nil {
		return bs.exporter.Export(ctx, banner.ExportRequest{Demo: true})
	}
	doc, err := bs.render(ctx, uid, req)
	if err != nil {
		return nil, err
	}
	return bs.exporter.Export(ctx, banner.ExportRequest{
		Document:  doc,
		Key:       "banners/" + uid.String() + "/" + strconv.FormatInt(bs.now().UnixNano(), 10) + "-" + doc.Format.Name + ".png",
		Upload:    req.Upload,
		ShareText: req.ShareText,
	})
}
