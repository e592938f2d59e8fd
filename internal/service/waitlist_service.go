package service

import (
	"context"
	"errors"
	"strings"

	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/pkg/entity"
)

type WaitlistService struct {
	repo repository.WaitlistRepositoryI
}

func NewWaitlistService(waitlistRepo repository.WaitlistRepositoryI) *WaitlistService {
	return &WaitlistService{
		repo: waitlistRepo,
	}
}

// Join adds the e-mail to the pro waitlist. Joining again replaces the feedback.
func (ws *WaitlistService) Join(ctx context.Context, req *WaitlistRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateStruct(req); err != nil {
		return err
	}
	if err := ws.repo.Insert(ctx, req.Email, strings.TrimSpace(req.Feedback)); err != nil {
		return errors.New("repository inserting error: " + err.Error())
	}
	return nil
}

func (ws *WaitlistService) List(ctx context.Context) ([]entity.WaitlistEntry, error) {
	entries, err := ws.repo.List(ctx)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	return entries, nil
}
