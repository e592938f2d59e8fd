package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascent/internal/error_values"
	"github.com/limbo/ascent/internal/repository"
	"github.com/limbo/ascent/pkg/entity"
)

type tierSetter interface {
	SetTier(uid uuid.UUID, tier entity.PlanTier)
}

type AdminService struct {
	users      repository.UsersRepositoryI
	journeys   tierSetter
	adminEmail string
}

// NewAdminService with an empty adminEmail grants admin rights to nobody.
func NewAdminService(usersRepo repository.UsersRepositoryI, journeys tierSetter, adminEmail string) *AdminService {
	return &AdminService{
		users:      usersRepo,
		journeys:   journeys,
		adminEmail: strings.TrimSpace(adminEmail),
	}
}

func (as *AdminService) IsAdmin(user *entity.User) bool {
	return user != nil && as.adminEmail != "" && strings.EqualFold(user.Email, as.adminEmail)
}

func (as *AdminService) SetPlan(ctx context.Context, uid uuid.UUID, req *SetPlanRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	tier := entity.PlanTier(req.Tier)
	err := as.users.UpdatePlan(ctx, uid, tier)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository updating error: " + err.Error())
	}
	as.journeys.SetTier(uid, tier)
	return nil
}
