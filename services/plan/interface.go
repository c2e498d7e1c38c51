package plan

import (
	"context"
	"time"

	planRepo "homigo/database/repository/plan"
	"homigo/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// PlanService exposes the purchasable VIP plan catalog. The cart core treats
// a plan only by its id; everything else is display data.
type PlanService interface {
	ListPlans(ctx context.Context) ([]models.VipPlan, error)
	GetPlan(ctx context.Context, id string) (*models.VipPlan, error)
}

// DefaultPlanService implements PlanService over MongoDB with a redis-cached
// catalog, since plans change rarely but are read on every VIP screen.
type DefaultPlanService struct {
	Repo     planRepo.VipPlanRepository
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}
