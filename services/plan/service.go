package plan

import (
	"context"
	"encoding/json"
	"fmt"

	"homigo/models"

	"go.uber.org/zap"
)

const planCatalogKey = "vip_plans:catalog"

// ListPlans returns the active plan catalog, serving from the redis cache
// when warm. Cache failures degrade to a direct repository read.
func (s *DefaultPlanService) ListPlans(ctx context.Context) ([]models.VipPlan, error) {
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, planCatalogKey).Result(); err == nil {
			var plans []models.VipPlan
			if err := json.Unmarshal([]byte(cached), &plans); err == nil {
				return plans, nil
			}
			s.Logger.Warn("dropping corrupt plan catalog cache entry")
			s.Cache.Del(ctx, planCatalogKey)
		}
	}

	plans, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vip plans: %w", err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(plans); err == nil {
			if err := s.Cache.Set(ctx, planCatalogKey, data, s.CacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache plan catalog", zap.Error(err))
			}
		}
	}
	return plans, nil
}

// GetPlan returns one plan by id.
func (s *DefaultPlanService) GetPlan(ctx context.Context, id string) (*models.VipPlan, error) {
	plan, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("vip plan %s not found: %w", id, err)
	}
	return plan, nil
}
