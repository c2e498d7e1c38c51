package plan

import (
	"context"
	"errors"
	"testing"

	"homigo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPlanRepo struct {
	plans    []models.VipPlan
	listErr  error
	listHits int
}

func (r *stubPlanRepo) List(ctx context.Context) ([]models.VipPlan, error) {
	r.listHits++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.plans, nil
}

func (r *stubPlanRepo) GetByID(ctx context.Context, id string) (*models.VipPlan, error) {
	for _, p := range r.plans {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errors.New("mongo: no documents in result")
}

func (r *stubPlanRepo) Create(ctx context.Context, plan models.VipPlan) (string, error) {
	r.plans = append(r.plans, plan)
	return plan.ID, nil
}

func TestListPlansWithoutCache(t *testing.T) {
	repo := &stubPlanRepo{plans: []models.VipPlan{
		{ID: "p1", PlanName: "VIP Monthly", Price: 199, Active: true},
		{ID: "p2", PlanName: "VIP Yearly", Price: 1499, Active: true},
	}}
	svc := &DefaultPlanService{Repo: repo, Logger: zap.NewNop()}

	plans, err := svc.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "p1", plans[0].ID)
	assert.Equal(t, 1, repo.listHits)
}

func TestListPlansRepoError(t *testing.T) {
	repo := &stubPlanRepo{listErr: errors.New("connection reset")}
	svc := &DefaultPlanService{Repo: repo, Logger: zap.NewNop()}

	plans, err := svc.ListPlans(context.Background())
	assert.Error(t, err)
	assert.Nil(t, plans)
}

func TestGetPlan(t *testing.T) {
	repo := &stubPlanRepo{plans: []models.VipPlan{{ID: "p1", PlanName: "VIP Monthly", Price: 199}}}
	svc := &DefaultPlanService{Repo: repo, Logger: zap.NewNop()}

	p, err := svc.GetPlan(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "VIP Monthly", p.PlanName)

	_, err = svc.GetPlan(context.Background(), "missing")
	assert.Error(t, err)
}
