package service

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/SohamNaik26/wealth-management/internal/errors"
	"github.com/SohamNaik26/wealth-management/internal/model"
	"github.com/SohamNaik26/wealth-management/internal/store"
)

// GoalService handles financial goal CRUD over the session store.
type GoalService struct {
	store *store.Store
}

// NewGoalService creates a new GoalService over the given store.
func NewGoalService(s *store.Store) *GoalService {
	return &GoalService{store: s}
}

// GoalUpdate carries the shallow-merge fields of an edit.
type GoalUpdate struct {
	Name          *string
	Description   *string
	TargetAmount  *float64
	CurrentAmount *float64
	TargetDate    *time.Time
	Priority      *string
}

// List returns all goals in insertion order.
func (s *GoalService) List() []model.Goal {
	return s.store.Goals()
}

// Get retrieves a single goal by ID.
func (s *GoalService) Get(goalID string) (model.Goal, error) {
	for _, g := range s.store.Goals() {
		if g.ID == goalID {
			return g, nil
		}
	}
	return model.Goal{}, apperrors.ErrGoalNotFound
}

// Create assigns an ID and appends the goal to the store.
func (s *GoalService) Create(g model.Goal) model.Goal {
	g.ID = uuid.New().String()
	s.store.UpdateGoals(func(prev []model.Goal) []model.Goal {
		return append(prev, g)
	})
	return g
}

// Update shallow-merges the provided fields over the existing goal.
func (s *GoalService) Update(goalID string, update GoalUpdate) (model.Goal, error) {
	current, err := s.Get(goalID)
	if err != nil {
		return model.Goal{}, err
	}

	if update.Name != nil {
		current.Name = *update.Name
	}
	if update.Description != nil {
		current.Description = *update.Description
	}
	if update.TargetAmount != nil {
		current.TargetAmount = *update.TargetAmount
	}
	if update.CurrentAmount != nil {
		current.CurrentAmount = *update.CurrentAmount
	}
	if update.TargetDate != nil {
		current.TargetDate = *update.TargetDate
	}
	if update.Priority != nil {
		current.Priority = *update.Priority
	}

	s.store.UpdateGoals(func(prev []model.Goal) []model.Goal {
		for i := range prev {
			if prev[i].ID == goalID {
				prev[i] = current
			}
		}
		return prev
	})
	return current, nil
}

// Delete removes a goal from the store.
func (s *GoalService) Delete(goalID string) error {
	if _, err := s.Get(goalID); err != nil {
		return err
	}
	s.store.UpdateGoals(func(prev []model.Goal) []model.Goal {
		out := prev[:0]
		for _, g := range prev {
			if g.ID != goalID {
				out = append(out, g)
			}
		}
		return out
	})
	return nil
}
