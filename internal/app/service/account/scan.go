package account

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/YoavDdev/studio-boaz-backend/internal/models"
	"github.com/YoavDdev/studio-boaz-backend/pkg/types"
)

type ScanUsersRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanUsersResponse struct {
	Items []*models.User `json:"items"`
	Total int64          `json:"total"`
}

// filtersAnd combines multiple CommonFilter into a single clause.Expression.
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		exprs = append(exprs, f)
	}
	clause.And(exprs...).Build(builder)
}

// ScanUsers implements filtered/paginated admin listing.
func (s *Service) ScanUsers(ctx context.Context, req *ScanUsersRequest) (*ScanUsersResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.User{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	var rows []*models.User

	q := tx.Limit(req.Size)

	if req.From > 0 {
		q = q.Offset(req.From)
	}

	if req.SortBy != "" {
		q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: req.SortBy}, Desc: req.SortOrder != "asc"}}})
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &ScanUsersResponse{Items: rows, Total: total}, nil
}
