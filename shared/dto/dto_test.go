package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"arena/shared/constant"
	"arena/shared/dto"
	"arena/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	sortable := []string{"start_time", "created_at"}

	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "start_time",
				"sort_dir": "asc",
			},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "start_time", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults when empty",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "no defaults when disabled",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "invalid and negative numbers fall back",
			queryParams:    map[string]string{"page": "abc", "limit": "-4"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "unknown sort column is dropped",
			queryParams:    map[string]string{"sort_by": "password; DROP TABLE", "sort_dir": "sideways"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/v1/reservations")
			require.NoError(t, err)

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}

			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			require.NoError(t, err)

			got := dto.QueryParams{}
			got.FromRequest(req, tt.defaultRequest, sortable...)

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name:       "eq with table",
			filter:     dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq, Table: "r"},
			wantClause: "r.status = :status",
			wantArgs:   map[string]any{"status": "confirmed"},
		},
		{
			name:       "less with arg name",
			filter:     dto.Filter{ArgName: "window_end", Field: "start_time", Value: 10, Operator: dto.FilterOperatorLess},
			wantClause: "start_time < :window_end",
			wantArgs:   map[string]any{"window_end": 10},
		},
		{
			name:       "greater",
			filter:     dto.Filter{ArgName: "window_start", Field: "end_time", Value: 5, Operator: dto.FilterOperatorGreater},
			wantClause: "end_time > :window_start",
			wantArgs:   map[string]any{"window_start": 5},
		},
		{
			name:       "in slice",
			filter:     dto.Filter{Field: "status", Value: []string{"pending", "confirmed"}, Operator: dto.FilterOperatorIn},
			wantClause: "status IN (:status_0, :status_1)",
			wantArgs:   map[string]any{"status_0": "pending", "status_1": "confirmed"},
		},
		{
			name:       "in empty slice matches nothing",
			filter:     dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantClause: "FALSE",
			wantArgs:   map[string]any{},
		},
		{
			name:       "like",
			filter:     dto.Filter{Field: "name", Value: "court", Operator: dto.FilterOperatorLike},
			wantClause: "LOWER(name) LIKE LOWER(:name)",
			wantArgs:   map[string]any{"name": "%court%"},
		},
		{
			name:       "unknown operator",
			filter:     dto.Filter{Field: "name", Operator: "between"},
			wantClause: "",
			wantArgs:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{}
	group.And(
		dto.Filter{Field: "facility_id", Value: "f-1", Operator: dto.FilterOperatorEq},
		dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{ArgName: "s1", Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
				dto.Filter{ArgName: "s2", Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
			},
		},
		"ignored",
	)

	clause, args := group.GetWhereClause()

	assert.Equal(t, "(facility_id = :facility_id AND (status = :s1 OR status = :s2))", clause)
	assert.Equal(t, map[string]any{"facility_id": "f-1", "s1": "pending", "s2": "confirmed"}, args)

	empty := dto.FilterGroup{}
	clause, _ = empty.GetWhereClause()
	assert.Empty(t, clause)
}
