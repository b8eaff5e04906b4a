package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"arena/shared/failure"
	"arena/shared/model"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantConflict bool
		wantNotFound bool
		wantCode     int
	}{
		{name: "malformed uuid", err: &pq.Error{Code: "22P02"}, wantNotFound: true, wantCode: http.StatusInternalServerError},
		{name: "exclusion violation", err: &pq.Error{Code: "23P01"}, wantConflict: true, wantCode: http.StatusInternalServerError},
		{name: "unique violation", err: &pq.Error{Code: "23505"}, wantConflict: true, wantCode: http.StatusInternalServerError},
		{name: "connection failure", err: &pq.Error{Code: "08006"}, wantCode: http.StatusServiceUnavailable},
		{name: "statement canceled", err: &pq.Error{Code: "57014"}, wantCode: http.StatusServiceUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, wantCode: http.StatusServiceUnavailable},
		{name: "bad conn", err: driver.ErrBadConn, wantCode: http.StatusServiceUnavailable},
		{name: "syntax error", err: &pq.Error{Code: "42601"}, wantCode: http.StatusInternalServerError},
		{name: "plain", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("insert", "reservation", tt.err)

			assert.Equal(t, tt.wantConflict, errors.Is(got, ErrConflict))
			assert.Equal(t, tt.wantNotFound, errors.Is(got, ErrNotFound))
			assert.Equal(t, tt.wantCode, failure.GetCode(got))
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(context.Canceled))
	assert.True(t, IsTransient(context.DeadlineExceeded))
}

type row struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Joined string `db:"facility_name" table:"facilities" column:"name"`
	Skip   string `db:"-"`
	model.Metadata
}

func TestGetColumns(t *testing.T) {
	columns, insertColumns := getColumns("reservations", reflect.TypeOf(row{}))

	assert.Equal(t, []string{"id", "name", "created_at", "modified_at", "created_by", "modified_by"}, insertColumns)
	assert.Contains(t, columns, column{name: "name", table: "facilities", alias: "facility_name"})
	assert.NotContains(t, columns, column{name: "-", table: "reservations"})
}
