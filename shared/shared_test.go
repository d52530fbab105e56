package shared_test

import (
	"context"
	"testing"
	"time"

	"hotel/shared"
	"hotel/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input string
		want  *bool
	}{
		{input: "", want: nil},
		{input: "true", want: ptr(true)},
		{input: "1", want: ptr(true)},
		{input: "F", want: ptr(false)},
		{input: "false", want: ptr(false)},
		{input: "yes", want: nil},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestActorFromContext(t *testing.T) {
	t.Run("guest without identity", func(t *testing.T) {
		actor := shared.ActorFromContext(context.Background())

		assert.Equal(t, constant.ContextGuest, actor.ID)
		assert.Empty(t, actor.Email)
	})

	t.Run("authenticated staff", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "u-1")
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "desk@hotel.test")
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, "custom")

		assert.Equal(t, shared.Actor{ID: "u-1", Email: "desk@hotel.test", Role: "custom"}, shared.ActorFromContext(ctx))
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "guest@hotel.test", shared.NormalizeEmail("  Guest@Hotel.TEST "))
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name         string
		total, limit int
		want         int
	}{
		{name: "empty result", total: 0, limit: 10, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "single row", total: 1, limit: 10, want: 1},
		{name: "no limit", total: 50, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRoom struct {
		Name     string  `db:"name"`
		Capacity *int    `db:"capacity"`
		Active   *bool   `db:"active"`
		Notes    string  `db:"notes"`
		Secret   string  `db:"-"`
		Image    string
		Category *string `db:"category"`
	}

	zero := 0
	inactive := false

	fields := shared.TransformFields(updateRoom{
		Name:     "Garden Villa",
		Capacity: &zero,
		Active:   &inactive,
		Secret:   "skip",
		Image:    "skip",
	}, "u-1")

	require.IsType(t, time.Time{}, fields[constant.FieldModifiedAt])
	assert.Equal(t, "u-1", fields[constant.FieldModifiedBy])

	delete(fields, constant.FieldModifiedAt)
	delete(fields, constant.FieldModifiedBy)

	assert.Equal(t, map[string]any{
		"name":     "Garden Villa",
		"capacity": &zero,
		"active":   &inactive,
	}, fields)
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("r-1", "id", "rooms")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(rooms.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "r-1"}, args)
}

func ptr[T any](v T) *T {
	return &v
}
