package dto_test

import (
	"testing"

	"hotel/internal/domains/housekeeping/model"
	"hotel/internal/domains/housekeeping/model/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateTaskRequest_ToModel(t *testing.T) {
	req := dto.CreateTaskRequest{
		RoomID:   "r-1",
		RoomName: "Garden Villa",
		Title:    "Replace minibar",
	}

	userID := "test-user-id"
	task := req.ToModel(userID)

	assert.NotEmpty(t, task.ID, "expected ID to be generated")
	assert.Equal(t, model.StatusPending, task.Status)
	assert.Nil(t, task.BookingID)
	assert.Equal(t, userID, task.CreatedBy)
	assert.False(t, task.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCheckoutTask(t *testing.T) {
	now := timezone.Now()
	task := model.CheckoutTask("r-1", "Room 101", "b-1", "HB-ABC123", "desk", now)

	assert.Equal(t, "Clean Room 101 after check-out", task.Title)
	assert.Equal(t, model.StatusPending, task.Status)
	assert.Equal(t, "b-1", *task.BookingID)
	assert.Equal(t, now, task.CreatedAt)
}

func TestTaskResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	bookingID := "b-7"

	var response dto.TaskResponse
	response.FromModel(model.Task{
		ID:        "t-1",
		RoomID:    "r-1",
		RoomName:  "Room 101",
		BookingID: &bookingID,
		Title:     "Clean",
		Status:    model.StatusDone,
		Metadata:  gModel.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: "desk", ModifiedBy: "desk"},
	})

	assert.Equal(t, "b-7", response.BookingID)
	assert.Equal(t, model.StatusDone, response.Status)
	assert.Equal(t, "desk", response.CreatedBy)
}
