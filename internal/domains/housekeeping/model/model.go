package model

import (
	"fmt"
	"time"

	"hotel/shared/model"

	"github.com/google/uuid"
)

const (
	TableName  = "housekeeping_tasks"
	EntityName = "housekeeping_task"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldRoomName  = "room_name"
	FieldBookingID = "booking_id"
	FieldTitle     = "title"
	FieldNotes     = "notes"
	FieldStatus    = "status"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

type Task struct {
	ID        string  `db:"id"`
	RoomID    string  `db:"room_id"`
	RoomName  string  `db:"room_name"`
	BookingID *string `db:"booking_id"`
	Title     string  `db:"title"`
	Notes     string  `db:"notes"`
	Status    string  `db:"status"`
	model.Metadata
}

// CheckoutTask is the cleaning job queued for a room its guest has just vacated.
func CheckoutTask(roomID, roomName, bookingID, reference, user string, now time.Time) Task {
	return Task{
		ID:        uuid.NewString(),
		RoomID:    roomID,
		RoomName:  roomName,
		BookingID: &bookingID,
		Title:     fmt.Sprintf("Clean %s after check-out", roomName),
		Notes:     "Booking " + reference,
		Status:    StatusPending,
		Metadata:  model.Stamp(user, now),
	}
}
