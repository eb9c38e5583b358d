package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmed = "booking:confirmed"

// BookingConfirmedPayload is everything the confirmation mail needs, so the
// worker never reads the booking store.
type BookingConfirmedPayload struct {
	OwnerID     string `json:"ownerId"`
	BookingID   string `json:"bookingId"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Travelers   int    `json:"travelers"`
	Total       string `json:"total"`
	Currency    string `json:"currency"`
}

func NewBookingConfirmedTask(payload BookingConfirmedPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmed, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
		// one confirmation per booking even if enqueue is repeated
		asynq.TaskID(TypeBookingConfirmed + ":" + payload.BookingID),
	}
	return task, opts, nil
}

func ParseBookingConfirmed(task *asynq.Task) (BookingConfirmedPayload, error) {
	var p BookingConfirmedPayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
