package tasks

import (
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingConfirmedTask(t *testing.T) {
	p := BookingConfirmedPayload{
		OwnerID:     "o1",
		BookingID:   "b1",
		Email:       "asha@example.com",
		Destination: "Goa",
		Travelers:   2,
		Total:       "50000.00",
		Currency:    "INR",
	}

	task, opts, err := NewBookingConfirmedTask(p)
	require.NoError(t, err)
	assert.Equal(t, TypeBookingConfirmed, task.Type())
	assert.Contains(t, opts, asynq.TaskID("booking:confirmed:b1"))

	got, err := ParseBookingConfirmed(task)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestParseBookingConfirmedInvalid(t *testing.T) {
	_, err := ParseBookingConfirmed(asynq.NewTask(TypeBookingConfirmed, []byte("nope")))
	assert.Error(t, err)
}
