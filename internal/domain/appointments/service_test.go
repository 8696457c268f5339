package appointments_test

import (
	"context"
	"testing"
	"time"

	mem "pet-care-dashboard/internal/adapters/storage/memory"
	"pet-care-dashboard/internal/domain/appointments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func book(t *testing.T, svc *appointments.Service, title string, date time.Time, hhmm string) appointments.Appointment {
	t.Helper()
	a, err := svc.Book(context.Background(), "owner-1", appointments.BookInput{
		Title:    title,
		Date:     date,
		Time:     hhmm,
		Type:     "Veterinary",
		PetName:  "Max",
		Provider: "Dr. Smith Animal Clinic",
	})
	require.NoError(t, err)
	return a
}

func TestService_Book_ValidatesRequiredFields(t *testing.T) {
	svc := appointments.NewService(mem.NewAppointmentRepo())
	d := time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)

	cases := map[string]appointments.BookInput{
		"missing title":    {Date: d, Time: "10:00", Type: "Grooming", PetName: "Max", Provider: "Spa"},
		"missing date":     {Title: "x", Time: "10:00", Type: "Grooming", PetName: "Max", Provider: "Spa"},
		"bad time":         {Title: "x", Date: d, Time: "later", Type: "Grooming", PetName: "Max", Provider: "Spa"},
		"unknown type":     {Title: "x", Date: d, Time: "10:00", Type: "Spa Day", PetName: "Max", Provider: "Spa"},
		"missing provider": {Title: "x", Date: d, Time: "10:00", Type: "Grooming", PetName: "Max"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Book(context.Background(), "owner-1", in)
			assert.ErrorIs(t, err, appointments.ErrInvalidInput)
		})
	}

	items, err := svc.List(context.Background(), "owner-1", appointments.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_List_SortedByDateAndTime(t *testing.T) {
	svc := appointments.NewService(mem.NewAppointmentRepo())
	d1 := time.Date(2023, 7, 18, 0, 0, 0, 0, time.UTC)
	d0 := time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)

	book(t, svc, "Grooming", d1, "2:30 PM")
	book(t, svc, "Vaccination", d0, "3:45 PM")
	book(t, svc, "Vet Checkup", d0, "10:00 AM")

	items, err := svc.List(context.Background(), "owner-1", appointments.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Vet Checkup", items[0].Title)
	assert.Equal(t, "Vaccination", items[1].Title)
	assert.Equal(t, "Grooming", items[2].Title)
	assert.Equal(t, "14:30", items[2].Time)

	onDay, err := svc.List(context.Background(), "owner-1", appointments.ListFilter{Date: &d0})
	require.NoError(t, err)
	assert.Len(t, onDay, 2)
}

func TestService_Reschedule_AndCancel(t *testing.T) {
	svc := appointments.NewService(mem.NewAppointmentRepo())
	d := time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC)
	a := book(t, svc, "Vet Checkup", d, "10:00")
	b := book(t, svc, "Grooming", d, "11:00")

	moved, err := svc.Reschedule(context.Background(), a.ID, d.AddDate(0, 0, 2), "4:00 PM")
	require.NoError(t, err)
	assert.Equal(t, "16:00", moved.Time)
	assert.Equal(t, 17, moved.Date.Day())
	assert.Equal(t, a.Title, moved.Title)

	got, err := svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got, "other appointments untouched")

	require.NoError(t, svc.Cancel(context.Background(), a.ID))
	require.NoError(t, svc.Cancel(context.Background(), a.ID))

	items, err := svc.List(context.Background(), "owner-1", appointments.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.Reschedule(context.Background(), "missing", d, "10:00")
	assert.ErrorIs(t, err, appointments.ErrNotFound)
}
