package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"swiftfleet/models"
	"swiftfleet/services/pricing"
)

type fakeBookingRepo struct {
	created []models.Booking
	err     error
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *b)
	return nil
}

func (f *fakeBookingRepo) GetByReference(ref string) (*models.Booking, error) {
	for i := range f.created {
		if f.created[i].Reference == ref {
			return &f.created[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.created {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByEmail(string) ([]models.Booking, error) { return f.created, nil }
func (f *fakeBookingRepo) GetAll() ([]models.Booking, error)           { return f.created, nil }
func (f *fakeBookingRepo) UpdateStatus(string, string) error           { return nil }

type fakeScheduler struct {
	payloads []models.ReminderPayload
	fireAts  []time.Time
}

func (f *fakeScheduler) ScheduleReminder(p models.ReminderPayload, fireAt time.Time) error {
	f.payloads = append(f.payloads, p)
	f.fireAts = append(f.fireAts, fireAt)
	return nil
}

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) SendUserPush(_ context.Context, userID, _, _ string, _ map[string]string) error {
	f.sent = append(f.sent, userID)
	return nil
}

// 2026-09-07 is a Monday; "today" is fixed at 2026-09-01.
var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeScheduler, *fakeNotifier) {
	repo := &fakeBookingRepo{}
	sched := &fakeScheduler{}
	notif := &fakeNotifier{}
	svc := &DefaultBookingService{
		Repo:      repo,
		Notifier:  notif,
		Scheduler: sched,
		Logger:    zap.NewNop(),
		Now:       func() time.Time { return testNow },
	}
	return svc, repo, sched, notif
}

func validInput() SubmissionInput {
	return SubmissionInput{
		UserID:         "user-1",
		Name:           "Asha Rao",
		Email:          "asha@example.com",
		Phone:          "+91 98765 43210",
		CarType:        pricing.CategoryFiveSeater,
		PickupDate:     "2026-09-07",
		ReturnDate:     "2026-09-09",
		PickupLocation: "MG Road, Bengaluru",
	}
}

func TestSubmit(t *testing.T) {
	svc, repo, sched, notif := newTestService()

	bk, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(bk.Reference, "SF"))
	assert.Equal(t, 2, bk.Days)
	assert.Equal(t, 1800, bk.DailyRate)
	assert.Equal(t, 3600, bk.TotalAmount)
	assert.Equal(t, models.BookingStatusPending, bk.Status)
	require.Len(t, repo.created, 1)
	assert.Equal(t, *bk, repo.created[0])

	// Confirmation push and pickup reminder 24h before pickup.
	assert.Equal(t, []string{"user-1"}, notif.sent)
	require.Len(t, sched.fireAts, 1)
	assert.Equal(t, time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC), sched.fireAts[0])
	assert.Equal(t, "SF", sched.payloads[0].BookingRef[:2])
}

func TestSubmitWeekendPickup(t *testing.T) {
	svc, _, _, _ := newTestService()

	in := validInput()
	in.CarType = pricing.CategorySevenSeater
	in.PickupDate = "2026-09-12" // Saturday
	in.ReturnDate = "2026-09-14" // Monday

	bk, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 2, bk.Days)
	assert.Equal(t, 3800, bk.DailyRate)
	assert.Equal(t, 7600, bk.TotalAmount)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubmissionInput)
		field  string
	}{
		{"missing name", func(in *SubmissionInput) { in.Name = "" }, "name"},
		{"missing email", func(in *SubmissionInput) { in.Email = "" }, "email"},
		{"missing phone", func(in *SubmissionInput) { in.Phone = "" }, "phone"},
		{"missing car type", func(in *SubmissionInput) { in.CarType = "" }, "carType"},
		{"missing pickup location", func(in *SubmissionInput) { in.PickupLocation = "" }, "pickupLocation"},
		{"malformed email", func(in *SubmissionInput) { in.Email = "not-an-email" }, "email"},
		{"malformed phone", func(in *SubmissionInput) { in.Phone = "12345" }, "phone"},
		{"foreign phone", func(in *SubmissionInput) { in.Phone = "+4415550100123" }, "phone"},
		{"bad pickup date", func(in *SubmissionInput) { in.PickupDate = "07/09/2026" }, "pickupDate"},
		{"bad return date", func(in *SubmissionInput) { in.ReturnDate = "next week" }, "returnDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newTestService()
			in := validInput()
			tt.mutate(&in)

			_, err := svc.Submit(context.Background(), in)
			var vErr ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Empty(t, repo.created)
		})
	}
}

func TestSubmitDateRules(t *testing.T) {
	t.Run("return equal to pickup", func(t *testing.T) {
		svc, _, _, _ := newTestService()
		in := validInput()
		in.ReturnDate = in.PickupDate

		_, err := svc.Submit(context.Background(), in)
		var rangeErr pricing.InvalidDateRangeError
		require.ErrorAs(t, err, &rangeErr)
	})

	t.Run("pickup in past", func(t *testing.T) {
		svc, _, _, _ := newTestService()
		in := validInput()
		in.PickupDate = "2026-08-30"

		_, err := svc.Submit(context.Background(), in)
		var rangeErr pricing.InvalidDateRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Contains(t, rangeErr.Reason, "past")
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, _, _, _ := newTestService()
		in := validInput()
		in.CarType = "4-seater"

		_, err := svc.Submit(context.Background(), in)
		var catErr pricing.InvalidCategoryError
		require.ErrorAs(t, err, &catErr)
	})
}

func TestSubmitPersistenceFailure(t *testing.T) {
	svc, repo, sched, notif := newTestService()
	repo.err = errors.New("mongo down")

	_, err := svc.Submit(context.Background(), validInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create booking")
	assert.Empty(t, sched.payloads)
	assert.Empty(t, notif.sent)
}

func TestSubmitAnonymousSkipsPushAndReminder(t *testing.T) {
	svc, repo, sched, notif := newTestService()
	in := validInput()
	in.UserID = ""

	_, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Empty(t, sched.payloads)
	assert.Empty(t, notif.sent)
}

func TestSubmitNoReminderWhenPickupImminent(t *testing.T) {
	svc, _, sched, _ := newTestService()
	in := validInput()
	in.PickupDate = "2026-09-01" // today; the 24h lead has already passed
	in.ReturnDate = "2026-09-03"

	_, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, sched.payloads)
}

func TestGetByReference(t *testing.T) {
	svc, _, _, _ := newTestService()

	bk, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	got, err := svc.GetByReference(bk.Reference)
	require.NoError(t, err)
	assert.Equal(t, bk.TotalAmount, got.TotalAmount)

	_, err = svc.GetByReference("SF0000MISSING")
	require.Error(t, err)
}

func TestNewReferenceFormat(t *testing.T) {
	ref := NewReference(testNow)
	assert.True(t, strings.HasPrefix(ref, "SF"))
	assert.Len(t, ref, 2+13+4) // "SF" + unix millis + 4 char suffix
}
