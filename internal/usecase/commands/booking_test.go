//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dipakpardeshi85-blip/car-rental/internal/domain/booking"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra"
	"github.com/dipakpardeshi85-blip/car-rental/internal/infra/db"
	"github.com/dipakpardeshi85-blip/car-rental/internal/pkg/clock"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/commands"
	"github.com/dipakpardeshi85-blip/car-rental/internal/usecase/shared"
	"github.com/dipakpardeshi85-blip/car-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUoW serializes Within calls with a mutex, giving the same
// check-then-insert atomicity per transaction the database provides.
type fakeUoW struct {
	mu       sync.Mutex
	cars     map[uuid.UUID]*shared.CarSnapshot
	bookings map[uuid.UUID]*booking.Booking
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		cars:     make(map[uuid.UUID]*shared.CarSnapshot),
		bookings: make(map[uuid.UUID]*booking.Booking),
	}
}

func (f *fakeUoW) addCar(id uuid.UUID) {
	f.cars[id] = &shared.CarSnapshot{ID: id, Name: "test car", Available: true}
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx, &fakeTx{uow: f})
}

type fakeTx struct {
	uow *fakeUoW
}

func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{uow: t.uow} }
func (t *fakeTx) Cars() shared.CarRepository         { return nil }
func (t *fakeTx) Users() shared.UserRepository       { return nil }
func (t *fakeTx) Reads() shared.CommandReads         { return &fakeReads{uow: t.uow} }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type fakeReads struct {
	uow *fakeUoW
}

func (r *fakeReads) CarByID(_ context.Context, id uuid.UUID) (*shared.CarSnapshot, error) {
	snap, ok := r.uow.cars[id]
	if !ok {
		return nil, infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

func (r *fakeReads) CarAvailable(_ context.Context, carID uuid.UUID, dates booking.DateRange) (bool, error) {
	for _, existing := range r.uow.bookings {
		if existing.CarID() != carID || !existing.IsActive() {
			continue
		}
		if existing.Dates().Overlaps(dates) {
			return false, nil
		}
	}
	return true, nil
}

type fakeBookingRepo struct {
	uow *fakeUoW
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
	for _, existing := range r.uow.bookings {
		if existing.ConflictsWith(b) {
			return uuid.Nil, infra.WrapRepoErr("overlap constraint violated", nil, infra.KindConflict)
		}
	}
	r.uow.bookings[b.ID()] = b
	return b.ID(), nil
}

func (r *fakeBookingRepo) CancelByOwner(_ context.Context, bookingID, userID uuid.UUID) (int64, error) {
	b, ok := r.uow.bookings[bookingID]
	if !ok || b.UserID() != userID {
		return 0, nil
	}
	b.Cancel()
	return 1, nil
}

var testToday = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func newBookingCommands(uow shared.UnitOfWork) commands.BookingCommands {
	return commands.NewBookingCommands(uow, clock.NewMockClock(testToday))
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uow := newFakeUoW()
		b := builder.NewBookingBuilder()
		uow.addCar(b.CarID)

		svc := newBookingCommands(uow)
		id, err := svc.CreateBooking(ctx, b.BuildDTO(), b.UserID)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		stored := uow.bookings[id]
		require.NotNil(t, stored)
		assert.Equal(t, booking.StatusConfirmed, stored.Status())
		assert.Equal(t, b.UserID, stored.UserID())
	})

	t.Run("car not found", func(t *testing.T) {
		uow := newFakeUoW()
		b := builder.NewBookingBuilder()

		svc := newBookingCommands(uow)
		_, err := svc.CreateBooking(ctx, b.BuildDTO(), b.UserID)
		require.ErrorIs(t, err, commands.ErrCarNotFound)
	})

	t.Run("invalid date range rejected before any read", func(t *testing.T) {
		uow := newFakeUoW()
		b := builder.NewBookingBuilder().
			With(func(bb *builder.BookingBuilder) {
				bb.PickupDate = "2026-06-15"
				bb.ReturnDate = "2026-06-10"
			})
		uow.addCar(b.CarID)

		svc := newBookingCommands(uow)
		_, err := svc.CreateBooking(ctx, b.BuildDTO(), b.UserID)
		require.ErrorIs(t, err, commands.ErrInvalidDateRange)
		assert.Empty(t, uow.bookings)
	})

	t.Run("past pickup rejected", func(t *testing.T) {
		uow := newFakeUoW()
		b := builder.NewBookingBuilder().
			With(func(bb *builder.BookingBuilder) {
				bb.PickupDate = "2026-05-20"
				bb.ReturnDate = "2026-05-25"
			})
		uow.addCar(b.CarID)

		svc := newBookingCommands(uow)
		_, err := svc.CreateBooking(ctx, b.BuildDTO(), b.UserID)
		require.ErrorIs(t, err, commands.ErrInvalidDateRange)
	})

	t.Run("overlapping booking conflicts", func(t *testing.T) {
		uow := newFakeUoW()
		first := builder.NewBookingBuilder()
		uow.addCar(first.CarID)

		svc := newBookingCommands(uow)
		_, err := svc.CreateBooking(ctx, first.BuildDTO(), first.UserID)
		require.NoError(t, err)

		// touching endpoint: second pickup on first's return day
		second := builder.NewBookingBuilder().
			With(func(bb *builder.BookingBuilder) {
				bb.CarID = first.CarID
				bb.PickupDate = first.ReturnDate
				bb.ReturnDate = "2026-06-20"
			})
		_, err = svc.CreateBooking(ctx, second.BuildDTO(), second.UserID)
		require.ErrorIs(t, err, commands.ErrBookingConflict)
	})

	t.Run("disjoint booking on same car succeeds", func(t *testing.T) {
		uow := newFakeUoW()
		first := builder.NewBookingBuilder()
		uow.addCar(first.CarID)

		svc := newBookingCommands(uow)
		_, err := svc.CreateBooking(ctx, first.BuildDTO(), first.UserID)
		require.NoError(t, err)

		second := builder.NewBookingBuilder().
			With(func(bb *builder.BookingBuilder) {
				bb.CarID = first.CarID
				bb.PickupDate = "2026-06-16"
				bb.ReturnDate = "2026-06-20"
			})
		_, err = svc.CreateBooking(ctx, second.BuildDTO(), second.UserID)
		require.NoError(t, err)
		assert.Len(t, uow.bookings, 2)
	})

	t.Run("cancelled booking frees the dates", func(t *testing.T) {
		uow := newFakeUoW()
		first := builder.NewBookingBuilder()
		uow.addCar(first.CarID)

		svc := newBookingCommands(uow)
		firstID, err := svc.CreateBooking(ctx, first.BuildDTO(), first.UserID)
		require.NoError(t, err)
		require.NoError(t, svc.CancelBooking(ctx, firstID, first.UserID))

		second := builder.NewBookingBuilder().
			With(func(bb *builder.BookingBuilder) { bb.CarID = first.CarID })
		_, err = svc.CreateBooking(ctx, second.BuildDTO(), second.UserID)
		require.NoError(t, err)
	})
}

func TestCreateBookingConcurrency(t *testing.T) {
	const workers = 20

	uow := newFakeUoW()
	base := builder.NewBookingBuilder()
	uow.addCar(base.CarID)

	svc := newBookingCommands(uow)

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := range workers {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			req := builder.NewBookingBuilder().
				With(func(bb *builder.BookingBuilder) { bb.CarID = base.CarID }).
				BuildDTO()
			_, errs[n] = svc.CreateBooking(context.Background(), req, uuid.New())
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, commands.ErrBookingConflict)
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent overlapping request must win")
	assert.Len(t, uow.bookings, 1)
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeUoW, commands.BookingCommands, uuid.UUID, uuid.UUID) {
		t.Helper()
		uow := newFakeUoW()
		b := builder.NewBookingBuilder()
		uow.addCar(b.CarID)

		svc := newBookingCommands(uow)
		id, err := svc.CreateBooking(ctx, b.BuildDTO(), b.UserID)
		require.NoError(t, err)
		return uow, svc, id, b.UserID
	}

	t.Run("owner cancels", func(t *testing.T) {
		uow, svc, id, owner := setup(t)
		require.NoError(t, svc.CancelBooking(ctx, id, owner))
		assert.True(t, uow.bookings[id].IsCancelled())
	})

	t.Run("repeat cancel succeeds", func(t *testing.T) {
		_, svc, id, owner := setup(t)
		require.NoError(t, svc.CancelBooking(ctx, id, owner))
		require.NoError(t, svc.CancelBooking(ctx, id, owner))
	})

	t.Run("non-owner gets not found", func(t *testing.T) {
		uow, svc, id, _ := setup(t)
		err := svc.CancelBooking(ctx, id, uuid.New())
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
		assert.True(t, uow.bookings[id].IsActive())
	})

	t.Run("unknown booking gets not found", func(t *testing.T) {
		_, svc, _, owner := setup(t)
		err := svc.CancelBooking(ctx, uuid.New(), owner)
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}
