package schedule

import (
	"context"
	"time"

	domain "github.com/jhonux/barber-api/internal/domain/schedule"
)

type FreeSlots struct {
	repo domain.Repository
}

func NewFreeSlots(repo domain.Repository) *FreeSlots {
	return &FreeSlots{repo: repo}
}

// Execute returns the ascending free start times for one barber on one date.
// A weekday with no availability row yields an empty list.
func (uc *FreeSlots) Execute(
	ctx context.Context,
	ownerID uint,
	date time.Time,
) ([]domain.TimeOfDay, error) {

	av, err := uc.repo.GetAvailability(ctx, ownerID, domain.Weekday(date))
	if err != nil {
		return nil, err
	}

	window, ok := domain.WindowFromAvailability(av)
	if !ok {
		return []domain.TimeOfDay{}, nil
	}

	apps, err := uc.repo.ListAppointmentsForDay(
		ctx,
		ownerID,
		date.Format(domain.DateFormat),
	)
	if err != nil {
		return nil, err
	}

	slots := domain.EnumerateSlots(window, domain.SlotMinutes)
	booked := domain.BookedTimes(apps, domain.AnyStatus)

	return domain.SubtractBooked(slots, booked), nil
}
