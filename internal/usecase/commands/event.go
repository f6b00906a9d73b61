package commands

import (
	"context"

	"pupperazi-api/internal/domain/analytics"
	reqdto "pupperazi-api/internal/handler/dto/request"
	"pupperazi-api/internal/pkg/clock"
	"pupperazi-api/internal/pkg/errs"
)

var ErrInvalidEventKind = errs.New("invalid event kind")

type EventRepository interface {
	Insert(ctx context.Context, ev analytics.Event) error
}

// EventCommands records raw tracking rows from the frontend beacon. Fire and
// forget: the caller only learns about rejected kinds.
type EventCommands interface {
	Record(ctx context.Context, req reqdto.RecordEventRequest) error
}

type eventCommandsImpl struct {
	eventRepo EventRepository
	clock     clock.Clock
}

func NewEventCommands(eventRepo EventRepository, clock clock.Clock) EventCommands {
	return &eventCommandsImpl{
		eventRepo: eventRepo,
		clock:     clock,
	}
}

func (e *eventCommandsImpl) Record(ctx context.Context, req reqdto.RecordEventRequest) error {
	kind := analytics.EventKind(req.Kind)
	if !kind.IsValid() {
		return ErrInvalidEventKind
	}

	occurredAt := e.clock.Now()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	ev := analytics.Event{
		Kind:       kind,
		VisitorID:  req.VisitorID,
		Page:       req.Page,
		OccurredAt: occurredAt,
	}

	if err := e.eventRepo.Insert(ctx, ev); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
