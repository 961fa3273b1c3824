package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/event"
)

// Dispatcher subscribes to domain events and fans them out as notifications.
// Running it on the synchronous bus keeps the fan-out on the same call path
// as the triggering write, matching the single-client execution model.
type Dispatcher struct {
	svc Service
}

func NewDispatcher(svc Service) *Dispatcher {
	return &Dispatcher{svc: svc}
}

// Register subscribes the dispatcher on the bus.
func (d *Dispatcher) Register(bus *event.Bus) {
	bus.Subscribe(d.Handle)
}

func (d *Dispatcher) Handle(ctx context.Context, e event.Event) error {
	switch ev := e.(type) {
	case event.MatchCreated:
		return d.matchCreated(ctx, ev)
	case event.MessageSent:
		return d.messageSent(ctx, ev)
	case event.ReportFiled:
		return d.reportFiled(ctx, ev)
	}
	return nil
}

// matchCreated notifies both participants, each message naming the other.
func (d *Dispatcher) matchCreated(ctx context.Context, ev event.MatchCreated) error {
	m := ev.Match
	nctx := domain.NotificationContext{MatchID: &m.ID}
	var errs []error
	for i := range m.Users {
		other := m.Users[1-i]
		text := fmt.Sprintf("Έχετε match με %s!", other.Name)
		if _, err := d.svc.Notify(ctx, m.Users[i].ID, domain.NotificationMatch, text, nctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// messageSent notifies the participant who did not send the message.
func (d *Dispatcher) messageSent(ctx context.Context, ev event.MessageSent) error {
	receiver, ok := ev.Match.Other(ev.Message.SenderID)
	if !ok {
		return fmt.Errorf("message %s: %w", ev.Message.ID, domain.ErrInvalidSender)
	}
	nctx := domain.NotificationContext{MatchID: &ev.Message.MatchID}
	_, err := d.svc.Notify(ctx, receiver.ID, domain.NotificationMessage, "Έχετε νέο μήνυμα", nctx)
	return err
}

// reportFiled surfaces the report in the administrator inbox.
func (d *Dispatcher) reportFiled(ctx context.Context, ev event.ReportFiled) error {
	text := fmt.Sprintf("Νέα αναφορά χρήστη: %s", ev.Report.ReportedID)
	nctx := domain.NotificationContext{ReportID: &ev.Report.ID}
	_, err := d.svc.Notify(ctx, ev.AdminID, domain.NotificationReport, text, nctx)
	return err
}
