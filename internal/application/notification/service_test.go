package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/event"
	"github.com/swipehome/api/internal/localstore"
)

func newMemoryService() Service {
	return NewService(localstore.NewNotificationRepo(localstore.NewMemoryStore()))
}

func TestNotify_CreatesUnreadRecord(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	matchID := "m1"
	n, err := svc.Notify(ctx, "renter-1", domain.NotificationMatch, "Έχετε match με Nikos!",
		domain.NotificationContext{MatchID: &matchID})

	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.Read)
	assert.Nil(t, n.ReadAt)
	require.NotNil(t, n.Context.MatchID)
	assert.Equal(t, "m1", *n.Context.MatchID)
}

func TestListForUser_FiltersByRecipient(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	_, err := svc.Notify(ctx, "renter-1", domain.NotificationMatch, "a", domain.NotificationContext{})
	require.NoError(t, err)
	_, err = svc.Notify(ctx, "lister-1", domain.NotificationMatch, "b", domain.NotificationContext{})
	require.NoError(t, err)
	_, err = svc.Notify(ctx, "renter-1", domain.NotificationMessage, "c", domain.NotificationContext{})
	require.NoError(t, err)

	mine, err := svc.ListForUser(ctx, "renter-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "c", mine[0].Message, "most recent first")
	assert.Equal(t, "a", mine[1].Message)

	all, err := svc.ListForUser(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3, "empty user id returns the whole table")
}

func TestGet_AbsentIDIsSoft(t *testing.T) {
	svc := newMemoryService()

	n, err := svc.Get(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestGet_ReturnsRecord(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	created, err := svc.Notify(ctx, "renter-1", domain.NotificationMatch, "a", domain.NotificationContext{})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "renter-1", got.UserID)
}

func TestMarkRead_Idempotent(t *testing.T) {
	svc := newMemoryService()
	ctx := context.Background()

	n, err := svc.Notify(ctx, "renter-1", domain.NotificationMatch, "a", domain.NotificationContext{})
	require.NoError(t, err)

	first, err := svc.MarkRead(ctx, n.ID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, first.Read)
	require.NotNil(t, first.ReadAt)

	second, err := svc.MarkRead(ctx, n.ID)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ReadAt, second.ReadAt, "second call must not restamp ReadAt")
}

func TestMarkRead_AbsentIDIsSoft(t *testing.T) {
	svc := newMemoryService()

	n, err := svc.MarkRead(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, n)
}

// --- dispatcher tests ---

func TestDispatcher_MatchCreatedNotifiesBothSides(t *testing.T) {
	svc := newMemoryService()
	bus := event.NewBus()
	NewDispatcher(svc).Register(bus)
	ctx := context.Background()

	m := domain.Match{
		ID: "m1",
		Users: [2]domain.Identity{
			{ID: "renter-1", Name: "Maria"},
			{ID: "lister-1", Name: "Nikos"},
		},
	}
	require.NoError(t, bus.Publish(ctx, event.MatchCreated{Match: m}))

	renter, err := svc.ListForUser(ctx, "renter-1")
	require.NoError(t, err)
	require.Len(t, renter, 1)
	assert.Equal(t, "Έχετε match με Nikos!", renter[0].Message)

	lister, err := svc.ListForUser(ctx, "lister-1")
	require.NoError(t, err)
	require.Len(t, lister, 1)
	assert.Equal(t, "Έχετε match με Maria!", lister[0].Message)
}

func TestDispatcher_MessageSentNotifiesReceiverOnly(t *testing.T) {
	svc := newMemoryService()
	bus := event.NewBus()
	NewDispatcher(svc).Register(bus)
	ctx := context.Background()

	m := domain.Match{
		ID: "m1",
		Users: [2]domain.Identity{
			{ID: "renter-1", Name: "Maria"},
			{ID: "lister-1", Name: "Nikos"},
		},
	}
	msg := domain.Message{ID: "msg1", MatchID: "m1", SenderID: "lister-1", Content: "hi"}
	require.NoError(t, bus.Publish(ctx, event.MessageSent{Match: m, Message: msg}))

	renter, err := svc.ListForUser(ctx, "renter-1")
	require.NoError(t, err)
	require.Len(t, renter, 1)
	assert.Equal(t, domain.NotificationMessage, renter[0].Type)

	lister, err := svc.ListForUser(ctx, "lister-1")
	require.NoError(t, err)
	assert.Empty(t, lister)
}

func TestDispatcher_MessageFromNonParticipantFails(t *testing.T) {
	svc := newMemoryService()
	d := NewDispatcher(svc)
	ctx := context.Background()

	m := domain.Match{
		ID:    "m1",
		Users: [2]domain.Identity{{ID: "renter-1"}, {ID: "lister-1"}},
	}
	msg := domain.Message{ID: "msg1", MatchID: "m1", SenderID: "intruder"}
	err := d.Handle(ctx, event.MessageSent{Match: m, Message: msg})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSender)
}

func TestDispatcher_ReportFiledReachesAdminInbox(t *testing.T) {
	svc := newMemoryService()
	bus := event.NewBus()
	NewDispatcher(svc).Register(bus)
	ctx := context.Background()

	r := domain.Report{ID: "rep1", ReporterID: "renter-1", ReportedID: "lister-1", Reason: "spam"}
	require.NoError(t, bus.Publish(ctx, event.ReportFiled{Report: r, AdminID: "admin-1"}))

	inbox, err := svc.ListForUser(ctx, "admin-1")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, domain.NotificationReport, inbox[0].Type)
	assert.Contains(t, inbox[0].Message, "lister-1")
	require.NotNil(t, inbox[0].Context.ReportID)
	assert.Equal(t, "rep1", *inbox[0].Context.ReportID)
}
