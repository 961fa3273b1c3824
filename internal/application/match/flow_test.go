package match

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swipehome/api/internal/application/identity"
	"github.com/swipehome/api/internal/application/message"
	"github.com/swipehome/api/internal/application/notification"
	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/event"
	"github.com/swipehome/api/internal/localstore"
)

// End-to-end flow over a memory store: match creation and messaging drive
// notifications through the bus exactly as the router wires them.
func TestMatchMessagingFlow(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemoryStore()

	renters := localstore.NewIdentityRepo(store, domain.KindRenter, []domain.Identity{
		{ID: "renter-1", Kind: domain.KindRenter, Name: "Maria", Email: "maria@test.gr"},
	})
	listers := localstore.NewIdentityRepo(store, domain.KindLister, []domain.Identity{
		{ID: "lister-1", Kind: domain.KindLister, Name: "Nikos", Email: "nikos@test.gr"},
	})
	admins := localstore.NewIdentityRepo(store, domain.KindAdministrator, nil)

	bus := event.NewBus()
	identitySvc := identity.NewService(identity.Stores{
		Renters:        renters,
		Listers:        listers,
		Administrators: admins,
	})
	notifSvc := notification.NewService(localstore.NewNotificationRepo(store))
	notification.NewDispatcher(notifSvc).Register(bus)

	matchRepo := localstore.NewMatchRepo(store)
	matchSvc := NewService(matchRepo, identitySvc, localstore.NewListingRepo(store), bus)
	messageSvc := message.NewService(localstore.NewMessageRepo(store), matchRepo, bus)

	// Creating a match notifies both participants, each naming the other.
	m, err := matchSvc.Create(ctx, domain.CreateMatchRequest{
		UserA: domain.IdentityRef{Kind: domain.KindRenter, ID: "renter-1"},
		UserB: domain.IdentityRef{Kind: domain.KindLister, ID: "lister-1"},
	})
	require.NoError(t, err)

	renterNotifs, err := notifSvc.ListForUser(ctx, "renter-1")
	require.NoError(t, err)
	require.Len(t, renterNotifs, 1)
	assert.Equal(t, domain.NotificationMatch, renterNotifs[0].Type)
	assert.Contains(t, renterNotifs[0].Message, "Nikos")
	require.NotNil(t, renterNotifs[0].Context.MatchID)
	assert.Equal(t, m.ID, *renterNotifs[0].Context.MatchID)

	listerNotifs, err := notifSvc.ListForUser(ctx, "lister-1")
	require.NoError(t, err)
	require.Len(t, listerNotifs, 1)
	assert.Contains(t, listerNotifs[0].Message, "Maria")

	// A message from the renter notifies only the lister.
	_, err = messageSvc.Append(ctx, m.ID, domain.AppendMessageRequest{
		SenderID: "renter-1",
		Content:  "Γεια σας, ενδιαφέρομαι για το διαμέρισμα",
	})
	require.NoError(t, err)

	renterNotifs, err = notifSvc.ListForUser(ctx, "renter-1")
	require.NoError(t, err)
	assert.Len(t, renterNotifs, 1, "sender must not be notified of their own message")

	listerNotifs, err = notifSvc.ListForUser(ctx, "lister-1")
	require.NoError(t, err)
	require.Len(t, listerNotifs, 2)
	assert.Equal(t, domain.NotificationMessage, listerNotifs[0].Type, "newest notification first")

	// Marking read is idempotent and stamps ReadAt once.
	first, err := notifSvc.MarkRead(ctx, listerNotifs[0].ID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, first.Read)
	require.NotNil(t, first.ReadAt)

	second, err := notifSvc.MarkRead(ctx, listerNotifs[0].ID)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ReadAt, second.ReadAt)

	// Unmatching retires the match but keeps its thread intact.
	require.NoError(t, matchSvc.Unmatch(ctx, m.ID))

	active, err := matchSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	thread, err := messageSvc.ListByMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, thread, 1, "thread survives unmatch")
}
