package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/swipehome/api/internal/domain"
)

// --- mocks ---

type mockListingStore struct{ mock.Mock }

func (m *mockListingStore) List(ctx context.Context) ([]domain.Listing, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Listing), args.Error(1)
}
func (m *mockListingStore) Get(ctx context.Context, listingID string) (*domain.Listing, error) {
	args := m.Called(ctx, listingID)
	if l, _ := args.Get(0).(*domain.Listing); l != nil {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockListingStore) Put(ctx context.Context, l domain.Listing) error {
	return m.Called(ctx, l).Error(0)
}
func (m *mockListingStore) Update(ctx context.Context, listingID string, mutate func(*domain.Listing)) (*domain.Listing, error) {
	args := m.Called(ctx, listingID, mutate)
	if l, _ := args.Get(0).(*domain.Listing); l != nil {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockOwnerStore struct{ mock.Mock }

func (m *mockOwnerStore) Get(ctx context.Context, identityID string) (*domain.Identity, error) {
	args := m.Called(ctx, identityID)
	if i, _ := args.Get(0).(*domain.Identity); i != nil {
		return i, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- helpers ---

func ptr[T any](v T) *T { return &v }

func baseReq() domain.CreateListingRequest {
	return domain.CreateListingRequest{
		Title: "Διαμέρισμα στο Παγκράτι",
		Price: 750,
		Size:  65,
		Area:  "Παγκράτι",
	}
}

// --- Create tests ---

func TestCreate_HappyPath(t *testing.T) {
	ls := &mockListingStore{}
	os := &mockOwnerStore{}
	os.On("Get", mock.Anything, "lister-1").Return(&domain.Identity{ID: "lister-1", Kind: domain.KindLister}, nil)
	ls.On("Put", mock.Anything, mock.AnythingOfType("domain.Listing")).Return(nil)

	svc := NewService(ls, os)
	l, err := svc.Create(context.Background(), "lister-1", baseReq())

	require.NoError(t, err)
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "lister-1", l.OwnerID)
	assert.NotNil(t, l.Images, "absent slices normalize to empty")
	assert.NotNil(t, l.Features)
	ls.AssertExpectations(t)
}

func TestCreate_UnknownOwner(t *testing.T) {
	ls := &mockListingStore{}
	os := &mockOwnerStore{}
	os.On("Get", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	svc := NewService(ls, os)
	_, err := svc.Create(context.Background(), "ghost", baseReq())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	ls.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestCreate_MissingTitle(t *testing.T) {
	svc := NewService(&mockListingStore{}, &mockOwnerStore{})
	req := baseReq()
	req.Title = ""
	_, err := svc.Create(context.Background(), "lister-1", req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

// --- Update tests ---

func TestUpdate_NonOwnerForbidden(t *testing.T) {
	ls := &mockListingStore{}
	ls.On("Get", mock.Anything, "l1").Return(&domain.Listing{ID: "l1", OwnerID: "lister-1"}, nil)

	svc := NewService(ls, &mockOwnerStore{})
	_, err := svc.Update(context.Background(), "l1", "lister-2", domain.UpdateListingRequest{
		Price: ptr(800.0),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	ls.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_OwnerAppliesPatch(t *testing.T) {
	ls := &mockListingStore{}
	ls.On("Get", mock.Anything, "l1").Return(&domain.Listing{ID: "l1", OwnerID: "lister-1", Price: 750}, nil)
	ls.On("Update", mock.Anything, "l1", mock.Anything).Run(func(args mock.Arguments) {
		mutate := args.Get(2).(func(*domain.Listing))
		l := &domain.Listing{ID: "l1", OwnerID: "lister-1", Price: 750}
		mutate(l)
		assert.Equal(t, 800.0, l.Price)
	}).Return(&domain.Listing{ID: "l1", OwnerID: "lister-1", Price: 800}, nil)

	svc := NewService(ls, &mockOwnerStore{})
	l, err := svc.Update(context.Background(), "l1", "lister-1", domain.UpdateListingRequest{
		Price: ptr(800.0),
	})

	require.NoError(t, err)
	assert.Equal(t, 800.0, l.Price)
	ls.AssertExpectations(t)
}

func TestUpdate_UnknownListing(t *testing.T) {
	ls := &mockListingStore{}
	ls.On("Get", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	svc := NewService(ls, &mockOwnerStore{})
	_, err := svc.Update(context.Background(), "ghost", "lister-1", domain.UpdateListingRequest{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
