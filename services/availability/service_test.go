package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	slotRepo "paintbook/database/repository/slot"
	userRepo "paintbook/database/repository/user"
	"paintbook/models"
	"paintbook/services/booking"
)

type memSlotRepo struct {
	slots map[string]*models.AvailabilitySlot
}

func newMemSlotRepo(slots ...models.AvailabilitySlot) *memSlotRepo {
	r := &memSlotRepo{slots: make(map[string]*models.AvailabilitySlot)}
	for i := range slots {
		s := slots[i]
		r.slots[s.ID] = &s
	}
	return r
}

func (r *memSlotRepo) Create(_ context.Context, slot *models.AvailabilitySlot) error {
	cp := *slot
	r.slots[slot.ID] = &cp
	return nil
}

func (r *memSlotRepo) FindByID(_ context.Context, slotID string) (*models.AvailabilitySlot, error) {
	s, ok := r.slots[slotID]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSlotRepo) FindByProvider(_ context.Context, providerID string) ([]models.AvailabilitySlot, error) {
	var out []models.AvailabilitySlot
	for _, s := range r.slots {
		if s.ProviderID == providerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memSlotRepo) FindCoveringFreeSlots(_ context.Context, _, _ time.Time) ([]models.AvailabilitySlot, error) {
	return nil, nil
}

func (r *memSlotRepo) FindFreeSlotsInWindow(_ context.Context, _, _ time.Time, _ time.Duration) ([]models.AvailabilitySlot, error) {
	return nil, nil
}

func (r *memSlotRepo) FindOverlapping(_ context.Context, providerID string, start, end time.Time) ([]models.AvailabilitySlot, error) {
	var out []models.AvailabilitySlot
	for _, s := range r.slots {
		if s.ProviderID == providerID && s.Start.Before(end) && s.End.After(start) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memSlotRepo) Reserve(_ context.Context, slotID string) error {
	s, ok := r.slots[slotID]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	if s.Reserved {
		return slotRepo.ErrSlotConflict
	}
	s.Reserved = true
	s.Version++
	return nil
}

func (r *memSlotRepo) Release(_ context.Context, slotID string) error {
	s, ok := r.slots[slotID]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	if !s.Reserved {
		return slotRepo.ErrSlotConflict
	}
	s.Reserved = false
	s.Version++
	return nil
}

func (r *memSlotRepo) DeleteByID(_ context.Context, providerID, slotID string) error {
	s, ok := r.slots[slotID]
	if !ok || s.ProviderID != providerID {
		return slotRepo.ErrSlotNotFound
	}
	delete(r.slots, slotID)
	return nil
}

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo(users ...models.User) *memUserRepo {
	r := &memUserRepo{users: make(map[string]*models.User)}
	for i := range users {
		u := users[i]
		r.users[u.ID] = &u
	}
	return r
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (r *memUserRepo) PushNotification(_ context.Context, userID string, n models.Notification) error {
	u, ok := r.users[userID]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.Notifications = append(u.Notifications, n)
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestService(slots *memSlotRepo, users *memUserRepo) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		SlotRepo: slots,
		UserRepo: users,
		Now:      func() time.Time { return testNow },
	}
}

func painter(id string) models.User {
	return models.User{ID: id, Role: models.RolePainter, CreatedAt: testNow}
}

func TestCreateSlot(t *testing.T) {
	slots := newMemSlotRepo()
	users := newMemUserRepo(painter("painter-1"))
	svc := newTestService(slots, users)

	start := testNow.Add(2 * time.Hour)
	end := testNow.Add(6 * time.Hour)
	slot, err := svc.CreateSlot(context.Background(), "painter-1", start, end)
	require.NoError(t, err)
	assert.NotEmpty(t, slot.ID)
	assert.Equal(t, "painter-1", slot.ProviderID)
	assert.Equal(t, start, slot.Start)
	assert.Equal(t, end, slot.End)
	assert.False(t, slot.Reserved)
	assert.Zero(t, slot.Version)

	stored, err := slots.FindByID(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.Equal(t, slot.ID, stored.ID)
}

func TestCreateSlotValidation(t *testing.T) {
	slots := newMemSlotRepo()
	users := newMemUserRepo(
		painter("painter-1"),
		models.User{ID: "cust-1", Role: models.RoleCustomer, CreatedAt: testNow},
	)
	svc := newTestService(slots, users)
	ctx := context.Background()

	_, err := svc.CreateSlot(ctx, "painter-1", testNow.Add(-time.Hour), testNow.Add(time.Hour))
	assert.Equal(t, booking.CodePastSchedule, booking.CodeOf(err))

	_, err = svc.CreateSlot(ctx, "painter-1", testNow.Add(4*time.Hour), testNow.Add(2*time.Hour))
	assert.Equal(t, booking.CodeInvalidRange, booking.CodeOf(err))

	_, err = svc.CreateSlot(ctx, "nobody", testNow.Add(time.Hour), testNow.Add(2*time.Hour))
	assert.Equal(t, booking.CodeNotFound, booking.CodeOf(err))

	// Customers cannot publish availability; the role mismatch is masked.
	_, err = svc.CreateSlot(ctx, "cust-1", testNow.Add(time.Hour), testNow.Add(2*time.Hour))
	assert.Equal(t, booking.CodeNotFound, booking.CodeOf(err))
}

func TestCreateSlotRejectsOverlap(t *testing.T) {
	existing := models.AvailabilitySlot{
		ID: "slot-1", ProviderID: "painter-1",
		Start: testNow.Add(2 * time.Hour), End: testNow.Add(6 * time.Hour),
	}
	slots := newMemSlotRepo(existing)
	users := newMemUserRepo(painter("painter-1"), painter("painter-2"))
	svc := newTestService(slots, users)
	ctx := context.Background()

	_, err := svc.CreateSlot(ctx, "painter-1", testNow.Add(4*time.Hour), testNow.Add(8*time.Hour))
	assert.Equal(t, booking.CodeConflict, booking.CodeOf(err))

	// Back-to-back intervals do not overlap.
	_, err = svc.CreateSlot(ctx, "painter-1", testNow.Add(6*time.Hour), testNow.Add(8*time.Hour))
	assert.NoError(t, err)

	// Another painter may cover the same interval.
	_, err = svc.CreateSlot(ctx, "painter-2", testNow.Add(2*time.Hour), testNow.Add(6*time.Hour))
	assert.NoError(t, err)
}

func TestListProviderSlots(t *testing.T) {
	slots := newMemSlotRepo(
		models.AvailabilitySlot{ID: "s1", ProviderID: "painter-1", Start: testNow.Add(time.Hour), End: testNow.Add(2 * time.Hour)},
		models.AvailabilitySlot{ID: "s2", ProviderID: "painter-2", Start: testNow.Add(time.Hour), End: testNow.Add(2 * time.Hour)},
	)
	users := newMemUserRepo(painter("painter-1"))
	svc := newTestService(slots, users)

	got, err := svc.ListProviderSlots(context.Background(), "painter-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)
}

func TestDeleteSlot(t *testing.T) {
	slots := newMemSlotRepo(
		models.AvailabilitySlot{ID: "free", ProviderID: "painter-1", Start: testNow.Add(time.Hour), End: testNow.Add(2 * time.Hour)},
		models.AvailabilitySlot{ID: "taken", ProviderID: "painter-1", Start: testNow.Add(3 * time.Hour), End: testNow.Add(4 * time.Hour), Reserved: true, Version: 1},
		models.AvailabilitySlot{ID: "other", ProviderID: "painter-2", Start: testNow.Add(time.Hour), End: testNow.Add(2 * time.Hour)},
	)
	users := newMemUserRepo(painter("painter-1"))
	svc := newTestService(slots, users)
	ctx := context.Background()

	err := svc.DeleteSlot(ctx, "painter-1", "taken")
	assert.Equal(t, booking.CodeConflict, booking.CodeOf(err), "a reserved slot backs an active booking")

	err = svc.DeleteSlot(ctx, "painter-1", "other")
	assert.Equal(t, booking.CodeNotFound, booking.CodeOf(err), "foreign slots read as missing")

	err = svc.DeleteSlot(ctx, "painter-1", "no-such-slot")
	assert.Equal(t, booking.CodeNotFound, booking.CodeOf(err))

	require.NoError(t, svc.DeleteSlot(ctx, "painter-1", "free"))
	_, err = slots.FindByID(ctx, "free")
	assert.ErrorIs(t, err, slotRepo.ErrSlotNotFound)
}
