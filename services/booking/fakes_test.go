package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	bookingRepo "paintbook/database/repository/booking"
	slotRepo "paintbook/database/repository/slot"
	userRepo "paintbook/database/repository/user"
	"paintbook/models"
)

// fakeSlotRepo is an in-memory SlotRepository. Reserve and Release hold the
// mutex across the read-check-write, giving the same atomicity the Mongo
// filtered update provides, so the race tests exercise real CAS semantics.
type fakeSlotRepo struct {
	mu    sync.Mutex
	slots map[string]*models.AvailabilitySlot
}

func newFakeSlotRepo(slots ...models.AvailabilitySlot) *fakeSlotRepo {
	r := &fakeSlotRepo{slots: make(map[string]*models.AvailabilitySlot)}
	for i := range slots {
		s := slots[i]
		r.slots[s.ID] = &s
	}
	return r
}

func (r *fakeSlotRepo) Create(_ context.Context, slot *models.AvailabilitySlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *slot
	r.slots[slot.ID] = &cp
	return nil
}

func (r *fakeSlotRepo) FindByID(_ context.Context, slotID string) (*models.AvailabilitySlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[slotID]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSlotRepo) FindByProvider(_ context.Context, providerID string) ([]models.AvailabilitySlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AvailabilitySlot
	for _, s := range r.slots {
		if s.ProviderID == providerID {
			out = append(out, *s)
		}
	}
	sortSlotsByStart(out)
	return out, nil
}

func (r *fakeSlotRepo) FindCoveringFreeSlots(_ context.Context, start, end time.Time) ([]models.AvailabilitySlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AvailabilitySlot
	for _, s := range r.slots {
		if !s.Reserved && !s.Start.After(start) && !s.End.Before(end) {
			out = append(out, *s)
		}
	}
	sortSlotsByStart(out)
	return out, nil
}

func (r *fakeSlotRepo) FindFreeSlotsInWindow(_ context.Context, windowStart, windowEnd time.Time, minDuration time.Duration) ([]models.AvailabilitySlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AvailabilitySlot
	for _, s := range r.slots {
		if s.Reserved {
			continue
		}
		if s.Start.Before(windowStart) || s.End.After(windowEnd) {
			continue
		}
		if s.Duration() < minDuration {
			continue
		}
		out = append(out, *s)
	}
	sortSlotsByStart(out)
	return out, nil
}

func (r *fakeSlotRepo) FindOverlapping(_ context.Context, providerID string, start, end time.Time) ([]models.AvailabilitySlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AvailabilitySlot
	for _, s := range r.slots {
		if s.ProviderID == providerID && s.Start.Before(end) && s.End.After(start) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) Reserve(_ context.Context, slotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
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

func (r *fakeSlotRepo) Release(_ context.Context, slotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
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

func (r *fakeSlotRepo) DeleteByID(_ context.Context, providerID, slotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[slotID]
	if !ok || s.ProviderID != providerID {
		return slotRepo.ErrSlotNotFound
	}
	delete(r.slots, slotID)
	return nil
}

func sortSlotsByStart(slots []models.AvailabilitySlot) {
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Start.Before(slots[j].Start) })
}

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking

	failCreate error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, bookingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[bookingID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.bookings, bookingID)
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, bookingID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) FindByIDForUser(_ context.Context, bookingID, userID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok || (b.CustomerID != userID && b.ProviderID != userID) {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) FindUserBookings(_ context.Context, userID string, filter models.BookingFilter) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CustomerID != userID && b.ProviderID != userID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if !filter.StartDate.IsZero() && b.Start.Before(filter.StartDate) {
			continue
		}
		if !filter.EndDate.IsZero() && b.Start.After(filter.EndDate) {
			continue
		}
		out = append(out, *b)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, bookingID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) CountByProvider(_ context.Context, providerID string) (int64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total, confirmed int64
	for _, b := range r.bookings {
		if b.ProviderID != providerID {
			continue
		}
		total++
		if b.Status == models.BookingStatusConfirmed {
			confirmed++
		}
	}
	return total, confirmed, nil
}

func (r *fakeBookingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for i := range users {
		u := users[i]
		r.users[u.ID] = &u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (r *fakeUserRepo) PushNotification(_ context.Context, userID string, notification models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.Notifications = append(u.Notifications, notification)
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return userRepo.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}
