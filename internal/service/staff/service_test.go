package staff

import (
	"context"
	"testing"
	"time"

	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	members map[string]staff.Staff
	nextID  int
}

func (f *fakeStaffRepo) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	f.nextID++
	s.ID = string(rune('0' + f.nextID))
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	f.members[s.ID] = s
	return s, nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	s, ok := f.members[id]
	if !ok || s.Removed {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return s, nil
}

func (f *fakeStaffRepo) GetByBadgeID(ctx context.Context, badgeID string) (staff.Staff, error) {
	for _, s := range f.members {
		if s.BadgeID == badgeID && !s.Removed {
			return s, nil
		}
	}
	return staff.Staff{}, staff.ErrStaffNotFound
}

func (f *fakeStaffRepo) List(ctx context.Context) ([]staff.Staff, error) {
	var out []staff.Staff
	for _, s := range f.members {
		if !s.Removed {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) Update(ctx context.Context, s staff.Staff) error {
	if _, ok := f.members[s.ID]; !ok {
		return staff.ErrStaffNotFound
	}
	f.members[s.ID] = s
	return nil
}

func (f *fakeStaffRepo) SoftRemove(ctx context.Context, id string) error {
	s, ok := f.members[id]
	if !ok {
		return staff.ErrStaffNotFound
	}
	s.Removed = true
	f.members[id] = s
	return nil
}

func (f *fakeStaffRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.members[id]; !ok {
		return staff.ErrStaffNotFound
	}
	delete(f.members, id)
	return nil
}

type fakeEventRepo struct {
	history map[string]bool
}

func (f *fakeEventRepo) Create(ctx context.Context, e attendance.Event) (attendance.Event, error) {
	return e, nil
}
func (f *fakeEventRepo) Update(ctx context.Context, e attendance.Event) error { return nil }
func (f *fakeEventRepo) GetOpenEvent(ctx context.Context, staffID string, date string) (attendance.Event, error) {
	return attendance.Event{}, attendance.ErrEventNotFound
}
func (f *fakeEventRepo) HasCheckedIn(ctx context.Context, staffID string, date string) (bool, error) {
	return false, nil
}
func (f *fakeEventRepo) ListAll(ctx context.Context) ([]attendance.Event, error) { return nil, nil }
func (f *fakeEventRepo) ListRange(ctx context.Context, start, end string, staffID string) ([]attendance.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) ListDays(ctx context.Context) ([]attendance.Day, error) { return nil, nil }
func (f *fakeEventRepo) HasHistory(ctx context.Context, staffID string) (bool, error) {
	return f.history[staffID], nil
}

func newTestService() (staff.StaffService, *fakeStaffRepo, *fakeEventRepo) {
	staffRepo := &fakeStaffRepo{members: make(map[string]staff.Staff)}
	eventRepo := &fakeEventRepo{history: make(map[string]bool)}
	return NewStaffService(staffRepo, eventRepo, nil), staffRepo, eventRepo
}

func TestRegister(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Register(context.Background(), staff.RegisterStaffRequest{
		Name:       "Ayu Lestari",
		Department: "Engineering",
		BadgeID:    "04A2B1C9",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, staff.StatusPresent, created.Status)
}

func TestRegister_MissingNameRejected(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), staff.RegisterStaffRequest{Department: "Engineering"})
	assert.Error(t, err)
}

func TestRegister_DuplicateBadgeRejected(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), staff.RegisterStaffRequest{
		Name: "Ayu", Department: "Engineering", BadgeID: "04A2B1C9",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), staff.RegisterStaffRequest{
		Name: "Budi", Department: "Finance", BadgeID: "04A2B1C9",
	})
	assert.ErrorIs(t, err, staff.ErrBadgeIDExists)
}

func TestList_Search(t *testing.T) {
	svc, _, _ := newTestService()
	for _, req := range []staff.RegisterStaffRequest{
		{Name: "Ayu Lestari", Department: "Engineering"},
		{Name: "Budi Santoso", Department: "Finance"},
		{Name: "Citra Dewi", Department: "Engineering"},
	} {
		_, err := svc.Register(context.Background(), req)
		require.NoError(t, err)
	}

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalCount)

	eng, err := svc.List(context.Background(), "engineering")
	require.NoError(t, err)
	assert.Equal(t, 2, eng.TotalCount)

	one, err := svc.List(context.Background(), "budi")
	require.NoError(t, err)
	require.Equal(t, 1, one.TotalCount)
	assert.Equal(t, "Budi Santoso", one.Staff[0].Name)
}

func TestUpdate_PartialFields(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.Register(context.Background(), staff.RegisterStaffRequest{
		Name: "Ayu", Department: "Engineering",
	})
	require.NoError(t, err)

	dept := "Platform"
	updated, err := svc.Update(context.Background(), staff.UpdateStaffRequest{
		ID:         created.ID,
		Department: &dept,
	})
	require.NoError(t, err)
	assert.Equal(t, "Platform", updated.Department)
	assert.Equal(t, "Ayu", updated.Name)
}

func TestToggleStatus(t *testing.T) {
	svc, _, _ := newTestService()
	created, err := svc.Register(context.Background(), staff.RegisterStaffRequest{
		Name: "Ayu", Department: "Engineering",
	})
	require.NoError(t, err)

	toggled, err := svc.ToggleStatus(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, staff.StatusAbsent, toggled.Status)

	toggled, err = svc.ToggleStatus(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, staff.StatusPresent, toggled.Status)
}

func TestRemove_WithHistorySoftRemoves(t *testing.T) {
	svc, staffRepo, eventRepo := newTestService()
	created, err := svc.Register(context.Background(), staff.RegisterStaffRequest{
		Name: "Ayu", Department: "Engineering",
	})
	require.NoError(t, err)
	eventRepo.history[created.ID] = true

	require.NoError(t, svc.Remove(context.Background(), created.ID))

	// Row persists with the removed flag; lookups stop finding it.
	stored := staffRepo.members[created.ID]
	assert.True(t, stored.Removed)
	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestRemove_WithoutHistoryDeletes(t *testing.T) {
	svc, staffRepo, _ := newTestService()
	created, err := svc.Register(context.Background(), staff.RegisterStaffRequest{
		Name: "Ayu", Department: "Engineering",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), created.ID))

	_, ok := staffRepo.members[created.ID]
	assert.False(t, ok)
}

func TestRemove_UnknownStaff(t *testing.T) {
	svc, _, _ := newTestService()
	assert.ErrorIs(t, svc.Remove(context.Background(), "ghost"), staff.ErrStaffNotFound)
}
