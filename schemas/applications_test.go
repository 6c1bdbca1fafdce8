package schemas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestApplicationPatch_CancelledResetsSchedule(t *testing.T) {
	patch := ApplicationPatch{Status: strPtr(StatusCancelled)}

	fields := patch.Fields()

	assert.Equal(t, StatusPending, fields["status"])
	assert.Equal(t, "", fields["preferred_date"])
	assert.Equal(t, "", fields["preferred_time"])
}

func TestApplicationPatch_CancelledWinsOverSchedule(t *testing.T) {
	// Even a request that carries a schedule alongside the cancellation ends
	// up with the schedule cleared.
	patch := ApplicationPatch{
		Status:        strPtr(StatusCancelled),
		PreferredDate: strPtr("2026-09-01"),
		PreferredTime: strPtr("14:00"),
	}

	fields := patch.Fields()

	assert.Equal(t, StatusPending, fields["status"])
	assert.Equal(t, "", fields["preferred_date"])
	assert.Equal(t, "", fields["preferred_time"])
}

func TestApplicationPatch_OtherStatusesLeaveScheduleAlone(t *testing.T) {
	for _, status := range []string{StatusPending, StatusConfirmed, StatusCompleted} {
		patch := ApplicationPatch{Status: strPtr(status)}
		fields := patch.Fields()

		assert.Equal(t, status, fields["status"])
		assert.NotContains(t, fields, "preferred_date")
		assert.NotContains(t, fields, "preferred_time")
	}
}

func TestApplicationPatch_PartialFields(t *testing.T) {
	patch := ApplicationPatch{Memo: strPtr("call after 6pm")}
	fields := patch.Fields()

	assert.Equal(t, map[string]any{"memo": "call after 6pm"}, fields)

	patch = ApplicationPatch{PreferredDate: strPtr("2026-09-01"), PreferredTime: strPtr("10:00")}
	fields = patch.Fields()

	assert.Equal(t, map[string]any{"preferred_date": "2026-09-01", "preferred_time": "10:00"}, fields)
}

func TestIsConfirmed(t *testing.T) {
	app := Application{PreferredDate: "2026-09-01", PreferredTime: "10:00", Status: StatusPending}
	assert.True(t, IsConfirmed(&app))

	app.Status = StatusCompleted
	assert.False(t, IsConfirmed(&app))

	app.Status = StatusPending
	app.PreferredTime = ""
	assert.False(t, IsConfirmed(&app))
}

func sampleApps() []Application {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return []Application{
		{Name: "Choi", Address: "Busan", Status: StatusCompleted, CreatedAt: base.Add(72 * time.Hour)},
		{Name: "Ahn", Address: "Daegu", Status: StatusPending, CreatedAt: base},
		{Name: "Kim", Address: "Seoul", Status: StatusCompleted, CreatedAt: base.Add(24 * time.Hour)},
		{Name: "Park", Address: "Incheon", Status: StatusPending, CreatedAt: base.Add(48 * time.Hour)},
	}
}

func TestSortApplications_CompletedAlwaysLast(t *testing.T) {
	for _, key := range []string{"", SortByCreated, SortByName, SortByAddress} {
		apps := sampleApps()
		SortApplications(apps, key)

		seenCompleted := false
		for _, app := range apps {
			if app.Status == StatusCompleted {
				seenCompleted = true
			} else {
				assert.False(t, seenCompleted, "non-completed after completed with key %q", key)
			}
		}
	}
}

func TestSortApplications_Keys(t *testing.T) {
	apps := sampleApps()
	SortApplications(apps, "")
	// Default: creation time descending within each group.
	assert.Equal(t, "Park", apps[0].Name)
	assert.Equal(t, "Ahn", apps[1].Name)
	assert.Equal(t, "Choi", apps[2].Name)
	assert.Equal(t, "Kim", apps[3].Name)

	apps = sampleApps()
	SortApplications(apps, SortByName)
	assert.Equal(t, "Ahn", apps[0].Name)
	assert.Equal(t, "Park", apps[1].Name)
	assert.Equal(t, "Choi", apps[2].Name)
	assert.Equal(t, "Kim", apps[3].Name)

	apps = sampleApps()
	SortApplications(apps, SortByAddress)
	assert.Equal(t, "Daegu", apps[0].Address)
	assert.Equal(t, "Incheon", apps[1].Address)
	assert.Equal(t, "Busan", apps[2].Address)
	assert.Equal(t, "Seoul", apps[3].Address)
}

func TestFilterApplications(t *testing.T) {
	apps := []Application{
		{Name: "Kim", Phone: "010-1111-2222", Address: "Seoul", Status: StatusPending,
			PreferredDate: "2026-09-01", PreferredTime: "10:00",
			CreatedAt: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)},
		{Name: "Lee", Phone: "010-3333-4444", Address: "Busan", Status: StatusPending,
			CreatedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
	}

	got := FilterApplications(apps, ApplicationListQuery{Search: "kim"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Kim", got[0].Name)

	got = FilterApplications(apps, ApplicationListQuery{Search: "3333"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Lee", got[0].Name)

	got = FilterApplications(apps, ApplicationListQuery{ConfirmedOnly: true})
	assert.Len(t, got, 1)
	assert.Equal(t, "Kim", got[0].Name)

	got = FilterApplications(apps, ApplicationListQuery{From: "2026-08-15"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Lee", got[0].Name)

	got = FilterApplications(apps, ApplicationListQuery{To: "2026-08-15"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Kim", got[0].Name)
}
