package schemas

import (
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Application is a care request submitted through the public form. The same
// shape lives in both the active and the archived collection; ArchivedAt is
// set only on archived documents.
type Application struct {
	ID            bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string        `json:"name" bson:"name"`
	Phone         string        `json:"phone" bson:"phone"`
	Address       string        `json:"address" bson:"address"`
	DetailAddress string        `json:"detail_address" bson:"detail_address"`
	MattressType  string        `json:"mattress_type" bson:"mattress_type"`
	MattressAge   string        `json:"mattress_age" bson:"mattress_age"`
	Message       string        `json:"message" bson:"message"`
	PreferredDate string        `json:"preferred_date" bson:"preferred_date"`
	PreferredTime string        `json:"preferred_time" bson:"preferred_time"`
	Memo          string        `json:"memo" bson:"memo"`
	Status        string        `json:"status" bson:"status"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	ArchivedAt    *time.Time    `json:"archived_at,omitempty" bson:"archived_at,omitempty"`
}

// IsConfirmed reports whether an application counts as "contacted/confirmed":
// both schedule fields set and not yet completed. This is the single
// definition used everywhere the derived state is shown or filtered.
func IsConfirmed(app *Application) bool {
	return app.PreferredDate != "" && app.PreferredTime != "" && app.Status != StatusCompleted
}

// ApplicationPatch is the partial-update body for PATCH /applications/{id}.
// Pointer fields distinguish "not sent" from "set to empty".
type ApplicationPatch struct {
	Status        *string `json:"status"`
	PreferredDate *string `json:"preferred_date"`
	PreferredTime *string `json:"preferred_time"`
	Memo          *string `json:"memo"`
}

// Fields builds the update document. Setting status to "cancelled" is
// rewritten into status=pending with both schedule fields cleared;
// "cancelled" is never persisted. The rewrite is applied last so it clears
// the schedule regardless of what else the request carried.
func (p ApplicationPatch) Fields() map[string]any {
	fields := map[string]any{}

	if p.PreferredDate != nil {
		fields["preferred_date"] = *p.PreferredDate
	}
	if p.PreferredTime != nil {
		fields["preferred_time"] = *p.PreferredTime
	}
	if p.Memo != nil {
		fields["memo"] = *p.Memo
	}

	if p.Status != nil {
		if *p.Status == StatusCancelled {
			fields["status"] = StatusPending
			fields["preferred_date"] = ""
			fields["preferred_time"] = ""
		} else {
			fields["status"] = *p.Status
		}
	}

	return fields
}

const (
	SortByCreated = "created"
	SortByName    = "name"
	SortByAddress = "address"
)

// SortApplications orders the list for display: completed applications always
// come after every non-completed one, whatever the requested key. Within each
// group the key applies — creation time descending by default, name/address
// lexicographic ascending.
func SortApplications(apps []Application, key string) {
	sort.SliceStable(apps, func(i, j int) bool {
		iDone := apps[i].Status == StatusCompleted
		jDone := apps[j].Status == StatusCompleted
		if iDone != jDone {
			return !iDone
		}

		switch key {
		case SortByName:
			return apps[i].Name < apps[j].Name
		case SortByAddress:
			return apps[i].Address < apps[j].Address
		default:
			return apps[i].CreatedAt.After(apps[j].CreatedAt)
		}
	})
}

// ApplicationListQuery mirrors the admin list's client-side filters.
type ApplicationListQuery struct {
	Search        string
	From          string
	To            string
	ConfirmedOnly bool
}

// FilterApplications applies the text search, created-at date range and
// confirmed-only filters on an already-fetched list.
func FilterApplications(apps []Application, q ApplicationListQuery) []Application {
	out := make([]Application, 0, len(apps))
	for i := range apps {
		app := apps[i]
		if q.ConfirmedOnly && !IsConfirmed(&app) {
			continue
		}
		if q.Search != "" && !matchesSearch(&app, q.Search) {
			continue
		}
		day := app.CreatedAt.Format("2006-01-02")
		if q.From != "" && day < q.From {
			continue
		}
		if q.To != "" && day > q.To {
			continue
		}
		out = append(out, app)
	}
	return out
}

func matchesSearch(app *Application, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{app.Name, app.Phone, app.Address} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
