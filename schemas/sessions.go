package schemas

import "time"

// SessionStaleAfter is how long a session may miss heartbeats (sent every
// 30s) before the rendered set stops showing it. Stored documents are never
// evicted; only the view filters them.
const SessionStaleAfter = 90 * time.Second

// AdminSession is one open admin dashboard tab. The id is a random session
// token and each tab writes only its own document.
type AdminSession struct {
	ID         string    `json:"id" bson:"_id"`
	Browser    string    `json:"browser" bson:"browser"`
	LoginTime  time.Time `json:"loginTime" bson:"login_time"`
	LastActive time.Time `json:"lastActive" bson:"last_active"`
}

// LiveSessions filters out sessions whose last heartbeat is older than the
// staleness window, covering tabs that crashed without a close beacon.
func LiveSessions(sessions []AdminSession, now time.Time) []AdminSession {
	live := make([]AdminSession, 0, len(sessions))
	for _, s := range sessions {
		if now.Sub(s.LastActive) <= SessionStaleAfter {
			live = append(live, s)
		}
	}
	return live
}
