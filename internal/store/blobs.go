package store

// Snapshot keys. Each entity collection persists under its own key,
// written through after every mutation, last write wins.
const (
	KeyUser          = "user"
	KeyHealth        = "health"
	KeyMeals         = "meals"
	KeySessions      = "sessions"
	KeyPlans         = "plans"
	KeyRecords       = "records"
	KeyActiveSession = "active_session"
)

// Blobs is the key-value snapshot backend. Load returns nil bytes and
// a nil error when the key has never been written.
type Blobs interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}
