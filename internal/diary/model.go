// Package diary owns the diary entry collection: CRUD, keyword search,
// and per-emotion filtering, persisted as a single JSON snapshot.
package diary

import "time"

// Emotion classifies how the day felt.
type Emotion string

const (
	EmotionHappy  Emotion = "happy"
	EmotionSad    Emotion = "sad"
	EmotionNormal Emotion = "normal"
	EmotionFire   Emotion = "fire"
)

// Emotions lists the closed enumeration in display order.
var Emotions = []Emotion{EmotionHappy, EmotionSad, EmotionNormal, EmotionFire}

// Valid reports whether e is one of the known emotions. The store never
// produces anything else; readers tolerate unknown values from old
// snapshots by rendering a fallback.
func (e Emotion) Valid() bool {
	switch e {
	case EmotionHappy, EmotionSad, EmotionNormal, EmotionFire:
		return true
	}
	return false
}

// Entry is one dated diary record. Date is the creation day (YYYY-MM-DD),
// distinct from the full CreatedAt/UpdatedAt timestamps. OwnerID refers to
// an account id; ownership is set at creation and never reassigned.
type Entry struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"ownerId"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	Emotion   Emotion   `json:"emotion"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
