package ws

import (
	"time"

	"github.com/HerbHall/authdeck/internal/theme/transition"
)

// MessageType discriminates WebSocket messages.
type MessageType string

const (
	MessageSnapshot MessageType = "appearance.snapshot"
	MessageTheme    MessageType = "appearance.theme"
	MessageLayout   MessageType = "appearance.layout"
	MessageReveal   MessageType = "appearance.reveal"
)

// Message is the envelope for all WebSocket messages.
type Message struct {
	Type      MessageType `json:"type"`
	Profile   string      `json:"profile"`
	Timestamp time.Time   `json:"timestamp"`
	Data      any         `json:"data"`
}

// RevealData is the payload for appearance.reveal messages. The client
// animates a circular clip from Origin out to Radius over DurationMS.
type RevealData struct {
	Seq        uint64           `json:"seq"`
	Origin     transition.Point `json:"origin"`
	Radius     float64          `json:"radius"`
	DurationMS int64            `json:"duration_ms"`
}

func revealData(r transition.Reveal) RevealData {
	return RevealData{
		Seq:        r.Seq,
		Origin:     r.Origin,
		Radius:     r.Radius,
		DurationMS: r.Duration.Milliseconds(),
	}
}
