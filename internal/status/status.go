// Package status carries the transient message shown in the bottom bar.
package status

import "time"

// TTL is how long a message stays visible.
const TTL = 3 * time.Second

// Kind distinguishes informational messages from errors, which render
// differently.
type Kind int

const (
	Info Kind = iota
	Error
)

// Message is a one-line notice with a creation time. The zero value is
// an empty, already-expired message.
type Message struct {
	Text string
	Kind Kind
	At   time.Time
}

// New creates a message stamped at now.
func New(kind Kind, text string, now time.Time) Message {
	return Message{Text: text, Kind: kind, At: now}
}

// Expired reports whether the message should no longer be shown. A
// message created at T is still visible at exactly T+TTL.
func (m Message) Expired(now time.Time) bool {
	if m.Text == "" {
		return true
	}
	return now.Sub(m.At) > TTL
}
