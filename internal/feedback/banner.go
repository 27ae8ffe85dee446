package feedback

import "time"

const DefaultMessageTTL = 3000 * time.Millisecond

// Banner is the most recent feedback message and the instant it stops being
// shown. Replacing the banner replaces the deadline, so an older message can
// never clear a newer one.
type Banner struct {
	Text      string
	ExpiresAt time.Time
}

func NewBanner(text string, now time.Time, ttl time.Duration) Banner {
	if ttl <= 0 {
		ttl = DefaultMessageTTL
	}
	return Banner{Text: text, ExpiresAt: now.Add(ttl)}
}

func (b Banner) Active(now time.Time) bool {
	return b.Text != "" && now.Before(b.ExpiresAt)
}

// Visible returns the text while active and "" afterwards.
func (b Banner) Visible(now time.Time) string {
	if !b.Active(now) {
		return ""
	}
	return b.Text
}
