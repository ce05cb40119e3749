package whatsapp

import "unicode/utf8"

// MessageLimit is the hard character limit Twilio enforces on WhatsApp
// message bodies.
const MessageLimit = 1600

// Subject is prefixed to every summary before bounds enforcement.
const Subject = "📅 Weekly Calendar Summary"

const (
	// truncationReserve is cut off in addition to the overflow so the
	// marker always fits under the limit.
	truncationReserve = 50
	truncationMarker  = "\n\n... (message truncated)"
)

// Truncate bounds message to at most limit bytes.
//
// Messages at or under the limit are returned unchanged. Longer messages
// are cut to limit-50 and the truncation marker is appended. The cut is
// a plain byte-count slice with no word-boundary awareness, matching the
// channel's own character-count limit; it only backs up over a split
// UTF-8 sequence so the output stays valid.
//
// Truncate is total and idempotent: it never fails, and its result is
// always at most limit bytes long.
func Truncate(message string, limit int) string {
	if len(message) <= limit {
		return message
	}

	keep := limit - truncationReserve
	if keep < 0 {
		keep = 0
	}

	bounded := cutBytes(message, keep) + truncationMarker
	if len(bounded) > limit {
		// Degenerate limits smaller than the marker still satisfy the
		// length contract.
		bounded = cutBytes(bounded, limit)
	}
	return bounded
}

// cutBytes slices s to at most n bytes without splitting a UTF-8
// sequence.
func cutBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
