// Package whatsapp delivers calendar summaries as WhatsApp messages
// through the Twilio REST API.
//
// Messages are bounded before sending: Twilio rejects WhatsApp bodies
// over 1600 characters, so Truncate cuts long summaries and appends a
// truncation marker. Dry-run mode echoes the bounded message to the
// console instead of sending it, with the same return contract as a real
// delivery.
//
// Prerequisites:
//  1. A Twilio account with the WhatsApp sandbox or an approved sender.
//  2. The recipient number joined to the sandbox (sandbox sessions
//     expire after 72 hours of inactivity).
//
// Example usage:
//
//	client, err := whatsapp.NewClient(sid, token, from, to, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := client.SendSummary(summary); err != nil {
//	    log.Fatal(err)
//	}
package whatsapp
