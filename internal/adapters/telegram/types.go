// Package telegram implements the Bot API side of the relay: decoding
// webhook updates into events and sending replies and relayed messages back.
package telegram

import "relaybot/internal/domain"

// Update is the subset of a Bot API update the relay cares about.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int64       `json:"message_id"`
	From      domain.User `json:"from"`
	Chat      Chat        `json:"chat"`
	Text      string      `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}
