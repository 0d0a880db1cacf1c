package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid view transition")
	ErrInvalidState      = errors.New("invalid state for this action")
)

type EntityKind string

const (
	KindMessage    EntityKind = "message"
	KindDevice     EntityKind = "device"
	KindWebhook    EntityKind = "webhook"
	KindCredential EntityKind = "credential"
)
