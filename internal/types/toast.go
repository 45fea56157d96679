package types

import "time"

// ToastLevel picks the accent color of a notification.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// Toast is a short-lived notification shown over the active view.
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// Expired reports whether the toast should no longer be shown.
func (t Toast) Expired(now time.Time) bool {
	return !t.Expires.After(now)
}
