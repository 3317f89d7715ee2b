package domain

// Urgency is the two-valued flag the original data model encodes as the
// literal strings "on" and "off". The domain keeps a native bool and converts
// at the storage and transport boundaries.
type Urgency string

const (
	UrgencyOn  Urgency = "on"
	UrgencyOff Urgency = "off"
)

// UrgencyFromBool maps a native bool to the wire enum.
func UrgencyFromBool(b bool) Urgency {
	if b {
		return UrgencyOn
	}
	return UrgencyOff
}

// Bool reports whether the flag is set. Anything other than the literal "on"
// counts as off.
func (u Urgency) Bool() bool {
	return u == UrgencyOn
}

// Task is a single to-do item. CategoryName is a denormalized copy of a
// category's name at write time, not a reference; it is never validated
// against the categories collection. CreatedBy holds the session user of the
// most recent write: edits reassign ownership to the editor.
type Task struct {
	ID              string
	CategoryName    string
	TaskName        string
	TaskDescription string
	IsUrgent        bool
	DueDate         string // free-form, unvalidated
	CreatedBy       string
}
