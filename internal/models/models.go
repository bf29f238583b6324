package models

import (
	"fmt"
	"time"
)

// Service is a cleaning service offered to customers.
type Service struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Active      bool    `json:"active"`
}

// Staff is a member of the cleaning crew.
type Staff struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Task is an internal to-do item for the admin portal.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	DueDate     string    `json:"dueDate,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Worker is a login credential record linked to a staff member.
// The password is stored as supplied and must never be returned to clients.
type Worker struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	StaffID  string `json:"staffId,omitempty"`
	Name     string `json:"name,omitempty"`
}

// Sanitized returns a copy of the worker with the password removed.
func (w Worker) Sanitized() Worker {
	w.Password = ""
	return w
}

// Notification is a message shown in the admin portal. Persisted
// notifications live in the JSON store; synthetic system alerts are computed
// per read and never stored.
type Notification struct {
	ID            string    `json:"id"`
	Type          string    `json:"type,omitempty"`
	Title         string    `json:"title"`
	Message       string    `json:"message,omitempty"`
	Recipient     string    `json:"recipient,omitempty"`
	RecipientType string    `json:"recipientType,omitempty"`
	Priority      string    `json:"priority,omitempty"`
	Status        string    `json:"status,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewEntityID returns a time-derived identifier with a collection prefix,
// e.g. "service-1700000000000".
func NewEntityID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
}
