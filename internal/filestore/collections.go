package filestore

import (
	"errors"
	"time"

	"cleansuite/internal/models"
)

var ErrNoSuchWorker = errors.New("worker not found")

// Notifications returns the persisted notification list, most recent first.
func (s *Store) Notifications() ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.Load(NotificationsFile, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// AddNotification assigns an identifier and prepends the notification to
// the persisted list.
func (s *Store) AddNotification(n models.Notification) (models.Notification, error) {
	now := time.Now()
	n.ID = models.NewEntityID("notif", now)
	n.CreatedAt = now
	if n.Status == "" {
		n.Status = "sent"
	}

	err := Update(s, NotificationsFile, func(items []models.Notification) ([]models.Notification, error) {
		return append([]models.Notification{n}, items...), nil
	})
	if err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

// Workers returns all credential records, passwords included. Callers
// serving clients must sanitize.
func (s *Store) Workers() ([]models.Worker, error) {
	var workers []models.Worker
	if err := s.Load(WorkersFile, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

// AddWorker assigns an identifier when absent and appends the record.
func (s *Store) AddWorker(w models.Worker) (models.Worker, error) {
	if w.ID == "" {
		w.ID = models.NewEntityID("worker", time.Now())
	}
	err := Update(s, WorkersFile, func(items []models.Worker) ([]models.Worker, error) {
		return append(items, w), nil
	})
	if err != nil {
		return models.Worker{}, err
	}
	return w, nil
}

// FindWorkerByCredentials returns the worker matching username and
// password, ErrNoSuchWorker otherwise.
func (s *Store) FindWorkerByCredentials(username, password string) (models.Worker, error) {
	workers, err := s.Workers()
	if err != nil {
		return models.Worker{}, err
	}
	for _, w := range workers {
		if w.Username == username && w.Password == password {
			return w, nil
		}
	}
	return models.Worker{}, ErrNoSuchWorker
}

// WorkerPatch is a partial worker update applied by id.
type WorkerPatch struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	StaffID  *string `json:"staffId"`
	Name     *string `json:"name"`
}

// UpdateWorker shallow-merges the patch onto the worker with the given id.
// Matching no record is not an error.
func (s *Store) UpdateWorker(id string, patch WorkerPatch) error {
	return Update(s, WorkersFile, func(items []models.Worker) ([]models.Worker, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if patch.Username != nil {
				items[i].Username = *patch.Username
			}
			if patch.Password != nil {
				items[i].Password = *patch.Password
			}
			if patch.StaffID != nil {
				items[i].StaffID = *patch.StaffID
			}
			if patch.Name != nil {
				items[i].Name = *patch.Name
			}
		}
		return items, nil
	})
}

// ResetWorkerPassword replaces the password of every worker linked to the
// staff id.
func (s *Store) ResetWorkerPassword(staffID, newPassword string) error {
	return Update(s, WorkersFile, func(items []models.Worker) ([]models.Worker, error) {
		for i := range items {
			if items[i].StaffID == staffID {
				items[i].Password = newPassword
			}
		}
		return items, nil
	})
}

// DeleteWorkerByStaffID removes every worker linked to the staff id.
func (s *Store) DeleteWorkerByStaffID(staffID string) error {
	return Update(s, WorkersFile, func(items []models.Worker) ([]models.Worker, error) {
		kept := items[:0]
		for _, w := range items {
			if w.StaffID != staffID {
				kept = append(kept, w)
			}
		}
		return kept, nil
	})
}
