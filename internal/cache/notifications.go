package cache

import (
	"time"

	"github.com/google/uuid"

	"courierPortal/models"
)

// AddNotification appends a timestamped, role-scoped message.
func (s *State) AddNotification(message string, scope models.NotificationScope) models.Notification {
	n := models.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Scope:     scope,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
	return n
}

// NotificationsForRole returns notifications whose scope equals the role
// or equals all, most recent first.
func (s *State) NotificationsForRole(role models.Role) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Notification
	for i := len(s.notifications) - 1; i >= 0; i-- {
		n := s.notifications[i]
		if n.Scope == models.ScopeAll || string(n.Scope) == string(role) {
			out = append(out, n)
		}
	}
	return out
}
