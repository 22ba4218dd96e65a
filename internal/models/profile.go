package models

import "time"

// UserProfile is the account profile as the server reports it.
type UserProfile struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	Name        string            `json:"name"`
	Preferences map[string]string `json:"preferences,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// ProfileUpdate carries a partial profile update. Nil fields stay untouched.
type ProfileUpdate struct {
	Name        *string           `json:"name,omitempty"`
	Preferences map[string]string `json:"preferences,omitempty"`
}

// Apply writes the non-nil update fields onto the profile.
func (u ProfileUpdate) Apply(p *UserProfile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Preferences != nil {
		if p.Preferences == nil {
			p.Preferences = make(map[string]string, len(u.Preferences))
		}
		for k, v := range u.Preferences {
			p.Preferences[k] = v
		}
	}
}
