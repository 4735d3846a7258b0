package entity

import "time"

// Identity is what the identity provider vouches for after verifying a token.
type Identity struct {
	UID   string
	Email string

	// AuthTime is when the user last entered credentials.
	AuthTime time.Time
}

// UserProfile is the editable account record kept in both profile stores,
// keyed by UID. Email is owned by the identity provider.
type UserProfile struct {
	UID         string    `json:"uid" firestore:"uid"`
	Email       string    `json:"email" firestore:"email"`
	FullName    string    `json:"fullName" firestore:"fullName"`
	PhoneNumber string    `json:"phoneNumber" firestore:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// NewPlaceholderProfile is served when neither store holds a record.
func NewPlaceholderProfile(identity Identity) *UserProfile {
	return &UserProfile{
		UID:   identity.UID,
		Email: identity.Email,
	}
}

// Clone returns a copy safe to hand out of a session.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	cp := *p

	return &cp
}

// ProfileUpdate carries the fields a user may change. Nil fields are left alone.
type ProfileUpdate struct {
	FullName    *string
	PhoneNumber *string
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.FullName == nil && u.PhoneNumber == nil
}

// Merge returns a copy of p with the update applied and UpdatedAt stamped.
func (p *UserProfile) Merge(u ProfileUpdate, now time.Time) *UserProfile {
	merged := p.Clone()
	if u.FullName != nil {
		merged.FullName = *u.FullName
	}
	if u.PhoneNumber != nil {
		merged.PhoneNumber = *u.PhoneNumber
	}
	if merged.CreatedAt.IsZero() {
		merged.CreatedAt = now
	}
	merged.UpdatedAt = now

	return merged
}
