package domain

import "time"

// InviteStatus derived status of a client invite
type InviteStatus string

const (
	InviteActive  InviteStatus = "active"
	InviteUsed    InviteStatus = "used"
	InviteExpired InviteStatus = "expired"
)

// ClientInvite одноразовый код-приглашение на страницу записи профессионала.
// Статус не хранится, а выводится из used_at и expires_at.
type ClientInvite struct {
	ID             int64
	Code           string
	ProfessionalID int64
	ClientName     *string
	ClientEmail    *string
	ExpiresAt      time.Time
	UsedAt         *time.Time

	CreatedAt time.Time
}

// StatusAt returns the derived invite status at the given moment
func (i *ClientInvite) StatusAt(now time.Time) InviteStatus {
	if i.UsedAt != nil {
		return InviteUsed
	}
	if i.ExpiresAt.Before(now) {
		return InviteExpired
	}
	return InviteActive
}

// IsRedeemableAt returns true if the invite can still be used at the given moment
func (i *ClientInvite) IsRedeemableAt(now time.Time) bool {
	return i.StatusAt(now) == InviteActive
}
