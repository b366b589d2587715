package models

import "time"

// DailyRewardInfo is the sign-in state returned by the reward info
// endpoint. It doubles as the claim preflight: IsSigned means today's
// reward was already claimed.
type DailyRewardInfo struct {
	IsSigned     bool    `json:"is_sign"`
	ClaimedCount FlexInt `json:"total_sign_day"`
}

// DailyReward is one reward of the current month's sign-in calendar.
type DailyReward struct {
	Name  string  `json:"name"`
	Count FlexInt `json:"cnt"`
	Icon  string  `json:"icon"`
}

// ClaimedReward is one entry of the page-numbered claim history feed.
type ClaimedReward struct {
	ID        FlexInt `json:"id"`
	Name      string  `json:"name"`
	Count     FlexInt `json:"cnt"`
	CreatedAt Time    `json:"created_at"`
}

// EntryID returns the claim id.
func (r ClaimedReward) EntryID() int64 { return r.ID.Int64() }

// EntryTime returns the claim timestamp.
func (r ClaimedReward) EntryTime() time.Time { return r.CreatedAt.Time }
