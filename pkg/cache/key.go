package cache

import "fmt"

// Key identifies one cached response. The set of implementations is
// closed: every cache domain gets its own variant so keys from
// different call sites cannot collide.
type Key interface {
	fmt.Stringer

	// sealed prevents implementations outside this package.
	sealed()
}

// BannerTypesKey caches the banner type catalog. Permanent policy:
// the key projects language only, every other call parameter is
// deliberately ignored.
type BannerTypesKey struct {
	Lang string
}

func (k BannerTypesKey) String() string { return "gstats:banner-types:lang=" + k.Lang }
func (BannerTypesKey) sealed()          {}

// TransactionReasonsKey caches the transaction reason dictionary.
// Permanent policy, language-only projection.
type TransactionReasonsKey struct {
	Lang string
}

func (k TransactionReasonsKey) String() string { return "gstats:transaction-reasons:lang=" + k.Lang }
func (TransactionReasonsKey) sealed()          {}

// UserStatsKey caches the user stats index for one account. Session
// policy.
type UserStatsKey struct {
	UID  int64
	Lang string
}

func (k UserStatsKey) String() string {
	return fmt.Sprintf("gstats:user:%d:lang=%s", k.UID, k.Lang)
}
func (UserStatsKey) sealed() {}

// CharactersKey caches the character roster for one account. Session
// policy.
type CharactersKey struct {
	UID  int64
	Lang string
}

func (k CharactersKey) String() string {
	return fmt.Sprintf("gstats:characters:%d:lang=%s", k.UID, k.Lang)
}
func (CharactersKey) sealed() {}

// SpiralAbyssKey caches a spiral abyss season for one account.
// Session policy; ScheduleType distinguishes current from previous.
type SpiralAbyssKey struct {
	UID          int64
	ScheduleType int
	Lang         string
}

func (k SpiralAbyssKey) String() string {
	return fmt.Sprintf("gstats:abyss:%d:schedule=%d:lang=%s", k.UID, k.ScheduleType, k.Lang)
}
func (SpiralAbyssKey) sealed() {}
