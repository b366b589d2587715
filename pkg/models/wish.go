package models

import "time"

// Banner type keys as paginated independently by the remote.
const (
	BannerNovice    = 100
	BannerStandard  = 200
	BannerCharacter = 301
	BannerWeapon    = 302
)

// Banners lists all banner types in merge priority order.
var Banners = []int{BannerNovice, BannerStandard, BannerCharacter, BannerWeapon}

// Wish is a single gacha pull from the wish history feed.
type Wish struct {
	UID        FlexInt `json:"uid"`
	ID         FlexInt `json:"id"`
	BannerType FlexInt `json:"gacha_type"`
	Name       string  `json:"name"`
	ItemType   string  `json:"item_type"`
	Rarity     FlexInt `json:"rank_type"`
	Time       Time    `json:"time"`
}

// EntryID returns the feed id used as the pagination cursor.
func (w Wish) EntryID() int64 { return w.ID.Int64() }

// EntryTime returns the pull timestamp.
func (w Wish) EntryTime() time.Time { return w.Time.Time }

// BannerTypeName is one entry of the banner type catalog.
type BannerTypeName struct {
	Key  FlexInt `json:"key"`
	Name string  `json:"name"`
}

// BannerDetails is the static description of a single banner.
type BannerDetails struct {
	Title      string  `json:"title"`
	BannerType FlexInt `json:"gacha_type"`
	ProbR5     string  `json:"r5_prob"`
	ProbR4     string  `json:"r4_prob"`
	DateRange  string  `json:"date_range"`
}
