package models

// Account is one game account bound to the logged-in community user.
type Account struct {
	GameBiz    string  `json:"game_biz"`
	Region     string  `json:"region"`
	UID        FlexInt `json:"game_uid"`
	Nickname   string  `json:"nickname"`
	Level      FlexInt `json:"level"`
	IsChosen   bool    `json:"is_chosen"`
	RegionName string  `json:"region_name"`
	IsOfficial bool    `json:"is_official"`
}

// SearchUser is a community user as returned by search and
// recommendation endpoints.
type SearchUser struct {
	UID          FlexInt `json:"uid"`
	Nickname     string  `json:"nickname"`
	Introduction string  `json:"introduce"`
	Gender       int     `json:"gender"`
	AvatarID     FlexInt `json:"avatar"`
	AvatarURL    string  `json:"avatar_url"`
}

// RecordCard is the public summary card of a user's game record.
type RecordCard struct {
	HasRole    bool             `json:"has_role"`
	GameID     FlexInt          `json:"game_id"`
	UID        FlexInt          `json:"game_role_id"`
	Nickname   string           `json:"nickname"`
	Region     string           `json:"region"`
	RegionName string           `json:"region_name"`
	Level      FlexInt          `json:"level"`
	Data       []RecordCardData `json:"data"`
}

// RecordCardData is one headline statistic on a record card.
type RecordCardData struct {
	Name  string `json:"name"`
	Type  int    `json:"type"`
	Value string `json:"value"`
}

// Stats is the statistics block of a user record.
type Stats struct {
	ActiveDays        FlexInt `json:"active_day_number"`
	Achievements      FlexInt `json:"achievement_number"`
	Characters        FlexInt `json:"avatar_number"`
	SpiralAbyss       string  `json:"spiral_abyss"`
	AnemoCulus        FlexInt `json:"anemoculus_number"`
	GeoCulus          FlexInt `json:"geoculus_number"`
	CommonChests      FlexInt `json:"common_chest_number"`
	ExquisiteChests   FlexInt `json:"exquisite_chest_number"`
	PreciousChests    FlexInt `json:"precious_chest_number"`
	LuxuriousChests   FlexInt `json:"luxurious_chest_number"`
	UnlockedWaypoints FlexInt `json:"way_point_number"`
	UnlockedDomains   FlexInt `json:"domain_number"`
}

// Character is one playable character summary.
type Character struct {
	ID       FlexInt `json:"id"`
	Name     string  `json:"name"`
	Element  string  `json:"element"`
	Rarity   FlexInt `json:"rarity"`
	Level    FlexInt `json:"level"`
	Fetter   FlexInt `json:"fetter"`
	Icon     string  `json:"icon"`

	Constellation FlexInt `json:"actived_constellation_num"`
}

// PartialUserStats is a user record without character equipment.
type PartialUserStats struct {
	Stats             Stats              `json:"stats"`
	Characters        []Character        `json:"avatars"`
	WorldExplorations []WorldExploration `json:"world_explorations"`
}

// WorldExploration is the exploration progress of one region.
type WorldExploration struct {
	ID                  FlexInt `json:"id"`
	Name                string  `json:"name"`
	Level               FlexInt `json:"level"`
	ExplorationProgress FlexInt `json:"exploration_percentage"`
	Icon                string  `json:"icon"`
}

// UserStats is a full user record including the character roster from
// the characters endpoint.
type UserStats struct {
	PartialUserStats
}

// SpiralAbyss is a spiral abyss season summary.
type SpiralAbyss struct {
	ScheduleID       FlexInt `json:"schedule_id"`
	StartTime        FlexInt `json:"start_time"`
	EndTime          FlexInt `json:"end_time"`
	TotalBattles     FlexInt `json:"total_battle_times"`
	TotalWins        FlexInt `json:"total_win_times"`
	MaxFloor         string  `json:"max_floor"`
	TotalStars       FlexInt `json:"total_star"`
	IsUnlocked       bool    `json:"is_unlock"`
}
