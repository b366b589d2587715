package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mihoyo-tools/genshin-stats-client/pkg/cache"
	"github.com/mihoyo-tools/genshin-stats-client/pkg/models"
)

// Accounts returns the game accounts bound to the cookie identity.
func (c *Client) Accounts(ctx context.Context) ([]models.Account, error) {
	data, err := c.requestRecord(ctx, "binding/api/getUserGameRolesByCookie", nil, nil, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		List []models.Account `json:"list"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	return out.List, nil
}

// SearchUsers looks up community users by nickname keyword.
func (c *Client) SearchUsers(ctx context.Context, keyword string) ([]models.SearchUser, error) {
	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("size", "20")
	params.Set("gids", "2")

	data, err := c.requestRecord(ctx, "community/apihub/wapi/search", params, nil, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Users []models.SearchUser `json:"users"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode user search: %w", err)
	}
	return out.Users, nil
}

// RecommendedUsers returns the currently active recommended users.
// A non-positive limit fetches the whole list.
func (c *Client) RecommendedUsers(ctx context.Context, limit int) ([]models.SearchUser, error) {
	if limit <= 0 {
		limit = 0x10000
	}

	params := url.Values{}
	params.Set("page_size", strconv.Itoa(limit))
	params.Set("offset", "0")
	params.Set("gids", "2")

	data, err := c.requestRecord(ctx, "community/user/wapi/recommendActive", params, nil, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		List []struct {
			User models.SearchUser `json:"user"`
		} `json:"list"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode recommended users: %w", err)
	}

	users := make([]models.SearchUser, len(out.List))
	for i, item := range out.List {
		users[i] = item.User
	}
	return users, nil
}

// SetVisibility toggles whether the cookie identity's game record is
// publicly visible.
func (c *Client) SetVisibility(ctx context.Context, public bool) error {
	body := map[string]any{
		"is_public": public,
		"game_id":   2,
	}
	_, err := c.requestRecord(ctx, "game_record/genshin/wapi/publishGameRecord", nil, body, nil)
	return err
}

// RecordCard returns a user's public record card. A zero uid means
// the cookie identity's own card.
func (c *Client) RecordCard(ctx context.Context, communityUID int64) (*models.RecordCard, error) {
	if communityUID == 0 {
		communityUID = c.AccountID()
	}

	params := url.Values{}
	params.Set("uid", strconv.FormatInt(communityUID, 10))
	params.Set("gids", "2")

	data, err := c.requestRecord(ctx, "game_record/card/wapi/getGameRecordCard", params, nil, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		List []models.RecordCard `json:"list"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode record card: %w", err)
	}
	if len(out.List) == 0 {
		return nil, ErrDataNotPublic
	}
	return &out.List[0], nil
}

// statsIndex fetches the cached stats index for one account.
func (c *Client) statsIndex(ctx context.Context, uid int64) (json.RawMessage, error) {
	server, err := recognizeServer(uid)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("server", server)
	params.Set("role_id", strconv.FormatInt(uid, 10))

	return c.requestRecord(ctx, "game_record/genshin/api/index", params, nil,
		cache.UserStatsKey{UID: uid, Lang: c.cfg.Lang})
}

// PartialUserStats returns a user's stats without the full character
// roster. Session cached per uid and language.
func (c *Client) PartialUserStats(ctx context.Context, uid int64) (*models.PartialUserStats, error) {
	data, err := c.statsIndex(ctx, uid)
	if err != nil {
		return nil, err
	}

	var stats models.PartialUserStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("decode user stats: %w", err)
	}
	return &stats, nil
}

// UserStats returns a user's stats including the full character
// roster from the characters endpoint.
func (c *Client) UserStats(ctx context.Context, uid int64) (*models.UserStats, error) {
	partial, err := c.PartialUserStats(ctx, uid)
	if err != nil {
		return nil, err
	}

	server, err := recognizeServer(uid)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(partial.Characters))
	for i, char := range partial.Characters {
		ids[i] = char.ID.Int64()
	}
	body := map[string]any{
		"character_ids": ids,
		"role_id":       uid,
		"server":        server,
	}

	data, err := c.requestRecord(ctx, "game_record/genshin/api/character", nil, body,
		cache.CharactersKey{UID: uid, Lang: c.cfg.Lang})
	if err != nil {
		return nil, err
	}

	var out struct {
		Avatars []models.Character `json:"avatars"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode characters: %w", err)
	}

	stats := &models.UserStats{PartialUserStats: *partial}
	stats.Characters = out.Avatars
	return stats, nil
}

// SpiralAbyss returns a user's spiral abyss season. Session cached
// per uid, schedule and language.
func (c *Client) SpiralAbyss(ctx context.Context, uid int64, previous bool) (*models.SpiralAbyss, error) {
	server, err := recognizeServer(uid)
	if err != nil {
		return nil, err
	}

	scheduleType := 1
	if previous {
		scheduleType = 2
	}

	params := url.Values{}
	params.Set("server", server)
	params.Set("role_id", strconv.FormatInt(uid, 10))
	params.Set("schedule_type", strconv.Itoa(scheduleType))

	data, err := c.requestRecord(ctx, "game_record/genshin/api/spiralAbyss", params, nil,
		cache.SpiralAbyssKey{UID: uid, ScheduleType: scheduleType, Lang: c.cfg.Lang})
	if err != nil {
		return nil, err
	}

	var abyss models.SpiralAbyss
	if err := json.Unmarshal(data, &abyss); err != nil {
		return nil, fmt.Errorf("decode spiral abyss: %w", err)
	}
	return &abyss, nil
}
