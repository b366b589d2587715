package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mihoyo-tools/genshin-stats-client/pkg/cache"
	"github.com/mihoyo-tools/genshin-stats-client/pkg/models"
	"github.com/mihoyo-tools/genshin-stats-client/pkg/paginator"
)

// HistoryOptions configure a history paginator. The zero value means
// unbounded, client language, configured authkey, no cutoff.
type HistoryOptions struct {
	// Limit is the maximum number of items to produce (0 = unbounded).
	Limit int

	// StopID is an exclusive lower id cutoff; items at or below it
	// are never produced.
	StopID int64

	// Lang overrides the client language for this history.
	Lang string

	// AuthKey overrides the configured authkey for this history.
	AuthKey string
}

// BannerTypes returns the banner type catalog keyed by banner id.
// Permanently cached per language: across one client the remote is
// asked at most once per language, regardless of other parameters.
func (c *Client) BannerTypes(ctx context.Context, opts HistoryOptions) (map[int]string, error) {
	if _, err := c.authKey(opts.AuthKey); err != nil {
		return nil, err
	}

	lang := c.cfg.Lang
	if opts.Lang != "" {
		lang = opts.Lang
	}

	data, err := c.cache.GetOrCompute(ctx, cache.BannerTypesKey{Lang: lang},
		func(ctx context.Context) (json.RawMessage, error) {
			return c.requestGachaInfo(ctx, "getConfigList", nil, opts.AuthKey, opts.Lang)
		})
	if err != nil {
		return nil, err
	}

	var out struct {
		List []models.BannerTypeName `json:"gacha_type_list"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode banner types: %w", err)
	}

	types := make(map[int]string, len(out.List))
	for _, entry := range out.List {
		types[int(entry.Key.Int64())] = entry.Name
	}
	return types, nil
}

// BannerDetails returns the static description of one banner.
func (c *Client) BannerDetails(ctx context.Context, bannerID string) (*models.BannerDetails, error) {
	lang := c.cfg.Lang
	rawURL := fmt.Sprintf("%shk4e/gacha_info/os_asia/%s/%s.json", c.routes.Webstatic, bannerID, lang)

	data, err := c.requestWebstatic(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	var details models.BannerDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, fmt.Errorf("decode banner details: %w", err)
	}
	return &details, nil
}

// wishPage fetches one wish history page for a banner type.
func (c *Client) wishPage(ctx context.Context, bannerType int, opts HistoryOptions, endID int64) ([]models.Wish, error) {
	params := url.Values{}
	params.Set("gacha_type", strconv.Itoa(bannerType))
	params.Set("size", strconv.Itoa(wishPageSize))
	params.Set("end_id", strconv.FormatInt(endID, 10))

	data, err := c.requestGachaInfo(ctx, "getGachaLog", params, opts.AuthKey, opts.Lang)
	if err != nil {
		return nil, err
	}

	var out struct {
		List []models.Wish `json:"list"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode wish history: %w", err)
	}
	return out.List, nil
}

// WishHistory returns a lazy paginator over one banner's wish
// history, newest first. The paginator is single-consumer and
// forward-only; restart by constructing a new one.
func (c *Client) WishHistory(bannerType int, opts HistoryOptions) *paginator.Cursor[models.Wish] {
	fetch := func(ctx context.Context, endID int64) ([]models.Wish, error) {
		return c.wishPage(ctx, bannerType, opts, endID)
	}
	return paginator.NewCursor(fetch, wishPageSize, paginator.Options{
		Limit:  opts.Limit,
		StopID: opts.StopID,
	})
}

// MergedWishHistory returns a lazy paginator over all banners at
// once, merged into one globally time-ordered sequence, newest
// first. Banner priority for timestamp ties follows models.Banners.
func (c *Client) MergedWishHistory(opts HistoryOptions) *paginator.Merged[models.Wish] {
	cursors := make([]*paginator.Cursor[models.Wish], len(models.Banners))
	for i, banner := range models.Banners {
		bannerType := banner
		fetch := func(ctx context.Context, endID int64) ([]models.Wish, error) {
			return c.wishPage(ctx, bannerType, opts, endID)
		}
		cursors[i] = paginator.NewCursor(fetch, wishPageSize, paginator.Options{
			StopID: opts.StopID,
		})
	}
	return paginator.NewMerged(cursors, paginator.Options{
		Limit:  opts.Limit,
		StopID: opts.StopID,
	})
}
