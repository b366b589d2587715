package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mihoyo-tools/genshin-stats-client/pkg/models"
	"github.com/mihoyo-tools/genshin-stats-client/pkg/paginator"
)

// RewardInfo returns the current sign-in state: whether today's
// reward is claimed and how many rewards were claimed this month.
func (c *Client) RewardInfo(ctx context.Context) (*models.DailyRewardInfo, error) {
	data, err := c.requestReward(ctx, "info", http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	var info models.DailyRewardInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("decode reward info: %w", err)
	}
	return &info, nil
}

// MonthlyRewards returns the sign-in reward calendar for the current
// month.
func (c *Client) MonthlyRewards(ctx context.Context) ([]models.DailyReward, error) {
	data, err := c.requestReward(ctx, "home", http.MethodGet, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Awards []models.DailyReward `json:"awards"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode monthly rewards: %w", err)
	}
	return out.Awards, nil
}

// ClaimDailyReward signs in and claims today's reward. It preflights
// the sign-in state and returns nil without claiming when today's
// reward was already taken.
func (c *Client) ClaimDailyReward(ctx context.Context) (*models.DailyReward, error) {
	info, err := c.RewardInfo(ctx)
	if err != nil {
		return nil, err
	}
	if info.IsSigned {
		return nil, nil
	}

	if _, err := c.requestReward(ctx, "sign", http.MethodPost, nil); err != nil {
		return nil, err
	}

	rewards, err := c.MonthlyRewards(ctx)
	if err != nil {
		return nil, err
	}

	// ClaimedCount is the pre-claim tally, which is exactly the
	// zero-based index of the reward just claimed.
	idx := int(info.ClaimedCount.Int64())
	if idx < 0 || idx >= len(rewards) {
		return nil, fmt.Errorf("claimed reward index %d out of calendar range %d", idx, len(rewards))
	}
	return &rewards[idx], nil
}

// ClaimedRewards returns a lazy paginator over the claim history,
// newest first. limit <= 0 means unbounded.
func (c *Client) ClaimedRewards(limit int) *paginator.Paged[models.ClaimedReward] {
	fetch := func(ctx context.Context, page int) ([]models.ClaimedReward, error) {
		params := url.Values{}
		params.Set("current_page", strconv.Itoa(page))

		data, err := c.requestReward(ctx, "award", http.MethodGet, params)
		if err != nil {
			return nil, err
		}

		var out struct {
			List []models.ClaimedReward `json:"list"`
		}
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode claimed rewards: %w", err)
		}
		return out.List, nil
	}
	return paginator.NewPaged(fetch, rewardPageSize, limit)
}

// RedeemCode redeems a gift code for one account.
func (c *Client) RedeemCode(ctx context.Context, code string, uid int64) error {
	if len(c.cfg.Cookies) == 0 {
		return ErrNoCookies
	}

	server, err := recognizeServer(uid)
	if err != nil {
		return err
	}

	params := url.Values{}
	params.Set("uid", strconv.FormatInt(uid, 10))
	params.Set("region", server)
	params.Set("cdkey", code)
	params.Set("game_biz", "hk4e_global")
	params.Set("lang", shortLangCode(c.cfg.Lang))

	_, err = c.request(ctx, familyRedeem, http.MethodGet, c.routes.Redeem+"webExchangeCdkey", params, nil, nil)
	return err
}

// RedeemCodeForAll redeems a gift code for every eligible bound
// account (redemption requires adventure rank 10). Submissions are
// strictly sequential with a fixed delay between them; the remote
// rate limits redemption and parallel submission would trip it.
// Returns the uids that were redeemed successfully.
func (c *Client) RedeemCodeForAll(ctx context.Context, code string) ([]int64, error) {
	accounts, err := c.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	var redeemed []int64
	for _, account := range accounts {
		if account.Level.Int64() < 10 {
			continue
		}
		if err := c.pacer.Wait(ctx); err != nil {
			return redeemed, err
		}
		if err := c.RedeemCode(ctx, code, account.UID.Int64()); err != nil {
			return redeemed, fmt.Errorf("redeem for uid %d: %w", account.UID.Int64(), err)
		}
		redeemed = append(redeemed, account.UID.Int64())
	}
	return redeemed, nil
}
