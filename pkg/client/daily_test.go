package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/mihoyo-tools/genshin-stats-client/internal/testutil"
)

func TestRewardInfo(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.SetData("/info", `{"is_sign":true,"total_sign_day":7}`)

	c := newTestClient(t, mock, Config{Cookies: testCookies})

	info, err := c.RewardInfo(context.Background())
	if err != nil {
		t.Fatalf("RewardInfo failed: %v", err)
	}
	if !info.IsSigned {
		t.Error("Expected signed-in state")
	}
	if info.ClaimedCount.Int64() != 7 {
		t.Errorf("Expected 7 claimed rewards, got %d", info.ClaimedCount.Int64())
	}

	query := mock.GetLastQuery()
	if query.Get("act_id") != OverseasRoutes().ActID {
		t.Errorf("Unexpected act_id param: %q", query.Get("act_id"))
	}
	if query.Get("lang") != "en-us" {
		t.Errorf("Unexpected lang param: %q", query.Get("lang"))
	}
}

func TestClaimDailyReward_AlreadyClaimed(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.SetData("/info", `{"is_sign":true,"total_sign_day":7}`)

	c := newTestClient(t, mock, Config{Cookies: testCookies})

	reward, err := c.ClaimDailyReward(context.Background())
	if err != nil {
		t.Fatalf("ClaimDailyReward failed: %v", err)
	}
	if reward != nil {
		t.Errorf("Expected no reward when already claimed, got %+v", reward)
	}
	if count := mock.GetPathCount("/sign"); count != 0 {
		t.Errorf("Expected no sign-in call, got %d", count)
	}
}

func TestClaimDailyReward(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.SetData("/info", `{"is_sign":false,"total_sign_day":2}`)
	mock.SetData("/sign", `{}`)
	mock.SetData("/home", `{"awards":[
		{"name":"Primogem","cnt":20,"icon":""},
		{"name":"Mora","cnt":10000,"icon":""},
		{"name":"Fine Enhancement Ore","cnt":3,"icon":""}
	]}`)

	c := newTestClient(t, mock, Config{Cookies: testCookies})

	reward, err := c.ClaimDailyReward(context.Background())
	if err != nil {
		t.Fatalf("ClaimDailyReward failed: %v", err)
	}
	if reward == nil {
		t.Fatal("Expected a claimed reward")
	}
	// Two rewards claimed before means today's is the third calendar slot.
	if reward.Name != "Fine Enhancement Ore" || reward.Count.Int64() != 3 {
		t.Errorf("Unexpected reward: %+v", reward)
	}
	if count := mock.GetPathCount("/sign"); count != 1 {
		t.Errorf("Expected 1 sign-in call, got %d", count)
	}
}

func TestClaimedRewards(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	// Page 1 full, page 2 short: 13 claims in total.
	mock.SetHandler("/award", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("current_page"))
		list := "["
		start := (page - 1) * 10
		n := 0
		for i := start; i < 13 && n < 10; i++ {
			if n > 0 {
				list += ","
			}
			list += fmt.Sprintf(`{"id":%d,"name":"Primogem","cnt":20,"created_at":"2021-05-01 10:00:00"}`, 1000-i)
			n++
		}
		list += "]"
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write([]byte(testutil.Envelope(0, "OK", `{"list":`+list+`}`)))
	})

	c := newTestClient(t, mock, Config{Cookies: testCookies})

	claims, err := c.ClaimedRewards(0).Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(claims) != 13 {
		t.Fatalf("Expected 13 claims, got %d", len(claims))
	}
	if claims[0].EntryID() != 1000 || claims[12].EntryID() != 988 {
		t.Errorf("Unexpected claim ids: first %d, last %d", claims[0].EntryID(), claims[12].EntryID())
	}
	if count := mock.GetPathCount("/award"); count != 2 {
		t.Errorf("Expected 2 page fetches, got %d", count)
	}
}

func TestRedeemCode(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.SetData("/webExchangeCdkey", `{}`)

	c := newTestClient(t, mock, Config{Cookies: testCookies})

	if err := c.RedeemCode(context.Background(), "GENSHINGIFT", 710785423); err != nil {
		t.Fatalf("RedeemCode failed: %v", err)
	}

	query := mock.GetLastQuery()
	if query.Get("cdkey") != "GENSHINGIFT" {
		t.Errorf("Unexpected cdkey param: %q", query.Get("cdkey"))
	}
	if query.Get("uid") != "710785423" {
		t.Errorf("Unexpected uid param: %q", query.Get("uid"))
	}
	if query.Get("region") != "os_euro" {
		t.Errorf("Unexpected region param: %q", query.Get("region"))
	}
	if query.Get("game_biz") != "hk4e_global" {
		t.Errorf("Unexpected game_biz param: %q", query.Get("game_biz"))
	}
}

func TestRedeemCode_NoCookies(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	c := newTestClient(t, mock, Config{})

	err := c.RedeemCode(context.Background(), "GENSHINGIFT", 710785423)
	if !errors.Is(err, ErrNoCookies) {
		t.Fatalf("Expected ErrNoCookies, got %v", err)
	}
	if count := mock.GetRequestCount(); count != 0 {
		t.Errorf("Expected no network calls, got %d requests", count)
	}
}

func TestRedeemCodeForAll(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.SetData("/binding/api/getUserGameRolesByCookie", `{"list":[
		{"game_uid":"710785423","level":57,"region":"os_euro"},
		{"game_uid":"650000001","level":5,"region":"os_usa"},
		{"game_uid":"850000001","level":21,"region":"os_asia"}
	]}`)
	mock.SetData("/webExchangeCdkey", `{}`)

	c := newTestClient(t, mock, Config{Cookies: testCookies})
	c.SetPacerInterval(time.Millisecond)

	redeemed, err := c.RedeemCodeForAll(context.Background(), "GENSHINGIFT")
	if err != nil {
		t.Fatalf("RedeemCodeForAll failed: %v", err)
	}

	// Accounts below adventure rank 10 cannot redeem and are skipped.
	want := []int64{710785423, 850000001}
	if len(redeemed) != len(want) {
		t.Fatalf("Expected %v, got %v", want, redeemed)
	}
	for i := range want {
		if redeemed[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, redeemed)
		}
	}
	if count := mock.GetPathCount("/webExchangeCdkey"); count != 2 {
		t.Errorf("Expected 2 redemption calls, got %d", count)
	}
}

func TestRedeemCodeForAll_SequentialPacing(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	mock.SetData("/binding/api/getUserGameRolesByCookie", `{"list":[
		{"game_uid":"710785423","level":57,"region":"os_euro"},
		{"game_uid":"850000001","level":21,"region":"os_asia"}
	]}`)
	mock.SetData("/webExchangeCdkey", `{}`)

	c := newTestClient(t, mock, Config{Cookies: testCookies})
	c.SetPacerInterval(40 * time.Millisecond)

	start := time.Now()
	if _, err := c.RedeemCodeForAll(context.Background(), "GENSHINGIFT"); err != nil {
		t.Fatalf("RedeemCodeForAll failed: %v", err)
	}

	// Two submissions, one mandatory gap between them.
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("Expected at least one pacing interval, took %v", elapsed)
	}
}
