// Command wishlog dumps a wish history to stdout, newest first.
//
// By default every banner is merged into one globally time-ordered
// sequence; -banner restricts the dump to a single banner type.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"

	"github.com/mihoyo-tools/genshin-stats-client/pkg/cache"
	"github.com/mihoyo-tools/genshin-stats-client/pkg/client"
	"github.com/mihoyo-tools/genshin-stats-client/pkg/logging"
	"github.com/mihoyo-tools/genshin-stats-client/pkg/models"
	"github.com/mihoyo-tools/genshin-stats-client/pkg/paginator"
)

// envConfig holds configuration from environment variables. The
// authkey is the only required value.
type envConfig struct {
	AuthKey   string `env:"GSTATS_AUTHKEY"`
	Cookies   string `env:"GSTATS_COOKIES"`
	Lang      string `env:"GSTATS_LANG" envDefault:"en-us"`
	Chinese   bool   `env:"GSTATS_CHINESE"`
	RedisAddr string `env:"GSTATS_REDIS_ADDR"`
	LogLevel  string `env:"GSTATS_LOG_LEVEL" envDefault:"warn"`
	LogPretty bool   `env:"GSTATS_LOG_PRETTY" envDefault:"true"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wishlog: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		banner  = flag.Int("banner", 0, "restrict to one banner type (100, 200, 301, 302); 0 means all banners merged")
		limit   = flag.Int("limit", 0, "maximum number of wishes to dump; 0 means all")
		stopID  = flag.Int64("stop-id", 0, "stop before this wish id (exclusive), for incremental dumps")
		asJSON  = flag.Bool("json", false, "dump as JSON lines instead of a table")
		timeout = flag.Duration("timeout", 5*time.Minute, "overall timeout")
	)
	flag.Parse()

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	if cfg.AuthKey == "" {
		return errors.New("GSTATS_AUTHKEY is required")
	}

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var store cache.Store
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient, 0)
		logger.Info().Str("addr", cfg.RedisAddr).Msg("Using redis cache store")
	}

	var cookies map[string]string
	if cfg.Cookies != "" {
		parsed, err := client.ParseCookies(cfg.Cookies)
		if err != nil {
			return fmt.Errorf("parse GSTATS_COOKIES: %w", err)
		}
		cookies = parsed
	}

	c, err := client.New(client.Config{
		AuthKey: cfg.AuthKey,
		Cookies: cookies,
		Lang:    cfg.Lang,
		Chinese: cfg.Chinese,
		Store:   store,
	})
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	defer c.Close()

	bannerNames, err := c.BannerTypes(ctx, client.HistoryOptions{})
	if err != nil {
		logger.Warn().Err(err).Msg("Could not fetch banner names, falling back to numeric types")
		bannerNames = map[int]string{}
	}

	opts := client.HistoryOptions{Limit: *limit, StopID: *stopID}
	next := nextWish(c, *banner, opts)

	count := 0
	for {
		wish, err := next(ctx)
		if errors.Is(err, paginator.Done) {
			break
		}
		if err != nil {
			return fmt.Errorf("fetch wish history: %w", err)
		}

		if *asJSON {
			line, err := json.Marshal(wish)
			if err != nil {
				return fmt.Errorf("marshal wish: %w", err)
			}
			fmt.Println(string(line))
		} else {
			fmt.Println(formatWish(wish, bannerNames))
		}
		count++
	}

	logger.Info().Int("wishes", count).Msg("Dump complete")
	return nil
}

// nextWish returns the iterator for the requested history: one banner
// when bannerType is set, otherwise all banners merged.
func nextWish(c *client.Client, bannerType int, opts client.HistoryOptions) func(context.Context) (models.Wish, error) {
	if bannerType != 0 {
		history := c.WishHistory(bannerType, opts)
		return history.Next
	}
	merged := c.MergedWishHistory(opts)
	return merged.Next
}

// formatWish renders one wish as a fixed-width table row.
func formatWish(wish models.Wish, bannerNames map[int]string) string {
	bannerType := int(wish.BannerType.Int64())
	bannerName, ok := bannerNames[bannerType]
	if !ok {
		bannerName = fmt.Sprintf("banner %d", bannerType)
	}

	stars := ""
	for i := int64(0); i < wish.Rarity.Int64(); i++ {
		stars += "*"
	}

	return fmt.Sprintf("%s  %-5s %-30s %-10s %s",
		wish.Time.Format(models.TimeLayout), stars, wish.Name, wish.ItemType, bannerName)
}
