package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mihoyo-tools/genshin-stats-client/pkg/cache"
	"github.com/mihoyo-tools/genshin-stats-client/pkg/models"
	"github.com/mihoyo-tools/genshin-stats-client/pkg/paginator"
)

// transactionEndpoints maps each log category to its endpoint.
var transactionEndpoints = map[models.TransactionKind]string{
	models.KindPrimogem: "getPrimogemLog",
	models.KindCrystal:  "getCrystalLog",
	models.KindResin:    "getResinLog",
	models.KindArtifact: "getArtifactLog",
	models.KindWeapon:   "getWeaponLog",
}

// reasonPrefix filters the transaction reason dictionary out of the
// shared i18n file.
const reasonPrefix = "selfinquiry_general_reason_"

// TransactionReasons returns the reason-code dictionary for currency
// transactions. Permanently cached per language.
func (c *Client) TransactionReasons(ctx context.Context, lang string) (map[string]string, error) {
	if lang == "" {
		lang = c.cfg.Lang
	}

	data, err := c.cache.GetOrCompute(ctx, cache.TransactionReasonsKey{Lang: lang},
		func(ctx context.Context) (json.RawMessage, error) {
			rawURL := fmt.Sprintf("%sm02251421001311/m02251421001311-%s.json", c.routes.MI18N, lang)
			return c.requestWebstatic(ctx, rawURL)
		})
	if err != nil {
		return nil, err
	}

	var dict map[string]string
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("decode transaction reasons: %w", err)
	}

	reasons := make(map[string]string)
	for key, value := range dict {
		if strings.HasPrefix(key, reasonPrefix) {
			reasons[key[strings.LastIndex(key, "_")+1:]] = value
		}
	}
	return reasons, nil
}

// transactionPage fetches one raw transaction log page.
func (c *Client) transactionPage(ctx context.Context, kind models.TransactionKind, opts HistoryOptions, endID int64) (json.RawMessage, error) {
	endpoint, ok := transactionEndpoints[kind]
	if !ok {
		return nil, fmt.Errorf("unknown transaction kind %q", kind)
	}

	params := url.Values{}
	params.Set("size", strconv.Itoa(transactionPageSize))
	params.Set("end_id", strconv.FormatInt(endID, 10))

	return c.requestTransaction(ctx, endpoint, params, opts.AuthKey, opts.Lang)
}

func (c *Client) currencyPage(ctx context.Context, kind models.TransactionKind, opts HistoryOptions, endID int64) ([]models.Transaction, error) {
	data, err := c.transactionPage(ctx, kind, opts, endID)
	if err != nil {
		return nil, err
	}

	var out struct {
		List []models.Transaction `json:"list"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode %s log: %w", kind, err)
	}
	for i := range out.List {
		out.List[i].Kind = kind
	}
	return out.List, nil
}

func (c *Client) itemPage(ctx context.Context, kind models.TransactionKind, opts HistoryOptions, endID int64) ([]models.ItemTransaction, error) {
	data, err := c.transactionPage(ctx, kind, opts, endID)
	if err != nil {
		return nil, err
	}

	var out struct {
		List []models.ItemTransaction `json:"list"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode %s log: %w", kind, err)
	}
	for i := range out.List {
		out.List[i].Kind = kind
	}
	return out.List, nil
}

// CurrencyTransactionLog returns a lazy paginator over one currency
// log category (primogem, crystal or resin), newest first.
func (c *Client) CurrencyTransactionLog(kind models.TransactionKind, opts HistoryOptions) *paginator.Cursor[models.Transaction] {
	fetch := func(ctx context.Context, endID int64) ([]models.Transaction, error) {
		return c.currencyPage(ctx, kind, opts, endID)
	}
	return paginator.NewCursor(fetch, transactionPageSize, paginator.Options{
		Limit:  opts.Limit,
		StopID: opts.StopID,
	})
}

// ItemTransactionLog returns a lazy paginator over one item log
// category (artifact or weapon), newest first.
func (c *Client) ItemTransactionLog(kind models.TransactionKind, opts HistoryOptions) *paginator.Cursor[models.ItemTransaction] {
	fetch := func(ctx context.Context, endID int64) ([]models.ItemTransaction, error) {
		return c.itemPage(ctx, kind, opts, endID)
	}
	return paginator.NewCursor(fetch, transactionPageSize, paginator.Options{
		Limit:  opts.Limit,
		StopID: opts.StopID,
	})
}

// MergedTransactionLog returns a lazy paginator over every
// transaction category at once, merged into one globally time-ordered
// sequence. Category priority for timestamp ties follows
// models.AllKinds.
func (c *Client) MergedTransactionLog(opts HistoryOptions) *paginator.Merged[models.TransactionRecord] {
	cursors := make([]*paginator.Cursor[models.TransactionRecord], 0, len(models.AllKinds))
	for _, kind := range models.AllKinds {
		kind := kind
		var fetch paginator.PageFunc[models.TransactionRecord]
		switch kind {
		case models.KindArtifact, models.KindWeapon:
			fetch = func(ctx context.Context, endID int64) ([]models.TransactionRecord, error) {
				page, err := c.itemPage(ctx, kind, opts, endID)
				if err != nil {
					return nil, err
				}
				records := make([]models.TransactionRecord, len(page))
				for i, item := range page {
					records[i] = item
				}
				return records, nil
			}
		default:
			fetch = func(ctx context.Context, endID int64) ([]models.TransactionRecord, error) {
				page, err := c.currencyPage(ctx, kind, opts, endID)
				if err != nil {
					return nil, err
				}
				records := make([]models.TransactionRecord, len(page))
				for i, item := range page {
					records[i] = item
				}
				return records, nil
			}
		}
		cursors = append(cursors, paginator.NewCursor(fetch, transactionPageSize, paginator.Options{
			StopID: opts.StopID,
		}))
	}
	return paginator.NewMerged(cursors, paginator.Options{
		Limit:  opts.Limit,
		StopID: opts.StopID,
	})
}
