package client

import "fmt"

// DS salts and activity ids, fixed remote contracts per region.
const (
	overseasDSSalt = "6cqshh5dhw73bzxn20oexa9k516chk7s"
	chineseDSSalt  = "14bmu1mz0yuljprsfgpvjh3ju2ni468r"

	overseasActID = "e202102251931481"
	chineseActID  = "e202009291139501"
)

// Remote-fixed page sizes. The client never chooses these.
const (
	wishPageSize        = 20
	transactionPageSize = 20
	rewardPageSize      = 10
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"

// Routes holds the base URLs and signing parameters for every
// endpoint family of one region.
type Routes struct {
	// Record serves user stats and is signed with a DS token.
	Record string

	// Reward serves daily sign-in rewards; cookie authenticated.
	Reward string

	// GachaInfo serves wish history; authkey authenticated.
	GachaInfo string

	// Transaction serves the transaction logs; authkey authenticated.
	Transaction string

	// Webstatic serves static JSON without authentication.
	Webstatic string

	// MI18N serves translation dictionaries (transaction reasons).
	MI18N string

	// Redeem serves gift code redemption; cookie authenticated.
	Redeem string

	DSSalt     string
	ActID      string
	AppVersion string
	ClientType string
}

// OverseasRoutes returns the endpoint table for overseas accounts.
func OverseasRoutes() Routes {
	return Routes{
		Record:      "https://api-os-takumi.mihoyo.com/",
		Reward:      "https://hk4e-api-os.mihoyo.com/event/sol/",
		GachaInfo:   "https://hk4e-api-os.mihoyo.com/event/gacha_info/api/",
		Transaction: "https://hk4e-api-os.mihoyo.com/ysulog/api/",
		Webstatic:   "https://webstatic-sea.mihoyo.com/",
		MI18N:       "https://mi18n-os.mihoyo.com/webstatic/admin/mi18n/hk4e_global/",
		Redeem:      "https://hk4e-api-os.mihoyo.com/common/apicdkey/api/",
		DSSalt:      overseasDSSalt,
		ActID:       overseasActID,
		AppVersion:  "1.5.0",
		ClientType:  "4",
	}
}

// ChineseRoutes returns the endpoint table for chinese accounts. The
// authkey families are only served from the overseas hosts.
func ChineseRoutes() Routes {
	r := OverseasRoutes()
	r.Record = "https://api-takumi.mihoyo.com/"
	r.Reward = "https://api-takumi.mihoyo.com/event/bbs_sign_reward/"
	r.DSSalt = chineseDSSalt
	r.ActID = chineseActID
	r.AppVersion = "2.7.0"
	r.ClientType = "5"
	return r
}

// Languages supported by the remote.
var languages = []string{
	"zh-cn", "zh-tw", "de-de", "en-us", "es-es", "fr-fr", "id-id",
	"ja-jp", "ko-kr", "pt-pt", "ru-ru", "th-th", "vi-vn",
}

func validLang(lang string) bool {
	for _, l := range languages {
		if l == lang {
			return true
		}
	}
	return false
}

// shortLangCode converts a language tag to the short form used by the
// authkey families ("en-us" -> "en", but chinese tags stay full).
func shortLangCode(lang string) string {
	if len(lang) >= 2 && lang[:2] == "zh" {
		return lang
	}
	for i := 0; i < len(lang); i++ {
		if lang[i] == '-' {
			return lang[:i]
		}
	}
	return lang
}

// recognizeServer maps a game uid to its server region code.
func recognizeServer(uid int64) (string, error) {
	for uid >= 10 {
		uid /= 10
	}
	switch uid {
	case 1, 2:
		return "cn_gf01", nil
	case 5:
		return "cn_qd01", nil
	case 6:
		return "os_usa", nil
	case 7:
		return "os_euro", nil
	case 8:
		return "os_asia", nil
	case 9:
		return "os_cht", nil
	default:
		return "", fmt.Errorf("could not recognize server for uid %d", uid)
	}
}
