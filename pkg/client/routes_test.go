package client

import "testing"

func TestRecognizeServer(t *testing.T) {
	tests := []struct {
		uid     int64
		want    string
		wantErr bool
	}{
		{150000001, "cn_gf01", false},
		{250000001, "cn_gf01", false},
		{550000001, "cn_qd01", false},
		{650000001, "os_usa", false},
		{710785423, "os_euro", false},
		{850000001, "os_asia", false},
		{950000001, "os_cht", false},
		{350000001, "", true},
		{450000001, "", true},
	}

	for _, tt := range tests {
		got, err := recognizeServer(tt.uid)
		if tt.wantErr {
			if err == nil {
				t.Errorf("recognizeServer(%d) expected error, got %q", tt.uid, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("recognizeServer(%d) unexpected error: %v", tt.uid, err)
			continue
		}
		if got != tt.want {
			t.Errorf("recognizeServer(%d) = %q, want %q", tt.uid, got, tt.want)
		}
	}
}

func TestShortLangCode(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en-us", "en"},
		{"fr-fr", "fr"},
		{"ja-jp", "ja"},
		{"zh-cn", "zh-cn"},
		{"zh-tw", "zh-tw"},
		{"de", "de"},
	}

	for _, tt := range tests {
		if got := shortLangCode(tt.lang); got != tt.want {
			t.Errorf("shortLangCode(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestValidLang(t *testing.T) {
	if !validLang("en-us") {
		t.Error("en-us should be valid")
	}
	if !validLang("zh-cn") {
		t.Error("zh-cn should be valid")
	}
	if validLang("en") {
		t.Error("bare en should be invalid")
	}
	if validLang("") {
		t.Error("empty language should be invalid")
	}
}

func TestChineseRoutes(t *testing.T) {
	os := OverseasRoutes()
	cn := ChineseRoutes()

	if cn.DSSalt == os.DSSalt {
		t.Error("Chinese routes should carry a different signing salt")
	}
	if cn.ActID == os.ActID {
		t.Error("Chinese routes should carry a different activity id")
	}
	if cn.Record == os.Record {
		t.Error("Chinese routes should use a different record host")
	}
	// The authkey families are only served from the overseas hosts.
	if cn.GachaInfo != os.GachaInfo {
		t.Error("Gacha info host should not change for chinese accounts")
	}
}
