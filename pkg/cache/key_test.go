package cache

import "testing"

func TestKeyString_Deterministic(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{
			name: "banner types",
			key:  BannerTypesKey{Lang: "en-us"},
			want: "gstats:banner-types:lang=en-us",
		},
		{
			name: "transaction reasons",
			key:  TransactionReasonsKey{Lang: "zh-cn"},
			want: "gstats:transaction-reasons:lang=zh-cn",
		},
		{
			name: "user stats",
			key:  UserStatsKey{UID: 901211014, Lang: "en-us"},
			want: "gstats:user:901211014:lang=en-us",
		},
		{
			name: "characters",
			key:  CharactersKey{UID: 901211014, Lang: "en-us"},
			want: "gstats:characters:901211014:lang=en-us",
		},
		{
			name: "spiral abyss",
			key:  SpiralAbyssKey{UID: 901211014, ScheduleType: 2, Lang: "en-us"},
			want: "gstats:abyss:901211014:schedule=2:lang=en-us",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyString_LanguageProjection(t *testing.T) {
	// Permanent keys project language only: equal language means
	// equal key, different language means different key.
	enUS := BannerTypesKey{Lang: "en-us"}
	enUS2 := BannerTypesKey{Lang: "en-us"}
	frFR := BannerTypesKey{Lang: "fr-fr"}

	if enUS.String() != enUS2.String() {
		t.Error("identical permanent keys render differently")
	}
	if enUS.String() == frFR.String() {
		t.Error("permanent keys for different languages collide")
	}
}
