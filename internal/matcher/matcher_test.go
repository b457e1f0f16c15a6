package matcher

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "GRAB Tốt", "grab tốt"},
		{"collapses whitespace", "grab   \t\n tốt", "grab tốt"},
		{"trims ends", "  grab  ", "grab"},
		{"empty string", "", ""},
		{"diacritics round-trip", "ứng dụng đặt xe", "ứng dụng đặt xe"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		for _, in := range []string{"", "  A  B  ", "Grab RẤT tốt", "ứng   dụng"} {
			once := Normalize(in)
			if twice := Normalize(once); twice != once {
				t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
			}
		}
	})
}

func TestMentions(t *testing.T) {
	t.Parallel()
	m := New(nil)

	t.Run("empty keywords never match", func(t *testing.T) {
		if m.Mentions("grab tốt lắm", nil) {
			t.Error("nil keywords matched")
		}
		if m.Mentions("grab tốt lắm", []string{}) {
			t.Error("empty keywords matched")
		}
	})

	t.Run("exact substring", func(t *testing.T) {
		if !m.Mentions("Dùng Grab thấy ổn", []string{"grab"}) {
			t.Error("expected substring match")
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		if !m.Mentions("GRAB tăng giá", []string{"Grab"}) {
			t.Error("expected case-insensitive match")
		}
	})

	t.Run("no mention", func(t *testing.T) {
		if m.Mentions("Máy lọc Sharp rất tốt. Tôi hài lòng", []string{"dyson"}) {
			t.Error("unexpected match")
		}
	})

	t.Run("variant table", func(t *testing.T) {
		cases := []struct {
			text    string
			keyword string
		}{
			{"đi xe vin fast êm thật", "vinfast"},
			{"mới mua con ip 15", "iphone"},
			{"đặt hàng trên shoppee", "shopee"},
			{"go-jek rẻ hơn", "gojek"},
		}
		for _, tc := range cases {
			if !m.Mentions(tc.text, []string{tc.keyword}) {
				t.Errorf("Mentions(%q, %q) = false, want true via variant", tc.text, tc.keyword)
			}
		}
	})

	t.Run("short brand word needs app context", func(t *testing.T) {
		if !m.Mentions("tối nay đặt be về nhà", []string{"be app"}) {
			t.Error("expected match: 'be' with usage context")
		}
		if m.Mentions("chuyến đi có thể bị hủy", []string{"be app"}) {
			t.Error("matched bare syllable without app context")
		}
	})

	t.Run("spacing variants", func(t *testing.T) {
		if !m.Mentions("dịch vụ beapp tệ", []string{"be app"}) {
			t.Error("expected nospace variant match")
		}
		if !m.Mentions("thích dùng be-app", []string{"be app"}) {
			t.Error("expected hyphen variant match")
		}
	})

	t.Run("long keyword nospace containment", func(t *testing.T) {
		if !m.Mentions("toi dung grab car moi ngay", []string{"grab car"}) {
			t.Error("expected nospace containment for long keyword")
		}
	})

	t.Run("monotone in keyword set", func(t *testing.T) {
		texts := []string{
			"Dùng Grab thấy ổn",
			"Máy lọc Sharp rất tốt",
			"đặt be về nhà",
			"",
		}
		small := []string{"grab"}
		large := []string{"grab", "dyson", "be app"}
		for _, text := range texts {
			if m.Mentions(text, small) && !m.Mentions(text, large) {
				t.Errorf("superset keywords lost the match for %q", text)
			}
		}
	})

	t.Run("keyword order does not matter", func(t *testing.T) {
		text := "Dùng Grab thấy ổn"
		if m.Mentions(text, []string{"dyson", "grab"}) != m.Mentions(text, []string{"grab", "dyson"}) {
			t.Error("keyword order changed the outcome")
		}
	})

	t.Run("custom variant table", func(t *testing.T) {
		custom := New(map[string][]string{
			"northcloud": {"north cloud", "ncloud"},
		})
		if !custom.Mentions("dịch vụ ncloud ổn định", []string{"northcloud"}) {
			t.Error("expected match via custom variant table")
		}
	})
}
