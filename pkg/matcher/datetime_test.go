package matcher

import "testing"

func TestMatchDateTime(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		value   string
		want    bool
	}{
		{"empty pattern passes", "", "whatever", true},

		{"date pass", "YYYY-MM-DD", "2023-05-17", true},
		{"date out of range", "YYYY-MM-DD", "2023-13-40", false},
		{"date wrong shape", "YYYY-MM-DD", "2023/05/17", false},
		{"date leap day", "YYYY-MM-DD", "2024-02-29", true},
		{"date bad leap day", "YYYY-MM-DD", "2023-02-29", false},
		{"compact date", "YYYYMMDD", "20230517", true},
		{"day of year", "YYYY-DDD", "2023-137", true},

		{"time pass", "hh:mm:ss", "23:59:59", true},
		{"time out of range", "hh:mm:ss", "24:00:00", false},
		{"time fractional", "hh:mm:ss.sss", "12:30:45.123", true},

		{"datetime utc", "YYYY-MM-DDThh:mm:ssZ", "2023-05-17T10:00:00Z", true},
		{"datetime offset", "YYYY-MM-DDThh:mm:ssZ", "2023-05-17T10:00:00+02:00", true},
		{"datetime missing zone", "YYYY-MM-DDThh:mm:ssZ", "2023-05-17T10:00:00", false},
		{"explicit offset", "YYYY-MM-DDThh:mm:ss+hh:mm", "2023-05-17T10:00:00+02:00", true},

		{"interval pass", "YYYY-MM-DD/YYYY-MM-DD", "2023-01-01/2023-01-02", true},
		{"interval value lacks slash", "YYYY-MM-DD/YYYY-MM-DD", "2023-01-01", false},
		{"interval bad half", "YYYY-MM-DD/YYYY-MM-DD", "2023-01-01/2023-13-01", false},

		{"duration pass", "PnYnMnD", "P1Y2M3D", true},
		{"duration mismatch", "PnYnMnD", "P1Y2M", false},
		{"duration weeks", "PnW", "P6W", true},
		{"repeat interval", "Rn/PnD", "R5/P10D", true},
		{"repeat unbounded head", "R/YYYY-MM-DD/PnD", "R/2023-01-01/P7D", true},

		{"week date", "YYYY-Www", "2023-W05", true},
		{"week out of range", "YYYY-Www", "2023-W54", false},
		{"weekday number", "YYYY-Www-D", "2023-W05-3", true},
		{"weekday out of range", "YYYY-Www-D", "2023-W05-7", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchDateTime(tt.pattern, tt.value); got != tt.want {
				t.Errorf("MatchDateTime(%q, %q) = %v, want %v", tt.pattern, tt.value, got, tt.want)
			}
		})
	}
}

func TestTokenizeKeepsDeclarationOrder(t *testing.T) {
	// "sss" must win over "ss", "DDD" over "DD" over "D", and the
	// signed zone tokens over bare "hh"/"mm".
	segs := tokenize("ss.sssDDD+hh:mm")
	var tokens []string
	for _, s := range segs {
		if s.tok != nil {
			tokens = append(tokens, s.tok.token)
		}
	}
	want := []string{"ss", "sss", "DDD", "+hh:mm"}
	if len(tokens) != len(want) {
		t.Fatalf("tokenize produced %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, tokens[i], want[i])
		}
	}
}
