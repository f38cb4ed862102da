package check

import (
	"strings"
	"testing"
)

const uptimeOutput = " 10:01:10 up 40 days,  2:03,  1 user,  load average: 0.42, 0.30, 0.21"

func TestLoadParse(t *testing.T) {
	tests := []struct {
		name       string
		check      Load
		out        string
		ok         bool
		wantStatus Status
		wantDetail string
	}{
		{
			name:       "below threshold",
			check:      Load{Interval: 1},
			out:        uptimeOutput,
			ok:         true,
			wantStatus: Pass,
			wantDetail: "0.42",
		},
		{
			name:       "above default threshold",
			check:      Load{Interval: 1},
			out:        " 10:01:10 up 40 days,  2:03,  1 user,  load average: 9.99, 0.30, 0.21",
			ok:         true,
			wantStatus: Fail,
			wantDetail: "9.99",
		},
		{
			name:       "below custom threshold",
			check:      Load{Interval: 1, Max: 20},
			out:        " 10:01:10 up 40 days,  2:03,  1 user,  load average: 9.99, 0.30, 0.21",
			ok:         true,
			wantStatus: Pass,
			wantDetail: "9.99",
		},
		{
			name:       "fifteen minute figure",
			check:      Load{Interval: 15},
			out:        " 10:01:10 up 40 days,  2:03,  1 user,  load average: 9.99, 9.98, 0.21",
			ok:         true,
			wantStatus: Pass,
			wantDetail: "0.21",
		},
		{
			name:       "five minute figure over limit",
			check:      Load{Interval: 5, Max: 50},
			out:        " 10:01:10 up 40 days,  2:03,  1 user,  load average: 0.10, 70.10, 0.21",
			ok:         true,
			wantStatus: Fail,
			wantDetail: "70.10",
		},
		{
			name:       "empty output",
			check:      Load{Interval: 5},
			out:        "",
			ok:         true,
			wantStatus: Indeterminate,
			wantDetail: "cannot read load average",
		},
		{
			name:       "garbage output",
			check:      Load{Interval: 5},
			out:        "command not found",
			ok:         true,
			wantStatus: Indeterminate,
			wantDetail: "cannot read load average",
		},
		{
			name:       "non numeric figure",
			check:      Load{Interval: 1},
			out:        "load average: x, 0.30, 0.21",
			ok:         true,
			wantStatus: Indeterminate,
			wantDetail: "parsing",
		},
		{
			name:       "remote exit failure",
			check:      Load{Interval: 1},
			out:        uptimeOutput,
			ok:         false,
			wantStatus: Fail,
			wantDetail: "exited with an error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.check.Parse(tt.out, tt.ok)
			if got.Status != tt.wantStatus {
				t.Errorf("Parse() status = %v, want %v (detail: %s)", got.Status, tt.wantStatus, got.Detail)
			}
			if !strings.Contains(got.Detail, tt.wantDetail) {
				t.Errorf("Parse() detail = %q, want it to contain %q", got.Detail, tt.wantDetail)
			}
			if got.Check != KindLoad {
				t.Errorf("Parse() check = %q, want %q", got.Check, KindLoad)
			}

			// Parse is pure: a second call must agree byte for byte.
			again := tt.check.Parse(tt.out, tt.ok)
			if again != got {
				t.Errorf("Parse() is not deterministic: %+v vs %+v", got, again)
			}
		})
	}
}

func TestLoadValidate(t *testing.T) {
	tests := []struct {
		name    string
		check   Load
		wantErr bool
	}{
		{name: "one minute", check: Load{Interval: 1}},
		{name: "five minutes", check: Load{Interval: 5}},
		{name: "fifteen minutes", check: Load{Interval: 15}},
		{name: "zero interval", check: Load{}, wantErr: true},
		{name: "unsupported interval", check: Load{Interval: 10}, wantErr: true},
		{name: "negative max", check: Load{Interval: 5, Max: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCommand(t *testing.T) {
	c := Load{Interval: 5}
	if got := c.Command(); got != "uptime" {
		t.Errorf("Command() = %q, want %q", got, "uptime")
	}
}
