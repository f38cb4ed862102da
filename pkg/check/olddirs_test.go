package check

import (
	"strings"
	"testing"
)

func TestOldDirectoriesCommand(t *testing.T) {
	c := OldDirectories{Loc: "/var/log/archive", Cutoff: 2}
	want := "find /var/log/archive -mindepth 1 -maxdepth 1 -type d -ctime +2"
	if got := c.Command(); got != want {
		t.Errorf("Command() = %q, want %q", got, want)
	}
}

func TestOldDirectoriesParse(t *testing.T) {
	tests := []struct {
		name       string
		check      OldDirectories
		out        string
		ok         bool
		wantStatus Status
		wantDetail string
	}{
		{
			name:       "nothing stale",
			check:      OldDirectories{Loc: "/var/log/archive", Cutoff: 2},
			out:        "",
			ok:         true,
			wantStatus: Pass,
			wantDetail: "no directories older than 2 days in `/var/log/archive`",
		},
		{
			name:       "one stale directory",
			check:      OldDirectories{Loc: "/var/log/archive", Cutoff: 2},
			out:        "/var/log/archive/2023-11\n",
			ok:         true,
			wantStatus: Fail,
			wantDetail: "/var/log/archive/2023-11",
		},
		{
			name:       "several stale directories",
			check:      OldDirectories{Loc: "/srv/drops", Cutoff: 7},
			out:        "/srv/drops/a\n/srv/drops/b\n",
			ok:         true,
			wantStatus: Fail,
			wantDetail: "older than 7 days",
		},
		{
			name:       "scan failed",
			check:      OldDirectories{Loc: "/missing", Cutoff: 2},
			out:        "",
			ok:         false,
			wantStatus: Fail,
			wantDetail: "scanning `/missing` failed",
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

			again := tt.check.Parse(tt.out, tt.ok)
			if again != got {
				t.Errorf("Parse() is not deterministic: %+v vs %+v", got, again)
			}
		})
	}
}

func TestOldDirectoriesValidate(t *testing.T) {
	tests := []struct {
		name    string
		check   OldDirectories
		wantErr bool
	}{
		{name: "valid", check: OldDirectories{Loc: "/srv", Cutoff: 2}},
		{name: "missing loc", check: OldDirectories{Cutoff: 2}, wantErr: true},
		{name: "zero cutoff", check: OldDirectories{Loc: "/srv"}, wantErr: true},
		{name: "negative cutoff", check: OldDirectories{Loc: "/srv", Cutoff: -1}, wantErr: true},
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
