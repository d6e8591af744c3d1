package config

import (
	"flag"
	"testing"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/skedcli/sked/internal/timeutil"
)

type FilterTest struct {
	Name    string
	Flags   map[string]string
	WantNil bool
	WantErr bool
}

var filterTestCases = []FilterTest{
	{
		Name:    "no filter flags",
		Flags:   map[string]string{},
		WantNil: true,
	},
	{
		Name: "valid period",
		Flags: map[string]string{
			"period": "7days",
		},
	},
	{
		Name: "invalid period",
		Flags: map[string]string{
			"period": "fortnight",
		},
		WantErr: true,
	},
	{
		Name: "explicit range",
		Flags: map[string]string{
			"from": "2021-03-01",
			"to":   "2021-03-31",
		},
	},
	{
		Name: "end before start",
		Flags: map[string]string{
			"from": "2021-03-31",
			"to":   "2021-03-01",
		},
		WantErr: true,
	},
}

func newFilterContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("list", flag.PanicOnError)

	for k, v := range flags {
		_ = f.String(k, "", "")

		err := f.Set(k, v)
		if err != nil {
			t.Log(err)
		}
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestFilter(t *testing.T) {
	for _, tc := range filterTestCases {
		t.Run(tc.Name, func(t *testing.T) {
			cfg, err := Filter(newFilterContext(t, tc.Flags))

			if tc.WantErr {
				if err == nil {
					t.Fatal("Expected an error, got none")
				}

				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if tc.WantNil {
				if cfg != nil {
					t.Fatalf("Expected no filter, got: %+v", cfg)
				}

				return
			}

			if cfg == nil {
				t.Fatal("Expected a filter, got nil")
			}

			if cfg.EndTime.Before(cfg.StartTime) {
				t.Errorf("Invalid range: %+v", cfg)
			}
		})
	}
}

func TestFilterPeriodBounds(t *testing.T) {
	cfg, err := Filter(newFilterContext(t, map[string]string{"period": "7days"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	wantStart := timeutil.RoundToStart(time.Now().AddDate(0, 0, -6))

	if !cfg.StartTime.Equal(wantStart) {
		t.Errorf("Expected start to be %v, got: %v", wantStart, cfg.StartTime)
	}

	if !cfg.Covers(time.Now()) {
		t.Error("Expected the period to cover the current time")
	}

	if cfg.Covers(time.Now().AddDate(0, 0, -10)) {
		t.Error("Expected the period to exclude 10 days ago")
	}
}

func TestFilterCoversNil(t *testing.T) {
	var cfg *FilterConfig

	if !cfg.Covers(time.Now()) {
		t.Error("Expected a nil filter to cover everything")
	}
}
