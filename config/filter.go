package config

import (
	"slices"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/urfave/cli/v2"

	"github.com/skedcli/sked/internal/timeutil"
)

// FilterConfig represents a configuration to filter events by their start
// time.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
}

// getTimeRange returns the start and end time according to the
// specified time period.
func getTimeRange(period timeutil.Period) (start, end time.Time) {
	now := time.Now()

	start = timeutil.RoundToStart(now)

	end = timeutil.RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case timeutil.PeriodToday:
		return
	case timeutil.PeriodYesterday:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
		end = timeutil.RoundToEnd(start)

		return
	case timeutil.PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
	}

	return
}

// Filter builds a start-time filter from the period, start, and end flags.
// It returns nil when no filter flag was given. The range bounds accept
// free-form dates; only event instants themselves are held to the strict
// canonical format.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	period := timeutil.Period(strings.TrimSpace(ctx.String("period")))

	start := ctx.String("from")
	end := ctx.String("to")

	if period == "" && start == "" && end == "" {
		return nil, nil
	}

	if period != "" {
		if !slices.Contains(timeutil.PeriodCollection, period) {
			return nil, errInvalidPeriod
		}

		filterCfg := &FilterConfig{}
		filterCfg.StartTime, filterCfg.EndTime = getTimeRange(period)

		return filterCfg, nil
	}

	filterCfg := &FilterConfig{
		EndTime: timeutil.RoundToEnd(time.Now().AddDate(100, 0, 0)),
	}

	if start != "" {
		dateTime, err := dateparse.ParseAny(start)
		if err != nil {
			return nil, err
		}

		filterCfg.StartTime = dateTime
	}

	if end != "" {
		dateTime, err := dateparse.ParseAny(end)
		if err != nil {
			return nil, err
		}

		filterCfg.EndTime = dateTime
	}

	if !filterCfg.StartTime.IsZero() &&
		filterCfg.EndTime.Before(filterCfg.StartTime) {
		return nil, errInvalidDateRange
	}

	return filterCfg, nil
}

// Covers reports whether t falls within the filter bounds. A nil filter
// covers everything.
func (f *FilterConfig) Covers(t time.Time) bool {
	if f == nil {
		return true
	}

	if t.Before(f.StartTime) {
		return false
	}

	return !t.After(f.EndTime)
}
