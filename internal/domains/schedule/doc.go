// Package schedule holds the pure calendar arithmetic behind booking: half-open
// intervals, weekday operating hours, hourly slot grids, prices and report
// periods. Nothing in here touches storage or the clock; callers pass "now"
// and the facility's location in explicitly.
package schedule
