package app

import (
	"strconv"

	"GuardianesDelFuego/internal/constants"
	"GuardianesDelFuego/internal/demo"
	"GuardianesDelFuego/internal/nav"
)

// CheckResult is one row of the smoke-check table.
type CheckResult struct {
	Test    string
	Pass    bool
	Details string
}

// SelfCheck verifies the shell invariants for the current role and tab
// against the dataset.
func SelfCheck(snap Snapshot, ds *demo.Dataset) []CheckResult {
	tabs := nav.Tabs(snap.Role)
	results := []CheckResult{
		{
			Test:    "role has 5 tabs",
			Pass:    len(tabs) == constants.TabsPerRole,
			Details: snap.Role.String(),
		},
		{
			Test:    "tab valid for role",
			Pass:    nav.HasTab(snap.Role, snap.Tab),
			Details: string(snap.Tab),
		},
	}
	alerts, points := 0, 0
	if ds != nil {
		alerts, points = len(ds.Alerts), len(ds.Series)
	}
	results = append(results,
		CheckResult{Test: "alerts not empty", Pass: alerts > 0, Details: strconv.Itoa(alerts)},
		CheckResult{Test: "series has points", Pass: points >= constants.MinSeriesPoints, Details: strconv.Itoa(points)},
	)
	return results
}

// AllPassed reports whether every check passed.
func AllPassed(results []CheckResult) bool {
	for _, r := range results {
		if !r.Pass {
			return false
		}
	}
	return true
}
