// Package home tracks a reference "home" pose and derives relative
// snapshots from it.
package home

import "github.com/sergev/wiidrv/report"

// Tracker holds the reference snapshot and the most recently computed
// relative snapshot. Relative tracking defaults to enabled.
type Tracker struct {
	home     report.Snapshot
	relative report.Snapshot
	enabled  bool
}

// NewTracker returns a Tracker with relative tracking enabled by
// default.
func NewTracker() *Tracker {
	return &Tracker{enabled: true}
}

// SetHome copies current into the reference pose.
func (t *Tracker) SetHome(current report.Snapshot) {
	t.home = current
}

// Home returns the reference snapshot captured by the last SetHome.
func (t *Tracker) Home() report.Snapshot { return t.home }

// Relative returns the most recently computed relative snapshot.
func (t *Tracker) Relative() report.Snapshot { return t.relative }

// Enabled reports whether relative tracking is on.
func (t *Tracker) Enabled() bool { return t.enabled }

// Enable turns relative tracking on.
func (t *Tracker) Enable() { t.enabled = true }

// Disable turns relative tracking off. Relative no longer changes on
// subsequent Update calls.
func (t *Tracker) Disable() { t.enabled = false }

// Update recomputes Relative from current against the stored home
// pose, but only while tracking is enabled.
func (t *Tracker) Update(current report.Snapshot) {
	if !t.enabled {
		return
	}
	t.relative = current.Sub(t.home)
}
