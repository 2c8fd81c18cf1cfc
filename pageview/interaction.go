// SPDX-License-Identifier: Unlicense OR MIT

package pageview

import (
	"gioui.org/pageview/internal/logger"
)

// suspender suspends and resumes the page.
type suspender interface {
	SuspendContent() bool
	ResumeContent()
}

// activity counts the interactions in progress. The page is
// suspended while the count is positive.
type activity struct {
	page  suspender
	count int
}

// interaction is a begin/end scope of an activity. Ending an
// interaction that is not in progress is a no-op.
type interaction struct {
	name       string
	act        *activity
	inProgress bool
}

func (a *activity) acquire() {
	a.count++
	if a.count == 1 {
		a.page.SuspendContent()
	}
}

func (a *activity) release() {
	if a.count == 0 {
		panic("pageview: interaction released more than acquired")
	}
	a.count--
	if a.count == 0 {
		a.page.ResumeContent()
	}
}

func (i *interaction) begin() {
	if i.inProgress {
		return
	}
	i.inProgress = true
	logger.Get().Debug("pageview: interaction began", "interaction", i.name, "active", i.act.count+1)
	i.act.acquire()
}

func (i *interaction) end() {
	if !i.inProgress {
		return
	}
	i.inProgress = false
	logger.Get().Debug("pageview: interaction ended", "interaction", i.name, "active", i.act.count-1)
	i.act.release()
}
