package render

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
)

// progressHUD paints a single-line terminal status ("rows done / elapsed")
// from a ticker goroutine that only reads rowsDone — it never touches
// per-pixel render state, so enabling or disabling it cannot change the
// rendered image (spec §4.L). Grounded on lixenwraith-vi-fighter's
// tcell.Screen usage (NewScreen/Init/SetContent/Show/Fini), simplified
// from a full game-loop renderer to a single status line.
type progressHUD struct {
	totalRows int
	screen    tcell.Screen
	stopCh    chan struct{}
	doneCh    chan struct{}
}

func newProgressHUD(totalRows int) *progressHUD {
	return &progressHUD{totalRows: totalRows}
}

// start initializes the terminal screen and begins repainting it on a
// ticker; if the terminal can't be initialized (e.g. no TTY), the HUD
// silently does nothing rather than failing the render.
func (h *progressHUD) start(rowsDone *atomic.Int64) {
	screen, err := tcell.NewScreen()
	if err != nil || screen.Init() != nil {
		return
	}
	h.screen = screen
	h.stopCh = make(chan struct{})
	h.doneCh = make(chan struct{})

	go h.run(rowsDone)
}

func (h *progressHUD) run(rowsDone *atomic.Int64) {
	defer close(h.doneCh)
	started := time.Now()
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-h.stopCh:
			return
		case <-ticker.C:
			h.paint(rowsDone.Load(), time.Since(started))
		}
	}
}

func (h *progressHUD) paint(done int64, elapsed time.Duration) {
	h.screen.Clear()
	line := fmt.Sprintf("rendering: %d/%d rows  %s", done, h.totalRows, elapsed.Round(time.Second))
	style := tcell.StyleDefault
	for i, r := range line {
		h.screen.SetContent(i, 0, r, nil, style)
	}
	h.screen.Show()
}

func (h *progressHUD) stop() {
	if h.screen == nil {
		return
	}
	close(h.stopCh)
	<-h.doneCh
	h.screen.Fini()
}
