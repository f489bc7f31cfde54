package stats

import (
	"fmt"
	"time"

	c "github.com/relloyd/mtgpipe/constants"
	"github.com/relloyd/mtgpipe/logger"
)

// ImportStats counts progress through one import run.
// It is owned by the single goroutine running the import.
type ImportStats struct {
	log            logger.Logger
	name           string
	startTime      time.Time
	endTime        time.Time
	setsRead       int64
	cardsRead      int64
	cardsSkipped   int64
	cardsMistyped  int64
	rowsEmitted    int64
	rowsFlushed    int64
	batchesFlushed int64
}

// Stats is a point in time copy of ImportStats suitable for logging or returning from a handler.
type Stats struct {
	Name             string `json:"name"`
	StatusText       string `json:"statusText"`
	StatusEmoji      string `json:"statusEmoji"`
	ElapsedTimeSec   int    `json:"elapsedTimeSec"`
	SetsRead         int    `json:"setsRead"`
	CardsRead        int    `json:"cardsRead"`
	CardsSkipped     int    `json:"cardsSkipped"`
	CardsMistyped    int    `json:"cardsMistyped"`
	RowsEmitted      int    `json:"rowsEmitted"`
	RowsFlushed      int    `json:"rowsFlushed"`
	BatchesFlushed   int    `json:"batchesFlushed"`
	RowsPerSecondAvg int    `json:"rowsPerSecondAvg"`
}

func NewImportStats(log logger.Logger, name string) *ImportStats {
	return &ImportStats{log: log, name: name, startTime: time.Now()}
}

func (n *ImportStats) AddSet() {
	n.setsRead++
}

func (n *ImportStats) AddCard() {
	n.cardsRead++
}

func (n *ImportStats) AddSkipped() {
	n.cardsSkipped++
}

// AddMistyped records a card that had fields of the wrong type.
func (n *ImportStats) AddMistyped() {
	n.cardsMistyped++
}

func (n *ImportStats) AddRow() {
	n.rowsEmitted++
}

// AddBatch records a flushed batch of numRows rows.
func (n *ImportStats) AddBatch(numRows int) {
	n.batchesFlushed++
	n.rowsFlushed += int64(numRows)
	n.log.Debug("STATS: ", n.name, " flushed batch ", n.batchesFlushed, " total rows flushed ", n.rowsFlushed)
}

// Stop freezes the elapsed time.
func (n *ImportStats) Stop() {
	n.endTime = time.Now()
}

// RenderStats gets a struct filled with stats at the point of time it is called.
func (n *ImportStats) RenderStats() Stats {
	var statusText, statusEmoji string
	end := n.endTime
	if end.IsZero() {
		statusText = "running"
		statusEmoji = "\U0000231B" // hour glass
		end = time.Now()
	} else {
		statusText = "complete"
		statusEmoji = c.EmojiTick
	}
	elapsed := end.Sub(n.startTime)
	return Stats{
		Name:             n.name,
		StatusText:       statusText,
		StatusEmoji:      statusEmoji,
		ElapsedTimeSec:   int(elapsed.Seconds()),
		SetsRead:         int(n.setsRead),
		CardsRead:        int(n.cardsRead),
		CardsSkipped:     int(n.cardsSkipped),
		CardsMistyped:    int(n.cardsMistyped),
		RowsEmitted:      int(n.rowsEmitted),
		RowsFlushed:      int(n.rowsFlushed),
		BatchesFlushed:   int(n.batchesFlushed),
		RowsPerSecondAvg: int(n.rowsFlushed / secondsOrOne(elapsed)),
	}
}

// String will format the stats for general logging.
func (s Stats) String() string {
	return fmt.Sprintf(
		"Stats for %v %v %v "+
			"elapsedTimeSec=%v "+
			"setsRead=%v "+
			"cardsRead=%v "+
			"cardsSkipped=%v "+
			"cardsMistyped=%v "+
			"rowsEmitted=%v "+
			"rowsFlushed=%v "+
			"batchesFlushed=%v "+
			"rowsPerSecondAvg=%v",
		s.Name, s.StatusText, s.StatusEmoji,
		s.ElapsedTimeSec,
		s.SetsRead,
		s.CardsRead,
		s.CardsSkipped,
		s.CardsMistyped,
		s.RowsEmitted,
		s.RowsFlushed,
		s.BatchesFlushed,
		s.RowsPerSecondAvg,
	)
}

func secondsOrOne(d time.Duration) (seconds int64) {
	seconds = int64(d.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return
}
