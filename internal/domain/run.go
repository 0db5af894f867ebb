package domain

import "time"

// RunRecord identifies a finished run stored in the archive.
type RunRecord struct {
	ID                string
	CreatedAt         time.Time
	Days              int
	Settings          Settings
	FinalTotalCapital float64
	CumulativeAirdrop float64
	ActiveNodes       float64
}
