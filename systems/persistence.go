package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// RunStats is the data stored on disk between runs.
type RunStats struct {
	Respawns int `json:"respawns"`
}

const runStatsKey = "runstats"

var gdataManager *gdata.Manager

// InitPersistence opens the save location for run stats.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "robospike",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadRunStats returns nil when nothing has been saved or persistence is off.
func LoadRunStats() (*RunStats, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(runStatsKey)
	if err != nil {
		log.Printf("Warning: Could not load run stats: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var stats RunStats
	if err := json.Unmarshal(data, &stats); err != nil {
		log.Printf("Warning: Could not parse saved run stats: %v", err)
		return nil, err
	}
	return &stats, nil
}

func SaveRunStats(s *RunStats) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize run stats: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(runStatsKey, data); err != nil {
		log.Printf("Warning: Could not save run stats: %v", err)
		return err
	}
	return nil
}
