package progress

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hntran/Corella/internal/storage"
)

const statusKeyPrefix = "test_result_"

// TestStatus is the durable per-test attempt history summary.
//
// HasEverPassed is sticky: once true it is never reset by a worse attempt.
// BestPercentage is the running maximum; Last* reflect the most recent
// attempt only; AttemptCount only ever increments.
type TestStatus struct {
	HasEverPassed  bool      `json:"has_ever_passed"`
	BestPercentage int       `json:"best_percentage"`
	LastPercentage int       `json:"last_percentage"`
	LastScore      int       `json:"last_score"`
	AttemptCount   int       `json:"attempt_count"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StatusStore reads and writes TestStatus records keyed by test id.
type StatusStore struct {
	store storage.Store
}

func NewStatusStore(store storage.Store) *StatusStore {
	return &StatusStore{store: store}
}

func statusKey(testID uint) string {
	return fmt.Sprintf("%s%d", statusKeyPrefix, testID)
}

// Load returns the stored status for a test, or nil if no attempt has been
// recorded yet.
func (s *StatusStore) Load(testID uint) (*TestStatus, error) {
	raw, ok, err := s.store.Get(statusKey(testID))
	if err != nil {
		return nil, fmt.Errorf("loading status for test %d: %w", testID, err)
	}
	if !ok {
		return nil, nil
	}
	var status TestStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		// A corrupt record is treated as absent rather than poisoning every
		// subsequent attempt.
		log.Warn().Err(err).Uint("testID", testID).Msg("Discarding unreadable test status record")
		return nil, nil
	}
	return &status, nil
}

// Record folds one submitted attempt into the stored status using
// read-modify-write and returns the updated record.
func (s *StatusStore) Record(testID uint, percentage, score int, passed bool) (*TestStatus, error) {
	prev, err := s.Load(testID)
	if err != nil {
		return nil, err
	}

	status := TestStatus{
		HasEverPassed:  passed,
		BestPercentage: percentage,
		LastPercentage: percentage,
		LastScore:      score,
		AttemptCount:   1,
		UpdatedAt:      time.Now().UTC(),
	}
	if prev != nil {
		status.HasEverPassed = passed || prev.HasEverPassed
		if prev.BestPercentage > percentage {
			status.BestPercentage = prev.BestPercentage
		}
		status.AttemptCount = prev.AttemptCount + 1
	}

	raw, err := json.Marshal(status)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(statusKey(testID), raw); err != nil {
		return nil, fmt.Errorf("saving status for test %d: %w", testID, err)
	}
	return &status, nil
}
