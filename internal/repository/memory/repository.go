package memory

import (
	"sync"
	"time"

	"dynastybot/internal/models"
	"dynastybot/internal/stats"
)

// Repository caches the slow-to-fetch inputs: the identity universe, the
// claimed-player collection, and projection lines. Evaluation output is
// never cached; it is recomputed on demand.
type Repository struct {
	universe  []models.PlayerIdentity
	claimed   []models.ClaimedPlayer
	claimedAt time.Time
	batters   []stats.Record
	pitchers  []stats.Record
	projsAt   time.Time
	metadata  *models.LeagueMetadata
	mu        sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveUniverse(universe []models.PlayerIdentity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.universe = universe
}

func (r *Repository) GetUniverse() []models.PlayerIdentity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.universe
}

func (r *Repository) SaveClaimed(claimed []models.ClaimedPlayer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claimed = claimed
	r.claimedAt = time.Now()
}

func (r *Repository) GetClaimed(maxAge time.Duration) ([]models.ClaimedPlayer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.claimed == nil || time.Since(r.claimedAt) > maxAge {
		return nil, false
	}
	return r.claimed, true
}

func (r *Repository) SaveProjections(batters, pitchers []stats.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batters = batters
	r.pitchers = pitchers
	r.projsAt = time.Now()
}

func (r *Repository) GetProjections(maxAge time.Duration) (batters, pitchers []stats.Record, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.batters == nil || time.Since(r.projsAt) > maxAge {
		return nil, nil, false
	}
	return r.batters, r.pitchers, true
}

func (r *Repository) SaveMetadata(metadata *models.LeagueMetadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metadata = metadata
}

func (r *Repository) GetMetadata() *models.LeagueMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.metadata
}
