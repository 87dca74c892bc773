package memory

import (
	"context"
	"sort"
	"sync"

	"alertradar/internal/domain/entity"
	"alertradar/internal/domain/repository"
)

// RecipientRepository is an in-memory recipient directory.
// Profiles are managed elsewhere; Upsert and Delete exist to seed it.
type RecipientRepository struct {
	mu       sync.RWMutex
	profiles map[string]*entity.RecipientProfile

	// failScan, when set, is returned by FindPushEnabledRecipients.
	failScan error
}

// NewRecipientRepository creates an empty directory
func NewRecipientRepository() *RecipientRepository {
	return &RecipientRepository{
		profiles: make(map[string]*entity.RecipientProfile),
	}
}

// Upsert stores a copy of profile
func (r *RecipientRepository) Upsert(profile *entity.RecipientProfile) {
	clone := cloneProfile(profile)

	r.mu.Lock()
	r.profiles[profile.ID] = clone
	r.mu.Unlock()
}

// Delete removes a profile
func (r *RecipientRepository) Delete(id string) {
	r.mu.Lock()
	delete(r.profiles, id)
	r.mu.Unlock()
}

// FailScans makes every following push-enabled scan return err
func (r *RecipientRepository) FailScans(err error) {
	r.mu.Lock()
	r.failScan = err
	r.mu.Unlock()
}

// FindRecipientByID retrieves a profile by ID
func (r *RecipientRepository) FindRecipientByID(_ context.Context, id string) (*entity.RecipientProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrRecipientNotFound
	}

	return cloneProfile(profile), nil
}

// FindPushEnabledRecipients returns every push-enabled profile ordered by ID
func (r *RecipientRepository) FindPushEnabledRecipients(_ context.Context) ([]*entity.RecipientProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.failScan != nil {
		return nil, r.failScan
	}

	results := make([]*entity.RecipientProfile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		if profile.PushEnabled {
			results = append(results, cloneProfile(profile))
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	return results, nil
}

func cloneProfile(profile *entity.RecipientProfile) *entity.RecipientProfile {
	clone := *profile
	if profile.LastKnownLocation != nil {
		loc := *profile.LastKnownLocation
		clone.LastKnownLocation = &loc
	}

	return &clone
}
