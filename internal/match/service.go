package match

import (
	"context"
	"fmt"
	"time"

	"github.com/clonelens/clonelens/internal/clone"
	"github.com/clonelens/clonelens/internal/metrics"
	"github.com/clonelens/clonelens/internal/models"
	"github.com/clonelens/clonelens/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Service runs collection-wide match runs against stored profiles.
type Service struct {
	profilesRepo *repository.ProfilesRepository
	reportsRepo  *repository.ReportsRepository
	workerPool   *clone.WorkerPool
	redisClient  *redis.Client
}

func NewService(
	profilesRepo *repository.ProfilesRepository,
	reportsRepo *repository.ReportsRepository,
	workerPool *clone.WorkerPool,
	redisClient *redis.Client,
) *Service {
	return &Service{
		profilesRepo: profilesRepo,
		reportsRepo:  reportsRepo,
		workerPool:   workerPool,
		redisClient:  redisClient,
	}
}

// Run executes one match run end to end: load the collection's profiles,
// score every pair through the worker pool, rank, truncate to top and
// persist the outcome onto the pending report for runID.
func (s *Service) Run(ctx context.Context, runID, collection string, top int) error {
	start := time.Now()

	s.updateStatus(ctx, runID, models.StepStarted)
	s.updateStatus(ctx, runID, models.StepLoading)

	stored, err := s.profilesRepo.GetProfilesByCollection(ctx, collection)
	if err != nil {
		return s.fail(ctx, runID, start, fmt.Errorf("failed to load profiles: %w", err))
	}

	// Edge Case: a pair listing needs at least two profiles
	if len(stored) < 2 {
		return s.fail(ctx, runID, start,
			fmt.Errorf("need at least 2 profiles in collection %s, got %d", collection, len(stored)))
	}

	profiles := make([]clone.Profile, 0, len(stored))
	for _, doc := range stored {
		profile, err := toCloneProfile(doc)
		if err != nil {
			return s.fail(ctx, runID, start, err)
		}
		profiles = append(profiles, profile)
	}

	s.updateStatus(ctx, runID, models.StepComparing)

	ranked, err := clone.CompareAll(ctx, s.workerPool, profiles)
	if err != nil {
		return s.fail(ctx, runID, start, fmt.Errorf("failed to compare profiles: %w", err))
	}
	metrics.PairsCompared.Add(float64(len(ranked)))

	s.updateStatus(ctx, runID, models.StepRanking)

	if top < 1 {
		top = 1
	}
	topPairs := clone.Top(ranked, top)

	report := &models.MatchReport{
		RunID:         runID,
		Collection:    collection,
		Status:        "completed",
		Profiles:      len(profiles),
		PairsCompared: len(ranked),
		TopPairs:      toMatchPairs(topPairs),
		DurationMs:    time.Since(start).Milliseconds(),
	}

	if err := s.reportsRepo.UpdateReportByRunID(ctx, runID, report); err != nil {
		return s.fail(ctx, runID, start, fmt.Errorf("failed to persist report: %w", err))
	}

	s.updateStatus(ctx, runID, models.StepCompleted)
	metrics.MatchRuns.WithLabelValues("completed").Inc()
	metrics.MatchDuration.Observe(time.Since(start).Seconds())

	log.Info().
		Str("runId", runID).
		Str("collection", collection).
		Int("profiles", len(profiles)).
		Int("pairs", len(ranked)).
		Msg("Match run completed")

	return nil
}

func (s *Service) fail(ctx context.Context, runID string, start time.Time, cause error) error {
	log.Error().Err(cause).Str("runId", runID).Msg("Match run failed")

	report := &models.MatchReport{
		RunID:      runID,
		Status:     "failed",
		Error:      cause.Error(),
		TopPairs:   []models.MatchPair{},
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err := s.reportsRepo.UpdateReportByRunID(ctx, runID, report); err != nil {
		log.Error().Err(err).Str("runId", runID).Msg("Failed to persist failed report")
	}

	s.updateStatus(ctx, runID, models.StepFailed)
	metrics.MatchRuns.WithLabelValues("failed").Inc()

	return cause
}

func (s *Service) updateStatus(ctx context.Context, runID string, step models.Step) {
	if err := UpdateStatus(ctx, s.redisClient, runID, step); err != nil {
		log.Warn().Err(err).Str("runId", runID).Msg("Failed to update match status")
	}
}

// toCloneProfile rebuilds the in-memory profile from its stored form. The
// identifier is the address when present, else the name.
func toCloneProfile(doc *models.ContractProfile) (clone.Profile, error) {
	fp, err := clone.ParseFingerprint(doc.Simhash64)
	if err != nil {
		return clone.Profile{}, fmt.Errorf("stored profile %s: %w", doc.Name, err)
	}

	ident := doc.Identifier()

	name := doc.Name
	if name == "" {
		name = ident
	}

	return clone.Profile{
		File:      ident,
		NameHint:  name,
		Functions: doc.Functions,
		Events:    doc.Events,
		Selectors: doc.Selectors,
		Simhash:   fp,
	}, nil
}

func toMatchPairs(pairs []clone.PairReport) []models.MatchPair {
	out := make([]models.MatchPair, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, models.MatchPair{
			A:               p.A,
			B:               p.B,
			AName:           p.AName,
			BName:           p.BName,
			SimhashSim:      p.SimhashSim,
			SelectorJaccard: p.SelectorJaccard,
			Score:           p.Score,
			CommonSelectors: p.CommonSelectors,
			OnlyA:           p.OnlyA,
			OnlyB:           p.OnlyB,
		})
	}
	return out
}
