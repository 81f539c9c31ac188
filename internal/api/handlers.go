package api

import (
	"context"
	"net/http"
	"time"

	"github.com/clonelens/clonelens/internal/clone"
	"github.com/clonelens/clonelens/internal/config"
	"github.com/clonelens/clonelens/internal/infra/redis"
	"github.com/clonelens/clonelens/internal/ingest"
	"github.com/clonelens/clonelens/internal/match"
	"github.com/clonelens/clonelens/internal/metrics"
	"github.com/clonelens/clonelens/internal/models"
	"github.com/clonelens/clonelens/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Handler holds dependencies for handlers
type Handler struct {
	cfg          *config.Config
	profilesRepo *repository.ProfilesRepository
	reportsRepo  *repository.ReportsRepository
	matchSvc     *match.Service
	redisClient  *redis.Client
	matchSem     chan struct{} // Semaphore for bounded concurrency
	matchTimeout time.Duration
}

// NewHandler creates a new handler
func NewHandler(
	cfg *config.Config,
	profilesRepo *repository.ProfilesRepository,
	reportsRepo *repository.ReportsRepository,
	matchSvc *match.Service,
	redisClient *redis.Client,
) *Handler {
	sem := make(chan struct{}, cfg.MaxConcurrentMatch)

	return &Handler{
		cfg:          cfg,
		profilesRepo: profilesRepo,
		reportsRepo:  reportsRepo,
		matchSvc:     matchSvc,
		redisClient:  redisClient,
		matchSem:     sem,
		matchTimeout: cfg.MatchTimeout,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// Scan profiles inline ABI documents and stores them synchronously.
func (h *Handler) Scan(c *gin.Context) {
	var req models.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if len(req.Contracts) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "contracts must not be empty",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	ctx := c.Request.Context()
	results := make([]models.ScanResult, 0, len(req.Contracts))

	for _, contract := range req.Contracts {
		profile, err := ingest.BuildContractProfile(req.Collection, contract.Name, contract.Address, contract.ABI)
		if err != nil {
			// Edge Case: one bad document fails its entry, not the batch
			results = append(results, models.ScanResult{
				Name:    contract.Name,
				Address: contract.Address,
				Error:   err.Error(),
			})
			continue
		}
		profile.Source = "api"

		if err := h.profilesRepo.InsertProfile(ctx, profile); err != nil {
			log.Error().Err(err).Str("name", contract.Name).Msg("Failed to store profile")
			results = append(results, models.ScanResult{
				Name:    contract.Name,
				Address: contract.Address,
				Error:   "failed to store profile",
			})
			continue
		}
		metrics.ProfilesIngested.WithLabelValues("api").Inc()

		results = append(results, models.ScanResult{
			Name:      contract.Name,
			Address:   contract.Address,
			Simhash64: profile.Simhash64,
			Selectors: len(profile.Selectors),
			Functions: len(profile.Functions),
			Events:    len(profile.Events),
		})
	}

	c.JSON(http.StatusOK, models.ScanResponse{
		Collection: req.Collection,
		Profiles:   results,
	})
}

// Match kicks off an asynchronous collection-wide match run.
func (h *Handler) Match(c *gin.Context) {
	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	ctx := c.Request.Context()
	count, err := h.profilesRepo.CountProfilesByCollection(ctx, req.Collection)
	if err != nil {
		log.Error().Err(err).Str("collection", req.Collection).Msg("Failed to count profiles")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to check profiles",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	// Edge Case: fewer than two stored profiles can never produce a pair
	if count < 2 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Collection needs at least 2 profiles",
			Code:  "NOT_ENOUGH_PROFILES",
		})
		return
	}

	top := req.Top
	if top <= 0 {
		top = h.cfg.TopPairs
	}

	// Acquire semaphore (bounded concurrency)
	select {
	case h.matchSem <- struct{}{}:
		// Acquired semaphore
	case <-ctx.Done():
		c.JSON(http.StatusRequestTimeout, models.ErrorResponse{
			Error: "Request cancelled",
			Code:  "REQUEST_TIMEOUT",
		})
		return
	}

	runID := uuid.New().String()

	pending := &models.MatchReport{
		RunID:      runID,
		Collection: req.Collection,
		Status:     "pending",
		TopPairs:   []models.MatchPair{},
	}
	if err := h.reportsRepo.InsertReport(ctx, pending); err != nil {
		<-h.matchSem
		log.Error().Err(err).Str("runId", runID).Msg("Failed to create pending report")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to create match run",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	// Update status: Initiated
	if err := match.UpdateStatus(ctx, h.redisClient.Client, runID, models.StepInitiated); err != nil {
		log.Warn().Err(err).Str("runId", runID).Msg("Failed to update initiated status")
	}

	// Return 202 Accepted immediately
	c.JSON(http.StatusAccepted, models.MatchResponse{
		Step:  models.StepInitiated,
		RunID: runID,
	})

	// Process asynchronously
	go h.processMatch(runID, req.Collection, top)
}

// processMatch runs one match run asynchronously
func (h *Handler) processMatch(runID, collection string, top int) {
	defer func() { <-h.matchSem }() // Release semaphore

	ctx, cancel := context.WithTimeout(context.Background(), h.matchTimeout)
	defer cancel()

	if err := h.matchSvc.Run(ctx, runID, collection, top); err != nil {
		log.Error().Err(err).Str("runId", runID).Msg("Match run failed")
		return
	}

	log.Debug().Str("runId", runID).Msg("Match run completed successfully")
}

// GetMatchReport returns the persisted report for one run.
func (h *Handler) GetMatchReport(c *gin.Context) {
	runID := c.Param("runID")

	report, err := h.reportsRepo.GetReportByRunID(c.Request.Context(), runID)
	if err != nil {
		log.Error().Err(err).Str("runId", runID).Msg("Failed to get match report")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get match report",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	if report == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "No report found for runId",
			Code:  "RUN_ID_NOT_FOUND",
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetLatestCollectionReport returns the most recent match report of one
// collection.
func (h *Handler) GetLatestCollectionReport(c *gin.Context) {
	collection := c.Param("collection")

	report, err := h.reportsRepo.GetLatestReportByCollection(c.Request.Context(), collection)
	if err != nil {
		log.Error().Err(err).Str("collection", collection).Msg("Failed to get match report")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get match report",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	if report == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "No report found for collection",
			Code:  "REPORT_NOT_FOUND",
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetCollectionProfiles lists the stored profiles of one collection.
func (h *Handler) GetCollectionProfiles(c *gin.Context) {
	collection := c.Param("collection")

	profiles, err := h.profilesRepo.GetProfilesByCollection(c.Request.Context(), collection)
	if err != nil {
		log.Error().Err(err).Str("collection", collection).Msg("Failed to list profiles")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list profiles",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	if profiles == nil {
		profiles = []*models.ContractProfile{}
	}

	c.JSON(http.StatusOK, gin.H{
		"collection": collection,
		"count":      len(profiles),
		"profiles":   profiles,
	})
}

// GetSelectorContracts lists the contracts implementing a selector. With a
// collection query the stored profiles are indexed in memory; without one
// the lookup runs against the selector arrays in MongoDB.
func (h *Handler) GetSelectorContracts(c *gin.Context) {
	selector := clone.NormalizeSelector(c.Param("selector"))
	collection := c.Query("collection")

	ctx := c.Request.Context()
	contracts := []string{}

	if collection != "" {
		stored, err := h.profilesRepo.GetProfilesByCollection(ctx, collection)
		if err != nil {
			log.Error().Err(err).Str("collection", collection).Msg("Failed to list profiles")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to look up selector",
				Code:  "INTERNAL_ERROR",
			})
			return
		}

		profiles := make([]clone.Profile, 0, len(stored))
		for _, doc := range stored {
			profiles = append(profiles, clone.Profile{File: doc.Identifier(), Selectors: doc.Selectors})
		}

		if found := clone.BuildSelectorIndex(profiles).Lookup(selector); found != nil {
			contracts = found
		}
	} else {
		stored, err := h.profilesRepo.GetProfilesBySelector(ctx, selector, "")
		if err != nil {
			log.Error().Err(err).Str("selector", selector).Msg("Failed to look up selector")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "Failed to look up selector",
				Code:  "INTERNAL_ERROR",
			})
			return
		}

		for _, doc := range stored {
			contracts = append(contracts, doc.Identifier())
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"selector":   selector,
		"collection": collection,
		"contracts":  contracts,
	})
}
