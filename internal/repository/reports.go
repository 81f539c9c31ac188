package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/clonelens/clonelens/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const reportsCollection = "match_reports"

type ReportsRepository struct {
	mongoRepo *MongoRepository
}

func NewReportsRepository(mongoRepo *MongoRepository) *ReportsRepository {
	return &ReportsRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *ReportsRepository) InsertReport(ctx context.Context, report *models.MatchReport) error {
	report.CreatedAt = time.Now()

	err := r.mongoRepo.InsertOne(ctx, reportsCollection, report)
	if err != nil {
		return fmt.Errorf("failed to insert match report: %w", err)
	}

	return nil
}

func (r *ReportsRepository) GetReportByRunID(ctx context.Context, runID string) (*models.MatchReport, error) {
	filter := bson.M{"runId": runID}

	var report models.MatchReport
	err := r.mongoRepo.FindOne(ctx, reportsCollection, filter).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find match report: %w", err)
	}

	return &report, nil
}

func (r *ReportsRepository) GetLatestReportByCollection(ctx context.Context, collection string) (*models.MatchReport, error) {
	filter := bson.M{"collection": collection}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var report models.MatchReport
	err := r.mongoRepo.FindOne(ctx, reportsCollection, filter, opts).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find match report: %w", err)
	}

	return &report, nil
}

// UpdateReportByRunID overwrites the run outcome fields, leaving runId,
// collection and createdAt as inserted.
func (r *ReportsRepository) UpdateReportByRunID(ctx context.Context, runID string, report *models.MatchReport) error {
	filter := bson.M{"runId": runID}
	update := bson.M{"$set": bson.M{
		"status":         report.Status,
		"profiles":       report.Profiles,
		"pairs_compared": report.PairsCompared,
		"top_pairs":      report.TopPairs,
		"error":          report.Error,
		"duration_ms":    report.DurationMs,
	}}

	err := r.mongoRepo.UpdateOne(ctx, reportsCollection, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update match report: %w", err)
	}

	return nil
}
