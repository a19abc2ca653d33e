package repository

import (
	"context"
	"errors"
	"time"

	apperrors "teamstack/internal/errors"
	"teamstack/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TeamUpdate carries the updatable team fields. Non-nil values are
// written verbatim; nil fields are excluded from the write and keep
// their stored value.
type TeamUpdate struct {
	Name   *string
	Slug   *string
	Domain *string
}

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindBySlug(ctx context.Context, slug string) (*models.Team, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Team, int, error)
	UpdateBySlug(ctx context.Context, slug string, update TeamUpdate) (*models.Team, error)
	SetLogoKey(ctx context.Context, id primitive.ObjectID, key string) error
	SoftDeleteBySlug(ctx context.Context, slug string) error
}

// teamRepository implements TeamRepository using MongoDB.
type teamRepository struct {
	collection *mongo.Collection
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(db *mongo.Database) TeamRepository {
	return &teamRepository{
		collection: db.Collection("teams"),
	}
}

// notDeleted excludes soft-deleted teams from a filter.
func notDeleted(filter bson.M) bson.M {
	filter["deletedAt"] = bson.M{"$exists": false}
	return filter
}

// Create inserts a new team into the database.
func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	team.ID = primitive.NewObjectID()
	team.CreatedAt = time.Now()
	team.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, team)
	return err
}

// FindByID retrieves a team by ID. Excludes soft-deleted teams.
func (r *teamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOne(ctx, notDeleted(bson.M{"_id": id})).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// FindBySlug retrieves a team by slug. Excludes soft-deleted teams.
func (r *teamRepository) FindBySlug(ctx context.Context, slug string) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOne(ctx, notDeleted(bson.M{"slug": slug})).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// FindByUserID returns paginated teams where the user is a member.
func (r *teamRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Team, int, error) {
	skip := (page - 1) * limit

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"deletedAt": bson.M{"$exists": false}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "team_members",
			"localField":   "_id",
			"foreignField": "teamId",
			"as":           "members",
		}}},
		{{Key: "$match", Value: bson.M{"members.userId": userID}}},
		{{Key: "$project", Value: bson.M{"members": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	countPipeline := append(pipeline, bson.D{{Key: "$count", Value: "total"}})
	countCursor, err := r.collection.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, 0, err
	}
	defer countCursor.Close(ctx)

	var countResult []struct {
		Total int `bson:"total"`
	}
	if err := countCursor.All(ctx, &countResult); err != nil {
		return nil, 0, err
	}

	total := 0
	if len(countResult) > 0 {
		total = countResult[0].Total
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$skip", Value: int64(skip)}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
	)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, 0, err
	}

	if teams == nil {
		teams = []models.Team{}
	}

	return teams, total, nil
}

// UpdateBySlug writes the present fields to the team identified by slug
// and returns the updated document. Absent fields are not touched.
func (r *teamRepository) UpdateBySlug(ctx context.Context, slug string, update TeamUpdate) (*models.Team, error) {
	set := bson.M{"updatedAt": time.Now()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Slug != nil {
		set["slug"] = *update.Slug
	}
	if update.Domain != nil {
		set["domain"] = *update.Domain
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var team models.Team
	err := r.collection.FindOneAndUpdate(ctx, notDeleted(bson.M{"slug": slug}), bson.M{"$set": set}, opts).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// SetLogoKey records the storage key of the team's logo object.
func (r *teamRepository) SetLogoKey(ctx context.Context, id primitive.ObjectID, key string) error {
	result, err := r.collection.UpdateOne(ctx,
		notDeleted(bson.M{"_id": id}),
		bson.M{"$set": bson.M{"logoKey": key, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

// SoftDeleteBySlug marks the team identified by slug as deleted.
func (r *teamRepository) SoftDeleteBySlug(ctx context.Context, slug string) error {
	result, err := r.collection.UpdateOne(ctx,
		notDeleted(bson.M{"slug": slug}),
		bson.M{"$set": bson.M{"deletedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}
