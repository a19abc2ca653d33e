package main

import (
	"bytes"
	"context"
	"log"
	"time"

	"teamstack/internal/config"
	"teamstack/internal/database"
	"teamstack/internal/models"
	"teamstack/internal/storage"
	"teamstack/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedUser represents a user document for seeding.
type SeedUser struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// SeedTeam represents a team document for seeding.
type SeedTeam struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Slug      string             `bson:"slug"`
	Domain    string             `bson:"domain"`
	LogoKey   string             `bson:"logoKey,omitempty"`
	OwnerID   primitive.ObjectID `bson:"ownerId"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// SeedMember represents a team membership document for seeding.
type SeedMember struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	TeamID   primitive.ObjectID `bson:"teamId"`
	UserID   primitive.ObjectID `bson:"userId"`
	Role     string             `bson:"role"`
	JoinedAt time.Time          `bson:"joinedAt"`
}

// SeedInvitation represents a team invitation document for seeding.
type SeedInvitation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	TeamID    primitive.ObjectID `bson:"teamId"`
	Email     string             `bson:"email"`
	InvitedBy primitive.ObjectID `bson:"invitedBy"`
	Role      string             `bson:"role"`
	ExpiresAt time.Time          `bson:"expiresAt"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Connect to S3/MinIO
	s3Client := storage.NewS3Client(
		cfg.S3Endpoint,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3UseSSL,
	)

	ctx := context.Background()

	// Seed users
	userIDs := seedUsers(ctx, mongoDB.Database)

	// Seed teams, memberships and invitations
	teamIDs := seedTeams(ctx, mongoDB.Database, s3Client, userIDs)
	seedMembers(ctx, mongoDB.Database, teamIDs, userIDs)
	seedInvitations(ctx, mongoDB.Database, teamIDs, userIDs)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")

	// Clear existing users
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	// Hash passwords
	password1, _ := auth.HashPassword("password123")
	password2, _ := auth.HashPassword("password456")
	password3, _ := auth.HashPassword("password789")

	now := time.Now()

	users := []interface{}{
		SeedUser{
			Email:     "alice@example.com",
			Password:  password1,
			Name:      "Alice Johnson",
			CreatedAt: now,
			UpdatedAt: now,
		},
		SeedUser{
			Email:     "bob@example.com",
			Password:  password2,
			Name:      "Bob Smith",
			CreatedAt: now,
			UpdatedAt: now,
		},
		SeedUser{
			Email:     "carol@example.com",
			Password:  password3,
			Name:      "Carol Nguyen",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))

	// Convert to ObjectIDs
	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}

	return userIDs
}

func seedTeams(ctx context.Context, db *mongo.Database, s3Client *storage.S3Client, userIDs []primitive.ObjectID) []primitive.ObjectID {
	collection := db.Collection("teams")

	// Clear existing teams
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear teams: %v", err)
	}

	now := time.Now()

	acmeID := primitive.NewObjectID()
	globexID := primitive.NewObjectID()

	teams := []interface{}{
		SeedTeam{
			ID:        acmeID,
			Name:      "Acme Corporation",
			Slug:      "acme",
			Domain:    "acme.io",
			LogoKey:   storage.TeamLogoKey(acmeID.Hex()),
			OwnerID:   userIDs[0],
			CreatedAt: now.Add(-72 * time.Hour),
			UpdatedAt: now.Add(-24 * time.Hour),
		},
		SeedTeam{
			ID:        globexID,
			Name:      "Globex",
			Slug:      "globex",
			Domain:    "globex.dev",
			OwnerID:   userIDs[1],
			CreatedAt: now.Add(-48 * time.Hour),
			UpdatedAt: now.Add(-48 * time.Hour),
		},
	}

	result, err := collection.InsertMany(ctx, teams)
	if err != nil {
		log.Fatalf("Failed to seed teams: %v", err)
	}

	log.Printf("Seeded %d teams", len(result.InsertedIDs))

	// Upload a placeholder logo for the team that has a logo key
	uploadPlaceholderLogo(ctx, s3Client, storage.TeamLogoKey(acmeID.Hex()))

	return []primitive.ObjectID{acmeID, globexID}
}

func seedMembers(ctx context.Context, db *mongo.Database, teamIDs, userIDs []primitive.ObjectID) {
	collection := db.Collection("team_members")

	// Clear existing memberships
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear team members: %v", err)
	}

	now := time.Now()

	members := []interface{}{
		// Acme: Alice owns, Bob is admin, Carol is a member
		SeedMember{TeamID: teamIDs[0], UserID: userIDs[0], Role: models.RoleOwner, JoinedAt: now.Add(-72 * time.Hour)},
		SeedMember{TeamID: teamIDs[0], UserID: userIDs[1], Role: models.RoleAdmin, JoinedAt: now.Add(-60 * time.Hour)},
		SeedMember{TeamID: teamIDs[0], UserID: userIDs[2], Role: models.RoleMember, JoinedAt: now.Add(-36 * time.Hour)},
		// Globex: Bob owns
		SeedMember{TeamID: teamIDs[1], UserID: userIDs[1], Role: models.RoleOwner, JoinedAt: now.Add(-48 * time.Hour)},
	}

	result, err := collection.InsertMany(ctx, members)
	if err != nil {
		log.Fatalf("Failed to seed team members: %v", err)
	}

	log.Printf("Seeded %d team members", len(result.InsertedIDs))
}

func seedInvitations(ctx context.Context, db *mongo.Database, teamIDs, userIDs []primitive.ObjectID) {
	collection := db.Collection("team_invitations")

	// Clear existing invitations
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear team invitations: %v", err)
	}

	now := time.Now()

	invitations := []interface{}{
		SeedInvitation{
			TeamID:    teamIDs[1],
			Email:     "carol@example.com",
			InvitedBy: userIDs[1],
			Role:      models.RoleMember,
			ExpiresAt: now.Add(7 * 24 * time.Hour),
			CreatedAt: now.Add(-3 * time.Hour),
		},
		SeedInvitation{
			TeamID:    teamIDs[0],
			Email:     "dave@example.com",
			InvitedBy: userIDs[0],
			Role:      models.RoleAdmin,
			ExpiresAt: now.Add(7 * 24 * time.Hour),
			CreatedAt: now.Add(-1 * time.Hour),
		},
	}

	result, err := collection.InsertMany(ctx, invitations)
	if err != nil {
		log.Fatalf("Failed to seed team invitations: %v", err)
	}

	log.Printf("Seeded %d team invitations", len(result.InsertedIDs))
}

// uploadPlaceholderLogo uploads a placeholder logo image to S3.
func uploadPlaceholderLogo(ctx context.Context, s3Client *storage.S3Client, key string) {
	// Minimal PNG header followed by filler bytes
	placeholder := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0x00}, 64)...)

	err := s3Client.PutObject(ctx, key, bytes.NewReader(placeholder), "image/png")
	if err != nil {
		log.Printf("Warning: Failed to upload %s: %v", key, err)
		return
	}

	log.Printf("Uploaded placeholder logo: %s", key)
}
