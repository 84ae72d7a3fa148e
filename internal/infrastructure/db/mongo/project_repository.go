package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

const collectionProjects = "projects"

// ProjectRepository stores projects with their ledger embedded. Ledger writes
// are single UpdateOne calls so the members array never sees a partial write.
type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.Members == nil {
		p.Members = []domain.Membership{}
	}
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Project
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return &p, nil
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, visibleTo(userID), opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	var out []*domain.Project
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return out, nil
}

// Search returns one page of the user's projects, newest first.
func (r *ProjectRepository) Search(ctx context.Context, f ports.ProjectSearchFilter) ([]*domain.Project, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := searchFilter(f)
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((f.Page - 1) * f.PageSize)).
		SetLimit(int64(f.PageSize))
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("search projects: %w", err)
	}
	out := []*domain.Project{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, fmt.Errorf("decode projects: %w", err)
	}
	return out, total, nil
}

// AppendMembers pushes every entry in one update. The filter refuses the write
// when any of the ids appeared since the caller read the project.
func (r *ProjectRepository) AppendMembers(ctx context.Context, projectID primitive.ObjectID, members []domain.Membership) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ids := make([]primitive.ObjectID, len(members))
	for i, m := range members {
		ids[i] = m.MemberID
	}
	filter := bson.M{
		"_id":               projectID,
		"members.member_id": bson.M{"$nin": ids},
	}
	update := bson.M{"$push": bson.M{"members": bson.M{"$each": members}}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("append members: %w", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": projectID})
	if err != nil {
		return fmt.Errorf("append members: %w", err)
	}
	if n == 0 {
		return domain.ErrProjectNotFound
	}
	return domain.ErrMembershipChanged
}

// SetMemberRole rewrites the role of the entry matched by the positional operator.
func (r *ProjectRepository) SetMemberRole(ctx context.Context, projectID, memberID primitive.ObjectID, role domain.Role) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": projectID, "members.member_id": memberID}
	update := bson.M{"$set": bson.M{"members.$.role": role}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("set member role: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes of the projects collection.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "members.member_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("project indexes: %w", err)
	}
	return nil
}

func visibleTo(userID primitive.ObjectID) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"created_by": userID},
		bson.M{"members.member_id": userID},
	}}
}

func searchFilter(f ports.ProjectSearchFilter) bson.M {
	filter := visibleTo(f.UserID)
	if f.Keyword != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Keyword), Options: "i"}
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	created := bson.M{}
	if !f.CreatedFrom.IsZero() {
		created["$gte"] = f.CreatedFrom
	}
	if !f.CreatedTo.IsZero() {
		created["$lte"] = f.CreatedTo
	}
	if len(created) > 0 {
		filter["created_at"] = created
	}
	return filter
}
