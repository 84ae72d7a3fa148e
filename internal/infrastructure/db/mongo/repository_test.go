package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

func toDoc(t require.TestingT, v any) bson.D {
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	var d bson.D
	require.NoError(t, bson.Unmarshal(raw, &d))
	return d
}

func updated(n int) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "n", Value: n}, bson.E{Key: "nModified", Value: n})
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by identifier", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		want := domain.User{ID: primitive.NewObjectID(), Username: "alice", Email: "alice@example.com", DisplayName: "Alice"}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch, toDoc(mt, want)))

		got, err := repo.FindByIdentifier(context.Background(), "alice@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, want.ID, got.ID)
		assert.Equal(mt, "Alice", got.DisplayName)

		filter := mt.GetStartedEvent().Command.Lookup("filter").String()
		assert.Contains(mt, filter, "$or")
	})

	mt.Run("find by identifier not found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch))

		_, err := repo.FindByIdentifier(context.Background(), "ghost")
		assert.ErrorIs(mt, err, domain.ErrUserNotFound)
	})

	mt.Run("find by identifiers", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		a := domain.User{ID: primitive.NewObjectID(), Username: "a"}
		b := domain.User{ID: primitive.NewObjectID(), Username: "b"}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch, toDoc(mt, a), toDoc(mt, b)))

		got, err := repo.FindByIdentifiers(context.Background(), []string{"a", "b@example.com"})
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, "b", got[1].Username)
	})

	mt.Run("empty identifier list skips the query", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		got, err := repo.FindByIdentifiers(context.Background(), nil)
		require.NoError(mt, err)
		assert.Empty(mt, got)
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		got, err := repo.Create(context.Background(), &domain.User{Username: "carol", Email: "carol@example.com"})
		require.NoError(mt, err)
		assert.False(mt, got.ID.IsZero())
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		_, err := repo.Create(context.Background(), &domain.User{Username: "carol"})
		assert.ErrorIs(mt, err, domain.ErrUserExists)
	})
}

func TestProjectRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by id", func(mt *mtest.T) {
		repo := NewProjectRepository(mt.DB)
		member := primitive.NewObjectID()
		want := domain.Project{
			ID:        primitive.NewObjectID(),
			Name:      "Apollo",
			Status:    domain.ProjectOngoing,
			CreatedBy: primitive.NewObjectID(),
			Members:   []domain.Membership{{MemberID: member, Role: domain.RoleAdmin}},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.projects", mtest.FirstBatch, toDoc(mt, want)))

		got, err := repo.FindByID(context.Background(), want.ID)
		require.NoError(mt, err)
		assert.Equal(mt, "Apollo", got.Name)
		role, ok := got.LedgerRole(member)
		assert.True(mt, ok)
		assert.Equal(mt, domain.RoleAdmin, role)
	})

	mt.Run("find by id not found", func(mt *mtest.T) {
		repo := NewProjectRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.projects", mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, domain.ErrProjectNotFound)
	})

	mt.Run("append members is guarded", func(mt *mtest.T) {
		repo := NewProjectRepository(mt.DB)
		mt.AddMockResponses(updated(1))

		err := repo.AppendMembers(context.Background(), primitive.NewObjectID(), []domain.Membership{
			{MemberID: primitive.NewObjectID(), Role: domain.RoleMember},
			{MemberID: primitive.NewObjectID(), Role: domain.RoleMember},
		})
		require.NoError(mt, err)

		updates := mt.GetStartedEvent().Command.Lookup("updates").String()
		assert.Contains(mt, updates, "$nin")
		assert.Contains(mt, updates, "$each")
	})

	mt.Run("append members guard miss", func(mt *mtest.T) {
		repo := NewProjectRepository(mt.DB)
		mt.AddMockResponses(
			updated(0),
			mtest.CreateCursorResponse(0, "db.projects", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
		)

		err := repo.AppendMembers(context.Background(), primitive.NewObjectID(), []domain.Membership{
			{MemberID: primitive.NewObjectID(), Role: domain.RoleMember},
		})
		assert.ErrorIs(mt, err, domain.ErrMembershipChanged)
	})

	mt.Run("append members missing project", func(mt *mtest.T) {
		repo := NewProjectRepository(mt.DB)
		mt.AddMockResponses(
			updated(0),
			mtest.CreateCursorResponse(0, "db.projects", mtest.FirstBatch),
		)

		err := repo.AppendMembers(context.Background(), primitive.NewObjectID(), []domain.Membership{
			{MemberID: primitive.NewObjectID(), Role: domain.RoleMember},
		})
		assert.ErrorIs(mt, err, domain.ErrProjectNotFound)
	})

	mt.Run("set member role", func(mt *mtest.T) {
		repo := NewProjectRepository(mt.DB)
		mt.AddMockResponses(updated(1))

		err := repo.SetMemberRole(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), domain.RoleViewer)
		require.NoError(mt, err)

		updates := mt.GetStartedEvent().Command.Lookup("updates").String()
		assert.Contains(mt, updates, "members.$.role")
	})

	mt.Run("set member role misses", func(mt *mtest.T) {
		repo := NewProjectRepository(mt.DB)
		mt.AddMockResponses(updated(0))

		err := repo.SetMemberRole(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), domain.RoleViewer)
		assert.ErrorIs(mt, err, domain.ErrMemberNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewProjectRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		require.NoError(mt, repo.Delete(context.Background(), primitive.NewObjectID()))
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewProjectRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		assert.ErrorIs(mt, repo.Delete(context.Background(), primitive.NewObjectID()), domain.ErrProjectNotFound)
	})

	mt.Run("search", func(mt *mtest.T) {
		repo := NewProjectRepository(mt.DB)
		p := domain.Project{ID: primitive.NewObjectID(), Name: "Apollo"}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "db.projects", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(11)}}),
			mtest.CreateCursorResponse(0, "db.projects", mtest.FirstBatch, toDoc(mt, p)),
		)

		got, total, err := repo.Search(context.Background(), ports.ProjectSearchFilter{
			UserID:   primitive.NewObjectID(),
			Keyword:  "apo",
			Page:     2,
			PageSize: 10,
		})
		require.NoError(mt, err)
		assert.Equal(mt, int64(11), total)
		require.Len(mt, got, 1)
		assert.Equal(mt, "Apollo", got[0].Name)
	})
}

func TestSearchFilter(t *testing.T) {
	uid := primitive.NewObjectID()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	f := searchFilter(ports.ProjectSearchFilter{
		UserID:      uid,
		Keyword:     "a.b",
		Status:      "Ongoing",
		CreatedFrom: from,
	})

	assert.Contains(t, f, "$or")
	assert.Equal(t, primitive.Regex{Pattern: `a\.b`, Options: "i"}, f["name"])
	assert.Equal(t, "Ongoing", f["status"])
	assert.Equal(t, bson.M{"$gte": from}, f["created_at"])

	bare := searchFilter(ports.ProjectSearchFilter{UserID: uid})
	assert.NotContains(t, bare, "name")
	assert.NotContains(t, bare, "created_at")
}

func TestTaskRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("update sets present fields only", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB)
		mt.AddMockResponses(updated(1))

		name := "renamed"
		err := repo.Update(context.Background(), primitive.NewObjectID(), domain.TaskPatch{Name: &name})
		require.NoError(mt, err)

		updates := mt.GetStartedEvent().Command.Lookup("updates").String()
		assert.Contains(mt, updates, "renamed")
		assert.NotContains(mt, updates, "due_date")
	})

	mt.Run("update missing task", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB)
		mt.AddMockResponses(updated(0))

		status := "Completed"
		err := repo.Update(context.Background(), primitive.NewObjectID(), domain.TaskPatch{Status: &status})
		assert.ErrorIs(mt, err, domain.ErrTaskNotFound)
	})

	mt.Run("set progress", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB)
		mt.AddMockResponses(updated(1))
		require.NoError(mt, repo.SetProgress(context.Background(), primitive.NewObjectID(), 140))
	})

	mt.Run("list by project", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB)
		pid := primitive.NewObjectID()
		a := domain.Task{ID: primitive.NewObjectID(), ProjectID: pid, Name: "a", DueDate: "2025-01-01"}
		b := domain.Task{ID: primitive.NewObjectID(), ProjectID: pid, Name: "b"}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.tasks", mtest.FirstBatch, toDoc(mt, a), toDoc(mt, b)))

		got, err := repo.ListByProject(context.Background(), pid)
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, "2025-01-01", got[0].DueDate)
		assert.Nil(mt, got[1].Progress)
	})

	mt.Run("delete by project", func(mt *mtest.T) {
		repo := NewTaskRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))

		n, err := repo.DeleteByProject(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
	})
}

func TestPatchDocument(t *testing.T) {
	assignee := primitive.NewObjectID()
	due := "2030-01-01"

	got := patchDocument(domain.TaskPatch{DueDate: &due, AssignedTo: &assignee})
	assert.Equal(t, bson.M{"due_date": due, "assigned_to": assignee}, got)
	assert.Empty(t, patchDocument(domain.TaskPatch{}))
}
