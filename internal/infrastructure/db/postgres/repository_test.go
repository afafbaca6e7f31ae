package postgres

import (
	"testing"

	"article-service/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return db
}

func mustCreateUser(t *testing.T, repo *UserRepository, username, email string) *entities.User {
	t.Helper()

	validated, err := entities.NewValidatedUser(entities.NewUser(username, email, "digest"))
	require.NoError(t, err)

	user, err := repo.Create(validated)
	require.NoError(t, err)
	return user
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db).(*UserRepository)

	created := mustCreateUser(t, repo, "alice", "alice@example.com")
	assert.Positive(t, created.Id)

	byID, err := repo.FindById(created.Id)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "alice", byID.Username)

	byEmail, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, created.Id, byEmail.Id)
}

func TestUserRepositoryFindMissingReturnsNil(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db).(*UserRepository)

	user, err := repo.FindById(9999)
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.FindByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositoryExistsByUsernameOrEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db).(*UserRepository)
	mustCreateUser(t, repo, "alice", "alice@example.com")

	tests := []struct {
		name     string
		username string
		email    string
		want     bool
	}{
		{"both taken", "alice", "alice@example.com", true},
		{"username taken", "alice", "new@example.com", true},
		{"email taken", "newname", "alice@example.com", true},
		{"both free", "bob", "bob@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := repo.ExistsByUsernameOrEmail(tt.username, tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)
		})
	}
}

func TestUserRepositoryDuplicateInsertFails(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db).(*UserRepository)
	mustCreateUser(t, repo, "alice", "alice@example.com")

	validated, err := entities.NewValidatedUser(entities.NewUser("alice2", "alice@example.com", "digest"))
	require.NoError(t, err)

	_, err = repo.Create(validated)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestUserRepositoryUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db).(*UserRepository)
	created := mustCreateUser(t, repo, "alice", "alice@example.com")

	require.NoError(t, created.UpdateProfile("alice2", "alice2@example.com"))
	validated, err := entities.NewValidatedUser(created)
	require.NoError(t, err)

	updated, err := repo.Update(validated)
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "alice2@example.com", updated.Email)
	assert.Equal(t, created.Id, updated.Id)
}

func TestUserRepositoryDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db).(*UserRepository)
	created := mustCreateUser(t, repo, "alice", "alice@example.com")

	deleted, err := repo.Delete(created.Id)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Second delete hits zero rows.
	deleted, err = repo.Delete(created.Id)
	require.NoError(t, err)
	assert.False(t, deleted)

	user, err := repo.FindById(created.Id)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func mustCreateArticle(t *testing.T, repo *ArticleRepository, title string, submittedBy int64) *entities.Article {
	t.Helper()

	validated, err := entities.NewValidatedArticle(entities.NewArticle(title, "body", "general", submittedBy))
	require.NoError(t, err)

	article, err := repo.Create(validated)
	require.NoError(t, err)
	return article
}

func TestArticleRepositoryCreateAndFind(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db).(*UserRepository)
	articles := NewArticleRepository(db).(*ArticleRepository)

	author := mustCreateUser(t, users, "alice", "alice@example.com")
	created := mustCreateArticle(t, articles, "first", author.Id)
	assert.Positive(t, created.Id)
	assert.Equal(t, author.Id, created.SubmittedBy)

	found, err := articles.FindById(created.Id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "first", found.Title)

	missing, err := articles.FindById(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestArticleRepositoryFindBySubmitter(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db).(*UserRepository)
	articles := NewArticleRepository(db).(*ArticleRepository)

	alice := mustCreateUser(t, users, "alice", "alice@example.com")
	bob := mustCreateUser(t, users, "bob", "bob@example.com")
	mustCreateArticle(t, articles, "by alice 1", alice.Id)
	mustCreateArticle(t, articles, "by bob", bob.Id)
	mustCreateArticle(t, articles, "by alice 2", alice.Id)

	all, err := articles.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := articles.FindBySubmitter(alice.Id)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "by alice 1", mine[0].Title)
	assert.Equal(t, "by alice 2", mine[1].Title)

	// A user with no articles yields an empty slice, not an error.
	none, err := articles.FindBySubmitter(9999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestArticleRepositoryFindBySubmitterWithAuthor(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db).(*UserRepository)
	articles := NewArticleRepository(db).(*ArticleRepository)

	alice := mustCreateUser(t, users, "alice", "alice@example.com")
	mustCreateArticle(t, articles, "joined", alice.Id)

	joined, err := articles.FindBySubmitterWithAuthor(alice.Id)
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, "joined", joined[0].Title)
	assert.Equal(t, "alice", joined[0].AuthorUsername)
	assert.Equal(t, "alice@example.com", joined[0].AuthorEmail)
}
