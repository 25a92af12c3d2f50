//go:build integration

package thread_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"messageboard/internal/app/thread"
	"messageboard/internal/config"
	"messageboard/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

var repositories = map[string]thread.Repository{}

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, pgRepo := mustSetupPostgres(ctx)
	mongoContainer, mongoRepo := mustSetupMongo(ctx)
	repositories[config.StoreDriverPostgres] = pgRepo
	repositories[config.StoreDriverMongo] = mongoRepo

	exitCode := m.Run()

	for _, c := range []testcontainers.Container{pgContainer, mongoContainer} {
		if err := c.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	os.Exit(exitCode)
}

func mustSetupPostgres(ctx context.Context) (testcontainers.Container, thread.Repository) {
	cfg := &config.Config{DBUser: "user", DBPass: "password", DBName: "messageboard"}
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithDatabase(cfg.DBName),
		postgres.WithUsername(cfg.DBUser),
		postgres.WithPassword(cfg.DBPass),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %s", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to obtain container port: %s", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container host: %s", err)
	}
	cfg.DBHost = host
	cfg.DBPort = port.Port()

	logger := zap.NewNop()
	gdb, err := db.Connect(cfg, logger)
	if err != nil {
		log.Fatalf("failed to connect to postgres container: %s", err)
	}
	if err := db.Migrate(gdb, logger); err != nil {
		log.Fatalf("failed to migrate: %s", err)
	}
	return container, thread.NewRepository(gdb)
}

func mustSetupMongo(ctx context.Context) (testcontainers.Container, thread.Repository) {
	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		log.Fatalf("failed to start mongo container: %s", err)
	}
	uri, err := container.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("failed to obtain connection string: %s", err)
	}
	cfg := &config.Config{MongoURI: uri, MongoDB: "messageboard"}
	client, err := db.ConnectMongo(ctx, cfg, zap.NewNop())
	if err != nil {
		log.Fatalf("failed to connect to mongo container: %s", err)
	}
	return container, thread.NewMongoRepository(client.Database(cfg.MongoDB))
}

// forEachStore runs fn against every backend; each run gets its own board.
func forEachStore(t *testing.T, fn func(t *testing.T, repo thread.Repository, board string)) {
	for name, repo := range repositories {
		t.Run(name, func(t *testing.T) {
			fn(t, repo, t.Name())
		})
	}
}

func newThread(board, text string, at time.Time) *thread.Thread {
	return &thread.Thread{
		Board:          board,
		Text:           text,
		DeletePassword: "pw",
		CreatedOn:      at,
		BumpedOn:       at,
	}
}

func TestRepositoryCreateAndFind(t *testing.T) {
	forEachStore(t, func(t *testing.T, repo thread.Repository, board string) {
		ctx := context.Background()
		now := thread.Now()
		th := newThread(board, "hello", now)
		require.NoError(t, repo.Create(ctx, th))
		require.NotEmpty(t, th.ID)

		got, err := repo.FindByID(ctx, board, th.ID)
		require.NoError(t, err)
		assert.Equal(t, "hello", got.Text)
		assert.Equal(t, "pw", got.DeletePassword)
		assert.False(t, got.Reported)
		assert.True(t, now.Equal(got.CreatedOn))
		assert.Empty(t, got.Replies)

		_, err = repo.FindByID(ctx, "elsewhere", th.ID)
		assert.ErrorIs(t, err, thread.ErrThreadNotFound)
	})
}

func TestRepositorySaveKeepsReplyOrder(t *testing.T) {
	forEachStore(t, func(t *testing.T, repo thread.Repository, board string) {
		ctx := context.Background()
		start := thread.Now()
		th := newThread(board, "parent", start)
		require.NoError(t, repo.Create(ctx, th))

		for i, text := range []string{"first", "second", "third"} {
			at := start.Add(time.Duration(i+1) * time.Second)
			th.AddReply(thread.Reply{Text: text, DeletePassword: "pw", CreatedOn: at})
			require.NoError(t, repo.Save(ctx, th))
		}

		got, err := repo.FindByID(ctx, board, th.ID)
		require.NoError(t, err)
		require.Len(t, got.Replies, 3)
		assert.Equal(t, "first", got.Replies[0].Text)
		assert.Equal(t, "third", got.Replies[2].Text)
		assert.True(t, got.BumpedOn.Equal(got.Replies[2].CreatedOn))
		for _, r := range got.Replies {
			assert.NotEmpty(t, r.ID)
		}

		got.Replies[1].Text = thread.DeletedReplyText
		got.Replies[1].Reported = true
		require.NoError(t, repo.Save(ctx, got))

		again, err := repo.FindByID(ctx, board, th.ID)
		require.NoError(t, err)
		require.Len(t, again.Replies, 3)
		assert.Equal(t, got.Replies[1].ID, again.Replies[1].ID)
		assert.Equal(t, thread.DeletedReplyText, again.Replies[1].Text)
		assert.True(t, again.Replies[1].Reported)
	})
}

func TestRepositoryListByBoard(t *testing.T) {
	forEachStore(t, func(t *testing.T, repo thread.Repository, board string) {
		ctx := context.Background()
		start := thread.Now()
		for i := 0; i < 4; i++ {
			require.NoError(t, repo.Create(ctx, newThread(board, "t", start.Add(time.Duration(i)*time.Second))))
		}

		got, err := repo.ListByBoard(ctx, board, 3)
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i := 1; i < len(got); i++ {
			assert.True(t, got[i-1].BumpedOn.After(got[i].BumpedOn))
		}

		empty, err := repo.ListByBoard(ctx, board+"-empty", 10)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

func TestRepositorySetReportedAndDelete(t *testing.T) {
	forEachStore(t, func(t *testing.T, repo thread.Repository, board string) {
		ctx := context.Background()
		th := newThread(board, "t", thread.Now())
		th.AddReply(thread.Reply{Text: "r", DeletePassword: "pw", CreatedOn: th.CreatedOn})
		require.NoError(t, repo.Create(ctx, th))

		require.NoError(t, repo.SetReported(ctx, board, th.ID))
		require.NoError(t, repo.SetReported(ctx, board, th.ID))
		got, err := repo.FindByID(ctx, board, th.ID)
		require.NoError(t, err)
		assert.True(t, got.Reported)

		assert.ErrorIs(t, repo.SetReported(ctx, board, "000000000000000000000000"), thread.ErrThreadNotFound)

		require.NoError(t, repo.Delete(ctx, board, th.ID))
		_, err = repo.FindByID(ctx, board, th.ID)
		assert.ErrorIs(t, err, thread.ErrThreadNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, board, th.ID), thread.ErrThreadNotFound)
	})
}

func TestRepositoryListBoardsAndPing(t *testing.T) {
	forEachStore(t, func(t *testing.T, repo thread.Repository, board string) {
		ctx := context.Background()
		require.NoError(t, repo.Ping(ctx))

		now := thread.Now()
		require.NoError(t, repo.Create(ctx, newThread(board, "a", now)))
		require.NoError(t, repo.Create(ctx, newThread(board, "b", now.Add(time.Second))))

		boards, err := repo.ListBoards(ctx)
		require.NoError(t, err)
		var found *thread.BoardSummary
		for i := range boards {
			if boards[i].Name == board {
				found = &boards[i]
			}
		}
		require.NotNil(t, found)
		assert.Equal(t, int64(2), found.ThreadCount)
		assert.True(t, now.Add(time.Second).Equal(found.BumpedOn))
	})
}
