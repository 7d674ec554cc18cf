package repository_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"mentoria_engine/internal/model"
	"mentoria_engine/internal/repository"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDB *gorm.DB

const dbContainerName = "test_postgres_mentoria_repo"

// TestMain boots a throwaway PostgreSQL container. The repository SQL carries
// postgres-specific pieces (soft-delete filters, the session-count join) that
// sqlite cannot fully vouch for. When Docker is unavailable the tests skip
// instead of failing.
func TestMain(m *testing.M) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	pool, err := dockertest.NewPool("")
	if err != nil {
		logger.Warn("Docker not available, skipping postgres repository tests", slog.Any("error", err))
		os.Exit(m.Run())
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       dbContainerName,
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=mentoria_engine",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		logger.Warn("Could not start postgres container, skipping postgres repository tests", slog.Any("error", err))
		os.Exit(m.Run())
	}

	dsn := fmt.Sprintf("host=localhost port=%s user=user password=secret dbname=mentoria_engine sslmode=disable",
		resource.GetPort("5432/tcp"))

	if err = pool.Retry(func() error {
		var errRetry error
		testDB, errRetry = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if errRetry != nil {
			return errRetry
		}
		sqlDB, errRetry := testDB.DB()
		if errRetry != nil {
			return errRetry
		}
		return sqlDB.Ping()
	}); err != nil {
		if pErr := pool.Purge(resource); pErr != nil {
			log.Printf("Warning: could not purge resource: %s", pErr)
		}
		log.Fatalf("Could not connect to postgres container: %s", err)
	}

	if err := repository.AutoMigrate(testDB); err != nil {
		log.Fatalf("Could not migrate database: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Fatalf("Could not purge postgres resource: %s", err)
	}
	os.Exit(code)
}

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("postgres container unavailable")
	}
	return testDB
}

func seedProgram(t *testing.T, db *gorm.DB) *model.Program {
	t.Helper()
	program := &model.Program{ProgramID: uuid.New(), Name: "Programa " + uuid.NewString()}
	require.NoError(t, db.Create(program).Error)
	return program
}

func TestStudentRepository_UniquePerProgram(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := repository.NewGormStudentRepository()

	programA := seedProgram(t, db)
	programB := seedProgram(t, db)

	first := &model.Student{StudentID: uuid.New(), ProgramID: programA.ProgramID, ExternalID: "A001", Name: "Maria"}
	require.NoError(t, repo.Create(ctx, db, first))

	// Same external id in another program is a different person.
	other := &model.Student{StudentID: uuid.New(), ProgramID: programB.ProgramID, ExternalID: "A001", Name: "Outra Maria"}
	require.NoError(t, repo.Create(ctx, db, other))

	// Duplicate pair inside one program violates the unique index.
	dup := &model.Student{StudentID: uuid.New(), ProgramID: programA.ProgramID, ExternalID: "A001", Name: "Maria de novo"}
	assert.Error(t, repo.Create(ctx, db, dup))

	found, err := repo.FindByExternalID(ctx, db, programA.ProgramID, "A001")
	require.NoError(t, err)
	assert.Equal(t, first.StudentID, found.StudentID)

	_, err = repo.FindByExternalID(ctx, db, programA.ProgramID, "A999")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestMentorRepository_FindByNameIsCaseInsensitive(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := repository.NewGormMentorRepository()

	program := seedProgram(t, db)
	mentor := &model.Mentor{MentorID: uuid.New(), ProgramID: &program.ProgramID, Name: "Adriana Deus", Active: true}
	require.NoError(t, repo.Create(ctx, db, mentor))

	found, err := repo.FindByName(ctx, db, program.ProgramID, "  ADRIANA DEUS ")
	require.NoError(t, err)
	assert.Equal(t, mentor.MentorID, found.MentorID)

	// A suffixed variant is a distinct mentor, not a match.
	_, err = repo.FindByName(ctx, db, program.ProgramID, "Adriana Deus - Coordenação")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestMentorRepository_ListWithSessionCounts(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	mentorRepo := repository.NewGormMentorRepository()
	sessionRepo := repository.NewGormSessionRepository()

	program := seedProgram(t, db)
	student := &model.Student{StudentID: uuid.New(), ProgramID: program.ProgramID, ExternalID: "A001", Name: "Maria"}
	require.NoError(t, db.Create(student).Error)

	busy := &model.Mentor{MentorID: uuid.New(), ProgramID: &program.ProgramID, Name: "Bruno Costa", Active: true}
	idle := &model.Mentor{MentorID: uuid.New(), ProgramID: &program.ProgramID, Name: "Carla Dias", Active: true}
	fallback := &model.Mentor{MentorID: uuid.New(), ProgramID: &program.ProgramID, Name: "Consultor não identificado", IsFallback: true}
	require.NoError(t, mentorRepo.Create(ctx, db, busy))
	require.NoError(t, mentorRepo.Create(ctx, db, idle))
	require.NoError(t, mentorRepo.Create(ctx, db, fallback))

	for n := 1; n <= 3; n++ {
		require.NoError(t, sessionRepo.Create(ctx, db, &model.MentoringSession{
			SessionID: uuid.New(), StudentID: student.StudentID, MentorID: busy.MentorID,
			SessionNumber: n, Presence: model.Present, TaskStatus: model.TaskNone,
		}))
	}

	loads, err := mentorRepo.ListWithSessionCounts(ctx, db, program.ProgramID)
	require.NoError(t, err)

	counts := map[string]int64{}
	for _, load := range loads {
		counts[load.Name] = load.SessionCount
	}
	assert.Equal(t, int64(3), counts["Bruno Costa"])
	assert.Equal(t, int64(0), counts["Carla Dias"])
	// The fallback bucket never shows up as a merge candidate.
	_, listed := counts["Consultor não identificado"]
	assert.False(t, listed)
}

func TestSessionRepository_ReassignAndClear(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	sessionRepo := repository.NewGormSessionRepository()

	program := seedProgram(t, db)
	student := &model.Student{StudentID: uuid.New(), ProgramID: program.ProgramID, ExternalID: "A001", Name: "Maria"}
	require.NoError(t, db.Create(student).Error)
	from := &model.Mentor{MentorID: uuid.New(), ProgramID: &program.ProgramID, Name: "De", Active: true}
	to := &model.Mentor{MentorID: uuid.New(), ProgramID: &program.ProgramID, Name: "Para", Active: true}
	require.NoError(t, db.Create(from).Error)
	require.NoError(t, db.Create(to).Error)

	fileID := uuid.New()
	for n := 1; n <= 2; n++ {
		require.NoError(t, sessionRepo.Create(ctx, db, &model.MentoringSession{
			SessionID: uuid.New(), StudentID: student.StudentID, MentorID: from.MentorID,
			SessionNumber: n, Presence: model.Present, TaskStatus: model.TaskNone,
			SourceFileID: &fileID,
		}))
	}

	moved, err := sessionRepo.ReassignMentor(ctx, db, from.MentorID, to.MentorID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), moved)

	count, err := sessionRepo.CountByMentor(ctx, db, to.MentorID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	cleared, err := sessionRepo.DeleteBySourceFile(ctx, db, fileID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cleared)

	count, err = sessionRepo.CountByMentor(ctx, db, to.MentorID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSessionRepository_OrphanMentorIDs(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	sessionRepo := repository.NewGormSessionRepository()
	mentorRepo := repository.NewGormMentorRepository()

	program := seedProgram(t, db)
	student := &model.Student{StudentID: uuid.New(), ProgramID: program.ProgramID, ExternalID: "A001", Name: "Maria"}
	require.NoError(t, db.Create(student).Error)
	mentor := &model.Mentor{MentorID: uuid.New(), ProgramID: &program.ProgramID, Name: "Efêmera", Active: true}
	require.NoError(t, db.Create(mentor).Error)

	require.NoError(t, sessionRepo.Create(ctx, db, &model.MentoringSession{
		SessionID: uuid.New(), StudentID: student.StudentID, MentorID: mentor.MentorID,
		SessionNumber: 1, Presence: model.Present, TaskStatus: model.TaskNone,
	}))

	orphans, err := sessionRepo.OrphanMentorIDs(ctx, db, program.ProgramID)
	require.NoError(t, err)
	assert.Empty(t, orphans)

	// Deleting the mentor outside the merge path leaves its sessions orphaned.
	_, err = mentorRepo.HardDelete(ctx, db, mentor.MentorID)
	require.NoError(t, err)

	orphans, err = sessionRepo.OrphanMentorIDs(ctx, db, program.ProgramID)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, mentor.MentorID, orphans[0])
}
