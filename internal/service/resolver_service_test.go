package service

import (
	"context"
	"errors"
	"testing"

	"mentoria_engine/internal/model"
	"mentoria_engine/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func testBatchContext(programID uuid.UUID) model.BatchContext {
	return model.BatchContext{
		ProgramID: programID,
		BatchID:   uuid.New(),
		FileID:    uuid.New(),
		FileType:  model.FileMentoria,
	}
}

func TestResolverService_ResolveStudent(t *testing.T) {
	ctx := context.Background()
	programID := uuid.New()
	existingID := uuid.New()

	tests := []struct {
		name       string
		externalID string
		rowName    string
		setupMock  func(studentRepo *mocks.StudentRepository, auditRepo *mocks.AuditRepository)
		wantErr    error
		wantAction string
	}{
		{
			name:       "unknown external id creates the student and logs it",
			externalID: "A001",
			rowName:    "Maria Silva",
			setupMock: func(studentRepo *mocks.StudentRepository, auditRepo *mocks.AuditRepository) {
				studentRepo.On("FindByExternalID", ctx, mock.AnythingOfType("*gorm.DB"), programID, "A001").
					Return(nil, model.ErrNotFound).Once()
				studentRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Student")).
					Run(func(args mock.Arguments) {
						student := args.Get(2).(*model.Student)
						assert.Equal(t, programID, student.ProgramID)
						assert.Equal(t, "A001", student.ExternalID)
						assert.Equal(t, "Maria Silva", student.Name)
						assert.NotEqual(t, uuid.Nil, student.StudentID)
					}).Return(nil).Once()
				auditRepo.On("CreateResolutionLog", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ResolutionLog")).
					Run(func(args mock.Arguments) {
						entry := args.Get(2).(*model.ResolutionLog)
						assert.Equal(t, "student", entry.EntityKind)
						assert.Equal(t, model.ResolutionCreated, entry.Action)
					}).Return(nil).Once()
			},
		},
		{
			name:       "known external id matches without updating",
			externalID: "A002",
			rowName:    "Maria Silva",
			setupMock: func(studentRepo *mocks.StudentRepository, auditRepo *mocks.AuditRepository) {
				existing := &model.Student{
					StudentID: existingID, ProgramID: programID,
					ExternalID: "A002", Name: "Maria Silva", Email: "m@x.com",
				}
				// Looked up twice: once to resolve, once to return fresh state.
				studentRepo.On("FindByExternalID", ctx, mock.AnythingOfType("*gorm.DB"), programID, "A002").
					Return(existing, nil).Twice()
			},
		},
		{
			name:       "empty fields are filled from the row",
			externalID: "A003",
			rowName:    "Carla Dias",
			setupMock: func(studentRepo *mocks.StudentRepository, auditRepo *mocks.AuditRepository) {
				existing := &model.Student{
					StudentID: existingID, ProgramID: programID,
					ExternalID: "A003", Name: "",
				}
				studentRepo.On("FindByExternalID", ctx, mock.AnythingOfType("*gorm.DB"), programID, "A003").
					Return(existing, nil).Twice()
				studentRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), existingID,
					map[string]interface{}{"name": "Carla Dias"}).
					Return(nil).Once()
				auditRepo.On("CreateResolutionLog", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ResolutionLog")).
					Run(func(args mock.Arguments) {
						entry := args.Get(2).(*model.ResolutionLog)
						assert.Equal(t, model.ResolutionUpdated, entry.Action)
					}).Return(nil).Once()
			},
		},
		{
			name:       "blank external id is rejected",
			externalID: "   ",
			setupMock:  func(studentRepo *mocks.StudentRepository, auditRepo *mocks.AuditRepository) {},
			wantErr:    model.ErrMissingIdentifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			studentRepo := new(mocks.StudentRepository)
			mentorRepo := new(mocks.MentorRepository)
			programRepo := new(mocks.ProgramRepository)
			auditRepo := new(mocks.AuditRepository)
			tt.setupMock(studentRepo, auditRepo)

			svc := NewResolverService(db, studentRepo, mentorRepo, programRepo, auditRepo)
			student, err := svc.ResolveStudent(ctx, testBatchContext(programID), tt.externalID, tt.rowName, "", nil)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, student)
			} else {
				require.NoError(t, err)
				require.NotNil(t, student)
			}
			studentRepo.AssertExpectations(t)
			auditRepo.AssertExpectations(t)
		})
	}
}

func TestResolverService_ResolveStudent_NameConflictDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	programID := uuid.New()
	existingID := uuid.New()

	db := setupTestDB(t)
	studentRepo := new(mocks.StudentRepository)
	auditRepo := new(mocks.AuditRepository)

	existing := &model.Student{
		StudentID: existingID, ProgramID: programID,
		ExternalID: "A010", Name: "Maria Silva",
	}
	studentRepo.On("FindByExternalID", ctx, mock.AnythingOfType("*gorm.DB"), programID, "A010").
		Return(existing, nil).Twice()
	// No Update call expected: the conflicting name must not win.

	svc := NewResolverService(db, studentRepo, new(mocks.MentorRepository), new(mocks.ProgramRepository), auditRepo)
	student, err := svc.ResolveStudent(ctx, testBatchContext(programID), "A010", "Maria S. Oliveira", "", nil)

	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", student.Name)
	studentRepo.AssertExpectations(t)
	studentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolverService_ResolveMentor(t *testing.T) {
	ctx := context.Background()
	programID := uuid.New()

	t.Run("existing name matches case-insensitively", func(t *testing.T) {
		db := setupTestDB(t)
		mentorRepo := new(mocks.MentorRepository)
		auditRepo := new(mocks.AuditRepository)

		existing := &model.Mentor{MentorID: uuid.New(), Name: "Adriana Deus"}
		mentorRepo.On("FindByName", ctx, mock.AnythingOfType("*gorm.DB"), programID, "adriana deus").
			Return(existing, nil).Once()

		svc := NewResolverService(db, new(mocks.StudentRepository), mentorRepo, new(mocks.ProgramRepository), auditRepo)
		mentor, err := svc.ResolveMentor(ctx, testBatchContext(programID), "  adriana deus ")

		require.NoError(t, err)
		assert.Equal(t, existing.MentorID, mentor.MentorID)
		mentorRepo.AssertExpectations(t)
	})

	t.Run("distinct name variant becomes its own mentor", func(t *testing.T) {
		db := setupTestDB(t)
		mentorRepo := new(mocks.MentorRepository)
		auditRepo := new(mocks.AuditRepository)

		mentorRepo.On("FindByName", ctx, mock.AnythingOfType("*gorm.DB"), programID, "Adriana Deus - Coordenação").
			Return(nil, model.ErrNotFound).Once()
		mentorRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Mentor")).
			Run(func(args mock.Arguments) {
				mentor := args.Get(2).(*model.Mentor)
				assert.Equal(t, "Adriana Deus - Coordenação", mentor.Name)
				assert.False(t, mentor.IsFallback)
			}).Return(nil).Once()
		auditRepo.On("CreateResolutionLog", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ResolutionLog")).
			Return(nil).Once()

		svc := NewResolverService(db, new(mocks.StudentRepository), mentorRepo, new(mocks.ProgramRepository), auditRepo)
		mentor, err := svc.ResolveMentor(ctx, testBatchContext(programID), "Adriana Deus - Coordenação")

		require.NoError(t, err)
		require.NotNil(t, mentor)
		mentorRepo.AssertExpectations(t)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewResolverService(db, new(mocks.StudentRepository), new(mocks.MentorRepository), new(mocks.ProgramRepository), new(mocks.AuditRepository))

		_, err := svc.ResolveMentor(ctx, testBatchContext(programID), "  ")
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrMissingIdentifier))
	})
}

func TestResolverService_FallbackMentor_CreatedOncePerProgram(t *testing.T) {
	ctx := context.Background()
	programID := uuid.New()
	db := setupTestDB(t)
	mentorRepo := new(mocks.MentorRepository)
	auditRepo := new(mocks.AuditRepository)

	fallback := &model.Mentor{MentorID: uuid.New(), Name: "Consultor não identificado", IsFallback: true}

	mentorRepo.On("FindFallback", ctx, mock.AnythingOfType("*gorm.DB"), programID).
		Return(nil, model.ErrNotFound).Once()
	mentorRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Mentor")).
		Run(func(args mock.Arguments) {
			mentor := args.Get(2).(*model.Mentor)
			assert.True(t, mentor.IsFallback)
			assert.False(t, mentor.Active)
		}).Return(nil).Once()
	auditRepo.On("CreateResolutionLog", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.ResolutionLog")).
		Return(nil).Once()
	// Second call finds the bucket and creates nothing.
	mentorRepo.On("FindFallback", ctx, mock.AnythingOfType("*gorm.DB"), programID).
		Return(fallback, nil).Once()

	svc := NewResolverService(db, new(mocks.StudentRepository), mentorRepo, new(mocks.ProgramRepository), auditRepo)

	first, err := svc.FallbackMentor(ctx, testBatchContext(programID))
	require.NoError(t, err)
	assert.True(t, first.IsFallback)

	second, err := svc.FallbackMentor(ctx, testBatchContext(programID))
	require.NoError(t, err)
	assert.Equal(t, fallback.MentorID, second.MentorID)
	mentorRepo.AssertExpectations(t)
}

func TestResolverService_LookupCohort_NeverCreates(t *testing.T) {
	ctx := context.Background()
	programID := uuid.New()
	db := setupTestDB(t)
	programRepo := new(mocks.ProgramRepository)

	programRepo.On("FindCohortByExternalID", ctx, mock.AnythingOfType("*gorm.DB"), programID, "T9").
		Return(nil, model.ErrNotFound).Once()

	svc := NewResolverService(db, new(mocks.StudentRepository), new(mocks.MentorRepository), programRepo, new(mocks.AuditRepository))

	_, err := svc.LookupCohort(ctx, programID, "T9")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnresolvedReference))
	programRepo.AssertNotCalled(t, "CreateCohort", mock.Anything, mock.Anything, mock.Anything)
}
