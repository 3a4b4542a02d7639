//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lulukitchen/cart-service/internal/domain/model"
	"github.com/lulukitchen/cart-service/internal/repository"
)

type MockLogsRepository struct {
	mock.Mock
}

func (m *MockLogsRepository) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepository) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepository) Query(ctx context.Context, opts repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	docs, _ := args.Get(0).([]*repository.LogEntryDocument)
	return docs, args.Error(1)
}

func (m *MockLogsRepository) Count(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	count, _ := args.Get(0).(int64)
	return count, args.Error(1)
}

func TestNewLoggingService(t *testing.T) {
	mockRepo := new(MockLogsRepository)
	service := NewLoggingService(mockRepo)

	assert.NotNil(t, service)
	assert.IsType(t, &LoggingServiceImpl{}, service)
}

func TestLoggingService_CreateLog(t *testing.T) {
	tests := []struct {
		name      string
		entry     *model.LogEntry
		setupMock func(*MockLogsRepository)
		wantError bool
	}{
		{
			name: "create log entry",
			entry: &model.LogEntry{
				Level:     "info",
				Message:   "cart line added",
				RequestID: "req-1",
				SessionID: "sess-1",
				Method:    "POST",
				Path:      "/api/cart/lines",
			},
			setupMock: func(m *MockLogsRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*repository.LogEntryDocument")).Return(nil)
			},
		},
		{
			name: "assigns ID and timestamp when missing",
			entry: &model.LogEntry{
				Level:   "warn",
				Message: "coupon rejected",
			},
			setupMock: func(m *MockLogsRepository) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(doc *repository.LogEntryDocument) bool {
					return !doc.ID.IsZero() && !doc.Timestamp.IsZero()
				})).Return(nil)
			},
		},
		{
			name: "propagates repository errors",
			entry: &model.LogEntry{
				Level:   "error",
				Message: "persistence failed",
			},
			setupMock: func(m *MockLogsRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(errors.New("mongo down"))
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockLogsRepository)
			tt.setupMock(mockRepo)

			service := NewLoggingService(mockRepo)
			err := service.CreateLog(context.Background(), tt.entry)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLoggingService_CreateLogs(t *testing.T) {
	t.Run("bulk create", func(t *testing.T) {
		mockRepo := new(MockLogsRepository)
		mockRepo.On("CreateMany", mock.Anything, mock.MatchedBy(func(docs []*repository.LogEntryDocument) bool {
			return len(docs) == 2
		})).Return(nil)

		service := NewLoggingService(mockRepo)
		err := service.CreateLogs(context.Background(), []*model.LogEntry{
			{Level: "info", Message: "entry 1"},
			{Level: "info", Message: "entry 2"},
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		mockRepo := new(MockLogsRepository)

		service := NewLoggingService(mockRepo)
		err := service.CreateLogs(context.Background(), nil)

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "CreateMany")
	})
}

func TestLoggingService_QueryLogs(t *testing.T) {
	t.Run("maps documents to model entries", func(t *testing.T) {
		now := time.Now()
		docs := []*repository.LogEntryDocument{
			{
				ID:         primitive.NewObjectID(),
				Timestamp:  now,
				Level:      "info",
				Message:    "checkout completed",
				RequestID:  "req-9",
				SessionID:  "sess-9",
				Method:     "POST",
				Path:       "/api/checkout",
				StatusCode: 201,
			},
		}

		mockRepo := new(MockLogsRepository)
		mockRepo.On("Query", mock.Anything, mock.MatchedBy(func(opts repository.LogQueryOptions) bool {
			return opts.SessionID == "sess-9" && opts.Limit == 10
		})).Return(docs, nil)

		service := NewLoggingService(mockRepo)
		entries, err := service.QueryLogs(context.Background(), model.LogQueryOptions{
			SessionID: "sess-9",
			Limit:     10,
		})

		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "checkout completed", entries[0].Message)
		assert.Equal(t, 201, entries[0].StatusCode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("filters audit events by action type", func(t *testing.T) {
		mockRepo := new(MockLogsRepository)
		mockRepo.On("Query", mock.Anything, mock.MatchedBy(func(opts repository.LogQueryOptions) bool {
			return opts.ActionType == "apply_coupon" && opts.SessionID == "sess-3"
		})).Return([]*repository.LogEntryDocument{}, nil)

		service := NewLoggingService(mockRepo)
		_, err := service.QueryLogs(context.Background(), model.LogQueryOptions{
			SessionID:  "sess-3",
			ActionType: "apply_coupon",
		})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("propagates query errors", func(t *testing.T) {
		mockRepo := new(MockLogsRepository)
		mockRepo.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("query failed"))

		service := NewLoggingService(mockRepo)
		entries, err := service.QueryLogs(context.Background(), model.LogQueryOptions{})

		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}

func TestLoggingService_CountLogs(t *testing.T) {
	mockRepo := new(MockLogsRepository)
	mockRepo.On("Count", mock.Anything, mock.MatchedBy(func(opts repository.LogQueryOptions) bool {
		return opts.Level == "error" && opts.ActionType == "checkout"
	})).Return(int64(7), nil)

	service := NewLoggingService(mockRepo)
	count, err := service.CountLogs(context.Background(), model.LogQueryOptions{
		Level:      "error",
		ActionType: "checkout",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	mockRepo.AssertExpectations(t)
}
