package email

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"fitstudio/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

func newTestService(rdb *redis.Client) *Service {
	return &Service{
		redis:    rdb,
		from:     "noreply@fitstudio.com",
		fromName: "FitStudio Team",
		smtpHost: "smtp.test.com",
		smtpPort: "587",
		smtpUser: "test@example.com",
		smtpPass: "password",
	}
}

func TestSend(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	err := svc.Send(ctx, "user@example.com", "User", "Hello", "Test body")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendQueueError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetErr(assert.AnError)

	svc := newTestService(db)

	err := svc.Send(ctx, "user@example.com", "User", "Hello", "Test body")
	assert.Error(t, err)
}

func TestSendBookingConfirmation(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.Regexp().ExpectLPush(queueKey, `.*`).SetVal(1)

	svc := newTestService(db)

	when := time.Now().Add(24 * time.Hour)
	err := svc.SendBookingConfirmation(ctx, "john@x.com", "John Doe", "Yoga", when)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctx := context.Background()

	mock.ExpectLLen(queueKey).SetVal(3)

	svc := newTestService(db)

	assert.Equal(t, int64(3), svc.QueueLength(ctx))
}
