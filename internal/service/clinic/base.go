package clinic

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"akshara/clinic-queue/internal/broadcast"
	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/domain"
	"akshara/clinic-queue/internal/queue"
)

// Service ties the queue store, lifecycle, estimator and broadcast hub
// together and adds the I/O that must happen after a mutation commits:
// snapshot persistence, consult history, event export and the view push.
// Every mutation runs fully in memory first; storage and kafka never execute
// while the store lock is held.
type Service struct {
	store     *queue.Store
	lifecycle *queue.Lifecycle
	hub       *broadcast.Hub

	appointments appointmentRepository
	consults     consultRepository
	dlq          dlqRepository

	logger      *logrus.Logger
	eventWriter eventWriter
	eventChan   chan domain.KafkaMessage

	defaultAverageMinutes int
	now                   func() time.Time
}

type appointmentRepository interface {
	SaveAll(ctx context.Context, entries []domain.QueueEntry) error
	LoadAll(ctx context.Context) ([]domain.QueueEntry, error)
	DeleteAll(ctx context.Context) error
}

type consultRepository interface {
	Insert(ctx context.Context, record domain.ConsultRecord) error
	List(ctx context.Context, limit, offset int) ([]domain.ConsultRecord, int64, error)
}

type dlqRepository interface {
	InsertDLQ(ctx context.Context, km domain.KafkaMessage) error
}

type eventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

func NewService(
	store *queue.Store,
	lifecycle *queue.Lifecycle,
	hub *broadcast.Hub,
	appointments appointmentRepository,
	consults consultRepository,
	dlq dlqRepository,
	logger *logrus.Logger,
	eventWriter eventWriter,
	defaultAverageMinutes int,
) *Service {
	return &Service{
		store:                 store,
		lifecycle:             lifecycle,
		hub:                   hub,
		appointments:          appointments,
		consults:              consults,
		dlq:                   dlq,
		logger:                logger,
		eventWriter:           eventWriter,
		eventChan:             make(chan domain.KafkaMessage, constant.EventBufSize),
		defaultAverageMinutes: defaultAverageMinutes,
		now:                   time.Now,
	}
}
