package queue

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"akshara/clinic-queue/internal/broadcast"
	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/domain"
	queuecore "akshara/clinic-queue/internal/queue"
)

type QueueHandler struct {
	clinicService clinicService
}

type clinicService interface {
	Register(ctx context.Context, input queuecore.AddInput, actor string) (domain.QueueEntry, error)
	StartConsult(ctx context.Context, token int, actor string) (domain.QueueEntry, error)
	EndConsult(ctx context.Context, token int, doctor string) (domain.QueueEntry, int, error)
	ReopenConsult(ctx context.Context, token int, actor string) (domain.QueueEntry, error)
	MarkNoShow(ctx context.Context, token int, actor string) (domain.QueueEntry, error)
	SetDoctorPresence(ctx context.Context, present bool, actor string) bool
	ResetDay(ctx context.Context, actor string) error
	View() domain.QueueView
	SearchPublic(query string) []domain.MaskedEntry
	ConsultHistory(ctx context.Context, limit, offset int) ([]domain.ConsultRecord, int64, error)
	Subscribe() *broadcast.Subscriber
	Unsubscribe(sub *broadcast.Subscriber)
}

func New(clinicService clinicService) *QueueHandler {
	return &QueueHandler{
		clinicService: clinicService,
	}
}

// abortWithError maps the engine's error taxonomy onto HTTP statuses.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, constant.ValidationErr):
		status = http.StatusBadRequest
	case errors.Is(err, constant.NotFoundErr):
		status = http.StatusNotFound
	case errors.Is(err, constant.ConflictErr):
		status = http.StatusConflict
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func actor(c *gin.Context) string {
	return c.GetString(constant.UsernameKey)
}
