package clinic

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"

	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/domain"
)

// emit hands an audit event to the background producers. Non-blocking: if
// the channel is full the message goes straight to the DLQ table instead of
// stalling the mutation path.
func (s *Service) emit(eventType domain.EventType, token int, actor string) {
	event := domain.Event{
		ID:    uuid.NewString(),
		Type:  eventType,
		Token: token,
		Actor: actor,
		At:    s.now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error(errors.Wrap(err, "failed to marshal event"))
		return
	}

	km := domain.KafkaMessage{
		Key:      event.ID,
		Payload:  payload,
		Topic:    constant.TopicQueueEvents,
		Attempts: 0,
	}

	select {
	case s.eventChan <- km:
	default:
		if err := s.dlq.InsertDLQ(context.Background(), km); err != nil {
			s.logger.Error(errors.Wrap(err, "CRITICAL: dlq insert failed"))
		}
	}
}

// ProduceEvents drains the event channel into kafka with bounded retries;
// exhausted messages land in the DLQ table. Run one goroutine per worker.
func (s *Service) ProduceEvents(workerID int) {
	for km := range s.eventChan {
		success := false
		for attempt := 0; attempt < constant.KafkaWriteRetries; attempt++ {
			ctx, cancel := context.WithTimeout(context.Background(), constant.KafkaWriteTimeout)
			err := s.eventWriter.WriteMessages(ctx, kafka.Message{
				Key:   []byte(km.Key),
				Value: km.Payload,
				Time:  time.Now(),
			})
			cancel()
			if err == nil {
				success = true
				break
			}
			s.logger.Warnf("event worker %d: write attempt %d failed: %v", workerID, attempt+1, err)
			time.Sleep(constant.KafkaRetryBackoff * time.Duration(attempt+1))
		}
		if !success {
			km.Attempts += constant.KafkaWriteRetries
			if err := s.dlq.InsertDLQ(context.Background(), km); err != nil {
				s.logger.Errorf("event worker %d: failed to insert dlq: %v", workerID, err)
			}
		}
	}
}
