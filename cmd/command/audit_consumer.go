package command

import (
	"context"
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"akshara/clinic-queue/internal/config"
	"akshara/clinic-queue/internal/constant"
	"akshara/clinic-queue/internal/domain"
	"akshara/clinic-queue/internal/infra"
	"akshara/clinic-queue/internal/repository"
)

const (
	auditConsumerGroup = "clinic-audit"
	auditBatchSize     = 100
	auditFlushInterval = 1 * time.Second
)

type AuditConsumerCommand struct {
	Logger *log.Logger
}

func (cmd AuditConsumerCommand) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "audit-consumer",
		Short: "consume queue events from kafka and append them to the audit log",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(cfg, ctx)
		},
	}
}

func (cmd AuditConsumerCommand) main(cfg *config.Config, ctx context.Context) {
	db, err := infra.NewPostgresClient(ctx, cfg.Database.Postgres)
	if err != nil {
		cmd.Logger.WithContext(ctx).Fatalf("failed to connect to postgresql: %v", err)
	}

	kafkaConsumer := infra.NewKafkaReader(cfg.Kafka, constant.TopicQueueEvents, auditConsumerGroup)
	defer func() {
		if err := kafkaConsumer.Close(); err != nil {
			cmd.Logger.WithContext(ctx).Errorf("failed to close kafka consumer: %v", err)
		}
	}()

	auditRepo := repository.NewAuditRepository(db.GetDb())

	numConsumers := cfg.WorkerCount
	if numConsumers == 0 {
		numConsumers = 4
	}

	cmd.Logger.WithContext(ctx).Infof("starting %d consumer goroutines for %s topic", numConsumers, constant.TopicQueueEvents)

	eventChan := make(chan domain.Event, 1000)

	for i := 0; i < numConsumers; i++ {
		consumerID := i
		go func() {
			for {
				select {
				case <-ctx.Done():
					cmd.Logger.WithContext(ctx).Infof("consumer %d: context cancelled, shutting down", consumerID)
					return
				default:
					m, err := kafkaConsumer.ReadMessage(ctx)
					if err != nil {
						select {
						case <-ctx.Done():
							return
						default:
						}
						cmd.Logger.WithContext(ctx).Errorf("consumer %d: read error: %v", consumerID, err)
						time.Sleep(500 * time.Millisecond)
						continue
					}

					var event domain.Event
					if err := json.Unmarshal(m.Value, &event); err != nil {
						cmd.Logger.WithContext(ctx).Errorf("consumer %d: invalid payload: %v, raw: %s", consumerID, err, string(m.Value))
						continue
					}

					select {
					case eventChan <- event:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		batch := make([]domain.Event, 0, auditBatchSize)
		ticker := time.NewTicker(auditFlushInterval)
		defer ticker.Stop()

		flushBatch := func() {
			if len(batch) == 0 {
				return
			}

			insertCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := auditRepo.InsertBatch(insertCtx, batch); err != nil {
				cmd.Logger.WithContext(ctx).Errorf("writer: failed to insert audit batch: %v", err)
			} else {
				cmd.Logger.WithContext(ctx).Debugf("writer: flushed %d events to audit log", len(batch))
			}
			batch = batch[:0]
		}

		for {
			select {
			case <-ctx.Done():
				flushBatch()
				cmd.Logger.WithContext(ctx).Info("writer: context cancelled, shutting down")
				return
			case event := <-eventChan:
				batch = append(batch, event)
				if len(batch) >= auditBatchSize {
					flushBatch()
				}
			case <-ticker.C:
				flushBatch()
			}
		}
	}()

	cmd.Logger.WithContext(ctx).Info("audit consumer started successfully")

	<-ctx.Done()
	cmd.Logger.WithContext(ctx).Info("audit consumer: shutting down gracefully...")
	time.Sleep(2 * time.Second)
}
