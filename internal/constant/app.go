package constant

import (
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	// DefaultAverageConsultMinutes seeds the duration estimator at startup
	// and after a day reset.
	DefaultAverageConsultMinutes = 8

	RateLimitKeyPrefix = "clinic:ratelimit:"

	TopicQueueEvents  = "clinic.queue.events"
	KafkaProducerAcks = kafka.RequireAll
	KafkaWriteTimeout = 5 * time.Second
	KafkaWriteRetries = 3
	KafkaRetryBackoff = 500 * time.Millisecond
	EventBufSize      = 10000 // capacity of in-memory channel; tune by memory and expected bursts
	DBTxTimeout       = 2 * time.Second // keep transactions short

	UserIdKey   = "user_id"
	UsernameKey = "username"
	RoleKey     = "role"

	RoleReception = "reception"
	RoleDoctor    = "doctor"
	RoleAdmin     = "admin"
)
