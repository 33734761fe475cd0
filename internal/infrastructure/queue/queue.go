// Package queue implements the durable FIFO task queue on a Redis list.
// Producers append JSON tasks to the tail; the worker loop blocks on the
// head and dispatches each task to a bounded pool of goroutines, so one
// slow handler never stalls intake.
package queue

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"swea-cms.backend/pkg/logger"
)

const popTimeout = time.Second

// Handler processes one task payload and reports success. A false return or
// a panic requeues the task until the retry budget runs out.
type Handler func(ctx context.Context, payload json.RawMessage) bool

// Task is the wire format stored on the Redis list.
type Task struct {
	Type       string          `json:"task_type"`
	Data       json.RawMessage `json:"data"`
	RetryCount int             `json:"retry_count"`
}

// Queue is a Redis-list backed task queue with per-type handlers, bounded
// retries and a bounded concurrent worker pool.
type Queue struct {
	client     *redis.Client
	name       string
	maxRetries int

	mu       sync.RWMutex
	handlers map[string]Handler

	slots chan struct{}
	wg    sync.WaitGroup
}

// New creates a queue. maxRetries bounds requeues per task; workers bounds
// concurrent handler executions.
func New(client *redis.Client, name string, maxRetries, workers int) *Queue {
	if workers < 1 {
		workers = 1
	}
	return &Queue{
		client:     client,
		name:       name,
		maxRetries: maxRetries,
		handlers:   map[string]Handler{},
		slots:      make(chan struct{}, workers),
	}
}

// RegisterHandler associates a handler with a task type. At most one handler
// per type; a later registration overwrites the earlier one.
func (q *Queue) RegisterHandler(taskType string, h Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[taskType] = h
}

// Enqueue appends a task to the tail of the queue. Failures are logged and
// swallowed: enqueueing is best effort and must never block or fail the
// calling request.
func (q *Queue) Enqueue(ctx context.Context, taskType string, data interface{}) {
	q.enqueue(ctx, taskType, data, 0)
}

func (q *Queue) enqueue(ctx context.Context, taskType string, data interface{}, retryCount int) {
	raw, err := json.Marshal(data)
	if err != nil {
		logger.Error(ctx, "Failed to encode task payload", zap.String("task_type", taskType), zap.Error(err))
		return
	}

	task := Task{Type: taskType, Data: raw, RetryCount: retryCount}
	body, err := json.Marshal(task)
	if err != nil {
		logger.Error(ctx, "Failed to encode task", zap.String("task_type", taskType), zap.Error(err))
		return
	}

	if err := q.client.RPush(ctx, q.name, body).Err(); err != nil {
		logger.Error(ctx, "Failed to enqueue task", zap.String("task_type", taskType), zap.Error(err))
		return
	}
	logger.Info(ctx, "Enqueued task",
		zap.String("task_type", taskType),
		zap.Int("retry_count", retryCount),
	)
}

// Run drains the queue until ctx is cancelled: blocking pop from the head,
// dispatch to the worker pool. Tasks of unknown type are dropped with an
// error log since there is no handler to retry with.
func (q *Queue) Run(ctx context.Context) {
	logger.Info(ctx, "Task queue worker started", zap.String("queue", q.name))
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := q.client.BLPop(ctx, popTimeout, q.name).Result()
		if err != nil {
			if err == redis.Nil || ctx.Err() != nil {
				continue
			}
			logger.Error(ctx, "Redis error during queue processing", zap.Error(err))
			time.Sleep(popTimeout)
			continue
		}

		var task Task
		if err := json.Unmarshal([]byte(res[1]), &task); err != nil {
			logger.Error(ctx, "Failed to decode task from queue", zap.Error(err))
			continue
		}

		q.slots <- struct{}{}
		q.wg.Add(1)
		go func() {
			defer func() {
				<-q.slots
				q.wg.Done()
			}()
			q.process(ctx, task)
		}()
	}
}

// Wait blocks until in-flight tasks finish or the timeout elapses. Called
// after Run returns to bound graceful shutdown.
func (q *Queue) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (q *Queue) process(ctx context.Context, task Task) {
	q.mu.RLock()
	handler, ok := q.handlers[task.Type]
	q.mu.RUnlock()
	if !ok {
		logger.Error(ctx, "No registered handler for task type", zap.String("task_type", task.Type))
		tasksDropped.WithLabelValues(task.Type, "unknown_type").Inc()
		return
	}

	success := q.runHandler(ctx, handler, task)
	if success {
		logger.Info(ctx, "Task processed", zap.String("task_type", task.Type))
		tasksProcessed.WithLabelValues(task.Type).Inc()
		return
	}
	q.retryOrDrop(ctx, task)
}

func (q *Queue) runHandler(ctx context.Context, handler Handler, task Task) (success bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "Task handler panicked",
				zap.String("task_type", task.Type),
				zap.Any("panic", r),
			)
			success = false
		}
	}()
	return handler(ctx, task.Data)
}

// retryOrDrop requeues a failed task at the tail with an incremented retry
// count, or drops it once the budget is spent. There is no dead-letter
// store; the drop is counted and error-logged.
func (q *Queue) retryOrDrop(ctx context.Context, task Task) {
	if task.RetryCount < q.maxRetries {
		logger.Warn(ctx, "Retrying task",
			zap.String("task_type", task.Type),
			zap.Int("attempt", task.RetryCount+1),
		)
		tasksRetried.WithLabelValues(task.Type).Inc()
		q.enqueue(ctx, task.Type, task.Data, task.RetryCount+1)
		return
	}
	logger.Error(ctx, "Max retries reached for task", zap.String("task_type", task.Type))
	tasksDropped.WithLabelValues(task.Type, "max_retries").Inc()
}
