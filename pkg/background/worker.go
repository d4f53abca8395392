package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"console/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task is a unit of periodic background work.
type Task interface {
	// TTL is the interval between two runs.
	TTL() time.Duration

	// Do runs the task once.
	Do(context.Context) error

	// Info is a readable task name for logs.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker runs a set of tasks, each on its own ticker. Loops never wait on each other.
type Worker struct {
	log   handlerLogger
	tasks []Task

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

func New(log handlerLogger, tasks []Task) *Worker {
	return &Worker{
		log:   log,
		tasks: tasks,
	}
}

// Warmup runs every task once, concurrently, and waits for all of them.
// The first error or panic is returned; the periodic loops are not started.
func (w *Worker) Warmup(ctx context.Context) error {
	if len(w.tasks) == 0 {
		return nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for i := 0; i < len(w.tasks); i++ {
		task := w.tasks[i]
		initGroup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("init panic: %v\n%s", r, stack)
					w.log.Error("Task panic during warmup",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", string(stack)),
					)
				}
			}()
			return task.Do(initCtx)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return fmt.Errorf("warmup tasks: %w", err)
	}
	return nil
}

// Start launches one loop per task. The first run of each loop happens one TTL
// after Start. Calling Start on a running worker is a no-op.
func (w *Worker) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.running = true

	for i := 0; i < len(w.tasks); i++ {
		task := w.tasks[i]
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.runBackgroundTask(loopCtx, task)
		}()
	}
}

// Stop cancels all loops and waits until every in-flight run has returned.
// After Stop returns no task runs again. Safe to call more than once.
func (w *Worker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.running = false
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}
	w.log.Info("Starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl.String()),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			// both channels may be ready at once; cancellation wins
			if ctx.Err() != nil {
				return
			}
			w.executeTaskSafely(ctx, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()

			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
