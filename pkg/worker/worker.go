package worker

import (
  "context"
  "sync"

  log "github.com/sirupsen/logrus"
)

const DefaultCount = 5

type Call func(ctx context.Context) error

// Pool runs pushed calls on a fixed set of workers. Call errors are logged
// and discarded, never returned to the pusher.
type Pool struct {
  ch      chan Call
  wg      sync.WaitGroup
  stopped bool
}

func NewPool(ctx context.Context, count uint8) *Pool {
  pool := &Pool{
    ch: make(chan Call),
  }

  pool.wg.Add(int(count))

  for index := 0; index < int(count); index++ {
    go func() {
      defer pool.wg.Done()

      for {
        select {
        case <-ctx.Done():
          log.Warn("worker.pool: context cancelled: worker stopped")
          return

        case call, ok := <-pool.ch:
          if !ok {
            return
          }
          if err := call(ctx); err != nil {
            log.Errorf("worker.pool: worker call failed: %v", err)
          }
        }
      }
    }()
  }

  return pool
}

func (p *Pool) Push(call Call) {
  p.ch <- call
}

func (p *Pool) StopWait() {
  if p.stopped {
    return
  }
  close(p.ch)

  p.wg.Wait()

  p.stopped = true
}
