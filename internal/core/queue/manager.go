package queue

import (
	"context"
	"sync"
	"sync/atomic"

	"mealmate/internal/infrastructure/config"
	"mealmate/internal/pkg/common"

	"go.uber.org/zap"
)

// Job 隊列中執行的工作
type Job func(ctx context.Context) (interface{}, error)

// Request 隊列請求
type Request struct {
	Context context.Context
	Job     Job
	Result  chan Result
}

// Result 處理結果
type Result struct {
	Value interface{}
	Error error
}

// Status 隊列狀態
type Status struct {
	QueueLength    int `json:"queue_length"`
	ProcessedCount int `json:"processed_count"`
	MaxQueueSize   int `json:"max_queue_size"`
	Workers        int `json:"workers"`
}

// Gauge 隊列長度指標
type Gauge interface {
	SetScanQueueLength(n int)
}

// Manager 固定 worker 數量的有界隊列
type Manager struct {
	maxSize   int
	workers   int
	queue     chan *Request
	done      chan struct{}
	processed int64
	gauge     Gauge
	wg        sync.WaitGroup
	startOnce sync.Once
	closeOnce sync.Once
}

// NewManager 創建新的隊列管理器
func NewManager(cfg config.QueueConfig, gauge Gauge) *Manager {
	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = 1
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Manager{
		maxSize: maxSize,
		workers: workers,
		queue:   make(chan *Request, maxSize),
		done:    make(chan struct{}),
		gauge:   gauge,
	}
}

// Start 啟動 workers
func (m *Manager) Start() {
	m.startOnce.Do(func() {
		for i := 0; i < m.workers; i++ {
			m.wg.Add(1)
			go m.worker(i)
		}
		common.LogInfo("Queue workers started", zap.Int("workers", m.workers), zap.Int("max_queue_size", m.maxSize))
	})
}

func (m *Manager) worker(id int) {
	defer m.wg.Done()
	for {
		select {
		case <-m.done:
			return
		case req := <-m.queue:
			m.reportLength()
			m.run(id, req)
		}
	}
}

func (m *Manager) run(id int, req *Request) {
	var r Result
	if err := req.Context.Err(); err != nil {
		r.Error = err
	} else {
		r.Value, r.Error = req.Job(req.Context)
		if r.Error != nil {
			common.LogDebug("隊列工作失敗", zap.Int("worker", id), zap.Error(r.Error))
		}
	}

	// 計數要在送出結果之前，等待者看到結果時計數已更新
	atomic.AddInt64(&m.processed, 1)
	req.Result <- r
}

// Enqueue 將工作加入隊列，隊列滿時立即回傳 ErrQueueFull
func (m *Manager) Enqueue(ctx context.Context, job Job) (<-chan Result, error) {
	select {
	case <-m.done:
		return nil, common.ErrQueueClosed
	default:
	}

	req := &Request{
		Context: ctx,
		Job:     job,
		Result:  make(chan Result, 1),
	}

	select {
	case m.queue <- req:
		m.reportLength()
		common.LogDebug("Request enqueued",
			zap.Int("queue_length", len(m.queue)),
			zap.Int("max_queue_size", m.maxSize),
		)
		return req.Result, nil
	default:
		common.LogWarn("隊列已滿", zap.Int("max_queue_size", m.maxSize))
		return nil, common.ErrQueueFull
	}
}

// Do 加入隊列並等待結果
func (m *Manager) Do(ctx context.Context, job Job) (interface{}, error) {
	result, err := m.Enqueue(ctx, job)
	if err != nil {
		return nil, err
	}

	select {
	case r := <-result:
		return r.Value, r.Error
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-m.done:
		return nil, common.ErrQueueClosed
	}
}

// GetQueueStatus 獲取隊列狀態
func (m *Manager) GetQueueStatus() *Status {
	return &Status{
		QueueLength:    len(m.queue),
		ProcessedCount: int(atomic.LoadInt64(&m.processed)),
		MaxQueueSize:   m.maxSize,
		Workers:        m.workers,
	}
}

func (m *Manager) reportLength() {
	if m.gauge != nil {
		m.gauge.SetScanQueueLength(len(m.queue))
	}
}

// Close 停止 workers，尚未處理的請求收到 ErrQueueClosed
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
		m.wg.Wait()

		for {
			select {
			case req := <-m.queue:
				req.Result <- Result{Error: common.ErrQueueClosed}
			default:
				m.reportLength()
				return
			}
		}
	})
}
