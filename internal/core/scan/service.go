// Package scan turns a photo into inventory items, gated by the user's scan quota.
package scan

import (
	"context"
	"errors"
	"fmt"

	"mealmate/internal/core/image"
	"mealmate/internal/core/inventory"
	"mealmate/internal/core/queue"
	"mealmate/internal/core/user"
	"mealmate/internal/pkg/common"

	"go.uber.org/zap"
)

// 掃描結果分類（指標標籤）
const (
	OutcomeOK           = "ok"
	OutcomeQuota        = "quota_exceeded"
	OutcomeInvalidImage = "invalid_image"
	OutcomeFailed       = "failed"
)

// Identifier 圖片食材辨識
type Identifier interface {
	Identify(ctx context.Context, encoded string) ([]inventory.Item, error)
}

// ImageProcessor 圖片前處理
type ImageProcessor interface {
	Process(imageData string) (*image.Processed, error)
}

// Quota 掃描額度
type Quota interface {
	CanScan(ctx context.Context) (bool, error)
	IncrementScan(ctx context.Context) (user.User, error)
}

// Inventory 庫存寫入
type Inventory interface {
	AddMultiple(ctx context.Context, items []inventory.Item) ([]inventory.Item, error)
}

// Runner 執行辨識工作的隊列
type Runner interface {
	Do(ctx context.Context, job queue.Job) (interface{}, error)
}

// Recorder 掃描結果指標
type Recorder interface {
	ScanFinished(outcome string)
}

// Result 掃描結果
type Result struct {
	Ingredients    []inventory.Item `json:"ingredients"`
	ScansRemaining int              `json:"scansRemaining"`
}

// Service 掃描服務
type Service struct {
	images     ImageProcessor
	identifier Identifier
	quota      Quota
	inventory  Inventory
	runner     Runner
	recorder   Recorder
}

// NewService 創建掃描服務
func NewService(images ImageProcessor, identifier Identifier, quota Quota, inv Inventory, runner Runner, recorder Recorder) *Service {
	return &Service{
		images:     images,
		identifier: identifier,
		quota:      quota,
		inventory:  inv,
		runner:     runner,
		recorder:   recorder,
	}
}

// Scan 檢查額度、辨識、加入庫存、扣額度
func (s *Service) Scan(ctx context.Context, imageData string) (*Result, error) {
	ok, err := s.quota.CanScan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check scan quota: %w", err)
	}
	if !ok {
		s.finish(OutcomeQuota)
		return nil, common.ErrQuotaExceeded
	}

	processed, err := s.images.Process(imageData)
	if err != nil {
		s.finish(OutcomeInvalidImage)
		return nil, err
	}

	items, err := s.identify(ctx, processed.Base64)
	if err != nil {
		s.finish(OutcomeFailed)
		common.LogError("食材辨識失敗", zap.Error(err))
		var ce *common.CustomError
		if errors.As(err, &ce) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, common.ErrUpstreamUnavailable.Wrap(err)
	}

	added := []inventory.Item{}
	if len(items) > 0 {
		added, err = s.inventory.AddMultiple(ctx, items)
		if err != nil {
			s.finish(OutcomeFailed)
			return nil, fmt.Errorf("failed to add scanned ingredients: %w", err)
		}
	}

	u, err := s.quota.IncrementScan(ctx)
	if err != nil {
		s.finish(OutcomeFailed)
		return nil, fmt.Errorf("failed to increment scan quota: %w", err)
	}

	s.finish(OutcomeOK)
	common.LogInfo("食材掃描完成", zap.Int("count", len(added)), zap.Int("scans_used", u.ScanQuota.Used))

	return &Result{
		Ingredients:    added,
		ScansRemaining: user.ScansRemaining(u),
	}, nil
}

func (s *Service) identify(ctx context.Context, encoded string) ([]inventory.Item, error) {
	if s.runner == nil {
		return s.identifier.Identify(ctx, encoded)
	}

	v, err := s.runner.Do(ctx, func(ctx context.Context) (interface{}, error) {
		items, err := s.identifier.Identify(ctx, encoded)
		if err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	items, _ := v.([]inventory.Item)
	return items, nil
}

func (s *Service) finish(outcome string) {
	if s.recorder != nil {
		s.recorder.ScanFinished(outcome)
	}
}
