package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"mealmate/internal/pkg/common"

	"go.uber.org/zap"
)

// DefaultUserID 單一使用者模式下的使用者 id
const DefaultUserID = "default-user"

// DefaultScanLimit 免費方案每日掃描次數
const DefaultScanLimit = 3

// Tier 方案
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// ScanQuota 掃描額度
type ScanQuota struct {
	Used      int       `json:"used"`
	Limit     int       `json:"limit"`
	ResetDate time.Time `json:"resetDate"`
}

// User 使用者
type User struct {
	ID                  string    `json:"id"`
	Tier                Tier      `json:"tier"`
	ScanQuota           ScanQuota `json:"scanQuota"`
	OnboardingCompleted bool      `json:"onboardingCompleted"`
}

// Store 使用者持久層
type Store interface {
	Get(ctx context.Context, id string) (User, error)
	Save(ctx context.Context, u User) error
}

// ErrNotFound 找不到使用者
var ErrNotFound = common.NewError(common.ErrCodeNotFound, "User not found", http.StatusNotFound, nil)

// NextMidnight 下一個本地時間午夜
func NextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// Service 使用者與掃描額度服務
type Service struct {
	store Store
	limit int
	now   func() time.Time
	// 讀取-修改-寫回需要序列化
	mu sync.Mutex
}

// NewService 創建使用者服務
func NewService(store Store, scanLimit int) *Service {
	if scanLimit <= 0 {
		scanLimit = DefaultScanLimit
	}
	return &Service{store: store, limit: scanLimit, now: time.Now}
}

// Get 取得預設使用者，不存在時建立
func (s *Service) Get(ctx context.Context) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) (User, error) {
	u, err := s.store.Get(ctx, DefaultUserID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	u = User{
		ID:   DefaultUserID,
		Tier: TierFree,
		ScanQuota: ScanQuota{
			Limit:     s.limit,
			ResetDate: NextMidnight(s.now()),
		},
	}
	if err := s.store.Save(ctx, u); err != nil {
		return User{}, fmt.Errorf("failed to create default user: %w", err)
	}
	common.LogInfo("已建立預設使用者", zap.String("user_id", u.ID))
	return u, nil
}

func (s *Service) update(ctx context.Context, fn func(u *User)) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.load(ctx)
	if err != nil {
		return User{}, err
	}
	fn(&u)
	if err := s.store.Save(ctx, u); err != nil {
		return User{}, fmt.Errorf("failed to save user: %w", err)
	}
	return u, nil
}

// rollover 過了重置時間就歸零
func (s *Service) rollover(u *User) {
	now := s.now()
	if !now.Before(u.ScanQuota.ResetDate) {
		u.ScanQuota.Used = 0
		u.ScanQuota.ResetDate = NextMidnight(now)
	}
}

// CanScan 是否還能掃描
func (s *Service) CanScan(ctx context.Context) (bool, error) {
	u, err := s.update(ctx, s.rollover)
	if err != nil {
		return false, err
	}
	if u.Tier == TierPremium {
		return true, nil
	}
	return u.ScanQuota.Used < u.ScanQuota.Limit, nil
}

// IncrementScan 使用一次掃描額度
func (s *Service) IncrementScan(ctx context.Context) (User, error) {
	return s.update(ctx, func(u *User) {
		s.rollover(u)
		u.ScanQuota.Used++
	})
}

// ResetScanQuota 重置掃描額度
func (s *Service) ResetScanQuota(ctx context.Context) (User, error) {
	return s.update(ctx, func(u *User) {
		u.ScanQuota.Used = 0
		u.ScanQuota.ResetDate = NextMidnight(s.now())
	})
}

// UpgradeToPremium 升級為付費方案
func (s *Service) UpgradeToPremium(ctx context.Context) (User, error) {
	u, err := s.update(ctx, func(u *User) { u.Tier = TierPremium })
	if err == nil {
		common.LogInfo("使用者已升級", zap.String("user_id", u.ID))
	}
	return u, err
}

// CompleteOnboarding 完成新手引導
func (s *Service) CompleteOnboarding(ctx context.Context) (User, error) {
	return s.update(ctx, func(u *User) { u.OnboardingCompleted = true })
}

// ScansRemaining 剩餘掃描次數，-1 表示無限制
func ScansRemaining(u User) int {
	if u.Tier == TierPremium {
		return -1
	}
	if left := u.ScanQuota.Limit - u.ScanQuota.Used; left > 0 {
		return left
	}
	return 0
}
