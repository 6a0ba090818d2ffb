package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rdsimon13/sif-backend/internal/dto"
	"github.com/rdsimon13/sif-backend/internal/feed"
	"github.com/rdsimon13/sif-backend/internal/metrics"
	"github.com/rdsimon13/sif-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSelfBlock          = errors.New("cannot block yourself")
	ErrAlreadyBlocked     = errors.New("user already blocked")
	ErrBlockNotFound      = errors.New("block not found")
	ErrInvalidBlockReason = errors.New("invalid block reason")
)

type BlockService struct {
	db *gorm.DB
}

func NewBlockService(db *gorm.DB) *BlockService {
	return &BlockService{db: db}
}

// BlockUser creates the directed (blocker, blocked) relationship. The pre-check
// gives a friendly error; the unique index on the pair is the real guarantee.
func (s *BlockService) BlockUser(blockerID, blockedID uuid.UUID, reason models.BlockReason) error {
	if blockerID == blockedID {
		return ErrSelfBlock
	}
	if reason == "" {
		reason = models.BlockReasonUnspecified
	}
	if !reason.Valid() {
		return ErrInvalidBlockReason
	}

	var existing models.Block
	err := s.db.Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).First(&existing).Error
	if err == nil {
		return ErrAlreadyBlocked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing block: %w", err)
	}

	block := models.Block{
		ID:        uuid.New(),
		BlockerID: blockerID,
		BlockedID: blockedID,
		Reason:    reason,
	}
	if err := s.db.Create(&block).Error; err != nil {
		// A writer that raced past the pre-check hits the unique pair index.
		if blocked, checkErr := s.IsUserBlocked(blockerID, blockedID); checkErr == nil && blocked {
			return ErrAlreadyBlocked
		}
		return fmt.Errorf("failed to create block: %w", err)
	}

	metrics.BlocksCreated.Inc()
	return nil
}

// UnblockUser deletes the pair's block record. The unique index guarantees at
// most one row matches.
func (s *BlockService) UnblockUser(blockerID, blockedID uuid.UUID) error {
	result := s.db.Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.Block{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete block: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBlockNotFound
	}
	return nil
}

// IsUserBlocked answers the single-pair membership question without
// materializing the whole set.
func (s *BlockService) IsUserBlocked(blockerID, blockedID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.Block{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check block: %w", err)
	}
	return count > 0, nil
}

// LoadBlockedUsers materializes the set of users the actor blocks. Callers
// re-invoke this after any block or unblock; the set is never cached here.
func (s *BlockService) LoadBlockedUsers(actorID uuid.UUID) (feed.BlockSet, error) {
	ids, err := s.blockedIDs("blocker_id", "blocked_id", actorID)
	if err != nil {
		return nil, err
	}
	return feed.NewBlockSet(ids...), nil
}

// ExclusionSetFor returns the symmetric exclusion set for feeds: users the
// actor blocks plus users who block the actor.
func (s *BlockService) ExclusionSetFor(actorID uuid.UUID) (feed.BlockSet, error) {
	info, err := s.GetUserBlockingInfo(actorID)
	if err != nil {
		return nil, err
	}
	return feed.Union(
		feed.NewBlockSet(info.BlockedUsers...),
		feed.NewBlockSet(info.BlockedByUsers...),
	), nil
}

// GetUserBlockingInfo answers both directions: who the actor blocks, and who
// blocks the actor.
func (s *BlockService) GetUserBlockingInfo(actorID uuid.UUID) (*dto.BlockingInfo, error) {
	blocked, err := s.blockedIDs("blocker_id", "blocked_id", actorID)
	if err != nil {
		return nil, err
	}
	blockedBy, err := s.blockedIDs("blocked_id", "blocker_id", actorID)
	if err != nil {
		return nil, err
	}
	return &dto.BlockingInfo{
		BlockedUsers:   blocked,
		BlockedByUsers: blockedBy,
	}, nil
}

func (s *BlockService) blockedIDs(whereCol, selectCol string, actorID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.Model(&models.Block{}).
		Where(whereCol+" = ?", actorID).
		Pluck(selectCol, &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load blocks: %w", err)
	}
	return ids, nil
}

// GetBlockedUsersWithDetails joins the actor's block rows against the user
// directory in one query, newest block first.
func (s *BlockService) GetBlockedUsersWithDetails(actorID uuid.UUID) ([]dto.BlockedUserDetail, error) {
	var details []dto.BlockedUserDetail
	err := s.db.Model(&models.Block{}).
		Select("blocks.id AS block_id, blocks.blocked_id, blocks.reason, blocks.created_at, users.display_name, users.email").
		Joins("JOIN users ON users.id = blocks.blocked_id AND users.deleted_at IS NULL").
		Where("blocks.blocker_id = ?", actorID).
		Order("blocks.created_at DESC").
		Scan(&details).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load blocked users: %w", err)
	}
	return details, nil
}
