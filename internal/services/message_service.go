package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rdsimon13/sif-backend/internal/feed"
	"github.com/rdsimon13/sif-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrEmptyMessage    = errors.New("message body is required")
	ErrMessageTooLong  = errors.New("message body exceeds 2000 characters")
	ErrUserSuspended   = errors.New("account is suspended")
	ErrUserBanned      = errors.New("account is banned")
)

const maxMessageLength = 2000

// MessageService owns the content surface. Every listing goes through the
// feed filter with the viewer's exclusion set, so blocked authors never leak
// into any read path.
type MessageService struct {
	db     *gorm.DB
	blocks *BlockService
}

func NewMessageService(db *gorm.DB, blocks *BlockService) *MessageService {
	return &MessageService{db: db, blocks: blocks}
}

// CreateMessage posts a new message. Suspended and banned authors are
// rejected here, which is where the moderation engine's side effects bite.
func (s *MessageService) CreateMessage(authorID uuid.UUID, body string) (*models.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	if len(body) > maxMessageLength {
		return nil, ErrMessageTooLong
	}

	var author models.User
	if err := s.db.First(&author, "id = ?", authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if author.IsBanned {
		return nil, ErrUserBanned
	}
	if author.SuspendedNow(time.Now().UTC()) {
		return nil, ErrUserSuspended
	}

	msg := models.Message{
		ID:       uuid.New(),
		AuthorID: authorID,
		Body:     body,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return &msg, nil
}

// GetFeed lists visible messages for the viewer, newest first, with the
// symmetric exclusion set applied. The limit bounds the query, not the
// filtered result: a page can come back shorter than limit while older
// visible messages still exist.
func (s *MessageService) GetFeed(viewerID uuid.UUID, limit, offset int) ([]models.Message, error) {
	excluded, err := s.blocks.ExclusionSetFor(viewerID)
	if err != nil {
		return nil, err
	}

	var messages []models.Message
	err = s.db.Where("is_removed = ?", false).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}

	return feed.FilterMessages(messages, excluded), nil
}

// GetUserMessages lists one author's visible messages as seen by the viewer.
// The same filter entry point applies: a blocked author's list comes back
// empty rather than unfiltered. As in GetFeed, the limit bounds the query
// before filtering, so a filtered page can run short.
func (s *MessageService) GetUserMessages(viewerID, authorID uuid.UUID, limit, offset int) ([]models.Message, error) {
	excluded, err := s.blocks.ExclusionSetFor(viewerID)
	if err != nil {
		return nil, err
	}

	var messages []models.Message
	err = s.db.Where("author_id = ? AND is_removed = ?", authorID, false).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	return feed.FilterMessages(messages, excluded), nil
}

// GetMessage fetches one message by id.
func (s *MessageService) GetMessage(messageID uuid.UUID) (*models.Message, error) {
	var msg models.Message
	if err := s.db.First(&msg, "id = ?", messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}
