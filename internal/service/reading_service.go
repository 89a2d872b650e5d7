package service

import (
	"context"
	"errors"
	"strings"

	"arcana/internal/models"
	"arcana/internal/observability"
	"arcana/internal/repository"
	"arcana/internal/tarot"

	"gorm.io/gorm"
)

// ReadingService owns per-user saved tarot readings.
type ReadingService struct {
	readings repository.ReadingRepository
	logger   *observability.RepoLogger
}

// SaveReadingInput carries a save request. DrawnCards keeps draw order; any
// display metadata on the cards is discarded before persisting.
type SaveReadingInput struct {
	UserID         string
	Question       string
	SpreadName     string
	SpreadNumCards int
	DrawnCards     []models.DrawnCard
	Interpretation string
}

func NewReadingService(readings repository.ReadingRepository) *ReadingService {
	return &ReadingService{
		readings: readings,
		logger:   observability.NewRepoLogger("saved_readings"),
	}
}

// SaveReading validates and persists a reading for its owner.
func (s *ReadingService) SaveReading(ctx context.Context, in SaveReadingInput) (*models.SavedReading, error) {
	if in.UserID == "" {
		return nil, models.NewUnauthenticatedError("로그인이 필요합니다.")
	}

	fields := map[string]string{}
	if strings.TrimSpace(in.Question) == "" {
		fields["question"] = "질문을 입력해주세요."
	}
	if strings.TrimSpace(in.SpreadName) == "" {
		fields["spread_name"] = "스프레드 이름이 필요합니다."
	}
	if in.SpreadNumCards < 1 {
		fields["spread_num_cards"] = "카드 수가 올바르지 않습니다."
	}
	if len(in.DrawnCards) == 0 {
		fields["drawn_cards"] = "뽑은 카드가 필요합니다."
	}
	for _, card := range in.DrawnCards {
		if card.CardID == "" {
			fields["drawn_cards"] = "카드 정보가 올바르지 않습니다."
			break
		}
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields)
	}

	cards := make(models.DrawnCards, len(in.DrawnCards))
	for i, card := range in.DrawnCards {
		cards[i] = models.DrawnCard{
			CardID:     card.CardID,
			IsReversed: card.IsReversed,
			Position:   card.Position,
		}
	}

	reading := &models.SavedReading{
		UserID:         in.UserID,
		Question:       in.Question,
		SpreadName:     in.SpreadName,
		SpreadNumCards: in.SpreadNumCards,
		DrawnCards:     cards,
		Interpretation: in.Interpretation,
	}
	if err := s.readings.Create(ctx, reading); err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}
	s.logger.Op(ctx, "create")
	return reading, nil
}

// ListReadings returns the caller's readings newest-first, capped by the
// repository, with card display data resolved from the catalog. Infrastructure
// failures degrade to an empty list.
func (s *ReadingService) ListReadings(ctx context.Context, userID string, limit int) ([]*models.SavedReading, error) {
	if userID == "" {
		return nil, models.NewUnauthenticatedError("로그인이 필요합니다.")
	}

	readings, err := s.readings.ListByUser(ctx, userID, limit)
	if err != nil {
		s.logger.Degraded(ctx, "list", err)
		return []*models.SavedReading{}, nil
	}
	for _, r := range readings {
		decorateCards(r)
	}
	return readings, nil
}

// DeleteReading removes one reading after an ownership check.
func (s *ReadingService) DeleteReading(ctx context.Context, readingID, callerID string) error {
	if callerID == "" {
		return models.NewUnauthenticatedError("로그인이 필요합니다.")
	}

	reading, err := s.readings.GetByID(ctx, readingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("저장된 리딩을 찾을 수 없습니다.")
		}
		return models.NewStoreUnavailableError(err)
	}
	if reading.UserID != callerID {
		return models.NewPermissionDeniedError("리딩을 삭제할 권한이 없습니다.")
	}

	if err := s.readings.Delete(ctx, readingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("저장된 리딩을 찾을 수 없습니다.")
		}
		return models.NewStoreUnavailableError(err)
	}
	s.logger.Op(ctx, "delete")
	return nil
}

func decorateCards(r *models.SavedReading) {
	for i := range r.DrawnCards {
		card := tarot.Lookup(r.DrawnCards[i].CardID)
		r.DrawnCards[i].Name = card.Name
		r.DrawnCards[i].ImageSrc = card.ImageSrc
	}
}
