package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"GiftKiosk/internal/catalog"
	"GiftKiosk/internal/model"
	"GiftKiosk/internal/repo"
	"GiftKiosk/internal/selection"
	"GiftKiosk/internal/storage"

	"go.uber.org/zap"
)

// SelectionService принимает выбор посетителя и ведёт журнал выдачи.
type SelectionService struct {
	items   repo.ItemRepository
	records repo.RecordRepository
	images  storage.ImageStore
	logger  *zap.SugaredLogger
	now     func() time.Time
}

func NewSelectionService(items repo.ItemRepository, records repo.RecordRepository, images storage.ImageStore, logger *zap.SugaredLogger) *SelectionService {
	return &SelectionService{items: items, records: records, images: images, logger: logger, now: time.Now}
}

// Option — позиция каталога с точки зрения текущего выбора.
type Option struct {
	Name        string         `json:"name"`
	Category    model.Category `json:"category"`
	Description string         `json:"description,omitempty"`
	ImageURL    string         `json:"image_url,omitempty"`
	Picked      int            `json:"picked"`
	Selectable  bool           `json:"selectable"`
}

// Evaluation — состояние выбора для отрисовки.
type Evaluation struct {
	Selection []string          `json:"selection"`
	Summary   []selection.Count `json:"summary"`
	Options   []Option          `json:"options"`
	Valid     bool              `json:"valid"`
	CanSubmit bool              `json:"can_submit"`
}

// SubmitRequest — отправка выбора.
type SubmitRequest struct {
	Name       string
	Items      []string
	LocationID *string
}

func (s *SelectionService) visible(ctx context.Context) ([]model.GiftItem, error) {
	items, err := s.items.ListVisible(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visible items: %w", err)
	}
	items = catalog.Visible(items)
	signImages(ctx, s.images, items, s.logger)
	return items, nil
}

// replay проигрывает выбор по одному подарку через правила. Выбор, который нельзя
// собрать допустимыми шагами, не принимается.
func replay(cat []model.GiftItem, picks []string) ([]string, bool) {
	var sel []string
	for _, name := range picks {
		next := selection.Add(cat, sel, name)
		if len(next) == len(sel) {
			return sel, false
		}
		sel = next
	}
	return sel, true
}

// Evaluate считает сводку и доступность каждой видимой позиции.
func (s *SelectionService) Evaluate(ctx context.Context, picks []string, name string) (Evaluation, error) {
	cat, err := s.visible(ctx)
	if err != nil {
		return Evaluation{}, err
	}
	sel, ok := replay(cat, picks)

	opts := make([]Option, 0, len(cat))
	for _, it := range cat {
		picked := 0
		for _, p := range sel {
			if p == it.Name {
				picked++
			}
		}
		opts = append(opts, Option{
			Name:        it.Name,
			Category:    it.Category,
			Description: it.Description,
			ImageURL:    it.ImageURL,
			Picked:      picked,
			Selectable:  selection.IsSelectable(cat, sel, it.Name),
		})
	}
	if sel == nil {
		sel = []string{}
	}
	return Evaluation{
		Selection: sel,
		Summary:   selection.Summarize(sel),
		Options:   opts,
		Valid:     ok,
		CanSubmit: ok && selection.CanSubmit(sel, name),
	}, nil
}

// Submit перепроверяет выбор по актуальному видимому каталогу и сохраняет запись.
func (s *SelectionService) Submit(ctx context.Context, req SubmitRequest) (*model.SelectionRecord, error) {
	name := strings.TrimSpace(req.Name)
	if len(req.Items) != selection.MaxPicks {
		return nil, ErrIncompleteSelection
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	cat, err := s.visible(ctx)
	if err != nil {
		return nil, err
	}
	sel, ok := replay(cat, req.Items)
	if !ok || !selection.CanSubmit(sel, name) {
		s.logger.Warnw("Submit: illegal selection", "name", name, "items", req.Items)
		return nil, ErrIllegalSelection
	}

	rec := &model.SelectionRecord{
		Name:      name,
		Items:     sel,
		Timestamp: s.now().UTC(),
	}
	if req.LocationID != nil && strings.TrimSpace(*req.LocationID) != "" {
		loc := strings.TrimSpace(*req.LocationID)
		rec.LocationID = &loc
	}
	if err := s.records.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("save selection: %w", err)
	}
	s.logger.Infow("selection submitted", "id", rec.ID, "name", rec.Name, "items", rec.Items)
	return rec, nil
}

// ListRecords — журнал от новых к старым.
func (s *SelectionService) ListRecords(ctx context.Context) ([]model.SelectionRecord, error) {
	return s.records.List(ctx)
}

func (s *SelectionService) DeleteRecord(ctx context.Context, id string) (Mutation, error) {
	if err := s.records.Delete(ctx, id); err != nil {
		return Mutation{}, err
	}
	s.logger.Infow("record deleted", "id", id)
	return reload, nil
}
