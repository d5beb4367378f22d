// Package catalog отвечает за порядок позиций каталога внутри категории.
package catalog

import (
	"errors"
	"sort"

	"GiftKiosk/internal/model"
)

var (
	ErrIndexOutOfRange = errors.New("reorder index out of range")
	ErrMixedCategories = errors.New("reorder slice mixes categories")
)

// Assignment — новое значение sort_order для позиции.
type Assignment struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sort_order"`
}

// Sort упорядочивает позиции по (категория, sort_order). Сортировка стабильная,
// поэтому при равных sort_order сохраняется порядок, пришедший из хранилища.
func Sort(items []model.GiftItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].SortOrder < items[j].SortOrder
	})
}

// Visible возвращает только видимые позиции в порядке показа.
func Visible(items []model.GiftItem) []model.GiftItem {
	out := make([]model.GiftItem, 0, len(items))
	for _, it := range items {
		if it.Visible {
			out = append(out, it)
		}
	}
	Sort(out)
	return out
}

// InCategory возвращает позиции одной категории в порядке показа.
func InCategory(items []model.GiftItem, c model.Category) []model.GiftItem {
	out := make([]model.GiftItem, 0, len(items))
	for _, it := range items {
		if it.Category == c {
			out = append(out, it)
		}
	}
	Sort(out)
	return out
}

// Reorder переносит элемент from на позицию to и перенумеровывает всю категорию
// с единицы подряд. Назначения возвращаются для каждого элемента, а не только для перенесённого.
func Reorder(categoryItems []model.GiftItem, from, to int) ([]Assignment, error) {
	n := len(categoryItems)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, ErrIndexOutOfRange
	}
	for _, it := range categoryItems[1:] {
		if it.Category != categoryItems[0].Category {
			return nil, ErrMixedCategories
		}
	}

	ids := make([]string, 0, n)
	for _, it := range categoryItems {
		ids = append(ids, it.ID)
	}
	moved := ids[from]
	ids = append(ids[:from], ids[from+1:]...)
	ids = append(ids[:to], append([]string{moved}, ids[to:]...)...)

	out := make([]Assignment, n)
	for i, id := range ids {
		out[i] = Assignment{ID: id, SortOrder: i + 1}
	}
	return out, nil
}

// NextSortOrder — max(sort_order)+1 в категории; для пустой категории 1.
func NextSortOrder(items []model.GiftItem, c model.Category) int {
	maxOrder := 0
	for _, it := range items {
		if it.Category == c && it.SortOrder > maxOrder {
			maxOrder = it.SortOrder
		}
	}
	return maxOrder + 1
}
