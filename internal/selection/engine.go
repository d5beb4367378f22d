// Package selection содержит правила выбора подарков в киоске.
//
// Допустимые комбинации: 1 предмет из категории A + 1 из B, либо 2 из B.
// Предмет категории A с флагом AllowMultiple можно взять дважды вместо пары A+B.
// Сопоставление идёт по точному имени позиции.
package selection

import (
	"strings"

	"GiftKiosk/internal/model"
)

// MaxPicks — жёсткий предел количества выбранных подарков.
const MaxPicks = 2

// resolve ищет позицию каталога по точному имени.
func resolve(catalog []model.GiftItem, name string) (model.GiftItem, bool) {
	for _, it := range catalog {
		if it.Name == name {
			return it, true
		}
	}
	return model.GiftItem{}, false
}

// IsSelectable решает, можно ли добавить candidate к текущему выбору.
// catalog — уже отфильтрованный видимый каталог.
func IsSelectable(catalog []model.GiftItem, selection []string, candidate string) bool {
	item, ok := resolve(catalog, candidate)
	if !ok {
		return false
	}
	if len(selection) >= MaxPicks {
		return false
	}

	switch item.Category {
	case model.CategoryA:
		// другой предмет A уже выбран — нельзя
		for _, name := range selection {
			if name == candidate {
				continue
			}
			if sel, found := resolve(catalog, name); found && sel.Category == model.CategoryA {
				return false
			}
		}
		limit := 1
		if item.AllowMultiple {
			limit = 2
		}
		return count(selection, candidate) < limit
	case model.CategoryB:
		return len(selection) < MaxPicks
	default:
		return false
	}
}

func count(selection []string, name string) int {
	n := 0
	for _, s := range selection {
		if s == name {
			n++
		}
	}
	return n
}

// Add возвращает новый выбор с candidate, если он допустим; иначе исходный выбор без изменений.
func Add(catalog []model.GiftItem, selection []string, candidate string) []string {
	if !IsSelectable(catalog, selection, candidate) {
		return selection
	}
	out := make([]string, 0, len(selection)+1)
	out = append(out, selection...)
	return append(out, candidate)
}

// Remove убирает первое вхождение name. Если имени нет, выбор не меняется.
func Remove(selection []string, name string) []string {
	for i, s := range selection {
		if s != name {
			continue
		}
		out := make([]string, 0, len(selection)-1)
		out = append(out, selection[:i]...)
		return append(out, selection[i+1:]...)
	}
	return selection
}

// CanSubmit — выбор полный и имя не пустое.
func CanSubmit(selection []string, name string) bool {
	return len(selection) == MaxPicks && strings.TrimSpace(name) != ""
}
