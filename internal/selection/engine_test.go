package selection

import (
	"testing"

	"GiftKiosk/internal/model"

	"github.com/stretchr/testify/assert"
)

func testCatalog() []model.GiftItem {
	return []model.GiftItem{
		{ID: "1", Name: "Movie", Category: model.CategoryA},
		{ID: "2", Name: "Tumbler", Category: model.CategoryA, AllowMultiple: true},
		{ID: "3", Name: "Coffee", Category: model.CategoryB},
		{ID: "4", Name: "Snack", Category: model.CategoryB},
		{ID: "5", Name: "Broken", Category: model.Category("C")},
	}
}

func TestIsSelectable_UnknownCandidateFailsClosed(t *testing.T) {
	assert.False(t, IsSelectable(testCatalog(), nil, "Nope"))
	assert.False(t, IsSelectable(nil, nil, "Movie"))
}

func TestIsSelectable_UnknownCategoryRejected(t *testing.T) {
	assert.False(t, IsSelectable(testCatalog(), nil, "Broken"))
}

// B разрешён при любом содержимом, пока не набрано два
func TestIsSelectable_CategoryBAlwaysUnderCap(t *testing.T) {
	cat := testCatalog()
	for _, sel := range [][]string{nil, {"Movie"}, {"Coffee"}, {"Snack"}, {"Tumbler"}} {
		assert.True(t, IsSelectable(cat, sel, "Coffee"), "selection %v", sel)
		assert.True(t, IsSelectable(cat, sel, "Snack"), "selection %v", sel)
	}
}

func TestIsSelectable_CapOfTwo(t *testing.T) {
	cat := testCatalog()
	full := [][]string{{"Movie", "Coffee"}, {"Coffee", "Snack"}, {"Tumbler", "Tumbler"}, {"Coffee", "Coffee"}}
	for _, sel := range full {
		for _, it := range cat {
			assert.False(t, IsSelectable(cat, sel, it.Name), "selection %v candidate %s", sel, it.Name)
		}
	}
}

func TestIsSelectable_ASingleWithoutAllowMultiple(t *testing.T) {
	cat := testCatalog()
	assert.True(t, IsSelectable(cat, nil, "Movie"))
	assert.False(t, IsSelectable(cat, []string{"Movie"}, "Movie"))
}

func TestIsSelectable_AAllowMultipleUpToTwo(t *testing.T) {
	cat := testCatalog()
	assert.True(t, IsSelectable(cat, nil, "Tumbler"))
	assert.True(t, IsSelectable(cat, []string{"Tumbler"}, "Tumbler"))

	sel := Add(cat, nil, "Tumbler")
	sel = Add(cat, sel, "Tumbler")
	sel = Add(cat, sel, "Tumbler")
	assert.Equal(t, []string{"Tumbler", "Tumbler"}, sel)
}

func TestIsSelectable_DistinctAMutuallyExclusive(t *testing.T) {
	cat := testCatalog()
	assert.False(t, IsSelectable(cat, []string{"Movie"}, "Tumbler"))
	assert.False(t, IsSelectable(cat, []string{"Tumbler"}, "Movie"))
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	cat := testCatalog()
	sel := make([]string, 1, 4)
	sel[0] = "Coffee"
	got := Add(cat, sel, "Snack")
	assert.Equal(t, []string{"Coffee", "Snack"}, got)
	assert.Equal(t, []string{"Coffee"}, sel)
	// общий backing array не тронут
	assert.Equal(t, "", sel[:2][1])
}

func TestRemove(t *testing.T) {
	assert.Equal(t, []string{"X", "Y"}, Remove([]string{"X", "X", "Y"}, "X"))
	assert.Equal(t, []string{"X", "Y"}, Remove([]string{"X", "Y"}, "Z"))
	assert.Empty(t, Remove(nil, "Z"))
}

func TestSummarize(t *testing.T) {
	got := Summarize([]string{"X", "X", "Y"})
	assert.Equal(t, []Count{{Name: "X", Qty: 2}, {Name: "Y", Qty: 1}}, got)
	assert.Equal(t, "X x2", got[0].String())
	assert.Equal(t, "Y", got[1].String())
	assert.Empty(t, Summarize(nil))
}

func TestCanSubmit(t *testing.T) {
	assert.False(t, CanSubmit(nil, ""))
	assert.True(t, CanSubmit([]string{"X", "Y"}, "Alice"))
	assert.False(t, CanSubmit([]string{"X"}, "Alice"))
	assert.False(t, CanSubmit([]string{"X", "Y"}, "   "))
}

// Сценарий из киоска: Movie, Coffee, затем Snack отклоняется
func TestScenario_MovieCoffeeSnack(t *testing.T) {
	cat := []model.GiftItem{
		{Name: "Movie", Category: model.CategoryA},
		{Name: "Coffee", Category: model.CategoryB},
		{Name: "Snack", Category: model.CategoryB},
	}
	var sel []string
	sel = Add(cat, sel, "Movie")
	sel = Add(cat, sel, "Coffee")
	assert.Len(t, sel, 2)
	assert.False(t, IsSelectable(cat, sel, "Snack"))
	sel = Add(cat, sel, "Snack")
	assert.Equal(t, []string{"Movie", "Coffee"}, sel)
	assert.True(t, CanSubmit(sel, "Alice"))
}
