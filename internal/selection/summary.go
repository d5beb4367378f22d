package selection

import "fmt"

// Count — строка сводки: имя подарка и сколько раз он выбран.
type Count struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

func (c Count) String() string {
	if c.Qty > 1 {
		return fmt.Sprintf("%s x%d", c.Name, c.Qty)
	}
	return c.Name
}

// Summarize группирует выбор по имени в порядке первого появления.
func Summarize(selection []string) []Count {
	idx := make(map[string]int, len(selection))
	out := make([]Count, 0, len(selection))
	for _, name := range selection {
		if i, ok := idx[name]; ok {
			out[i].Qty++
			continue
		}
		idx[name] = len(out)
		out = append(out, Count{Name: name, Qty: 1})
	}
	return out
}
