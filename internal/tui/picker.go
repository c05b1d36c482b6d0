package tui

import (
	"fmt"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"civicmap/internal/refdata"
)

type stateItem struct {
	st refdata.State
}

func (s stateItem) Title() string { return s.st.DisplayName }

func (s stateItem) Description() string {
	code := strings.ToUpper(s.st.Code)
	switch n := refdata.DistrictCount(s.st.Code); n {
	case 0:
		return code + " · non-voting"
	case 1:
		return code + " · at-large"
	default:
		return fmt.Sprintf("%s · %d districts", code, n)
	}
}

func (s stateItem) FilterValue() string { return s.st.Name + " " + s.st.Code }

// stateItems lists the reference table alphabetically by name.
func stateItems() []list.Item {
	all := refdata.States()
	items := make([]list.Item, 0, len(all))
	for _, st := range all {
		items = append(items, stateItem{st: st})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(stateItem).st.Name < items[j].(stateItem).st.Name })
	return items
}
