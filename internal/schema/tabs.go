package schema

import "fmt"

// Tab describes one content tab and the table backing it.
type Tab struct {
	Number  int    // 1-based position in the operator prompt
	LabelHe string // Hebrew label shown in prompts and the tab bar
	ID      string // logical id used in URLs (/api/<id>)
	Table   string // backing table in the store; also the seed marker name
}

// Tabs lists the six importable content tabs in prompt order.
//
// The home tab is intentionally absent: it is served but never imported, so
// operator-facing enumeration starts at the first content tab.
var Tabs = []Tab{
	{Number: 1, LabelHe: "גן", ID: "docs", Table: "docs"},
	{Number: 2, LabelHe: "בית א׳-ב׳", ID: "tasks", Table: "tasks"},
	{Number: 3, LabelHe: "בית ג׳-ד׳", ID: "notes", Table: "notes"},
	{Number: 4, LabelHe: "בית ה׳-ו׳", ID: "alerts", Table: "alerts"},
	{Number: 5, LabelHe: "בית חט״ב", ID: "links", Table: "links"},
	{Number: 6, LabelHe: "תיכון", ID: "hs", Table: "highschool"},
}

// HomeTab is the serving-only tab backing the landing view.
var HomeTab = Tab{LabelHe: "בית", ID: "home", Table: "home_items"}

// ServingTables maps every logical tab id the HTTP layer accepts to its
// backing table, home included.
func ServingTables() map[string]string {
	m := make(map[string]string, len(Tabs)+1)
	m[HomeTab.ID] = HomeTab.Table
	for _, t := range Tabs {
		m[t.ID] = t.Table
	}
	return m
}

// TabByID returns the importable tab with the given logical id.
func TabByID(id string) (Tab, error) {
	for _, t := range Tabs {
		if t.ID == id {
			return t, nil
		}
	}
	return Tab{}, fmt.Errorf("unknown tab %q", id)
}

// TabByNumber returns the importable tab at the given prompt position.
func TabByNumber(n int) (Tab, error) {
	for _, t := range Tabs {
		if t.Number == n {
			return t, nil
		}
	}
	return Tab{}, fmt.Errorf("tab number %d out of range 1-%d", n, len(Tabs))
}
