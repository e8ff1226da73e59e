package server

import (
	"embed"
	"html/template"

	"courseboard/internal/schema"
	"courseboard/internal/store"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// tabConfig is one entry of the rendered tab bar.
type tabConfig struct {
	ID    string
	Label string
	Icon  string // Bootstrap Icons class
}

type indexData struct {
	Settings  store.Settings
	Tabs      []tabConfig
	ActiveTab string
}

// tabsConfig builds the tab bar from the settings row's labels.
func tabsConfig(settings store.Settings) []tabConfig {
	return []tabConfig{
		{ID: schema.HomeTab.ID, Label: settings.TabHome, Icon: "bi bi-house"},
		{ID: "docs", Label: settings.TabDocs, Icon: "bi bi-file-text"},
		{ID: "tasks", Label: settings.TabTasks, Icon: "bi bi-check2-square"},
		{ID: "notes", Label: settings.TabNotes, Icon: "bi bi-journal-text"},
		{ID: "alerts", Label: settings.TabAlerts, Icon: "bi bi-bell"},
		{ID: "links", Label: settings.TabLinks, Icon: "bi bi-link-45deg"},
		{ID: "hs", Label: settings.TabHighschool, Icon: "bi bi-mortarboard"},
	}
}
