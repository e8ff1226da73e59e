package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Record is one row of a content table, shaped for the JSON API:
// allow_valenteres is a boolean, max_valetires a number or null, and the
// optional text columns null when absent.
type Record struct {
	ID              int64   `json:"id"`
	CourseName      string  `json:"course_name"`
	TeacherName     string  `json:"teacher_name"`
	IntendedFor     string  `json:"intended_for"`
	CourseInfo      *string `json:"course_info"`
	Requirments     *string `json:"requirments"`
	Category        string  `json:"category"`
	AllowValenteres bool    `json:"allow_valenteres"`
	ValentieresAge  *string `json:"valentieres_age"`
	MaxValetires    *int64  `json:"max_valetires"`
	AdditionalInfo  *string `json:"additional_info"`
}

// TabRecords returns all rows of a content table, newest first.
// Returns an empty slice, not nil, when the table is empty.
func (s *Store) TabRecords(ctx context.Context, table string) ([]Record, error) {
	if !knownTables[table] {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, course_name, teacher_name, intended_for, course_info,
		       requirments, category, allow_valenteres, valentieres_age,
		       max_valetires, additional_info
		FROM `+table+`
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var (
			r        Record
			info     sql.NullString
			reqs     sql.NullString
			allow    int64
			age      sql.NullString
			maxVol   sql.NullInt64
			addlInfo sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.CourseName, &r.TeacherName, &r.IntendedFor,
			&info, &reqs, &r.Category, &allow, &age, &maxVol, &addlInfo); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		r.CourseInfo = nullableString(info)
		r.Requirments = nullableString(reqs)
		r.AllowValenteres = allow != 0
		r.ValentieresAge = nullableString(age)
		r.MaxValetires = nullableInt(maxVol)
		r.AdditionalInfo = nullableString(addlInfo)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}

	return records, nil
}

// Categories returns the category lookup set, sorted by name.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return names, nil
}

// Settings holds the single main_settings row: tab labels plus the home
// view's title and description.
type Settings struct {
	TabHome         string
	TabDocs         string
	TabTasks        string
	TabNotes        string
	TabAlerts       string
	TabLinks        string
	TabHighschool   string
	HomeTitle       string
	HomeDescription string
}

// DefaultSettings are served when the database has no main_settings row
// yet, so an unseeded store still renders a usable page.
func DefaultSettings() Settings {
	return Settings{
		TabHome:         "בית",
		TabDocs:         "גן",
		TabTasks:        "בית א׳-ב׳",
		TabNotes:        "בית ג׳-ד׳",
		TabAlerts:       "בית ה׳-ו׳",
		TabLinks:        "בית חט״ב",
		TabHighschool:   "תיכון",
		HomeTitle:       "ברוכים הבאים",
		HomeDescription: "אנא טענו את קבצי הסכימה והזריעה כדי להציג נתונים.",
	}
}

// Settings returns the first main_settings row, or DefaultSettings when
// none exists.
func (s *Store) Settings(ctx context.Context) (Settings, error) {
	var out Settings
	err := s.db.QueryRowContext(ctx, `
		SELECT tab_home, tab_docs, tab_tasks, tab_notes, tab_alerts,
		       tab_links, tab_highschool, home_title, home_description
		FROM main_settings
		ORDER BY id LIMIT 1
	`).Scan(&out.TabHome, &out.TabDocs, &out.TabTasks, &out.TabNotes,
		&out.TabAlerts, &out.TabLinks, &out.TabHighschool,
		&out.HomeTitle, &out.HomeDescription)
	if err == sql.ErrNoRows {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("query main_settings: %w", err)
	}
	return out, nil
}

// PreviewRow is one line of the post-rebuild preview.
type PreviewRow struct {
	ID          int64  `json:"id"`
	CourseName  string `json:"course_name"`
	TeacherName string `json:"teacher_name"`
	Category    string `json:"category"`
}

// Preview returns the newest rows of a table for the operator summary.
func (s *Store) Preview(ctx context.Context, table string, limit int) ([]PreviewRow, error) {
	if !knownTables[table] {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, course_name, teacher_name, category
		FROM `+table+`
		ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("preview %s: %w", table, err)
	}
	defer rows.Close()

	var preview []PreviewRow
	for rows.Next() {
		var p PreviewRow
		if err := rows.Scan(&p.ID, &p.CourseName, &p.TeacherName, &p.Category); err != nil {
			return nil, fmt.Errorf("scan preview row: %w", err)
		}
		preview = append(preview, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preview: %w", err)
	}

	return preview, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullableInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
