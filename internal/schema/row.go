package schema

// Canonical column names, exactly as the store's tables declare them.
// "requirments" is misspelled in the schema and therefore contractual.
const (
	ColCourseName      = "course_name"
	ColTeacherName     = "teacher_name"
	ColIntendedFor     = "intended_for"
	ColCourseInfo      = "course_info"
	ColRequirments     = "requirments"
	ColCategory        = "category"
	ColAllowValenteres = "allow_valenteres"
	ColValentieresAge  = "valentieres_age"
	ColMaxValetires    = "max_valetires"
	ColAdditionalInfo  = "additional_info"
)

// Columns is the canonical column order for INSERT statements and alias
// resolution. "id" is never listed; the store assigns it.
var Columns = []string{
	ColCourseName,
	ColTeacherName,
	ColIntendedFor,
	ColCourseInfo,
	ColRequirments,
	ColCategory,
	ColAllowValenteres,
	ColValentieresAge,
	ColMaxValetires,
	ColAdditionalInfo,
}

// DefaultCategory is substituted for blank or unknown source categories.
const DefaultCategory = "כללי"

// TruthyTokens are the exact tokens (after trim, case-folded) accepted as
// true for allow_valenteres. The last two are the Hebrew affirmatives for
// "yes" and "correct". Anything else, including empty, is false.
var TruthyTokens = []string{"1", "true", "yes", "y", "on", "כן", "נכון"}

// CanonicalRow is one normalized spreadsheet line, shaped to the shared
// ten-column contract. Optional text columns are nil when the source cell
// is empty; intended_for keeps the empty string to satisfy its NOT NULL
// constraint.
type CanonicalRow struct {
	CourseName      string
	TeacherName     string
	IntendedFor     string
	CourseInfo      *string
	Requirments     *string
	Category        string
	AllowValenteres bool
	ValentieresAge  *string
	MaxValetires    *int64
	AdditionalInfo  *string
}
