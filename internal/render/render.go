package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/service"

	ginrender "github.com/gin-gonic/gin/render"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by Instance.
const (
	PageLogin       = "login"
	PageDashboard   = "dashboard"
	PageCourses     = "courses"
	PageAssignments = "assignments"
	PageProfile     = "profile"
)

var pageNames = []string{PageLogin, PageDashboard, PageCourses, PageAssignments, PageProfile}

// Page is the data every full page gets: the shell around the content.
type Page struct {
	Title        string
	Active       string // nav item to highlight
	Theme        domain.Theme
	User         string
	PendingCount int
	Alerts       []domain.Alert
	Content      interface{}
}

// ProfileView is what the profile form fragment needs.
type ProfileView struct {
	Form      service.ProfileForm
	AvatarURL string
	Errors    map[string]string
}

// LoginView is the login form with its inline errors.
type LoginView struct {
	Username string
	Errors   map[string]string
}

// FilterOption is one filter button.
type FilterOption struct {
	Value string
	Label string
}

// CoursesView is the courses page content.
type CoursesView struct {
	Query   service.CourseQuery
	Filters []FilterOption
	Courses []domain.Course
}

func NewCoursesView(q service.CourseQuery, courses []domain.Course) CoursesView {
	return CoursesView{
		Query: q,
		Filters: []FilterOption{
			{Value: string(service.CourseFilterAll), Label: "All Courses"},
			{Value: string(service.CourseFilterActive), Label: "Active"},
			{Value: string(service.CourseFilterCompleted), Label: "Completed"},
		},
		Courses: courses,
	}
}

// AssignmentsView is the assignments page content.
type AssignmentsView struct {
	Query   service.AssignmentQuery
	Filters []FilterOption
	Items   []service.AssignmentView
}

func NewAssignmentsView(page *service.AssignmentPage) AssignmentsView {
	return AssignmentsView{
		Query: page.Query,
		Filters: []FilterOption{
			{Value: string(service.FilterAll), Label: "All"},
			{Value: string(service.FilterPending), Label: "Pending"},
			{Value: string(service.FilterSubmitted), Label: "Submitted"},
			{Value: string(service.FilterLate), Label: "Late"},
		},
		Items: page.Items,
	}
}

// Renderer turns portal data into HTML. Fragment methods write to w and
// do nothing when w is nil.
type Renderer struct {
	fragments *template.Template
	pages     map[string]*template.Template
	md        goldmark.Markdown
	log       *zap.Logger
}

// New parses the embedded templates.
func New(log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{
		md:    goldmark.New(),
		log:   log,
		pages: make(map[string]*template.Template, len(pageNames)),
	}

	base, err := template.New("portal").Funcs(r.funcs()).ParseFS(templateFS, "templates/layout.html", "templates/fragments.html")
	if err != nil {
		return nil, fmt.Errorf("parsing base templates: %w", err)
	}
	r.fragments = base

	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parsing page %s: %w", name, err)
		}
		r.pages[name] = clone
	}
	return r, nil
}

// Instance makes Renderer a gin HTMLRender, so handlers can use c.HTML with
// a page name.
func (r *Renderer) Instance(name string, data interface{}) ginrender.Render {
	return ginrender.HTML{Template: r.pages[name], Name: "layout", Data: data}
}

// RenderPage writes a full page.
func (r *Renderer) RenderPage(w io.Writer, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	if w == nil {
		return nil
	}
	return tmpl.ExecuteTemplate(w, "layout", page)
}

// RenderAssignments replaces the assignments container content. All items
// must have been resolved against the same instant.
func (r *Renderer) RenderAssignments(w io.Writer, items []service.AssignmentView) error {
	return r.fragment(w, "assignments", items)
}

// RenderAssignment renders one assignment item, used to patch a single
// node after a submission.
func (r *Renderer) RenderAssignment(w io.Writer, item service.AssignmentView) error {
	return r.fragment(w, "assignment_item", item)
}

func (r *Renderer) RenderCourses(w io.Writer, items []domain.Course) error {
	return r.fragment(w, "courses", items)
}

func (r *Renderer) RenderStats(w io.Writer, stats []domain.Stat) error {
	return r.fragment(w, "stats", stats)
}

func (r *Renderer) RenderAlert(w io.Writer, alert domain.Alert) error {
	return r.fragment(w, "alert", alert)
}

func (r *Renderer) RenderAlerts(w io.Writer, alerts []domain.Alert) error {
	return r.fragment(w, "alerts", alerts)
}

func (r *Renderer) RenderProfile(w io.Writer, view ProfileView) error {
	return r.fragment(w, "profile_form", view)
}

// RenderBadge writes the sidebar pending-count badge.
func (r *Renderer) RenderBadge(w io.Writer, pending int) error {
	return r.fragment(w, "pending_badge", pending)
}

// RenderThemeToggle writes the theme toggle button for the given theme.
func (r *Renderer) RenderThemeToggle(w io.Writer, theme domain.Theme) error {
	return r.fragment(w, "theme_toggle", theme)
}

// fragment executes into a buffer first so a failing template never leaves
// half a fragment on the wire.
func (r *Renderer) fragment(w io.Writer, name string, data interface{}) error {
	if w == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := r.fragments.ExecuteTemplate(&buf, name, data); err != nil {
		r.log.Error("rendering fragment failed", zap.String("template", name), zap.Error(err))
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// --- Template helpers ---

type badge struct {
	Text  string
	Class string
	Icon  string
}

func statusBadge(status domain.AssignmentStatus) badge {
	switch status {
	case domain.StatusPending:
		return badge{Text: "Pending", Class: "status-pending", Icon: "fas fa-clock"}
	case domain.StatusSubmitted:
		return badge{Text: "Submitted", Class: "status-submitted", Icon: "fas fa-check-circle"}
	case domain.StatusLate:
		return badge{Text: "Late", Class: "status-late", Icon: "fas fa-exclamation-triangle"}
	default:
		return badge{Text: "Unknown", Class: "status-pending", Icon: "fas fa-question-circle"}
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// DueText is the relative due phrase next to the due date.
func DueText(days int) string {
	switch {
	case days > 0:
		return "Due in " + plural(days, "day")
	case days == 0:
		return "Due today"
	default:
		return "Due " + plural(-days, "day") + " ago"
	}
}

func formatDate(layout string) func(domain.Date) string {
	return func(d domain.Date) string {
		return d.In(time.UTC).Format(layout)
	}
}

// markdown renders untrusted text. Raw HTML in the input is dropped.
func (r *Renderer) markdown(s string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(s), &buf); err != nil {
		r.log.Warn("markdown conversion failed", zap.Error(err))
		return template.HTML("<p>" + template.HTMLEscapeString(s) + "</p>")
	}
	return template.HTML(buf.String())
}

// formField is one labelled input of the profile form.
type formField struct {
	Name    string
	Label   string
	Value   string
	Editing bool
	Error   string
}

func fieldOf(name, label, value string, editing bool, errs map[string]string) formField {
	return formField{Name: name, Label: label, Value: value, Editing: editing, Error: errs[name]}
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"badge":      statusBadge,
		"dueText":    DueText,
		"dueDate":    formatDate("Mon, Jan 2, 2006"),
		"shortDate":  formatDate("Jan 2, 2006"),
		"localDate":  formatDate("1/2/2006"),
		"markdown":   r.markdown,
		"submitting": func(s service.SubmissionState) bool { return s == service.StateSubmitting },
		"fieldOf":    fieldOf,
		"isDark":     func(t domain.Theme) bool { return t == domain.ThemeDark },
	}
}
