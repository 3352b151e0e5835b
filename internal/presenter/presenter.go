// Package presenter renders command results as tables, JSON or YAML.
package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"gopkg.in/yaml.v3"

	"github.com/vytor/srep/internal/config"
	"github.com/vytor/srep/internal/models"
)

const dateLayout = "2006-01-02"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#334155"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")).Italic(true)
)

// Presenter writes results to out in one output format.
type Presenter struct {
	format string
	out    io.Writer
}

// New returns a presenter for format, one of table, json or yaml.
func New(format string, out io.Writer) (*Presenter, error) {
	switch format {
	case config.OutputTable, config.OutputJSON, config.OutputYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q (must be table, json or yaml)", format)
	}
	return &Presenter{format: format, out: out}, nil
}

// TagCreated confirms a new tag.
func (p *Presenter) TagCreated(tag models.Tag) error {
	if p.format != config.OutputTable {
		return p.encode(tag)
	}
	return p.notice("Created tag %s (experience target %d)", tag.Name, tag.ExperienceTarget)
}

// ProblemCreated confirms a new problem.
func (p *Presenter) ProblemCreated(problem models.Problem) error {
	if p.format != config.OutputTable {
		return p.encode(problem)
	}
	return p.notice("Created problem %s [%s] tags: %s", problem.Name, problem.Difficulty, strings.Join(problem.TagNames(), ", "))
}

// ProblemLogged confirms an attempt and shows the next review per tag.
func (p *Presenter) ProblemLogged(receipt models.LogReceipt) error {
	if p.format != config.OutputTable {
		return p.encode(receipt)
	}
	if err := p.notice("Logged %s for %s", receipt.Log.Result, receipt.Problem.Name); err != nil {
		return err
	}
	rows := make([][]string, 0, len(receipt.Reviews))
	for _, r := range receipt.Reviews {
		rows = append(rows, []string{r.Tag, ratio(r.Ease), days(r.Interval), r.DueAt.Format(dateLayout)})
	}
	return p.table([]string{"Tag", "Ease", "Interval", "Next review"}, rows)
}

// Problems lists scored problems.
func (p *Presenter) Problems(scores []models.ProblemScore) error {
	if p.format != config.OutputTable {
		return p.encode(nonNil(scores))
	}
	if len(scores) == 0 {
		return p.hint("No problems found.")
	}
	rows := make([][]string, 0, len(scores))
	for _, s := range scores {
		lastAccess := "-"
		if s.LastAccess != nil {
			lastAccess = s.LastAccess.Format(dateLayout)
		}
		rows = append(rows, []string{
			s.Name,
			s.Difficulty.String(),
			strings.Join(s.TagNames(), ", "),
			ratio(s.KS),
			optionalRatio(s.RF),
			lastAccess,
			s.URL,
		})
	}
	return p.table([]string{"Problem", "Difficulty", "Tags", "KS", "RF", "Last access", "URL"}, rows)
}

// Tags lists tags by study priority, most urgent first.
func (p *Presenter) Tags(priorities []models.TagPriority) error {
	if p.format != config.OutputTable {
		return p.encode(nonNil(priorities))
	}
	if len(priorities) == 0 {
		return p.hint("No tags found.")
	}
	rows := make([][]string, 0, len(priorities))
	for _, t := range priorities {
		rows = append(rows, []string{
			t.Name,
			ratio(t.Priority),
			ratio(t.WeightedKS),
			ratio(t.Experience),
			ratio(t.MeanEasy),
			ratio(t.MeanMedium),
			ratio(t.MeanHard),
			fmt.Sprintf("%d/%d", t.NumLogged, t.NumProblems),
		})
	}
	return p.table([]string{"Tag", "Priority", "Weighted KS", "Experience", "Easy", "Medium", "Hard", "Logged"}, rows)
}

// History lists replayed attempts.
func (p *Presenter) History(entries []models.HistoryEntry) error {
	if p.format != config.OutputTable {
		return p.encode(nonNil(entries))
	}
	if len(entries) == 0 {
		return p.hint("No attempts logged yet.")
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Tag,
			e.Timestamp.Format(dateLayout),
			e.Result.String(),
			ratio(e.Ease),
			days(e.Interval),
			e.DueAt.Format(dateLayout),
			e.Comment,
		})
	}
	return p.table([]string{"Tag", "Date", "Result", "Ease", "Interval", "Next review", "Comment"}, rows)
}

// Reviews lists due (problem, tag) pairs.
func (p *Presenter) Reviews(items []models.ReviewItem) error {
	if p.format != config.OutputTable {
		return p.encode(nonNil(items))
	}
	if len(items) == 0 {
		return p.hint("Nothing due. Come back later.")
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.Problem,
			it.Tag,
			it.Difficulty.String(),
			it.LastResult.String(),
			it.DueAt.Format(dateLayout),
			strconv.FormatFloat(it.OverdueDays, 'f', 1, 64),
			ratio(it.RF),
			ratio(it.KS),
		})
	}
	return p.table([]string{"Problem", "Tag", "Difficulty", "Last result", "Due", "Overdue (days)", "RF", "KS"}, rows)
}

// Simulation lists the steps of a simulated learning path.
func (p *Presenter) Simulation(steps []models.SimulationStep) error {
	if p.format != config.OutputTable {
		return p.encode(nonNil(steps))
	}
	rows := make([][]string, 0, len(steps))
	for _, s := range steps {
		rows = append(rows, []string{
			strconv.Itoa(s.Repetition),
			strconv.Itoa(s.Day),
			s.Result.String(),
			ratio(s.Ease),
			days(s.Interval),
		})
	}
	return p.table([]string{"#", "Day", "Result", "Ease", "Interval"}, rows)
}

func (p *Presenter) encode(v any) error {
	if p.format == config.OutputYAML {
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Presenter) table(headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := lipgloss.Fprintln(p.out, t.String())
	return err
}

func (p *Presenter) notice(format string, args ...any) error {
	_, err := lipgloss.Fprintln(p.out, noticeStyle.Render(fmt.Sprintf(format, args...)))
	return err
}

func (p *Presenter) hint(msg string) error {
	_, err := lipgloss.Fprintln(p.out, hintStyle.Render(msg))
	return err
}

func ratio(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func optionalRatio(v *float64) string {
	if v == nil {
		return "-"
	}
	return ratio(*v)
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// nonNil keeps empty results encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
