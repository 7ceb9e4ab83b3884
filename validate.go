package ledger

import "fmt"

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // Insert will fail
	SeverityWarning                 // Output may not look as intended
)

// ValidationIssue represents a single problem found in a template tree.
type ValidationIssue struct {
	Severity Severity
	Label    string // label of the offending template, or column name
	Message  string
}

// String formats the issue as "[ERROR] Cash Flow: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	return fmt.Sprintf("[%s] %s: %s", sev, v.Label, v.Message)
}

// ValidateTemplates checks template trees against a report without inserting
// them: every shape must exist and have room for the label and value cells,
// and every format template must compile. Column formats are checked too.
func ValidateTemplates(r *Report, roots ...*RowTemplate) []ValidationIssue {
	var issues []ValidationIssue
	for _, c := range r.columnOrder {
		issues = append(issues, checkFormat(c.name, "format", c.format)...)
		issues = append(issues, checkFormat(c.name, "secondary format", c.secondaryFormat)...)
	}
	for _, t := range roots {
		issues = append(issues, validateTemplate(r, t, map[*RowTemplate]bool{})...)
	}
	return issues
}

func validateTemplate(r *Report, t *RowTemplate, path map[*RowTemplate]bool) []ValidationIssue {
	var issues []ValidationIssue
	if path[t] {
		return []ValidationIssue{{
			Severity: SeverityError,
			Label:    t.label,
			Message:  "template is its own ancestor",
		}}
	}
	path[t] = true
	defer delete(path, t)

	s, ok := r.shapes[t.shape]
	if !ok {
		issues = append(issues, ValidationIssue{
			Severity: SeverityError,
			Label:    t.label,
			Message:  fmt.Sprintf("shape %q not in report %q", t.shape, r.name),
		})
	} else {
		need := 1
		if !t.hideValue {
			need = 2
		}
		if len(s.columns) < need {
			issues = append(issues, ValidationIssue{
				Severity: SeverityError,
				Label:    t.label,
				Message:  fmt.Sprintf("shape %q has %d columns, template needs %d", t.shape, len(s.columns), need),
			})
		} else if len(s.columns) > need {
			issues = append(issues, ValidationIssue{
				Severity: SeverityWarning,
				Label:    t.label,
				Message:  fmt.Sprintf("shape %q has %d columns, template fills %d", t.shape, len(s.columns), need),
			})
		}
	}
	if t.hasSecondary {
		issues = append(issues, checkFormat(t.label, "secondary format", t.secondaryFormat)...)
	}

	for _, c := range t.children {
		issues = append(issues, validateTemplate(r, c, path)...)
	}
	return issues
}

func checkFormat(label, what, template string) []ValidationIssue {
	if template == "" {
		return nil
	}
	if err := checkTemplate(template); err != nil {
		return []ValidationIssue{{
			Severity: SeverityError,
			Label:    label,
			Message:  fmt.Sprintf("%s: %v", what, err),
		}}
	}
	return nil
}
