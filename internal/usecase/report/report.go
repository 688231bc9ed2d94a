package report

import (
	"bytes"
	"html/template"
	"time"

	domain "loanintake-backend/internal/domain/application"
)

// highIncomeThreshold marks applications worth flagging in the summary.
const highIncomeThreshold = 50000

type summary struct {
	GeneratedAt   string
	Total         int
	WithPaysheet  int
	HighIncome    int
	AverageSalary float64
	Rows          []domain.LoanApplication
}

// Generate renders a printable HTML document from a list snapshot. The
// snapshot is taken by the caller; this helper never touches the store.
func Generate(snapshot []domain.LoanApplication) ([]byte, error) {
	s := summary{
		GeneratedAt: time.Now().UTC().Format("2006-01-02"),
		Total:       len(snapshot),
		Rows:        snapshot,
	}
	var totalSalary float64
	for _, a := range snapshot {
		if a.PaysheetURI != nil {
			s.WithPaysheet++
		}
		if a.Salary >= highIncomeThreshold {
			s.HighIncome++
		}
		totalSalary += a.Salary
	}
	if s.Total > 0 {
		s.AverageSalary = totalSalary / float64(s.Total)
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var reportTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Loan Applications Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
h1 { border-bottom: 2px solid #059669; padding-bottom: 0.3em; }
table { border-collapse: collapse; width: 100%; margin-top: 1em; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
th { background: #059669; color: #fff; }
.empty { margin-top: 2em; color: #666; }
</style>
</head>
<body>
<h1>Loan Applications Report</h1>
<p><strong>Generated on:</strong> {{.GeneratedAt}}</p>
{{if eq .Total 0}}
<div class="empty">
<h2>No Applications Available</h2>
<p>There are no loan applications to display.</p>
</div>
{{else}}
<p>
<strong>Total Applications:</strong> {{.Total}} &mdash;
<strong>With Paysheet:</strong> {{.WithPaysheet}} &mdash;
<strong>High Income:</strong> {{.HighIncome}} &mdash;
<strong>Average Salary:</strong> LKR {{printf "%.2f" .AverageSalary}}
</p>
<table>
<tr><th>ID</th><th>Name</th><th>Email</th><th>Tel</th><th>Occupation</th><th>Salary</th><th>Paysheet</th><th>Submitted</th><th>Status</th></tr>
{{range .Rows}}
<tr>
<td>{{.ID}}</td>
<td>{{.Name}}</td>
<td>{{.Email}}</td>
<td>{{.Tel}}</td>
<td>{{.Occupation}}</td>
<td>LKR {{printf "%.2f" .Salary}}</td>
<td>{{if .PaysheetURI}}Yes{{else}}No{{end}}</td>
<td>{{.SubmittedAt.Format "2006-01-02"}}</td>
<td>{{.Status}}</td>
</tr>
{{end}}
</table>
{{end}}
</body>
</html>
`))
