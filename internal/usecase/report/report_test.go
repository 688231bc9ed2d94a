package report

import (
	"strings"
	"testing"
	"time"

	domain "loanintake-backend/internal/domain/application"
)

func TestGenerate_EmptySnapshot(t *testing.T) {
	doc, err := Generate(nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	html := string(doc)
	if !strings.Contains(html, "No Applications Available") {
		t.Fatalf("empty report missing empty-state text:\n%s", html)
	}
	if strings.Contains(html, "<table>") {
		t.Fatalf("empty report should not render a table")
	}
}

func TestGenerate_SummaryStats(t *testing.T) {
	uri := "file:///docs/a.pdf"
	now := time.Now().UTC()
	snapshot := []domain.LoanApplication{
		{ID: 3, Name: "Carol", Email: "c@x.com", Salary: 80000, PaysheetURI: &uri, SubmittedAt: now, Status: domain.StatusPending},
		{ID: 2, Name: "Bob", Email: "b@x.com", Salary: 30000, SubmittedAt: now, Status: domain.StatusApproved},
		{ID: 1, Name: "Alice", Email: "a@x.com", Salary: 40000, SubmittedAt: now, Status: domain.StatusRejected},
	}

	doc, err := Generate(snapshot)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	html := string(doc)

	for _, want := range []string{
		"<strong>Total Applications:</strong> 3",
		"<strong>With Paysheet:</strong> 1",
		"<strong>High Income:</strong> 1",
		"LKR 50000.00", // average of 80000, 30000, 40000
		"Carol", "Bob", "Alice",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("report missing %q:\n%s", want, html)
		}
	}
}

func TestGenerate_EscapesUserContent(t *testing.T) {
	snapshot := []domain.LoanApplication{
		{ID: 1, Name: "<script>alert(1)</script>", Email: "a@x.com", Salary: 1000, SubmittedAt: time.Now(), Status: domain.StatusPending},
	}
	doc, err := Generate(snapshot)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(string(doc), "<script>alert(1)</script>") {
		t.Fatal("user content not escaped")
	}
}
