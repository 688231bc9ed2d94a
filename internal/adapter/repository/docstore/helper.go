package docstore

import (
	"sort"
	"time"

	"loanintake-backend/internal/domain/application"
)

func nowUTC() time.Time { return time.Now().UTC() }

// newest-first; id descending is the insertion total order
func sortByIDDesc(list []application.LoanApplication) {
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
}
