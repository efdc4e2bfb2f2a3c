package engine

import (
	"time"

	"github.com/google/uuid"
)

// TaskTemplate describes one required daily quest. The required set is
// configuration: the initializer materializes whatever templates it is
// handed, in order.
type TaskTemplate struct {
	Kind        TaskKind
	Title       string
	Description string
	Reward      Cents
}

// DefaultTemplates returns the built-in daily quest set.
func DefaultTemplates() []TaskTemplate {
	return []TaskTemplate{
		{
			Kind:        KindReading,
			Title:       "Daily Reading Time",
			Description: "Read a book for 15 minutes",
			Reward:      500,
		},
		{
			Kind:        KindEnglish,
			Title:       "English Challenge",
			Description: "Practice speaking one sentence",
			Reward:      500,
		},
	}
}

// newDailyTask constructs a fresh todo task for the template on the date.
func newDailyTask(tpl TaskTemplate, date string) Task {
	return Task{
		ID:          DailyTaskID(tpl.Kind, date),
		Kind:        tpl.Kind,
		Title:       tpl.Title,
		Description: tpl.Description,
		Reward:      tpl.Reward,
		Status:      StatusTodo,
		Date:        date,
	}
}

// seedState builds the documented first-run snapshot. The seed transactions
// include an opening-balance entry so the ledger reconciles from zero:
// 320.00 − 200.00 + 5.00 = 125.00.
func seedState(now time.Time) *State {
	return &State{
		Balance:       12500,
		TotalEarnings: 80000,
		Transactions: []Transaction{
			{
				ID:          uuid.NewString(),
				Date:        now.AddDate(0, 0, -3),
				Amount:      32000,
				Description: "Opening balance",
				Type:        TxIncome,
			},
			{
				ID:          uuid.NewString(),
				Date:        now.AddDate(0, 0, -2),
				Amount:      -20000,
				Description: "Lego Set",
				Type:        TxExpense,
			},
			{
				ID:          uuid.NewString(),
				Date:        now.AddDate(0, 0, -1),
				Amount:      500,
				Description: "Daily Reading",
				Type:        TxIncome,
			},
		},
		Wishes: []Wish{
			{
				ID:    uuid.NewString(),
				Name:  "Nintendo Switch Game",
				Price: 30000,
			},
		},
		Streak:        0,
		LastLoginDate: DateOf(now),
	}
}
