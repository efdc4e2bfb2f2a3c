package engine

import "time"

// ApproveResult reports what an approval did to the ledger and streak.
type ApproveResult struct {
	Task            Task
	Credited        Cents
	AlreadyApproved bool
	DayComplete     bool
	StreakBonus     bool
	Streak          int
}

// Approve moves a pending task to approved and credits its fixed reward:
// exactly one income transaction, balance and lifetime earnings both up by
// the reward. Approving an already-approved task is a no-op and never
// re-credits.
//
// When the approval completes today's task set (every task assigned today
// approved), the streak increments by one. Approved is terminal and the
// day's set is fixed after initialization, so the bonus fires at most once
// per day.
func Approve(s *State, id string, now time.Time) (*State, *ApproveResult, error) {
	i := s.taskIndex(id)
	if i < 0 {
		return nil, nil, NotFoundError{TaskID: id}
	}
	if s.Tasks[i].Status == StatusApproved {
		return s.Clone(), &ApproveResult{
			Task:            s.Tasks[i].clone(),
			AlreadyApproved: true,
			Streak:          s.Streak,
		}, nil
	}
	if s.Tasks[i].Status != StatusPending {
		return nil, nil, validationf("task %q is %s; only pending tasks can be approved", id, s.Tasks[i].Status)
	}

	next := s.Clone()
	t := &next.Tasks[i]
	t.Status = StatusApproved

	next.Transactions = append(next.Transactions, Transaction{
		ID:          newTransactionID(),
		Date:        now,
		Amount:      t.Reward,
		Description: t.Title + " Completed",
		Type:        TxIncome,
	})
	next.Balance += t.Reward
	next.TotalEarnings += t.Reward

	res := &ApproveResult{
		Task:     t.clone(),
		Credited: t.Reward,
	}
	if t.Date == DateOf(now) && next.dayComplete(t.Date) {
		next.Streak++
		res.DayComplete = true
		res.StreakBonus = true
	}
	res.Streak = next.Streak
	return next, res, nil
}

// Reject moves a pending task back to rejected so the child can resubmit.
// No ledger effect; the submitted details stay on the task.
func Reject(s *State, id string) (*State, error) {
	i := s.taskIndex(id)
	if i < 0 {
		return nil, NotFoundError{TaskID: id}
	}
	if s.Tasks[i].Status != StatusPending {
		return nil, validationf("task %q is %s; only pending tasks can be rejected", id, s.Tasks[i].Status)
	}
	next := s.Clone()
	next.Tasks[i].Status = StatusRejected
	return next, nil
}
