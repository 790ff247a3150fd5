package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/neuroscanhq/neuroscan/internal/db"
)

// ErrNoRuns indicates no training run has been imported yet.
var ErrNoRuns = errors.New("no training runs imported")

// Store persists training run metrics.
type Store struct {
	db *db.DB
}

func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Summarize condenses a history into the headline numbers shown to users.
// Accuracies are reported as percentages rounded to two decimals, the loss
// to four.
func Summarize(h *History) Summary {
	return Summary{
		MaxAccuracy:    round2(maxOf(h.Accuracy) * 100),
		MaxValAccuracy: round2(maxOf(h.ValAccuracy) * 100),
		FinalLoss:      round4(lastOf(h.Loss)),
		Epochs:         len(h.Accuracy),
	}
}

// ImportRun stores a named training run with its full epoch history. The
// progress callback, if non-nil, is invoked after each epoch row is written.
func (s *Store) ImportRun(ctx context.Context, name string, h *History, progress func(epoch int)) (*Run, error) {
	if len(h.Accuracy) == 0 {
		return nil, fmt.Errorf("history has no epochs")
	}
	if len(h.ValAccuracy) != len(h.Accuracy) || len(h.Loss) != len(h.Accuracy) || len(h.ValLoss) != len(h.Accuracy) {
		return nil, fmt.Errorf("history metric lengths differ: accuracy=%d val_accuracy=%d loss=%d val_loss=%d",
			len(h.Accuracy), len(h.ValAccuracy), len(h.Loss), len(h.ValLoss))
	}

	run := &Run{
		ID:         uuid.New().String(),
		Name:       name,
		ImportedAt: time.Now().UTC(),
		Summary:    Summarize(h),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO training_runs (id, name, imported_at, epochs, max_accuracy, max_val_accuracy, final_loss)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Name, run.ImportedAt, run.Summary.Epochs,
		run.Summary.MaxAccuracy, run.Summary.MaxValAccuracy, run.Summary.FinalLoss)
	if err != nil {
		return nil, fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO training_epochs (run_id, epoch, accuracy, val_accuracy, loss, val_loss)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("preparing epoch insert: %w", err)
	}
	defer stmt.Close()

	for i := range h.Accuracy {
		if _, err := stmt.ExecContext(ctx, run.ID, i, h.Accuracy[i], h.ValAccuracy[i], h.Loss[i], h.ValLoss[i]); err != nil {
			return nil, fmt.Errorf("inserting epoch %d: %w", i, err)
		}
		if progress != nil {
			progress(i)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing run: %w", err)
	}
	return run, nil
}

// LatestRun returns the most recently imported run and its epoch history.
func (s *Store) LatestRun(ctx context.Context) (*Run, *History, error) {
	run := &Run{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, imported_at, epochs, max_accuracy, max_val_accuracy, final_loss
		 FROM training_runs ORDER BY imported_at DESC, id DESC LIMIT 1`).
		Scan(&run.ID, &run.Name, &run.ImportedAt, &run.Summary.Epochs,
			&run.Summary.MaxAccuracy, &run.Summary.MaxValAccuracy, &run.Summary.FinalLoss)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, ErrNoRuns
	}
	if err != nil {
		return nil, nil, fmt.Errorf("querying latest run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT accuracy, val_accuracy, loss, val_loss
		 FROM training_epochs WHERE run_id = ? ORDER BY epoch`, run.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("querying epochs: %w", err)
	}
	defer rows.Close()

	h := &History{}
	for rows.Next() {
		var acc, valAcc, loss, valLoss float64
		if err := rows.Scan(&acc, &valAcc, &loss, &valLoss); err != nil {
			return nil, nil, fmt.Errorf("scanning epoch: %w", err)
		}
		h.Accuracy = append(h.Accuracy, acc)
		h.ValAccuracy = append(h.ValAccuracy, valAcc)
		h.Loss = append(h.Loss, loss)
		h.ValLoss = append(h.ValLoss, valLoss)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading epochs: %w", err)
	}

	return run, h, nil
}

func maxOf(vs []float64) float64 {
	m := 0.0
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}

func lastOf(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	return vs[len(vs)-1]
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
