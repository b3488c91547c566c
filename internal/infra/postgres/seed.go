package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"

	"quiz-presenter/internal/domain"
)

type questionRow struct {
	bun.BaseModel `bun:"table:questions"`

	QuizID   string `bun:"quiz_id,pk"`
	Position int    `bun:"position,pk"`
	Question string `bun:"question"`
	OptionA  string `bun:"option_a"`
	OptionB  string `bun:"option_b"`
	OptionC  string `bun:"option_c"`
	Answer   string `bun:"answer"`
}

// SeedQuestions replaces the stored questions of quizID, keeping their order.
func SeedQuestions(ctx context.Context, db *bun.DB, quizID string, questions []domain.Question) error {
	rows := make([]questionRow, 0, len(questions))
	for i, q := range questions {
		rows = append(rows, questionRow{
			QuizID:   quizID,
			Position: i + 1,
			Question: q.Prompt,
			OptionA:  q.Options[domain.LabelA],
			OptionB:  q.Options[domain.LabelB],
			OptionC:  q.Options[domain.LabelC],
			Answer:   string(q.Correct),
		})
	}

	return db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*questionRow)(nil)).Where("quiz_id = ?", quizID).Exec(ctx); err != nil {
			return fmt.Errorf("clear quiz %s: %w", quizID, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("insert quiz %s: %w", quizID, err)
		}
		return nil
	})
}

// Invalidator drops a cached copy of a question set.
type Invalidator interface {
	Invalidate(ctx context.Context, quizID string) error
}

// ReplaceQuestions seeds quizID and then drops it from every cache so that
// readers load the new rows.
func ReplaceQuestions(ctx context.Context, db *bun.DB, quizID string, questions []domain.Question, caches ...Invalidator) error {
	if err := SeedQuestions(ctx, db, quizID, questions); err != nil {
		return err
	}
	for _, c := range caches {
		if err := c.Invalidate(ctx, quizID); err != nil {
			return fmt.Errorf("invalidate cached quiz %s: %w", quizID, err)
		}
	}
	return nil
}
