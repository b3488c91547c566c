package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"quiz-presenter/internal/domain"
)

const selectQuestions = `SELECT question, option_a, option_b, option_c, answer
FROM questions WHERE quiz_id=$1 ORDER BY position`

// QuizLoader loads question rows from Postgres.
type QuizLoader struct {
	pool *pgxpool.Pool
}

func NewQuizLoader(pool *pgxpool.Pool) *QuizLoader {
	return &QuizLoader{pool: pool}
}

// LoadQuiz returns the questions of quizID in position order. An unknown quiz
// id yields an empty set, which the presenter shows as "no questions loaded".
func (l *QuizLoader) LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	rows, err := l.pool.Query(ctx, selectQuestions, quizID)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("load quiz: %w", err)
	}
	defer rows.Close()

	quiz := domain.Quiz{ID: quizID}
	for rows.Next() {
		var rec domain.Record
		if err := rows.Scan(&rec.Question, &rec.OptionA, &rec.OptionB, &rec.OptionC, &rec.Answer); err != nil {
			return domain.Quiz{}, fmt.Errorf("scan question: %w", err)
		}
		q, err := rec.ToQuestion()
		if err != nil {
			return domain.Quiz{}, fmt.Errorf("quiz %s row %d: %w", quizID, len(quiz.Questions)+1, err)
		}
		quiz.Questions = append(quiz.Questions, q)
	}
	if err := rows.Err(); err != nil {
		return domain.Quiz{}, fmt.Errorf("load quiz: %w", err)
	}
	return quiz, nil
}
