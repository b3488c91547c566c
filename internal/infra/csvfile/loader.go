// Package csvfile loads question sets from CSV files with a header row of
// question,optionA,optionB,optionC,answer (column order is free).
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"quiz-presenter/internal/domain"
)

var columns = []string{"question", "optionA", "optionB", "optionC", "answer"}

// Loader reads <dir>/<quizID>.csv.
type Loader struct {
	dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

func (l *Loader) LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	path := filepath.Join(l.dir, quizID+".csv")
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Quiz{}, fmt.Errorf("%s: %w", path, domain.ErrQuizNotFound)
	}
	if err != nil {
		return domain.Quiz{}, err
	}
	defer f.Close()

	questions, err := Parse(ctx, f)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("%s: %w", path, err)
	}
	return domain.Quiz{ID: quizID, Questions: questions}, nil
}

// Parse reads question records from r. A header-only file yields no questions.
func Parse(ctx context.Context, r io.Reader) ([]domain.Question, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var questions []domain.Question
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rec := domain.Record{
			Question: row[index["question"]],
			OptionA:  row[index["optionA"]],
			OptionB:  row[index["optionB"]],
			OptionC:  row[index["optionC"]],
			Answer:   row[index["answer"]],
		}
		q, err := rec.ToQuestion()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(columns))
	for i, name := range header {
		// strip a UTF-8 BOM left by spreadsheet exports
		index[strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")] = i
	}
	for _, col := range columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %s", domain.ErrMalformedRecord, col)
		}
	}
	return index, nil
}
