package csvfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quiz-presenter/internal/domain"
)

func TestLoadQuiz(t *testing.T) {
	dir := t.TempDir()
	data := "question,optionA,optionB,optionC,answer\n" +
		"What is 2 + 2?,3,4,5,B\n" +
		"\"Largest ocean, by area?\",Atlantic,Pacific,Indian,B\n"
	if err := os.WriteFile(filepath.Join(dir, "questions.csv"), []byte(data), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	quiz, err := NewLoader(dir).LoadQuiz(context.Background(), "questions")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if quiz.ID != "questions" || len(quiz.Questions) != 2 {
		t.Fatalf("unexpected quiz %+v", quiz)
	}
	q := quiz.Questions[1]
	if q.Prompt != "Largest ocean, by area?" || q.Correct != domain.LabelB || q.Options[domain.LabelB] != "Pacific" {
		t.Fatalf("unexpected question %+v", q)
	}
}

func TestLoadQuizMissingFile(t *testing.T) {
	_, err := NewLoader(t.TempDir()).LoadQuiz(context.Background(), "nope")
	if !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestParseColumnOrderIsFree(t *testing.T) {
	data := "\ufeffanswer,question,optionC,optionB,optionA\nC,Pick C,c,b,a\n"
	questions, err := Parse(context.Background(), strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(questions) != 1 || questions[0].Correct != domain.LabelC || questions[0].Options[domain.LabelA] != "a" {
		t.Fatalf("unexpected questions %+v", questions)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"missing column": "question,optionA,optionB,answer\nq,a,b,A\n",
		"bad answer":     "question,optionA,optionB,optionC,answer\nq,a,b,c,D\n",
		"empty option":   "question,optionA,optionB,optionC,answer\nq,a,,c,A\n",
		"lowercase":      "question,optionA,optionB,optionC,answer\nq,a,b,c,a\n",
	}
	for name, data := range cases {
		if _, err := Parse(context.Background(), strings.NewReader(data)); !errors.Is(err, domain.ErrMalformedRecord) {
			t.Fatalf("%s: expected ErrMalformedRecord, got %v", name, err)
		}
	}
}

func TestParseHeaderOnly(t *testing.T) {
	questions, err := Parse(context.Background(), strings.NewReader("question,optionA,optionB,optionC,answer\n"))
	if err != nil || len(questions) != 0 {
		t.Fatalf("expected empty set, got %d err=%v", len(questions), err)
	}
}
