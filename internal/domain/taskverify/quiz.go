package taskverify

import (
	"context"
	"fmt"
	"math"

	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"
	"github.com/trailpoint/backend/internal/entity"
	"github.com/trailpoint/backend/pkg/errorx"
	"github.com/trailpoint/backend/pkg/xcontext"
)

// QuizQuestion is one question of a quiz task config. Exactly one option is
// the correct answer.
type QuizQuestion struct {
	Question string   `mapstructure:"question" structs:"question"`
	Options  []string `mapstructure:"options" structs:"options"`
	Answer   string   `mapstructure:"answer" structs:"answer,omitempty"`
}

// ParseQuizQuestions decodes the question list of a quiz task config. When
// includeAnswer is false the correct answers are stripped, making the result
// safe to hand to clients.
func ParseQuizQuestions(
	ctx context.Context, data map[string]any, includeAnswer bool,
) ([]QuizQuestion, error) {
	quiz := quizVerifier{}
	err := mapstructure.Decode(data, &quiz)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot decode quiz config: %v", err)
		return nil, errorx.New(errorx.Internal, "Malformed quiz config")
	}

	cfg := xcontext.Configs(ctx)
	if len(quiz.Questions) == 0 || len(quiz.Questions) > cfg.Task.QuizMaxQuestions {
		xcontext.Logger(ctx).Errorf("Quiz config has %d questions", len(quiz.Questions))
		return nil, errorx.New(errorx.Internal, "Malformed quiz config")
	}

	for i, q := range quiz.Questions {
		if len(q.Options) < 2 || len(q.Options) > cfg.Task.QuizMaxOptions {
			xcontext.Logger(ctx).Errorf("Quiz question %d has %d options", i, len(q.Options))
			return nil, errorx.New(errorx.Internal, "Malformed quiz config")
		}

		ok := false
		for _, option := range q.Options {
			if option == q.Answer {
				ok = true
				break
			}
		}

		if !ok {
			xcontext.Logger(ctx).Errorf("Quiz question %d has no correct option", i)
			return nil, errorx.New(errorx.Internal, "Malformed quiz config")
		}
	}

	if !includeAnswer {
		for i := range quiz.Questions {
			quiz.Questions[i].Answer = ""
		}
	}

	return quiz.Questions, nil
}

// Quiz Verifier
type quizVerifier struct {
	Questions []QuizQuestion `mapstructure:"questions" structs:"questions"`
}

type quizInput struct {
	Answers []string `mapstructure:"answers"`
}

type quizAnswer struct {
	Answers      []string `structs:"answers"`
	CorrectCount int      `structs:"correct_count"`
}

func newQuizVerifier(ctx context.Context, data map[string]any) (*quizVerifier, error) {
	questions, err := ParseQuizQuestions(ctx, data, true)
	if err != nil {
		return nil, err
	}

	return &quizVerifier{Questions: questions}, nil
}

func (v *quizVerifier) Verify(ctx context.Context, input entity.Map) (*Result, error) {
	attempt := quizInput{}
	if err := mapstructure.Decode(map[string]any(input), &attempt); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot decode quiz input: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid quiz input")
	}

	if len(attempt.Answers) != len(v.Questions) {
		return nil, errorx.New(errorx.BadRequest, "Invalid number of answers")
	}

	correctCount := 0
	for i, answer := range attempt.Answers {
		if answer == v.Questions[i].Answer {
			correctCount++
		}
	}

	score := int(math.Round(float64(correctCount) / float64(len(v.Questions)) * 100))
	answer := structs.Map(quizAnswer{Answers: attempt.Answers, CorrectCount: correctCount})

	if correctCount != len(v.Questions) {
		explanation := fmt.Sprintf("You answered %d of %d questions correctly", correctCount, len(v.Questions))
		return incorrect(score, explanation, answer), nil
	}

	return correct(answer), nil
}
