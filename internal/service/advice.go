package service

import (
	"context"

	"github.com/yourname/sleeplog/internal/storage"
)

type AdviceCategory int

const (
	TooLittle AdviceCategory = iota
	Healthy
	Mixed
	TooMuch
)

var adviceNames = map[AdviceCategory]string{
	TooLittle: "too_little",
	Healthy:   "healthy",
	Mixed:     "mixed",
	TooMuch:   "too_much",
}

var adviceTexts = map[AdviceCategory]string{
	TooLittle: "You're sleeping too little. Aim for 7-9 hours. Avoid caffeine late in the day.",
	Healthy:   "Good job! You're within a healthy range. Keep your schedule consistent.",
	Mixed:     "Mixed pattern detected. Try going to bed and waking up at fixed times.",
	TooMuch:   "You may be oversleeping. Consider setting a consistent wake-up alarm.",
}

func (c AdviceCategory) String() string {
	if name, ok := adviceNames[c]; ok {
		return name
	}
	return "unknown"
}

func (c AdviceCategory) Text() string {
	return adviceTexts[c]
}

// ClassifyAdvice maps an average nightly duration onto the half-open bands
// [0,6) [6,8) [8,9) [9,+inf). The 8-9 band is Mixed, not Healthy; anything
// below zero falls into TooLittle.
func ClassifyAdvice(avg float64) AdviceCategory {
	switch {
	case avg < 6:
		return TooLittle
	case avg < 8:
		return Healthy
	case avg >= 9:
		return TooMuch
	default:
		return Mixed
	}
}

type Advice struct {
	Category AdviceCategory
	Text     string
	Average  float64
	Count    int
}

func Advise(ctx context.Context, repo storage.SleepLogRepository, window int) (Advice, error) {
	sum, err := History(ctx, repo, window)
	if err != nil {
		return Advice{}, err
	}
	cat := ClassifyAdvice(sum.Average)
	return Advice{
		Category: cat,
		Text:     cat.Text(),
		Average:  sum.Average,
		Count:    len(sum.Entries),
	}, nil
}
