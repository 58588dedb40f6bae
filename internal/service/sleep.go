package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/yourname/sleeplog/internal"
	"github.com/yourname/sleeplog/internal/storage"
)

var validate = validator.New()

// DefaultWindow is how many of the most recent entries feed the average.
const DefaultWindow = 7

// InputLayout is the format accepted for sleep and wake times on input.
const InputLayout = "2006-01-02 15:04"

type SleepLogRequest struct {
	SleepTime time.Time `validate:"required"`
	WakeTime  time.Time `validate:"required,gtfield=SleepTime"`
}

type Summary struct {
	Entries []internal.SleepEntry
	Average float64
	Window  int
	Total   int
}

func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(InputLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DD HH:MM)", internal.ErrParse, s)
	}
	return t, nil
}

var requestFieldNames = map[string]string{
	"SleepTime": "sleep time",
	"WakeTime":  "wake time",
}

// ValidateSleepLogRequest reports each failed rule in plain words, wrapped in
// internal.ErrValidation.
func ValidateSleepLogRequest(req *SleepLogRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", internal.ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldErrorMessage(fe))
	}
	return fmt.Errorf("%w: %s", internal.ErrValidation, strings.Join(msgs, "; "))
}

func fieldErrorMessage(fe validator.FieldError) string {
	name, ok := requestFieldNames[fe.Field()]
	if !ok {
		name = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "gtfield":
		return "wake time must be after sleep time"
	default:
		return fmt.Sprintf("%s failed the %q rule", name, fe.Tag())
	}
}

// RoundHours converts d to hours rounded to two decimal places.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// RecordEntry appends a new entry for the given interval. It does not check
// that wake follows sleep; LogSleep does.
func RecordEntry(log []internal.SleepEntry, sleep, wake time.Time) ([]internal.SleepEntry, internal.SleepEntry) {
	st, wt := internal.NewTimestamp(sleep), internal.NewTimestamp(wake)
	entry := internal.SleepEntry{
		SleepTime:     st,
		WakeTime:      wt,
		DurationHours: RoundHours(wt.Sub(st.Time)),
	}
	return append(log, entry), entry
}

// SummarizeRecent averages the last window entries in insertion order.
func SummarizeRecent(log []internal.SleepEntry, window int) (Summary, error) {
	if window <= 0 {
		window = DefaultWindow
	}
	if len(log) == 0 {
		return Summary{Window: window}, internal.ErrEmptyHistory
	}

	n := min(window, len(log))
	recent := make([]internal.SleepEntry, n)
	copy(recent, log[len(log)-n:])

	var total float64
	for _, e := range recent {
		total += e.DurationHours
	}

	return Summary{
		Entries: recent,
		Average: total / float64(n),
		Window:  window,
		Total:   len(log),
	}, nil
}

func LogSleep(ctx context.Context, repo storage.SleepLogRepository, req *SleepLogRequest) (*internal.SleepEntry, error) {
	if err := ValidateSleepLogRequest(req); err != nil {
		return nil, err
	}

	log, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	log, entry := RecordEntry(log, req.SleepTime, req.WakeTime)
	if err := repo.Save(ctx, log); err != nil {
		return nil, err
	}
	return &entry, nil
}

func History(ctx context.Context, repo storage.SleepLogRepository, window int) (Summary, error) {
	log, err := repo.Load(ctx)
	if err != nil {
		return Summary{}, err
	}
	return SummarizeRecent(log, window)
}
