// Package wizard implements the multi-step prediction flow as an explicit
// state machine: join -> captcha -> gender -> weight -> date -> review ->
// submitted. The captcha and review gates are configuration; disabling both
// reproduces the original minimal flow (auto-submit on date pick, fixed 100
// wager). Persistence goes through the small Backend interface so the machine
// can run against the live API, a fake, or anything in between.
package wizard

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Step is one screen of the wizard
type Step string

// Wizard steps in flow order
const (
	StepJoin      Step = "join"
	StepCaptcha   Step = "captcha"
	StepGender    Step = "gender"
	StepWeight    Step = "weight"
	StepDate      Step = "date"
	StepReview    Step = "review"
	StepSubmitted Step = "submitted"
)

// Gender is a prediction choice
type Gender string

// The two accepted gender predictions
const (
	Boy  Gender = "boy"
	Girl Gender = "girl"
)

// EffectColors keys the celebratory confetti color pair to the selected
// gender. Firing the effect is a pure side effect through the injected
// callback; it never blocks or alters a transition.
var EffectColors = map[Gender][2]string{
	Boy:  {"#a0cfff", "#7fbfff"},
	Girl: {"#ffc6d9", "#ffadd9"},
}

// Category is one wager bucket
type Category string

// The three wager categories
const (
	CategoryGender Category = "gender"
	CategoryWeight Category = "weight"
	CategoryDate   Category = "date"
)

// DefaultBet is the preset wager per category (and the whole wager in the
// minimal flow).
const DefaultBet = 100

// BetPresets are the only wager amounts the preset buttons offer
var BetPresets = []int{50, 100, 200, 500}

// Client slider bounds and step, in kilograms
const (
	MinWeightKg     = 1.8
	MaxWeightKg     = 4.5
	WeightStepKg    = 0.1
	defaultWeightKg = 3.2
)

// DueDateWindowDays bounds the selectable due date around the expected one
const DueDateWindowDays = 14

// Guard errors. Backend failures are returned verbatim; these cover the
// machine's own refusals to advance.
var (
	ErrWrongStep    = errors.New("wizard: action not allowed in current step")
	ErrEmptyFields  = errors.New("wizard: name and relation are required")
	ErrBadCaptcha   = errors.New("wizard: that's not the magic phrase")
	ErrBadGender    = errors.New("wizard: pick boy or girl")
	ErrWeightRange  = errors.New("wizard: weight outside the slider range")
	ErrDateWindow   = errors.New("wizard: date outside the allowed window")
	ErrBadBet       = errors.New("wizard: not a preset bet amount")
	ErrNotConfirmed = errors.New("wizard: confirm before submitting")
	ErrSubmitting   = errors.New("wizard: submission already in flight")
)

// Submission is the composed prediction handed to the backend
type Submission struct {
	ParticipantID uint    // Token from the join step
	Gender        string  // "boy" or "girl"
	WeightLbs     float64 // Converted from the slider's kg value
	DueDate       string  // ISO calendar date
	BetAmount     int     // Summed (extended) or fixed 100 (minimal)
}

// Backend is the thin persistence-facing interface the machine drives
type Backend interface {
	Join(ctx context.Context, name, relation string) (uint, error)
	SubmitPrediction(ctx context.Context, sub Submission) error
}

// EffectFunc receives the selected gender and its color pair when the
// celebration should fire
type EffectFunc func(g Gender, colors [2]string)

// Config selects the flow variant and its fixed parameters
type Config struct {
	Captcha         bool       // Enable the human-check gate after join
	Review          bool       // Enable the review/confirm gate before submit
	CaptchaPhrase   string     // Shared secret phrase for the captcha gate
	ExpectedDueDate time.Time  // Anchor of the +/- 14 day date window
	Effect          EffectFunc // Optional celebration trigger
}

// Machine is one participant's pass through the wizard. It is single-session
// state, not safe for concurrent use; the submitting flag only suppresses
// re-entrant submits while a backend call is in flight.
type Machine struct {
	cfg     Config
	backend Backend

	step          Step
	participantID uint
	name          string
	relation      string
	gender        Gender
	weightKg      float64
	dueDate       time.Time
	bets          map[Category]int
	confirmed     bool
	submitting    bool
}

// New returns a machine sitting on the join step
func New(backend Backend, cfg Config) *Machine {
	return &Machine{
		cfg:      cfg,
		backend:  backend,
		step:     StepJoin,
		weightKg: defaultWeightKg,
		bets: map[Category]int{
			CategoryGender: DefaultBet,
			CategoryWeight: DefaultBet,
			CategoryDate:   DefaultBet,
		},
	}
}

// Step reports the current step
func (m *Machine) Step() Step { return m.step }

// ParticipantID reports the identity assigned at join; zero before then.
// Callers persist it client-side so dependent pages can detect "already
// joined" without a second join call.
func (m *Machine) ParticipantID() uint { return m.participantID }

// Name reports the joined display name for later redisplay
func (m *Machine) Name() string { return m.name }

// WeightKg reports the current slider value
func (m *Machine) WeightKg() float64 { return m.weightKg }

// Join validates the two fields, registers the participant and advances to
// the captcha gate (or straight to gender when the gate is disabled). On any
// failure the machine stays on join.
func (m *Machine) Join(ctx context.Context, name, relation string) error {
	if m.step != StepJoin {
		return ErrWrongStep
	}
	name = strings.TrimSpace(name)
	relation = strings.TrimSpace(relation)
	if name == "" || relation == "" {
		return ErrEmptyFields
	}
	id, err := m.backend.Join(ctx, name, relation)
	if err != nil {
		return err // Stay on join; caller surfaces the message
	}
	m.participantID = id
	m.name = name
	m.relation = relation
	if m.cfg.Captcha {
		m.step = StepCaptcha
	} else {
		m.step = StepGender
	}
	return nil
}

// EnterCaptcha checks the human-verification phrase, case-insensitively and
// whitespace-trimmed. No retry limit; a miss just stays put.
func (m *Machine) EnterCaptcha(code string) error {
	if m.step != StepCaptcha {
		return ErrWrongStep
	}
	if !strings.EqualFold(strings.TrimSpace(code), strings.TrimSpace(m.cfg.CaptchaPhrase)) {
		return ErrBadCaptcha
	}
	m.step = StepGender
	return nil
}

// SelectGender records the choice, fires the celebration callback with the
// gender's color pair and auto-advances to the weight step. No advance is
// possible without a selection.
func (m *Machine) SelectGender(g Gender) error {
	if m.step != StepGender {
		return ErrWrongStep
	}
	if g != Boy && g != Girl {
		return ErrBadGender
	}
	m.gender = g
	if m.cfg.Effect != nil {
		m.cfg.Effect(g, EffectColors[g])
	}
	m.step = StepWeight
	return nil
}

// SetWeight adjusts the slider. Purely local until LockWeight; values are
// snapped to the 0.1 kg step and must stay within the slider bounds.
func (m *Machine) SetWeight(kg float64) error {
	if m.step != StepWeight {
		return ErrWrongStep
	}
	kg = snapToStep(kg)
	if kg < MinWeightKg || kg > MaxWeightKg {
		return ErrWeightRange
	}
	m.weightKg = kg
	return nil
}

// LockWeight moves on to the date step; unconditional once reached
func (m *Machine) LockWeight() error {
	if m.step != StepWeight {
		return ErrWrongStep
	}
	m.step = StepDate
	return nil
}

// SelectDueDate records a date within the expected-due-date window. In the
// extended flow this moves to review; in the minimal flow it submits
// immediately (the short visual-feedback delay is the caller's concern).
func (m *Machine) SelectDueDate(ctx context.Context, d time.Time) error {
	if m.step != StepDate {
		return ErrWrongStep
	}
	if !m.inWindow(d) {
		return ErrDateWindow
	}
	m.dueDate = d
	if m.cfg.Review {
		m.step = StepReview
		return nil
	}
	return m.submit(ctx, StepDate)
}

// SetBet picks a preset wager for one category. Only meaningful in the
// extended flow; the minimal flow always wagers the fixed constant.
func (m *Machine) SetBet(cat Category, amount int) error {
	if m.step == StepJoin || m.step == StepCaptcha || m.step == StepSubmitted {
		return ErrWrongStep
	}
	if cat != CategoryGender && cat != CategoryWeight && cat != CategoryDate {
		return ErrBadBet
	}
	for _, preset := range BetPresets {
		if amount == preset {
			m.bets[cat] = amount
			return nil
		}
	}
	return ErrBadBet
}

// TotalBet is the composed wager: the per-category sum in the extended flow,
// the fixed constant in the minimal one.
func (m *Machine) TotalBet() int {
	if !m.cfg.Review {
		return DefaultBet
	}
	total := 0
	for _, amount := range m.bets {
		total += amount
	}
	return total
}

// Confirm is the first half of the two-step "are you sure" gate
func (m *Machine) Confirm() error {
	if m.step != StepReview {
		return ErrWrongStep
	}
	m.confirmed = true
	return nil
}

// Submit fires the prediction after Confirm. A failure keeps the machine on
// review for a manual retry; a duplicate call while one is in flight is
// suppressed.
func (m *Machine) Submit(ctx context.Context) error {
	if m.step != StepReview {
		return ErrWrongStep
	}
	if !m.confirmed {
		return ErrNotConfirmed
	}
	return m.submit(ctx, StepReview)
}

// submit performs the backend call exactly once, restoring prior on failure
func (m *Machine) submit(ctx context.Context, prior Step) error {
	if m.submitting {
		return ErrSubmitting
	}
	m.submitting = true
	defer func() { m.submitting = false }()

	sub := Submission{
		ParticipantID: m.participantID,
		Gender:        string(m.gender),
		WeightLbs:     KgToLbs(m.weightKg),
		DueDate:       m.dueDate.Format("2006-01-02"),
		BetAmount:     m.TotalBet(),
	}
	if err := m.backend.SubmitPrediction(ctx, sub); err != nil {
		m.step = prior // No partial commit; retry by re-invoking the same action
		return err
	}
	m.step = StepSubmitted
	return nil
}

// inWindow checks the date against expected due date +/- 14 days, date-only
func (m *Machine) inWindow(d time.Time) bool {
	day := truncateToDay(d)
	lo := truncateToDay(m.cfg.ExpectedDueDate).AddDate(0, 0, -DueDateWindowDays)
	hi := truncateToDay(m.cfg.ExpectedDueDate).AddDate(0, 0, DueDateWindowDays)
	return !day.Before(lo) && !day.After(hi)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
